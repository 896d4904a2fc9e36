package powersum

// Term is one (I, J, n) coefficient triple of a fitted equation.
type Term struct {
	I int     // exponent of the first reduced variable
	J int     // exponent of the second reduced variable
	N float64 // coefficient
}

// Table is the ordered list of terms of one equation.
//
// Tables are package-level literals and are never modified after
// initialisation, so they can be shared between goroutines without locking.
// The summation order is fixed by the slice order; it only matters for
// bit-for-bit reproducibility, not for accuracy.
type Table []Term

// Derivatives holds a power sum and its partial derivatives with respect to
// the two base variables x and y.
type Derivatives struct {
	F   float64 // Σ n·x^I·y^J
	Fx  float64 // ∂F/∂x
	Fy  float64 // ∂F/∂y
	Fxx float64 // ∂²F/∂x²
	Fyy float64 // ∂²F/∂y²
	Fxy float64 // ∂²F/∂x∂y
}

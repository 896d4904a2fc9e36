package subregion

import (
	"errors"
	"fmt"
)

// Label identifies one of the 26 subregions of region 3. The zero value
// None means "not applicable".
type Label int

const (
	None Label = iota
	A
	B
	C
	D
	E
	F
	G
	H
	I
	J
	K
	L
	M
	N
	O
	P
	Q
	R
	S
	T
	U
	V
	W
	X
	Y
	Z
)

var (
	// ErrUnknownLabel is returned when a correlation is requested for a label
	// outside a..z.
	ErrUnknownLabel = errors.New("subregion: unknown label")

	// ErrNotRegion3 is returned by Classify for a pressure outside every band
	// of region 3. For points inside region 3 it is never returned.
	ErrNotRegion3 = errors.New("subregion: point is not in region 3")
)

// Labels lists the 26 subregion labels in alphabetical order.
var Labels = []Label{A, B, C, D, E, F, G, H, I, J, K, L, M, N, O, P, Q, R, S, T, U, V, W, X, Y, Z}

var letters = map[Label]string{
	A: "a", B: "b", C: "c", D: "d", E: "e", F: "f", G: "g", H: "h", I: "i",
	J: "j", K: "k", L: "l", M: "m", N: "n", O: "o", P: "p", Q: "q", R: "r",
	S: "s", T: "t", U: "u", V: "v", W: "w", X: "x", Y: "y", Z: "z",
}

// String returns the lower-case letter of the subregion.
func (l Label) String() string {
	if s, ok := letters[l]; ok {
		return s
	}
	if l == None {
		return "-"
	}
	return fmt.Sprintf("Label(%d)", int(l))
}

// MarshalYAML writes the label as its letter.
func (l Label) MarshalYAML() (interface{}, error) {
	return l.String(), nil
}

// Valid reports whether l is one of the 26 subregions.
func (l Label) Valid() bool {
	_, ok := letters[l]
	return ok
}

// ParseLabel parses a subregion letter, optionally prefixed with "3"
// ("c" or "3c").
func ParseLabel(s string) (Label, error) {
	if len(s) == 2 && s[0] == '3' {
		s = s[1:]
	}
	for l, letter := range letters {
		if letter == s {
			return l, nil
		}
	}
	return None, fmt.Errorf("%w: %q", ErrUnknownLabel, s)
}

package forward

// State holds the thermodynamic properties of one point computed by a
// forward equation. Units follow IAPWS-IF97: MPa, K, kg/m³, kJ/kg, kJ/(kg·K), m/s.
type State struct {
	Region int `yaml:"region" json:"region"`

	P   float64 `yaml:"p" json:"p"`     // Pressure (MPa)
	T   float64 `yaml:"t" json:"t"`     // Temperature (K)
	V   float64 `yaml:"v" json:"v"`     // Specific volume (m³/kg)
	Rho float64 `yaml:"rho" json:"rho"` // Density (kg/m³)

	U  float64 `yaml:"u" json:"u"`   // Specific internal energy (kJ/kg)
	S  float64 `yaml:"s" json:"s"`   // Specific entropy (kJ/kg·K)
	H  float64 `yaml:"h" json:"h"`   // Specific enthalpy (kJ/kg)
	Cp float64 `yaml:"cp" json:"cp"` // Specific isobaric heat capacity (kJ/kg·K)
	Cv float64 `yaml:"cv" json:"cv"` // Specific isochoric heat capacity (kJ/kg·K)
	W  float64 `yaml:"w" json:"w"`   // Speed of sound (m/s)

	// Potential is the dimensionless free energy: γ = g/(RT) for regions 1, 2
	// and 5, φ = f/(RT) for region 3.
	Potential float64 `yaml:"potential" json:"potential"`
}

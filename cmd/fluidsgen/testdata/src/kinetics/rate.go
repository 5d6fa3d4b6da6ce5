package kinetics

import "math"

// Rate returns the Arrhenius factor exp(-x).
//
//fluids:bulk
func Rate(x float64) float64 {
	return math.Exp(-x)
}

// Mag returns |z|.
//
//fluids:bulk
func Mag(z complex128) float64 {
	return math.Hypot(real(z), imag(z))
}

// scale is not annotated and gets no slice variant.
func scale(x float64) float64 {
	return 2 * x
}

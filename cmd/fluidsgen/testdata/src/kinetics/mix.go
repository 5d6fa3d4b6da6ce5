package kinetics

// Rotate multiplies z by w.
//
//fluids:bulk
func Rotate(z, w complex128) complex128 {
	return z * w
}

// Mix blends a and b in equal parts.
//
//fluids:bulk
func Mix(a float64, b float64) float64 {
	return (a + b) / 2
}

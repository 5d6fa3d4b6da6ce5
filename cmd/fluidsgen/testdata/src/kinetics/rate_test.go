package kinetics

//fluids:bulk
func testOnly(x float64) float64 {
	return x
}

package sampledata

// ShowcasePairwise returns a pairwise comparison matrix over the five
// built-in criteria, built from exact judgment ratios so reciprocity holds
// to machine precision and the derived weights land on the default weight
// profile. Useful for demonstrating weight derivation and the consistency
// check end to end.
func ShowcasePairwise() [][]float64 {
	profile := []float64{0.30, 0.25, 0.20, 0.15, 0.10}

	matrix := make([][]float64, len(profile))
	for i := range matrix {
		matrix[i] = make([]float64, len(profile))
		for j := range matrix[i] {
			matrix[i][j] = profile[i] / profile[j]
		}
	}
	return matrix
}

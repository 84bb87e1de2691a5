package geom

// Efficiency expresses solutionLength as a quality percentage relative to
// optimalLength: 100 means optimal, lower means longer tours. A
// non-positive solution length yields 0.
func Efficiency(solutionLength, optimalLength float64) float64 {
	if solutionLength <= 0 {
		return 0
	}

	return optimalLength / solutionLength * 100
}

package spec

// Balanced returns a binary branching arm, layers deep, that forks over spread
// at every junction. The first child keeps pFirst of its parent's length and
// width; the second keeps the rest. pFirst of 0.5 gives a symmetric arm.
func Balanced(layers int, spread, length, width, pFirst float64) Branch {
	result := Branch{
		Spread: spread,
		Length: length,
		Width:  width,
	}
	if layers <= 0 {
		return result
	}

	result.Children = []Branch{
		Balanced(layers-1, spread, length*pFirst, width*pFirst, pFirst),
		Balanced(layers-1, spread, length*(1.0-pFirst), width*(1.0-pFirst), pFirst),
	}

	return result
}

// Around places arms copies of arm evenly around a center junction whose
// branches have the given length and width.
func Around(arms int, length, width float64, arm Branch) Branch {
	result := Branch{
		Spread: FullCircle,
		Length: length,
		Width:  width,
	}

	for i := 0; i < arms; i++ {
		result.Children = append(result.Children, arm)
	}

	return result
}

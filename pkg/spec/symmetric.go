package spec

// Leaf returns an endpoint. Its length and width only matter for validation.
func Leaf(length, width float64) Branch {
	return Branch{Length: length, Width: width}
}

// Star returns a junction with arms endpoints spaced evenly around it.
func Star(arms int, length, width float64) Branch {
	return Around(arms, length, width, Leaf(length/2, width/2))
}

// Symmetric returns a snowflake with arms identical arms around its center.
// Each arm forks into forks branches over spread, layers deep, and every
// fork scales its length and width by scale.
func Symmetric(layers, arms, forks int, spread, length, width, scale float64) Branch {
	return Around(arms, length, width, symmetric(layers, forks, spread, length*scale, width*scale, scale))
}

func symmetric(layers, forks int, spread, length, width, scale float64) Branch {
	result := Branch{
		Spread: spread,
		Length: length,
		Width:  width,
	}
	if layers <= 0 {
		return result
	}

	children := symmetric(layers-1, forks, spread, length*scale, width*scale, scale)
	result.Children = make([]Branch, forks)
	for i := range result.Children {
		result.Children[i] = children
	}

	return result
}

package spec

import (
	"math/rand"
)

// Random returns a snowflake with a random number of identical arms, each a
// random arm layers deep. Ranges are kept narrow enough that sibling branches
// do not overlap.
func Random(layers int, r *rand.Rand) Branch {
	arms := 3 + r.Intn(6)
	length := 8.0 + 4.0*r.Float64()
	width := 1.0 + 1.5*r.Float64()

	return Around(arms, length, width, randomArm(layers, length*0.6, width*0.7, r))
}

func randomArm(layers int, length, width float64, r *rand.Rand) Branch {
	result := Branch{
		Spread: 30.0 + 80.0*r.Float64(),
		Length: length,
		Width:  width,
	}
	if layers <= 0 {
		return result
	}

	forks := 2 + r.Intn(2)
	scale := r.Float64()*0.3 + 0.4
	for i := 0; i < forks; i++ {
		result.Children = append(result.Children, randomArm(layers-1, length*scale, width*scale, r))
	}

	return result
}

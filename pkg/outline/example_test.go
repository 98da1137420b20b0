package outline_test

import (
	"fmt"
	"math"

	"github.com/willbeason/snowflake/pkg/geometry"
	"github.com/willbeason/snowflake/pkg/outline"
	"github.com/willbeason/snowflake/pkg/spec"
)

// round drops float noise, including negative zero.
func round(f float64) float64 {
	r := math.Round(f)
	if r == 0 {
		return 0
	}
	return r
}

func ExampleSnowflake() {
	cross := spec.Branch{Spread: 360, Length: 10, Width: 2}
	for i := 0; i < 4; i++ {
		cross.Children = append(cross.Children, spec.Leaf(5, 1))
	}

	_, polygon, err := outline.Snowflake(cross, geometry.XY{}, 0)
	if err != nil {
		fmt.Println(err)
		return
	}

	for _, v := range polygon {
		fmt.Printf("(%.0f, %.0f)\n", round(v.X), round(v.Y))
	}
	// Output:
	// (-10, 0)
	// (-1, -1)
	// (0, -10)
	// (1, -1)
	// (10, 0)
	// (1, 1)
	// (0, 10)
	// (-1, 1)
}

package figure_test

import (
	"bytes"
	"fmt"

	"github.com/katalvlaran/matgeo/figure"
	"github.com/katalvlaran/matgeo/geometry"
)

func ExampleRender() {
	p, err := figure.Tangents(geometry.Point{}, 1, geometry.Point{X: 2})
	if err != nil {
		fmt.Println(err)

		return
	}
	var buf bytes.Buffer
	if _, err = figure.Render(p, &buf, figure.WithFormat("svg")); err != nil {
		fmt.Println(err)

		return
	}
	fmt.Println(bytes.Contains(buf.Bytes(), []byte("<svg")))

	_, err = figure.Tangents(geometry.Point{}, 1, geometry.Point{X: 0.5})
	fmt.Println(err)

	// Output:
	// true
	// Tangents: TangentPoints: geometry: point is not outside the circle
}

// Package fit computes the uniform-scale, centered placement of source
// page content inside a target page box.
//
// The fit never crops and never stretches anisotropically: content is
// scaled by the largest factor that keeps both axes within the target,
// then centered, leaving blank margins on at most one axis.
package fit

import (
	"errors"
	"fmt"
)

// ErrInvalidTarget reports zero or negative target dimensions.
var ErrInvalidTarget = errors.New("target dimensions must be positive")

// ErrInvalidSource reports a degenerate source page.
var ErrInvalidSource = errors.New("source dimensions must be positive")

// Dim is a width/height pair in points.
type Dim struct {
	Width  float64
	Height float64
}

// Transform places source content inside a target box: content is
// scaled by Scale on both axes and shifted by (Dx, Dy) so it sits
// centered.
type Transform struct {
	Scale float64
	Dx    float64
	Dy    float64
}

// Fit returns the largest uniform scale that keeps src within dst on
// both axes, together with the offset centering the scaled content.
// The scaled content always fits inside dst and touches it on at least
// one axis; a page already at target size yields the identity
// transform.
func Fit(src, dst Dim) (Transform, error) {
	if dst.Width <= 0 || dst.Height <= 0 {
		return Transform{}, fmt.Errorf("%w: %.2fx%.2f", ErrInvalidTarget, dst.Width, dst.Height)
	}
	if src.Width <= 0 || src.Height <= 0 {
		return Transform{}, fmt.Errorf("%w: %.2fx%.2f", ErrInvalidSource, src.Width, src.Height)
	}

	scale := dst.Width / src.Width
	if s := dst.Height / src.Height; s < scale {
		scale = s
	}

	return Transform{
		Scale: scale,
		Dx:    (dst.Width - src.Width*scale) / 2,
		Dy:    (dst.Height - src.Height*scale) / 2,
	}, nil
}

// Scaled returns src under the transform's scale.
func (t Transform) Scaled(src Dim) Dim {
	return Dim{Width: src.Width * t.Scale, Height: src.Height * t.Scale}
}

package domain

import (
	"fmt"
	"strings"
)

// GradientAngle is the fixed direction of the background gradient.
const GradientAngle = 135

// ColorSet is an ordered triple of "#RRGGBB" colors.
type ColorSet [3]string

// Gradient renders the set as a CSS linear-gradient, colors in order.
func (c ColorSet) Gradient() string {
	return fmt.Sprintf("linear-gradient(%ddeg, %s)", GradientAngle, strings.Join(c[:], ", "))
}

package preset

import (
	"fmt"
	"math"
	"strconv"
)

// px formats a pixel length for the playback engine.
func px(v float64) string {
	if v == 0 {
		v = 0 // normalise negative zero
	}
	return strconv.FormatFloat(v, 'f', -1, 64) + "px"
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func translate(x, y float64) string {
	return fmt.Sprintf("translate(%s, %s)", px(x), px(y))
}

// Translate2d builds a two-frame sequence moving a target between two
// offsets.
func Translate2d(fromX, fromY, toX, toY float64) []Keyframe {
	return []Keyframe{
		{Transform: translate(fromX, fromY)},
		{Transform: translate(toX, toY)},
	}
}

// RotateAndTranslate combines a translation with a full rotation whose
// sign follows direction (+1 or -1), so left and right entrances spin in
// from opposite sides.
func RotateAndTranslate(fromX, fromY, toX, toY float64, direction int) []Keyframe {
	return []Keyframe{
		{Transform: fmt.Sprintf("%s rotate(%ddeg)", translate(fromX, fromY), direction*360)},
		{Transform: fmt.Sprintf("%s rotate(0deg)", translate(toX, toY))},
	}
}

// ScaleAndTranslate combines a translation with a uniform scale held
// constant across both frames.
func ScaleAndTranslate(fromX, fromY, toX, toY, scale float64) []Keyframe {
	return []Keyframe{
		{Transform: fmt.Sprintf("%s scale(%s)", translate(fromX, fromY), num(scale))},
		{Transform: fmt.Sprintf("%s scale(%s)", translate(toX, toY), num(scale))},
	}
}

// WhooshIn moves a target between two offsets while popping it from a
// small, transparent start to full size.
func WhooshIn(fromX, fromY, toX, toY float64) []Keyframe {
	return []Keyframe{
		{Transform: fmt.Sprintf("%s scale(0.15)", translate(fromX, fromY)), Opacity: f64(0)},
		{Transform: fmt.Sprintf("%s scale(1)", translate(toX, toY)), Opacity: f64(1)},
	}
}

// CalculateTargetScalingFactor returns the uniform factor that scales the
// target just enough to cover the page. Targets already covering an axis
// keep factor 1 on it; degenerate zero-sized targets scale by exactly 1.
func CalculateTargetScalingFactor(d Dimensions) float64 {
	if d.TargetWidth <= 0 || d.TargetHeight <= 0 {
		return 1
	}

	widthFactor := 1.0
	if d.PageWidth > d.TargetWidth {
		widthFactor = d.PageWidth / d.TargetWidth
	}
	heightFactor := 1.0
	if d.PageHeight > d.TargetHeight {
		heightFactor = d.PageHeight / d.TargetHeight
	}

	return math.Max(widthFactor, heightFactor)
}

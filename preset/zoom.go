package preset

import "fmt"

// Zoom scale defaults: zoom-in goes low to high, zoom-out high to low.
const (
	zoomDuration  = 1000
	zoomScaleLow  = 1
	zoomScaleHigh = 3
)

func zoomIn(o Options) (*Descriptor, error) {
	start := o.get(OptScaleStart, zoomScaleLow)
	end := o.get(OptScaleEnd, zoomScaleHigh)
	if o.has(OptScaleStart) && end <= start {
		return nil, &OptionError{
			Preset: "zoom-in",
			Reason: fmt.Sprintf("scaleEnd %s must be greater than scaleStart %s", num(end), num(start)),
		}
	}
	return zoomDescriptor(start, end), nil
}

func zoomOut(o Options) (*Descriptor, error) {
	start := o.get(OptScaleStart, zoomScaleHigh)
	end := o.get(OptScaleEnd, zoomScaleLow)
	if o.has(OptScaleStart) && start <= end {
		return nil, &OptionError{
			Preset: "zoom-out",
			Reason: fmt.Sprintf("scaleStart %s must be greater than scaleEnd %s", num(start), num(end)),
		}
	}
	return zoomDescriptor(start, end), nil
}

func zoomDescriptor(start, end float64) *Descriptor {
	return &Descriptor{
		Duration: zoomDuration,
		Keyframes: []Keyframe{
			{Transform: fmt.Sprintf("scale(%s)", num(start))},
			{Transform: fmt.Sprintf("scale(%s)", num(end))},
		},
	}
}

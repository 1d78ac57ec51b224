package preset

// Presets with fixed keyframes, independent of geometry and options.

func pulse(Options) (*Descriptor, error) {
	return &Descriptor{
		Duration: 500,
		Easing:   "linear",
		Keyframes: []Keyframe{
			{Offset: f64(0), Transform: "scale(1)"},
			{Offset: f64(0.25), Transform: "scale(0.95)"},
			{Offset: f64(0.75), Transform: "scale(1.05)"},
			{Offset: f64(1), Transform: "scale(1)"},
		},
	}, nil
}

func fadeIn(Options) (*Descriptor, error) {
	return &Descriptor{
		Duration: 500,
		Easing:   "ease-in",
		Keyframes: []Keyframe{
			{Opacity: f64(0)},
			{Opacity: f64(1)},
		},
	}, nil
}

func twirlIn(Options) (*Descriptor, error) {
	return &Descriptor{
		Duration: 1000,
		Easing:   "cubic-bezier(.2,.75,.4,1)",
		Keyframes: []Keyframe{
			{Transform: "rotate(-540deg) scale(0.1)", Opacity: f64(0)},
			{Transform: "none", Opacity: f64(1)},
		},
	}, nil
}

package preset

// The rotate-in presets enter like fly-in-left/right but spin while they
// travel. Left rotates with direction -1 and right with +1; swapping the
// signs reverses the apparent direction of entry.

const rotateInDuration = 700

func rotateInLeft(Options) (*Descriptor, error) {
	return &Descriptor{
		Duration: rotateInDuration,
		Easing:   "ease-out",
		Generate: func(d Dimensions) []Keyframe {
			offsetX := -(d.TargetX + d.TargetWidth)
			return RotateAndTranslate(offsetX, 0, 0, 0, -1)
		},
	}, nil
}

func rotateInRight(Options) (*Descriptor, error) {
	return &Descriptor{
		Duration: rotateInDuration,
		Easing:   "ease-out",
		Generate: func(d Dimensions) []Keyframe {
			offsetX := d.PageWidth - d.TargetX
			return RotateAndTranslate(offsetX, 0, 0, 0, 1)
		},
	}, nil
}

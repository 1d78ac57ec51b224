package preset

// The fly-in family slides a target in from fully outside the named page
// edge to its natural position. Start offsets depend on where the target
// sits, so these are all generators.

const flyInDuration = 500

func flyInLeft(Options) (*Descriptor, error) {
	return &Descriptor{
		Duration: flyInDuration,
		Easing:   "ease-out",
		Generate: func(d Dimensions) []Keyframe {
			offsetX := -(d.TargetX + d.TargetWidth)
			return Translate2d(offsetX, 0, 0, 0)
		},
	}, nil
}

func flyInRight(Options) (*Descriptor, error) {
	return &Descriptor{
		Duration: flyInDuration,
		Easing:   "ease-out",
		Generate: func(d Dimensions) []Keyframe {
			offsetX := d.PageWidth - d.TargetX
			return Translate2d(offsetX, 0, 0, 0)
		},
	}, nil
}

func flyInTop(Options) (*Descriptor, error) {
	return &Descriptor{
		Duration: flyInDuration,
		Easing:   "ease-out",
		Generate: func(d Dimensions) []Keyframe {
			offsetY := -(d.TargetY + d.TargetHeight)
			return Translate2d(0, offsetY, 0, 0)
		},
	}, nil
}

func flyInBottom(Options) (*Descriptor, error) {
	return &Descriptor{
		Duration: flyInDuration,
		Easing:   "ease-out",
		Generate: func(d Dimensions) []Keyframe {
			offsetY := d.PageHeight - d.TargetY
			return Translate2d(0, offsetY, 0, 0)
		},
	}, nil
}

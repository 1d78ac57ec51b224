package preset

// The pan family scales the target up to cover the page, then slides it
// across the full page dimension on one axis. The translateX/translateY
// options adjust the end offset only; the start side always comes from
// the scaled geometry.
//
// The option sign conventions differ on purpose: pan-left ends at
// offsetX + translateX while pan-right ends at -translateX, so the same
// option value reads symmetrically to an author picking a direction.
// pan-up and pan-down follow the same pair of conventions on the Y axis.

const panDuration = 1000

func panLeft(o Options) (*Descriptor, error) {
	return &Descriptor{
		Duration: panDuration,
		Easing:   "linear",
		Generate: func(d Dimensions) []Keyframe {
			factor := CalculateTargetScalingFactor(d)
			width := d.TargetWidth * factor
			height := d.TargetHeight * factor

			offsetX := d.PageWidth - width
			offsetY := (d.PageHeight - height) / 2

			return ScaleAndTranslate(0, offsetY, offsetX+o.get(OptTranslateX, 0), offsetY, factor)
		},
	}, nil
}

func panRight(o Options) (*Descriptor, error) {
	return &Descriptor{
		Duration: panDuration,
		Easing:   "linear",
		Generate: func(d Dimensions) []Keyframe {
			factor := CalculateTargetScalingFactor(d)
			width := d.TargetWidth * factor
			height := d.TargetHeight * factor

			offsetX := d.PageWidth - width
			offsetY := (d.PageHeight - height) / 2

			endX := offsetX
			if o.has(OptTranslateX) {
				endX = -o[OptTranslateX]
			}

			return ScaleAndTranslate(0, offsetY, endX, offsetY, factor)
		},
	}, nil
}

func panUp(o Options) (*Descriptor, error) {
	return &Descriptor{
		Duration: panDuration,
		Easing:   "linear",
		Generate: func(d Dimensions) []Keyframe {
			factor := CalculateTargetScalingFactor(d)
			width := d.TargetWidth * factor
			height := d.TargetHeight * factor

			offsetX := (d.PageWidth - width) / 2
			offsetY := d.PageHeight - height

			return ScaleAndTranslate(offsetX, 0, offsetX, offsetY+o.get(OptTranslateY, 0), factor)
		},
	}, nil
}

func panDown(o Options) (*Descriptor, error) {
	return &Descriptor{
		Duration: panDuration,
		Easing:   "linear",
		Generate: func(d Dimensions) []Keyframe {
			factor := CalculateTargetScalingFactor(d)
			width := d.TargetWidth * factor
			height := d.TargetHeight * factor

			offsetX := (d.PageWidth - width) / 2
			offsetY := d.PageHeight - height

			endY := offsetY
			if o.has(OptTranslateY) {
				endY = -o[OptTranslateY]
			}

			return ScaleAndTranslate(offsetX, 0, offsetX, endY, factor)
		},
	}, nil
}

package preset

const (
	whooshInDuration = 500
	whooshInEasing   = "cubic-bezier(.47,1.64,.41,.8)"
)

func whooshInLeft(Options) (*Descriptor, error) {
	return &Descriptor{
		Duration: whooshInDuration,
		Easing:   whooshInEasing,
		Generate: func(d Dimensions) []Keyframe {
			offsetX := -(d.TargetX + d.TargetWidth)
			return WhooshIn(offsetX, 0, 0, 0)
		},
	}, nil
}

func whooshInRight(Options) (*Descriptor, error) {
	return &Descriptor{
		Duration: whooshInDuration,
		Easing:   whooshInEasing,
		Generate: func(d Dimensions) []Keyframe {
			offsetX := d.PageWidth - d.TargetX
			return WhooshIn(offsetX, 0, 0, 0)
		},
	}, nil
}

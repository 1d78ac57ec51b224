package preset

import "fmt"

// Config is the YAML document the command line tool reads: broker
// settings plus the authored scene.
type Config struct {
	Mqtt struct {
		URL      string `yaml:"url"`
		Username string `yaml:"username"`
		Password string `yaml:"password"`
		Topic    string `yaml:"topic"`
	} `yaml:"mqtt"`
	Scene Scene `yaml:"scene"`
}

// A Scene describes one page of animated elements as authored in YAML.
type Scene struct {
	Page struct {
		Width  float64 `yaml:"width"`
		Height float64 `yaml:"height"`
	} `yaml:"page"`
	Elements []SceneElement `yaml:"elements"`
}

// A SceneElement names a target on the page, its measured geometry and
// the preset that animates it.
type SceneElement struct {
	ID      string  `yaml:"id"`
	Preset  string  `yaml:"preset"`
	X       float64 `yaml:"x"`
	Y       float64 `yaml:"y"`
	Width   float64 `yaml:"width"`
	Height  float64 `yaml:"height"`
	Options Options `yaml:"options"`
}

// Dimensions combines the element's geometry with the scene's page size.
func (e SceneElement) Dimensions(s *Scene) Dimensions {
	return Dimensions{
		TargetX:      e.X,
		TargetY:      e.Y,
		TargetWidth:  e.Width,
		TargetHeight: e.Height,
		PageWidth:    s.Page.Width,
		PageHeight:   s.Page.Height,
	}
}

// A BakedAnimation pairs a scene element with its generated keyframes,
// ready for a playback engine.
type BakedAnimation struct {
	ID        string     `json:"id"`
	Preset    string     `json:"preset"`
	Duration  int        `json:"duration"`
	Easing    string     `json:"easing,omitempty"`
	Keyframes []Keyframe `json:"keyframes"`
	EasingLut []float64  `json:"easingLut,omitempty"`
}

// BakeScene resolves every element in the scene to concrete keyframes.
// An unknown preset or a bad option combination aborts the bake with an
// error naming the element.
func BakeScene(s *Scene) ([]BakedAnimation, error) {
	baked := make([]BakedAnimation, 0, len(s.Elements))
	for _, el := range s.Elements {
		d, err := Resolve(el.Preset, el.Options)
		if err != nil {
			return nil, fmt.Errorf("element %s: %w", el.ID, err)
		}
		if d == nil {
			return nil, fmt.Errorf("element %s: unknown preset %q", el.ID, el.Preset)
		}

		baked = append(baked, BakedAnimation{
			ID:        el.ID,
			Preset:    el.Preset,
			Duration:  d.Duration,
			Easing:    d.Easing,
			Keyframes: d.Frames(el.Dimensions(s)),
		})
	}
	return baked, nil
}

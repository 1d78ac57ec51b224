package preset

import (
	"fmt"
	"sort"
)

// Dimensions is the measured geometry of an animation target, relative to
// the page that contains it. It is supplied by the caller at generation
// time and is never retained or mutated by a generator.
type Dimensions struct {
	TargetX      float64
	TargetY      float64
	TargetWidth  float64
	TargetHeight float64
	PageWidth    float64
	PageHeight   float64
}

// Options carries the author-supplied tuning values for a preset. Absent
// keys fall back to preset-specific defaults.
type Options map[string]float64

// Recognised option keys.
const (
	OptTranslateX = "translateX"
	OptTranslateY = "translateY"
	OptScaleStart = "scaleStart"
	OptScaleEnd   = "scaleEnd"
)

func (o Options) get(key string, def float64) float64 {
	if v, ok := o[key]; ok {
		return v
	}
	return def
}

func (o Options) has(key string) bool {
	_, ok := o[key]
	return ok
}

// A Keyframe holds the target values of the animatable properties at one
// point on the timeline. Offsets ascend across a sequence; a sequence
// without an explicit offset-0 frame starts from the element's current
// state. Easing, when set, overrides the descriptor easing from this frame
// to the next.
type Keyframe struct {
	Transform string   `json:"transform,omitempty"`
	Opacity   *float64 `json:"opacity,omitempty"`
	Offset    *float64 `json:"offset,omitempty"`
	Easing    string   `json:"easing,omitempty"`
}

// A Generator derives concrete keyframes from runtime geometry. Generators
// hold no state between calls.
type Generator func(d Dimensions) []Keyframe

// A Descriptor is a resolved animation definition ready for a playback
// engine. Exactly one of Keyframes and Generate is set; an empty Easing
// means linear.
type Descriptor struct {
	Duration  int // milliseconds
	Easing    string
	Keyframes []Keyframe
	Generate  Generator
}

// Frames returns the concrete keyframe sequence for the given geometry,
// invoking the generator when the descriptor carries one.
func (d *Descriptor) Frames(dims Dimensions) []Keyframe {
	if d.Generate != nil {
		return d.Generate(dims)
	}
	return d.Keyframes
}

// An OptionError reports an option combination that a preset cannot
// animate. It signals author misconfiguration, not an internal fault.
type OptionError struct {
	Preset string
	Reason string
}

func (e *OptionError) Error() string {
	return fmt.Sprintf("preset %s: %s", e.Preset, e.Reason)
}

type builder func(o Options) (*Descriptor, error)

var presets = map[string]builder{
	"pulse":           pulse,
	"fade-in":         fadeIn,
	"twirl-in":        twirlIn,
	"fly-in-left":     flyInLeft,
	"fly-in-right":    flyInRight,
	"fly-in-top":      flyInTop,
	"fly-in-bottom":   flyInBottom,
	"rotate-in-left":  rotateInLeft,
	"rotate-in-right": rotateInRight,
	"whoosh-in-left":  whooshInLeft,
	"whoosh-in-right": whooshInRight,
	"pan-left":        panLeft,
	"pan-right":       panRight,
	"pan-up":          panUp,
	"pan-down":        panDown,
	"zoom-in":         zoomIn,
	"zoom-out":        zoomOut,
	"drop":            drop,
}

// Resolve builds the descriptor for the named preset using the supplied
// options. Unknown names resolve to nil without an error; invalid option
// combinations return an *OptionError.
func Resolve(name string, o Options) (*Descriptor, error) {
	b, ok := presets[name]
	if !ok {
		return nil, nil
	}
	return b(o)
}

// Names lists the recognised preset names in sorted order.
func Names() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func f64(v float64) *float64 {
	return &v
}

package preset

import (
	"fmt"
	"math"
)

// dropMinHeight is the smallest fall a drop starts from, used when the
// target sits too close to the page top for its own bottom edge to give a
// convincing bounce.
const dropMinHeight = 160

const (
	dropAccelEasing  = "cubic-bezier(.75,.05,.86,.08)"
	dropSettleEasing = "cubic-bezier(.22,.61,.35,1)"
)

// drop bounces the target in from above: a full-height fall followed by
// two partial rebounds with decreasing amplitude. Each airborne frame
// accelerates into the floor and each floor frame settles out of it.
func drop(Options) (*Descriptor, error) {
	return &Descriptor{
		Duration: 1600,
		Generate: func(d Dimensions) []Keyframe {
			maxBounceHeight := math.Max(dropMinHeight, d.TargetY+d.TargetHeight)

			frame := func(offset, amplitude float64, easing string) Keyframe {
				return Keyframe{
					Offset:    f64(offset),
					Transform: fmt.Sprintf("translateY(%s)", px(-amplitude*maxBounceHeight)),
					Easing:    easing,
				}
			}

			return []Keyframe{
				frame(0, 1, dropAccelEasing),
				frame(0.3, 0, dropSettleEasing),
				frame(0.52, 0.6, dropAccelEasing),
				frame(0.74, 0, dropSettleEasing),
				frame(0.83, 0.3, dropAccelEasing),
				frame(1, 0, dropSettleEasing),
			}
		},
	}, nil
}

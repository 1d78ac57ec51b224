package preset

import (
	"strings"
	"testing"
)

// The zero target height forces a scaling factor of 1, so the scaled
// width stays at 500 against the 1000 page and the derived end offset is
// exactly pageWidth - scaledWidth.
var panDimsX = Dimensions{
	TargetWidth: 500, TargetHeight: 0,
	PageWidth: 1000, PageHeight: 800,
}

func panFrames(t *testing.T, name string, o Options, d Dimensions) []Keyframe {
	t.Helper()
	desc, err := Resolve(name, o)
	if err != nil {
		t.Fatal(err)
	}
	frames := desc.Frames(d)
	if len(frames) != 2 {
		t.Fatalf("got %d frames, want 2", len(frames))
	}
	return frames
}

func TestPanLeftEndOffset(t *testing.T) {
	frames := panFrames(t, "pan-left", nil, panDimsX)
	if frames[0].Transform != "translate(0px, 400px) scale(1)" {
		t.Errorf("start transform = %q", frames[0].Transform)
	}
	if frames[1].Transform != "translate(500px, 400px) scale(1)" {
		t.Errorf("end transform = %q, want end offset 500", frames[1].Transform)
	}
}

func TestPanLeftTranslateXAddsToEndOffset(t *testing.T) {
	frames := panFrames(t, "pan-left", Options{OptTranslateX: 20}, panDimsX)
	if frames[1].Transform != "translate(520px, 400px) scale(1)" {
		t.Errorf("end transform = %q, want end offset 520", frames[1].Transform)
	}
}

// pan-right is not the mirror of pan-left: a supplied translateX becomes
// the negated end offset outright, while an absent one falls back to the
// derived offset. Both signs are pinned here deliberately.
func TestPanRightEndOffsetSigns(t *testing.T) {
	frames := panFrames(t, "pan-right", nil, panDimsX)
	if frames[1].Transform != "translate(500px, 400px) scale(1)" {
		t.Errorf("end transform without translateX = %q, want derived offset 500", frames[1].Transform)
	}

	frames = panFrames(t, "pan-right", Options{OptTranslateX: 20}, panDimsX)
	if frames[1].Transform != "translate(-20px, 400px) scale(1)" {
		t.Errorf("end transform with translateX = %q, want -20", frames[1].Transform)
	}
}

func TestVerticalPans(t *testing.T) {
	// Factor 2: target 100x200 inside a 200x300 page scales to 200x400.
	dims := Dimensions{
		TargetWidth: 100, TargetHeight: 200,
		PageWidth: 200, PageHeight: 300,
	}

	frames := panFrames(t, "pan-up", nil, dims)
	if frames[0].Transform != "translate(0px, 0px) scale(2)" {
		t.Errorf("pan-up start = %q", frames[0].Transform)
	}
	if frames[1].Transform != "translate(0px, -100px) scale(2)" {
		t.Errorf("pan-up end = %q, want derived offset -100", frames[1].Transform)
	}

	frames = panFrames(t, "pan-up", Options{OptTranslateY: 30}, dims)
	if frames[1].Transform != "translate(0px, -70px) scale(2)" {
		t.Errorf("pan-up end with translateY = %q, want -70", frames[1].Transform)
	}

	frames = panFrames(t, "pan-down", nil, dims)
	if frames[1].Transform != "translate(0px, -100px) scale(2)" {
		t.Errorf("pan-down end = %q, want derived offset -100", frames[1].Transform)
	}

	frames = panFrames(t, "pan-down", Options{OptTranslateY: 30}, dims)
	if frames[1].Transform != "translate(0px, -30px) scale(2)" {
		t.Errorf("pan-down end with translateY = %q, want -30", frames[1].Transform)
	}
}

func TestPanScalesUniformly(t *testing.T) {
	dims := Dimensions{
		TargetWidth: 100, TargetHeight: 100,
		PageWidth: 200, PageHeight: 300,
	}

	frames := panFrames(t, "pan-left", nil, dims)
	// Factor 3 on both frames; never independent X/Y scaling.
	for i, kf := range frames {
		if !strings.HasSuffix(kf.Transform, "scale(3)") {
			t.Errorf("frame %d transform = %q, want uniform scale(3)", i, kf.Transform)
		}
	}
}

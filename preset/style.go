package preset

// An Element is the minimal view of a DOM-like node the style classifier
// needs: its parent and its class list.
type Element interface {
	Parent() Element
	AddClass(name string)
	RemoveClass(name string)
	HasClass(name string) bool
}

// Layout classes toggled on an animated element's container.
const (
	FillLayoutClass = "layout-fill"
	FullBleedClass  = "full-bleed-animation"
)

// fullBleed holds the presets whose target visually fills the container,
// which therefore needs the full-bleed layout instead of the fill layout.
var fullBleed = map[string]bool{
	"pan-left":  true,
	"pan-right": true,
	"pan-up":    true,
	"pan-down":  true,
	"zoom-in":   true,
	"zoom-out":  true,
}

// ApplyPresetStyle moves the element's container onto the full-bleed
// layout when the preset needs it. Other presets leave the container
// untouched. Safe to call repeatedly.
func ApplyPresetStyle(el Element, presetName string) {
	if !fullBleed[presetName] {
		return
	}

	parent := el.Parent()
	if parent == nil {
		return
	}

	if parent.HasClass(FillLayoutClass) {
		parent.RemoveClass(FillLayoutClass)
	}
	parent.AddClass(FullBleedClass)
}

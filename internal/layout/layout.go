package layout

import "errors"

// SizeClass names the visual size treatment of one grid slot.
type SizeClass string

const (
	SizeLarge SizeClass = "large"
	SizeSmall SizeClass = "small"
	SizeWide  SizeClass = "wide"
)

// Slot is the visual role assigned to one ordinal position in the grid:
// a size class plus whether the slot carries a caption overlay.
type Slot struct {
	Size    SizeClass
	Overlay bool
}

// MaxSlots is the largest grid the assigner lays out, matching the
// extractor's photo quota.
const MaxSlots = 6

// ErrInvalidCount indicates a caller asked for a grid outside [0,MaxSlots].
// The extractor never produces more than MaxSlots photos, so hitting this
// is a programming error upstream, not a runtime condition.
var ErrInvalidCount = errors.New("layout: count outside [0,6]")

// Assign returns the slot for each ordinal position 0..count-1. Assignment
// is purely positional: the first slot is the single large one with an
// overlay, the last slot of a full grid is the single wide one with an
// overlay, and everything between is small with no overlay. Photo content
// never influences the result and input order is never changed.
func Assign(count int) ([]Slot, error) {
	if count < 0 || count > MaxSlots {
		return nil, ErrInvalidCount
	}
	slots := make([]Slot, count)
	for i := range slots {
		slots[i] = At(i)
	}
	return slots, nil
}

// At returns the slot for a single ordinal position.
func At(i int) Slot {
	switch i {
	case 0:
		return Slot{Size: SizeLarge, Overlay: true}
	case MaxSlots - 1:
		return Slot{Size: SizeWide, Overlay: true}
	default:
		return Slot{Size: SizeSmall}
	}
}

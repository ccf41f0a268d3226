package layout

import (
	"errors"
	"testing"
)

func TestAssign_FullGrid(t *testing.T) {
	slots, err := Assign(6)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(slots) != 6 {
		t.Fatalf("expected 6 slots, got %d", len(slots))
	}
	if slots[0] != (Slot{Size: SizeLarge, Overlay: true}) {
		t.Fatalf("slot 0: got %+v", slots[0])
	}
	if slots[5] != (Slot{Size: SizeWide, Overlay: true}) {
		t.Fatalf("slot 5: got %+v", slots[5])
	}
	for i := 1; i <= 4; i++ {
		if slots[i] != (Slot{Size: SizeSmall}) {
			t.Fatalf("slot %d: got %+v", i, slots[i])
		}
	}
}

func TestAssign_PartialGrid(t *testing.T) {
	slots, err := Assign(3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Index 5 is only reachable with a full grid, so a partial grid has
	// exactly one large slot and smalls for the rest.
	want := []Slot{
		{Size: SizeLarge, Overlay: true},
		{Size: SizeSmall},
		{Size: SizeSmall},
	}
	for i := range want {
		if slots[i] != want[i] {
			t.Fatalf("slot %d: got %+v want %+v", i, slots[i], want[i])
		}
	}
}

func TestAssign_Empty(t *testing.T) {
	slots, err := Assign(0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(slots) != 0 {
		t.Fatalf("expected empty assignment, got %v", slots)
	}
}

func TestAssign_CountOutOfRange(t *testing.T) {
	for _, n := range []int{-1, 7, 100} {
		if _, err := Assign(n); !errors.Is(err, ErrInvalidCount) {
			t.Fatalf("Assign(%d): expected ErrInvalidCount, got %v", n, err)
		}
	}
}

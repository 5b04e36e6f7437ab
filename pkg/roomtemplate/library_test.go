package roomtemplate

import (
	"reflect"
	"testing"

	"github.com/deanfra/erebos-level-generator/pkg/tilegrid"
)

func TestNewLibrary_Catalogue(t *testing.T) {
	lib := NewLibrary()

	if got := lib.Len(); got != 16 {
		t.Fatalf("Len() = %d, want 16", got)
	}

	t.Run("ids are dense and assigned by insertion order", func(t *testing.T) {
		for i, tpl := range lib.Templates() {
			if tpl.ID != i {
				t.Errorf("template %q has ID %d, want %d", tpl.Name, tpl.ID, i)
			}
		}
	})

	t.Run("min_doors bias rooms", func(t *testing.T) {
		for _, name := range []string{"cross", "jar"} {
			found := false
			for _, tpl := range lib.Templates() {
				if tpl.Name == name {
					found = true
					if tpl.MinDoors != 3 {
						t.Errorf("%s.MinDoors = %d, want 3", name, tpl.MinDoors)
					}
				}
			}
			if !found {
				t.Errorf("template %q not found", name)
			}
		}
	})

	t.Run("start and boss rooms are classified", func(t *testing.T) {
		for _, tpl := range lib.Templates() {
			switch tpl.Name {
			case "start_room":
				if tpl.RoomType != Start {
					t.Errorf("start_room.RoomType = %v, want Start", tpl.RoomType)
				}
			case "boss_room":
				if tpl.RoomType != Boss {
					t.Errorf("boss_room.RoomType = %v, want Boss", tpl.RoomType)
				}
			default:
				if tpl.RoomType != Normal {
					t.Errorf("%s.RoomType = %v, want Normal", tpl.Name, tpl.RoomType)
				}
			}
		}
	})
}

func TestRoomTemplate_DoorScan(t *testing.T) {
	lib := NewLibrary()
	var smallSquare *RoomTemplate
	for _, tpl := range lib.Templates() {
		if tpl.Name == "small_square" {
			smallSquare = tpl
		}
	}
	if smallSquare == nil {
		t.Fatal("small_square not found")
	}

	want := map[tilegrid.Direction][]XY{
		tilegrid.North: {{X: 2, Y: 1}, {X: 3, Y: 1}, {X: 4, Y: 1}},
		tilegrid.East:  {{X: 5, Y: 2}, {X: 5, Y: 3}, {X: 5, Y: 4}},
		tilegrid.South: {{X: 2, Y: 5}, {X: 3, Y: 5}, {X: 4, Y: 5}},
		tilegrid.West:  {{X: 1, Y: 2}, {X: 1, Y: 3}, {X: 1, Y: 4}},
	}
	if !reflect.DeepEqual(smallSquare.Doors, want) {
		t.Errorf("small_square.Doors = %+v, want %+v", smallSquare.Doors, want)
	}
	if got := smallSquare.DoorCount(); got != 12 {
		t.Errorf("DoorCount() = %d, want 12", got)
	}
}

func TestLibrary_CombinationsCoverEveryPair(t *testing.T) {
	lib := NewLibrary()
	for _, a := range lib.Templates() {
		if len(a.Combinations) != lib.Len() {
			t.Fatalf("%s.Combinations has %d entries, want %d", a.Name, len(a.Combinations), lib.Len())
		}
		for _, b := range lib.Templates() {
			if _, ok := a.Combinations[b.ID]; !ok {
				t.Errorf("%s.Combinations missing entry for %s", a.Name, b.Name)
			}
		}
	}
}

func TestLibrary_CombinationsAreDeterministic(t *testing.T) {
	a := NewLibrary()
	b := NewLibrary()

	for _, ta := range a.Templates() {
		tb := b.Template(ta.ID)
		if !reflect.DeepEqual(ta.Combinations, tb.Combinations) {
			t.Fatalf("combinations for %q differ across independent NewLibrary() calls", ta.Name)
		}
	}
}

func TestLibrary_SmallSquareSelfDock(t *testing.T) {
	lib := NewLibrary()
	var sq *RoomTemplate
	for _, tpl := range lib.Templates() {
		if tpl.Name == "small_square" {
			sq = tpl
		}
	}

	combos := sq.Combinations[sq.ID]
	if len(combos) == 0 {
		t.Fatal("small_square should be able to dock against itself through some door")
	}
	for _, c := range combos {
		if c.DoorADir.Reciprocal() != c.DoorBDir {
			t.Errorf("combination pairs non-reciprocal directions %v/%v", c.DoorADir, c.DoorBDir)
		}
	}
}

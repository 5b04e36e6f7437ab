package tilegrid

import "testing"

func TestIdx(t *testing.T) {
	t.Run("row major", func(t *testing.T) {
		if got := Idx(3, 2, 10); got != 23 {
			t.Errorf("Idx(3,2,10) = %d, want 23", got)
		}
	})

	t.Run("origin", func(t *testing.T) {
		if got := Idx(0, 0, 10); got != 0 {
			t.Errorf("Idx(0,0,10) = %d, want 0", got)
		}
	})
}

func TestInBounds(t *testing.T) {
	cases := []struct {
		idx, length int
		want        bool
	}{
		{0, 10, true},
		{9, 10, true},
		{10, 10, false},
		{-1, 10, false},
	}
	for _, c := range cases {
		if got := InBounds(c.idx, c.length); got != c.want {
			t.Errorf("InBounds(%d,%d) = %v, want %v", c.idx, c.length, got, c.want)
		}
	}
}

func TestEdgePredicates(t *testing.T) {
	const w, h = 5, 4
	const length = w * h

	t.Run("corners", func(t *testing.T) {
		// top-left corner: idx 0
		if !CrossesNorth(0, w) {
			t.Error("idx 0 should cross north")
		}
		if !CrossesWest(0, w) {
			t.Error("idx 0 should cross west")
		}
		if CrossesEast(0, w) {
			t.Error("idx 0 should not cross east")
		}
		if CrossesSouth(0, length, w) {
			t.Error("idx 0 should not cross south")
		}
	})

	t.Run("bottom-right corner", func(t *testing.T) {
		idx := length - 1
		if !CrossesEast(idx, w) {
			t.Error("last idx should cross east")
		}
		if !CrossesSouth(idx, length, w) {
			t.Error("last idx should cross south")
		}
	})

	t.Run("interior cell touches no edge", func(t *testing.T) {
		idx := Idx(2, 2, w)
		if CrossesNorth(idx, w) || CrossesSouth(idx, length, w) || CrossesEast(idx, w) || CrossesWest(idx, w) {
			t.Errorf("interior idx %d unexpectedly crosses an edge", idx)
		}
	})
}

func TestDirectionReciprocal(t *testing.T) {
	cases := []struct {
		in, want Direction
	}{
		{North, South},
		{South, North},
		{East, West},
		{West, East},
		{Direction(0), North}, // defensive default
	}
	for _, c := range cases {
		if got := c.in.Reciprocal(); got != c.want {
			t.Errorf("%v.Reciprocal() = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestDirectionOffset(t *testing.T) {
	cases := []struct {
		dir        Direction
		dx, dy     int
	}{
		{North, 0, -1},
		{East, 1, 0},
		{South, 0, 1},
		{West, -1, 0},
	}
	for _, c := range cases {
		dx, dy := c.dir.Offset()
		if dx != c.dx || dy != c.dy {
			t.Errorf("%v.Offset() = (%d,%d), want (%d,%d)", c.dir, dx, dy, c.dx, c.dy)
		}
	}
}

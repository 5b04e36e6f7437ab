package crawler

import (
	"testing"

	"pgregory.net/rapid"

	"github.com/deanfra/erebos-level-generator/pkg/genrng"
	"github.com/deanfra/erebos-level-generator/pkg/graphgen"
	"github.com/deanfra/erebos-level-generator/pkg/roomgraph"
	"github.com/deanfra/erebos-level-generator/pkg/roomtemplate"
	"github.com/deanfra/erebos-level-generator/pkg/tilegrid"
)

// TestProperty_P1_TilesOwnedByExactlyOneRoom generates random linear and
// complete graphs of varying size and checks P1: every non-zero,
// non-conflict map tile is covered by exactly one placed room's
// non-zero tile.
func TestProperty_P1_TilesOwnedByExactlyOneRoom(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		n := rapid.IntRange(1, 12).Draw(rt, "nodeCount")
		complete := rapid.Bool().Draw(rt, "complete")
		seed := rapid.Uint64().Draw(rt, "seed")

		var graph roomgraph.InputGraph = graphgen.Linear(n)
		if complete {
			graph = graphgen.Complete(n)
		}

		lib := roomtemplate.NewLibrary()
		rng := genrng.New(seed, "placement", []byte("property"))
		m, err := Run(graph, lib, 100, 100, rng)
		if err != nil {
			rt.Fatalf("Run failed: %v", err)
		}

		owner := make(map[int]int, len(m.Tiles))
		for _, room := range m.Rooms {
			for ly := 0; ly < room.Template.H; ly++ {
				for lx := 0; lx < room.Template.W; lx++ {
					if room.Tiles[ly*room.Template.W+lx] == tilegrid.Empty {
						continue
					}
					x, y := room.Origin.X+lx, room.Origin.Y+ly
					if x < 0 || x >= m.W || y < 0 || y >= m.H {
						rt.Fatalf("room %d paints tile (%d,%d) outside the %dx%d map", room.NodeID, x, y, m.W, m.H)
					}
					owner[tilegrid.Idx(x, y, m.W)]++
				}
			}
		}
		for idx, tile := range m.Tiles {
			if tile == tilegrid.Empty || tile == tilegrid.Conflict {
				continue
			}
			if owner[idx] != 1 {
				rt.Fatalf("tile %d (code %v) claimed by %d rooms, want exactly 1", idx, tile, owner[idx])
			}
		}
	})
}

// TestProperty_R1_DeterministicAcrossRuns checks that the same graph
// kind, node count, and seed produce byte-identical map buffers and
// room tables across two independent runs with freshly built libraries
// and RNGs.
func TestProperty_R1_DeterministicAcrossRuns(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		n := rapid.IntRange(1, 10).Draw(rt, "nodeCount")
		seed := rapid.Uint64().Draw(rt, "seed")

		mA, err := Run(graphgen.Linear(n), roomtemplate.NewLibrary(), 80, 80, genrng.New(seed, "placement", []byte("determinism")))
		if err != nil {
			rt.Fatalf("Run failed: %v", err)
		}
		mB, err := Run(graphgen.Linear(n), roomtemplate.NewLibrary(), 80, 80, genrng.New(seed, "placement", []byte("determinism")))
		if err != nil {
			rt.Fatalf("Run failed: %v", err)
		}

		if len(mA.Tiles) != len(mB.Tiles) {
			rt.Fatalf("tile buffer length mismatch")
		}
		for i := range mA.Tiles {
			if mA.Tiles[i] != mB.Tiles[i] {
				rt.Fatalf("tile %d diverged between identically-seeded runs", i)
			}
		}
		if len(mA.Rooms) != len(mB.Rooms) {
			rt.Fatalf("room count diverged: %d vs %d", len(mA.Rooms), len(mB.Rooms))
		}
		for id, roomA := range mA.Rooms {
			roomB, ok := mB.Rooms[id]
			if !ok || roomA.Origin != roomB.Origin || roomA.Template.ID != roomB.Template.ID {
				rt.Fatalf("room %d diverged between identically-seeded runs", id)
			}
		}
	})
}

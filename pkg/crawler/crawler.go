package crawler

import (
	"fmt"

	"github.com/deanfra/erebos-level-generator/pkg/genrng"
	"github.com/deanfra/erebos-level-generator/pkg/mapstate"
	"github.com/deanfra/erebos-level-generator/pkg/roomgraph"
	"github.com/deanfra/erebos-level-generator/pkg/roomtemplate"
	"github.com/deanfra/erebos-level-generator/pkg/tilegrid"
)

// Run places a room for every node reachable from g's seed node
// (Nodes()[0]) and returns the resulting map. The seed always receives
// the library's Start template, centered on the map; every other node
// gets whichever template and docking combination the walk happens to
// land on first, biased by min-door requirements and by Boss/Normal
// classification (a node is a Boss candidate iff its weight equals the
// weight of the last node in g.Nodes(), which is not necessarily the
// graph's maximum weight).
//
// A node that has no neighbour willing to accept it - every template
// rejected by CanPlace, by min-doors, or by room-type - is simply left
// unplaced; its subtree of the graph is not visited.
func Run(g roomgraph.InputGraph, lib *roomtemplate.Library, width, height int, rng *genrng.RNG) (*mapstate.Map, error) {
	nodes := g.Nodes()
	if len(nodes) == 0 {
		return nil, fmt.Errorf("crawler: graph has no nodes")
	}

	starts := lib.OfType(roomtemplate.Start)
	if len(starts) == 0 {
		return nil, fmt.Errorf("crawler: template library has no start room")
	}
	startTpl := starts[0]

	m := mapstate.NewMap(width, height)
	seed := nodes[0]
	origin := roomtemplate.XY{X: width/2 - startTpl.W/2, Y: height/2 - startTpl.H/2}

	// If the map is too small to even hold the Start template centered,
	// the walk can't begin: leave the map empty rather than stamping a
	// room that runs off the grid.
	if origin.X < 0 || origin.Y < 0 || origin.X+startTpl.W > width || origin.Y+startTpl.H > height {
		return m, nil
	}
	m.Commit(seed, origin, startTpl)

	neighbours := roomgraph.BuildNeighbourIndex(g)
	lastWeight := roomgraph.LastWeight(g)

	templateOrder := make([]int, 0, lib.Len())
	for _, tpl := range lib.Templates() {
		templateOrder = append(templateOrder, tpl.ID)
	}

	var crawlNode func(nodeA int)
	crawlNode = func(nodeA int) {
		roomA := m.Rooms[nodeA]

		for _, e := range neighbours[nodeA] {
			aToB := e.From == nodeA
			nodeB := e.To
			if !aToB {
				nodeB = e.From
			}

			// Stop at an existing node; this graph has already been
			// walked through it from some other direction.
			if _, exists := m.Rooms[nodeB]; exists {
				continue
			}

			templateIDs := append([]int(nil), templateOrder...)
			rng.Shuffle(len(templateIDs), func(i, j int) {
				templateIDs[i], templateIDs[j] = templateIDs[j], templateIDs[i]
			})

			roomAdded := false
			for _, tb := range templateIDs {
				if roomAdded {
					break
				}
				combos := roomA.Template.Combinations[tb]
				if len(combos) == 0 {
					continue
				}
				tplB := lib.Template(tb)

				// Soft bias: templates with a minimum door count are
				// preferred for well-connected nodes, but this is never
				// a hard requirement elsewhere in the walk.
				hasMinDoors := tplB.MinDoors <= g.OutDegree(nodeB)+1

				wantBoss := g.Weight(nodeB) == lastWeight
				correctType := tplB.RoomType == roomtemplate.Normal
				if wantBoss {
					correctType = tplB.RoomType == roomtemplate.Boss
				}
				if !hasMinDoors || !correctType {
					continue
				}

				shuffled := append([]roomtemplate.Combination(nil), combos...)
				rng.Shuffle(len(shuffled), func(i, j int) {
					shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
				})

				for _, c := range shuffled {
					candidateOrigin := roomtemplate.XY{
						X: roomA.Origin.X - c.Offset.X,
						Y: roomA.Origin.Y - c.Offset.Y,
					}
					if !m.CanPlace(candidateOrigin, tplB, c.DoorBDir) {
						continue
					}

					roomB := m.Commit(nodeB, candidateOrigin, tplB)
					connectDoor(m, nodeA, c.DoorADir, c.DoorAXY, nodeB, aToB)
					connectDoor(m, nodeB, c.DoorBDir, c.DoorBXY, nodeA, !aToB)
					// Re-commit both rooms so the new DoorConnected
					// markers reach the shared tile buffer.
					m.Commit(nodeB, roomB.Origin, roomB.Template)
					m.Commit(nodeA, roomA.Origin, roomA.Template)

					roomAdded = true
					break
				}
			}

			if roomAdded {
				crawlNode(nodeB)
			}
		}
	}

	crawlNode(seed)
	return m, nil
}

// connectDoor wires a door connection that, by construction, can never
// fail: node was just committed and pos came straight off its own
// template's door list.
func connectDoor(m *mapstate.Map, node int, dir tilegrid.Direction, pos roomtemplate.XY, neighbour int, outgoing bool) {
	if err := m.ConnectDoor(node, dir, pos, neighbour, outgoing); err != nil {
		panic(fmt.Sprintf("crawler: %v", err))
	}
}

// Package crawler walks a roomgraph.InputGraph depth-first, placing a
// room template for every node it reaches and wiring a door connection
// across every edge it crosses. It is the only package that ties
// roomtemplate, mapstate, roomgraph, and genrng together.
package crawler

// Package graphgen supplies a few reference roomgraph.InputGraph
// implementations: a linear chain, a complete mesh, and a directed
// Erdos-Renyi random graph. All three assign node weights sequentially
// heavier by node index, so the last node in every graph is also the
// heaviest - the seed for Boss-room classification.
package graphgen

// Package roomgraph defines the input contract the crawler walks (a
// small directed graph of weighted nodes) and the neighbour index built
// from it: for every node, the list of edges that touch it in either
// direction.
package roomgraph

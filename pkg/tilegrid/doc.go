// Package tilegrid defines the tile code alphabet and the row-major
// addressing arithmetic shared by the map state and the template
// precomputer. It has no notion of rooms or graphs, only flat byte
// buffers and integer coordinates.
package tilegrid

// Package roomtemplate holds the fixed catalogue of room shapes the
// placement engine draws from, and the offline precomputer that works
// out, for every ordered pair of templates, every way their doors can
// be aligned without the two footprints overlapping.
package roomtemplate

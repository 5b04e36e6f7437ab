// Package mapexport serializes a finished mapstate.Map to JSON for
// downstream tooling and to SVG for visual debugging.
package mapexport

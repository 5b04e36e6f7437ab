// Package genrng provides a deterministic, per-stage random number
// source. A crawl's RNG is derived from a master seed, a stage name,
// and a config hash, so that the same inputs always reproduce the same
// sequence of template and combination choices.
package genrng

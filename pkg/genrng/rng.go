package genrng

import (
	"crypto/sha256"
	"encoding/binary"
	"math/rand"
)

// RNG is a deterministic source scoped to one pipeline stage. Every
// method delegates to a math/rand.Rand seeded once at construction;
// given the same masterSeed, stageName, and configHash, two RNGs
// produce identical sequences.
type RNG struct {
	seed      uint64
	stageName string
	source    *rand.Rand
}

// New derives a stage-specific seed with SHA-256(masterSeed, stageName,
// configHash) and returns an RNG built from it.
func New(masterSeed uint64, stageName string, configHash []byte) *RNG {
	h := sha256.New()

	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], masterSeed)
	h.Write(buf[:])
	h.Write([]byte(stageName))
	h.Write(configHash)

	hash := h.Sum(nil)
	derived := binary.BigEndian.Uint64(hash[:8])

	return &RNG{
		seed:      derived,
		stageName: stageName,
		source:    rand.New(rand.NewSource(int64(derived))),
	}
}

// Shuffle pseudo-randomizes the order of n elements via swap.
func (r *RNG) Shuffle(n int, swap func(i, j int)) {
	r.source.Shuffle(n, swap)
}

// Float64 returns a pseudo-random float64 in [0.0, 1.0).
func (r *RNG) Float64() float64 {
	return r.source.Float64()
}

// Seed returns the derived seed for this stage, useful for logging
// which seed produced a given crawl.
func (r *RNG) Seed() uint64 {
	return r.seed
}

// StageName returns the stage this RNG was derived for.
func (r *RNG) StageName() string {
	return r.stageName
}

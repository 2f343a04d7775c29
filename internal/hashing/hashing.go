// Package hashing provides duplicate-position detection for batches of
// chess positions.
package hashing

import (
	"github.com/lgbarn/ludus-go/internal/chess"
)

// DuplicateDetector tracks seen positions.
type DuplicateDetector struct {
	// hashTable stores seen hash codes
	hashTable map[uint64][]PositionSignature
	// useExactMatch also requires equal move counters
	useExactMatch bool
	// duplicateCount tracks number of duplicates found
	duplicateCount int
	// maxCapacity limits unique entries (0 = unlimited)
	maxCapacity int
	// uniqueCount tracks the number of stored signatures
	uniqueCount int
}

// PositionSignature stores identifying information about a position.
type PositionSignature struct {
	// Hash is the Zobrist hash of the position
	Hash uint64
	// WeakHash is a fast hash for quick comparison
	WeakHash chess.HashCode
	// HalfMoves and FullMoves are compared only in exact mode
	HalfMoves uint
	FullMoves uint
}

// NewDuplicateDetector creates a new duplicate detector.
// maxCapacity of 0 means unlimited capacity.
func NewDuplicateDetector(exactMatch bool, maxCapacity int) *DuplicateDetector {
	return &DuplicateDetector{
		hashTable:     make(map[uint64][]PositionSignature),
		useExactMatch: exactMatch,
		maxCapacity:   maxCapacity,
	}
}

// Signature builds the signature of a position.
func Signature(state *chess.GameState) PositionSignature {
	return PositionSignature{
		Hash:      GenerateZobristHash(state),
		WeakHash:  WeakHash(&state.Board),
		HalfMoves: state.HalfMoves,
		FullMoves: state.FullMoves,
	}
}

// CheckAndAdd checks if a position is a duplicate and adds it to the hash
// table. Returns true if the position is a duplicate. Once the detector is
// full, new positions are checked but no longer stored.
func (d *DuplicateDetector) CheckAndAdd(state *chess.GameState) bool {
	if state == nil {
		return false
	}

	sig := Signature(state)

	if existing, ok := d.hashTable[sig.Hash]; ok {
		for _, existingSig := range existing {
			if d.signaturesMatch(sig, existingSig) {
				d.duplicateCount++
				return true
			}
		}
	}

	if d.IsFull() {
		return false
	}

	d.hashTable[sig.Hash] = append(d.hashTable[sig.Hash], sig)
	d.uniqueCount++
	return false
}

// signaturesMatch checks if two position signatures match.
func (d *DuplicateDetector) signaturesMatch(a, b PositionSignature) bool {
	if a.Hash != b.Hash {
		return false
	}
	if a.WeakHash != b.WeakHash {
		return false
	}
	if d.useExactMatch && (a.HalfMoves != b.HalfMoves || a.FullMoves != b.FullMoves) {
		return false
	}
	return true
}

// DuplicateCount returns the number of duplicates detected.
func (d *DuplicateDetector) DuplicateCount() int {
	return d.duplicateCount
}

// UniqueCount returns the number of unique positions stored.
func (d *DuplicateDetector) UniqueCount() int {
	return d.uniqueCount
}

// IsFull returns true if the detector has reached its capacity limit.
func (d *DuplicateDetector) IsFull() bool {
	return d.maxCapacity > 0 && d.uniqueCount >= d.maxCapacity
}

// HashType specifies what part of a position is hashed.
type HashType int

const (
	// HashPosition hashes placement, side to move and en passant file
	HashPosition HashType = iota
	// HashPlacement hashes piece placement only
	HashPlacement
)

// PositionHasher provides different hashing strategies for positions.
type PositionHasher struct {
	hashType HashType
}

// NewPositionHasher creates a new hasher with the specified strategy.
func NewPositionHasher(ht HashType) *PositionHasher {
	return &PositionHasher{hashType: ht}
}

// Hash generates a hash for the position based on the hash type.
func (h *PositionHasher) Hash(state *chess.GameState) uint64 {
	if h.hashType == HashPlacement {
		return placementHash(&state.Board)
	}
	return GenerateZobristHash(state)
}

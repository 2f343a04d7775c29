package hashing

import (
	"math/rand"

	"github.com/lgbarn/ludus-go/internal/chess"
)

// zobristSeed fixes the key tables so hashes are stable across runs.
const zobristSeed = 0x1d05

var (
	zobristPiece     [chess.NumPieceValues][2][chess.NumSquares]uint64
	zobristEnPassant [chess.BoardSize]uint64
	zobristWhiteMove uint64
)

func init() {
	rng := rand.New(rand.NewSource(zobristSeed))
	for piece := range zobristPiece {
		for colour := range zobristPiece[piece] {
			for sq := range zobristPiece[piece][colour] {
				zobristPiece[piece][colour][sq] = rng.Uint64()
			}
		}
	}
	for file := range zobristEnPassant {
		zobristEnPassant[file] = rng.Uint64()
	}
	zobristWhiteMove = rng.Uint64()
}

// GenerateZobristHash hashes the placement, side to move and en passant
// file of a position. Move counters are not included.
func GenerateZobristHash(state *chess.GameState) uint64 {
	hash := placementHash(&state.Board)
	if state.Turn == chess.White {
		hash ^= zobristWhiteMove
	}
	if state.EnPassant.Valid() {
		hash ^= zobristEnPassant[state.EnPassant.File()]
	}
	return hash
}

// placementHash hashes piece placement only.
func placementHash(board *chess.Board) uint64 {
	var hash uint64
	for sq := chess.Square(0); sq < chess.NumSquares; sq++ {
		piece := board.Get(sq)
		if piece == chess.Empty {
			continue
		}
		hash ^= zobristPiece[chess.ExtractPiece(piece)][chess.ExtractColour(piece)][sq]
	}
	return hash
}

// WeakHash is a cheap additive checksum of the placement used as a second
// opinion when two Zobrist hashes collide.
func WeakHash(board *chess.Board) chess.HashCode {
	var hash chess.HashCode
	for sq := chess.Square(0); sq < chess.NumSquares; sq++ {
		if piece := board.Get(sq); piece != chess.Empty {
			hash += chess.HashCode(piece) * chess.HashCode(int(sq)+1) * 0x9e3779b1
		}
	}
	return hash
}

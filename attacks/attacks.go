// Package attacks precomputes the leaper attack tables (pawn, knight,
// king) and the eight-direction ray tables, and derives classical
// sliding attacks for bishops, rooks, and queens on the fly from an
// occupancy bitboard and those tables. This is the classical
// ray-and-nearest-blocker design, not magic bitboards.
package attacks

import (
	"sync"

	"github.com/b-lovro/TriglavTactician/bitutil"
)

// Direction indexes the eight ray directions from a square.
type Direction int

const (
	North Direction = iota // toward rank 8 (decreasing square index)
	South                  // toward rank 1 (increasing square index)
	East
	West
	NorthEast
	NorthWest
	SouthEast
	SouthWest
	numDirections
)

// bitScanUpward is true for directions whose ray bits increase with
// distance from the origin (South, East, SouthEast, SouthWest): the nearest
// blocker along such a ray is found with BitScanForward.
var bitScanUpward = [numDirections]bool{
	North:     false,
	South:     true,
	East:      true,
	West:      false,
	NorthEast: false,
	NorthWest: false,
	SouthEast: true,
	SouthWest: true,
}

var (
	pawnAttacks  [2][64]bitutil.Bitboard // indexed by color: 0=white, 1=black
	knightTable  [64]bitutil.Bitboard
	kingTable    [64]bitutil.Bitboard
	rayTable     [numDirections][64]bitutil.Bitboard
	once         sync.Once
)

// Init computes every attack table exactly once. It is safe to call
// from multiple goroutines or repeatedly; only the first call does work.
func Init() {
	once.Do(buildTables)
}

func onBoard(rank, file int) bool { return rank >= 0 && rank < 8 && file >= 0 && file < 8 }

func buildTables() {
	for sq := 0; sq < 64; sq++ {
		rank := sq / 8 // 0 = rank 8 ... 7 = rank 1
		file := sq % 8

		// Pawn attacks: a white pawn advances toward rank 8, i.e. toward
		// decreasing square indices, so a white pawn at rank index r
		// attacks rank index r-1; black attacks rank index r+1.
		var wAtt, bAtt bitutil.Bitboard
		if rank > 0 {
			if file > 0 {
				wAtt = bitutil.SetBit(wAtt, (rank-1)*8+file-1)
			}
			if file < 7 {
				wAtt = bitutil.SetBit(wAtt, (rank-1)*8+file+1)
			}
		}
		if rank < 7 {
			if file > 0 {
				bAtt = bitutil.SetBit(bAtt, (rank+1)*8+file-1)
			}
			if file < 7 {
				bAtt = bitutil.SetBit(bAtt, (rank+1)*8+file+1)
			}
		}
		pawnAttacks[0][sq] = wAtt
		pawnAttacks[1][sq] = bAtt

		// Knight attacks: up-to-eight L-shaped destinations, file-clamped.
		knightOffsets := [8][2]int{
			{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2},
			{1, -2}, {1, 2}, {2, -1}, {2, 1},
		}
		var kn bitutil.Bitboard
		for _, off := range knightOffsets {
			r, f := rank+off[0], file+off[1]
			if onBoard(r, f) {
				kn = bitutil.SetBit(kn, r*8+f)
			}
		}
		knightTable[sq] = kn

		// King attacks: up-to-eight adjacent squares, file-clamped.
		kingOffsets := [8][2]int{
			{-1, -1}, {-1, 0}, {-1, 1}, {0, -1},
			{0, 1}, {1, -1}, {1, 0}, {1, 1},
		}
		var kg bitutil.Bitboard
		for _, off := range kingOffsets {
			r, f := rank+off[0], file+off[1]
			if onBoard(r, f) {
				kg = bitutil.SetBit(kg, r*8+f)
			}
		}
		kingTable[sq] = kg

		// Ray tables: the full open ray from (excluding) the origin to
		// the board edge, in each of the eight directions.
		rayTable[North][sq] = rayMask(rank, file, -1, 0)
		rayTable[South][sq] = rayMask(rank, file, 1, 0)
		rayTable[East][sq] = rayMask(rank, file, 0, 1)
		rayTable[West][sq] = rayMask(rank, file, 0, -1)
		rayTable[NorthEast][sq] = rayMask(rank, file, -1, 1)
		rayTable[NorthWest][sq] = rayMask(rank, file, -1, -1)
		rayTable[SouthEast][sq] = rayMask(rank, file, 1, 1)
		rayTable[SouthWest][sq] = rayMask(rank, file, 1, -1)
	}
}

func rayMask(rank, file, dRank, dFile int) bitutil.Bitboard {
	var b bitutil.Bitboard
	r, f := rank+dRank, file+dFile
	for onBoard(r, f) {
		b = bitutil.SetBit(b, r*8+f)
		r += dRank
		f += dFile
	}
	return b
}

// PawnAttacks returns the bitboard of squares a pawn of color c
// (0=white, 1=black) attacks from sq.
func PawnAttacks(color int, sq int) bitutil.Bitboard { return pawnAttacks[color][sq] }

// KnightAttacks returns the knight attack set from sq.
func KnightAttacks(sq int) bitutil.Bitboard { return knightTable[sq] }

// KingAttacks returns the king attack set from sq.
func KingAttacks(sq int) bitutil.Bitboard { return kingTable[sq] }

// Ray returns the full open ray in direction dir from (excluding) sq.
func Ray(dir Direction, sq int) bitutil.Bitboard { return rayTable[dir][sq] }

// slidingAttacks computes the classical blocker-scanned attack set for
// a slider from sq given the four directions it moves in, against the
// all-occupancy bitboard occ.
func slidingAttacks(sq int, occ bitutil.Bitboard, dirs [4]Direction) bitutil.Bitboard {
	var attacks bitutil.Bitboard
	for _, dir := range dirs {
		ray := rayTable[dir][sq]
		attacks |= ray
		blockers := ray & occ
		if blockers == 0 {
			continue
		}
		var blockerSq int
		if bitScanUpward[dir] {
			blockerSq = bitutil.BitScanForward(blockers)
		} else {
			blockerSq = bitutil.BitScanReverse(blockers)
		}
		// Clear every square strictly beyond the blocker; the blocker
		// square itself remains (the generator decides capture vs.
		// own-piece filtering).
		attacks &^= rayTable[dir][blockerSq]
	}
	return attacks
}

var rookDirs = [4]Direction{North, South, East, West}
var bishopDirs = [4]Direction{NorthEast, NorthWest, SouthEast, SouthWest}

// RookAttacks returns the rook attack set from sq given occupancy occ.
func RookAttacks(sq int, occ bitutil.Bitboard) bitutil.Bitboard {
	return slidingAttacks(sq, occ, rookDirs)
}

// BishopAttacks returns the bishop attack set from sq given occupancy occ.
func BishopAttacks(sq int, occ bitutil.Bitboard) bitutil.Bitboard {
	return slidingAttacks(sq, occ, bishopDirs)
}

// QueenAttacks is the union of rook and bishop attacks from sq.
func QueenAttacks(sq int, occ bitutil.Bitboard) bitutil.Bitboard {
	return RookAttacks(sq, occ) | BishopAttacks(sq, occ)
}

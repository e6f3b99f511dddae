// destset.go computes, for one piece, the ordered destination set that the
// continuation codec (§4.7) indexes into. This is the single routine the
// chain encoder and chain decoder both call; if it ever drifts between
// the two call sites, decoding silently desynchronizes. Its ordering is
// independent of, and different from, GenerateMoves's wire-format order
// for whole-position pseudo-legal move lists (§4.2): here a pawn's
// destinations are ordered by ascending square index over the union of
// push and capture squares, not grouped push-then-capture.

package chess

// Destinations is the ordered candidate-move list for one piece, indexed
// by the continuation codec's move_id.
type Destinations struct {
	Slots int
	list  []Move
}

// MoveForIndex returns the move identified by continuation move_id id.
func (d Destinations) MoveForIndex(id int) Move {
	return d.list[id]
}

// IndexForMove returns the move_id for m, and whether m is a member.
func (d Destinations) IndexForMove(m Move) (int, bool) {
	for i, cand := range d.list {
		if cand == m {
			return i, true
		}
	}
	return 0, false
}

// OwnPieceSquares returns side's occupied squares in ascending order, the
// enumeration piece_id indexes into.
func OwnPieceSquares(pos *Position, side Color) []Square {
	var squares []Square
	for bb := pos.ByColor[side]; bb != 0; {
		squares = append(squares, bb.Pop())
	}
	return squares
}

// PieceDestinations returns the ordered destination set for the piece
// currently on from.
func PieceDestinations(pos *Position, from Square) Destinations {
	pi := pos.Get(from)
	us := pi.Color()
	switch pi.Figure() {
	case Pawn:
		return pawnDestinations(pos, from, us)
	case King:
		return kingDestinations(pos, from, us)
	default:
		return shortRangeOrSliderDestinations(pos, from, pi.Figure(), us)
	}
}

// pawnPromoOrder is the ascending promo-field order (§4.3: promo =
// piece_type - Knight), used to expand destset promotion slots.
var pawnPromoOrder = [4]Figure{Knight, Bishop, Rook, Queen}

func pawnDestinations(pos *Position, from Square, us Color) Destinations {
	them := us.Opposite()
	occ := pos.occupied()

	forward, startRank, secondLast := 1, 1, 6
	if us == Black {
		forward, startRank, secondLast = -1, 6, 1
	}
	r, f := from.Rank(), from.File()

	ep := pos.EnpassantSquare()
	enemyOrEP := pos.ByColor[them]
	if ep != NoSquare {
		enemyOrEP |= ep.Bitboard()
	}

	var destBB Bitboard
	destBB |= PawnAttack(us, from) & enemyOrEP

	to1 := RankFile(r+forward, f)
	if !occ.Has(to1) {
		destBB |= to1.Bitboard()
		if r == startRank {
			to2 := RankFile(r+2*forward, f)
			if !occ.Has(to2) {
				destBB |= to2.Bitboard()
			}
		}
	}

	promoting := r == secondLast
	var list []Move
	for bb := destBB; bb != 0; {
		to := bb.Pop()
		mt := Normal
		if ep != NoSquare && to == ep {
			mt = EnPassant
		}
		if promoting {
			for _, promo := range pawnPromoOrder {
				list = append(list, Move{From: from, To: to, Type: Promotion, Promo: promo})
			}
		} else {
			list = append(list, Move{From: from, To: to, Type: mt})
		}
	}
	return Destinations{Slots: len(list), list: list}
}

func kingDestinations(pos *Position, from Square, us Color) Destinations {
	own := pos.ByColor[us]
	attacks := KingAttack(from) &^ own

	oo, ooo := WhiteOO, WhiteOOO
	if us == Black {
		oo, ooo = BlackOO, BlackOOO
	}
	rights := pos.CastlingAbility()

	var list []Move
	for bb := attacks; bb != 0; {
		list = append(list, Move{From: from, To: bb.Pop(), Type: Normal})
	}

	rank := from.Rank()
	if rights&ooo != 0 {
		list = append(list, Move{From: from, To: RankFile(rank, 0), Type: Castle})
	}
	if rights&oo != 0 {
		list = append(list, Move{From: from, To: RankFile(rank, 7), Type: Castle})
	}
	return Destinations{Slots: len(list), list: list}
}

func shortRangeOrSliderDestinations(pos *Position, from Square, fig Figure, us Color) Destinations {
	own := pos.ByColor[us]
	occ := pos.occupied()

	var attacks Bitboard
	switch fig {
	case Knight:
		attacks = KnightAttack(from)
	case Bishop:
		attacks = BishopAttack(from, occ)
	case Rook:
		attacks = RookAttack(from, occ)
	case Queen:
		attacks = QueenAttack(from, occ)
	}
	attacks &^= own

	var list []Move
	for bb := attacks; bb != 0; {
		list = append(list, Move{From: from, To: bb.Pop(), Type: Normal})
	}
	return Destinations{Slots: len(list), list: list}
}

// movegen.go generates pseudo-legal moves in the fixed order mandated by
// §4.2: pawns, knights, bishops, rooks, queens, kings, castling; LSB-first
// source squares, LSB-first destination squares within a source. Pawn moves
// are special-cased: single pushes (with inline four-way promotion
// expansion) first, then double pushes, then captures (with the same
// promotion expansion). This order is part of the wire format via the
// chain codec and MUST NOT be reordered.

package chess

// promoOrder is the queen/rook/bishop/knight expansion order for
// underpromotion candidates, per §4.2.
var promoOrder = [4]Figure{Queen, Rook, Bishop, Knight}

// GenerateMoves returns all pseudo-legal moves for the side to move. Moves
// may leave the moving side's own king in check; callers filter those out
// with IsChecked after DoMove.
func GenerateMoves(pos *Position) []Move {
	var moves []Move
	genPawnMoves(pos, &moves)
	genKnightMoves(pos, &moves)
	genSliderMoves(pos, Bishop, &moves)
	genSliderMoves(pos, Rook, &moves)
	genSliderMoves(pos, Queen, &moves)
	genKingMoves(pos, &moves)
	genCastleMoves(pos, &moves)
	return moves
}

func genPawnMoves(pos *Position, out *[]Move) {
	us := pos.SideToMove
	them := us.Opposite()
	occ := pos.occupied()
	pawn := ColorFigure(us, Pawn)

	forward, startRank, promoRank := 1, 1, 7
	if us == Black {
		forward, startRank, promoRank = -1, 6, 0
	}

	ep := pos.EnpassantSquare()
	theirs := pos.ByColor[them]

	for bb := pos.ByPiece(us, Pawn); bb != 0; {
		from := bb.Pop()
		r, f := from.Rank(), from.File()

		to := RankFile(r+forward, f)
		if !occ.Has(to) {
			if to.Rank() == promoRank {
				for _, promo := range promoOrder {
					*out = append(*out, Move{From: from, To: to, Type: Promotion, Promo: promo})
				}
			} else {
				*out = append(*out, Move{From: from, To: to, Type: Normal})
			}
			if r == startRank {
				to2 := RankFile(r+2*forward, f)
				if !occ.Has(to2) {
					*out = append(*out, Move{From: from, To: to2, Type: Normal})
				}
			}
		}

		var captures [2]Square
		n := 0
		if f > 0 {
			captures[n] = RankFile(r+forward, f-1)
			n++
		}
		if f < 7 {
			captures[n] = RankFile(r+forward, f+1)
			n++
		}
		if n == 2 && captures[0] > captures[1] {
			captures[0], captures[1] = captures[1], captures[0]
		}
		for i := 0; i < n; i++ {
			to := captures[i]
			isEP := ep != NoSquare && to == ep
			if !theirs.Has(to) && !isEP {
				continue
			}
			mt := Normal
			if isEP {
				mt = EnPassant
			}
			if to.Rank() == promoRank {
				for _, promo := range promoOrder {
					*out = append(*out, Move{From: from, To: to, Type: Promotion, Promo: promo})
				}
			} else {
				*out = append(*out, Move{From: from, To: to, Type: mt})
			}
		}
		_ = pawn
	}
}

func genKnightMoves(pos *Position, out *[]Move) {
	us := pos.SideToMove
	own := pos.ByColor[us]
	for bb := pos.ByPiece(us, Knight); bb != 0; {
		from := bb.Pop()
		for att := KnightAttack(from) &^ own; att != 0; {
			*out = append(*out, Move{From: from, To: att.Pop(), Type: Normal})
		}
	}
}

func genSliderMoves(pos *Position, fig Figure, out *[]Move) {
	us := pos.SideToMove
	own := pos.ByColor[us]
	occ := pos.occupied()
	for bb := pos.ByPiece(us, fig); bb != 0; {
		from := bb.Pop()
		var att Bitboard
		switch fig {
		case Bishop:
			att = BishopAttack(from, occ)
		case Rook:
			att = RookAttack(from, occ)
		case Queen:
			att = QueenAttack(from, occ)
		}
		att &^= own
		for att != 0 {
			*out = append(*out, Move{From: from, To: att.Pop(), Type: Normal})
		}
	}
}

func genKingMoves(pos *Position, out *[]Move) {
	us := pos.SideToMove
	own := pos.ByColor[us]
	bb := pos.ByPiece(us, King)
	if bb == 0 {
		return
	}
	from := bb.AsSquare()
	for att := KingAttack(from) &^ own; att != 0; {
		*out = append(*out, Move{From: from, To: att.Pop(), Type: Normal})
	}
}

func genCastleMoves(pos *Position, out *[]Move) {
	us := pos.SideToMove
	them := us.Opposite()
	rank := 0
	if us == Black {
		rank = 7
	}
	kingHome := RankFile(rank, 4)
	oo, ooo := WhiteOO, WhiteOOO
	if us == Black {
		oo, ooo = BlackOO, BlackOOO
	}
	rights := pos.CastlingAbility()

	if rights&ooo != 0 {
		b, c, d := RankFile(rank, 1), RankFile(rank, 2), RankFile(rank, 3)
		a := RankFile(rank, 0)
		if pos.IsEmpty(b) && pos.IsEmpty(c) && pos.IsEmpty(d) &&
			pos.GetAttacker(kingHome, them) == NoFigure &&
			pos.GetAttacker(d, them) == NoFigure &&
			pos.GetAttacker(c, them) == NoFigure {
			*out = append(*out, Move{From: kingHome, To: a, Type: Castle})
		}
	}
	if rights&oo != 0 {
		f, g := RankFile(rank, 5), RankFile(rank, 6)
		h := RankFile(rank, 7)
		if pos.IsEmpty(f) && pos.IsEmpty(g) &&
			pos.GetAttacker(kingHome, them) == NoFigure &&
			pos.GetAttacker(f, them) == NoFigure &&
			pos.GetAttacker(g, them) == NoFigure {
			*out = append(*out, Move{From: kingHome, To: h, Type: Castle})
		}
	}
}

// LegalMoves filters GenerateMoves down to moves that do not leave the
// moving side's own king in check.
func LegalMoves(pos *Position) []Move {
	us := pos.SideToMove
	pseudo := GenerateMoves(pos)
	legal := pseudo[:0:0]
	for _, m := range pseudo {
		pos.DoMove(m)
		ok := !pos.IsChecked(us)
		pos.UndoMove(m)
		if ok {
			legal = append(legal, m)
		}
	}
	return legal
}

// notation.go handles UCI-style coordinate move notation. SAN is not
// implemented: nothing in this codec ever consumes or produces SAN, only
// UCI-style from/to pairs (move_id candidates are resolved positionally,
// never parsed from text).

package chess

import "fmt"

var symbolToFigure = map[rune]Figure{
	'n': Knight, 'N': Knight,
	'b': Bishop, 'B': Bishop,
	'r': Rook, 'R': Rook,
	'q': Queen, 'Q': Queen,
}

// MoveToUCI converts m to UCI long-algebraic notation. Castling, encoded
// internally as "king captures own rook" (§3), is rendered as the king's
// actual two-square hop, matching engine conventions.
func MoveToUCI(m Move) string {
	from, to := m.From, m.To
	if m.Type == Castle {
		to, _ = CastleKingDestination(m.To)
	}
	s := from.String() + to.String()
	if m.Type == Promotion {
		s += promoSymbol[m.Promo]
	}
	return s
}

// UCIToMove parses a UCI move string against pos, reconstructing this
// package's internal move representation (castle To = rook square,
// en-passant To = the empty target square).
func UCIToMove(pos *Position, s string) (Move, error) {
	if len(s) < 4 {
		return Move{}, fmt.Errorf("notation: UCI move %q too short", s)
	}
	from, err := SquareFromString(s[0:2])
	if err != nil {
		return Move{}, err
	}
	to, err := SquareFromString(s[2:4])
	if err != nil {
		return Move{}, err
	}

	pi := pos.Get(from)
	if pi == NoPiece {
		return Move{}, fmt.Errorf("notation: no piece on %v", from)
	}

	if pi.Figure() == King {
		rank := from.Rank()
		if from == RankFile(rank, 4) && to == RankFile(rank, 6) {
			return Move{From: from, To: RankFile(rank, 7), Type: Castle}, nil
		}
		if from == RankFile(rank, 4) && to == RankFile(rank, 2) {
			return Move{From: from, To: RankFile(rank, 0), Type: Castle}, nil
		}
	}
	if pi.Figure() == Pawn && to != NoSquare && to == pos.EnpassantSquare() {
		return Move{From: from, To: to, Type: EnPassant}, nil
	}
	if pi.Figure() == Pawn && (to.Rank() == 0 || to.Rank() == 7) {
		if len(s) < 5 {
			return Move{}, fmt.Errorf("notation: promotion move %q missing promotion piece", s)
		}
		fig, ok := symbolToFigure[rune(s[4])]
		if !ok {
			return Move{}, fmt.Errorf("notation: unknown promotion piece %q", string(s[4]))
		}
		return Move{From: from, To: to, Type: Promotion, Promo: fig}, nil
	}
	return Move{From: from, To: to, Type: Normal}, nil
}

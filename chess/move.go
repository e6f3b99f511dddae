package chess

// MoveType identifies the kind of a move, matching the wire encoding's
// type ordinals (§4.3): Normal=0, Promotion=1, Castle=2, EnPassant=3.
type MoveType uint8

const (
	Normal MoveType = iota
	Promotion
	Castle
	EnPassant
)

func (t MoveType) String() string {
	switch t {
	case Normal:
		return "normal"
	case Promotion:
		return "promotion"
	case Castle:
		return "castle"
	case EnPassant:
		return "enpassant"
	default:
		return "unknown"
	}
}

// Move is a position-independent move: the wire-format quadruple used by
// both the move codec (§4.3) and the chain continuation codec (§4.7).
//
// Castling is encoded as "king captures own rook": To is the rook's
// square (H1/A1/H8/A8), not the king's destination square. En passant's
// To is the empty target square; the captured pawn sits at To^8.
type Move struct {
	From, To Square
	Type     MoveType
	Promo    Figure // only meaningful when Type == Promotion
}

// NullMove is the move with From == To == NoSquare.
var NullMove = Move{From: NoSquare, To: NoSquare}

// IsNull returns whether m is the null move.
func (m Move) IsNull() bool {
	return m.From == NoSquare && m.To == NoSquare
}

// CastleKingDestination returns the king's actual destination square and
// the rook's destination square for a castling move, given the rook
// square encoded in m.To.
func CastleKingDestination(rookTo Square) (kingTo, rookDest Square) {
	rank := rookTo.Rank()
	if rookTo.File() == 7 {
		return RankFile(rank, 6), RankFile(rank, 5) // king side: king->g, rook->f
	}
	return RankFile(rank, 2), RankFile(rank, 3) // queen side: king->c, rook->d
}

// EnPassantCaptureSquare returns the square of the pawn captured by an
// en-passant move whose destination (empty square) is to.
func EnPassantCaptureSquare(to Square) Square {
	return Square(uint8(to) ^ 8)
}

func (m Move) String() string {
	if m.IsNull() {
		return "0000"
	}
	s := m.From.String() + m.To.String()
	if m.Type == Promotion {
		s += promoSymbol[m.Promo]
	}
	return s
}

var promoSymbol = map[Figure]string{
	Knight: "n",
	Bishop: "b",
	Rook:   "r",
	Queen:  "q",
}

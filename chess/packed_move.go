// packed_move.go implements the 16-bit wire encoding of a Move (§4.3):
// MSB-first [type:2][from:6][to:6][promo:2]. The null move serializes to
// all-zero bits.

package chess

// PackedMove is the 16-bit wire form of a Move.
type PackedMove uint16

const (
	packedTypeShift  = 14
	packedFromShift  = 8
	packedToShift    = 2
	packedFromToMask = 0x3F
	packedPromoMask  = 0x3
)

// promoIndexToFigure maps the move codec's 2-bit promo field (piece_type
// - Knight) back to a Figure.
var promoIndexToFigure = [4]Figure{Knight, Bishop, Rook, Queen}

func promoIndex(fig Figure) int {
	return int(fig - Knight)
}

// PackMove encodes m into its 16-bit wire form.
func PackMove(m Move) PackedMove {
	if m.IsNull() {
		return 0
	}
	p := PackedMove(m.Type) << packedTypeShift
	p |= PackedMove(m.From&packedFromToMask) << packedFromShift
	p |= PackedMove(m.To&packedFromToMask) << packedToShift
	if m.Type == Promotion {
		p |= PackedMove(promoIndex(m.Promo))
	}
	return p
}

// UnpackMove decodes a 16-bit wire move. The promoted piece's color isn't
// part of this Move representation (DoMove derives it from the side to
// move); PromotedColor below reconstructs it when needed standalone.
func UnpackMove(p PackedMove) Move {
	if p == 0 {
		return NullMove
	}
	typ := MoveType(p>>packedTypeShift) & 0x3
	from := Square(p>>packedFromShift) & packedFromToMask
	to := Square(p>>packedToShift) & packedFromToMask
	m := Move{From: from, To: to, Type: typ}
	if typ == Promotion {
		m.Promo = promoIndexToFigure[p&packedPromoMask]
	}
	return m
}

// PromotedColor infers a decoded promotion's color from its destination
// rank, per §4.3: rank index 0 (algebraic rank 1) means Black promoted,
// any other destination rank means White.
func PromotedColor(to Square) Color {
	if to.Rank() == 0 {
		return Black
	}
	return White
}

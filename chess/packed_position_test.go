package chess

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

// cmp.Diff calls Position's own Equal method rather than reaching into its
// unexported fields (board/states/curr), since Position satisfies cmp's
// "has an Equal method" convention.
func diffPositions(want, got *Position) string {
	return cmp.Diff(want, got)
}

func TestPackPositionRoundTrip(t *testing.T) {
	for _, fen := range []string{fenStartPos, fenKiwipete} {
		pos, err := PositionFromFEN(fen)
		require.NoError(t, err, "PositionFromFEN(%q)", fen)

		got := UnpackPosition(PackPosition(pos))
		if diff := diffPositions(pos, got); diff != "" {
			t.Errorf("round trip mismatch for %q (-want +got):\n%s", fen, diff)
		}
	}
}

func TestPackPositionEnPassant(t *testing.T) {
	pos := NewPosition()
	pos.Put(SquareE1, ColorFigure(White, King))
	pos.Put(SquareE8, ColorFigure(Black, King))
	pos.Put(SquareD5, ColorFigure(White, Pawn))
	pos.Put(SquareE7, ColorFigure(Black, Pawn))
	pos.SideToMove = Black

	push, err := UCIToMove(pos, "e7e5")
	require.NoError(t, err)
	pos.DoMove(push)
	require.Equal(t, SquareE6, pos.EnpassantSquare())

	got := UnpackPosition(PackPosition(pos))
	if diff := diffPositions(pos, got); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestPackPositionCastlingRights(t *testing.T) {
	pos := NewPosition()
	pos.Put(SquareE1, ColorFigure(White, King))
	pos.Put(SquareA1, ColorFigure(White, Rook))
	pos.Put(SquareH1, ColorFigure(White, Rook))
	pos.Put(SquareE8, ColorFigure(Black, King))
	pos.Put(SquareA8, ColorFigure(Black, Rook))
	pos.Put(SquareH8, ColorFigure(Black, Rook))
	pos.SetCastlingAbility(AnyCastle)

	got := UnpackPosition(PackPosition(pos))
	if diff := diffPositions(pos, got); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

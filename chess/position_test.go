package chess

import "testing"

const (
	fenStartPos = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"
	fenKiwipete = "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"
)

func TestPutGetRemove(t *testing.T) {
	pos := NewPosition()

	if pos.Get(SquareA3) != NoPiece {
		t.Fatalf("expected empty square, got %v", pos.Get(SquareA3))
	}

	pawn := ColorFigure(White, Pawn)
	pos.Put(SquareA3, pawn)
	if pos.Get(SquareA3) != pawn {
		t.Errorf("expected %v at a3, got %v", pawn, pos.Get(SquareA3))
	}
	pos.Remove(SquareA3, pawn)
	if pos.Get(SquareA3) != NoPiece {
		t.Errorf("expected empty square after remove, got %v", pos.Get(SquareA3))
	}

	king := ColorFigure(Black, King)
	pos.Put(SquareH7, king)
	if pos.Get(SquareH7) != king {
		t.Errorf("expected %v at h7, got %v", king, pos.Get(SquareH7))
	}
}

func TestPositionFromFENRoundTrip(t *testing.T) {
	for _, fen := range []string{fenStartPos, fenKiwipete} {
		pos, err := PositionFromFEN(fen)
		if err != nil {
			t.Fatalf("parse error for %q: %v", fen, err)
		}
		if got := pos.String(); got != fen {
			t.Errorf("expected round trip %q, got %q", fen, got)
		}
		if err := pos.Verify(); err != nil {
			t.Errorf("verify failed for %q: %v", fen, err)
		}
	}
}

func TestDoMoveUndoMoveNormal(t *testing.T) {
	pos, err := PositionFromFEN(fenStartPos)
	if err != nil {
		t.Fatal(err)
	}
	before := pos.String()

	m, err := UCIToMove(pos, "e2e4")
	if err != nil {
		t.Fatal(err)
	}
	pos.DoMove(m)
	if pos.Get(SquareE4) != ColorFigure(White, Pawn) {
		t.Errorf("expected white pawn on e4, got %v", pos.Get(SquareE4))
	}
	if pos.Get(SquareE2) != NoPiece {
		t.Errorf("expected e2 empty, got %v", pos.Get(SquareE2))
	}
	if pos.SideToMove != Black {
		t.Errorf("expected black to move, got %v", pos.SideToMove)
	}
	// No black pawn stands beside e4, so no en-passant target is marked.
	if pos.EnpassantSquare() != NoSquare {
		t.Errorf("expected no en passant target, got %v", pos.EnpassantSquare())
	}

	pos.UndoMove(m)
	if got := pos.String(); got != before {
		t.Errorf("expected undo to restore %q, got %q", before, got)
	}
}

func TestDoMoveCapture(t *testing.T) {
	pos := NewPosition()
	pos.Put(SquareE1, ColorFigure(White, King))
	pos.Put(SquareE8, ColorFigure(Black, King))
	pos.Put(SquareD4, ColorFigure(White, Rook))
	pos.Put(SquareD7, ColorFigure(Black, Pawn))
	pos.SideToMove = White

	m := Move{From: SquareD4, To: SquareD7, Type: Normal}
	pos.DoMove(m)
	if pos.Get(SquareD7) != ColorFigure(White, Rook) {
		t.Errorf("expected white rook on d7, got %v", pos.Get(SquareD7))
	}
	pos.UndoMove(m)
	if pos.Get(SquareD7) != ColorFigure(Black, Pawn) {
		t.Errorf("expected black pawn restored on d7, got %v", pos.Get(SquareD7))
	}
	if pos.Get(SquareD4) != ColorFigure(White, Rook) {
		t.Errorf("expected white rook restored on d4, got %v", pos.Get(SquareD4))
	}
}

func TestCastleMovesPieces(t *testing.T) {
	pos := NewPosition()
	pos.Put(SquareE1, ColorFigure(White, King))
	pos.Put(SquareA1, ColorFigure(White, Rook))
	pos.Put(SquareH1, ColorFigure(White, Rook))
	pos.Put(SquareE8, ColorFigure(Black, King))
	pos.SetCastlingAbility(WhiteOO | WhiteOOO)
	pos.SideToMove = White

	m := Move{From: SquareE1, To: SquareA1, Type: Castle}
	pos.DoMove(m)
	if pos.Get(SquareA1) != NoPiece || pos.Get(SquareE1) != NoPiece {
		t.Errorf("expected a1 and e1 empty after castle")
	}
	if pos.Get(SquareC1) != ColorFigure(White, King) {
		t.Errorf("expected white king on c1, got %v", pos.Get(SquareC1))
	}
	if pos.Get(SquareD1) != ColorFigure(White, Rook) {
		t.Errorf("expected white rook on d1, got %v", pos.Get(SquareD1))
	}

	pos.UndoMove(m)
	if pos.Get(SquareA1) != ColorFigure(White, Rook) {
		t.Errorf("expected white rook restored on a1, got %v", pos.Get(SquareA1))
	}
	if pos.Get(SquareE1) != ColorFigure(White, King) {
		t.Errorf("expected white king restored on e1, got %v", pos.Get(SquareE1))
	}
}

func TestCastleRightsLostOnRookMove(t *testing.T) {
	pos := NewPosition()
	pos.Put(SquareE1, ColorFigure(White, King))
	pos.Put(SquareA1, ColorFigure(White, Rook))
	pos.Put(SquareE8, ColorFigure(Black, King))
	pos.SetCastlingAbility(WhiteOOO)
	pos.SideToMove = White

	m := Move{From: SquareA1, To: SquareA2, Type: Normal}
	pos.DoMove(m)
	if pos.CastlingAbility()&WhiteOOO != 0 {
		t.Errorf("expected queen side castle rights lost after rook move")
	}
	pos.UndoMove(m)
	if pos.CastlingAbility()&WhiteOOO == 0 {
		t.Errorf("expected queen side castle rights restored after undo")
	}
}

func TestCastleRightsLostOnRookCapture(t *testing.T) {
	pos := NewPosition()
	pos.Put(SquareE1, ColorFigure(White, King))
	pos.Put(SquareE8, ColorFigure(Black, King))
	pos.Put(SquareH1, ColorFigure(White, Rook))
	pos.Put(SquareG2, ColorFigure(Black, Bishop))
	pos.SetCastlingAbility(WhiteOO)
	pos.SideToMove = Black

	m := Move{From: SquareG2, To: SquareH1, Type: Normal}
	pos.DoMove(m)
	if pos.CastlingAbility()&WhiteOO != 0 {
		t.Errorf("expected king side castle rights lost after rook captured")
	}
	pos.UndoMove(m)
	if pos.CastlingAbility()&WhiteOO == 0 {
		t.Errorf("expected king side castle rights restored after undo")
	}
}

func TestEnPassantCapture(t *testing.T) {
	pos := NewPosition()
	pos.Put(SquareE1, ColorFigure(White, King))
	pos.Put(SquareE8, ColorFigure(Black, King))
	pos.Put(SquareD5, ColorFigure(White, Pawn))
	pos.Put(SquareE7, ColorFigure(Black, Pawn))
	pos.SideToMove = Black

	push, err := UCIToMove(pos, "e7e5")
	if err != nil {
		t.Fatal(err)
	}
	pos.DoMove(push)
	if pos.EnpassantSquare() != SquareE6 {
		t.Fatalf("expected en passant target e6, got %v", pos.EnpassantSquare())
	}

	cap := Move{From: SquareD5, To: SquareE6, Type: EnPassant}
	pos.DoMove(cap)
	if pos.Get(SquareE6) != ColorFigure(White, Pawn) {
		t.Errorf("expected white pawn on e6, got %v", pos.Get(SquareE6))
	}
	if pos.Get(SquareE5) != NoPiece {
		t.Errorf("expected captured pawn removed from e5")
	}

	pos.UndoMove(cap)
	if pos.Get(SquareE5) != ColorFigure(Black, Pawn) {
		t.Errorf("expected black pawn restored on e5, got %v", pos.Get(SquareE5))
	}
	if pos.Get(SquareD5) != ColorFigure(White, Pawn) {
		t.Errorf("expected white pawn restored on d5, got %v", pos.Get(SquareD5))
	}
}

func TestIsCheckedAndGetAttacker(t *testing.T) {
	pos := NewPosition()
	pos.Put(SquareE1, ColorFigure(White, King))
	pos.Put(SquareE8, ColorFigure(Black, King))
	pos.Put(SquareE4, ColorFigure(Black, Rook))
	pos.SideToMove = White

	if !pos.IsChecked(White) {
		t.Errorf("expected white king to be in check")
	}
	if fig := pos.GetAttacker(SquareE1, Black); fig != Rook {
		t.Errorf("expected rook as attacker, got %v", fig)
	}
}

func TestLegalMovesFiltersChecks(t *testing.T) {
	pos := NewPosition()
	pos.Put(SquareE1, ColorFigure(White, King))
	pos.Put(SquareE8, ColorFigure(Black, King))
	pos.Put(SquareE4, ColorFigure(Black, Rook))
	pos.Put(SquareD1, ColorFigure(White, Bishop))
	pos.SideToMove = White

	for _, m := range LegalMoves(pos) {
		pos.DoMove(m)
		if pos.IsChecked(White) {
			t.Errorf("legal move %v left own king in check", m)
		}
		pos.UndoMove(m)
	}
}

func TestGenerateMovesStartPos(t *testing.T) {
	pos, err := PositionFromFEN(fenStartPos)
	if err != nil {
		t.Fatal(err)
	}
	moves := GenerateMoves(pos)
	if len(moves) != 20 {
		t.Errorf("expected 20 moves from the start position, got %d", len(moves))
	}
}

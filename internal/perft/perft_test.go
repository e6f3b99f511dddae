package perft

import (
	"testing"

	"github.com/corvidlabs/binpack/chess"
)

const (
	startpos = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"
	kiwipete = "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"
	duplain  = "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1"
)

var goldenTables = map[string][]Counters{
	startpos: {
		{1, 0, 0, 0, 0},
		{20, 0, 0, 0, 0},
		{400, 0, 0, 0, 0},
		{8902, 34, 0, 0, 0},
		{197281, 1576, 0, 0, 0},
		{4865609, 82719, 258, 0, 0},
		{119060324, 2812008, 5248, 0, 0},
		{3195901860, 108329926, 319617, 883453, 0},
	},
	kiwipete: {
		{1, 0, 0, 0, 0},
		{48, 8, 0, 2, 0},
		{2039, 351, 1, 91, 0},
		{97862, 17102, 45, 3162, 0},
		{4085603, 757163, 1929, 128013, 15172},
		{193690690, 35043416, 73365, 4993637, 8392},
	},
	duplain: {
		{1, 0, 0, 0, 0},
		{14, 1, 0, 0, 0},
		{191, 14, 0, 0, 0},
		{2812, 209, 2, 0, 0},
		{43238, 3348, 123, 0, 0},
		{674624, 52051, 1165, 0, 0},
		{11030083, 940350, 33325, 0, 7552},
		{178633661, 14519036, 294874, 0, 140024},
	},
}

func testGoldenTable(t *testing.T, fen string, table []Counters) {
	t.Helper()
	for depth, want := range table {
		if testing.Short() && want.Nodes > 200000 {
			return
		}
		pos, err := chess.PositionFromFEN(fen)
		if err != nil {
			t.Fatalf("invalid FEN %q: %v", fen, err)
		}
		got := Count(pos, depth, NewHashTable())
		if got != want {
			t.Errorf("%s depth %d: expected %+v, got %+v", fen, depth, want, got)
		}
	}
}

func TestPerftStartPos(t *testing.T) {
	testGoldenTable(t, startpos, goldenTables[startpos][:6])
}

func TestPerftKiwipete(t *testing.T) {
	testGoldenTable(t, kiwipete, goldenTables[kiwipete][:5])
}

func TestPerftDuplain(t *testing.T) {
	testGoldenTable(t, duplain, goldenTables[duplain][:7])
}

func TestPerftPosition4(t *testing.T) {
	if testing.Short() {
		t.Skip("depth 6 on this position is too slow for -short")
	}
	fen := "r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1"
	pos, err := chess.PositionFromFEN(fen)
	if err != nil {
		t.Fatalf("invalid FEN %q: %v", fen, err)
	}
	got := Count(pos, 6, NewHashTable())
	if got.Nodes != 706045033 {
		t.Errorf("expected 706045033 nodes, got %d", got.Nodes)
	}
}

func BenchmarkPerftStartPos(b *testing.B) {
	pos, _ := chess.PositionFromFEN(startpos)
	for i := 0; i < b.N; i++ {
		Count(pos, 4, nil)
	}
}

// Command perft drives internal/perft against a FEN position, printing a
// per-depth node-count table in the teacher's zurichess/perft layout:
// nodes, captures, en-passant, castles, promotions, a pass/fail "eval"
// column against the known golden tables, and timing.
//
// Examples:
//
//	$ perft --fen startpos --max-depth 6
//	$ perft --fen kiwipete --min-depth 3 --max-depth 5 --split 1
package main

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/corvidlabs/binpack/chess"
	"github.com/corvidlabs/binpack/internal/perft"
)

var (
	fenFlag    string
	minDepth   int
	maxDepth   int
	depthFlag  int
	splitDepth int
	splitMoves []string
)

var knownPositions = map[string]string{
	"startpos": "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1",
	"kiwipete": "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
	"duplain":  "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
}

// goldenTables mirrors spec.md §8's perft property: known-good node counts
// used to flag "good"/"bad" at each depth, same as the teacher's perft tool.
var goldenTables = map[string][]perft.Counters{
	knownPositions["startpos"]: {
		{Nodes: 1},
		{Nodes: 20},
		{Nodes: 400},
		{Nodes: 8902, Captures: 34},
		{Nodes: 197281, Captures: 1576},
		{Nodes: 4865609, Captures: 82719, EnPassant: 258},
		{Nodes: 119060324, Captures: 2812008, EnPassant: 5248},
		{Nodes: 3195901860, Captures: 108329926, EnPassant: 319617, Castles: 883453},
	},
	knownPositions["kiwipete"]: {
		{Nodes: 1},
		{Nodes: 48, Captures: 8, Castles: 2},
		{Nodes: 2039, Captures: 351, EnPassant: 1, Castles: 91},
		{Nodes: 97862, Captures: 17102, EnPassant: 45, Castles: 3162},
		{Nodes: 4085603, Captures: 757163, EnPassant: 1929, Castles: 128013, Promotions: 15172},
		{Nodes: 193690690, Captures: 35043416, EnPassant: 73365, Castles: 4993637, Promotions: 8392},
	},
	knownPositions["duplain"]: {
		{Nodes: 1},
		{Nodes: 14, Captures: 1},
		{Nodes: 191, Captures: 14},
		{Nodes: 2812, Captures: 209, EnPassant: 2},
		{Nodes: 43238, Captures: 3348, EnPassant: 123},
		{Nodes: 674624, Captures: 52051, EnPassant: 1165},
		{Nodes: 11030083, Captures: 940350, EnPassant: 33325, Promotions: 7552},
		{Nodes: 178633661, Captures: 14519036, EnPassant: 294874, Promotions: 140024},
	},
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "perft",
		Short: "Count legal move-tree leaves from a FEN position",
		RunE:  runPerft,
	}
	cmd.Flags().StringVar(&fenFlag, "fen", "startpos", `position to search ("startpos", "kiwipete", "duplain", or a literal FEN)`)
	cmd.Flags().IntVar(&minDepth, "min-depth", 1, "minimum depth to search (inclusive)")
	cmd.Flags().IntVar(&maxDepth, "max-depth", 5, "maximum depth to search (inclusive)")
	cmd.Flags().IntVar(&depthFlag, "depth", 0, "if non-zero, search only this depth")
	cmd.Flags().IntVar(&splitDepth, "split", 0, "split move-by-move counts down to this depth")
	return cmd
}

func runPerft(cmd *cobra.Command, args []string) error {
	fen := fenFlag
	var expected []perft.Counters
	if known, ok := knownPositions[fen]; ok {
		fen = known
		expected = goldenTables[fen]
	}
	if depthFlag != 0 {
		minDepth, maxDepth = depthFlag, depthFlag
	}

	fmt.Printf("Searching FEN %q\n", fen)
	pos, err := chess.PositionFromFEN(fen)
	if err != nil {
		return fmt.Errorf("invalid --fen: %w", err)
	}

	fmt.Printf("depth        nodes   captures enpassant castles   promotions eval  KNps   elapsed\n")
	fmt.Printf("-----+------------+----------+---------+---------+----------+-----+------+-------\n")

	for d := minDepth; d <= maxDepth; d++ {
		start := time.Now()
		c := split(pos, d, splitDepth)
		elapsed := time.Since(start)

		ok := ""
		if d < len(expected) {
			if c == expected[d] {
				ok = "good"
			} else {
				ok = "bad"
			}
		}

		kNps := float64(0)
		if elapsed.Seconds() > 0 {
			kNps = float64(c.Nodes) / elapsed.Seconds() / 1e3
		}
		fmt.Printf("   %2d %12d %10d %9d %9d %10d %-4s %6.f %v\n",
			d, c.Nodes, c.Captures, c.EnPassant, c.Castles, c.Promotions, ok, kNps, elapsed)

		if ok == "bad" {
			e := expected[d]
			fmt.Printf("   %2d %12d %10d %9d %9d %10d %s\n",
				d, e.Nodes, e.Captures, e.EnPassant, e.Castles, e.Promotions, "expected")
			return fmt.Errorf("perft mismatch at depth %d", d)
		}
	}
	return nil
}

// split recurses down to splitDepth, printing per-move-sequence subtotals
// the way the teacher's perft tool does, then delegates the remainder to
// the plain (and much faster, transposition-cached) perft.Count.
func split(pos *chess.Position, depth, splitDepth int) perft.Counters {
	if depth == 0 || splitDepth == 0 {
		return perft.Count(pos, depth, perft.NewHashTable())
	}

	us := pos.SideToMove
	var total perft.Counters
	for _, move := range chess.GenerateMoves(pos) {
		pos.DoMove(move)
		if !pos.IsChecked(us) {
			splitMoves = append(splitMoves, chess.MoveToUCI(move))
			total.Add(split(pos, depth-1, splitDepth-1))
			splitMoves = splitMoves[:len(splitMoves)-1]
		}
		pos.UndoMove(move)
	}
	if len(splitMoves) != 0 {
		fmt.Printf("   %2d %12d split %s\n", depth, total.Nodes, strings.Join(splitMoves, " "))
	}
	return total
}

func main() {
	log.SetFlags(log.Lshortfile)
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

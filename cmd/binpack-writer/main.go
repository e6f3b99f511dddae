// Command binpack-writer emits a hard-coded sequence of samples as a
// binpack file, the CLI surface described in spec.md §6 ("a writer
// utility that emits a hard-coded sequence of samples"). The sequence
// itself is loaded from an embedded YAML fixture rather than a Go slice
// literal and replayed through chess.PositionFromFEN/chess.UCIToMove to
// build real Sample values.
package main

import (
	_ "embed"
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/corvidlabs/binpack/binpack"
	"github.com/corvidlabs/binpack/chess"
)

//go:embed demo_game.yaml
var demoGameYAML []byte

// demoEntry is one line of the embedded demo-game fixture: the position
// to move from, the move played, and its training-sample envelope.
type demoEntry struct {
	FEN    string `yaml:"fen"`
	Move   string `yaml:"move"`
	Score  int16  `yaml:"score"`
	Ply    uint16 `yaml:"ply"`
	Result int16  `yaml:"result"`
}

type demoGame struct {
	Entries []demoEntry `yaml:"entries"`
}

func loadDemoGame() ([]binpack.Sample, error) {
	var game demoGame
	if err := yaml.Unmarshal(demoGameYAML, &game); err != nil {
		return nil, fmt.Errorf("parsing embedded demo game: %w", err)
	}

	samples := make([]binpack.Sample, 0, len(game.Entries))
	for i, e := range game.Entries {
		pos, err := chess.PositionFromFEN(e.FEN)
		if err != nil {
			return nil, fmt.Errorf("demo entry %d: %w", i, err)
		}
		move, err := chess.UCIToMove(pos, e.Move)
		if err != nil {
			return nil, fmt.Errorf("demo entry %d: move %q: %w", i, e.Move, err)
		}
		samples = append(samples, binpack.Sample{
			Position: pos,
			Move:     move,
			Score:    e.Score,
			Ply:      e.Ply,
			Result:   e.Result,
			Rule50:   uint16(pos.HalfMoveClock()),
		})
	}
	return samples, nil
}

func newRootCmd() *cobra.Command {
	out := "mynew.binpack"
	cmd := &cobra.Command{
		Use:   "binpack-writer [output-path]",
		Short: "Write the embedded demo game as a binpack file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				out = args[0]
			}
			return run(out)
		},
	}
	return cmd
}

func run(outPath string) error {
	samples, err := loadDemoGame()
	if err != nil {
		return err
	}

	f, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("creating %s: %w", outPath, err)
	}
	defer f.Close()

	w := binpack.NewWriter(f)
	for _, s := range samples {
		if err := w.Write(s); err != nil {
			return fmt.Errorf("writing sample: %w", err)
		}
	}
	if err := w.FlushAndEnd(); err != nil {
		return fmt.Errorf("flushing %s: %w", outPath, err)
	}

	fmt.Printf("Wrote %d samples to %s\n", len(samples), outPath)
	return nil
}

func main() {
	log.SetFlags(log.Lshortfile)
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

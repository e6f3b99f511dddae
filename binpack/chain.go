// chain.go implements the chain reader state machine of §4.8: a chunk
// starts with a 32-byte stem, followed by a 16-bit ply count and that
// many bit-packed continuations. Each continuation replays the previous
// move against a position this reader carries forward, so continuations
// never repeat position bytes.

package binpack

import (
	"encoding/binary"

	"github.com/corvidlabs/binpack/bitpack"
	"github.com/corvidlabs/binpack/chess"
)

// chainReader walks one chunk's stem-plus-continuations sequence.
type chainReader struct {
	chunk  []byte
	offset int

	mt             *bitpack.Reader
	pliesRemaining int

	pos           *chess.Position // live position, replayed forward as continuations decode
	nextMove      chess.Move      // move to apply before decoding the next continuation
	lastScoreBase int16           // the encoder's running "last_score" baseline
	lastResult    int16
	lastPly       uint16
}

// atEnd reports whether the chunk has no more stems or continuations.
func (c *chainReader) atEnd() bool {
	return c.mt == nil && c.offset+stemSize+2 > len(c.chunk)
}

// next decodes and returns the next sample in the chain.
func (c *chainReader) next() (Sample, error) {
	if c.mt == nil {
		return c.nextStem()
	}
	return c.nextContinuation()
}

func (c *chainReader) nextStem() (Sample, error) {
	if c.offset+stemSize+2 > len(c.chunk) {
		return Sample{}, ErrEndOfFile
	}

	var stemBytes [stemSize]byte
	copy(stemBytes[:], c.chunk[c.offset:c.offset+stemSize])
	sample := UnpackStem(stemBytes)
	c.offset += stemSize

	plies := int(binary.BigEndian.Uint16(c.chunk[c.offset : c.offset+2]))
	c.offset += 2

	livePos := sample.Position
	c.pos = livePos
	c.nextMove = sample.Move
	c.lastScoreBase = -sample.Score
	c.lastResult = sample.Result
	c.lastPly = sample.Ply

	if plies > 0 {
		c.mt = bitpack.NewReader(c.chunk[c.offset:])
		c.pliesRemaining = plies
	}

	sample.Position = livePos.Clone()
	return sample, nil
}

func (c *chainReader) nextContinuation() (Sample, error) {
	c.pos.DoMove(c.nextMove)

	result := -c.lastResult
	ply := c.lastPly + 1

	snapshot := c.pos.Clone()
	move, delta := decodeContinuation(c.mt, c.pos)
	score := c.lastScoreBase + delta

	sample := Sample{
		Position: snapshot,
		Move:     move,
		Score:    score,
		Ply:      ply,
		Result:   result,
		Rule50:   uint16(c.pos.HalfMoveClock()),
	}

	c.nextMove = move
	c.lastScoreBase = -score
	c.lastResult = result
	c.lastPly = ply

	c.pliesRemaining--
	if c.pliesRemaining == 0 {
		c.offset += c.mt.BytesConsumed()
		c.mt = nil
	}

	return sample, nil
}

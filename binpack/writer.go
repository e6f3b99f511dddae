// writer.go implements the chain writer state machine of §4.9: each
// sample either continues the in-progress chain (if it's the direct
// result of the previous sample's move) or closes it and starts a new
// stem. Finished chunk buffers are framed and flushed once they reach
// the suggested chunk size; FlushAndEnd forces a final, possibly
// under-sized, chunk.
package binpack

import (
	"encoding/binary"
	"io"
	"log"

	"github.com/corvidlabs/binpack/bitpack"
	"github.com/corvidlabs/binpack/chess"
)

// suggestedChunkSize is the advisory threshold past which a chunk buffer
// is framed and flushed (§4.9, §9 open question on exact sizing policy).
const suggestedChunkSize = 1 << 20

// Writer serializes a stream of Samples as framed BINP chunks.
type Writer struct {
	out      io.Writer
	chunkBuf []byte
	mt       *bitpack.Writer
	numPlies int

	haveLast      bool
	lastPos       *chess.Position
	lastMove      chess.Move
	lastResult    int16
	lastPly       uint16
	lastScoreBase int16
}

// NewWriter returns a Writer that frames chunks onto out.
func NewWriter(out io.Writer) *Writer {
	return &Writer{out: out, mt: bitpack.NewWriter()}
}

// Write appends sample to the stream, continuing the current chain or
// starting a new one as needed.
func (w *Writer) Write(sample Sample) error {
	if w.haveLast && w.isContinuation(sample) {
		w.appendContinuation(sample)
	} else {
		if w.haveLast {
			w.appendTrailer()
			if err := w.maybeFlushChunk(); err != nil {
				return err
			}
		}
		w.startChain(sample)
	}

	w.haveLast = true
	w.lastPos = sample.Position
	w.lastMove = sample.Move
	w.lastResult = sample.Result
	w.lastPly = sample.Ply
	return nil
}

// FlushAndEnd closes the in-progress chain and flushes any buffered
// chunk, even if it's under the suggested size. Callers must call this
// once after the last Write to avoid losing buffered samples.
func (w *Writer) FlushAndEnd() error {
	if w.haveLast {
		w.appendTrailer()
		w.haveLast = false
	}
	return w.forceFlushChunk()
}

// Close flushes the writer like FlushAndEnd, additionally logging the
// failure so callers that drop the error (e.g. a deferred Close) still
// get a trace of what went wrong.
func (w *Writer) Close() error {
	if err := w.FlushAndEnd(); err != nil {
		log.Printf("binpack: Writer.Close: %v", err)
		return err
	}
	return nil
}

func (w *Writer) isContinuation(sample Sample) bool {
	if w.lastResult != -sample.Result || w.lastPly+1 != sample.Ply {
		return false
	}
	candidate := w.lastPos.Clone()
	candidate.DoMove(w.lastMove)
	return candidate.Equal(sample.Position)
}

func (w *Writer) startChain(sample Sample) {
	stem := PackStem(sample)
	w.chunkBuf = append(w.chunkBuf, stem[:]...)
	w.mt.Reset()
	w.numPlies = 0
	w.lastScoreBase = -sample.Score
}

func (w *Writer) appendContinuation(sample Sample) {
	delta := sample.Score - w.lastScoreBase
	encodeContinuation(w.mt, sample.Position, sample.Move, delta)
	w.numPlies++
	w.lastScoreBase = -sample.Score
}

func (w *Writer) appendTrailer() {
	var plyBuf [2]byte
	binary.BigEndian.PutUint16(plyBuf[:], uint16(w.numPlies))
	w.chunkBuf = append(w.chunkBuf, plyBuf[:]...)
	w.chunkBuf = append(w.chunkBuf, w.mt.Bytes()...)
}

func (w *Writer) maybeFlushChunk() error {
	if len(w.chunkBuf) < suggestedChunkSize {
		return nil
	}
	return w.forceFlushChunk()
}

func (w *Writer) forceFlushChunk() error {
	if len(w.chunkBuf) == 0 {
		return nil
	}
	if err := writeChunk(w.out, w.chunkBuf); err != nil {
		return err
	}
	w.chunkBuf = w.chunkBuf[:0]
	return nil
}

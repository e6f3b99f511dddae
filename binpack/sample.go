// sample.go implements the 32-byte packed stem layout (§4.5): a 24-byte
// packed position, a 2-byte packed move, a 2-byte zig-zag score, a 2-byte
// word combining the game result and ply, and a 2-byte rule50 counter.

package binpack

import (
	"encoding/binary"

	"github.com/corvidlabs/binpack/bitpack"
	"github.com/corvidlabs/binpack/chess"
)

const stemSize = 32

// Sample is one training position: the position to move from, the move
// played, its evaluation, the game ply it occurred at, and the eventual
// game result from the position's side-to-move perspective.
type Sample struct {
	Position *chess.Position
	Move     chess.Move
	Score    int16
	Ply      uint16
	Result   int16
	Rule50   uint16
}

// PackStem encodes s into its 32-byte wire form.
func PackStem(s Sample) [stemSize]byte {
	var out [stemSize]byte

	pp := chess.PackPosition(s.Position)
	copy(out[:24], pp[:])

	binary.BigEndian.PutUint16(out[24:26], uint16(chess.PackMove(s.Move)))
	binary.BigEndian.PutUint16(out[26:28], bitpack.ZigZagEncode(s.Score))

	resultCode := bitpack.ZigZagEncode(s.Result) & 0x3
	word := resultCode<<14 | (s.Ply & 0x3FFF)
	binary.BigEndian.PutUint16(out[28:30], word)

	binary.BigEndian.PutUint16(out[30:32], s.Rule50)
	return out
}

// UnpackStem decodes a 32-byte wire stem. The returned Position's
// half-move clock and full-move number, which the 24-byte codec doesn't
// carry, are filled in from the stem's Rule50 and Ply fields.
func UnpackStem(b [stemSize]byte) Sample {
	var pp chess.PackedPosition
	copy(pp[:], b[:24])
	pos := chess.UnpackPosition(pp)

	move := chess.UnpackMove(chess.PackedMove(binary.BigEndian.Uint16(b[24:26])))
	score := bitpack.ZigZagDecode(binary.BigEndian.Uint16(b[26:28]))

	word := binary.BigEndian.Uint16(b[28:30])
	ply := word & 0x3FFF
	result := bitpack.ZigZagDecode(word >> 14)

	rule50 := binary.BigEndian.Uint16(b[30:32])

	pos.SetHalfMoveClock(int(rule50))
	pos.FullMoveNumber = int(ply)/2 + 1

	return Sample{
		Position: pos,
		Move:     move,
		Score:    score,
		Ply:      ply,
		Result:   result,
		Rule50:   rule50,
	}
}

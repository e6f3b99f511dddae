// continuation.go implements the per-ply continuation codec of §4.7: a
// piece_id indexing the mover's own pieces, a move_id indexing that
// piece's destination set, and a zig-zag, variable-length score delta.
// Encoder and decoder both resolve these sets from chess.OwnPieceSquares
// and chess.PieceDestinations so they can never drift apart.

package binpack

import (
	"github.com/corvidlabs/binpack/bitpack"
	"github.com/corvidlabs/binpack/chess"
)

// scoreDeltaBlock is the VLE16 group width used for continuation score
// deltas (§4.7).
const scoreDeltaBlock = 4

// encodeContinuation writes the move played from pos, and the zig-zag
// delta between the new score and the chain's running baseline, to w.
func encodeContinuation(w *bitpack.Writer, pos *chess.Position, move chess.Move, scoreDelta int16) {
	own := chess.OwnPieceSquares(pos, pos.SideToMove)
	pieceID := 0
	for i, sq := range own {
		if sq == move.From {
			pieceID = i
			break
		}
	}
	w.AddBits(uint32(pieceID), bitpack.UsedBits(len(own)))

	dests := chess.PieceDestinations(pos, move.From)
	moveID, _ := dests.IndexForMove(move)
	w.AddBits(uint32(moveID), bitpack.UsedBits(dests.Slots))

	w.AddVLE16(bitpack.ZigZagEncode(scoreDelta), scoreDeltaBlock)
}

// decodeContinuation reads one continuation's move and score delta given
// the position it was played from. pos is read, not mutated.
func decodeContinuation(r *bitpack.Reader, pos *chess.Position) (chess.Move, int16) {
	own := chess.OwnPieceSquares(pos, pos.SideToMove)
	pieceID := int(r.ReadBits(bitpack.UsedBits(len(own))))
	from := own[pieceID]

	dests := chess.PieceDestinations(pos, from)
	moveID := int(r.ReadBits(bitpack.UsedBits(dests.Slots)))
	move := dests.MoveForIndex(moveID)

	delta := bitpack.ZigZagDecode(r.ReadVLE16(scoreDeltaBlock))
	return move, delta
}

// chunk.go implements the BINP chunk framing of §4.10: a 4-byte magic, a
// 4-byte little-endian payload length, then the payload itself. Chunks
// are independently decodable; a reader never needs to look past one to
// make sense of it.

package binpack

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

const maxChunkPayload = 100 * 1024 * 1024 // §4.10, §7

var chunkMagic = [4]byte{'B', 'I', 'N', 'P'}

// ErrEndOfFile is returned once every chunk in a stream has been consumed.
var ErrEndOfFile = errors.New("binpack: end of file")

// ErrInvalidMagic is returned when a chunk header's magic isn't "BINP".
var ErrInvalidMagic = errors.New("binpack: invalid chunk magic")

// ErrChunkTooLarge is returned when a chunk's framed length exceeds the
// 100 MiB policy (§7).
type ErrChunkTooLarge struct {
	Length uint32
}

func (e *ErrChunkTooLarge) Error() string {
	return fmt.Sprintf("binpack: chunk payload of %d bytes exceeds the 100 MiB limit", e.Length)
}

// readChunk reads one framed BINP chunk from r and returns its payload.
func readChunk(r io.Reader) ([]byte, error) {
	var header [8]byte
	if _, err := io.ReadFull(r, header[:]); err != nil {
		if err == io.EOF {
			return nil, ErrEndOfFile
		}
		return nil, err
	}
	if !bytes.Equal(header[:4], chunkMagic[:]) {
		return nil, ErrInvalidMagic
	}
	length := binary.LittleEndian.Uint32(header[4:8])
	if length > maxChunkPayload {
		return nil, &ErrChunkTooLarge{Length: length}
	}
	payload := make([]byte, length)
	if _, err := io.ReadFull(r, payload); err != nil {
		return nil, err
	}
	return payload, nil
}

// writeChunk frames payload as a single BINP chunk and writes it to w.
func writeChunk(w io.Writer, payload []byte) error {
	if len(payload) > maxChunkPayload {
		return &ErrChunkTooLarge{Length: uint32(len(payload))}
	}
	var header [8]byte
	copy(header[:4], chunkMagic[:])
	binary.LittleEndian.PutUint32(header[4:8], uint32(len(payload)))
	if _, err := w.Write(header[:]); err != nil {
		return err
	}
	_, err := w.Write(payload)
	return err
}

// reader.go is the top-level binpack stream reader (§4.8, §6): it pulls
// framed BINP chunks from an io.Reader on demand and hands back Samples
// one at a time, transparently crossing chunk boundaries.

package binpack

import "io"

// Reader decodes a stream of framed BINP chunks into Samples.
type Reader struct {
	src   io.Reader
	chain *chainReader

	consumedBefore uint64 // payload bytes consumed by chunks before the current one
}

// NewReader returns a Reader pulling chunks from r.
func NewReader(r io.Reader) *Reader {
	return &Reader{src: r}
}

// ReadBytes returns the cumulative number of chunk payload bytes consumed
// so far, for progress reporting (§6).
func (r *Reader) ReadBytes() uint64 {
	n := r.consumedBefore
	if r.chain != nil {
		n += uint64(r.chain.offset)
	}
	return n
}

// HasNext reports whether Next can return another sample without error.
func (r *Reader) HasNext() bool {
	if r.chain != nil && !r.chain.atEnd() {
		return true
	}
	return r.fetchChunk() == nil
}

// Next returns the next sample in the stream, or ErrEndOfFile once every
// chunk has been consumed.
func (r *Reader) Next() (Sample, error) {
	if r.chain == nil || r.chain.atEnd() {
		if err := r.fetchChunk(); err != nil {
			return Sample{}, err
		}
	}
	return r.chain.next()
}

// IsNextEntryContinuation reports whether the sample Next would return is
// a continuation of the previous sample, rather than a fresh stem.
func (r *Reader) IsNextEntryContinuation() bool {
	return r.chain != nil && r.chain.mt != nil
}

func (r *Reader) fetchChunk() error {
	for r.chain == nil || r.chain.atEnd() {
		if r.chain != nil {
			r.consumedBefore += uint64(len(r.chain.chunk))
		}
		payload, err := readChunk(r.src)
		if err != nil {
			return err
		}
		r.chain = &chainReader{chunk: payload}
	}
	return nil
}

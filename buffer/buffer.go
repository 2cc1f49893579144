// Package buffer implements the ring-style byte staging area the decoder
// reads pending input from: a start cursor, a valid byte count, a fixed
// capacity, and a "high tide" skip offset that callers can store and read
// back via SetHighTide/HighTide. Ring itself does not apply the offset to
// Bytes or Eat, and the decoder does not set it: an unrecognized CSI
// sequence's bytes are consumed like any other event's.
package buffer

import (
	"errors"

	"golang.org/x/sys/unix"
)

var (
	// ErrBufferFull is returned when a read or push attempt has no room left.
	ErrBufferFull = errors.New("tkey/buffer: buffer full")
	// ErrNoFileDescriptor is returned when AdviseReadable is called without a
	// usable file descriptor.
	ErrNoFileDescriptor = errors.New("tkey/buffer: no file descriptor")
)

// Status is the outcome of AdviseReadable.
type Status int

const (
	// Again means bytes were read into the buffer; the caller should retry
	// decoding.
	Again Status = iota
	// None means no data was currently available (EAGAIN/EWOULDBLOCK).
	None
	// EOF means the file descriptor reported end of stream (read returned 0).
	EOF
	// Error means a hard I/O error occurred; see the accompanying error value.
	Error
)

// Ring is a non-growing (except via explicit Resize) byte staging buffer.
type Ring struct {
	data     []byte
	start    int
	count    int
	highTide int
}

// New allocates a Ring with the given capacity.
func New(size int) *Ring {
	return &Ring{data: make([]byte, size)}
}

// Len returns the number of valid, unconsumed bytes.
func (r *Ring) Len() int { return r.count }

// Cap returns the buffer's total capacity.
func (r *Ring) Cap() int { return len(r.data) }

// Remaining returns the number of free bytes available for a Push or read.
func (r *Ring) Remaining() int { return len(r.data) - r.count }

// Bytes returns the valid, unconsumed slice. It is only valid until the next
// mutating call (Push, Eat, AdviseReadable, SlideIfHalfway, Resize).
func (r *Ring) Bytes() []byte { return r.data[r.start : r.start+r.count] }

// HighTide returns the pending skip offset.
func (r *Ring) HighTide() int { return r.highTide }

// SetHighTide sets the pending skip offset.
func (r *Ring) SetHighTide(n int) { r.highTide = n }

// compact moves the valid region down to offset 0, making the tail
// contiguous with the buffer's free space.
func (r *Ring) compact() {
	if r.start == 0 {
		return
	}
	copy(r.data[0:r.count], r.data[r.start:r.start+r.count])
	r.start = 0
}

// Push appends as many bytes of b as fit. It never blocks and never grows
// the buffer. It returns the number of bytes actually stored.
func (r *Ring) Push(b []byte) (int, error) {
	r.compact()
	room := r.Remaining()
	if room == 0 && len(b) > 0 {
		return 0, ErrBufferFull
	}
	n := len(b)
	if n > room {
		n = room
	}
	copy(r.data[r.start+r.count:], b[:n])
	r.count += n
	return n, nil
}

// Eat advances the read cursor past n consumed bytes. Eating at least all
// valid bytes resets the buffer to empty.
func (r *Ring) Eat(n int) {
	if n >= r.count {
		r.start = 0
		r.count = 0
		return
	}
	r.start += n
	r.count -= n
}

// SlideIfHalfway compacts the buffer down to offset 0 once the read cursor
// has drifted past the halfway point, bounding how far Bytes() can wander
// from the backing array's start.
func (r *Ring) SlideIfHalfway() {
	if r.start > len(r.data)/2 {
		r.compact()
	}
}

// Resize changes the buffer's capacity. It refuses to shrink below the
// number of bytes currently staged.
func (r *Ring) Resize(size int) error {
	if size < r.count {
		return errors.New("tkey/buffer: new size smaller than buffered data")
	}
	r.compact()
	data := make([]byte, size)
	copy(data, r.data[:r.count])
	r.data = data
	return nil
}

// AdviseReadable reads whatever is currently available on fd into the
// buffer's tail. surfaceEINTR controls whether an interrupted read is
// retried internally or returned to the caller as Error.
func (r *Ring) AdviseReadable(fd int, surfaceEINTR bool) (Status, error) {
	if fd < 0 {
		return Error, ErrNoFileDescriptor
	}
	r.compact()
	if r.Remaining() == 0 {
		return Error, ErrBufferFull
	}
	for {
		n, err := unix.Read(fd, r.data[r.start+r.count:])
		if err != nil {
			if err == unix.EINTR {
				if surfaceEINTR {
					return Error, err
				}
				continue
			}
			if err == unix.EAGAIN {
				return None, nil
			}
			return Error, err
		}
		if n == 0 {
			return EOF, nil
		}
		r.count += n
		return Again, nil
	}
}

package tkey

import (
	"errors"

	"github.com/badu/tkey/buffer"
)

var (
	// ErrNotStarted names the "decoder not started" condition (EINVAL in the
	// original errno taxonomy). The PeekKey/GetKey family does not return it:
	// those calls decode buffered bytes whether or not Start was called.
	ErrNotStarted = errors.New("tkey: decoder not started")
	// ErrNoFileDescriptor is returned when a start, readable-advise or wait is
	// requested on a decoder with no fd (EBADF).
	ErrNoFileDescriptor = buffer.ErrNoFileDescriptor
	// ErrBufferFull is returned when the ring buffer has no room for a new
	// read or push (ENOMEM).
	ErrBufferFull = buffer.ErrBufferFull
	// ErrInterrupted is returned only when the EINTR-surface flag is set;
	// otherwise an interrupted read or poll is retried internally.
	ErrInterrupted = errors.New("tkey: interrupted")
)

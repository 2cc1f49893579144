//go:build linux

package tkey

import (
	"time"

	"golang.org/x/sys/unix"
)

const (
	ioctlGetTermios = unix.TCGETS
	ioctlSetTermios = unix.TCSETS
)

// termiosState is the snapshot Start takes so Stop can restore it exactly.
type termiosState struct {
	saved unix.Termios
}

// Start puts the decoder's fd into raw input mode (unless FlagNoTermios is
// set) and, unless FlagNoStart is set, writes the focus-reporting enable
// sequence so the terminal reports focus in/out as CSI I / CSI O. It does not
// write a keypad-transmit string.
func (d *Decoder) Start() error {
	if d.started {
		return nil
	}
	if d.fd < 0 {
		return ErrNoFileDescriptor
	}
	if d.flags&FlagNoTermios == 0 {
		saved, err := unix.IoctlGetTermios(d.fd, ioctlGetTermios)
		if err != nil {
			return err
		}
		d.termios = &termiosState{saved: *saved}

		raw := *saved
		raw.Iflag &^= unix.IXON | unix.INLCR | unix.ICRNL
		raw.Lflag &^= unix.ICANON | unix.ECHO
		if d.flags&FlagCtrlC == 0 {
			raw.Lflag &^= unix.ISIG
		}
		raw.Cc[unix.VMIN] = 1
		raw.Cc[unix.VTIME] = 0
		if err := unix.IoctlSetTermios(d.fd, ioctlSetTermios, &raw); err != nil {
			return err
		}
	}
	if d.flags&FlagNoStart == 0 {
		// Focus reporting. A decoder with no writable
		// counterpart to its fd (e.g. reading from a pipe in tests) simply
		// drops these; Start does not fail over it.
		_, _ = unix.Write(d.fd, []byte("\x1b[?1004h"))
	}
	d.started = true
	return nil
}

// Stop restores whatever termios state Start captured and disables focus
// reporting. It is safe to call on a decoder that was never started.
func (d *Decoder) Stop() error {
	if !d.started {
		return nil
	}
	if d.flags&FlagNoStart == 0 {
		_, _ = unix.Write(d.fd, []byte("\x1b[?1004l"))
	}
	if d.termios != nil {
		if err := unix.IoctlSetTermios(d.fd, ioctlSetTermios, &d.termios.saved); err != nil {
			return err
		}
	}
	d.started = false
	return nil
}

// pollReadable blocks until fd is readable or wait elapses, returning
// whether it became readable in time.
func pollReadable(fd int, wait time.Duration) (bool, error) {
	fds := []unix.PollFd{{Fd: int32(fd), Events: unix.POLLIN}}
	ms := int(wait / time.Millisecond)
	for {
		n, err := unix.Poll(fds, ms)
		if err == unix.EINTR {
			continue
		}
		if err != nil {
			return false, err
		}
		return n > 0, nil
	}
}

//go:build linux

package sem

import (
	"encoding/binary"

	"golang.org/x/sys/unix"
)

// eventfdSem is the Linux kernel-blocking backend, built on eventfd(2) in
// EFD_SEMAPHORE mode so each write(fd, 1) and read(fd) pair behaves like
// one classic semaphore token — mirroring how this pack's reactor code
// (reactor_linux.go) talks to the kernel directly through
// golang.org/x/sys/unix rather than a higher-level wrapper.
type eventfdSem struct {
	fd int
}

func newKernelSem() kernelSem {
	fd, err := unix.Eventfd(0, unix.EFD_SEMAPHORE|unix.EFD_CLOEXEC)
	if err != nil {
		// Fall back to the portable backend; eventfd creation failing
		// (e.g. fd exhaustion) is rare enough that blocking via a condvar
		// is an acceptable degradation rather than a fatal pool-construction
		// error.
		return newCondSem()
	}
	return &eventfdSem{fd: fd}
}

func (e *eventfdSem) wait() {
	var buf [8]byte
	for {
		n, err := unix.Read(e.fd, buf[:])
		if err == unix.EINTR {
			continue
		}
		if err != nil || n != 8 {
			return
		}
		return
	}
}

func (e *eventfdSem) name() string { return "eventfd" }

func (e *eventfdSem) signal(n int) {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], 1)
	for i := 0; i < n; i++ {
		for {
			_, err := unix.Write(e.fd, buf[:])
			if err == unix.EINTR {
				continue
			}
			break
		}
	}
}

// Package singleinstance guards against concurrent copies of the tray
// application within a user session.
//
// The guard is a TCP listener bound to a fixed loopback address. The OS
// enforces exclusive ownership of the bound port and reclaims it when the
// owning process dies, so no stale lock files can be left behind. A
// redundant launch detects the held port, asks the active instance to show
// itself, and exits.
package singleinstance

import (
	"bytes"
	"net"
	"sync"
	"time"

	"github.com/calweek/calweek/internal/logging"
)

// DefaultAddr is the well-known loopback address owned by the active
// instance for its entire lifetime.
const DefaultAddr = "127.0.0.1:47200"

// ShowSignal is the payload a redundant launch sends to ask the active
// instance to bring its calendar window to the front.
var ShowSignal = []byte("SHOW")

const notifyTimeout = 2 * time.Second

// Coordinator manages the single-instance lock and the cross-instance
// show-yourself signal.
type Coordinator struct {
	addr   string
	logger *logging.Logger

	mu sync.Mutex
	ln net.Listener
}

// New creates a coordinator on the well-known address.
func New(logger *logging.Logger) *Coordinator {
	return NewWithAddr(DefaultAddr, logger)
}

// NewWithAddr creates a coordinator on a custom address. Tests use this to
// avoid colliding with a running instance.
func NewWithAddr(addr string, logger *logging.Logger) *Coordinator {
	return &Coordinator{addr: addr, logger: logger}
}

// Acquire attempts to bind the well-known address exactly once. On success
// this process is the active instance and the binding is retained until
// Release. Any bind failure is read as "another instance already owns this
// session"; no distinction is made between contention and other bind errors.
func (c *Coordinator) Acquire() bool {
	ln, err := net.Listen("tcp", c.addr)
	if err != nil {
		c.logger.Debug().Err(err).Str("addr", c.addr).Msg("instance lock bind failed")
		return false
	}

	c.mu.Lock()
	c.ln = ln
	c.mu.Unlock()

	c.logger.Debug().Str("addr", c.addr).Msg("instance lock acquired")
	return true
}

// Release closes the binding. Idempotent; safe to call when the lock was
// never acquired. A running Listen loop observes the closed listener and
// terminates.
func (c *Coordinator) Release() {
	c.mu.Lock()
	ln := c.ln
	c.ln = nil
	c.mu.Unlock()

	if ln != nil {
		_ = ln.Close()
		c.logger.Debug().Str("addr", c.addr).Msg("instance lock released")
	}
}

// NotifyActive asks the instance holding the lock to show itself. Used by a
// redundant launch after Acquire fails. Delivery is best-effort: the active
// instance may have exited between the bind check and the connect, and the
// caller exits cleanly either way.
func (c *Coordinator) NotifyActive() {
	conn, err := net.DialTimeout("tcp", c.addr, notifyTimeout)
	if err != nil {
		c.logger.Debug().Err(err).Msg("active instance not reachable")
		return
	}
	defer conn.Close()

	_ = conn.SetWriteDeadline(time.Now().Add(notifyTimeout))
	if _, err := conn.Write(ShowSignal); err != nil {
		c.logger.Debug().Err(err).Msg("show signal not delivered")
	}
}

// Listen accepts connections on the held binding sequentially and invokes
// onShow in a new goroutine whenever the show signal arrives, so a slow
// callback never blocks the accept loop. The loop runs until the listener
// errors, typically because Release closed it; errors end the loop silently
// and never affect the rest of the process.
func (c *Coordinator) Listen(onShow func()) {
	c.mu.Lock()
	ln := c.ln
	c.mu.Unlock()
	if ln == nil {
		return
	}

	buf := make([]byte, 16)
	for {
		conn, err := ln.Accept()
		if err != nil {
			c.logger.Debug().Err(err).Msg("instance listener stopped")
			return
		}

		_ = conn.SetReadDeadline(time.Now().Add(notifyTimeout))
		n, _ := conn.Read(buf)
		_ = conn.Close()

		if bytes.Equal(buf[:n], ShowSignal) {
			go onShow()
		}
	}
}

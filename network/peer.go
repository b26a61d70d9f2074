// Package network synchronizes the two balls of a duel over a byte stream.
// Each side streams its own ball as fixed-width frames; the other side keeps
// only the newest one.
package network

import (
	"errors"
	"fmt"
	"io"
	"log"
	"net"
	"sync"
	"sync/atomic"
	"time"

	"github.com/automoto/poetry-duel/shared/codec"
	"github.com/automoto/poetry-duel/shared/simconfig"
)

// Peer owns one connection: a send loop for the local ball, a receive loop
// for the remote ball and a watcher that closes the connection on shutdown.
// All exported methods are safe for concurrent use.
type Peer struct {
	conn       net.Conn
	layout     codec.Layout
	interval   time.Duration
	readBuffer int
	stop       *Shutdown

	sendMu sync.Mutex // serializes every outbound write

	local  atomic.Pointer[codec.State]
	remote *Mailbox[codec.State]
	wins   atomic.Int32

	wg sync.WaitGroup
}

// NewPeer wraps conn. Call Start to run the loops.
func NewPeer(conn net.Conn, layout codec.Layout, interval time.Duration, stop *Shutdown) *Peer {
	if interval <= 0 {
		interval = simconfig.Net.Interval
	}
	if stop == nil {
		stop = NewShutdown()
	}
	return &Peer{
		conn:       conn,
		layout:     layout,
		interval:   interval,
		readBuffer: simconfig.Net.ReadBuffer,
		stop:       stop,
		remote:     NewMailbox[codec.State](),
	}
}

// Start launches the send, receive and watch goroutines.
func (p *Peer) Start() {
	p.wg.Add(3)
	go func() {
		defer p.wg.Done()
		p.RunSender()
	}()
	go func() {
		defer p.wg.Done()
		p.RunReceiver()
	}()
	go func() {
		defer p.wg.Done()
		<-p.stop.Done()
		_ = p.conn.Close()
	}()
}

// RunSender streams the latest published local state every interval until
// shutdown.
func (p *Peer) RunSender() {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-p.stop.Done():
			return
		case <-ticker.C:
		}

		st := p.local.Load()
		if st == nil {
			continue
		}
		if err := p.SendState(*st); err != nil {
			if errors.Is(err, codec.ErrFieldOverflow) {
				log.Printf("[net] skipping state: %v", err)
				continue
			}
			return
		}
	}
}

// RunReceiver reads frames until the stream fails. Partial frames wait for
// more bytes; malformed frames are skipped.
func (p *Peer) RunReceiver() {
	buf := make([]byte, p.readBuffer)
	var pending []byte

	for {
		n, err := p.conn.Read(buf)
		if n > 0 {
			pending = p.consume(append(pending, buf[:n]...))
		}
		if err != nil {
			p.fail("read", err)
			return
		}
		if n == 0 {
			p.fail("read", io.ErrNoProgress)
			return
		}
	}
}

// consume handles every whole frame in pending and returns the remainder.
func (p *Peer) consume(pending []byte) []byte {
	size := p.layout.FrameSize()
	off := 0
	for len(pending)-off >= size {
		frame := pending[off : off+size]
		off += size

		if p.layout.IsWin(frame) {
			p.wins.Add(1)
			continue
		}
		st, err := p.layout.DecodeState(frame)
		if err != nil {
			log.Printf("[net] skipping frame %q: %v", frame, err)
			continue
		}
		p.remote.Put(st)
	}
	return append(pending[:0], pending[off:]...)
}

// SendState writes one state frame.
func (p *Peer) SendState(st codec.State) error {
	frame, err := p.layout.EncodeState(st)
	if err != nil {
		return fmt.Errorf("encode state: %w", err)
	}
	return p.write(frame)
}

// SendWin tells the opponent this side scored.
func (p *Peer) SendWin() error {
	return p.write(p.layout.WinFrame())
}

func (p *Peer) write(frame []byte) error {
	p.sendMu.Lock()
	defer p.sendMu.Unlock()

	if p.stop.Stopped() {
		return net.ErrClosed
	}
	if _, err := p.conn.Write(frame); err != nil {
		p.fail("write", err)
		return fmt.Errorf("write frame: %w", err)
	}
	return nil
}

// fail logs a stream error and stops the process, unless it is already
// stopping and the error is just the closed connection.
func (p *Peer) fail(op string, err error) {
	if p.stop.Stopped() {
		return
	}
	if errors.Is(err, io.EOF) {
		log.Printf("[net] opponent disconnected")
	} else {
		log.Printf("[net] %s failed: %v", op, err)
	}
	p.stop.Trigger(fmt.Errorf("%s: %w", op, err))
}

// PublishLocal hands the controlled ball's state to the send loop.
func (p *Peer) PublishLocal(st codec.State) {
	p.local.Store(&st)
}

// LatestRemote returns the newest opponent state since the last call.
func (p *Peer) LatestRemote() (codec.State, bool) {
	return p.remote.Take()
}

// OpponentWon consumes one pending opponent WIN notice.
func (p *Peer) OpponentWon() bool {
	for {
		n := p.wins.Load()
		if n == 0 {
			return false
		}
		if p.wins.CompareAndSwap(n, n-1) {
			return true
		}
	}
}

// Close stops the loops and waits for them to exit.
func (p *Peer) Close() error {
	p.stop.Trigger(nil)
	_ = p.conn.Close()
	p.wg.Wait()
	return nil
}

// Done is closed when the peer's shutdown fires.
func (p *Peer) Done() <-chan struct{} {
	return p.stop.Done()
}

package network

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"sync"

	"github.com/automoto/poetry-duel/shared/simconfig"
	"github.com/coder/websocket"
)

const (
	TransportTCP = "tcp"
	TransportWS  = "ws"
)

var ErrUnknownTransport = errors.New("network: unknown transport")

// Listener accepts the single opponent of a hosted match.
type Listener struct {
	kind  string
	ln    net.Listener
	srv   *http.Server
	conns chan net.Conn
	once  sync.Once
}

// Listen binds addr. For ws the opponent connects to ws://addr/duel.
func Listen(kind, addr string) (*Listener, error) {
	switch kind {
	case TransportTCP, TransportWS:
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownTransport, kind)
	}

	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("listen %s: %w", addr, err)
	}

	l := &Listener{kind: kind, ln: ln}
	if kind == TransportWS {
		l.conns = make(chan net.Conn, 1)
		mux := http.NewServeMux()
		mux.HandleFunc(simconfig.Net.WSPath, l.handleWS)
		l.srv = &http.Server{Handler: mux}
		go func() {
			if err := l.srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
				log.Printf("[net] websocket server: %v", err)
			}
		}()
	}
	return l, nil
}

func (l *Listener) handleWS(w http.ResponseWriter, r *http.Request) {
	c, err := websocket.Accept(w, r, nil)
	if err != nil {
		log.Printf("[net] websocket accept: %v", err)
		return
	}

	done := make(chan struct{})
	conn := &notifyConn{Conn: websocket.NetConn(context.Background(), c, websocket.MessageBinary), done: done}
	select {
	case l.conns <- conn:
	default:
		_ = c.Close(websocket.StatusTryAgainLater, "match already has two players")
		return
	}
	// The handler owns the websocket until the peer closes it.
	<-done
}

// Accept waits for the opponent or ctx.
func (l *Listener) Accept(ctx context.Context) (net.Conn, error) {
	if l.kind == TransportWS {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case c := <-l.conns:
			log.Printf("[net] opponent connected from %s", c.RemoteAddr())
			return c, nil
		}
	}

	type result struct {
		conn net.Conn
		err  error
	}
	ch := make(chan result, 1)
	go func() {
		c, err := l.ln.Accept()
		ch <- result{c, err}
	}()

	select {
	case <-ctx.Done():
		_ = l.Close()
		return nil, ctx.Err()
	case r := <-ch:
		if r.err != nil {
			return nil, fmt.Errorf("accept: %w", r.err)
		}
		log.Printf("[net] opponent connected from %s", r.conn.RemoteAddr())
		return r.conn, nil
	}
}

// Addr is the bound address, useful when listening on port 0.
func (l *Listener) Addr() net.Addr {
	return l.ln.Addr()
}

// Close stops accepting. Accepted connections stay open.
func (l *Listener) Close() error {
	var err error
	l.once.Do(func() {
		if l.srv != nil {
			err = l.srv.Close()
			return
		}
		err = l.ln.Close()
	})
	return err
}

// Dial connects to a hosted match.
func Dial(ctx context.Context, kind, addr string) (net.Conn, error) {
	switch kind {
	case TransportTCP:
		var d net.Dialer
		conn, err := d.DialContext(ctx, "tcp", addr)
		if err != nil {
			return nil, fmt.Errorf("dial %s: %w", addr, err)
		}
		return conn, nil
	case TransportWS:
		url := "ws://" + addr + simconfig.Net.WSPath
		c, _, err := websocket.Dial(ctx, url, nil)
		if err != nil {
			return nil, fmt.Errorf("dial %s: %w", url, err)
		}
		return websocket.NetConn(context.Background(), c, websocket.MessageBinary), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownTransport, kind)
}

// notifyConn signals done when closed so the websocket handler can return.
type notifyConn struct {
	net.Conn
	done chan struct{}
	once sync.Once
}

func (c *notifyConn) Close() error {
	err := c.Conn.Close()
	c.once.Do(func() { close(c.done) })
	return err
}

package runtime

import (
	"care-chat/contract"
	"care-chat/errors"
	"context"
	goerrors "errors"
	"fmt"
	"log/slog"
	"net"
	"strconv"
	"sync"
	"sync/atomic"
	"syscall"
	"time"

	"golang.org/x/sync/semaphore"
)

const (
	DefaultBasePort     = 12345
	DefaultPortAttempts = 10
	acceptRetryDelay    = 50 * time.Millisecond
)

// ConnectionHandler serves one accepted connection until it ends.
type ConnectionHandler func(ctx context.Context, conn net.Conn)

// Listener owns the listening socket and the accept loop.
// Concurrent connections are bounded by a weighted semaphore.
type Listener struct {
	log      *slog.Logger
	host     string
	basePort int
	attempts int
	registry contract.ISessionRegistry
	handler  ConnectionHandler
	slots    *semaphore.Weighted

	mu       sync.Mutex
	listener net.Listener
	port     int
	running  atomic.Bool
	cancel   context.CancelFunc
	wg       sync.WaitGroup
}

func NewListener(log *slog.Logger, host string, basePort, attempts int, maxConnections int64,
	registry contract.ISessionRegistry, handler ConnectionHandler) *Listener {
	return &Listener{
		log:      log,
		host:     host,
		basePort: basePort,
		attempts: attempts,
		registry: registry,
		handler:  handler,
		slots:    semaphore.NewWeighted(maxConnections),
	}
}

// Start binds the first free port in [basePort, basePort+attempts) and starts accepting.
// Exhausting the range returns ErrAllPortsInUse and nothing is accepted.
func (l *Listener) Start(ctx context.Context) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.running.Load() {
		return nil
	}

	listener, port, err := l.bind()
	if err != nil {
		return err
	}

	acceptCtx, cancel := context.WithCancel(ctx)
	l.listener = listener
	l.port = port
	l.cancel = cancel
	l.running.Store(true)

	l.wg.Add(1)
	go l.acceptLoop(acceptCtx, listener)
	l.log.Info("Chat server started", "address", listener.Addr().String(), "port", port)
	return nil
}

func (l *Listener) bind() (net.Listener, int, error) {
	for offset := 0; offset < l.attempts; offset++ {
		port := l.basePort + offset
		listener, err := net.Listen("tcp", net.JoinHostPort(l.host, strconv.Itoa(port)))
		if err == nil {
			return listener, port, nil
		}
		if goerrors.Is(err, syscall.EADDRINUSE) {
			l.log.Info("Port is in use, trying next port", "port", port)
		} else {
			l.log.Error("Could not bind port", "port", port, "error", err)
		}
	}
	return nil, 0, fmt.Errorf("%w: %d-%d", errors.ErrAllPortsInUse, l.basePort, l.basePort+l.attempts-1)
}

// CurrentPort returns the bound port, or 0 before a successful Start.
func (l *Listener) CurrentPort() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.port
}

func (l *Listener) Running() bool {
	return l.running.Load()
}

func (l *Listener) acceptLoop(ctx context.Context, listener net.Listener) {
	defer l.wg.Done()
	for {
		conn, err := listener.Accept()
		if err != nil {
			if !l.running.Load() || goerrors.Is(err, net.ErrClosed) {
				return
			}
			l.log.Error("Error accepting client connection", "error", err)
			time.Sleep(acceptRetryDelay)
			continue
		}

		if !l.slots.TryAcquire(1) {
			l.log.Warn("Connection limit reached, refusing client", "remote", conn.RemoteAddr().String())
			_ = conn.Close()
			continue
		}

		l.wg.Add(1)
		go func() {
			defer l.wg.Done()
			defer l.slots.Release(1)
			l.handler(ctx, conn)
		}()
	}
}

// Stop closes the socket, closes every registered session and waits for all connection goroutines.
func (l *Listener) Stop() {
	l.mu.Lock()
	if !l.running.Swap(false) {
		l.mu.Unlock()
		return
	}
	listener, cancel := l.listener, l.cancel
	l.mu.Unlock()

	if err := listener.Close(); err != nil {
		l.log.Warn("Error closing listener", "error", err)
	}
	cancel()
	l.registry.CloseAll()
	l.wg.Wait()
	l.log.Info("Chat server stopped")
}

// ProbePort reports whether something already accepts connections on host:port.
func ProbePort(host string, port int, timeout time.Duration) bool {
	conn, err := net.DialTimeout("tcp", net.JoinHostPort(host, strconv.Itoa(port)), timeout)
	if err != nil {
		return false
	}
	_ = conn.Close()
	return true
}

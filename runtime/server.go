// Package runtime holds the real-time messaging core: listener, sessions, registry, router and history store.
// Every piece of state belongs to a Server value, so independent servers can run side by side.
package runtime

import (
	"care-chat/contract"
	"context"
	"log/slog"
	"net"
	"strconv"
	"time"
)

type ServerConfig struct {
	Host           string
	BasePort       int
	PortAttempts   int
	MaxConnections int64
	Session        SessionOptions
}

func DefaultServerConfig() ServerConfig {
	return ServerConfig{
		Host:           "localhost",
		BasePort:       DefaultBasePort,
		PortAttempts:   DefaultPortAttempts,
		MaxConnections: 256,
		Session:        DefaultSessionOptions(),
	}
}

type Server struct {
	log           *slog.Logger
	config        ServerConfig
	registry      *Registry
	store         *HistoryStore
	router        *Router
	listener      *Listener
	authenticator contract.IAuthenticator
}

func NewServer(log *slog.Logger, config ServerConfig, gateway contract.IPersistenceGateway,
	authenticator contract.IAuthenticator) *Server {
	registry := NewRegistry(log)
	store := NewHistoryStore(log, gateway)
	s := &Server{
		log:           log,
		config:        config,
		registry:      registry,
		store:         store,
		router:        NewRouter(log, store, registry),
		authenticator: authenticator,
	}
	s.listener = NewListener(log, config.Host, config.BasePort, config.PortAttempts,
		config.MaxConnections, registry, s.serve)
	return s
}

func (s *Server) WithContactPolicy(policy contract.IContactPolicy) *Server {
	s.router.WithContactPolicy(policy)
	return s
}

// Start replays stored histories then binds the listener.
func (s *Server) Start(ctx context.Context) error {
	if ProbePort(s.config.Host, s.config.BasePort, 200*time.Millisecond) {
		s.log.Info("Base port already accepting connections, a fallback port will be used",
			"port", s.config.BasePort)
	}
	if err := s.store.Load(); err != nil {
		return err
	}
	return s.listener.Start(ctx)
}

func (s *Server) Stop() {
	s.listener.Stop()
}

func (s *Server) CurrentPort() int {
	return s.listener.CurrentPort()
}

// Address is where clients should dial.
func (s *Server) Address() string {
	return net.JoinHostPort(s.config.Host, strconv.Itoa(s.CurrentPort()))
}

func (s *Server) Ready() bool {
	return s.listener.Running()
}

func (s *Server) Registry() *Registry {
	return s.registry
}

func (s *Server) Store() *HistoryStore {
	return s.store
}

func (s *Server) serve(ctx context.Context, conn net.Conn) {
	session := NewSession(conn, s.log, s.registry, s.router, s.authenticator, s.config.Session)
	_ = session.Run(ctx)
}

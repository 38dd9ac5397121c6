package e2e

import (
	"care-chat/auth"
	"care-chat/client"
	"care-chat/domain"
	"care-chat/repositories"
	"care-chat/runtime"
	"context"
	goerrors "errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"sync/atomic"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/gookit/color"
	"github.com/stretchr/testify/suite"
)

var errDiskFull = goerrors.New("disk full")

// flakyGateway is the real Badger gateway with a switch to make appends fail.
type flakyGateway struct {
	*repositories.HistoryRepository
	failing atomic.Bool
}

func (g *flakyGateway) Append(history *domain.History, message domain.Message) error {
	if g.failing.Load() {
		return errDiskFull
	}
	return g.HistoryRepository.Append(history, message)
}

// BaseChatSuite runs a real chat server over a real Badger directory for every test.
type BaseChatSuite struct {
	suite.Suite
	Config  Config
	timeout time.Duration

	dir      string
	basePort int
	db       *badger.DB
	gateway  *flakyGateway
	server   *runtime.Server
	cancel   context.CancelFunc
}

// SetupSuite loads the environment configuration before running tests
func (s *BaseChatSuite) SetupSuite() {
	var err error
	s.Config, err = LoadConfig()
	s.Require().NoError(err)
	s.timeout, err = time.ParseDuration(s.Config.Timeout)
	s.Require().NoError(err)
}

func (s *BaseChatSuite) SetupTest() {
	s.dir = s.T().TempDir()
	s.basePort = s.freePort()
	s.openStorage()
	s.startServer()
}

func (s *BaseChatSuite) TearDownTest() {
	s.stopServer()
	s.closeStorage()
}

// Restart simulates a process restart on the same storage directory.
func (s *BaseChatSuite) Restart() {
	s.Step("Restarting server")
	s.stopServer()
	s.closeStorage()
	s.openStorage()
	s.startServer()
}

func (s *BaseChatSuite) Step(name string) {
	header := fmt.Sprintf("  ====== %s ======", name)
	if s.Config.Colours {
		header = color.New(color.BgBlack, color.FgGreen).Render(header)
	}
	s.T().Log(header)
}

func (s *BaseChatSuite) openStorage() {
	db, err := badger.Open(badger.DefaultOptions(s.dir).
		WithSyncWrites(true).
		WithLoggingLevel(badger.ERROR))
	s.Require().NoError(err)
	repository, err := repositories.NewHistoryRepository(db, s.logger())
	s.Require().NoError(err)
	s.db = db
	s.gateway = &flakyGateway{HistoryRepository: repository}
}

func (s *BaseChatSuite) closeStorage() {
	s.Require().NoError(s.gateway.Close())
	s.Require().NoError(s.db.Close())
}

func (s *BaseChatSuite) startServer() {
	s.server = s.newServer()
	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel
	s.Require().NoError(s.server.Start(ctx))
}

func (s *BaseChatSuite) stopServer() {
	s.server.Stop()
	s.cancel()
}

func (s *BaseChatSuite) newServer() *runtime.Server {
	config := runtime.DefaultServerConfig()
	config.Host = s.Config.Host
	config.BasePort = s.basePort
	config.Session.HandshakeTimeout = s.timeout
	return runtime.NewServer(s.logger(), config, s.gateway, auth.NewPlainAuthenticator())
}

func (s *BaseChatSuite) logger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func (s *BaseChatSuite) freePort() int {
	lis, err := net.Listen("tcp", net.JoinHostPort(s.Config.Host, "0"))
	s.Require().NoError(err)
	defer lis.Close()
	return lis.Addr().(*net.TCPAddr).Port
}

// Connect logs userID in and waits until the server registered it.
func (s *BaseChatSuite) Connect(userID string) *client.Client {
	s.Step("Connecting " + userID)
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	c, err := client.Dial(ctx, s.server.Address(), userID)
	s.Require().NoError(err)
	s.T().Cleanup(func() { _ = c.Close() })

	s.Require().Eventually(func() bool {
		_, ok := s.server.Registry().Lookup(userID)
		return ok
	}, s.timeout, 5*time.Millisecond, "%s was never registered", userID)
	return c
}

// Expect waits for the next event on c and checks its kind.
func (s *BaseChatSuite) Expect(c *client.Client, kind client.EventKind) client.Event {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()
	event, err := c.Receive(ctx)
	s.Require().NoError(err)
	s.Require().Equal(kind, event.Kind, "unexpected event %+v", event)
	return event
}

// ExpectSilence checks nothing arrives on c for a short while.
func (s *BaseChatSuite) ExpectSilence(c *client.Client) {
	ctx, cancel := context.WithTimeout(context.Background(), 150*time.Millisecond)
	defer cancel()
	event, err := c.Receive(ctx)
	var netErr net.Error
	s.Require().True(goerrors.As(err, &netErr) && netErr.Timeout(), "unexpected event %+v (err=%v)", event, err)
}

// History loads the conversation with peerID through c.
func (s *BaseChatSuite) History(c *client.Client, peerID string) []domain.Message {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()
	messages, err := c.History(ctx, peerID)
	s.Require().NoError(err)
	return messages
}

// Stored reads the conversation straight from Badger.
func (s *BaseChatSuite) Stored(a, b string) []domain.Message {
	messages, err := s.gateway.Load(domain.NewConversationKey(a, b))
	s.Require().NoError(err)
	return messages
}

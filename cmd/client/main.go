package main

import (
	"bufio"
	"care-chat/client"
	"care-chat/protocol"
	"context"
	goerrors "errors"
	"fmt"
	"io"
	"net"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/Netflix/go-env"
	"github.com/gookit/color"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"
)

// Exit codes for the client application.
const (
	exitOK      = 0
	exitRuntime = 1
	exitConfig  = 2
)

// Config defines the client-side environment variables.
type Config struct {
	Host         string `env:"CHAT_HOST,default=localhost"`
	BasePort     int    `env:"CHAT_BASE_PORT,default=12345"`
	PortAttempts int    `env:"CHAT_PORT_ATTEMPTS,default=10"`
	Handshake    string `env:"CHAT_HANDSHAKE,required=true"`
	LogLevel     string `env:"LOG_LEVEL,default=WARN"`
}

var (
	incoming = color.New(color.FgCyan, color.OpBold)
	success  = color.New(color.FgGreen)
	failure  = color.New(color.FgRed, color.OpBold)
)

func main() {
	code, err := run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Client error: %v\n", err)
	}
	os.Exit(code)
}

func run() (int, error) {
	_ = godotenv.Load()
	var config Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return exitConfig, fmt.Errorf("config error: %w", err)
	}
	log := logs.GetLoggerFromString(config.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dialCtx, cancel := context.WithTimeout(ctx, time.Duration(config.PortAttempts)*client.HandshakeTimeout)
	c, err := client.DialRange(dialCtx, config.Host, config.BasePort, config.PortAttempts, config.Handshake)
	cancel()
	if err != nil {
		return exitRuntime, err
	}
	defer func() {
		log.Info("Closing connection...")
		_ = c.Close()
	}()

	fmt.Println(success.Render(fmt.Sprintf(">>> Connected from %s. Type '<receiver> <message>' or '/history <user>' (Ctrl+C to quit)", c.LocalAddr())))

	errChan := make(chan error, 1)
	go func() { errChan <- receive(ctx, c) }()
	go prompt(c)

	select {
	case <-ctx.Done():
		return exitOK, nil
	case err = <-errChan:
		if err == nil {
			return exitOK, nil
		}
		return exitRuntime, err
	}
}

func receive(ctx context.Context, c *client.Client) error {
	for {
		event, err := c.Receive(ctx)
		if err != nil {
			if ctx.Err() != nil || goerrors.Is(err, io.EOF) || goerrors.Is(err, net.ErrClosed) {
				fmt.Println(failure.Render("Disconnected from server"))
				return nil
			}
			return fmt.Errorf("receive error: %w", err)
		}

		switch event.Kind {
		case client.EventMessage:
			fmt.Println(incoming.Render(event.Message.String()))
		case client.EventDelivered:
			fmt.Println(success.Render("✓ delivered"))
		case client.EventHistory:
			fmt.Println(success.Render(fmt.Sprintf("--- %d messages with %s ---", len(event.Messages), event.PeerID)))
			for _, m := range event.Messages {
				fmt.Println(incoming.Render(m.String()))
			}
		case client.EventFailed:
			fmt.Println(failure.Render("✗ " + event.Reason()))
		default:
			fmt.Println(event.Text)
		}
	}
}

func prompt(c *client.Client) {
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		receiverID, content, ok := strings.Cut(strings.TrimSpace(scanner.Text()), " ")
		if receiverID == "/history" {
			// The reply is printed by the receive loop.
			if err := c.SendFrame(protocol.HistoryRequestFrame(strings.TrimSpace(content))); err != nil {
				fmt.Println(failure.Render(err.Error()))
				return
			}
			continue
		}
		if !ok || strings.TrimSpace(content) == "" {
			fmt.Println(failure.Render("usage: <receiver> <message>"))
			continue
		}
		if _, err := c.Send(receiverID, strings.TrimSpace(content)); err != nil {
			fmt.Println(failure.Render(err.Error()))
			return
		}
	}
}

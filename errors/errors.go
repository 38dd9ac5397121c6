package errors

import "fmt"

var (
	ErrWorkerPanic = fmt.Errorf("worker panic")

	// Connection
	ErrAllPortsInUse   = fmt.Errorf("no port available in range")
	ErrListenerStopped = fmt.Errorf("listener stopped")

	// Protocol
	ErrHandshake      = fmt.Errorf("handshake failed")
	ErrFrameTooLarge  = fmt.Errorf("frame exceeds maximum size")
	ErrMalformedFrame = fmt.Errorf("malformed frame")

	// Transport
	ErrSessionClosed = fmt.Errorf("session closed")

	// Routing
	ErrPersistence    = fmt.Errorf("message could not be persisted")
	ErrInvalidMessage = fmt.Errorf("invalid message")
	ErrSenderMismatch = fmt.Errorf("sender does not match session user")
	ErrNotAContact    = fmt.Errorf("receiver is not a contact of sender")
	ErrInvalidHistory = fmt.Errorf("invalid history request")

	// Directory and auth
	ErrUnknownUser        = fmt.Errorf("unknown user")
	ErrUserAlreadyExists  = fmt.Errorf("user already exists")
	ErrInvalidCredentials = fmt.Errorf("invalid credentials")
	ErrInvalidPassword    = fmt.Errorf("password does not meet complexity requirements")
	ErrTokenGeneration    = fmt.Errorf("token generation failed")
	ErrInvalidToken       = fmt.Errorf("invalid token")
)

package runtime

import (
	"care-chat/contract"
	"care-chat/domain"
	"care-chat/errors"
	"context"
	"fmt"
	"log/slog"
)

var _ contract.IRouter = (*Router)(nil)

// Router persists each incoming message, forwards it to a connected
// recipient and acknowledges the sender, strictly in that order.
type Router struct {
	log      *slog.Logger
	store    contract.IHistoryStore
	registry contract.ISessionRegistry
	policy   contract.IContactPolicy
}

func NewRouter(log *slog.Logger, store contract.IHistoryStore, registry contract.ISessionRegistry) *Router {
	return &Router{log: log, store: store, registry: registry}
}

// WithContactPolicy enables sender name resolution and optional contact checks.
// With a policy, the sender name always comes from the directory.
func (r *Router) WithContactPolicy(policy contract.IContactPolicy) *Router {
	r.policy = policy
	return r
}

// Process handles one message from sender.
//
// Nothing is forwarded or acknowledged unless the durable append succeeded;
// in that case the sender gets a failure frame and the error is returned.
// A broken recipient is evicted without failing the sender.
func (r *Router) Process(_ context.Context, sender contract.ISession, message domain.Message) error {
	message, err := r.prepare(message)
	if err != nil {
		r.reject(sender, message, err)
		return err
	}

	if _, err = r.store.Append(message); err != nil {
		r.log.Error("Delivery failed, message not persisted",
			"sender_id", message.SenderID,
			"receiver_id", message.ReceiverID,
			"error", err)
		r.reject(sender, message, err)
		return err
	}
	r.log.Debug("Message saved", "sender_id", message.SenderID, "receiver_id", message.ReceiverID)

	if recipient, ok := r.registry.Lookup(message.ReceiverID); ok {
		if err = recipient.Deliver(message); err != nil {
			r.log.Warn("Recipient unreachable, evicting session",
				"receiver_id", message.ReceiverID,
				"error", err)
			r.registry.Deregister(message.ReceiverID, recipient)
			recipient.Close()
		}
	}

	if err = sender.Acknowledge(); err != nil {
		r.log.Warn("Delivery acknowledgement not sent", "sender_id", message.SenderID, "error", err)
	}
	return nil
}

func (r *Router) prepare(message domain.Message) (domain.Message, error) {
	message = message.Normalized()
	if r.policy != nil {
		message = message.WithSenderName(r.policy.DisplayName(message.SenderID))
	}
	if err := message.Validate(); err != nil {
		return message, fmt.Errorf("%w: %v", errors.ErrInvalidMessage, err)
	}
	if r.policy == nil {
		return message, nil
	}
	allowed, err := r.policy.CanMessage(message.SenderID, message.ReceiverID)
	if err != nil {
		return message, err
	}
	if !allowed {
		return message, fmt.Errorf("%w: %s -> %s", errors.ErrNotAContact, message.SenderID, message.ReceiverID)
	}
	return message, nil
}

// History returns the conversation between requesterID and peerID, oldest first.
// An unknown pair yields no messages and creates nothing.
func (r *Router) History(requesterID, peerID string) ([]domain.Message, error) {
	if requesterID == "" || peerID == "" {
		return nil, fmt.Errorf("%w: missing participant", errors.ErrInvalidHistory)
	}
	messages := r.store.Conversation(requesterID, peerID)
	r.log.Debug("History requested", "user_id", requesterID, "peer_id", peerID, "count", len(messages))
	return messages, nil
}

func (r *Router) reject(sender contract.ISession, message domain.Message, reason error) {
	if err := sender.Reject(reason); err != nil {
		r.log.Warn("Failure notice not sent", "sender_id", message.SenderID, "error", err)
	}
}

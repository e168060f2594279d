package engine

import (
	"context"
	"errors"
	"fmt"

	"github.com/shufflegram/backend/internal/repositories"
)

// CanStartAnonChat checks whether the user may enter anonymous chat mode.
// Users who disabled receiving are asked to enable it first.
func (e *Engine) CanStartAnonChat(ctx context.Context, userID string) error {
	user, err := e.users.EnsureUser(ctx, userID, e.now())
	if err != nil {
		return err
	}
	if !user.AnonymousReceive {
		return fmt.Errorf("anonymous chat disabled: %w", ErrInvalidState)
	}
	return nil
}

// SendAnonMessage relays an anonymous text. While the sender is paired the
// message goes to the fixed partner; otherwise a partner is picked
// uniform-random among users who accept anonymous messages and are not in a
// conversation, and both sides are paired symmetrically. Returns the partner
// id, or ErrNoPartner when nobody is eligible (the sender stays unpaired).
func (e *Engine) SendAnonMessage(ctx context.Context, senderID, text string) (string, error) {
	sender, err := e.users.EnsureUser(ctx, senderID, e.now())
	if err != nil {
		return "", err
	}

	if sender.AnonConversation != "" {
		partnerID := sender.AnonConversation
		e.relayAnon(senderID, partnerID, text)
		return partnerID, nil
	}

	partner, err := e.users.SampleChatPartner(ctx, senderID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return "", ErrNoPartner
		}
		return "", err
	}

	sender.AnonConversation = partner.ID
	partner.AnonConversation = senderID
	if err := e.users.SaveUser(ctx, sender); err != nil {
		return "", err
	}
	if err := e.users.SaveUser(ctx, partner); err != nil {
		return "", err
	}

	e.relayAnon(senderID, partner.ID, text)
	return partner.ID, nil
}

// StopAnonChat ends the sender's conversation, clearing both sides and
// notifying the partner. Returns ErrNoConversation when there is none.
func (e *Engine) StopAnonChat(ctx context.Context, userID string) (string, error) {
	user, err := e.users.EnsureUser(ctx, userID, e.now())
	if err != nil {
		return "", err
	}
	partnerID := user.AnonConversation
	if partnerID == "" {
		return "", ErrNoConversation
	}

	user.AnonConversation = ""
	if err := e.users.SaveUser(ctx, user); err != nil {
		return "", err
	}
	partner, err := e.users.GetUser(ctx, partnerID)
	if err == nil {
		partner.AnonConversation = ""
		if err := e.users.SaveUser(ctx, partner); err != nil {
			return "", err
		}
		e.fanout.Send("anon_stop", userID, partnerID, Delivery{
			Recipient: partnerID,
			Text:      "Anonymous conversation ended by the other user.",
		})
	} else if !errors.Is(err, repositories.ErrNotFound) {
		return "", err
	}
	return partnerID, nil
}

// ToggleAnonymousReceive flips the opt-in flag and returns the new value.
// Disabling only blocks future matching; an active conversation stays up
// until either side stops it.
func (e *Engine) ToggleAnonymousReceive(ctx context.Context, userID string) (bool, error) {
	user, err := e.users.EnsureUser(ctx, userID, e.now())
	if err != nil {
		return false, err
	}
	user.AnonymousReceive = !user.AnonymousReceive
	if err := e.users.SaveUser(ctx, user); err != nil {
		return false, err
	}
	return user.AnonymousReceive, nil
}

// ToggleCommentNotifications flips the per-user comment alert flag and
// returns the new value.
func (e *Engine) ToggleCommentNotifications(ctx context.Context, userID string) (bool, error) {
	user, err := e.users.EnsureUser(ctx, userID, e.now())
	if err != nil {
		return false, err
	}
	user.CommentNotifications = !user.CommentNotifications
	if err := e.users.SaveUser(ctx, user); err != nil {
		return false, err
	}
	return user.CommentNotifications, nil
}

func (e *Engine) relayAnon(senderID, partnerID, text string) {
	e.fanout.Send("anon_message", senderID, partnerID, Delivery{
		Recipient: partnerID,
		Text:      fmt.Sprintf("Anonymous message:\n\n%s", text),
		Control:   ControlAnonReply,
		Target:    senderID,
	})
}

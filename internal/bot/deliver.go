package bot

import (
	"context"
	"fmt"
	"strconv"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/shufflegram/backend/internal/engine"
)

// Sender is the subset of the Telegram client the deliverer needs.
type Sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

// TelegramDeliverer sends engine fan-out deliveries over the Telegram API.
// It runs on the fan-out pool, never on the dispatcher goroutine.
type TelegramDeliverer struct {
	api Sender
}

// NewTelegramDeliverer creates a TelegramDeliverer
func NewTelegramDeliverer(api Sender) *TelegramDeliverer {
	return &TelegramDeliverer{api: api}
}

// Deliver sends one notification. A post attachment becomes a photo message
// with the text as caption; controls become inline keyboards.
func (t *TelegramDeliverer) Deliver(ctx context.Context, d engine.Delivery) error {
	chatID, err := strconv.ParseInt(d.Recipient, 10, 64)
	if err != nil {
		return fmt.Errorf("bad recipient id %q: %w", d.Recipient, err)
	}

	if d.Post != nil {
		photo := tgbotapi.NewPhoto(chatID, tgbotapi.FileID(d.Post.FileID))
		photo.Caption = d.Text
		if d.Control == engine.ControlPostActions {
			photo.ReplyMarkup = postActionsKeyboard(d.Post.ID, d.Post.Uploader)
		}
		_, err = t.api.Send(photo)
		return err
	}

	msg := tgbotapi.NewMessage(chatID, d.Text)
	if d.Control == engine.ControlAnonReply {
		msg.ReplyMarkup = anonReplyKeyboard(d.Target)
	}
	_, err = t.api.Send(msg)
	return err
}

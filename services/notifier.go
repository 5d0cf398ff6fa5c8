// services/notifier.go
package services

import (
	"context"
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
)

// Notifier delivers a short text message to the spa owner.
type Notifier interface {
	Notify(ctx context.Context, text string) error
	Channel() string
}

type messageCreator interface {
	CreateMessage(params *twilioApi.CreateMessageParams) (*twilioApi.ApiV2010Message, error)
}

type SMSNotifier struct {
	api  messageCreator
	from string
	to   string
}

func NewSMSNotifier(accountSid, authToken, from, to string) (*SMSNotifier, error) {
	if accountSid == "" || authToken == "" || from == "" || to == "" {
		return nil, fmt.Errorf("sms digest needs TWILIO_ACCOUNT_SID, TWILIO_AUTH_TOKEN, TWILIO_PHONE_NUMBER and DIGEST_SMS_TO")
	}
	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: accountSid,
		Password: authToken,
	})
	return &SMSNotifier{api: client.Api, from: from, to: to}, nil
}

func (n *SMSNotifier) Channel() string { return "sms" }

func (n *SMSNotifier) Notify(_ context.Context, text string) error {
	to, from := n.to, n.from
	// WhatsApp senders are configured with the prefix already.
	if strings.HasPrefix(from, "whatsapp:") && !strings.HasPrefix(to, "whatsapp:") {
		to = "whatsapp:" + to
	}

	params := &twilioApi.CreateMessageParams{}
	params.SetTo(to)
	params.SetFrom(from)
	params.SetBody(text)

	if _, err := n.api.CreateMessage(params); err != nil {
		return fmt.Errorf("send sms to %s: %w", n.to, err)
	}
	return nil
}

type messageSender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

type TelegramNotifier struct {
	bot    messageSender
	chatID int64
}

func NewTelegramNotifier(token string, chatID int64) (*TelegramNotifier, error) {
	if token == "" || chatID == 0 {
		return nil, fmt.Errorf("telegram digest needs TELEGRAM_BOT_TOKEN and TELEGRAM_CHAT_ID")
	}
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("connect telegram bot: %w", err)
	}
	return &TelegramNotifier{bot: bot, chatID: chatID}, nil
}

func (n *TelegramNotifier) Channel() string { return "telegram" }

func (n *TelegramNotifier) Notify(_ context.Context, text string) error {
	msg := tgbotapi.NewMessage(n.chatID, text)
	if _, err := n.bot.Send(msg); err != nil {
		return fmt.Errorf("send telegram message: %w", err)
	}
	return nil
}

type NotifierConfig struct {
	Channel           string
	TwilioAccountSID  string
	TwilioAuthToken   string
	TwilioPhoneNumber string
	SMSTo             string
	TelegramBotToken  string
	TelegramChatID    int64
}

// NewNotifier returns nil, nil when the digest channel is "none" or empty.
func NewNotifier(cfg NotifierConfig) (Notifier, error) {
	switch strings.ToLower(strings.TrimSpace(cfg.Channel)) {
	case "", "none":
		return nil, nil
	case "sms":
		return NewSMSNotifier(cfg.TwilioAccountSID, cfg.TwilioAuthToken, cfg.TwilioPhoneNumber, cfg.SMSTo)
	case "telegram":
		return NewTelegramNotifier(cfg.TelegramBotToken, cfg.TelegramChatID)
	}
	return nil, fmt.Errorf("unknown digest channel %q", cfg.Channel)
}

// Package channel implements the outbound messaging surface for each wire
// protocol the engine speaks.
package channel

import (
	"context"
	"fmt"
	"strconv"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/wb-go/wbf/logger"

	"github.com/JohnEvansOkyere/whatsapp-frontdesk-recep/internal/service/ports"
)

// TelegramChannel sends messages through the Bot API. Recipients are chat
// ids rendered as decimal strings.
type TelegramChannel struct {
	bot    *tgbotapi.BotAPI
	logger logger.Logger
}

func NewTelegramChannel(token string, logger logger.Logger) (*TelegramChannel, error) {
	if token == "" {
		logger.Warn("telegram bot token is empty, telegram channel disabled")
		return &TelegramChannel{bot: nil, logger: logger}, nil
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	return &TelegramChannel{bot: bot, logger: logger}, nil
}

// Bot exposes the underlying client for webhook update parsing.
func (c *TelegramChannel) Bot() *tgbotapi.BotAPI {
	return c.bot
}

func (c *TelegramChannel) SendMessage(ctx context.Context, recipient, text string) error {
	chatID, err := c.ready(ctx, recipient)
	if err != nil {
		return err
	}
	msg := tgbotapi.NewMessage(chatID, text)
	if _, err = c.bot.Send(msg); err != nil {
		return fmt.Errorf("send telegram message: %w", err)
	}
	return nil
}

func (c *TelegramChannel) SendButtons(ctx context.Context, recipient, text string, buttons []ports.Button) error {
	chatID, err := c.ready(ctx, recipient)
	if err != nil {
		return err
	}

	rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(buttons))
	for _, b := range buttons {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(b.Label, b.Action),
		))
	}

	msg := tgbotapi.NewMessage(chatID, text)
	msg.ReplyMarkup = tgbotapi.NewInlineKeyboardMarkup(rows...)
	if _, err = c.bot.Send(msg); err != nil {
		return fmt.Errorf("send telegram buttons: %w", err)
	}
	return nil
}

// SendList renders as an inline keyboard, three items per row; Telegram has
// no separate list widget.
func (c *TelegramChannel) SendList(ctx context.Context, recipient, text string, items []ports.Button) error {
	chatID, err := c.ready(ctx, recipient)
	if err != nil {
		return err
	}

	var rows [][]tgbotapi.InlineKeyboardButton
	var row []tgbotapi.InlineKeyboardButton
	for _, item := range items {
		row = append(row, tgbotapi.NewInlineKeyboardButtonData(item.Label, item.Action))
		if len(row) == 3 {
			rows = append(rows, row)
			row = nil
		}
	}
	if len(row) > 0 {
		rows = append(rows, row)
	}

	msg := tgbotapi.NewMessage(chatID, text)
	msg.ReplyMarkup = tgbotapi.NewInlineKeyboardMarkup(rows...)
	if _, err = c.bot.Send(msg); err != nil {
		return fmt.Errorf("send telegram list: %w", err)
	}
	return nil
}

func (c *TelegramChannel) SendTyping(ctx context.Context, recipient string) error {
	chatID, err := c.ready(ctx, recipient)
	if err != nil {
		return err
	}
	action := tgbotapi.NewChatAction(chatID, tgbotapi.ChatTyping)
	if _, err = c.bot.Request(action); err != nil {
		return fmt.Errorf("send typing action: %w", err)
	}
	return nil
}

func (c *TelegramChannel) ForwardToGroup(ctx context.Context, groupID, text string) error {
	return c.SendMessage(ctx, groupID, text)
}

// AnswerCallback acknowledges a button press so the client stops its spinner.
func (c *TelegramChannel) AnswerCallback(callbackID string) {
	if c.bot == nil {
		return
	}
	if _, err := c.bot.Request(tgbotapi.NewCallback(callbackID, "")); err != nil {
		c.logger.Debug("failed to answer callback",
			logger.String("callback_id", callbackID),
			logger.String("error", err.Error()),
		)
	}
}

func (c *TelegramChannel) ready(ctx context.Context, recipient string) (int64, error) {
	if c.bot == nil {
		return 0, fmt.Errorf("telegram channel disabled")
	}
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	chatID, err := strconv.ParseInt(recipient, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("bad telegram recipient %q: %w", recipient, err)
	}
	return chatID, nil
}

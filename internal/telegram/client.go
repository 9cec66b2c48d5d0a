// Package telegram implements the chat gateway: sending messages with
// optional reply keyboards and the long-poll loop feeding inbound messages
// to the router.
package telegram

import (
	"fmt"
	"log"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// MessageHandler consumes one inbound text message.
type MessageHandler interface {
	HandleMessage(chatID int64, text string) error
}

type Client struct {
	api *tgbotapi.BotAPI
}

func New(botToken string) (*Client, error) {
	api, err := tgbotapi.NewBotAPI(botToken)
	if err != nil {
		return nil, fmt.Errorf("creating telegram api client: %w", err)
	}
	return &Client{api: api}, nil
}

func (c *Client) SendMessage(chatID int64, text string) error {
	msg := tgbotapi.NewMessage(chatID, text)
	if _, err := c.api.Send(msg); err != nil {
		return fmt.Errorf("sending message to chat %d: %w", chatID, err)
	}
	return nil
}

// SendMessageWithKeyboard sends a message with a one-time resized reply
// keyboard; each inner slice is one row of button labels.
func (c *Client) SendMessageWithKeyboard(chatID int64, text string, keyboard [][]string) error {
	rows := make([][]tgbotapi.KeyboardButton, 0, len(keyboard))
	for _, labels := range keyboard {
		row := make([]tgbotapi.KeyboardButton, 0, len(labels))
		for _, label := range labels {
			row = append(row, tgbotapi.NewKeyboardButton(label))
		}
		rows = append(rows, row)
	}
	markup := tgbotapi.NewOneTimeReplyKeyboard(rows...)
	markup.ResizeKeyboard = true

	msg := tgbotapi.NewMessage(chatID, text)
	msg.ReplyMarkup = markup
	if _, err := c.api.Send(msg); err != nil {
		return fmt.Errorf("sending keyboard message to chat %d: %w", chatID, err)
	}
	return nil
}

// Poll runs the long-poll update loop until the update channel closes.
// Handler errors are logged, never fatal.
func (c *Client) Poll(handler MessageHandler) {
	updateConfig := tgbotapi.NewUpdate(0)
	updateConfig.Timeout = 30

	log.Printf("Polling for updates as @%s", c.api.Self.UserName)
	for update := range c.api.GetUpdatesChan(updateConfig) {
		if update.Message == nil || update.Message.Text == "" {
			continue
		}
		if err := handler.HandleMessage(update.Message.Chat.ID, update.Message.Text); err != nil {
			log.Printf("Failed to handle message from chat %d: %v", update.Message.Chat.ID, err)
		}
	}
}

// Package handlers routes inbound chat messages: the global cancel word,
// active wizard sessions, slash commands, the authorized menu entry points
// and the fallback main menu.
package handlers

import (
	"fmt"
	"strings"

	"github.com/maweber/james-bot/internal/auth"
	"github.com/maweber/james-bot/internal/domain"
	"github.com/maweber/james-bot/internal/domain/contract"
	"github.com/maweber/james-bot/internal/flows"
	"github.com/maweber/james-bot/internal/wizard"
)

// RefusalReply is sent to chats outside the allow-list.
const RefusalReply = "Dir gehorche ich nicht."

// Handler dispatches one inbound message at a time per chat.
type Handler struct {
	engine   *wizard.Engine
	checker  *auth.Checker
	chat     contract.ChatClient
	commands map[string]Command
}

func New(engine *wizard.Engine, checker *auth.Checker, chat contract.ChatClient, commands ...Command) *Handler {
	byName := make(map[string]Command, len(commands))
	for _, cmd := range commands {
		byName[cmd.Name()] = cmd
	}
	return &Handler{
		engine:   engine,
		checker:  checker,
		chat:     chat,
		commands: byName,
	}
}

// HandleMessage processes one inbound text message. The cancel word wins
// over everything, including an active wizard session.
func (h *Handler) HandleMessage(chatID int64, text string) error {
	text = strings.TrimSpace(text)

	if text == domain.CancelWord {
		h.engine.Cancel(chatID)
		return nil
	}

	if replies, handled := h.engine.Handle(chatID, text); handled {
		return h.send(chatID, replies)
	}

	if strings.HasPrefix(text, "/") {
		if reply, ok := h.runCommand(chatID, text); ok {
			return h.chat.SendMessage(chatID, reply)
		}
	}

	switch text {
	case "Müll":
		return h.enterMenu(chatID, flows.WizardGarbageMenu)
	case "Geburtstage":
		return h.enterMenu(chatID, flows.WizardBirthdayMenu)
	}

	return h.chat.SendMessageWithKeyboard(chatID, "Womit kann ich helfen?", mainMenuKeyboard())
}

func (h *Handler) enterMenu(chatID int64, wizardID string) error {
	if !h.checker.IsAuthorized(chatID) {
		return h.chat.SendMessage(chatID, RefusalReply)
	}
	replies, err := h.engine.Enter(chatID, wizardID)
	if err != nil {
		return fmt.Errorf("entering %s for chat %d: %w", wizardID, chatID, err)
	}
	return h.send(chatID, replies)
}

func (h *Handler) runCommand(chatID int64, text string) (reply string, ok bool) {
	fields := strings.Fields(text)
	name := strings.TrimPrefix(fields[0], "/")
	cmd, ok := h.commands[name]
	if !ok {
		return "", false
	}
	if !h.checker.IsAuthorized(chatID) {
		return RefusalReply, true
	}
	return cmd.Execute(fields[1:]), true
}

func (h *Handler) send(chatID int64, replies []wizard.Reply) error {
	for _, reply := range replies {
		var err error
		if len(reply.Keyboard) > 0 {
			err = h.chat.SendMessageWithKeyboard(chatID, reply.Text, reply.Keyboard)
		} else {
			err = h.chat.SendMessage(chatID, reply.Text)
		}
		if err != nil {
			return fmt.Errorf("sending reply to chat %d: %w", chatID, err)
		}
	}
	return nil
}

func mainMenuKeyboard() [][]string {
	return [][]string{
		{"Müll"},
		{"Geburtstage"},
		{domain.CancelWord},
	}
}

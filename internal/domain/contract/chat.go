package contract

// ChatClient defines the outbound chat operations the bot needs.
// This allows mocking in tests while keeping the real implementation simple.
type ChatClient interface {
	// SendMessage sends a plain text message to a chat.
	SendMessage(chatID int64, text string) error

	// SendMessageWithKeyboard sends a text message together with a one-time
	// reply keyboard; each inner slice is one keyboard row.
	SendMessageWithKeyboard(chatID int64, text string, keyboard [][]string) error
}

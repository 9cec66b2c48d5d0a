// Package auth holds the fixed allow-list of chats the bot obeys.
package auth

// Checker authorizes chat IDs against a fixed allow-list configured at
// startup. Authorization is checked per invocation, never cached.
type Checker struct {
	allowed map[int64]bool
	order   []int64
}

// New builds a Checker from the allow-listed chat IDs.
func New(chatIDs []int64) *Checker {
	allowed := make(map[int64]bool, len(chatIDs))
	for _, id := range chatIDs {
		allowed[id] = true
	}
	return &Checker{allowed: allowed, order: chatIDs}
}

// IsAuthorized reports whether the chat may invoke privileged commands.
func (c *Checker) IsAuthorized(chatID int64) bool {
	return c.allowed[chatID]
}

// ChatIDs returns the allow-listed chat IDs in configuration order; the
// reminder jobs fan their notifications out to exactly these chats.
func (c *Checker) ChatIDs() []int64 {
	return c.order
}

// Package wizard implements the multi-step conversation engine: linear
// wizards, one mutable session per chat, and a global cancel transition
// that works at every step.
package wizard

import (
	"fmt"
	"log"
	"sync"
)

// Reply is one outbound message. Keyboard is a suggested reply keyboard,
// opaque to the engine; each inner slice is one row of button labels.
type Reply struct {
	Text     string
	Keyboard [][]string
}

type directive int

const (
	directiveStay directive = iota
	directiveNext
	directiveLeave
	directiveEnter
)

// Context carries one user message through one wizard step. Steps read
// Input, mutate State, queue replies and pick the transition; not picking
// one means the step re-runs on the next message (used to re-prompt after
// invalid input).
type Context struct {
	ChatID int64
	Input  string
	State  any

	replies []Reply
	dir     directive
	enterID string
}

// Reply queues a plain text reply.
func (c *Context) Reply(text string) {
	c.replies = append(c.replies, Reply{Text: text})
}

// ReplyKeyboard queues a reply with a suggested keyboard.
func (c *Context) ReplyKeyboard(text string, keyboard [][]string) {
	c.replies = append(c.replies, Reply{Text: text, Keyboard: keyboard})
}

// Next advances the wizard to the following step.
func (c *Context) Next() { c.dir = directiveNext }

// Stay keeps the wizard on the current step.
func (c *Context) Stay() { c.dir = directiveStay }

// Leave terminates the wizard.
func (c *Context) Leave() { c.dir = directiveLeave }

// Enter terminates the wizard and starts another one in its place.
func (c *Context) Enter(wizardID string) {
	c.dir = directiveEnter
	c.enterID = wizardID
}

// Step handles one user message. A returned error means the step hit a
// store or transport failure; the engine logs it and answers with the
// configured error reply.
type Step func(ctx *Context) error

// Wizard is a straight-line sequence of steps. NewState builds the typed
// session state the steps share; it may be nil for stateless wizards.
type Wizard struct {
	ID       string
	Title    string
	NewState func() any
	Steps    []Step
}

type session struct {
	wizardID string
	cursor   int
	state    any
}

// Engine owns the wizard registry and the per-chat sessions. Messages from
// the same chat are processed strictly one at a time; different chats run
// independently.
type Engine struct {
	mu         sync.Mutex
	wizards    map[string]*Wizard
	sessions   map[int64]*session
	chatLocks  map[int64]*sync.Mutex
	errorReply string
}

// NewEngine creates an engine; errorReply is sent to the user whenever a
// step fails with an error.
func NewEngine(errorReply string) *Engine {
	return &Engine{
		wizards:    make(map[string]*Wizard),
		sessions:   make(map[int64]*session),
		chatLocks:  make(map[int64]*sync.Mutex),
		errorReply: errorReply,
	}
}

// Register adds a wizard to the registry.
func (e *Engine) Register(w *Wizard) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.wizards[w.ID] = w
}

// HasSession reports whether the chat currently has an active wizard.
func (e *Engine) HasSession(chatID int64) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.sessions[chatID] != nil
}

// Cancel discards the chat's session, whatever step it is on. Writes that
// earlier steps already committed stay committed.
func (e *Engine) Cancel(chatID int64) {
	e.mu.Lock()
	defer e.mu.Unlock()
	delete(e.sessions, chatID)
}

// Enter starts the given wizard for the chat, discarding any previous
// session, and runs its first step.
func (e *Engine) Enter(chatID int64, wizardID string) ([]Reply, error) {
	lock := e.lockChat(chatID)
	defer lock.Unlock()
	return e.enterLocked(chatID, wizardID)
}

// Handle feeds one user message to the chat's active wizard. It returns
// handled == false when the chat has no session.
func (e *Engine) Handle(chatID int64, input string) (replies []Reply, handled bool) {
	lock := e.lockChat(chatID)
	defer lock.Unlock()

	e.mu.Lock()
	s := e.sessions[chatID]
	e.mu.Unlock()
	if s == nil {
		return nil, false
	}

	return e.runStep(chatID, s, input), true
}

func (e *Engine) lockChat(chatID int64) *sync.Mutex {
	e.mu.Lock()
	lock, ok := e.chatLocks[chatID]
	if !ok {
		lock = &sync.Mutex{}
		e.chatLocks[chatID] = lock
	}
	e.mu.Unlock()
	lock.Lock()
	return lock
}

func (e *Engine) enterLocked(chatID int64, wizardID string) ([]Reply, error) {
	e.mu.Lock()
	w := e.wizards[wizardID]
	if w == nil {
		e.mu.Unlock()
		return nil, fmt.Errorf("unknown wizard %q", wizardID)
	}

	s := &session{wizardID: wizardID}
	if w.NewState != nil {
		s.state = w.NewState()
	}
	e.sessions[chatID] = s
	e.mu.Unlock()

	return e.runStep(chatID, s, ""), nil
}

func (e *Engine) runStep(chatID int64, s *session, input string) []Reply {
	e.mu.Lock()
	w := e.wizards[s.wizardID]
	cursor := s.cursor
	e.mu.Unlock()

	ctx := &Context{ChatID: chatID, Input: input, State: s.state}
	err := w.Steps[cursor](ctx)
	if err != nil {
		log.Printf("wizard %s step %d failed for chat %d: %v", s.wizardID, cursor, chatID, err)
		replies := append(ctx.replies, Reply{Text: e.errorReply})
		// A failing terminal step ends the session; otherwise the user
		// stays on the current step and may retry.
		if cursor == len(w.Steps)-1 {
			e.Cancel(chatID)
		}
		return replies
	}

	switch ctx.dir {
	case directiveNext:
		e.mu.Lock()
		s.cursor++
		done := s.cursor >= len(w.Steps)
		e.mu.Unlock()
		if done {
			e.Cancel(chatID)
		}
	case directiveLeave:
		e.Cancel(chatID)
	case directiveEnter:
		e.Cancel(chatID)
		next, err := e.enterLocked(chatID, ctx.enterID)
		if err != nil {
			log.Printf("wizard %s could not enter %q: %v", s.wizardID, ctx.enterID, err)
			return append(ctx.replies, Reply{Text: e.errorReply})
		}
		return append(ctx.replies, next...)
	case directiveStay:
		// Step re-runs on the next message.
	}

	return ctx.replies
}

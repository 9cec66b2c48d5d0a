package handlers

import (
	"testing"
	"time"

	"github.com/maweber/james-bot/internal/auth"
	"github.com/maweber/james-bot/internal/domain"
	"github.com/maweber/james-bot/internal/domain/entity"
	"github.com/maweber/james-bot/internal/flows"
	"github.com/maweber/james-bot/internal/wizard"
	"github.com/maweber/james-bot/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const (
	allowedChatID  int64 = 111
	strangerChatID int64 = 999
)

func fixedNow() time.Time {
	return time.Date(2025, time.May, 15, 12, 0, 0, 0, time.UTC)
}

type handlerMocks struct {
	repo *mocks.MockEventRepo
	chat *mocks.MockChatClient
}

func newTestHandler(t *testing.T) (*Handler, handlerMocks, *wizard.Engine) {
	t.Helper()

	ctrl := gomock.NewController(t)
	repo := mocks.NewMockEventRepo(ctrl)
	chat := mocks.NewMockChatClient(ctrl)

	engine := wizard.NewEngine(flows.ErrorReply)
	flows.New(repo).RegisterAll(engine)

	checker := auth.New([]int64{allowedChatID})
	handler := New(engine, checker, chat,
		&ShowNextGarbagesCommand{Repo: repo, Now: fixedNow},
	)

	return handler, handlerMocks{repo: repo, chat: chat}, engine
}

func TestHandler_MenuEntry(t *testing.T) {
	t.Run("authorized chat opens the garbage menu", func(t *testing.T) {
		handler, m, engine := newTestHandler(t)

		m.chat.EXPECT().
			SendMessageWithKeyboard(allowedChatID, "Müll also. Was willst du tun?", gomock.Any()).
			Return(nil)

		err := handler.HandleMessage(allowedChatID, "Müll")
		require.NoError(t, err)
		assert.True(t, engine.HasSession(allowedChatID))
	})

	t.Run("authorized chat opens the birthday menu", func(t *testing.T) {
		handler, m, _ := newTestHandler(t)

		m.chat.EXPECT().
			SendMessageWithKeyboard(allowedChatID, "Geburtstage also. Was willst du tun?", gomock.Any()).
			Return(nil)

		err := handler.HandleMessage(allowedChatID, "Geburtstage")
		require.NoError(t, err)
	})

	t.Run("stranger is refused", func(t *testing.T) {
		handler, m, engine := newTestHandler(t)

		m.chat.EXPECT().SendMessage(strangerChatID, RefusalReply).Return(nil)

		err := handler.HandleMessage(strangerChatID, "Müll")
		require.NoError(t, err)
		assert.False(t, engine.HasSession(strangerChatID))
	})
}

func TestHandler_FallbackMainMenu(t *testing.T) {
	handler, m, _ := newTestHandler(t)

	m.chat.EXPECT().
		SendMessageWithKeyboard(allowedChatID, "Womit kann ich helfen?",
			[][]string{{"Müll"}, {"Geburtstage"}, {domain.CancelWord}}).
		Return(nil)

	err := handler.HandleMessage(allowedChatID, "hallo")
	require.NoError(t, err)
}

func TestHandler_CancelWord(t *testing.T) {
	handler, m, engine := newTestHandler(t)

	m.chat.EXPECT().
		SendMessageWithKeyboard(allowedChatID, gomock.Any(), gomock.Any()).
		Return(nil)
	require.NoError(t, handler.HandleMessage(allowedChatID, "Müll"))
	require.True(t, engine.HasSession(allowedChatID))

	// Cancelling sends nothing and discards the session.
	err := handler.HandleMessage(allowedChatID, domain.CancelWord)
	require.NoError(t, err)
	assert.False(t, engine.HasSession(allowedChatID))
}

func TestHandler_SessionMessagesGoToTheWizard(t *testing.T) {
	handler, m, engine := newTestHandler(t)

	m.chat.EXPECT().
		SendMessageWithKeyboard(allowedChatID, "Müll also. Was willst du tun?", gomock.Any()).
		Return(nil)
	require.NoError(t, handler.HandleMessage(allowedChatID, "Müll"))

	m.chat.EXPECT().
		SendMessageWithKeyboard(allowedChatID, "Für welche Müllfarbe möchtest du ein Mülldatum hinzufügen?", gomock.Any()).
		Return(nil)
	require.NoError(t, handler.HandleMessage(allowedChatID, "Mülldatum hinzufügen"))

	assert.True(t, engine.HasSession(allowedChatID))
}

func TestHandler_Commands(t *testing.T) {
	t.Run("dispatches to the registered command", func(t *testing.T) {
		handler, m, _ := newTestHandler(t)

		m.repo.EXPECT().
			GetGarbagesInNextDays(gomock.Any(), 7).
			Return([]*entity.Event{
				{EventID: "g1", EventType: domain.EventTypeGarbage, Date: "18-5", GarbageType: domain.GarbageGelb},
			}, nil)
		m.chat.EXPECT().
			SendMessage(allowedChatID, "Folgende Mülldaten gibt es in den nächsten 7 Tagen:\nPlastik am 18-5\n").
			Return(nil)

		err := handler.HandleMessage(allowedChatID, "/ShowNextGarbages 7")
		require.NoError(t, err)
	})

	t.Run("stranger gets the refusal", func(t *testing.T) {
		handler, m, _ := newTestHandler(t)

		m.chat.EXPECT().SendMessage(strangerChatID, RefusalReply).Return(nil)

		err := handler.HandleMessage(strangerChatID, "/ShowNextGarbages 7")
		require.NoError(t, err)
	})

	t.Run("unknown command falls back to the main menu", func(t *testing.T) {
		handler, m, _ := newTestHandler(t)

		m.chat.EXPECT().
			SendMessageWithKeyboard(allowedChatID, "Womit kann ich helfen?", gomock.Any()).
			Return(nil)

		err := handler.HandleMessage(allowedChatID, "/DoLaundry")
		require.NoError(t, err)
	})
}

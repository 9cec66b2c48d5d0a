package flows

import (
	"testing"

	"github.com/maweber/james-bot/internal/database"
	"github.com/maweber/james-bot/internal/domain"
	"github.com/maweber/james-bot/internal/domain/contract"
	"github.com/maweber/james-bot/internal/events"
	"github.com/maweber/james-bot/internal/wizard"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The scenario tests run the wizards against a real sqlite-backed repo
// instead of mocks, so the whole flow-to-store path is exercised.

func newScenarioEngine(t *testing.T) (*wizard.Engine, contract.EventRepo) {
	t.Helper()

	db := database.SetupTestDB(t)
	t.Cleanup(func() { database.CleanupTestDB(t, db) })

	repo := events.NewRepo(database.NewTableClient(db))

	f := New(repo)
	f.now = fixedNow

	engine := wizard.NewEngine(ErrorReply)
	f.RegisterAll(engine)

	return engine, repo
}

func runAddGarbage(t *testing.T, engine *wizard.Engine) wizard.Reply {
	t.Helper()

	_, err := engine.Enter(testChatID, WizardAddGarbage)
	require.NoError(t, err)

	engine.Handle(testChatID, "Gelb")
	engine.Handle(testChatID, "Juli")
	replies, handled := engine.Handle(testChatID, "14")
	require.True(t, handled)
	return lastReply(t, replies)
}

func TestScenario_AddGarbageTwiceKeepsOneRecord(t *testing.T) {
	engine, repo := newScenarioEngine(t)

	first := runAddGarbage(t, engine)
	assert.Equal(t, "Ich habe einen Mülltermin (Gelb) am 14-7 hinzugefügt", first.Text)

	second := runAddGarbage(t, engine)
	assert.Equal(t, DuplicateReply, second.Text)

	garbages, err := repo.GetAllGarbages()
	require.NoError(t, err)
	assert.Len(t, garbages, 1, "Expected the duplicate run to store nothing")
}

func TestScenario_DeleteAllGarbagesSparesBirthdays(t *testing.T) {
	engine, repo := newScenarioEngine(t)

	require.NoError(t, repo.AddGarbage(domain.GarbageSchwarz, 14, "Mai"))
	require.NoError(t, repo.AddGarbage(domain.GarbageGelb, 28, "Mai"))
	require.NoError(t, repo.AddGarbage(domain.GarbageGruen, 14, "Juli"))
	require.NoError(t, repo.AddBirthday("Max", "Muster", 27, "März"))
	require.NoError(t, repo.AddBirthday("Hannah", "Meier", 13, "Februar"))

	_, err := engine.Enter(testChatID, WizardDeleteAllGarbages)
	require.NoError(t, err)

	replies, handled := engine.Handle(testChatID, "Ja")
	require.True(t, handled)

	require.Len(t, replies, 3, "Expected one confirmation per deleted garbage date")
	for _, reply := range replies {
		assert.Contains(t, reply.Text, "gelöscht.")
	}

	garbages, err := repo.GetAllGarbages()
	require.NoError(t, err)
	assert.Empty(t, garbages)

	birthdays, err := repo.GetAllBirthdays()
	require.NoError(t, err)
	assert.Len(t, birthdays, 2, "Expected birthdays to survive")
}

func TestScenario_CancelKeepsCompletedWrites(t *testing.T) {
	engine, repo := newScenarioEngine(t)

	// Complete one add, then cancel a second one halfway through.
	runAddGarbage(t, engine)

	_, err := engine.Enter(testChatID, WizardAddGarbage)
	require.NoError(t, err)
	engine.Handle(testChatID, "Schwarz")
	engine.Cancel(testChatID)

	garbages, err := repo.GetAllGarbages()
	require.NoError(t, err)
	require.Len(t, garbages, 1, "Expected only the completed wizard's write")
	assert.Equal(t, domain.GarbageGelb, garbages[0].GarbageType)
	assert.False(t, engine.HasSession(testChatID))
}

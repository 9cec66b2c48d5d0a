package events

import (
	"fmt"
	"testing"

	"github.com/maweber/james-bot/internal/database"
	"github.com/maweber/james-bot/internal/dates"
	"github.com/maweber/james-bot/internal/domain"
	"github.com/maweber/james-bot/internal/domain/contract"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRepo(t *testing.T) contract.EventRepo {
	t.Helper()

	db := database.SetupTestDB(t)
	t.Cleanup(func() { database.CleanupTestDB(t, db) })

	return NewRepo(database.NewTableClient(db))
}

func TestEventRepo_AddAndGetBirthdays(t *testing.T) {
	repo := setupRepo(t)

	err := repo.AddBirthday("Max", "Muster", 27, dates.Maerz)
	require.NoError(t, err, "Failed to add birthday")

	err = repo.AddBirthday("Hannah", "Meier", 13, dates.Februar)
	require.NoError(t, err, "Failed to add birthday")

	err = repo.AddGarbage(domain.GarbageGelb, 14, dates.Juli)
	require.NoError(t, err, "Failed to add garbage date")

	birthdays, err := repo.GetAllBirthdays()
	require.NoError(t, err, "Failed to get birthdays")

	require.Len(t, birthdays, 2, "Expected garbage dates to be excluded")
	assert.Equal(t, "Hannah", birthdays[0].FirstName)
	assert.Equal(t, "13-2", birthdays[0].Date)
	assert.Equal(t, "Max", birthdays[1].FirstName)
	assert.Equal(t, "27-3", birthdays[1].Date)
	assert.NotEmpty(t, birthdays[0].EventID)
	assert.NotEqual(t, birthdays[0].EventID, birthdays[1].EventID)
}

func TestEventRepo_SortsByCalendarOrder(t *testing.T) {
	repo := setupRepo(t)

	require.NoError(t, repo.AddGarbage(domain.GarbageSchwarz, 30, dates.Dezember))
	require.NoError(t, repo.AddGarbage(domain.GarbageSchwarz, 2, dates.Januar))
	require.NoError(t, repo.AddGarbage(domain.GarbageSchwarz, 15, dates.Januar))

	garbages, err := repo.GetAllGarbages()
	require.NoError(t, err)

	// Calendar order, not distance from today: December sorts last even
	// when it is the next collection.
	require.Len(t, garbages, 3)
	assert.Equal(t, "2-1", garbages[0].Date)
	assert.Equal(t, "15-1", garbages[1].Date)
	assert.Equal(t, "30-12", garbages[2].Date)
}

func TestEventRepo_Exists(t *testing.T) {
	repo := setupRepo(t)

	require.NoError(t, repo.AddBirthday("Max", "Muster", 27, dates.Maerz))
	require.NoError(t, repo.AddGarbage(domain.GarbageGelb, 14, dates.Juli))

	t.Run("birthday match on all fields", func(t *testing.T) {
		exists, err := repo.BirthdayExists("Max", "Muster", 27, dates.Maerz)
		require.NoError(t, err)
		assert.True(t, exists)
	})

	t.Run("birthday differs in one field", func(t *testing.T) {
		exists, err := repo.BirthdayExists("Max", "Muster", 28, dates.Maerz)
		require.NoError(t, err)
		assert.False(t, exists)

		exists, err = repo.BirthdayExists("Moritz", "Muster", 27, dates.Maerz)
		require.NoError(t, err)
		assert.False(t, exists)
	})

	t.Run("garbage match needs same color and date", func(t *testing.T) {
		exists, err := repo.GarbageDateExists(domain.GarbageGelb, 14, dates.Juli)
		require.NoError(t, err)
		assert.True(t, exists)

		exists, err = repo.GarbageDateExists(domain.GarbageGruen, 14, dates.Juli)
		require.NoError(t, err)
		assert.False(t, exists)
	})
}

func TestEventRepo_GetForDate(t *testing.T) {
	repo := setupRepo(t)

	require.NoError(t, repo.AddBirthday("Max", "Muster", 27, dates.Maerz))
	require.NoError(t, repo.AddBirthday("Hannah", "Meier", 27, dates.Maerz))
	require.NoError(t, repo.AddBirthday("Karl", "Schmidt", 28, dates.Maerz))
	require.NoError(t, repo.AddGarbage(domain.GarbageBraun, 27, dates.Maerz))

	birthdays, err := repo.GetBirthdaysForDate(dates.Date{Day: 27, Month: dates.Maerz})
	require.NoError(t, err)

	assert.Len(t, birthdays, 2, "Expected only birthdays on the exact date")
	for _, b := range birthdays {
		assert.Equal(t, "27-3", b.Date)
		assert.Equal(t, domain.EventTypeBirthday, b.EventType)
	}
}

func TestEventRepo_GetInNextDays(t *testing.T) {
	repo := setupRepo(t)

	require.NoError(t, repo.AddGarbage(domain.GarbageSchwarz, 30, dates.Dezember))
	require.NoError(t, repo.AddGarbage(domain.GarbageGelb, 2, dates.Januar))
	require.NoError(t, repo.AddGarbage(domain.GarbageGruen, 15, dates.Januar))
	require.NoError(t, repo.AddBirthday("Max", "Muster", 31, dates.Dezember))

	t.Run("window crosses the year boundary", func(t *testing.T) {
		garbages, err := repo.GetGarbagesInNextDays(dates.Date{Day: 29, Month: dates.Dezember}, 7)
		require.NoError(t, err)

		require.Len(t, garbages, 2)
		assert.Equal(t, "2-1", garbages[0].Date)
		assert.Equal(t, "30-12", garbages[1].Date)
	})

	t.Run("birthdays in the same window", func(t *testing.T) {
		birthdays, err := repo.GetBirthdaysInNextDays(dates.Date{Day: 29, Month: dates.Dezember}, 7)
		require.NoError(t, err)

		require.Len(t, birthdays, 1)
		assert.Equal(t, "31-12", birthdays[0].Date)
	})

	t.Run("horizon needing several IN groups", func(t *testing.T) {
		// 121 days split into two groups of at most 80 literals.
		garbages, err := repo.GetGarbagesInNextDays(dates.Date{Day: 1, Month: dates.Dezember}, 120)
		require.NoError(t, err)
		assert.Len(t, garbages, 3)
	})

	t.Run("zero horizon means today only", func(t *testing.T) {
		garbages, err := repo.GetGarbagesInNextDays(dates.Date{Day: 30, Month: dates.Dezember}, 0)
		require.NoError(t, err)
		require.Len(t, garbages, 1)
		assert.Equal(t, "30-12", garbages[0].Date)
	})
}

func TestEventRepo_ScanAllPagesThroughTheStore(t *testing.T) {
	db := database.SetupTestDB(t)
	t.Cleanup(func() { database.CleanupTestDB(t, db) })

	repo := NewRepo(database.NewTableClientWithPageSize(db, 2))

	for day := 1; day <= 7; day++ {
		require.NoError(t, repo.AddGarbage(domain.GarbageSchwarz, day, dates.Mai))
	}

	garbages, err := repo.GetAllGarbages()
	require.NoError(t, err, "Failed to get garbages over several pages")

	require.Len(t, garbages, 7, "Expected the union of all pages")
	for i, g := range garbages {
		assert.Equal(t, fmt.Sprintf("%d-5", i+1), g.Date)
	}
}

func TestEventRepo_DeleteEvent(t *testing.T) {
	repo := setupRepo(t)

	require.NoError(t, repo.AddGarbage(domain.GarbageSchwarz, 14, dates.Mai))

	garbages, err := repo.GetAllGarbages()
	require.NoError(t, err)
	require.Len(t, garbages, 1)

	err = repo.DeleteEvent(garbages[0].EventID)
	require.NoError(t, err, "Failed to delete event")

	garbages, err = repo.GetAllGarbages()
	require.NoError(t, err)
	assert.Empty(t, garbages)

	err = repo.DeleteEvent("not-there")
	assert.NoError(t, err, "Expected deleting an unknown id to succeed")
}

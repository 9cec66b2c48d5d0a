package database

import (
	"fmt"
	"testing"

	"github.com/maweber/james-bot/internal/domain"
	"github.com/maweber/james-bot/internal/domain/contract"
	"github.com/maweber/james-bot/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func putTestEvent(t *testing.T, client contract.TableClient, id, date string) {
	t.Helper()

	err := client.Put(&entity.Event{
		EventID:     id,
		EventType:   domain.EventTypeGarbage,
		Date:        date,
		GarbageType: domain.GarbageSchwarz,
	})
	require.NoError(t, err, "Failed to put test event")
}

func TestTableClient_PutAndScan(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	client := NewTableClient(db)

	putTestEvent(t, client, "event-1", "14-5")
	putTestEvent(t, client, "event-2", "28-5")

	page, err := client.Scan(contract.ScanFilter{}, "")
	require.NoError(t, err, "Failed to scan events")

	assert.Len(t, page.Items, 2)
	assert.Empty(t, page.NextToken, "Expected no continuation token for a single page")
	assert.Equal(t, "event-1", page.Items[0].EventID)
	assert.Equal(t, domain.EventTypeGarbage, page.Items[0].EventType)
	assert.Equal(t, "14-5", page.Items[0].Date)
}

func TestTableClient_ScanWithEqualsFilter(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	client := NewTableClient(db)

	putTestEvent(t, client, "event-1", "14-5")
	putTestEvent(t, client, "event-2", "28-5")

	page, err := client.Scan(contract.ScanFilter{
		Equals: map[string]string{"date": "28-5"},
	}, "")
	require.NoError(t, err, "Failed to scan with filter")

	require.Len(t, page.Items, 1)
	assert.Equal(t, "event-2", page.Items[0].EventID)
}

func TestTableClient_ScanPagination(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	client := NewTableClientWithPageSize(db, 3)

	for i := 1; i <= 7; i++ {
		putTestEvent(t, client, fmt.Sprintf("event-%d", i), fmt.Sprintf("%d-5", i))
	}

	var all []*entity.Event
	token := ""
	pages := 0
	for {
		page, err := client.Scan(contract.ScanFilter{}, token)
		require.NoError(t, err, "Failed to scan page")
		all = append(all, page.Items...)
		pages++
		if page.NextToken == "" {
			break
		}
		token = page.NextToken
	}

	assert.Equal(t, 3, pages, "Expected 7 rows at page size 3 to need 3 pages")
	assert.Len(t, all, 7)
}

func TestTableClient_ScanWithInGroups(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	client := NewTableClient(db)

	putTestEvent(t, client, "event-1", "1-5")
	putTestEvent(t, client, "event-2", "2-5")
	putTestEvent(t, client, "event-3", "3-5")

	t.Run("matches any value of any group", func(t *testing.T) {
		page, err := client.Scan(contract.ScanFilter{
			AnyOf: []contract.InGroup{
				{Field: "date", Values: []string{"1-5"}},
				{Field: "date", Values: []string{"3-5", "4-5"}},
			},
		}, "")
		require.NoError(t, err)
		assert.Len(t, page.Items, 2)
	})

	t.Run("rejects groups over the value limit", func(t *testing.T) {
		values := make([]string, contract.MaxValuesPerInGroup+1)
		for i := range values {
			values[i] = fmt.Sprintf("%d-1", i+1)
		}
		_, err := client.Scan(contract.ScanFilter{
			AnyOf: []contract.InGroup{{Field: "date", Values: values}},
		}, "")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "at most 80")
	})

	t.Run("rejects empty groups", func(t *testing.T) {
		_, err := client.Scan(contract.ScanFilter{
			AnyOf: []contract.InGroup{{Field: "date"}},
		}, "")
		require.Error(t, err)
	})
}

func TestTableClient_ScanRejectsUnknownField(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	client := NewTableClient(db)

	_, err := client.Scan(contract.ScanFilter{
		Equals: map[string]string{"event_id; DROP TABLE events": "x"},
	}, "")
	require.Error(t, err)
}

func TestTableClient_Delete(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	client := NewTableClient(db)

	putTestEvent(t, client, "event-1", "14-5")

	err := client.Delete("event-1")
	require.NoError(t, err, "Failed to delete event")

	page, err := client.Scan(contract.ScanFilter{}, "")
	require.NoError(t, err)
	assert.Empty(t, page.Items)

	// Deleting again must stay a no-op success.
	err = client.Delete("event-1")
	assert.NoError(t, err, "Expected deleting a missing event to succeed")
}

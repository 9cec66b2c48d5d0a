package database

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/maweber/james-bot/internal/domain/contract"
	"github.com/maweber/james-bot/internal/domain/entity"
)

// defaultScanPageSize caps how many rows one Scan call returns, standing in
// for the response-size limit of the hosted table store this layer mirrors.
const defaultScanPageSize = 100

// scanColumns maps filterable field names to their table columns. Filters
// naming any other field are rejected.
var scanColumns = map[string]string{
	"event_type":   "event_type",
	"date":         "date",
	"first_name":   "first_name",
	"second_name":  "second_name",
	"garbage_type": "garbage_type",
}

type tableClient struct {
	db       dbConn
	pageSize int
}

// NewTableClient returns a TableClient over the events table with the
// default scan page size.
func NewTableClient(db *DB) contract.TableClient {
	return &tableClient{db: db.conn, pageSize: defaultScanPageSize}
}

// NewTableClientWithPageSize is like NewTableClient with an explicit page
// size; small sizes force multi-page scans in tests.
func NewTableClientWithPageSize(db *DB, pageSize int) contract.TableClient {
	return &tableClient{db: db.conn, pageSize: pageSize}
}

func (c *tableClient) Put(event *entity.Event) error {
	query := `
		INSERT INTO events (event_id, event_type, date, first_name, second_name, garbage_type)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	_, err := c.db.Exec(query,
		event.EventID,
		string(event.EventType),
		event.Date,
		event.FirstName,
		event.SecondName,
		string(event.GarbageType),
	)
	if err != nil {
		return fmt.Errorf("failed to put event: %w", err)
	}

	return nil
}

func (c *tableClient) Delete(eventID string) error {
	// Deleting an id that is not there is a no-op success.
	_, err := c.db.Exec(`DELETE FROM events WHERE event_id = ?`, eventID)
	if err != nil {
		return fmt.Errorf("failed to delete event: %w", err)
	}

	return nil
}

func (c *tableClient) Scan(filter contract.ScanFilter, startToken string) (*contract.ScanPage, error) {
	where, args, err := buildWhere(filter)
	if err != nil {
		return nil, err
	}

	startRowID := int64(0)
	if startToken != "" {
		startRowID, err = strconv.ParseInt(startToken, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid continuation token %q", startToken)
		}
	}

	query := `
		SELECT rowid, event_id, event_type, date, first_name, second_name, garbage_type
		FROM events
		WHERE rowid > ?` + where + `
		ORDER BY rowid
		LIMIT ?
	`
	queryArgs := append([]interface{}{startRowID}, args...)
	queryArgs = append(queryArgs, c.pageSize)

	rows, err := c.db.Query(query, queryArgs...)
	if err != nil {
		return nil, fmt.Errorf("failed to scan events: %w", err)
	}
	defer rows.Close()

	page := &contract.ScanPage{}
	var lastRowID int64
	for rows.Next() {
		event := &entity.Event{}
		err := rows.Scan(
			&lastRowID,
			&event.EventID,
			&event.EventType,
			&event.Date,
			&event.FirstName,
			&event.SecondName,
			&event.GarbageType,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan event row: %w", err)
		}
		page.Items = append(page.Items, event)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to scan events: %w", err)
	}

	if len(page.Items) == c.pageSize {
		page.NextToken = strconv.FormatInt(lastRowID, 10)
	}

	return page, nil
}

func buildWhere(filter contract.ScanFilter) (string, []interface{}, error) {
	var clauses []string
	var args []interface{}

	for field, value := range filter.Equals {
		column, ok := scanColumns[field]
		if !ok {
			return "", nil, fmt.Errorf("unknown filter field %q", field)
		}
		clauses = append(clauses, column+" = ?")
		args = append(args, value)
	}

	if len(filter.AnyOf) > 0 {
		var groups []string
		for _, group := range filter.AnyOf {
			column, ok := scanColumns[group.Field]
			if !ok {
				return "", nil, fmt.Errorf("unknown filter field %q", group.Field)
			}
			if len(group.Values) == 0 {
				return "", nil, fmt.Errorf("empty IN group for field %q", group.Field)
			}
			if len(group.Values) > contract.MaxValuesPerInGroup {
				return "", nil, fmt.Errorf("IN group for field %q has %d values, at most %d allowed",
					group.Field, len(group.Values), contract.MaxValuesPerInGroup)
			}
			placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(group.Values)), ", ")
			groups = append(groups, column+" IN ("+placeholders+")")
			for _, v := range group.Values {
				args = append(args, v)
			}
		}
		clauses = append(clauses, "("+strings.Join(groups, " OR ")+")")
	}

	if len(clauses) == 0 {
		return "", args, nil
	}
	return " AND " + strings.Join(clauses, " AND "), args, nil
}

// Package sqlite contains SQLite implementations of repository interfaces.
package sqlite

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
)

// builder is the shared squirrel statement builder. SQLite uses question
// placeholders; every filter value goes through a bound parameter, never
// string interpolation.
var builder = sq.StatementBuilder.PlaceholderFormat(sq.Question)

// nullStr converts an empty-means-null record string to sql.NullString.
func nullStr(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

// fmtTime renders a scanned timestamp in the RFC3339 form records carry.
func fmtTime(t time.Time) string {
	return t.Format(time.RFC3339)
}

// encodeList JSON-encodes a string list for a TEXT column; nil encodes as
// the empty list, matching the columns' '[]' default.
func encodeList(values []string) (string, error) {
	if values == nil {
		values = []string{}
	}
	data, err := json.Marshal(values)
	if err != nil {
		return "", fmt.Errorf("failed to encode list: %w", err)
	}
	return string(data), nil
}

// decodeList parses a JSON-encoded TEXT column back into a string list.
func decodeList(raw string) ([]string, error) {
	if raw == "" {
		return []string{}, nil
	}
	var values []string
	if err := json.Unmarshal([]byte(raw), &values); err != nil {
		return nil, fmt.Errorf("failed to decode list: %w", err)
	}
	if values == nil {
		values = []string{}
	}
	return values, nil
}

// likePattern wraps a search term for substring matching. SQLite's LIKE is
// case-insensitive for ASCII, which covers the catalog search contract.
func likePattern(term string) string {
	return "%" + term + "%"
}

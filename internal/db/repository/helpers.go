// Package repository implements the domain repository ports on SQLite.
package repository

import (
	"database/sql"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/asilingas/fambudg/internal/domain"
)

// mapDBError converts low-level database errors to domain errors.
func mapDBError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return &domain.NotFoundError{Message: "resource not found"}
	}
	if strings.Contains(err.Error(), "UNIQUE constraint failed") {
		return &domain.ConflictError{Message: "resource already exists"}
	}
	return err
}

// nullStrFromPtr converts *string to sql.NullString.
func nullStrFromPtr(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

// ptrFromNullStr converts sql.NullString to *string.
func ptrFromNullStr(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	s := ns.String
	return &s
}

// encodeTags marshals a tag list for storage; nil becomes "[]".
func encodeTags(tags []string) string {
	if len(tags) == 0 {
		return "[]"
	}
	b, err := json.Marshal(tags)
	if err != nil {
		return "[]"
	}
	return string(b)
}

// decodeTags unmarshals a stored tag list; empty or invalid input
// yields nil.
func decodeTags(raw string) []string {
	if raw == "" || raw == "[]" {
		return nil
	}
	var tags []string
	if err := json.Unmarshal([]byte(raw), &tags); err != nil {
		return nil
	}
	return tags
}

const dateLayout = "2006-01-02"

// parseDate parses a YYYY-MM-DD string into a UTC time.
func parseDate(s string) (time.Time, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, domain.ErrValidation("invalid date %q: must be YYYY-MM-DD", s)
	}
	return t, nil
}

package sqldb

import (
	"database/sql"
	"encoding/json"
	"time"
)

const timestampLayout = time.RFC3339Nano

func (r *implRepository) nullDate(t *time.Time) sql.NullString {
	if t == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: r.cal.FormatDate(*t), Valid: true}
}

func (r *implRepository) parseNullDate(s sql.NullString) (*time.Time, error) {
	if !s.Valid || s.String == "" {
		return nil, nil
	}
	d, err := r.cal.ParseDate(s.String)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func formatTimestamp(t time.Time) string {
	return t.UTC().Format(timestampLayout)
}

func parseTimestamp(s string) (time.Time, error) {
	return time.Parse(timestampLayout, s)
}

func nullString(p *string) sql.NullString {
	if p == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *p, Valid: true}
}

func stringPtr(s sql.NullString) *string {
	if !s.Valid {
		return nil
	}
	v := s.String
	return &v
}

func encodeIDs(ids []string) sql.NullString {
	if len(ids) == 0 {
		return sql.NullString{}
	}
	b, _ := json.Marshal(ids)
	return sql.NullString{String: string(b), Valid: true}
}

func decodeIDs(s sql.NullString) ([]string, error) {
	if !s.Valid || s.String == "" {
		return nil, nil
	}
	var ids []string
	if err := json.Unmarshal([]byte(s.String), &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

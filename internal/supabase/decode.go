package supabase

import (
	"encoding/json"
	"fmt"
)

// DecodeError reports a payload that does not match the expected row shape.
type DecodeError struct {
	Table string
	Err   error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("store: decode %s: %v", e.Table, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// Rows decodes a Select payload into typed rows. A shape mismatch fails the
// whole payload with a *DecodeError.
func Rows[T any](table string, raw json.RawMessage) ([]T, error) {
	var rows []T
	if err := json.Unmarshal(raw, &rows); err != nil {
		return nil, &DecodeError{Table: table, Err: err}
	}
	return rows, nil
}

// Row decodes a Select payload and returns its first row, or nil when the
// result set is empty.
func Row[T any](table string, raw json.RawMessage) (*T, error) {
	rows, err := Rows[T](table, raw)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return &rows[0], nil
}

// LenientRows decodes row by row and drops rows that do not match the shape,
// returning the rows that did decode. Used where a single malformed upstream
// row must not fail the request.
func LenientRows[T any](table string, raw json.RawMessage) ([]T, error) {
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, &DecodeError{Table: table, Err: err}
	}

	rows := make([]T, 0, len(items))
	for _, item := range items {
		var row T
		if err := json.Unmarshal(item, &row); err != nil {
			continue
		}
		rows = append(rows, row)
	}
	return rows, nil
}

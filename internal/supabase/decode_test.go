package supabase

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/velvetrow/salon-booking/internal/models"
)

func TestRowsDecodeErrorNamesTable(t *testing.T) {
	_, err := Rows[models.Service]("services", json.RawMessage(`{"not":"an array"}`))
	require.Error(t, err)

	var decodeErr *DecodeError
	require.True(t, errors.As(err, &decodeErr))
	assert.Equal(t, "services", decodeErr.Table)
}

func TestRowFirstOrNil(t *testing.T) {
	row, err := Row[models.Service]("services", json.RawMessage(`[{"id":1,"name":"Haircut"},{"id":2}]`))
	require.NoError(t, err)
	require.NotNil(t, row)
	assert.Equal(t, "Haircut", row.Name)

	row, err = Row[models.Service]("services", json.RawMessage(`[]`))
	require.NoError(t, err)
	assert.Nil(t, row)
}

func TestLenientRowsDropsMalformedRows(t *testing.T) {
	payload := json.RawMessage(`[
		{"id": 1, "time": "10:00", "stylist_id": 2},
		{"id": "not-a-number", "time": "10:30"},
		{"id": 3, "time": "11:00", "stylist_id": "4"}
	]`)

	rows, err := LenientRows[models.Appointment]("appointments", payload)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, int64(1), rows[0].ID.Int64())
	assert.Equal(t, int64(3), rows[1].ID.Int64())
	require.NotNil(t, rows[1].StylistID)
	assert.Equal(t, int64(4), rows[1].StylistID.Int64())
}

func TestLenientRowsNonArrayStillFails(t *testing.T) {
	_, err := LenientRows[models.Appointment]("appointments", json.RawMessage(`"oops"`))
	require.Error(t, err)

	var decodeErr *DecodeError
	assert.True(t, errors.As(err, &decodeErr))
}

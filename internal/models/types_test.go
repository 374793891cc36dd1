package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlexIDAcceptsNumbersAndNumericStrings(t *testing.T) {
	var s Service

	require.NoError(t, json.Unmarshal([]byte(`{"id": 42}`), &s))
	assert.Equal(t, int64(42), s.ID.Int64())

	require.NoError(t, json.Unmarshal([]byte(`{"id": "17"}`), &s))
	assert.Equal(t, int64(17), s.ID.Int64())

	require.NoError(t, json.Unmarshal([]byte(`{"id": 3.0}`), &s))
	assert.Equal(t, int64(3), s.ID.Int64())

	require.NoError(t, json.Unmarshal([]byte(`{"id": null}`), &s))
	assert.Equal(t, int64(0), s.ID.Int64())
}

func TestFlexIDRejectsNonNumericStrings(t *testing.T) {
	var s Service
	err := json.Unmarshal([]byte(`{"id": "abc"}`), &s)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not numeric")
}

func TestFlexFloatDegradesToZero(t *testing.T) {
	var s Service

	require.NoError(t, json.Unmarshal([]byte(`{"price": 499.5}`), &s))
	assert.Equal(t, 499.5, s.Price.Float64())

	require.NoError(t, json.Unmarshal([]byte(`{"price": "249.99"}`), &s))
	assert.Equal(t, 249.99, s.Price.Float64())

	// Garbage never fails the row, it just zeroes the value.
	require.NoError(t, json.Unmarshal([]byte(`{"price": "call us"}`), &s))
	assert.Zero(t, s.Price.Float64())

	require.NoError(t, json.Unmarshal([]byte(`{"price": null}`), &s))
	assert.Zero(t, s.Price.Float64())
}

func TestFlexBoolDegradesToFalse(t *testing.T) {
	var h BusinessHours

	require.NoError(t, json.Unmarshal([]byte(`{"is_closed": true}`), &h))
	assert.True(t, h.IsClosed.Bool())

	require.NoError(t, json.Unmarshal([]byte(`{"is_closed": "true"}`), &h))
	assert.True(t, h.IsClosed.Bool())

	require.NoError(t, json.Unmarshal([]byte(`{"is_closed": "maybe"}`), &h))
	assert.False(t, h.IsClosed.Bool())
}

func TestServiceDurationMinutes(t *testing.T) {
	var s Service
	require.NoError(t, json.Unmarshal([]byte(`{"duration": 45}`), &s))

	minutes, ok := s.DurationMinutes()
	assert.True(t, ok)
	assert.Equal(t, 45, minutes)

	var missing Service
	require.NoError(t, json.Unmarshal([]byte(`{"name": "Facial"}`), &missing))
	_, ok = missing.DurationMinutes()
	assert.False(t, ok)
}

func TestUserIsAdmin(t *testing.T) {
	assert.False(t, (*User)(nil).IsAdmin())
	assert.False(t, (&User{Role: "customer"}).IsAdmin())
	assert.True(t, (&User{Role: RoleAdmin}).IsAdmin())
}

package supabase

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type capturedRequest struct {
	method string
	path   string
	query  string
	header http.Header
	body   []byte
}

func newTestClient(t *testing.T, status int, response string) (*Client, *capturedRequest) {
	t.Helper()

	captured := &capturedRequest{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured.method = r.Method
		captured.path = r.URL.Path
		captured.query = r.URL.RawQuery
		captured.header = r.Header.Clone()
		captured.body, _ = io.ReadAll(r.Body)

		w.WriteHeader(status)
		w.Write([]byte(response))
	}))
	t.Cleanup(srv.Close)

	return NewClient(srv.URL, "anon-key", "secret-key"), captured
}

func TestSelectBuildsFilterOrderAndRange(t *testing.T) {
	client, captured := newTestClient(t, http.StatusOK, `[{"id": 1}]`)

	raw, err := client.Select(context.Background(), SelectQuery{
		Table:   "appointments",
		Columns: "id,date,time",
		Filter:  &Filter{Column: "date", Op: OpEq, Value: "2025-01-06"},
		Order:   "date.asc,time.asc",
		RangeTo: 4,
	})

	require.NoError(t, err)
	assert.JSONEq(t, `[{"id": 1}]`, string(raw))

	assert.Equal(t, http.MethodGet, captured.method)
	assert.Equal(t, "/rest/v1/appointments", captured.path)
	assert.Contains(t, captured.query, "select=id%2Cdate%2Ctime")
	assert.Contains(t, captured.query, "date=eq.2025-01-06")
	assert.Contains(t, captured.query, "order=date.asc%2Ctime.asc")
	assert.Equal(t, "0-4", captured.header.Get("Range"))
}

func TestSelectDefaultsAndNoRange(t *testing.T) {
	client, captured := newTestClient(t, http.StatusOK, `[]`)

	_, err := client.Select(context.Background(), SelectQuery{Table: "services"})
	require.NoError(t, err)

	assert.Contains(t, captured.query, "select=%2A")
	assert.Empty(t, captured.header.Get("Range"))
}

func TestSelectLessThanFilter(t *testing.T) {
	client, captured := newTestClient(t, http.StatusOK, `[]`)

	_, err := client.Select(context.Background(), SelectQuery{
		Table:  "appointments",
		Filter: &Filter{Column: "date", Op: OpLt, Value: "2025-01-09"},
	})
	require.NoError(t, err)

	assert.Contains(t, captured.query, "date=lt.2025-01-09")
}

func TestSelectEmptyBodyBecomesEmptyArray(t *testing.T) {
	client, _ := newTestClient(t, http.StatusOK, "")

	raw, err := client.Select(context.Background(), SelectQuery{Table: "services"})
	require.NoError(t, err)
	assert.Equal(t, "[]", string(raw))
}

func TestErrorStatusCarriesBody(t *testing.T) {
	client, _ := newTestClient(t, http.StatusForbidden, `{"message":"permission denied"}`)

	_, err := client.Select(context.Background(), SelectQuery{Table: "users"})
	require.Error(t, err)

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusForbidden, apiErr.Status)
	assert.Contains(t, apiErr.Body, "permission denied")
}

func TestInsertSendsRepresentationPrefer(t *testing.T) {
	client, captured := newTestClient(t, http.StatusCreated, `[{"id": 9}]`)

	raw, err := client.Insert(context.Background(), "appointments", map[string]string{
		"customer_name": "Priya",
	})

	require.NoError(t, err)
	assert.JSONEq(t, `[{"id": 9}]`, string(raw))

	assert.Equal(t, http.MethodPost, captured.method)
	assert.Equal(t, "return=representation", captured.header.Get("Prefer"))
	assert.JSONEq(t, `{"customer_name":"Priya"}`, string(captured.body))
}

func TestAuthHeadersStandardAndElevated(t *testing.T) {
	client, captured := newTestClient(t, http.StatusOK, `[]`)

	_, err := client.Select(context.Background(), SelectQuery{Table: "services"})
	require.NoError(t, err)
	assert.Equal(t, "anon-key", captured.header.Get("apikey"))
	assert.Equal(t, "Bearer anon-key", captured.header.Get("Authorization"))

	_, err = client.AsAdmin().Select(context.Background(), SelectQuery{Table: "services"})
	require.NoError(t, err)
	assert.Equal(t, "anon-key", captured.header.Get("apikey"))
	assert.Equal(t, "Bearer secret-key", captured.header.Get("Authorization"))
}

func TestUpdateAndDeleteTargetRowByID(t *testing.T) {
	client, captured := newTestClient(t, http.StatusOK, "")

	_, err := client.Update(context.Background(), "reviews", "12", map[string]bool{"is_approved": true})
	require.NoError(t, err)
	assert.Equal(t, http.MethodPatch, captured.method)
	assert.Equal(t, "id=eq.12", captured.query)

	err = client.Delete(context.Background(), "reviews", "12")
	require.NoError(t, err)
	assert.Equal(t, http.MethodDelete, captured.method)
	assert.Equal(t, "id=eq.12", captured.query)
}

func TestRawQueryDispatch(t *testing.T) {
	client, captured := newTestClient(t, http.StatusOK, `[{"id": 1}]`)

	results := client.RawQuery(context.Background(), "SELECT * FROM services; DROP TABLE services")
	require.Len(t, results, 2)

	assert.JSONEq(t, `[{"id": 1}]`, string(results[0].Rows))
	assert.Equal(t, "/rest/v1/services", captured.path)
	// Dispatched reads run with the elevated key.
	assert.Equal(t, "Bearer secret-key", captured.header.Get("Authorization"))

	assert.Contains(t, results[1].Message, "unsupported operation")
}

func TestRawQueryMessages(t *testing.T) {
	client, _ := newTestClient(t, http.StatusOK, `[]`)

	results := client.RawQuery(context.Background(),
		"INSERT INTO x VALUES (1); UPDATE x SET a=1; DELETE FROM x; CREATE TABLE y (id int)")
	require.Len(t, results, 4)

	assert.Contains(t, results[0].Message, "Insert method")
	assert.Contains(t, results[1].Message, "Update method")
	assert.Contains(t, results[2].Message, "Delete method")
	assert.Contains(t, results[3].Message, "store console")
}

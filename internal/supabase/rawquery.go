package supabase

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
)

// RawQuery is a deprecated compatibility shim. It does NOT execute SQL: it
// pattern-matches the leading keyword of each statement and either dispatches
// a plain table read or returns an explanatory message. Kept only because a
// few early admin scripts still call it.
//
// Deprecated: use the typed Select/Insert/Update/Delete methods.
func (c *Client) RawQuery(ctx context.Context, query string) []RawQueryResult {
	var results []RawQueryResult

	for _, statement := range strings.Split(query, ";") {
		statement = strings.TrimSpace(statement)
		if statement == "" {
			continue
		}

		lower := strings.ToLower(statement)
		switch {
		case strings.HasPrefix(lower, "select"):
			results = append(results, c.dispatchSelect(ctx, lower))
		case strings.HasPrefix(lower, "insert"):
			results = append(results, RawQueryResult{Message: "INSERT operations should use the Insert method"})
		case strings.HasPrefix(lower, "update"):
			results = append(results, RawQueryResult{Message: "UPDATE operations should use the Update method"})
		case strings.HasPrefix(lower, "delete"):
			results = append(results, RawQueryResult{Message: "DELETE operations should use the Delete method"})
		case strings.HasPrefix(lower, "create"):
			results = append(results, RawQueryResult{Message: "CREATE operations should be performed through the store console"})
		default:
			results = append(results, RawQueryResult{Message: fmt.Sprintf("unsupported operation: %s", statement)})
		}
	}

	return results
}

// RawQueryResult holds the outcome of one statement: decoded rows for a
// dispatched read, or a message/error for everything else.
type RawQueryResult struct {
	Rows    json.RawMessage `json:"rows,omitempty"`
	Message string          `json:"message,omitempty"`
	Err     string          `json:"error,omitempty"`
}

func (c *Client) dispatchSelect(ctx context.Context, lower string) RawQueryResult {
	_, after, found := strings.Cut(lower, "from")
	if !found {
		return RawQueryResult{Err: "invalid SELECT statement format"}
	}
	fields := strings.Fields(after)
	if len(fields) == 0 {
		return RawQueryResult{Err: "could not parse table name from SELECT statement"}
	}

	raw, err := c.AsAdmin().Select(ctx, SelectQuery{Table: fields[0], RangeTo: -1})
	if err != nil {
		return RawQueryResult{Err: err.Error()}
	}
	return RawQueryResult{Rows: raw}
}

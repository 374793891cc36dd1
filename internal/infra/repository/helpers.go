package repository

import (
	"context"
	"strconv"

	"github.com/velvetrow/salon-booking/internal/supabase"
)

func itoa(v int64) string {
	return strconv.FormatInt(v, 10)
}

// countRows fetches only ids and counts them. Good enough for the dashboard
// counters; the store offers no cheap count through this gateway.
func countRows(ctx context.Context, client *supabase.Client, table string) int {
	raw, err := client.Select(ctx, supabase.SelectQuery{
		Table:   table,
		Columns: "id",
	})
	if err != nil {
		return 0
	}

	rows, err := supabase.Rows[struct{}](table, raw)
	if err != nil {
		return 0
	}
	return len(rows)
}

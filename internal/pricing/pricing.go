package pricing

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/velvetrow/salon-booking/internal/models"
)

const symbol = "₹"

// Format renders a price as a symbol-prefixed, two-decimal string. Anything
// that cannot be read as a number formats as zero.
func Format(price any) string {
	return fmt.Sprintf("%s%.2f", symbol, toFloat(price))
}

func toFloat(v any) float64 {
	switch p := v.(type) {
	case nil:
		return 0
	case float64:
		return p
	case float32:
		return float64(p)
	case int:
		return float64(p)
	case int64:
		return float64(p)
	case models.FlexFloat:
		return p.Float64()
	case json.Number:
		if f, err := p.Float64(); err == nil {
			return f
		}
	case string:
		if f, err := strconv.ParseFloat(p, 64); err == nil {
			return f
		}
	}
	return 0
}

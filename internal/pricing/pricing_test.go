package pricing

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/velvetrow/salon-booking/internal/models"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want string
	}{
		{"int", 699, "₹699.00"},
		{"float", 499.5, "₹499.50"},
		{"string number", "249.99", "₹249.99"},
		{"flex float", models.FlexFloat(150), "₹150.00"},
		{"json number", json.Number("75"), "₹75.00"},
		{"nil", nil, "₹0.00"},
		{"garbage string", "free!", "₹0.00"},
		{"bool", true, "₹0.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Format(tt.in))
		})
	}
}

package view

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatAmount(t *testing.T) {
	assert.Equal(t, "+4520.00", FormatAmount(452000))
	assert.Equal(t, "-387.50", FormatAmount(-38750))
	assert.Equal(t, "+0.05", FormatAmount(5))
	assert.Equal(t, "+0.00", FormatAmount(0))
}

func TestFormatDate(t *testing.T) {
	assert.Equal(t, "2024-03-15", FormatDate(time.Date(2024, 3, 15, 18, 30, 0, 0, time.UTC)))
}

func TestActiveStyle(t *testing.T) {
	// Filter headers must keep the label readable whatever the color
	// profile renders to.
	assert.Contains(t, activeStyle("pending"), "pending")
}

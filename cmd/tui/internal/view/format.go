package view

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"
)

const dbTimeout = 5 * time.Second

// FormatAmount formats an amount stored as cents into a signed
// human-readable string, e.g. +4520.00 or -387.50.
func FormatAmount(cents int64) string {
	sign := "+"
	if cents < 0 {
		sign = "-"
		cents = -cents
	}

	return fmt.Sprintf("%s%d.%02d", sign, cents/100, cents%100)
}

// FormatDate formats a time.Time into YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.Format("2006-01-02")
}

// DbCtx returns a context with a standard timeout for store operations.
func DbCtx() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), dbTimeout)
}

// activeStyle highlights the currently selected filter value in a
// screen's filter header.
func activeStyle(s string) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Render(s)
}

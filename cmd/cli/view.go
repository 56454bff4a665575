package main

import (
	"fmt"
	"io"

	"github.com/xiaot623/tripplanner/internal/domain"
	"github.com/xiaot623/tripplanner/internal/itinerary"
)

// terminalView prints the conversation to a terminal.
type terminalView struct {
	out io.Writer
}

func (v *terminalView) ShowMessage(msg domain.Message) {
	if msg.Role == domain.RoleUser {
		// The terminal already echoes what the user typed.
		return
	}
	fmt.Fprintf(v.out, "\nPlanner: %s\n\n", msg.Content)
}

func (v *terminalView) ShowLoading(string) {
	fmt.Fprintln(v.out, "Planning...")
}

func (v *terminalView) RemoveLoading(string) {}

func (v *terminalView) SetInputEnabled(bool) {}

func (v *terminalView) ShowItinerary(it *domain.Itinerary) {
	fmt.Fprintln(v.out, "---- Itinerary ----")
	fmt.Fprint(v.out, itinerary.RenderDownloadText(it))
	fmt.Fprintln(v.out, "Use /download to save it or /print to print it.")
}

func printHistory(out io.Writer, messages []domain.Message) {
	for i, m := range messages {
		fmt.Fprintf(out, "%3d %-9s %s\n", i+1, m.Role, domain.DisplayText(m.Content))
	}
}

// Package itinerary renders itineraries as tabbed HTML, a printable document and
// a plain-text transcript. Every renderer is a pure function of its input.
package itinerary

import (
	"bytes"
	"fmt"
	"html/template"
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/xiaot623/tripplanner/internal/domain"
)

// TextContentType is the MIME type of the download artifact.
const TextContentType = "text/plain; charset=utf-8"

var funcs = template.FuncMap{
	"join": strings.Join,
}

var (
	viewTmpl  = template.Must(template.New("itinerary").Funcs(funcs).Parse(dayTemplate + viewTemplate))
	printTmpl = template.Must(template.New("print").Funcs(funcs).Parse(printTemplate))
)

// whitespace matches ASCII and Unicode space separators, line separators and BOM.
var whitespace = regexp.MustCompile(`[\s\v\p{Zs}\x{2028}\x{2029}\x{FEFF}]+`)

var upper = cases.Upper(language.Und)

// RenderView renders the embedded itinerary view: header, actions, day tabs and panels.
func RenderView(it *domain.Itinerary) (template.HTML, error) {
	var buf bytes.Buffer
	if err := viewTmpl.ExecuteTemplate(&buf, "view", it); err != nil {
		return "", fmt.Errorf("failed to render itinerary view: %w", err)
	}
	return template.HTML(buf.String()), nil
}

// RenderDay renders a single day block.
func RenderDay(day domain.Day) (template.HTML, error) {
	var buf bytes.Buffer
	if err := viewTmpl.ExecuteTemplate(&buf, "day", day); err != nil {
		return "", fmt.Errorf("failed to render day %d: %w", day.Day, err)
	}
	return template.HTML(buf.String()), nil
}

// RenderPrintable renders a standalone document styled for printing.
// The document starts the print flow as soon as it is loaded.
func RenderPrintable(it *domain.Itinerary) ([]byte, error) {
	var buf bytes.Buffer
	if err := printTmpl.Execute(&buf, it); err != nil {
		return nil, fmt.Errorf("failed to render printable itinerary: %w", err)
	}
	return buf.Bytes(), nil
}

// RenderDownloadText renders the plain-text transcript offered for download.
func RenderDownloadText(it *domain.Itinerary) string {
	var b strings.Builder

	fmt.Fprintf(&b, "TRAVEL ITINERARY - %s\n\n", upper.String(it.Destination))
	fmt.Fprintf(&b, "Duration: %d days\n", it.Duration)
	if it.HasDateRange() {
		fmt.Fprintf(&b, "Dates: %s to %s\n", it.StartDate, it.EndDate)
	}
	if budget := it.Budget(); budget != "" {
		fmt.Fprintf(&b, "Budget: %s\n", budget)
	}
	if prefs := it.Preferences(); len(prefs) > 0 {
		fmt.Fprintf(&b, "Preferences: %s\n", strings.Join(prefs, ", "))
	}
	b.WriteString("\n")

	for _, day := range it.Days {
		b.WriteString(dayTitle("DAY", day))
		b.WriteString("\n")
		for _, a := range day.Activities {
			if a.Time != "" {
				b.WriteString(a.Time + ": ")
			}
			b.WriteString(a.Activity + "\n")
			if a.Location != "" {
				b.WriteString("Location: " + a.Location + "\n")
			}
			if a.Notes != "" {
				b.WriteString("Notes: " + a.Notes + "\n")
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	return b.String()
}

// DownloadFilename names the download artifact after the destination.
func DownloadFilename(it *domain.Itinerary) string {
	return FileStem(it) + ".txt"
}

// FileStem is the extension-less artifact name: the destination with each
// whitespace run replaced by "_", suffixed with "_itinerary".
func FileStem(it *domain.Itinerary) string {
	return whitespace.ReplaceAllString(it.Destination, "_") + "_itinerary"
}

func dayTitle(prefix string, day domain.Day) string {
	title := fmt.Sprintf("%s %d", prefix, day.Day)
	if day.Date != "" {
		title += " - " + day.Date
	}
	return title
}

package itinerary

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xiaot623/tripplanner/internal/domain"
)

func kyoto() *domain.Itinerary {
	return &domain.Itinerary{
		Destination: "Kyoto, Japan",
		Duration:    2,
		StartDate:   "2025-04-01",
		EndDate:     "2025-04-02",
		TravelerInfo: &domain.TravelerInfo{
			Budget:      "Mid-range",
			Preferences: []string{"Food", "Culture"},
		},
		Days: []domain.Day{
			{
				Day:  1,
				Date: "2025-04-01",
				Activities: []domain.Activity{
					{Time: "Morning", Activity: "Fushimi Inari", Location: "Fushimi", Notes: "Go early"},
					{Activity: "Lunch"},
				},
			},
			{
				Day:        2,
				Activities: []domain.Activity{{Time: "Evening", Activity: "Gion walk"}},
			},
		},
	}
}

func tokyo() *domain.Itinerary {
	return &domain.Itinerary{
		Destination: "Tokyo",
		Duration:    5,
		Days: []domain.Day{
			{Day: 1, Activities: []domain.Activity{{Activity: "Visit Shibuya", Time: "09:00"}}},
		},
	}
}

func TestRenderDownloadText(t *testing.T) {
	want := "TRAVEL ITINERARY - KYOTO, JAPAN\n" +
		"\n" +
		"Duration: 2 days\n" +
		"Dates: 2025-04-01 to 2025-04-02\n" +
		"Budget: Mid-range\n" +
		"Preferences: Food, Culture\n" +
		"\n" +
		"DAY 1 - 2025-04-01\n" +
		"Morning: Fushimi Inari\n" +
		"Location: Fushimi\n" +
		"Notes: Go early\n" +
		"\n" +
		"Lunch\n" +
		"\n" +
		"\n" +
		"DAY 2\n" +
		"Evening: Gion walk\n" +
		"\n" +
		"\n"
	assert.Equal(t, want, RenderDownloadText(kyoto()))
}

func TestRenderDownloadTextMinimal(t *testing.T) {
	want := "TRAVEL ITINERARY - TOKYO\n" +
		"\n" +
		"Duration: 5 days\n" +
		"\n" +
		"DAY 1\n" +
		"09:00: Visit Shibuya\n" +
		"\n" +
		"\n"
	assert.Equal(t, want, RenderDownloadText(tokyo()))
}

func TestRenderDownloadTextIsDeterministic(t *testing.T) {
	it := kyoto()
	first := RenderDownloadText(it)
	second := RenderDownloadText(it)
	assert.Equal(t, first, second)
	assert.Equal(t, kyoto(), it, "input must not be mutated")
}

func TestRenderDownloadTextUppercasesUnicode(t *testing.T) {
	it := &domain.Itinerary{Destination: "München", Duration: 1}
	assert.True(t, strings.HasPrefix(RenderDownloadText(it), "TRAVEL ITINERARY - MÜNCHEN\n"))
}

func TestRenderDownloadTextDropsOptionalLines(t *testing.T) {
	full := RenderDownloadText(kyoto())

	it := kyoto()
	it.TravelerInfo.Budget = ""
	text := RenderDownloadText(it)
	assert.NotContains(t, text, "Budget:")
	assert.Equal(t, strings.Replace(full, "Budget: Mid-range\n", "", 1), text)

	it = kyoto()
	it.Days[0].Activities[0].Notes = ""
	text = RenderDownloadText(it)
	assert.Equal(t, strings.Replace(full, "Notes: Go early\n", "", 1), text)

	it = kyoto()
	it.EndDate = ""
	assert.NotContains(t, RenderDownloadText(it), "Dates:")
}

func TestDownloadFilename(t *testing.T) {
	cases := map[string]string{
		"Tokyo":            "Tokyo_itinerary.txt",
		"New York, USA":    "New_York,_USA_itinerary.txt",
		"Rio  de\tJaneiro": "Rio_de_Janeiro_itinerary.txt",
		" Paris":           "_Paris_itinerary.txt",
	}
	for dest, want := range cases {
		assert.Equal(t, want, DownloadFilename(&domain.Itinerary{Destination: dest}))
	}
}

func TestRenderView(t *testing.T) {
	html, err := RenderView(kyoto())
	require.NoError(t, err)
	out := string(html)

	assert.Contains(t, out, "<h2>Kyoto, Japan</h2>")
	assert.Contains(t, out, "<strong>Duration:</strong> 2 days")
	assert.Contains(t, out, "<strong>Dates:</strong> 2025-04-01 to 2025-04-02")
	assert.Contains(t, out, "<strong>Budget:</strong> Mid-range")
	assert.Contains(t, out, "<strong>Preferences:</strong> Food, Culture")
	assert.Contains(t, out, `id="print-itinerary"`)
	assert.Contains(t, out, `id="download-itinerary"`)
	assert.Contains(t, out, `id="all-days-tab"`)
	assert.Contains(t, out, `id="day-1-tab"`)
	assert.Contains(t, out, `id="day-2-tab"`)
	assert.Contains(t, out, `id="day-2"`)

	// Each day renders once in the all-days panel and once in its own panel.
	assert.Equal(t, 2, strings.Count(out, "<h3>Day 1 - 2025-04-01</h3>"))
	assert.Equal(t, 2, strings.Count(out, "<h3>Day 2</h3>"))
	assert.Less(t, strings.Index(out, "Fushimi Inari"), strings.Index(out, "Gion walk"))
}

func TestRenderViewOmitsAbsentFields(t *testing.T) {
	html, err := RenderView(tokyo())
	require.NoError(t, err)
	out := string(html)

	assert.NotContains(t, out, "Dates:")
	assert.NotContains(t, out, "Budget:")
	assert.NotContains(t, out, "Preferences:")
	assert.NotContains(t, out, "preferences mt-2")
	assert.NotContains(t, out, "Location:")
	assert.NotContains(t, out, "text-muted")
	assert.NotContains(t, out, "undefined")
}

func TestRenderDay(t *testing.T) {
	html, err := RenderDay(tokyo().Days[0])
	require.NoError(t, err)
	out := string(html)

	assert.Contains(t, out, "<h3>Day 1</h3>")
	assert.Contains(t, out, `<p class="text-primary fw-bold">09:00</p>`)
	assert.Contains(t, out, "<h5>Visit Shibuya</h5>")
	assert.Equal(t, 1, strings.Count(out, `class="activity"`))
	assert.NotContains(t, out, "Location:")
	assert.NotContains(t, out, "fst-italic")
}

func TestRenderDayWithAllFields(t *testing.T) {
	html, err := RenderDay(kyoto().Days[0])
	require.NoError(t, err)
	out := string(html)

	assert.Contains(t, out, "<h3>Day 1 - 2025-04-01</h3>")
	assert.Contains(t, out, "<p><strong>Location:</strong> Fushimi</p>")
	assert.Contains(t, out, `<p class="text-muted fst-italic">Go early</p>`)
	assert.Equal(t, 2, strings.Count(out, `class="activity"`))
}

func TestRenderEscapesItineraryText(t *testing.T) {
	it := &domain.Itinerary{
		Destination: `<script>alert("x")</script>`,
		Duration:    1,
		Days: []domain.Day{
			{Day: 1, Activities: []domain.Activity{{Activity: "<b>bold</b>", Notes: `"><img src=x onerror=alert(1)>`}}},
		},
	}

	html, err := RenderView(it)
	require.NoError(t, err)
	out := string(html)
	assert.NotContains(t, out, "<script>")
	assert.NotContains(t, out, "<b>bold</b>")
	assert.NotContains(t, out, "<img")
	assert.Contains(t, out, "&lt;script&gt;")

	doc, err := RenderPrintable(it)
	require.NoError(t, err)
	assert.NotContains(t, string(doc), `<script>alert`)
	assert.NotContains(t, string(doc), "<img")
}

func TestRenderPrintable(t *testing.T) {
	doc, err := RenderPrintable(kyoto())
	require.NoError(t, err)
	out := string(doc)

	assert.True(t, strings.HasPrefix(out, "<!DOCTYPE html>"))
	assert.Contains(t, out, "<title>Travel Itinerary - Kyoto, Japan</title>")
	assert.Contains(t, out, "<h2>Day 1 - 2025-04-01</h2>")
	assert.Contains(t, out, `<p class="time">Morning</p>`)
	assert.Contains(t, out, "<p>Location: Fushimi</p>")
	assert.Contains(t, out, "<p>Notes: Go early</p>")
	assert.Contains(t, out, "<strong>Preferences:</strong> Food, Culture")
	assert.Contains(t, out, "window.print()")
}

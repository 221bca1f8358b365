package form

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"travelplanner/internal/models/response_models"
)

func TestRender(t *testing.T) {
	it := response_models.Itinerary{
		Title:        "2 Day Itinerary for Lisbon",
		Introduction: "Hills and trams.",
		DayPlan: response_models.DayPlan{
			{Label: "Day 1", Activities: []string{"Morning: a", "Lunch: b", "Afternoon: c", "Evening: d"}},
			{Label: "Arrival day", Activities: []string{"Morning: e", "Lunch: f", "Afternoon: g", "Evening: h"}},
		},
		TravelTips: []string{"Transportation: t", "Entry Tickets: e", "Local Specialties: l", "Safety: s"},
	}

	v := Render(it)
	assert.Equal(t, it.Title, v.Title)
	assert.Equal(t, it.Introduction, v.Introduction)
	require.Len(t, v.Days, 2)

	// The index comes from position, not from the label text.
	assert.Equal(t, 1, v.Days[0].Index)
	assert.Equal(t, 2, v.Days[1].Index)
	assert.Equal(t, "Arrival day", v.Days[1].Label)
	assert.False(t, v.Days[0].Last)
	assert.True(t, v.Days[1].Last)

	assert.Equal(t, []string{"Morning: e", "Lunch: f", "Afternoon: g", "Evening: h"}, v.Days[1].Activities)
	assert.Equal(t, it.TravelTips, v.Tips)
}

func TestRender_Idempotent(t *testing.T) {
	it := *sampleItinerary()
	first := Render(it)
	second := Render(it)
	assert.Equal(t, first, second)
	assert.Equal(t, len(first.Days), len(second.Days))
	assert.Equal(t, len(first.Tips), len(second.Tips))

	// The view does not alias the itinerary.
	first.Days[0].Activities[0] = "changed"
	assert.Equal(t, "Morning: a", it.DayPlan[0].Activities[0])
}

func TestRender_Empty(t *testing.T) {
	v := Render(response_models.Itinerary{Title: "Empty"})
	assert.Empty(t, v.Days)
	assert.Empty(t, v.Tips)
}

func TestWriteText(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteText(&buf, Render(*sampleItinerary())))

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "1 Day Itinerary for Rome\n"))
	assert.Contains(t, out, "[1] Day 1")
	assert.Equal(t, 4, strings.Count(out, "  - "))
	assert.Equal(t, 4, strings.Count(out, "  * "))
	assert.Less(t, strings.Index(out, "Morning: a"), strings.Index(out, "Evening: d"))
}

package main

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"travelplanner/internal/form"
)

const oneDay = `{"title":"1 Day Itinerary for Rome","introduction":"Ciao.","dayPlan":{"Day 1":["Morning: Colosseum","Lunch: Trattoria","Afternoon: Forum","Evening: Trastevere"]},"travelTips":["Transportation: walk","Entry Tickets: book","Local Specialties: carbonara","Safety: pickpockets"]}`

func TestRun_PrintsItinerary(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(oneDay))
	}))
	defer srv.Close()

	var stdout, stderr bytes.Buffer
	code := run([]string{"--place", "Rome", "--days", "1", "--server", srv.URL}, &stdout, &stderr)

	assert.Equal(t, 0, code)
	assert.Contains(t, stdout.String(), "1 Day Itinerary for Rome")
	assert.Contains(t, stdout.String(), "Morning: Colosseum")
	assert.Contains(t, stdout.String(), "Safety: pickpockets")
}

func TestRun_FieldErrors(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run([]string{"--place", "", "--days", "0"}, &stdout, &stderr)

	assert.Equal(t, 2, code)
	assert.Contains(t, stderr.String(), form.MsgPlaceRequired)
	assert.Contains(t, stderr.String(), form.MsgDaysTooFew)
	assert.Empty(t, stdout.String())
}

func TestRun_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}))
	defer srv.Close()

	var stdout, stderr bytes.Buffer
	code := run([]string{"--place", "Rome", "--days", "1", "--server", srv.URL}, &stdout, &stderr)

	assert.Equal(t, 1, code)
	assert.Contains(t, stderr.String(), form.MsgGenericError)
}

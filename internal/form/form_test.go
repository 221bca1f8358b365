package form

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"travelplanner/internal/models/request_models"
	"travelplanner/internal/models/response_models"
)

// fakeClient records requests and optionally blocks until released.
type fakeClient struct {
	mu       sync.Mutex
	requests []request_models.ItineraryRequest
	started  chan struct{}
	release  chan struct{}
	result   *response_models.Itinerary
	err      error
}

func (c *fakeClient) RequestItinerary(ctx context.Context, req request_models.ItineraryRequest) (*response_models.Itinerary, error) {
	c.mu.Lock()
	c.requests = append(c.requests, req)
	c.mu.Unlock()
	if c.started != nil {
		c.started <- struct{}{}
	}
	if c.release != nil {
		<-c.release
	}
	return c.result, c.err
}

func (c *fakeClient) calls() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.requests)
}

func sampleItinerary() *response_models.Itinerary {
	return &response_models.Itinerary{
		Title:        "1 Day Itinerary for Rome",
		Introduction: "Eternal city.",
		DayPlan: response_models.DayPlan{
			{Label: "Day 1", Activities: []string{"Morning: a", "Lunch: b", "Afternoon: c", "Evening: d"}},
		},
		TravelTips: []string{"Transportation: t", "Entry Tickets: e", "Local Specialties: l", "Safety: s"},
	}
}

func TestForm_InitialState(t *testing.T) {
	f := New(&fakeClient{}, zaptest.NewLogger(t))
	st := f.State()
	assert.Equal(t, DefaultValues(), st.Values)
	assert.False(t, st.Loading)
	assert.Nil(t, st.Result)
	assert.Empty(t, st.Error)
}

func TestForm_InvalidInputSendsNothing(t *testing.T) {
	client := &fakeClient{result: sampleItinerary()}
	f := New(client, zaptest.NewLogger(t))

	err := f.Submit(context.Background(), "", "0")
	var fieldErrs FieldErrors
	require.ErrorAs(t, err, &fieldErrs)
	assert.Equal(t, MsgPlaceRequired, fieldErrs[FieldPlace])
	assert.Equal(t, MsgDaysTooFew, fieldErrs[FieldDays])
	assert.Equal(t, 0, client.calls())

	st := f.State()
	assert.Equal(t, Values{Place: "", Days: "0"}, st.Values)
	assert.Len(t, st.FieldErrors, 2)
	assert.False(t, st.Loading)
}

func TestForm_SuccessSetsResultAndResets(t *testing.T) {
	client := &fakeClient{result: sampleItinerary()}
	f := New(client, zaptest.NewLogger(t))

	require.NoError(t, f.Submit(context.Background(), "Rome", "1"))
	assert.Equal(t, []request_models.ItineraryRequest{{Place: "Rome", Days: 1}}, client.requests)

	st := f.State()
	assert.False(t, st.Loading)
	assert.Empty(t, st.Error)
	require.NotNil(t, st.Result)
	assert.Equal(t, "1 Day Itinerary for Rome", st.Result.Title)
	assert.Equal(t, DefaultValues(), st.Values)
	assert.Empty(t, st.FieldErrors)
}

func TestForm_FailureSetsGenericError(t *testing.T) {
	client := &fakeClient{err: &StatusError{Code: 500, Body: "Internal Server Error"}}
	f := New(client, zaptest.NewLogger(t))

	err := f.Submit(context.Background(), "Paris", "2")
	var statusErr *StatusError
	require.ErrorAs(t, err, &statusErr)

	st := f.State()
	assert.Equal(t, MsgGenericError, st.Error)
	assert.Nil(t, st.Result)
	assert.False(t, st.Loading)
	assert.Equal(t, Values{Place: "Paris", Days: "2"}, st.Values)
}

func TestForm_ResultAndErrorAreExclusive(t *testing.T) {
	client := &fakeClient{result: sampleItinerary()}
	f := New(client, zaptest.NewLogger(t))
	require.NoError(t, f.Submit(context.Background(), "Rome", "1"))

	client.result, client.err = nil, errors.New("network down")
	require.Error(t, f.Submit(context.Background(), "Rome", "1"))
	st := f.State()
	assert.Nil(t, st.Result)
	assert.Equal(t, MsgGenericError, st.Error)

	client.result, client.err = sampleItinerary(), nil
	require.NoError(t, f.Submit(context.Background(), "Rome", "1"))
	st = f.State()
	assert.NotNil(t, st.Result)
	assert.Empty(t, st.Error)
}

func TestForm_OneSubmissionInFlight(t *testing.T) {
	client := &fakeClient{
		result:  sampleItinerary(),
		started: make(chan struct{}, 1),
		release: make(chan struct{}),
	}
	f := New(client, zaptest.NewLogger(t))

	done := make(chan error, 1)
	go func() {
		done <- f.Submit(context.Background(), "Rome", "1")
	}()
	<-client.started

	st := f.State()
	assert.True(t, st.Loading)
	assert.Nil(t, st.Result)
	assert.Empty(t, st.Error)

	assert.ErrorIs(t, f.Submit(context.Background(), "Rome", "1"), ErrSubmissionInFlight)
	assert.Equal(t, 1, client.calls())

	close(client.release)
	require.NoError(t, <-done)
	assert.False(t, f.State().Loading)
	assert.Equal(t, 1, client.calls())
}

package form

import (
	"context"
	"errors"
	"strconv"
	"sync"

	"go.uber.org/zap"

	"travelplanner/internal/models/response_models"
)

var ErrSubmissionInFlight = errors.New("an itinerary request is already in progress")

// MsgGenericError is the only failure text users see; causes go to the log.
const MsgGenericError = "Something went wrong while generating your itinerary."

// Values are the raw field contents as typed by the user.
type Values struct {
	Place string
	Days  string
}

func DefaultValues() Values {
	return Values{Place: "", Days: strconv.Itoa(1)}
}

// State is a snapshot of the form. At most one of Loading, Result and Error is
// set.
type State struct {
	Values      Values
	FieldErrors FieldErrors
	Loading     bool
	Result      *response_models.Itinerary
	Error       string
}

// Form is the view-model behind the itinerary form. One Form allows one
// request in flight at a time.
type Form struct {
	client Client
	log    *zap.Logger

	mu          sync.Mutex
	values      Values
	fieldErrors FieldErrors
	loading     bool
	result      *response_models.Itinerary
	errMsg      string
}

func New(client Client, log *zap.Logger) *Form {
	return &Form{
		client: client,
		log:    log,
		values: DefaultValues(),
	}
}

// Submit validates the input and, if valid, issues exactly one request.
// It returns FieldErrors on invalid input, ErrSubmissionInFlight if another
// submission has not finished, or the client error.
func (f *Form) Submit(ctx context.Context, place, days string) error {
	req, fieldErrs := Validate(place, days)

	f.mu.Lock()
	if f.loading {
		f.mu.Unlock()
		return ErrSubmissionInFlight
	}
	f.values = Values{Place: place, Days: days}
	if len(fieldErrs) > 0 {
		f.fieldErrors = fieldErrs
		f.mu.Unlock()
		return fieldErrs
	}
	f.fieldErrors = nil
	f.loading = true
	f.result = nil
	f.errMsg = ""
	f.mu.Unlock()

	itinerary, err := f.client.RequestItinerary(ctx, req)

	f.mu.Lock()
	defer f.mu.Unlock()
	f.loading = false
	if err != nil {
		f.log.Error("itinerary request failed",
			zap.String("place", req.Place),
			zap.Int("days", req.Days),
			zap.Error(err),
		)
		f.errMsg = MsgGenericError
		return err
	}
	f.result = itinerary
	f.values = DefaultValues()
	return nil
}

func (f *Form) State() State {
	f.mu.Lock()
	defer f.mu.Unlock()

	st := State{
		Values:  f.values,
		Loading: f.loading,
	}
	if len(f.fieldErrors) > 0 {
		st.FieldErrors = make(FieldErrors, len(f.fieldErrors))
		for k, v := range f.fieldErrors {
			st.FieldErrors[k] = v
		}
	}
	if !f.loading {
		st.Result = f.result
		st.Error = f.errMsg
	}
	return st
}

package form

import (
	"errors"
	"sort"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"travelplanner/internal/models/request_models"
)

const (
	FieldPlace = "place"
	FieldDays  = "days"
)

const (
	MsgPlaceRequired = "Please enter a destination."
	MsgDaysNotNumber = "Number of days must be a whole number."
	MsgDaysTooFew    = "Must be at least 1 day."
	MsgDaysTooMany   = "Max 30 days allowed."
)

// FieldErrors maps a form field to its validation message.
type FieldErrors map[string]string

func (fe FieldErrors) Error() string {
	fields := make([]string, 0, len(fe))
	for f := range fe {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		parts = append(parts, f+": "+fe[f])
	}
	return strings.Join(parts, "; ")
}

// Validate coerces raw form input into a request and checks it with the
// request's binding rules. A non-empty FieldErrors means nothing may be
// submitted.
func Validate(place, days string) (request_models.ItineraryRequest, FieldErrors) {
	errs := FieldErrors{}
	req := request_models.ItineraryRequest{Place: strings.TrimSpace(place)}

	n, err := strconv.Atoi(strings.TrimSpace(days))
	if err != nil {
		errs[FieldDays] = MsgDaysNotNumber
	} else {
		req.Days = n
	}

	if err := req.Validate(); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			errs[FieldPlace] = MsgPlaceRequired
		}
		for _, fe := range verrs {
			switch fe.Field() {
			case "Place":
				errs[FieldPlace] = MsgPlaceRequired
			case "Days":
				if _, set := errs[FieldDays]; !set {
					errs[FieldDays] = daysMessage(fe.Tag())
				}
			}
		}
	}

	if len(errs) > 0 {
		return request_models.ItineraryRequest{}, errs
	}
	return req, nil
}

func daysMessage(tag string) string {
	if tag == "max" {
		return MsgDaysTooMany
	}
	// required and min both mean below one day
	return MsgDaysTooFew
}

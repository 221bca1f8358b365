package request_models

import (
	"fmt"
	"strings"

	"github.com/gin-gonic/gin/binding"
)

const (
	MinDays = 1
	MaxDays = 30
)

// ItineraryRequest is the body of POST /api/message.
type ItineraryRequest struct {
	Place string `json:"place" binding:"required"`
	Days  int    `json:"days" binding:"required,min=1,max=30"`
}

// Validate runs the binding rules, so callers that skip ShouldBindJSON get the
// same checks. Failures from the tags are validator.ValidationErrors.
func (r ItineraryRequest) Validate() error {
	if err := binding.Validator.ValidateStruct(r); err != nil {
		return err
	}
	if strings.TrimSpace(r.Place) == "" {
		return fmt.Errorf("place is required")
	}
	return nil
}

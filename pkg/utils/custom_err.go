package utils

import "errors"

var (
	ErrInvalidInput      = errors.New("invalid input")
	ErrModelCall         = errors.New("model call failed")
	ErrInvalidAIResponse = errors.New("invalid AI response format")
	ErrResponseShape     = errors.New("AI response does not match itinerary schema")
)

// Plain-text bodies returned by the itinerary endpoint.
const (
	MsgInvalidRequest      = "Invalid request"
	MsgInvalidAIResponse   = "Invalid AI response format"
	MsgInternalServerError = "Internal Server Error"
)

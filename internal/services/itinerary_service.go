package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"

	"travelplanner/internal/metrics"
	"travelplanner/internal/models/request_models"
	"travelplanner/internal/models/response_models"
	"travelplanner/pkg/utils"
)

type ItineraryServiceInterface interface {
	GenerateItinerary(ctx context.Context, req request_models.ItineraryRequest) (*response_models.GeneratedItinerary, error)
}

type ItineraryService struct {
	generator utils.TextGeneratorInterface
	validator *ItinerarySchemaValidator
	timeout   time.Duration
	log       *zap.Logger
}

func NewItineraryService(
	generator utils.TextGeneratorInterface,
	timeout time.Duration,
	log *zap.Logger,
) (ItineraryServiceInterface, error) {
	validator, err := NewItinerarySchemaValidator()
	if err != nil {
		return nil, err
	}
	return &ItineraryService{
		generator: generator,
		validator: validator,
		timeout:   timeout,
		log:       log.Named("itinerary"),
	}, nil
}

// GenerateItinerary makes exactly one model call. Errors wrap one of
// utils.ErrInvalidInput, utils.ErrModelCall, utils.ErrInvalidAIResponse or
// utils.ErrResponseShape.
func (s *ItineraryService) GenerateItinerary(ctx context.Context, req request_models.ItineraryRequest) (*response_models.GeneratedItinerary, error) {
	provider := s.generator.Provider()

	if err := req.Validate(); err != nil {
		metrics.ObserveOutcome(provider, metrics.OutcomeInvalidInput)
		return nil, fmt.Errorf("%w: %v", utils.ErrInvalidInput, err)
	}

	prompt := BuildUserPrompt(req)
	s.log.Debug("prompting model", zap.String("provider", provider), zap.String("prompt", prompt))

	callCtx := ctx
	if s.timeout > 0 {
		var cancel context.CancelFunc
		callCtx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	start := time.Now()
	text, err := s.generator.Generate(callCtx, BuildSystemInstruction(), prompt)
	elapsed := time.Since(start)
	metrics.ObserveModelCall(provider, elapsed)
	if err != nil {
		metrics.ObserveOutcome(provider, metrics.OutcomeCallError)
		return nil, fmt.Errorf("%w: %w", utils.ErrModelCall, err)
	}

	body := []byte(utils.CleanJSONString(text))
	if !json.Valid(body) {
		metrics.ObserveOutcome(provider, metrics.OutcomeParseError)
		return nil, fmt.Errorf("%w: reply is not JSON (%d bytes)", utils.ErrInvalidAIResponse, len(text))
	}

	itinerary, err := s.validator.Validate(body, req.Days)
	if err != nil {
		metrics.ObserveOutcome(provider, metrics.OutcomeShapeError)
		return nil, fmt.Errorf("%w: %w", utils.ErrResponseShape, err)
	}

	metrics.ObserveOutcome(provider, metrics.OutcomeSuccess)
	s.log.Info("itinerary generated",
		zap.String("provider", provider),
		zap.Int("days", len(itinerary.DayPlan)),
		zap.Duration("model_latency", elapsed),
	)

	return &response_models.GeneratedItinerary{
		Raw:       json.RawMessage(body),
		Itinerary: *itinerary,
	}, nil
}

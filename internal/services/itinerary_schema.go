package services

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	"travelplanner/internal/models/response_models"
)

const itinerarySchema = `{
  "type": "object",
  "required": ["title", "introduction", "dayPlan", "travelTips"],
  "properties": {
    "title": {"type": "string", "minLength": 1},
    "introduction": {"type": "string", "minLength": 1},
    "dayPlan": {
      "type": "object",
      "minProperties": 1,
      "maxProperties": 30,
      "patternProperties": {
        "^Day [1-9][0-9]*$": {
          "type": "array",
          "minItems": 4,
          "maxItems": 4,
          "items": {"type": "string", "minLength": 1}
        }
      },
      "additionalProperties": false
    },
    "travelTips": {
      "type": "array",
      "minItems": 4,
      "maxItems": 4,
      "items": {"type": "string", "minLength": 1}
    }
  }
}`

// ShapeError lists every way a syntactically valid reply deviates from the
// itinerary contract.
type ShapeError struct {
	Problems []string
}

func (e *ShapeError) Error() string {
	return "itinerary shape: " + strings.Join(e.Problems, "; ")
}

type ItinerarySchemaValidator struct {
	schema *gojsonschema.Schema
}

func NewItinerarySchemaValidator() (*ItinerarySchemaValidator, error) {
	schema, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(itinerarySchema))
	if err != nil {
		return nil, fmt.Errorf("compile itinerary schema: %w", err)
	}
	return &ItinerarySchemaValidator{schema: schema}, nil
}

// Validate checks body against the schema and then checks that dayPlan holds
// exactly days entries labelled "Day 1".."Day N" in order. body must already be
// valid JSON.
func (v *ItinerarySchemaValidator) Validate(body []byte, days int) (*response_models.Itinerary, error) {
	result, err := v.schema.Validate(gojsonschema.NewBytesLoader(body))
	if err != nil {
		return nil, fmt.Errorf("schema validation: %w", err)
	}
	if !result.Valid() {
		problems := make([]string, len(result.Errors()))
		for i, desc := range result.Errors() {
			problems[i] = desc.String()
		}
		return nil, &ShapeError{Problems: problems}
	}

	var itinerary response_models.Itinerary
	if err := json.Unmarshal(body, &itinerary); err != nil {
		return nil, &ShapeError{Problems: []string{err.Error()}}
	}

	var problems []string
	if len(itinerary.DayPlan) != days {
		problems = append(problems, fmt.Sprintf("dayPlan has %d days, requested %d", len(itinerary.DayPlan), days))
	}
	for i, entry := range itinerary.DayPlan {
		if want := DayLabel(i + 1); entry.Label != want {
			problems = append(problems, fmt.Sprintf("dayPlan key %d is %q, want %q", i+1, entry.Label, want))
		}
	}
	if len(problems) > 0 {
		return nil, &ShapeError{Problems: problems}
	}

	return &itinerary, nil
}

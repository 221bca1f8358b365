package response_models

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Itinerary is the structured day-by-day plan returned by the model.
type Itinerary struct {
	Title        string   `json:"title"`
	Introduction string   `json:"introduction"`
	DayPlan      DayPlan  `json:"dayPlan"`
	TravelTips   []string `json:"travelTips"`
}

// DayEntry is one "Day N" key of the dayPlan object.
type DayEntry struct {
	Label      string
	Activities []string
}

// DayPlan is a JSON object of day label to activities that keeps the key order
// of the document it was decoded from.
type DayPlan []DayEntry

func (d DayPlan) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, e := range d {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(e.Label)
		if err != nil {
			return nil, err
		}
		acts, err := json.Marshal(e.Activities)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(acts)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func (d *DayPlan) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*d = nil
		return nil
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("dayPlan: expected object, got %v", tok)
	}

	entries := DayPlan{}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		label, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("dayPlan: unexpected key %v", keyTok)
		}
		var activities []string
		if err := dec.Decode(&activities); err != nil {
			return fmt.Errorf("dayPlan[%q]: %w", label, err)
		}
		entries = append(entries, DayEntry{Label: label, Activities: activities})
	}
	if _, err := dec.Token(); err != nil {
		return err
	}

	*d = entries
	return nil
}

// GeneratedItinerary pairs the model's JSON document, as returned to clients,
// with its decoded form.
type GeneratedItinerary struct {
	Raw       json.RawMessage
	Itinerary Itinerary
}

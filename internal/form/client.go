package form

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"travelplanner/internal/models/request_models"
	"travelplanner/internal/models/response_models"
	"travelplanner/internal/services"
)

// Client issues one itinerary request.
type Client interface {
	RequestItinerary(ctx context.Context, req request_models.ItineraryRequest) (*response_models.Itinerary, error)
}

// StatusError is returned for any non-200 response from the itinerary endpoint.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("itinerary endpoint returned %d: %s", e.Code, e.Body)
}

// HTTPClient talks to POST /api/message.
type HTTPClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewHTTPClient creates a client for the server at baseURL. A zero timeout
// means the request waits as long as the server does.
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

func (c *HTTPClient) RequestItinerary(ctx context.Context, req request_models.ItineraryRequest) (*response_models.Itinerary, error) {
	payload, err := json.Marshal(req)
	if err != nil {
		return nil, err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/message", bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("request itinerary: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, fmt.Errorf("read itinerary response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, &StatusError{Code: resp.StatusCode, Body: strings.TrimSpace(string(body))}
	}

	var itinerary response_models.Itinerary
	if err := json.Unmarshal(body, &itinerary); err != nil {
		return nil, fmt.Errorf("decode itinerary: %w", err)
	}
	return &itinerary, nil
}

// LocalClient calls the itinerary service in-process; the HTML page uses it so
// the server does not make HTTP requests to itself.
type LocalClient struct {
	service services.ItineraryServiceInterface
}

func NewLocalClient(service services.ItineraryServiceInterface) *LocalClient {
	return &LocalClient{service: service}
}

func (c *LocalClient) RequestItinerary(ctx context.Context, req request_models.ItineraryRequest) (*response_models.Itinerary, error) {
	generated, err := c.service.GenerateItinerary(ctx, req)
	if err != nil {
		return nil, err
	}
	return &generated.Itinerary, nil
}

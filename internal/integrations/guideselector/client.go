package guideselector

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/sony/gobreaker"

	"github.com/m04kA/TourOps-BookingService/internal/domain"
)

const selectionPath = "/internal/guide-selection"

// Client клиент внешнего сервиса подбора гидов
type Client struct {
	baseURL    string
	httpClient *http.Client
	cb         *gobreaker.CircuitBreaker
	log        Logger
}

// Options параметры circuit breaker
type Options struct {
	MaxFailures int
	OpenTimeout time.Duration
}

// NewClient создает новый экземпляр клиента сервиса подбора гидов
func NewClient(baseURL string, timeout time.Duration, opts Options, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		cb:  newCircuitBreaker("guide-selector", opts, log),
		log: log,
	}
}

func newCircuitBreaker(name string, opts Options, log Logger) *gobreaker.CircuitBreaker {
	maxFailures := uint32(opts.MaxFailures)
	return gobreaker.NewCircuitBreaker(
		gobreaker.Settings{
			Name:        name,
			MaxRequests: 1,
			Timeout:     opts.OpenTimeout,
			ReadyToTrip: func(counts gobreaker.Counts) bool {
				return counts.ConsecutiveFailures >= maxFailures
			},
			OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
				log.Warn("Circuit breaker '%s' changed from '%s' to '%s'", name, from, to)
			},
			IsSuccessful: func(err error) bool {
				if err == nil {
					return true
				}
				var se *statusError
				return errors.As(err, &se) && se.StatusCode >= 400 && se.StatusCode < 500
			},
		},
	)
}

// SelectGuides запрашивает у сервиса набор гидов для проведения
func (c *Client) SelectGuides(ctx context.Context, scheduleID int64, partySize int) ([]domain.Assignment, error) {
	c.log.Info("Requesting guide selection for schedule_id=%d, party_size=%d", scheduleID, partySize)

	result, err := c.cb.Execute(func() (interface{}, error) {
		return c.doSelect(ctx, scheduleID, partySize)
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			c.log.Error("Guide selector circuit is open for schedule_id=%d: %v", scheduleID, err)
			return nil, fmt.Errorf("%w: %v", ErrServiceUnavailable, err)
		}

		var se *statusError
		if errors.As(err, &se) {
			if se.StatusCode == http.StatusNotFound || se.StatusCode == http.StatusUnprocessableEntity {
				return nil, ErrNoGuidesAvailable
			}
			return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, se.StatusCode, se.Body)
		}
		return nil, err
	}

	resp, ok := result.(*SelectionResponse)
	if !ok {
		return nil, fmt.Errorf("%w: unexpected result type", ErrInternal)
	}

	if len(resp.Assignments) == 0 {
		return nil, ErrNoGuidesAvailable
	}

	assignments := make([]domain.Assignment, 0, len(resp.Assignments))
	for _, g := range resp.Assignments {
		assignments = append(assignments, domain.Assignment{
			ScheduleID: scheduleID,
			GuideID:    g.GuideID,
			IsLeader:   g.IsLeader,
		})
	}

	c.log.Info("Guide selector returned %d guides for schedule_id=%d", len(assignments), scheduleID)
	return assignments, nil
}

func (c *Client) doSelect(ctx context.Context, scheduleID int64, partySize int) (*SelectionResponse, error) {
	payload, err := json.Marshal(SelectionRequest{ScheduleID: scheduleID, PartySize: partySize})
	if err != nil {
		return nil, fmt.Errorf("%w: failed to encode request: %v", ErrInternal, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+selectionPath, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		var errResp ErrorResponse
		if json.Unmarshal(body, &errResp) == nil && errResp.Message != "" {
			return nil, &statusError{StatusCode: resp.StatusCode, Body: errResp.Message}
		}
		return nil, &statusError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	var selection SelectionResponse
	if err := json.NewDecoder(resp.Body).Decode(&selection); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return &selection, nil
}

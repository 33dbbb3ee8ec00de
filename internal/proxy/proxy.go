// Package proxy implements the fetch, status-check, map sequence shared by every dashboard endpoint.
package proxy

import (
	"context"
	"net/http"
	"time"
)

// Endpoint describes one upstream API: how its success body maps to the response value
// and which response each non-200 status turns into.
//
// U is the upstream payload type decoded from a 200 body, T the value returned to the caller.
type Endpoint[U, T any] struct {
	Name string
	// Map converts a decoded upstream payload. A returned *Error is passed through unchanged;
	// any other error is reported as a transport fault.
	Map func(U) (T, error)
	// OnStatus maps specific upstream statuses. Statuses missing here use Fallback.
	OnStatus map[int]*Error
	// Fallback is used for any other non-200 status.
	Fallback *Error
}

func (e Endpoint[U, T]) statusError(status int) *Error {
	if pe, ok := e.OnStatus[status]; ok {
		return pe.Clone()
	}
	if e.Fallback != nil {
		return e.Fallback.Clone()
	}
	return StatusError(http.StatusBadGateway, "upstream request failed")
}

// Fetch performs one GET against target and maps the result through ep.
// The returned error, when non-nil, is always an *Error.
func Fetch[U, T any](ctx context.Context, c *Client, ep Endpoint[U, T], target string) (T, error) {
	var zero T
	start := time.Now()

	resp, err := c.Get(ctx, target)
	if err != nil {
		c.metrics.observe(ep.Name, OutcomeTransport, time.Since(start))
		return zero, TransportError(err)
	}

	if resp.Status != http.StatusOK {
		c.metrics.observe(ep.Name, OutcomeStatus, time.Since(start))
		return zero, ep.statusError(resp.Status)
	}

	var payload U
	if err := resp.Decode(&payload); err != nil {
		c.metrics.observe(ep.Name, OutcomeTransport, time.Since(start))
		return zero, TransportError(err)
	}

	out, err := ep.Map(payload)
	if err != nil {
		c.metrics.observe(ep.Name, OutcomeMapping, time.Since(start))
		if pe, ok := AsError(err); ok {
			return zero, pe.Clone()
		}
		return zero, TransportError(err)
	}

	c.metrics.observe(ep.Name, OutcomeSuccess, time.Since(start))
	return out, nil
}

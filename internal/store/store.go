package store

import (
	"context"
	"errors"
	"fmt"
)

// Kind names a record collection in the backing store.
type Kind string

const (
	KindInquiry       Kind = "inquiries"
	KindOpportunity   Kind = "opportunities"
	KindCommunication Kind = "communications"
	KindEvent         Kind = "events"
)

// Record is one loosely typed row from the store.
type Record map[string]any

// Filters are equality constraints applied to a List call.
type Filters map[string]any

// Client is the generic record API the console is built on. The store itself
// is a third-party system; there are no transactions across calls.
type Client interface {
	List(ctx context.Context, kind Kind, filters Filters) ([]Record, error)
	Create(ctx context.Context, kind Kind, values Record) (string, error)
	SetField(ctx context.Context, kind Kind, id, field string, value any) error
}

// APIError is a rejection from the record store that carries a message
// suitable for display.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("record store returned status %d", e.Status)
}

// Humanize turns a failed store call into a display-ready error: the store's
// own message when one was extracted, otherwise the given fallback wrapping
// the cause.
func Humanize(err error, fallback string) error {
	var api *APIError
	if errors.As(err, &api) && api.Message != "" {
		return errors.New(api.Message)
	}
	return fmt.Errorf("%s: %w", fallback, err)
}

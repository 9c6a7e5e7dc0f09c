package notifier

import (
	"context"
	"errors"
)

// Notifier delivers a rendered report to one messaging endpoint.
type Notifier interface {
	Send(ctx context.Context, text string) error
	Name() string
}

// Multi fans a message out to several notifiers; every channel is
// attempted even if an earlier one fails.
type Multi []Notifier

func (m Multi) Name() string { return "multi" }

func (m Multi) Send(ctx context.Context, text string) error {
	var errs []error
	for _, n := range m {
		if err := n.Send(ctx, text); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Package clipboard copies text using a primary clipboard capability and,
// only when that fails, a selection-copy fallback.
package clipboard

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// ErrUnavailable is returned by a capability that does not exist on the
// current platform.
var ErrUnavailable = errors.New("clipboard: capability unavailable")

// Writer is the asynchronous "write text to clipboard" capability.
type Writer interface {
	WriteText(ctx context.Context, text string) error
}

// SelectionCopier is the synchronous "copy current selection" capability.
// Implementations materialize a temporary holder for text, select all of
// it, copy the selection and remove the holder again.
type SelectionCopier interface {
	CopySelection(text string) error
}

// WriterFunc adapts a function to Writer.
type WriterFunc func(ctx context.Context, text string) error

func (f WriterFunc) WriteText(ctx context.Context, text string) error { return f(ctx, text) }

// SelectionCopierFunc adapts a function to SelectionCopier.
type SelectionCopierFunc func(text string) error

func (f SelectionCopierFunc) CopySelection(text string) error { return f(text) }

// Outcome tags how a copy attempt ended.
type Outcome int

const (
	Failed Outcome = iota
	Succeeded
	FallbackSucceeded
)

func (o Outcome) String() string {
	switch o {
	case Succeeded:
		return "succeeded"
	case FallbackSucceeded:
		return "fallback_succeeded"
	default:
		return "failed"
	}
}

// Result is the outcome of one copy attempt. Err carries the diagnostic
// causes: the primary failure when the fallback succeeded, both failures
// when the attempt failed.
type Result struct {
	Outcome Outcome
	Err     error
}

// Copied reports whether text reached the clipboard on either path.
func (r Result) Copied() bool {
	return r.Outcome == Succeeded || r.Outcome == FallbackSucceeded
}

// Copier runs the two-tier copy. A nil capability counts as unavailable.
type Copier struct {
	Primary  Writer
	Fallback SelectionCopier
	Logger   *zap.Logger
}

// NewCopier returns a Copier for the given capabilities.
func NewCopier(primary Writer, fallback SelectionCopier, logger *zap.Logger) *Copier {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Copier{Primary: primary, Fallback: fallback, Logger: logger}
}

// Copy puts text on the clipboard. It never returns an error: a total
// failure is logged and reported as a Failed result.
func (c *Copier) Copy(ctx context.Context, text string) Result {
	log := c.Logger
	if log == nil {
		log = zap.NewNop()
	}

	primaryErr := c.writePrimary(ctx, text)
	if primaryErr == nil {
		return Result{Outcome: Succeeded}
	}
	log.Debug("Primary clipboard write failed, trying fallback", zap.Error(primaryErr))

	fallbackErr := c.copyFallback(text)
	if fallbackErr == nil {
		return Result{Outcome: FallbackSucceeded, Err: primaryErr}
	}

	err := multierr.Append(
		fmt.Errorf("primary: %w", primaryErr),
		fmt.Errorf("fallback: %w", fallbackErr),
	)
	log.Error("Failed to copy", zap.Error(err))
	return Result{Outcome: Failed, Err: err}
}

func (c *Copier) writePrimary(ctx context.Context, text string) (err error) {
	if c.Primary == nil {
		return ErrUnavailable
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("clipboard write panicked: %v", r)
		}
	}()
	return c.Primary.WriteText(ctx, text)
}

func (c *Copier) copyFallback(text string) (err error) {
	if c.Fallback == nil {
		return ErrUnavailable
	}
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("selection copy panicked: %v", r)
		}
	}()
	return c.Fallback.CopySelection(text)
}

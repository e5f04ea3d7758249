package spquad

import (
	"errors"
	"fmt"
)

var (
	// ErrUnsupportedStrategy is returned when a scan key uses a strategy
	// number that the operator class doesn't implement. It indicates that the
	// registered operator set and the operator class disagree.
	ErrUnsupportedStrategy = errors.New("unsupported strategy")

	// ErrInvariantViolation is returned when a box can't be placed in any
	// quadrant, which only happens for NaN or absent boxes.
	ErrInvariantViolation = errors.New("invariant violation")

	// ErrExtentUnavailable is returned when a value has no computable
	// bounding box, e.g. an empty geometry.
	ErrExtentUnavailable = errors.New("extent unavailable")

	// ErrMalformedDatum is returned when a stored value can't be decoded.
	ErrMalformedDatum = errors.New("malformed datum")

	// ErrEmptySplit is returned when a split is requested with no values.
	ErrEmptySplit = errors.New("cannot split zero values")
)

// StrategyError reports a scan key strategy number that isn't supported.
type StrategyError struct {
	Number StrategyNumber
}

func (e *StrategyError) Error() string {
	return fmt.Sprintf("unrecognized strategy number: %d", int(e.Number))
}

func (e *StrategyError) Unwrap() error {
	return ErrUnsupportedStrategy
}

// ErrorKind gives a short stable name for the kind of err, suitable for use
// as a metric label.
func ErrorKind(err error) string {
	switch {
	case err == nil:
		return "none"
	case errors.Is(err, ErrUnsupportedStrategy):
		return "unsupported_strategy"
	case errors.Is(err, ErrInvariantViolation):
		return "invariant_violation"
	case errors.Is(err, ErrExtentUnavailable):
		return "extent_unavailable"
	case errors.Is(err, ErrMalformedDatum):
		return "malformed_datum"
	case errors.Is(err, ErrEmptySplit):
		return "empty_split"
	default:
		return "other"
	}
}

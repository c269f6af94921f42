/*
errors.go - Centralized error types for the engine

PURPOSE:
  All error types in one place for consistency and discoverability.
  Callers classify them with errors.Is / errors.As or the helpers below.

ERROR CATEGORIES:
  1. Programming errors - Unknown income/denomination mode, unknown wildcard tag
  2. Unresolvable cost - The cost model has no data for a composition
  3. Lookup errors - Unknown expedition, missing config

  Out-of-range user input is NOT an error: it is clamped (normalize.go).

SEE ALSO:
  - derive.go: Produces CostUnavailableError
  - income.go: Produces InvalidModeError
*/
package generic

import (
	"errors"
	"fmt"
)

// =============================================================================
// SENTINEL ERRORS - Use with errors.Is()
// =============================================================================

var (
	// ErrInvalidMode is returned for an income or denomination mode outside
	// the documented closed set.
	ErrInvalidMode = errors.New("invalid view mode")

	// ErrInvalidWildcard is returned for an unrecognized composition wildcard tag.
	ErrInvalidWildcard = errors.New("invalid wildcard in cost config")

	// ErrCostUnavailable is returned by a CostModel that has no cost data for
	// the requested composition. It must never be replaced by a zero cost.
	ErrCostUnavailable = errors.New("cost model fails to compute a cost for fleet composition")

	// ErrInvalidExpeditionID is returned for ids outside 1..40.
	ErrInvalidExpeditionID = errors.New("invalid expedition id")

	// ErrUnknownExpedition is returned when the catalog has no entry for an id.
	ErrUnknownExpedition = errors.New("expedition not in catalog")

	// ErrConfigNotFound is returned when no config is held for an id.
	ErrConfigNotFound = errors.New("expedition config not found")

	// ErrInvalidTime is returned when an hourly figure is requested for a
	// catalog entry with a non-positive time.
	ErrInvalidTime = errors.New("expedition time must be positive")

	// ErrInvalidMultiplier is returned for a custom multiplier that is not a
	// finite number. NormalizeModifier never lets one through.
	ErrInvalidMultiplier = errors.New("custom multiplier is not a finite number")

	// ErrUnknownVariant is returned when a config holds a variant this
	// package does not know about (nil included).
	ErrUnknownVariant = errors.New("unknown config variant")
)

// =============================================================================
// STRUCTURED ERRORS - Carry additional context
// =============================================================================

// CostUnavailableError reports which expedition and composition had no cost data.
type CostUnavailableError struct {
	ExpeditionID ExpeditionID
	Composition  Composition
	Err          error
}

func (e *CostUnavailableError) Error() string {
	return fmt.Sprintf("expedition %d: cannot compute cost for composition %v: %v",
		e.ExpeditionID, e.Composition, e.Err)
}

// Unwrap exposes both the sentinel and the cost model's own error.
func (e *CostUnavailableError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrCostUnavailable}
	}
	return []error{ErrCostUnavailable, e.Err}
}

// InvalidModeError names the offending mode kind and value.
type InvalidModeError struct {
	Kind  string // "income" or "denomination"
	Value string
}

func (e *InvalidModeError) Error() string {
	return fmt.Sprintf("invalid %s mode: %q", e.Kind, e.Value)
}

func (e *InvalidModeError) Unwrap() error {
	return ErrInvalidMode
}

// =============================================================================
// ERROR HELPERS
// =============================================================================

// IsClientError returns true if the error is due to invalid caller input.
func IsClientError(err error) bool {
	return errors.Is(err, ErrInvalidMode) ||
		errors.Is(err, ErrInvalidWildcard) ||
		errors.Is(err, ErrInvalidExpeditionID) ||
		errors.Is(err, ErrInvalidMultiplier) ||
		errors.Is(err, ErrUnknownVariant)
}

// IsNotFound returns true if the error indicates a missing catalog entry or config.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrUnknownExpedition) ||
		errors.Is(err, ErrConfigNotFound)
}

// IsUnavailable returns true if a cost could not be computed.
// Callers must show an explicit "cannot compute" state.
func IsUnavailable(err error) bool {
	return errors.Is(err, ErrCostUnavailable)
}

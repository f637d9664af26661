package pigrid

import "errors"

// Sentinel errors returned by cursor-relative drawing operations. Match with
// errors.Is; the returned error may wrap these with call context.
var (
	// ErrNoCursor is returned by relative operations before any Goto.
	ErrNoCursor = errors.New("pigrid: no virtual cursor")

	// ErrPenConflict is returned when a relative operation receives an
	// explicit pen while a stored pen (SetPen) is active.
	ErrPenConflict = errors.New("pigrid: explicit pen conflicts with stored pen")

	// ErrOutOfRange is returned by Erase and Skip for negative lengths.
	// Cursor positions and SkipTo/EraseTo targets are not range-checked.
	ErrOutOfRange = errors.New("pigrid: out of range")
)

package ports

import "time"

// Clock is the single source of "now" for a run.
type Clock interface {
	Now() time.Time
}

// Package lifecycle holds timing constants shared by components that hook into
// the application start/stop sequence.
package lifecycle

import "time"

// DefaultTimeout bounds start-up probes and graceful shutdown of a component.
const DefaultTimeout = 10 * time.Second

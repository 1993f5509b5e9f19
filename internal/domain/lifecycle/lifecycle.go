// Package lifecycle holds shared limits for starting and stopping components.
package lifecycle

import "time"

// DefaultTimeout bounds start-up pings and graceful shutdown of a component.
const DefaultTimeout = 10 * time.Second

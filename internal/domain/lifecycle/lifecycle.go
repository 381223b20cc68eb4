// Package lifecycle carries shared start/stop constants for fx-managed
// components.
package lifecycle

import "time"

// DefaultTimeout bounds startup pings and graceful shutdown.
const DefaultTimeout = 10 * time.Second

// Package lifecycle holds the timeouts shared by start and stop hooks.
package lifecycle

import "time"

// DefaultTimeout bounds each start or stop hook, including draining the HTTP server and closing the pool.
const DefaultTimeout = 10 * time.Second

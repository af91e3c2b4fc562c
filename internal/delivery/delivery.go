// Package delivery holds the inbound adapters of the service.
package delivery

import "context"

// Delivery is a long-running inbound server started by the composition root.
type Delivery interface {
	// Serve blocks until the server stops; a clean shutdown returns nil.
	Serve(ctx context.Context) error
}

// Package delivery defines the contract shared by all transport servers.
package delivery

import "context"

// Delivery is a long-running transport (HTTP server, worker loop) managed
// by the application lifecycle.
type Delivery interface {
	// Serve blocks until the transport stops or fails.
	Serve(ctx context.Context) error
}

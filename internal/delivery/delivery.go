// Package delivery holds the entry points that drive the auth engine.
package delivery

import "context"

// Delivery is a long-running entry point started by the binary.
type Delivery interface {
	// Serve blocks until the delivery stops. A clean stop returns nil.
	Serve(ctx context.Context) error
}

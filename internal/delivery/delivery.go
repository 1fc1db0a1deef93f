// Package delivery holds the transports that feed and serve the reading store.
package delivery

import "context"

// Delivery is a long-running transport started after the fx graph is built.
type Delivery interface {
	Serve(ctx context.Context) error
}

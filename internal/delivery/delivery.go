// Package delivery holds the inbound transports of the storefront.
package delivery

import "context"

// Delivery is a transport started by the application after dependency wiring.
type Delivery interface {
	Serve(ctx context.Context) error
}

// Package delivery defines the contract every transport (HTTP, worker, ...) fulfills.
package delivery

import "context"

// Delivery is a long-running transport that serves until the context ends
// or the fx lifecycle stops it.
type Delivery interface {
	Serve(ctx context.Context) error
}

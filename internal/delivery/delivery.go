// Package delivery defines the contract every transport implementation
// (HTTP, workers, ...) fulfils so the application entrypoint can run them
// uniformly.
package delivery

import "context"

// Delivery is a long-running transport that serves requests until the
// context is cancelled or an unrecoverable error occurs.
type Delivery interface {
	Serve(ctx context.Context) error
}

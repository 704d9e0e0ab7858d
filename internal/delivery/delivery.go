// Package delivery defines the contract every serving surface fulfils.
package delivery

import "context"

// Delivery is a long-running serving surface started by the application
// container. Serve blocks for servers and returns after startup for
// background workers; shutdown is handled through lifecycle hooks.
type Delivery interface {
	Serve(ctx context.Context) error
}

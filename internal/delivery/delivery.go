// Package delivery holds the servers that expose gatehouse to its callers.
package delivery

import "context"

// Delivery is a long-running server started by the application.
type Delivery interface {
	Serve(ctx context.Context) error
}

package service

import "context"

// Revalidator tells the frontend that cached pages for a resource are stale.
type Revalidator interface {
	Revalidate(ctx context.Context, evt ContentEvent) error
}

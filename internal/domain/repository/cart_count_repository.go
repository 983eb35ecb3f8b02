package repository

import "context"

// CartCountStore mirrors the derived cart item count into durable storage.
// It is a best-effort cache: implementations log and swallow every failure,
// and a remote fetch always overrides the loaded value.
type CartCountStore interface {
	// SaveCount writes the count. Failures are never returned.
	SaveCount(ctx context.Context, count int)

	// LoadCount reads the last written count, or 0 when absent or unreadable.
	LoadCount(ctx context.Context) int
}

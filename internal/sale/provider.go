package sale

import "context"

//go:generate mockgen -source=provider.go -destination=provider_mock.go -package=sale

// Provider hands out the current immutable snapshot. Implementations
// decide where the data lives (Postgres, CSV files, generated demo
// data); the engine never observes a partially-updated snapshot
// because a provider returns a fully assembled one per call.
type Provider interface {
	Snapshot(ctx context.Context) (*Snapshot, error)
}

// Static is a Provider over a fixed, preloaded snapshot.
type Static struct {
	Snap *Snapshot
}

func (s Static) Snapshot(context.Context) (*Snapshot, error) {
	return s.Snap, nil
}

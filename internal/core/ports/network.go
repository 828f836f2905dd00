package ports

import "context"

// Connectivity reports whether the network is reachable.
//
//go:generate mockgen -source=network.go -destination=mocks/mock_network.go -package=mocks
type Connectivity interface {
	IsOnline(ctx context.Context) bool
}

// Fetcher downloads a remote file to a local path.
type Fetcher interface {
	// Fetch downloads url into dest and marks it executable.
	// It reports whether dest was (re)written.
	Fetch(ctx context.Context, url, dest string) (bool, error)
}

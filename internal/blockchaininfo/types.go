package blockchaininfo

import (
	"time"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// Metrics records per-operation outcomes of the API client.
	Metrics interface {
		Observe(operation string, err error, started time.Time)
		ObserveRateLimited(operation string)
	}
)

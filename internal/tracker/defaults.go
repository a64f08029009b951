package tracker

import "time"

const (
	defaultInterval = 30 * time.Second
	countdownStep   = time.Second

	snapshotBatchSize     = 100
	snapshotFlushInterval = 10 * time.Second
	snapshotFlushRPS      = 10
)

package main

import (
	"time"

	"github.com/twquant/warroom/internal/dashboard"
)

// SnapshotMsg carries one symbol's refreshed snapshot.
type SnapshotMsg struct {
	Snapshot dashboard.Snapshot
}

// SnapshotErrorMsg reports a failed refresh for one symbol.
type SnapshotErrorMsg struct {
	Ticker string
	Err    error
}

// TickMsg triggers the periodic refresh cycle.
type TickMsg struct {
	At time.Time
}

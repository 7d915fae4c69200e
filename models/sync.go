package models

// SyncSession is the ephemeral state of one reconciliation pass. It is
// created at the start of a pass and discarded when the pass ends.
type SyncSession struct {
	// Token is the opaque session key issued outside this client.
	Token string

	// LocalMax is the highest version held locally when the pass started.
	// It is the lower, exclusive bound of the delta pull.
	LocalMax int64

	// ServerMax is the highest version the server returned during the pass.
	// Zero means no upper bound was learned yet.
	ServerMax int64
}

// Raise lifts ServerMax to v when v is greater.
func (s *SyncSession) Raise(v int64) {
	if v > s.ServerMax {
		s.ServerMax = v
	}
}

// Delta is one record snapshot returned by the delta pull.
type Delta struct {
	Founder Founder

	// Deleted is true when the snapshot carries the deleted sentinel.
	Deleted bool
}

// DeltaBatch is the decoded delta pull response. Entries keep the server
// order; Skipped counts entries that could not be decoded.
type DeltaBatch struct {
	Entries []Delta
	Skipped int
}

// SyncReport summarises one reconciliation pass.
type SyncReport struct {
	LocalMax  int64
	ServerMax int64

	Deleted int
	Created int
	Updated int
	Pulled  int

	// Failed counts records left flagged for retry in steps 2 to 4.
	Failed int
	// Skipped counts pulled entries that were malformed or failed to apply.
	Skipped int
	// PhotoFailures counts photo uploads and downloads that did not succeed.
	PhotoFailures int

	// Changed is true when the pull step applied at least one entry.
	Changed bool
}

// ChangeOp identifies the kind of store mutation in a [ChangeEvent].
type ChangeOp string

const (
	ChangeInsert ChangeOp = "insert"
	ChangeUpdate ChangeOp = "update"
	ChangeDelete ChangeOp = "delete"
)

// ChangeEvent is published by the record store after every committed
// mutation so that readers can refresh.
type ChangeEvent struct {
	Op ChangeOp
	ID string
}

// JobState is the lifecycle state of the background sync job.
type JobState int

const (
	JobIdle JobState = iota
	JobRunning
	JobStopped
)

func (s JobState) String() string {
	switch s {
	case JobIdle:
		return "idle"
	case JobRunning:
		return "running"
	case JobStopped:
		return "stopped"
	default:
		return "unknown"
	}
}

package task

import "github.com/google/uuid"

// NewBatchID returns a fresh identifier for one Pool.Run sweep, logged by
// the CLI layer alongside per-task progress so a run's lines can be
// grepped out of a shared log. Grounded on server/dao's use of
// google/uuid to identify individual domain entities (commands, sessions,
// users), here repurposed to identify one batch run.
func NewBatchID() string {
	return uuid.NewString()
}

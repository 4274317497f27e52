package tracker

import "errors"

// ErrOrderViolation is raised by Update in ordered-stream mode when a
// timestamp arrives older than the track's current last-update (§7).
var ErrOrderViolation = errors.New("tracker: update older than last-update in ordered mode")

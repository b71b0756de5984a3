package session

import "bitbucket.org/sotavant/chat-room-client/internal/models"

// DeltaResult is the outcome of one reconciliation cycle. Snapshot always
// replaces the caller's held state in full; New is the notification-worthy
// suffix only.
type DeltaResult struct {
	New      []models.Message
	Snapshot []models.Message
}

// Detect compares a freshly fetched snapshot against the previously known
// message count. The server returns full, append-ordered history, so the
// delta is exactly the suffix beyond previousCount. On first load
// (previousCount == 0) nothing is reported as new: the whole room is new to
// the view and notifying about all of it would be a storm. A snapshot that
// shrank (a delete happened between polls) yields no new messages; the
// replaced snapshot converges the view on its own.
func Detect(previousCount int, next []models.Message) DeltaResult {
	res := DeltaResult{Snapshot: next}

	if previousCount > 0 && len(next) > previousCount {
		res.New = next[previousCount:]
	}

	return res
}

package database

import (
	"hash/fnv"

	"github.com/google/uuid"
)

// UserLockKey derives the pg_advisory_xact_lock key that serializes
// budget and schedule read-modify-write sequences for one user. Envelope
// rollover and recurring materialization share this key, so they never
// interleave for the same user; different users proceed in parallel.
func UserLockKey(userID uuid.UUID) int64 {
	h := fnv.New64a()
	h.Write([]byte("user:"))
	h.Write(userID[:])

	return int64(h.Sum64())
}

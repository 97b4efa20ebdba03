package domain

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"time"
)

// EntityIDLength is the length of a content-derived entity id in hex chars.
const EntityIDLength = 32

// NewEntityID generates a content-derived id: a truncated SHA-256 of the
// logical key parts plus a nanosecond timestamp. Unlike sequential ids it
// leaks neither volume nor ordering to external observers, while remaining
// unique with overwhelming probability. Repositories treat a collision on
// insert as a fatal configuration error (see ErrIDCollision), never as
// something to retry silently.
func NewEntityID(kind string, parts ...string) string {
	elems := make([]string, 0, len(parts)+2)
	elems = append(elems, kind)
	elems = append(elems, parts...)
	elems = append(elems, time.Now().UTC().Format(time.RFC3339Nano))

	sum := sha256.Sum256([]byte(strings.Join(elems, ":")))
	return hex.EncodeToString(sum[:])[:EntityIDLength]
}

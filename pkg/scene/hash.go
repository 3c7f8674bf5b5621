package scene

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"github.com/google/uuid"
)

// ContentHash is a short, stable fingerprint of a node's kind, data, and
// children, used as the basis for its NodeID when the caller does not
// supply a deterministic name.
type ContentHash string

// NewContentHash derives a content hash from a node's kind and a
// caller-supplied summary of its data and child IDs. Two nodes with the
// same kind, summary, and children always hash the same, so identical
// scene fragments across separate builds share IDs.
func NewContentHash(kind NodeKind, summary string, children []NodeID) ContentHash {
	h := sha256.New()
	fmt.Fprintf(h, "%s|%s|%d", kind, summary, len(children))
	for _, c := range children {
		fmt.Fprintf(h, "|%s", c)
	}
	return ContentHash(hex.EncodeToString(h.Sum(nil))[:16])
}

// NewAnonymousID generates a NodeID for a node whose identity should not be
// derived from its content, such as a group, where two groups wrapping the
// same children shouldn't be merged just because they happen to match. It
// is seeded by a random UUID rather than content, so two anonymous nodes
// never collide even if everything else about them matches.
func NewAnonymousID(prefix string) NodeID {
	return NodeID(fmt.Sprintf("%s-%s", prefix, uuid.New().String()[:8]))
}

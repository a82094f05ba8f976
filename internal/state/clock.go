package state

import (
	"sync/atomic"

	"github.com/google/uuid"
)

var (
	siteID = uuid.NewString()
	seq    uint64
)

// SiteID identifies this process in shared snapshots.
func SiteID() string { return siteID }

// NextSeq returns a strictly increasing snapshot sequence number.
func NextSeq() uint64 {
	return atomic.AddUint64(&seq, 1)
}

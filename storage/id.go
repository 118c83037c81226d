package storage

import (
	"sync/atomic"
	"time"
)

// lastID is seeded from the clock so ids sort roughly by creation time, then
// incremented atomically so rapid successive creations cannot collide.
var lastID int64

func init() {
	lastID = time.Now().UnixMilli()
}

func NextID() int64 {
	return atomic.AddInt64(&lastID, 1)
}

// Package resource implements a memory budget shared by one or more vectors.
//
// A Controller tracks how many bytes its users have reserved and, when a
// hard limit is configured, refuses reservations that would exceed it:
//
//	rc := resource.NewController(resource.Config{
//	    MemoryLimitBytes: 64 << 20, // 64MB
//	})
//
//	if err := rc.AcquireMemory(4096); err != nil {
//	    // ErrMemoryLimitExceeded - nothing was reserved
//	}
//	defer rc.ReleaseMemory(4096)
//
// AcquireMemory never blocks. A refused reservation is how strvec models an
// allocation failure, so callers see a recoverable error instead of a crash.
//
// # Thread Safety
//
// All Controller methods are safe for concurrent use. Usage is tracked with
// atomic counters and the limit is enforced by a weighted semaphore.
//
// # Nil Safety
//
// All methods handle a nil Controller gracefully - they become no-ops.
// This allows optional limiting without nil checks everywhere.
package resource

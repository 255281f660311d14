// Package resource implements a memory budget shared by discovery runs.
//
// Pattern discovery holds a difference index that grows quadratically with
// the number of points. Callers reserve an estimate of that memory up front;
// if the budget would be exceeded the reservation fails immediately with
// ErrMemoryLimitExceeded instead of letting the process run out of memory.
//
//	rc := resource.NewController(resource.Config{
//	    MemoryLimitBytes: 1 << 30,
//	})
//
//	if err := rc.AcquireMemory(est); err != nil {
//	    return err // ErrMemoryLimitExceeded
//	}
//	defer rc.ReleaseMemory(est)
//
// # Thread Safety
//
// All Controller methods are safe for concurrent use.
//
// # Nil Safety
//
// All methods handle a nil Controller gracefully; they become no-ops.
package resource

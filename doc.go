// Package strvec provides a growable vector of owned strings.
//
// A Vector keeps its elements in one contiguous slot buffer and tracks the
// number of occupied slots (Len) separately from the number of allocated
// slots (Cap). Appends are amortized O(1); inserts and removals at an
// arbitrary index shift the tail and cost O(n).
//
// # Quick Start
//
//	v, _ := strvec.New()          // capacity 10
//	_ = v.Add("a")
//	_ = v.Add("c")
//	_ = v.Insert(1, "b")          // [a b c]
//	v.RemoveAllMatching("c")      // [a b]
//	fmt.Println(v.Get(1))         // b
//
// # Growth
//
// When an append finds the buffer full the capacity becomes 2*cap+1
// (see GrowCapacity), so a vector created with capacity 0 grows to 1, 3, 7,
// 15 and so on. SetCapacity, EnsureCapacity and TrimCapacity resize
// explicitly. SetCapacity below Len() drops the trailing elements.
//
// # Ownership
//
// Every value stored by Set, Add, Insert or the bulk operations is copied
// (strings.Clone), so a vector never shares storage with its callers or with
// another vector. Close releases everything a vector holds.
//
// # Errors
//
// Index and range misuse is a programming error and panics with
// *ErrIndexOutOfRange, *ErrInvalidRange or *ErrInvalidCapacity.
//
// Allocation failure is an ordinary error. Attach a memory budget with
// WithMemoryController and every operation that allocates returns an error
// matching ErrAllocation (and resource.ErrMemoryLimitExceeded) once the
// budget is exhausted:
//
//	rc := resource.NewController(resource.Config{MemoryLimitBytes: 4096})
//	v, _ := strvec.New(strvec.WithMemoryController(rc))
//	if err := v.Add(big); errors.Is(err, strvec.ErrAllocation) {
//	    // v is unchanged
//	}
//
// # Concurrency
//
// A Vector is not safe for concurrent use. Share one between goroutines only
// behind a lock. A resource.Controller may be shared freely.
package strvec

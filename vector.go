package strvec

import (
	"math"
	"strings"
	"unsafe"

	"github.com/hupe1980/strvec/resource"
)

const (
	// DefaultCapacity is the capacity of a vector created with New.
	DefaultCapacity = 10

	// NotFound is returned by IndexOf and LastIndexOf when no element matches.
	NotFound = -1

	// SlotSize is the number of bytes reserved per slot of backing storage.
	SlotSize = int64(unsafe.Sizeof(""))

	// maxSlots is the largest capacity whose slot bytes fit in an int64.
	maxSlots = math.MaxInt64 / SlotSize
)

// Vector is a growable, ordered sequence of owned strings.
//
// Slots [0, Len()) hold copies of the values that were stored; slots
// [Len(), Cap()) are free. Indices handed to Get, Set, Insert, InsertAll and
// RemoveAt are checked and an out-of-range index panics with
// *ErrIndexOutOfRange. Operations that allocate return an error wrapping
// ErrAllocation when the configured memory controller refuses the allocation.
//
// A Vector is not safe for concurrent use. Guard a shared vector with a lock.
type Vector struct {
	slots    []string
	length   int
	reserved int64
	opts     options
}

// GrowCapacity returns the capacity automatic growth moves to from current.
// The +1 makes a zero-capacity vector grow on its first append.
func GrowCapacity(current int) int {
	return 2*current + 1
}

// New creates an empty vector with DefaultCapacity slots.
func New(optFns ...Option) (*Vector, error) {
	return NewCapacity(DefaultCapacity, optFns...)
}

// NewCapacity creates an empty vector with the given number of slots.
// A negative capacity panics with *ErrInvalidCapacity; zero is allowed.
func NewCapacity(capacity int, optFns ...Option) (*Vector, error) {
	return newVector("NewCapacity", capacity, applyOptions(optFns))
}

func newVector(op string, capacity int, o options) (*Vector, error) {
	if capacity < 0 {
		panic(&ErrInvalidCapacity{Capacity: capacity})
	}

	v := &Vector{opts: o}
	if int64(capacity) > maxSlots {
		return nil, v.refuse(op, math.MaxInt64, resource.ErrMemoryLimitExceeded)
	}
	if err := v.reserve(op, int64(capacity)*SlotSize); err != nil {
		return nil, err
	}
	v.slots = make([]string, capacity)

	return v, nil
}

// Clone returns a vector holding copies of every element, sized to fit exactly.
// The clone shares the options (controller, logger, metrics) of v.
func (v *Vector) Clone() (*Vector, error) {
	if v.length == 0 {
		return newVector("Clone", 0, v.opts)
	}
	return v.Sublist(0, v.length)
}

// Sublist returns a vector holding copies of the elements in [from, to).
// The range must satisfy 0 <= from < to <= Len(); otherwise Sublist panics
// with *ErrInvalidRange. The result has capacity to-from.
func (v *Vector) Sublist(from, to int) (*Vector, error) {
	if from < 0 || to > v.length || from >= to {
		panic(&ErrInvalidRange{From: from, To: to, Length: v.length})
	}

	out, err := newVector("Sublist", to-from, v.opts)
	if err != nil {
		return nil, err
	}
	for i := from; i < to; i++ {
		if err := out.Set(out.length, v.slots[i]); err != nil {
			_ = out.Close()
			return nil, err
		}
	}

	return out, nil
}

// Len returns the number of elements.
func (v *Vector) Len() int {
	return v.length
}

// Cap returns the number of allocated slots.
func (v *Vector) Cap() int {
	return len(v.slots)
}

// IsEmpty reports whether the vector holds no elements.
func (v *Vector) IsEmpty() bool {
	return v.length == 0
}

// MemoryUsage returns the bytes this vector has reserved: its slots plus the
// content of every element.
func (v *Vector) MemoryUsage() int64 {
	return v.reserved
}

// SetCapacity resizes the backing storage to exactly n slots.
//
// When n < Len() this is a destructive shrink: the elements at [n, Len()) are
// released and the length becomes n. Shrinking never fails. Growing may fail
// with ErrAllocation, in which case the vector is left unchanged.
// A negative n panics with *ErrInvalidCapacity.
func (v *Vector) SetCapacity(n int) error {
	if n < 0 {
		panic(&ErrInvalidCapacity{Capacity: n})
	}
	return v.resize("SetCapacity", n)
}

// EnsureCapacity grows the backing storage to minCapacity slots if it is smaller.
// It never shrinks.
func (v *Vector) EnsureCapacity(minCapacity int) error {
	return v.ensure("EnsureCapacity", minCapacity)
}

// TrimCapacity shrinks the backing storage to the current length.
func (v *Vector) TrimCapacity() error {
	return v.resize("TrimCapacity", v.length)
}

// Get returns the element at index i.
func (v *Vector) Get(i int) string {
	v.checkIndex("Get", i)
	return v.slots[i]
}

// Set stores a copy of value at index i, releasing the element it replaces.
//
// Set with i == Len() appends: the storage grows if it is full and the length
// increases by one. Any other index outside [0, Len()) panics. If the copy
// cannot be allocated the element at i is left in place; an automatic growth
// that already happened is kept.
func (v *Vector) Set(i int, value string) error {
	if i < 0 || i > v.length {
		panic(&ErrIndexOutOfRange{Op: "Set", Index: i, Length: v.length})
	}

	if i == v.length {
		if v.length == len(v.slots) {
			if err := v.grow("Set"); err != nil {
				return err
			}
		}
		if err := v.reserve("Set", int64(len(value))); err != nil {
			return err
		}
		v.slots[i] = strings.Clone(value)
		v.length++
		v.opts.metricsCollector.RecordInsert(1)
		return nil
	}

	if err := v.reserve("Set", int64(len(value))); err != nil {
		return err
	}
	v.release(int64(len(v.slots[i])))
	v.slots[i] = strings.Clone(value)

	return nil
}

// Add appends a copy of value. It is Set(Len(), value).
func (v *Vector) Add(value string) error {
	return v.Set(v.length, value)
}

// AddAll appends copies of every element of source, in order.
//
// If an allocation fails part way, the elements appended so far stay in v
// and the error is returned. v.AddAll(v) appends the original elements once.
func (v *Vector) AddAll(source *Vector) error {
	n := source.length
	for i := 0; i < n; i++ {
		if err := v.Set(v.length, source.slots[i]); err != nil {
			return err
		}
	}
	return nil
}

// Insert places a copy of value at index i, shifting [i, Len()) one slot to
// the right. i must be in [0, Len()); use Add to append.
// On error no element has moved.
func (v *Vector) Insert(i int, value string) error {
	v.checkIndex("Insert", i)

	if v.length == len(v.slots) {
		if err := v.grow("Insert"); err != nil {
			return err
		}
	}
	if err := v.reserve("Insert", int64(len(value))); err != nil {
		return err
	}

	// copy handles the overlap like a backward element-by-element move.
	copy(v.slots[i+1:v.length+1], v.slots[i:v.length])
	v.slots[i] = strings.Clone(value)
	v.length++
	v.opts.metricsCollector.RecordInsert(1)

	return nil
}

// InsertAll splices copies of every element of source into v at index i.
// The elements of source keep their order, as do the elements of v on
// either side of i. i must be in [0, Len()).
//
// Capacity for Len()+source.Len() elements is ensured before anything moves,
// and the content of all copies is reserved at once, so on error no element
// has moved. A capacity increase made before the failure is kept.
func (v *Vector) InsertAll(i int, source *Vector) error {
	v.checkIndex("InsertAll", i)

	n := source.length
	if n == 0 {
		return nil
	}
	if err := v.ensure("InsertAll", v.length+n); err != nil {
		return err
	}

	// Snapshot before shifting: source may be v itself.
	values := make([]string, n)
	copy(values, source.slots[:n])

	var bytes int64
	for _, s := range values {
		bytes += int64(len(s))
	}
	if err := v.reserve("InsertAll", bytes); err != nil {
		return err
	}

	copy(v.slots[i+n:v.length+n], v.slots[i:v.length])
	for j, s := range values {
		v.slots[i+j] = strings.Clone(s)
	}
	v.length += n
	v.opts.metricsCollector.RecordInsert(n)

	return nil
}

func (v *Vector) checkIndex(op string, i int) {
	if i < 0 || i >= v.length {
		panic(&ErrIndexOutOfRange{Op: op, Index: i, Length: v.length})
	}
}

func (v *Vector) grow(op string) error {
	return v.resize(op, GrowCapacity(len(v.slots)))
}

func (v *Vector) ensure(op string, minCapacity int) error {
	if minCapacity <= len(v.slots) {
		return nil
	}
	return v.resize(op, minCapacity)
}

// resize truncates first, then reallocates. Only growth reserves memory, so
// a failure leaves the vector untouched.
func (v *Vector) resize(op string, n int) error {
	old := len(v.slots)

	dropped := 0
	if n < v.length {
		dropped = v.length - n
		v.releaseValues(n, v.length)
		v.length = n
	}
	if n == old {
		return nil
	}
	if n > old {
		if int64(n) > maxSlots {
			return v.refuse(op, math.MaxInt64, resource.ErrMemoryLimitExceeded)
		}
		if err := v.reserve(op, int64(n-old)*SlotSize); err != nil {
			return err
		}
	}

	slots := make([]string, n)
	copy(slots, v.slots[:v.length])
	v.slots = slots

	if n > old {
		v.opts.logger.LogGrow(old, n, v.length)
		v.opts.metricsCollector.RecordGrow(old, n)
	} else {
		v.release(int64(old-n) * SlotSize)
		v.opts.logger.LogShrink(old, n, dropped)
		v.opts.metricsCollector.RecordShrink(old, n, dropped)
		if dropped > 0 {
			v.opts.metricsCollector.RecordRemove(dropped)
		}
	}

	return nil
}

func (v *Vector) reserve(op string, bytes int64) error {
	if bytes <= 0 {
		return nil
	}
	if err := v.opts.controller.AcquireMemory(bytes); err != nil {
		return v.refuse(op, bytes, err)
	}
	v.reserved += bytes
	return nil
}

func (v *Vector) refuse(op string, bytes int64, err error) error {
	v.opts.logger.LogAllocationFailure(op, bytes, err)
	v.opts.metricsCollector.RecordAllocationFailure(bytes)
	return allocationError(op, bytes, err)
}

func (v *Vector) release(bytes int64) {
	if bytes <= 0 {
		return
	}
	v.opts.controller.ReleaseMemory(bytes)
	v.reserved -= bytes
}

// releaseValues drops the elements in [from, to) without moving the others.
func (v *Vector) releaseValues(from, to int) {
	var bytes int64
	for i := from; i < to; i++ {
		bytes += int64(len(v.slots[i]))
		v.slots[i] = ""
	}
	v.release(bytes)
}

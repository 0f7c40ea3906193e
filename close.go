package strvec

import (
	"fmt"
	"io"
)

// Close releases every element and the backing storage, returning the
// reserved memory to the controller. The vector is left empty with capacity 0
// and remains usable.
func (v *Vector) Close() error {
	if v == nil {
		return nil
	}

	released := v.length
	bytes := v.reserved

	clear(v.slots)
	v.slots = nil
	v.length = 0
	v.release(v.reserved)

	v.opts.logger.LogClose(released, bytes)
	return nil
}

// Dump writes a human-readable listing of v to w:
//
//	vector (2/10) elements:
//	element[0] = 'a'
//	element[1] = 'b'
//
// The listing is meant for debugging; there is no parser for it.
func (v *Vector) Dump(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "vector (%d/%d) elements:\n", v.length, len(v.slots)); err != nil {
		return err
	}
	for i := 0; i < v.length; i++ {
		if _, err := fmt.Fprintf(w, "element[%d] = '%s'\n", i, v.slots[i]); err != nil {
			return err
		}
	}
	return nil
}

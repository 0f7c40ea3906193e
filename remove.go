package strvec

// RemoveAt releases the element at index i and shifts [i+1, Len()) one slot
// to the left.
func (v *Vector) RemoveAt(i int) {
	v.checkIndex("RemoveAt", i)

	v.release(int64(len(v.slots[i])))
	copy(v.slots[i:v.length-1], v.slots[i+1:v.length])
	v.length--
	v.slots[v.length] = ""
	v.opts.metricsCollector.RecordRemove(1)
}

// RemoveFirst removes the first element equal to value.
// It reports whether an element was removed.
func (v *Vector) RemoveFirst(value string) bool {
	i := v.IndexOf(value)
	if i == NotFound {
		return false
	}
	v.RemoveAt(i)
	return true
}

// RemoveAllMatching removes every element equal to value and returns how
// many were removed.
func (v *Vector) RemoveAllMatching(value string) int {
	return v.RemoveWhere(func(s string) bool { return s == value })
}

// RemoveAllOf removes every occurrence of every value held by other and
// returns how many elements were removed. other may be v itself.
func (v *Vector) RemoveAllOf(other *Vector) int {
	if other.length == 0 {
		return 0
	}
	drop := make(map[string]struct{}, other.length)
	for i := 0; i < other.length; i++ {
		drop[other.slots[i]] = struct{}{}
	}
	return v.compact(func(_ int, s string) bool {
		_, ok := drop[s]
		return !ok
	})
}

// RemoveWhere removes every element for which pred holds and returns how many
// were removed. pred is called once per element, front to back.
func (v *Vector) RemoveWhere(pred func(string) bool) int {
	return v.compact(func(_ int, s string) bool { return !pred(s) })
}

// RemoveIndices removes the elements at the indices held by set.
// Indices at or beyond Len() are ignored.
func (v *Vector) RemoveIndices(set *IndexSet) int {
	if set.IsEmpty() {
		return 0
	}
	return v.compact(func(i int, _ string) bool { return !set.Contains(i) })
}

// Clear releases every element. The capacity is kept.
func (v *Vector) Clear() {
	n := v.length
	if n == 0 {
		return
	}
	v.releaseValues(0, n)
	v.length = 0
	v.opts.metricsCollector.RecordRemove(n)
}

// compact keeps the elements for which keep holds, preserving their order,
// in a single forward pass. If keep panics, the elements it has not yet
// judged are kept and the vector stays consistent.
func (v *Vector) compact(keep func(i int, s string) bool) int {
	w, r := 0, 0
	var freed int64

	finish := func() int {
		end := w + copy(v.slots[w:], v.slots[r:v.length])
		removed := v.length - end
		if removed == 0 {
			return 0
		}
		clear(v.slots[end:v.length])
		v.length = end
		v.release(freed)
		v.opts.metricsCollector.RecordRemove(removed)
		return removed
	}

	done := false
	defer func() {
		if !done {
			finish()
		}
	}()

	for ; r < v.length; r++ {
		s := v.slots[r]
		if keep(r, s) {
			v.slots[w] = s
			w++
			continue
		}
		freed += int64(len(s))
	}
	done = true

	return finish()
}

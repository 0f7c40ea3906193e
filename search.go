package strvec

// IndexOf returns the index of the first element equal to value, or NotFound.
func (v *Vector) IndexOf(value string) int {
	for i := 0; i < v.length; i++ {
		if v.slots[i] == value {
			return i
		}
	}
	return NotFound
}

// LastIndexOf returns the index of the last element equal to value, or NotFound.
func (v *Vector) LastIndexOf(value string) int {
	for i := v.length - 1; i >= 0; i-- {
		if v.slots[i] == value {
			return i
		}
	}
	return NotFound
}

// Contains reports whether some element equals value.
func (v *Vector) Contains(value string) bool {
	return v.IndexOf(value) != NotFound
}

// ContainsAll reports whether every element of required occurs in v.
// A value repeated in required needs to occur only once in v.
func (v *Vector) ContainsAll(required *Vector) bool {
	for i := 0; i < required.length; i++ {
		if !v.Contains(required.slots[i]) {
			return false
		}
	}
	return true
}

// Equal reports whether v and other hold the same elements in the same order.
// Capacity is not compared.
func (v *Vector) Equal(other *Vector) bool {
	if v.length != other.length {
		return false
	}
	for i := 0; i < v.length; i++ {
		if v.slots[i] != other.slots[i] {
			return false
		}
	}
	return true
}

// IndicesOf returns the index of every element equal to value.
func (v *Vector) IndicesOf(value string) *IndexSet {
	return v.IndicesWhere(func(s string) bool { return s == value })
}

// IndicesWhere returns the index of every element for which pred holds.
func (v *Vector) IndicesWhere(pred func(string) bool) *IndexSet {
	set := NewIndexSet()
	for i := 0; i < v.length; i++ {
		if pred(v.slots[i]) {
			set.Add(i)
		}
	}
	return set
}

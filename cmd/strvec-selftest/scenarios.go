package main

import (
	"github.com/hupe1980/strvec"
)

type scenario struct {
	name string
	fn   func(s *session) (bool, error)
}

func (sc scenario) run(opts []strvec.Option) (bool, error) {
	s := &session{opts: opts}
	defer s.close()
	return sc.fn(s)
}

// session creates vectors with the harness options and closes them all
// when the scenario ends.
type session struct {
	opts    []strvec.Option
	vectors []*strvec.Vector
}

func (s *session) track(v *strvec.Vector, err error) (*strvec.Vector, error) {
	if err != nil {
		return nil, err
	}
	s.vectors = append(s.vectors, v)
	return v, nil
}

func (s *session) newDefault() (*strvec.Vector, error) {
	return s.track(strvec.New(s.opts...))
}

func (s *session) newCapacity(capacity int) (*strvec.Vector, error) {
	return s.track(strvec.NewCapacity(capacity, s.opts...))
}

// of returns a vector holding values with capacity len(values).
func (s *session) of(values ...string) (*strvec.Vector, error) {
	v, err := s.newCapacity(len(values))
	if err != nil {
		return nil, err
	}
	for _, value := range values {
		if err := v.Add(value); err != nil {
			return nil, err
		}
	}
	return v, nil
}

func (s *session) close() {
	for _, v := range s.vectors {
		_ = v.Close()
	}
	s.vectors = nil
}

var scenarios = []scenario{
	{"new", func(s *session) (bool, error) {
		v, err := s.newDefault()
		if err != nil {
			return false, err
		}
		return v.Cap() == strvec.DefaultCapacity && v.Len() == 0, nil
	}},
	{"new_capacity", func(s *session) (bool, error) {
		v, err := s.newCapacity(67)
		if err != nil {
			return false, err
		}
		return v.Cap() == 67, nil
	}},
	{"contains", func(s *session) (bool, error) {
		v, err := s.of("123")
		if err != nil {
			return false, err
		}
		return v.Contains("123") && !v.Contains("234"), nil
	}},
	{"add", func(s *session) (bool, error) {
		v, err := s.newCapacity(1)
		if err != nil {
			return false, err
		}
		if err := v.Add("123"); err != nil {
			return false, err
		}
		return v.Contains("123"), nil
	}},
	{"equals", func(s *session) (bool, error) {
		a, err := s.of("1", "2", "3")
		if err != nil {
			return false, err
		}
		b, err := s.of("1", "2", "3")
		if err != nil {
			return false, err
		}
		c, err := s.of("1", "2", "4")
		if err != nil {
			return false, err
		}
		return a.Equal(b) && !a.Equal(c), nil
	}},
	{"clone", func(s *session) (bool, error) {
		v, err := s.of("a", "b", "c")
		if err != nil {
			return false, err
		}
		c, err := s.track(v.Clone())
		if err != nil {
			return false, err
		}
		if err := c.Set(0, "z"); err != nil {
			return false, err
		}
		return v.Get(0) == "a" && c.Get(0) == "z" && c.Cap() == 3, nil
	}},
	{"get", func(s *session) (bool, error) {
		v, err := s.of("a", "b", "c")
		if err != nil {
			return false, err
		}
		return v.Get(0) == "a" && v.Get(2) == "c", nil
	}},
	{"set", func(s *session) (bool, error) {
		v, err := s.of("a", "b")
		if err != nil {
			return false, err
		}
		if err := v.Set(1, "x"); err != nil {
			return false, err
		}
		if err := v.Set(2, "y"); err != nil {
			return false, err
		}
		want, err := s.of("a", "x", "y")
		if err != nil {
			return false, err
		}
		return v.Equal(want), nil
	}},
	{"index_of", func(s *session) (bool, error) {
		v, err := s.of("a", "b", "a")
		if err != nil {
			return false, err
		}
		return v.IndexOf("a") == 0 && v.IndexOf("b") == 1 && v.IndexOf("z") == strvec.NotFound, nil
	}},
	{"last_index_of", func(s *session) (bool, error) {
		v, err := s.of("a", "b", "a")
		if err != nil {
			return false, err
		}
		return v.LastIndexOf("a") == 2 && v.LastIndexOf("z") == strvec.NotFound, nil
	}},
	{"set_capacity", func(s *session) (bool, error) {
		v, err := s.of("a", "b", "c", "d", "e")
		if err != nil {
			return false, err
		}
		if err := v.SetCapacity(2); err != nil {
			return false, err
		}
		want, err := s.of("a", "b")
		if err != nil {
			return false, err
		}
		return v.Cap() == 2 && v.Equal(want), nil
	}},
	{"ensure_capacity", func(s *session) (bool, error) {
		v, err := s.newCapacity(4)
		if err != nil {
			return false, err
		}
		if err := v.EnsureCapacity(2); err != nil {
			return false, err
		}
		if v.Cap() != 4 {
			return false, nil
		}
		if err := v.EnsureCapacity(12); err != nil {
			return false, err
		}
		return v.Cap() == 12, nil
	}},
	{"trim_capacity", func(s *session) (bool, error) {
		v, err := s.newCapacity(5)
		if err != nil {
			return false, err
		}
		for i := 0; i < 50; i++ {
			if err := v.Add("e"); err != nil {
				return false, err
			}
		}
		if err := v.TrimCapacity(); err != nil {
			return false, err
		}
		return v.Cap() == 50 && v.Len() == 50, nil
	}},
	{"is_empty", func(s *session) (bool, error) {
		v, err := s.newDefault()
		if err != nil {
			return false, err
		}
		if !v.IsEmpty() {
			return false, nil
		}
		if err := v.Add("a"); err != nil {
			return false, err
		}
		return !v.IsEmpty(), nil
	}},
	{"add_all", func(s *session) (bool, error) {
		a, err := s.of("a", "b")
		if err != nil {
			return false, err
		}
		b, err := s.of("c", "d")
		if err != nil {
			return false, err
		}
		if err := a.AddAll(b); err != nil {
			return false, err
		}
		want, err := s.of("a", "b", "c", "d")
		if err != nil {
			return false, err
		}
		return a.Equal(want), nil
	}},
	{"insert", func(s *session) (bool, error) {
		v, err := s.of("a", "b", "c")
		if err != nil {
			return false, err
		}
		if err := v.Insert(1, "0"); err != nil {
			return false, err
		}
		want, err := s.of("a", "0", "b", "c")
		if err != nil {
			return false, err
		}
		return v.Equal(want), nil
	}},
	{"insert_all", func(s *session) (bool, error) {
		a, err := s.of("a", "b", "c")
		if err != nil {
			return false, err
		}
		b, err := s.of("1", "2", "3")
		if err != nil {
			return false, err
		}
		if err := a.InsertAll(0, b); err != nil {
			return false, err
		}
		want, err := s.of("1", "2", "3", "a", "b", "c")
		if err != nil {
			return false, err
		}
		return a.Equal(want), nil
	}},
	{"remove", func(s *session) (bool, error) {
		v, err := s.of("a", "b", "b", "d", "e")
		if err != nil {
			return false, err
		}
		v.RemoveAt(3)
		want, err := s.of("a", "b", "b", "e")
		if err != nil {
			return false, err
		}
		return v.Equal(want), nil
	}},
	{"remove_first", func(s *session) (bool, error) {
		v, err := s.of("a", "b", "a")
		if err != nil {
			return false, err
		}
		v.RemoveFirst("a")
		want, err := s.of("b", "a")
		if err != nil {
			return false, err
		}
		return v.Equal(want), nil
	}},
	{"remove_all_matching", func(s *session) (bool, error) {
		v, err := s.of("a", "b", "b", "e", "b")
		if err != nil {
			return false, err
		}
		v.RemoveAllMatching("b")
		want, err := s.of("a", "e")
		if err != nil {
			return false, err
		}
		return v.Equal(want), nil
	}},
	{"remove_where", func(s *session) (bool, error) {
		v, err := s.of("a", "bb", "ccc", "d")
		if err != nil {
			return false, err
		}
		v.RemoveWhere(func(value string) bool { return len(value) > 1 })
		want, err := s.of("a", "d")
		if err != nil {
			return false, err
		}
		return v.Equal(want), nil
	}},
	{"remove_all_of", func(s *session) (bool, error) {
		v, err := s.of("a", "b", "c", "a", "d")
		if err != nil {
			return false, err
		}
		drop, err := s.of("a", "d")
		if err != nil {
			return false, err
		}
		v.RemoveAllOf(drop)
		want, err := s.of("b", "c")
		if err != nil {
			return false, err
		}
		return v.Equal(want), nil
	}},
	{"clear", func(s *session) (bool, error) {
		v, err := s.of("a", "b", "c")
		if err != nil {
			return false, err
		}
		v.Clear()
		return v.IsEmpty() && v.Cap() == 3, nil
	}},
	{"contains_all", func(s *session) (bool, error) {
		v, err := s.of("a", "b", "c")
		if err != nil {
			return false, err
		}
		yes, err := s.of("c", "a", "a")
		if err != nil {
			return false, err
		}
		no, err := s.of("a", "z")
		if err != nil {
			return false, err
		}
		return v.ContainsAll(yes) && !v.ContainsAll(no), nil
	}},
	{"sublist", func(s *session) (bool, error) {
		v, err := s.of("a", "b", "c", "d")
		if err != nil {
			return false, err
		}
		sub, err := s.track(v.Sublist(1, 3))
		if err != nil {
			return false, err
		}
		want, err := s.of("b", "c")
		if err != nil {
			return false, err
		}
		return sub.Equal(want) && sub.Cap() == 2, nil
	}},
}

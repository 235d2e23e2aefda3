package workflow

// BookSet is an insertion-ordered set of book ids.
type BookSet struct {
	ids []int
}

// Add reports whether id was not already present.
func (s *BookSet) Add(id int) bool {
	if s.Has(id) {
		return false
	}
	s.ids = append(s.ids, id)
	return true
}

// Remove reports whether id was present.
func (s *BookSet) Remove(id int) bool {
	for i, v := range s.ids {
		if v == id {
			s.ids = append(s.ids[:i], s.ids[i+1:]...)
			return true
		}
	}
	return false
}

func (s *BookSet) Has(id int) bool {
	for _, v := range s.ids {
		if v == id {
			return true
		}
	}
	return false
}

func (s *BookSet) Len() int {
	return len(s.ids)
}

// IDs returns a copy, never nil.
func (s *BookSet) IDs() []int {
	out := make([]int, len(s.ids))
	copy(out, s.ids)
	return out
}

func (s *BookSet) Clear() {
	s.ids = nil
}

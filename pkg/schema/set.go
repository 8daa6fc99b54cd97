package schema

// Set is an ordered collection of units keyed by id.
// Iteration order is insertion order, which keeps generation runs stable.
type Set struct {
	index map[string]int
	units []Unit
}

// NewSet builds a set from the given units.
// A unit whose id is already present replaces the earlier one in place.
func NewSet(units ...Unit) *Set {
	s := &Set{index: make(map[string]int, len(units))}
	for _, u := range units {
		s.Add(u)
	}
	return s
}

// Add inserts or replaces a unit.
// Units without an id are keyed by their qualified name.
func (s *Set) Add(u Unit) {
	if s.index == nil {
		s.index = make(map[string]int)
	}
	if u.ID == "" {
		u.ID = u.QualifiedName()
	}
	if i, ok := s.index[u.ID]; ok {
		s.units[i] = u
		return
	}
	s.index[u.ID] = len(s.units)
	s.units = append(s.units, u)
}

// Get returns the unit with the given id.
func (s *Set) Get(id string) (Unit, bool) {
	if s == nil {
		return Unit{}, false
	}
	i, ok := s.index[id]
	if !ok {
		return Unit{}, false
	}
	return s.units[i], true
}

// Len returns the number of units.
func (s *Set) Len() int {
	if s == nil {
		return 0
	}
	return len(s.units)
}

// Units returns a copy of all units in insertion order.
func (s *Set) Units() []Unit {
	if s == nil {
		return nil
	}
	out := make([]Unit, len(s.units))
	copy(out, s.units)
	return out
}

// Unassigned returns the units flagged as not bound to a specific file.
func (s *Set) Unassigned() []Unit {
	return s.Filter(func(u Unit) bool { return u.Unassigned })
}

// Filter returns the units accepted by keep, in insertion order.
func (s *Set) Filter(keep func(Unit) bool) []Unit {
	if s == nil {
		return nil
	}
	var out []Unit
	for _, u := range s.units {
		if keep == nil || keep(u) {
			out = append(out, u)
		}
	}
	return out
}

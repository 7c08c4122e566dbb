package form

import "strings"

// PeopleSet is the ordered list of people tagged in a photo. Entries are unique by
// exact string; insertion order is kept.
type PeopleSet struct {
	names []string
}

// Add appends name after trimming; blanks and duplicates are ignored.
// Reports whether the set changed.
func (s *PeopleSet) Add(name string) bool {
	name = strings.TrimSpace(name)
	if name == "" || s.Contains(name) {
		return false
	}
	s.names = append(s.names, name)
	return true
}

// Remove drops name (exact match). Reports whether the set changed.
func (s *PeopleSet) Remove(name string) bool {
	for i, n := range s.names {
		if n == name {
			s.names = append(s.names[:i], s.names[i+1:]...)
			return true
		}
	}
	return false
}

// Contains reports whether name is tagged
func (s *PeopleSet) Contains(name string) bool {
	for _, n := range s.names {
		if n == name {
			return true
		}
	}
	return false
}

// Names returns a copy of the tagged names
func (s *PeopleSet) Names() []string {
	return append([]string{}, s.names...)
}

// Reset clears the set
func (s *PeopleSet) Reset() {
	s.names = nil
}

package level

import (
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrUnknownLevel is returned when a log_levels entry is neither a
// severity nor one of the all/off sentinels.
var ErrUnknownLevel = errors.New("unknown log level")

// Set is the typed form of the log_levels option.
type Set struct {
	All    bool
	Off    bool
	levels map[Level]struct{}
}

// NewSet returns a set enabling exactly the given severities.
// Invalid values are ignored.
func NewSet(levels ...Level) *Set {
	s := &Set{levels: make(map[Level]struct{}, len(levels))}
	for _, l := range levels {
		if l.Valid() {
			s.levels[l] = struct{}{}
		}
	}
	return s
}

// AllLevels returns a set with the all sentinel.
func AllLevels() *Set {
	return &Set{All: true}
}

// OffLevels returns a set with the off sentinel.
func OffLevels() *Set {
	return &Set{Off: true}
}

// ParseSet builds a set from names such as "error", "ALL" or "off".
func ParseSet(entries ...string) (*Set, error) {
	s := NewSet()
	for _, e := range entries {
		if err := s.add(e); err != nil {
			return nil, err
		}
	}
	return s, nil
}

func (s *Set) add(entry string) error {
	name := strings.ToLower(strings.TrimSpace(entry))
	switch name {
	case "":
	case AllName:
		s.All = true
	case OffName:
		s.Off = true
	default:
		l, ok := Parse(name)
		if !ok {
			return fmt.Errorf("%w: %q", ErrUnknownLevel, entry)
		}
		if s.levels == nil {
			s.levels = make(map[Level]struct{})
		}
		s.levels[l] = struct{}{}
	}
	return nil
}

// Enabled reports whether records at l pass the filter. A nil set and a
// set carrying the off sentinel enable nothing.
func (s *Set) Enabled(l Level) bool {
	if s == nil || s.Off {
		return false
	}
	if s.All {
		return true
	}
	_, ok := s.levels[l]
	return ok
}

// Has reports whether l was named explicitly, ignoring the sentinels.
func (s *Set) Has(l Level) bool {
	if s == nil {
		return false
	}
	_, ok := s.levels[l]
	return ok
}

// Clone returns an independent copy of s.
func (s *Set) Clone() *Set {
	if s == nil {
		return nil
	}
	c := &Set{All: s.All, Off: s.Off, levels: make(map[Level]struct{}, len(s.levels))}
	for l := range s.levels {
		c.levels[l] = struct{}{}
	}
	return c
}

// Names returns the entries of s in canonical order: off, all, then
// severities from most to least severe.
func (s *Set) Names() []string {
	if s == nil {
		return nil
	}
	var out []string
	if s.Off {
		out = append(out, OffName)
	}
	if s.All {
		out = append(out, AllName)
	}
	for _, l := range All() {
		if s.Has(l) {
			out = append(out, l.String())
		}
	}
	return out
}

// String joins Names with commas.
func (s *Set) String() string {
	return strings.Join(s.Names(), ",")
}

// UnmarshalText decodes a comma-separated list, e.g. "error,critical".
func (s *Set) UnmarshalText(text []byte) error {
	parsed, err := ParseSet(strings.Split(string(text), ",")...)
	if err != nil {
		return err
	}
	*s = *parsed
	return nil
}

// MarshalText encodes s as a comma-separated list.
func (s *Set) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalYAML accepts either a sequence of names or a single scalar
// holding a comma-separated list.
func (s *Set) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.SequenceNode:
		var entries []string
		if err := node.Decode(&entries); err != nil {
			return err
		}
		parsed, err := ParseSet(entries...)
		if err != nil {
			return err
		}
		*s = *parsed
		return nil
	case yaml.ScalarNode:
		return s.UnmarshalText([]byte(node.Value))
	default:
		return fmt.Errorf("log_levels: expected a list or a string, got yaml kind %d", node.Kind)
	}
}

// MarshalYAML encodes s as a sequence of names.
func (s *Set) MarshalYAML() (interface{}, error) {
	return s.Names(), nil
}

package tree

import (
	"strings"

	"github.com/pkg/errors"
)

// Selector is the two-part class selector used by the searches: a class
// required on the parent (or some ancestor) and a class required on the
// target itself.
type Selector struct {
	Ancestor string
	Target   string
}

// NewSelector builds a Selector from an [ancestorClass, targetClass] pair.
func NewSelector(parts []string) (Selector, error) {
	if len(parts) != 2 {
		return Selector{}, errors.Wrapf(ErrInvalidSelector, "want 2 classes, got %d", len(parts))
	}
	if parts[0] == "" || parts[1] == "" {
		return Selector{}, errors.Wrapf(ErrInvalidSelector, "empty class in %q", parts)
	}
	return Selector{Ancestor: parts[0], Target: parts[1]}, nil
}

// ParseSelector reads "a b" as a descendant-scoped selector and "a > b"
// as a child-scoped one. Leading dots on class names are optional.
func ParseSelector(s string) (Selector, Scope, error) {
	scope := DescendantScope
	text := s
	if i := strings.IndexByte(text, '>'); i >= 0 {
		scope = ChildScope
		text = text[:i] + " " + text[i+1:]
	}
	fields := strings.Fields(text)
	for i := range fields {
		fields[i] = strings.TrimPrefix(fields[i], ".")
	}
	sel, err := NewSelector(fields)
	if err != nil {
		return Selector{}, scope, errors.Wrapf(err, "parse %q", s)
	}
	return sel, scope, nil
}

func (s Selector) String() string {
	return "." + s.Ancestor + " ." + s.Target
}

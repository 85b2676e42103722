package tree

// ClassList is an ordered set of class names: first insertion wins the
// position, later duplicates are dropped.
type ClassList struct {
	names []string
	index map[string]struct{}
}

// Add inserts name and reports whether it was new.
func (c *ClassList) Add(name string) bool {
	if c.index == nil {
		c.index = make(map[string]struct{})
	}
	if _, ok := c.index[name]; ok {
		return false
	}
	c.index[name] = struct{}{}
	c.names = append(c.names, name)
	return true
}

func (c *ClassList) Contains(name string) bool {
	_, ok := c.index[name]
	return ok
}

func (c *ClassList) Len() int {
	return len(c.names)
}

// Values returns a copy of the names in insertion order.
func (c *ClassList) Values() []string {
	return append([]string(nil), c.names...)
}

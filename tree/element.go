// Package tree is an in-memory markup element tree with class based
// search and indented rendering.
package tree

import "github.com/pkg/errors"

// Element is a single tagged node of the tree. An element owns its
// children; parent is a plain back pointer and never implies ownership.
type Element struct {
	TagName string

	classes  ClassList
	children NodeList
	parent   *Element
	depth    int
}

// Create returns a detached element with no classes and no children.
func Create(tagName string) *Element {
	return &Element{TagName: tagName}
}

// AddClass inserts name into the class list if it isn't there yet.
func (e *Element) AddClass(name string) *Element {
	e.classes.Add(name)
	return e
}

// AppendChild attaches child as the last child of e and returns e.
// The child must be detached and must not be e or one of e's ancestors;
// otherwise the tree is left untouched and an error is returned.
func (e *Element) AppendChild(child *Element) (*Element, error) {
	if child == nil {
		return e, errors.Wrapf(ErrNilElement, "append to <%s>", e.TagName)
	}
	if child.parent != nil {
		return e, errors.Wrapf(ErrOwnershipConflict, "append <%s> to <%s>: owned by <%s>",
			child.TagName, e.TagName, child.parent.TagName)
	}
	for a := e; a != nil; a = a.parent {
		if a == child {
			return e, errors.Wrapf(ErrCycle, "append <%s> to <%s>", child.TagName, e.TagName)
		}
	}

	child.parent = e
	e.children.Push(child)
	child.setDepth(e.depth + 1)

	Logger.WithField("method", "AppendChild").Debugf("[TREE]: <%s> under <%s> at depth %d",
		child.TagName, e.TagName, child.depth)
	return e, nil
}

// MustAppendChild is like AppendChild but panics on error. It is meant
// for building literal trees.
func (e *Element) MustAppendChild(child *Element) *Element {
	if _, err := e.AppendChild(child); err != nil {
		panic(err)
	}
	return e
}

// setDepth stores d on e and re-derives the depth of everything below e,
// so a subtree built before attachment picks up its new position.
func (e *Element) setDepth(d int) {
	stack := NodeList{e}
	e.depth = d
	for len(stack) > 0 {
		n := stack.Pop()
		for _, c := range n.children {
			c.depth = n.depth + 1
			stack.Push(c)
		}
	}
}

func (e *Element) Parent() *Element { return e.parent }
func (e *Element) Depth() int       { return e.depth }
func (e *Element) IsRoot() bool     { return e.parent == nil }

// Children returns a copy of e's children in attachment order.
func (e *Element) Children() []*Element {
	return append([]*Element(nil), e.children...)
}

// Classes returns a copy of e's classes in insertion order.
func (e *Element) Classes() []string {
	return e.classes.Values()
}

func (e *Element) HasClass(name string) bool {
	return e.classes.Contains(name)
}

func (e *Element) HasChildNodes() bool {
	return len(e.children) > 0
}

// Root walks parent links up to the element without a parent.
func (e *Element) Root() *Element {
	var prev *Element
	for i := e; i != nil; i = i.parent {
		prev = i
	}

	return prev
}

// hasAncestorWithClass reports whether any proper ancestor of e carries
// class.
func (e *Element) hasAncestorWithClass(class string) bool {
	for a := e.parent; a != nil; a = a.parent {
		if a.classes.Contains(class) {
			return true
		}
	}
	return false
}

package tree

import "github.com/sirupsen/logrus"

// Scope says how far above a candidate the ancestor class may sit.
type Scope uint

const (
	// ChildScope requires the class on the immediate parent.
	ChildScope Scope = iota
	// DescendantScope accepts the class on any proper ancestor.
	DescendantScope
)

func (s Scope) String() string {
	switch s {
	case ChildScope:
		return "child"
	case DescendantScope:
		return "descendant"
	default:
		return "unknown"
	}
}

// Order is the traversal order that decides which match comes first.
type Order uint

const (
	// BreadthFirst visits level by level, left to right.
	BreadthFirst Order = iota
	// DepthFirst is a left to right pre-order walk.
	DepthFirst
	// DepthFirstRightBiased pushes children onto the stack in attachment
	// order, so the last child's subtree is explored first.
	DepthFirstRightBiased
)

func (o Order) String() string {
	switch o {
	case BreadthFirst:
		return "bfs"
	case DepthFirst:
		return "dfs"
	case DepthFirstRightBiased:
		return "dfs-right"
	default:
		return "unknown"
	}
}

// Find returns the first element under e, in the given order, that
// matches sel within scope. The root of the walk is never a match since
// it has nothing above it to test.
func (e *Element) Find(sel Selector, scope Scope, order Order) (*Element, bool) {
	match := func(n *Element) bool {
		if n == e || !n.classes.Contains(sel.Target) {
			return false
		}
		if scope == ChildScope {
			return n.parent != nil && n.parent.classes.Contains(sel.Ancestor)
		}
		return n.hasAncestorWithClass(sel.Ancestor)
	}

	var (
		pending = NodeList{e}
		visited int
	)
	for len(pending) > 0 {
		var n *Element
		if order == BreadthFirst {
			n = pending.Shift()
		} else {
			n = pending.Pop()
		}
		visited++

		if match(n) {
			logSearch(sel, scope, order, visited).Debugf("[SEARCH]: matched <%s> at depth %d", n.TagName, n.depth)
			return n, true
		}

		if order == DepthFirst {
			pending.PushReversed(n.children)
		} else {
			pending.Push(n.children...)
		}
	}

	logSearch(sel, scope, order, visited).Debug("[SEARCH]: no match")
	return nil, false
}

func logSearch(sel Selector, scope Scope, order Order, visited int) *logrus.Entry {
	return Logger.WithFields(logrus.Fields{
		"selector": sel.String(),
		"scope":    scope.String(),
		"order":    order.String(),
		"visited":  visited,
	})
}

// FindFirstChildBFS returns the first element, breadth first, carrying
// sel.Target whose parent carries sel.Ancestor.
func (e *Element) FindFirstChildBFS(sel Selector) (*Element, bool) {
	return e.Find(sel, ChildScope, BreadthFirst)
}

// FindFirstChildDFS is FindFirstChildBFS in left to right depth-first order.
func (e *Element) FindFirstChildDFS(sel Selector) (*Element, bool) {
	return e.Find(sel, ChildScope, DepthFirst)
}

// FindDescendantBFS returns the first element, breadth first, carrying
// sel.Target with some ancestor carrying sel.Ancestor.
func (e *Element) FindDescendantBFS(sel Selector) (*Element, bool) {
	return e.Find(sel, DescendantScope, BreadthFirst)
}

// FindDescendantDFS is FindDescendantBFS in left to right depth-first order.
func (e *Element) FindDescendantDFS(sel Selector) (*Element, bool) {
	return e.Find(sel, DescendantScope, DepthFirst)
}

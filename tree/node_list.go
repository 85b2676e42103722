package tree

// NodeList is an ordered list of elements. It doubles as the FIFO queue of
// breadth-first walks and the LIFO stack of depth-first walks.
type NodeList []*Element

func (h *NodeList) Push(n ...*Element) {
	*h = append(*h, n...)
}

// Pop removes and returns the last element, or nil when empty.
func (h *NodeList) Pop() *Element {
	if len(*h) == 0 {
		return nil
	}
	popped := (*h)[len(*h)-1]
	(*h)[len(*h)-1] = nil
	*h = (*h)[:len(*h)-1]
	return popped
}

// Shift removes and returns the first element, or nil when empty.
func (h *NodeList) Shift() *Element {
	if len(*h) == 0 {
		return nil
	}
	shifted := (*h)[0]
	(*h)[0] = nil
	*h = (*h)[1:]
	return shifted
}

// PushReversed pushes ns from last to first, so that popping yields them
// in their original order.
func (h *NodeList) PushReversed(ns []*Element) {
	for i := len(ns) - 1; i >= 0; i-- {
		*h = append(*h, ns[i])
	}
}

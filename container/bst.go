package container

import "golang.org/x/exp/constraints"

// BstNode is a node of an unbalanced binary search tree. The root node
// is the tree itself, there is no separate tree handle.
//
// Every key under left is less than id, every key under right is greater
// than id. Nodes are created once, as leaves, and never move.
type BstNode[K constraints.Ordered] struct {
	id    K
	left  *BstNode[K]
	right *BstNode[K]
}

// NewBstNode creates a tree with exactly one node.
func NewBstNode[K constraints.Ordered](id K) *BstNode[K] {
	return &BstNode[K]{id: id}
}

func (nd *BstNode[K]) Id() K {
	return nd.id
}

// Insert places id into the tree rooted at nd. A key equal to one met on
// the way down is dropped silently. nd must not be nil.
func (nd *BstNode[K]) Insert(id K) {
	nd.insert(id)
}

// insert is Insert, reporting whether a leaf was attached.
func (nd *BstNode[K]) insert(id K) (created bool) {
	//两次比较互不排斥，相等的key(以及NaN)两边都不走
	if nd.id > id {
		created = attach(&nd.left, id)
	}
	if nd.id < id {
		created = attach(&nd.right, id)
	}
	if !created && nd.id == id {
		debugf("bst: key %v already present, ignored\n", id)
	}
	return created
}

// attach creates a leaf in an empty slot, otherwise descends into it.
func attach[K constraints.Ordered](slot **BstNode[K], id K) bool {
	if *slot == nil {
		*slot = &BstNode[K]{id: id}
		tracef("bst: new leaf %v\n", id)
		return true
	}
	return (*slot).insert(id)
}

// Snapshot returns a nested copy of the tree shape, root outermost.
// The record shares nothing with the tree.
func (nd *BstNode[K]) Snapshot() *Record[K] {
	if nd == nil {
		return nil
	}
	return &Record[K]{
		Id:    nd.id,
		Left:  nd.left.Snapshot(),
		Right: nd.right.Snapshot(),
	}
}

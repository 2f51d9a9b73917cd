// Package beachline implements the ordered arc structure the sweepline
// engine threads site events and circle events through. It is a
// self-balancing red-black tree whose nodes also carry explicit prev/next
// pointers kept in sync with every insert and remove, so that the
// in-order neighbours of any arc are reachable in O(1) rather than by
// re-walking the tree. gods' redblacktree.Tree was evaluated for this role
// (see the event queue in the sibling internal/events package, which does
// use it) but exposes no per-node augmentation hook, so it cannot give the
// neighbour-in-O(1) guarantee the beachline needs; this tree is
// purpose-built instead.
//
// Ordering here is positional, not key-based: callers never compare
// values against each other through the tree. Instead the beachline is
// built by walking from a located arc and inserting new arcs as that
// arc's immediate successor, exactly mirroring the site-event splitting
// rule.
package beachline

type color bool

const (
	red   color = false
	black color = true
)

// Node is a beachline arc together with its tree-structural and in-order
// linked-list pointers.
type Node[T any] struct {
	Value T

	color  color
	parent *Node[T]
	left   *Node[T]
	right  *Node[T]

	// prev/next form the in-order doubly-linked list and are always real
	// nodes or true nil; they never point at a tree's sentinel.
	prev *Node[T]
	next *Node[T]
}

// Prev returns n's in-order predecessor, or nil if n is first.
func (n *Node[T]) Prev() *Node[T] { return n.prev }

// Next returns n's in-order successor, or nil if n is last.
func (n *Node[T]) Next() *Node[T] { return n.next }

// Tree is an ordered sequence of nodes maintained as a red-black tree.
// The zero value is not usable; construct with New.
type Tree[T any] struct {
	nilNode *Node[T]
	root    *Node[T]
	size    int
}

// New returns an empty Tree.
func New[T any]() *Tree[T] {
	sentinel := &Node[T]{color: black}
	sentinel.left, sentinel.right, sentinel.parent = sentinel, sentinel, sentinel
	return &Tree[T]{nilNode: sentinel, root: sentinel}
}

// Len returns the number of nodes currently in the tree.
func (t *Tree[T]) Len() int { return t.size }

// First returns the leftmost (smallest in-order) node, or nil if the tree
// is empty.
func (t *Tree[T]) First() *Node[T] {
	if t.root == t.nilNode {
		return nil
	}
	return t.leftmost(t.root)
}

// Last returns the rightmost (largest in-order) node, or nil if the tree
// is empty.
func (t *Tree[T]) Last() *Node[T] {
	if t.root == t.nilNode {
		return nil
	}
	return t.rightmost(t.root)
}

// Search descends the tree's structural left/right links, calling cmp at
// each node to decide whether to branch left (negative), right (positive),
// or stop (zero). Because the tree's in-order sequence is always kept
// consistent with insertion order (InsertAfter never reorders existing
// nodes), a cmp that consults a node's neighbours via Prev/Next to decide
// which side a search target falls on can locate it in O(log n) the same
// way a key-ordered BST would, even though the tree has no intrinsic key.
// Returns nil if cmp never returns zero along the descended path.
func (t *Tree[T]) Search(cmp func(n *Node[T]) int) *Node[T] {
	n := t.root
	for n != t.nilNode {
		switch c := cmp(n); {
		case c < 0:
			n = n.left
		case c > 0:
			n = n.right
		default:
			return n
		}
	}
	return nil
}

func (t *Tree[T]) leftmost(n *Node[T]) *Node[T] {
	for n.left != t.nilNode {
		n = n.left
	}
	return n
}

func (t *Tree[T]) rightmost(n *Node[T]) *Node[T] {
	for n.right != t.nilNode {
		n = n.right
	}
	return n
}

// InsertRoot inserts value as the sole node of an empty tree. It panics if
// the tree is not empty; callers locate an existing arc and use InsertAfter
// once the beachline is non-empty.
func (t *Tree[T]) InsertRoot(value T) *Node[T] {
	if t.root != t.nilNode {
		panic("beachline: InsertRoot called on a non-empty tree")
	}
	n := &Node[T]{Value: value, color: black, left: t.nilNode, right: t.nilNode, parent: t.nilNode}
	t.root = n
	t.size++
	return n
}

// InsertAfter inserts value as the immediate in-order successor of after
// and returns the new node. after must be non-nil and already present in
// the tree.
func (t *Tree[T]) InsertAfter(after *Node[T], value T) *Node[T] {
	n := &Node[T]{Value: value, color: red, left: t.nilNode, right: t.nilNode}

	if after.right == t.nilNode {
		after.right = n
		n.parent = after
	} else {
		succ := t.leftmost(after.right)
		succ.left = n
		n.parent = succ
	}

	n.prev = after
	n.next = after.next
	after.next = n
	if n.next != nil {
		n.next.prev = n
	}

	t.size++
	t.insertFixup(n)
	return n
}

// Remove deletes z from the tree, relinking its neighbours' prev/next
// pointers.
func (t *Tree[T]) Remove(z *Node[T]) {
	if z.prev != nil {
		z.prev.next = z.next
	}
	if z.next != nil {
		z.next.prev = z.prev
	}
	t.size--

	y := z
	yOriginalColor := y.color
	var x *Node[T]

	switch {
	case z.left == t.nilNode:
		x = z.right
		t.transplant(z, z.right)
	case z.right == t.nilNode:
		x = z.left
		t.transplant(z, z.left)
	default:
		y = t.leftmost(z.right)
		yOriginalColor = y.color
		x = y.right
		if y.parent == z {
			x.parent = y
		} else {
			t.transplant(y, y.right)
			y.right = z.right
			y.right.parent = y
		}
		t.transplant(z, y)
		y.left = z.left
		y.left.parent = y
		y.color = z.color
	}

	if yOriginalColor == black {
		t.deleteFixup(x)
	}
}

func (t *Tree[T]) transplant(u, v *Node[T]) {
	switch {
	case u.parent == t.nilNode:
		t.root = v
	case u == u.parent.left:
		u.parent.left = v
	default:
		u.parent.right = v
	}
	v.parent = u.parent
}

func (t *Tree[T]) insertFixup(z *Node[T]) {
	for z.parent.color == red {
		if z.parent == z.parent.parent.left {
			y := z.parent.parent.right
			if y.color == red {
				z.parent.color = black
				y.color = black
				z.parent.parent.color = red
				z = z.parent.parent
				continue
			}
			if z == z.parent.right {
				z = z.parent
				t.rotateLeft(z)
			}
			z.parent.color = black
			z.parent.parent.color = red
			t.rotateRight(z.parent.parent)
		} else {
			y := z.parent.parent.left
			if y.color == red {
				z.parent.color = black
				y.color = black
				z.parent.parent.color = red
				z = z.parent.parent
				continue
			}
			if z == z.parent.left {
				z = z.parent
				t.rotateRight(z)
			}
			z.parent.color = black
			z.parent.parent.color = red
			t.rotateLeft(z.parent.parent)
		}
	}
	t.root.color = black
}

func (t *Tree[T]) deleteFixup(x *Node[T]) {
	for x != t.root && x.color == black {
		if x == x.parent.left {
			w := x.parent.right
			if w.color == red {
				w.color = black
				x.parent.color = red
				t.rotateLeft(x.parent)
				w = x.parent.right
			}
			if w.left.color == black && w.right.color == black {
				w.color = red
				x = x.parent
				continue
			}
			if w.right.color == black {
				w.left.color = black
				w.color = red
				t.rotateRight(w)
				w = x.parent.right
			}
			w.color = x.parent.color
			x.parent.color = black
			w.right.color = black
			t.rotateLeft(x.parent)
			x = t.root
		} else {
			w := x.parent.left
			if w.color == red {
				w.color = black
				x.parent.color = red
				t.rotateRight(x.parent)
				w = x.parent.left
			}
			if w.right.color == black && w.left.color == black {
				w.color = red
				x = x.parent
				continue
			}
			if w.left.color == black {
				w.right.color = black
				w.color = red
				t.rotateLeft(w)
				w = x.parent.left
			}
			w.color = x.parent.color
			x.parent.color = black
			w.left.color = black
			t.rotateRight(x.parent)
			x = t.root
		}
	}
	x.color = black
}

func (t *Tree[T]) rotateLeft(x *Node[T]) {
	y := x.right
	x.right = y.left
	if y.left != t.nilNode {
		y.left.parent = x
	}
	y.parent = x.parent
	switch {
	case x.parent == t.nilNode:
		t.root = y
	case x == x.parent.left:
		x.parent.left = y
	default:
		x.parent.right = y
	}
	y.left = x
	x.parent = y
}

func (t *Tree[T]) rotateRight(x *Node[T]) {
	y := x.left
	x.left = y.right
	if y.right != t.nilNode {
		y.right.parent = x
	}
	y.parent = x.parent
	switch {
	case x.parent == t.nilNode:
		t.root = y
	case x == x.parent.left:
		x.parent.left = y
	default:
		x.parent.right = y
	}
	y.right = x
	x.parent = y
}

//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

// Package optimizer implements a local optimizer for three-address
// code. It builds a DAG of value computations from one basic block of
// quadruples, collapsing common subexpressions and folding constant
// arithmetic, and re-linearizes the DAG into an equivalent, shorter
// quadruple sequence.
package optimizer

import (
	"errors"
	"fmt"
	"strings"
)

// None denotes a missing operand child.
const None = -1

// ErrMalformed reports an inconsistent quadruple stream. The block
// being optimized is aborted and produces no output.
var ErrMalformed = errors.New("malformed quadruple stream")

// Node is a vertex in the value DAG: a leaf holding a literal or
// variable, or an interior node computing an operation over its
// children. Node ids are dense and assigned in creation order;
// children always have smaller ids than their parent.
type Node struct {
	ID    int
	Label string
	Left  int
	Right int

	// Aliases lists the variable names bound to this node's value,
	// in binding order. The list is append-only: rebinding a name
	// elsewhere does not retract it here. The first alias is the
	// representative name used when the node is referenced as an
	// operand.
	Aliases []string
}

// IsLeaf tests if the node is a leaf node.
func (n *Node) IsLeaf() bool {
	return n.Left == None && n.Right == None
}

// Name returns the name under which the node is referenced as an
// operand: its first alias if it has any, otherwise its raw label.
func (n *Node) Name() string {
	if len(n.Aliases) > 0 {
		return n.Aliases[0]
	}
	return n.Label
}

func (n *Node) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "n%d: %s", n.ID, n.Label)
	if !n.IsLeaf() {
		fmt.Fprintf(&sb, "(%d", n.Left)
		if n.Right != None {
			fmt.Fprintf(&sb, ",%d", n.Right)
		}
		sb.WriteRune(')')
	}
	if len(n.Aliases) > 0 {
		fmt.Fprintf(&sb, " [%s]", strings.Join(n.Aliases, " "))
	}
	return sb.String()
}

// DAG is an append-only arena of nodes, indexed by node id.
type DAG struct {
	Nodes []Node
}

func (d *DAG) addLeaf(label string) int {
	id := len(d.Nodes)
	d.Nodes = append(d.Nodes, Node{
		ID:    id,
		Label: label,
		Left:  None,
		Right: None,
	})
	return id
}

func (d *DAG) addOp(op string, left, right int) int {
	id := len(d.Nodes)
	d.Nodes = append(d.Nodes, Node{
		ID:    id,
		Label: op,
		Left:  left,
		Right: right,
	})
	return id
}

// node returns the node with the id. An id outside the arena means
// the input stream was inconsistent.
func (d *DAG) node(id int) (*Node, error) {
	if id < 0 || id >= len(d.Nodes) {
		return nil, fmt.Errorf("%w: node id %d out of range", ErrMalformed, id)
	}
	return &d.Nodes[id], nil
}

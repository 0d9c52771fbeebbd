//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package optimizer

import (
	"fmt"

	"github.com/oleiade/lane"

	"github.com/markkurossi/tacopt/quad"
)

// Emitter re-linearizes the DAG into a minimal quadruple sequence
// covering all values still reachable from the final bindings.
type Emitter struct {
	dag      *DAG
	bindings Bindings
	done     []bool
	result   []quad.Quadruple
}

// NewEmitter creates an emitter for the finished DAG and the block's
// final bindings.
func NewEmitter(dag *DAG, bindings Bindings) *Emitter {
	return &Emitter{
		dag:      dag,
		bindings: bindings,
		done:     make([]bool, len(dag.Nodes)),
	}
}

// Emit generates the optimized quadruple sequence. Only nodes
// reachable from a currently bound variable name are emitted; the
// required nodes are traversed in ascending id order, children before
// parents.
func (e *Emitter) Emit() ([]quad.Quadruple, error) {
	for _, id := range e.bindings.Values() {
		if err := e.traverse(id); err != nil {
			return nil, err
		}
	}
	return e.result, nil
}

// traverse performs a memoized post-order walk from the root,
// emitting each reachable node exactly once.
func (e *Emitter) traverse(root int) error {
	if _, err := e.dag.node(root); err != nil {
		return err
	}
	if e.done[root] {
		return nil
	}

	expanded := make(map[int]bool)

	stack := lane.NewStack()
	stack.Push(root)
	for !stack.Empty() {
		id := stack.Head().(int)
		node, err := e.dag.node(id)
		if err != nil {
			return err
		}
		if !expanded[id] {
			expanded[id] = true
			if node.Right != None && !e.done[node.Right] {
				stack.Push(node.Right)
			}
			if node.Left != None && !e.done[node.Left] {
				stack.Push(node.Left)
			}
			if stack.Head().(int) != id {
				// Children pending.
				continue
			}
		}
		stack.Pop()
		if e.done[id] {
			continue
		}
		e.done[id] = true
		if err := e.visit(node); err != nil {
			return err
		}
	}
	return nil
}

// visit emits the instructions materializing one node.
func (e *Emitter) visit(node *Node) error {
	if !node.IsLeaf() {
		return e.visitOp(node)
	}
	if isLiteral(node.Label) {
		// Constant leaf: re-materialize the constant under each
		// bound name. A constant never named by a variable appears
		// only inlined as an operand of its parent.
		for _, alias := range node.Aliases {
			e.emit(quad.Quadruple{
				Op:     "=",
				Arg1:   node.Label,
				Result: alias,
			})
		}
		return nil
	}
	// Variable leaf: the first alias is the variable itself and is
	// already available in the caller's environment; extra names
	// become copies of it.
	for i := 1; i < len(node.Aliases); i++ {
		e.emit(quad.Quadruple{
			Op:     "=",
			Arg1:   node.Aliases[0],
			Result: node.Aliases[i],
		})
	}
	return nil
}

func (e *Emitter) visitOp(node *Node) error {
	if len(node.Aliases) == 0 {
		// A node reachable from the bindings has at least one alias.
		return fmt.Errorf("%w: operation node %d has no aliases",
			ErrMalformed, node.ID)
	}
	left, err := e.dag.node(node.Left)
	if err != nil {
		return err
	}
	var arg2 string
	if node.Right != None {
		right, err := e.dag.node(node.Right)
		if err != nil {
			return err
		}
		arg2 = right.Name()
	}
	e.emit(quad.Quadruple{
		Op:     node.Label,
		Arg1:   left.Name(),
		Arg2:   arg2,
		Result: node.Aliases[0],
	})

	// Each extra name sharing this value is a copy of the one real
	// computation.
	for i := 1; i < len(node.Aliases); i++ {
		e.emit(quad.Quadruple{
			Op:     "=",
			Arg1:   node.Aliases[0],
			Result: node.Aliases[i],
		})
	}
	return nil
}

func (e *Emitter) emit(q quad.Quadruple) {
	e.result = append(e.result, q)
}

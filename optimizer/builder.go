//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package optimizer

import (
	"fmt"

	"github.com/markkurossi/tacopt/quad"
)

// exprKey identifies an operation over two resolved operand values.
type exprKey struct {
	op    string
	left  int
	right int
}

// Builder constructs the value DAG from a quadruple stream, one
// quadruple at a time.
type Builder struct {
	dag      *DAG
	bindings Bindings
	exprs    map[exprKey]int
}

// NewBuilder creates a new DAG builder for one basic block.
func NewBuilder() *Builder {
	return &Builder{
		dag:      new(DAG),
		bindings: NewBindings(),
		exprs:    make(map[exprKey]int),
	}
}

// DAG returns the node graph built so far.
func (b *Builder) DAG() *DAG {
	return b.dag
}

// Bindings returns the current variable bindings.
func (b *Builder) Bindings() Bindings {
	return b.bindings
}

// leaf resolves the value text to a node id, creating a leaf node on
// first use. A non-literal value self-registers: the new node's sole
// initial alias is the value's own name. Numeric literals are never
// bound and receive no alias.
func (b *Builder) leaf(val string) (int, error) {
	if len(val) == 0 {
		return None, fmt.Errorf("%w: empty operand", ErrMalformed)
	}
	if id, ok := b.bindings.Get(val); ok {
		return id, nil
	}
	id := b.dag.addLeaf(val)
	if !isLiteral(val) {
		if err := b.bind(val, id); err != nil {
			return None, err
		}
	}
	return id, nil
}

// bind points the name at the node and records the name as an alias
// of the node. The node previously bound to the name is not touched.
func (b *Builder) bind(name string, id int) error {
	node, err := b.dag.node(id)
	if err != nil {
		return err
	}
	b.bindings.Set(name, id)
	node.Aliases = append(node.Aliases, name)
	return nil
}

// Process adds one quadruple to the DAG.
func (b *Builder) Process(q quad.Quadruple) error {
	if q.IsAssign() {
		if len(q.Arg1) == 0 {
			// Assignment without a source value is a no-op.
			return nil
		}
		src, err := b.leaf(q.Arg1)
		if err != nil {
			return err
		}
		return b.bind(q.Result, src)
	}

	lit, ok, err := foldConstant(q.Op, q.Arg1, q.Arg2)
	if err != nil {
		return err
	}
	if ok {
		// The operation folds to a constant; treat it as an
		// assignment of the result literal.
		id, err := b.leaf(lit)
		if err != nil {
			return err
		}
		return b.bind(q.Result, id)
	}

	left, err := b.leaf(q.Arg1)
	if err != nil {
		return err
	}
	right := None
	if len(q.Arg2) > 0 {
		right, err = b.leaf(q.Arg2)
		if err != nil {
			return err
		}
	}

	key := exprKey{
		op:    q.Op,
		left:  left,
		right: right,
	}
	if id, ok := b.exprs[key]; ok {
		// Same operator over the same operand values: reuse the
		// earlier computation.
		return b.bind(q.Result, id)
	}
	id := b.dag.addOp(q.Op, left, right)
	b.exprs[key] = id
	return b.bind(q.Result, id)
}

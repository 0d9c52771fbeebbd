//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package optimizer

import (
	"fmt"

	"github.com/markkurossi/tacopt/optimizer/utils"
	"github.com/markkurossi/tacopt/quad"
)

// Optimizer implements the basic block optimizer.
type Optimizer struct {
	params *utils.Params
}

// New creates a new optimizer with the parameters.
func New(params *utils.Params) *Optimizer {
	return &Optimizer{
		params: params,
	}
}

// OptimizeBlock optimizes one quadruple block. The source name is
// used in diagnostics. A malformed block produces an error and no
// output.
func (o *Optimizer) OptimizeBlock(source string, quads []quad.Quadruple) (
	[]quad.Quadruple, error) {

	builder := NewBuilder()
	for idx, q := range quads {
		if err := builder.Process(q); err != nil {
			return nil, fmt.Errorf("%s: %s: %w",
				utils.Point{Source: source, Line: idx + 1}, q, err)
		}
	}
	if o.params.DAGOut != nil {
		builder.DAG().Dump(o.params.DAGOut)
	}
	return NewEmitter(builder.DAG(), builder.Bindings()).Emit()
}

// Optimize optimizes the quadruple block with the default parameters.
// This is the core entry contract: one ordered sequence in, one
// ordered sequence out, no other state crossing the boundary.
func Optimize(quads []quad.Quadruple) ([]quad.Quadruple, error) {
	builder := NewBuilder()
	for idx, q := range quads {
		if err := builder.Process(q); err != nil {
			return nil, fmt.Errorf("quadruple %d: %s: %w", idx+1, q, err)
		}
	}
	return NewEmitter(builder.DAG(), builder.Bindings()).Emit()
}

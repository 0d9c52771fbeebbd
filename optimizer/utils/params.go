//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package utils

import (
	"io"
	"runtime"
)

// Params specify optimizer parameters.
type Params struct {
	Verbose     bool
	Diagnostics bool

	// DAGOut receives the DAG structure dump of each optimized block.
	DAGOut io.WriteCloser

	// Workers specifies the number of blocks optimized concurrently.
	// Blocks are independent; there is no parallelism inside one
	// block.
	Workers int
}

// NewParams returns new optimizer params object, initialized with the
// default values.
func NewParams() *Params {
	return &Params{
		Workers: runtime.NumCPU(),
	}
}

// Close closes all open resources.
func (p *Params) Close() {
	if p.DAGOut != nil {
		p.DAGOut.Close()
		p.DAGOut = nil
	}
}

//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

// Package tacopt optimizes basic blocks of three-address code. Each
// block is an ordered sequence of quadruples; the optimizer collapses
// common subexpressions, folds constant arithmetic, drops dead
// values, and returns an equivalent, shorter sequence.
package tacopt

import (
	"io"
	"os"
	"strings"

	"github.com/markkurossi/tacopt/optimizer"
	"github.com/markkurossi/tacopt/quad"
)

// Optimize optimizes the quadruple block in data.
func Optimize(data string) ([]quad.Quadruple, error) {
	return optimize("{data}", strings.NewReader(data))
}

// OptimizeFile optimizes the quadruple block in the file.
func OptimizeFile(file string) ([]quad.Quadruple, error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return optimize(file, f)
}

func optimize(source string, in io.Reader) ([]quad.Quadruple, error) {
	quads, err := quad.Parse(source, in)
	if err != nil {
		return nil, err
	}
	return optimizer.Optimize(quads)
}

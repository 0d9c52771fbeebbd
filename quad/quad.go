//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

// Package quad defines the three-address code quadruple and its
// textual encoding.
package quad

import (
	"fmt"
	"io"
)

// Quadruple is one three-address code instruction. The operator "="
// is a copy from Arg1 to Result; other operators compute Result from
// Arg1 and Arg2. Arg2 may be empty for unary use.
type Quadruple struct {
	Op     string
	Arg1   string
	Arg2   string
	Result string
}

// IsAssign tests if the quadruple is a copy instruction.
func (q Quadruple) IsAssign() bool {
	return q.Op == "="
}

func (q Quadruple) String() string {
	return fmt.Sprintf("(%s, %s, %s, %s)", q.Op, q.Arg1, q.Arg2, q.Result)
}

// Print writes the quadruples to out, one per line.
func Print(out io.Writer, quads []Quadruple) error {
	for _, q := range quads {
		_, err := fmt.Fprintln(out, q)
		if err != nil {
			return err
		}
	}
	return nil
}

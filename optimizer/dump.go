//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package optimizer

import (
	"io"
	"strconv"
	"strings"

	"github.com/markkurossi/tabulate"
	"github.com/markkurossi/text/superscript"
)

// Dump renders the DAG structure as a table.
func (d *DAG) Dump(out io.Writer) {
	tab := tabulate.New(tabulate.UnicodeLight)
	tab.Header("Node").SetAlign(tabulate.MR)
	tab.Header("Label").SetAlign(tabulate.ML)
	tab.Header("Left").SetAlign(tabulate.ML)
	tab.Header("Right").SetAlign(tabulate.ML)
	tab.Header("Aliases").SetAlign(tabulate.ML)

	for i := range d.Nodes {
		node := &d.Nodes[i]
		row := tab.Row()
		row.Column(strconv.Itoa(node.ID))
		row.Column(node.Label)
		row.Column(d.ref(node.Left))
		row.Column(d.ref(node.Right))
		row.Column(strings.Join(node.Aliases, ", "))
	}
	tab.Print(out)
}

// ref formats a child reference as the child's label with the child's
// node id in superscript.
func (d *DAG) ref(id int) string {
	if id < 0 || id >= len(d.Nodes) {
		return ""
	}
	return d.Nodes[id].Label + superscript.Itoa(id)
}

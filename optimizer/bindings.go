//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package optimizer

import (
	"sort"
)

// Bindings maps variable names to the id of the DAG node currently
// holding their value. Rebinding a name overwrites its entry; the
// node previously bound to the name keeps the name in its alias list.
type Bindings map[string]int

// NewBindings creates new empty bindings.
func NewBindings() Bindings {
	return make(Bindings)
}

// Get returns the node id bound to the name.
func (b Bindings) Get(name string) (int, bool) {
	id, ok := b[name]
	return id, ok
}

// Set binds the name to the node id, last write wins.
func (b Bindings) Set(name string, id int) {
	b[name] = id
}

// Values returns the bound node ids in ascending order, without
// duplicates. These are the values still reachable from some
// variable name at the end of the block.
func (b Bindings) Values() []int {
	seen := make(map[int]bool)
	var ids []int
	for _, id := range b {
		if !seen[id] {
			seen[id] = true
			ids = append(ids, id)
		}
	}
	sort.Ints(ids)
	return ids
}

// Copyright 2016 The Trifem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import "github.com/zeemarquez/trifem/inp"

// Dof holds information about a degree-of-freedom == solution variable
type Dof struct {
	Key string // primary variable key; e.g. "ux", "uy"
	Eq  int    // equation number in the global system
}

// Node holds a pointer to a vertex and its degrees of freedom. Equation numbers
// are fixed by the vertex id: 2*id for "ux" and 2*id+1 for "uy".
type Node struct {
	Vert *inp.Vert // pointer to vertex
	Dofs []*Dof    // degrees of freedom
}

// NewNode returns a new node with both 2D displacement Dofs
func NewNode(v *inp.Vert) *Node {
	return &Node{v, []*Dof{
		{"ux", 2 * v.Id},
		{"uy", 2*v.Id + 1},
	}}
}

// GetEq returns the equation number of a Dof with given key; -1 if not found
func (o *Node) GetEq(key string) int {
	for _, d := range o.Dofs {
		if d.Key == key {
			return d.Eq
		}
	}
	return -1
}

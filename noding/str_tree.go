// Copyright 2023 Google Inc. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS-IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package noding

import (
	"math"
	"sort"
)

// strNodeCapacity bounds the fan-out of every internal STRTree node.
const strNodeCapacity = 10

// STRTree is an STR-packed (Sort-Tile-Recursive) R-tree over a fixed set
// of monotone chains, bulk-loaded once at construction rather than built
// incrementally. This package builds exactly one per noding run (C4).
type STRTree struct {
	root *strNode
}

type strNode struct {
	env      envelope
	chain    *MonotoneChain // non-nil only for leaves
	children []*strNode
}

// NewSTRTree bulk-loads an STRTree over chains by envelope centroid: two
// sort passes per level (by centre X into vertical slices, then by
// centre Y within each slice), grouped into nodes of strNodeCapacity,
// repeated bottom-up until one root node remains.
func NewSTRTree(chains []MonotoneChain) *STRTree {
	if len(chains) == 0 {
		return &STRTree{}
	}

	level := make([]*strNode, len(chains))
	for i := range chains {
		c := chains[i]
		level[i] = &strNode{env: c.Envelope(), chain: &c}
	}

	for len(level) > 1 {
		level = packSTRLevel(level, strNodeCapacity)
	}
	return &STRTree{root: level[0]}
}

// packSTRLevel groups nodes into parent nodes of at most capacity
// children each, using the sort-tile-recursive slicing scheme.
func packSTRLevel(nodes []*strNode, capacity int) []*strNode {
	n := len(nodes)
	numSlices := int(math.Ceil(math.Sqrt(float64(n) / float64(capacity))))
	if numSlices < 1 {
		numSlices = 1
	}
	sliceCapacity := int(math.Ceil(float64(n) / float64(numSlices)))

	byX := make([]*strNode, n)
	copy(byX, nodes)
	sort.Slice(byX, func(i, j int) bool {
		return byX[i].env.centreX() < byX[j].env.centreX()
	})

	var parents []*strNode
	for s := 0; s < n; s += sliceCapacity {
		e := min(s+sliceCapacity, n)
		slice := byX[s:e]
		sort.Slice(slice, func(i, j int) bool {
			return slice[i].env.centreY() < slice[j].env.centreY()
		})
		for g := 0; g < len(slice); g += capacity {
			ge := min(g+capacity, len(slice))
			parents = append(parents, newSTRInternalNode(slice[g:ge]))
		}
	}
	return parents
}

func newSTRInternalNode(children []*strNode) *strNode {
	env := children[0].env
	for _, c := range children[1:] {
		env = env.expandedBy(c.env)
	}
	node := make([]*strNode, len(children))
	copy(node, children)
	return &strNode{env: env, children: node}
}

// Query invokes visit once for every indexed chain whose envelope
// intersects env. Order is unspecified.
func (t *STRTree) Query(env envelope, visit func(MonotoneChain)) {
	if t.root == nil {
		return
	}
	queryNode(t.root, env, visit)
}

func queryNode(n *strNode, env envelope, visit func(MonotoneChain)) {
	if !n.env.intersects(env) {
		return
	}
	if n.chain != nil {
		visit(*n.chain)
		return
	}
	for _, c := range n.children {
		queryNode(c, env, visit)
	}
}

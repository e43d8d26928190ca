// Copyright 2016 The Gomesh Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msh

import (
	"github.com/cpmech/gosl/chk"
)

// arena is the temporary node buffer used during mesh construction. Each
// newly instantiated node occupies one slot; stitching does not free
// duplicate nodes but marks their slot as superseded by the canonical slot of
// the surviving node. The final mesh node list is the scan of the
// non-superseded slots, in slot order. A slot is released at most once.
type arena struct {
	nodes []*Node       // one node per slot
	super []int         // -1: slot owns its node; >=0: superseded by that slot
	slot  map[*Node]int // node → owning slot
}

func newArena() (o *arena) {
	o = new(arena)
	o.slot = make(map[*Node]int)
	return
}

// push appends a node, returning its slot id
func (o *arena) push(nd *Node) (id int) {
	id = len(o.nodes)
	o.nodes = append(o.nodes, nd)
	o.super = append(o.super, -1)
	o.slot[nd] = id
	return
}

// supersede marks the slot of dup as superseded by the slot of keep. keep
// must own its slot; dup must not have been superseded before, except by the
// same canonical node (shared corners may be stitched from two edges).
func (o *arena) supersede(dup, keep *Node) {
	if dup == keep {
		return // corner already stitched through another edge
	}
	ks, ok := o.slot[keep]
	if !ok {
		chk.Panic("cannot supersede by a node that is not in the buffer")
	}
	if o.super[ks] >= 0 {
		chk.Panic("canonical node of slot %d was itself superseded; stitching order is inconsistent", ks)
	}
	ds, ok := o.slot[dup]
	if !ok {
		chk.Panic("cannot supersede a node that is not in the buffer")
	}
	if o.super[ds] >= 0 {
		if o.super[ds] != ks {
			chk.Panic("slot %d was already superseded by slot %d and cannot be superseded again by slot %d", ds, o.super[ds], ks)
		}
		return
	}
	o.super[ds] = ks
}

// released tells whether the slot of nd was superseded
func (o *arena) released(nd *Node) bool {
	ds, ok := o.slot[nd]
	if !ok {
		return false
	}
	return o.super[ds] >= 0
}

// collect returns the surviving nodes in slot order, assigning their ids
func (o *arena) collect() (nodes []*Node) {
	for i, nd := range o.nodes {
		if o.super[i] < 0 {
			nd.Id = len(nodes)
			nodes = append(nodes, nd)
		}
	}
	return
}

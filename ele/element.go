// Copyright 2016 The Gomesh Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ele defines the contracts between the meshing core and
// physics-equation elements: the bulk-element degree-of-freedom mapping and
// the geometry of element faces (positions, tangents, metric and outer
// normals on curved edges) needed by traction and flux boundary elements.
package ele

// Bulk is the capability physics elements must provide so that face elements
// (tractions, fluxes) can address their degrees of freedom
type Bulk interface {

	// UIndex returns the local degree-of-freedom index at which the
	// primary-variable component of spatial dimension i is stored
	UIndex(i int) int
}

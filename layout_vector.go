// File: layout_vector.go
// Author: wyfo
//
// License: Apache-2.0

//go:build arcslice_layout_vector

package arcslice

// DefaultLayout is the layout used by constructors that do not take one
// explicitly, selected by the arcslice_layout_vector build tag.
var DefaultLayout = Vector

// File: layout_default.go
// Author: wyfo
//
// License: Apache-2.0

//go:build !arcslice_layout_boxed && !arcslice_layout_vector && !arcslice_layout_raw

package arcslice

// DefaultLayout is the layout used by constructors that do not take one
// explicitly. Overridden at build time with one of the arcslice_layout_*
// build tags.
var DefaultLayout = Optimized

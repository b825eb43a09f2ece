// File: layout_raw.go
// Author: wyfo
//
// License: Apache-2.0

//go:build arcslice_layout_raw

package arcslice

// DefaultLayout is the layout used by constructors that do not take one
// explicitly, selected by the arcslice_layout_raw build tag.
var DefaultLayout = Raw

// Package builtin embeds the default Tray Bright recipe book. It is used
// whenever no recipe book is found on disk, so the tool works inside the
// application repository with zero configuration.
package builtin

import _ "embed"

// Filename is the diagnostic name reported for the embedded book.
const Filename = "<builtin>/traymake.hcl"

//go:embed traymake.hcl
var Source []byte

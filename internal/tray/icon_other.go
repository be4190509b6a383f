//go:build !windows

package tray

import _ "embed"

//go:embed icon/dragster.png
var icon []byte

package tray

import _ "embed"

//go:embed icon/dragster.ico
var icon []byte

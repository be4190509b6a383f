// Package theme renders the GTK stylesheet of the drop window.
package theme

import (
	"fmt"
	"strings"

	"github.com/taodev/dragster/internal/config"
)

// DropClass is the style class of the widget that shows dropped content.
const DropClass = "dragster-drop"

// CSS returns the stylesheet for s. The window itself stays transparent;
// only the drop area is painted.
func CSS(s config.Settings) string {
	var b strings.Builder
	b.WriteString("window, window.background {\n  background-color: transparent;\n}\n")
	fmt.Fprintf(&b, ".%s {\n", DropClass)
	fmt.Fprintf(&b, "  background-color: %s;\n", Background(s.Background))
	fmt.Fprintf(&b, "  color: %s;\n", s.TextColor)
	fmt.Fprintf(&b, "  font-size: %dpx;\n", s.FontSize)
	fmt.Fprintf(&b, "  padding: %dpx;\n", s.Padding)
	fmt.Fprintf(&b, "  border-radius: %dpx;\n", s.Radius)
	b.WriteString("}\n")
	fmt.Fprintf(&b, ".%s label {\n  color: %s;\n}\n", DropClass, s.TextColor)
	fmt.Fprintf(&b, ".%s scrollbar {\n  background-color: transparent;\n  border: none;\n}\n", DropClass)
	fmt.Fprintf(&b, ".%s scrollbar slider {\n", DropClass)
	fmt.Fprintf(&b, "  background-color: %s;\n", s.ScrollColor)
	fmt.Fprintf(&b, "  min-width: %dpx;\n", s.ScrollWidth)
	fmt.Fprintf(&b, "  min-height: %dpx;\n", s.ScrollWidth)
	b.WriteString("}\n")
	return b.String()
}

// Background converts the "r,g,b,a" settings value into a CSS color.
// Values that already look like CSS colors are passed through.
func Background(v string) string {
	v = strings.TrimSpace(v)
	if strings.HasPrefix(v, "#") || strings.Contains(v, "(") {
		return v
	}
	if strings.Count(v, ",") == 3 {
		return "rgba(" + v + ")"
	}
	return "rgb(" + v + ")"
}

// Package drop turns the payload of a drag-and-drop event into a Context
// that menu actions can consume.
package drop

import (
	"net/url"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// FileScheme is the prefix that marks a dropped item as a local file.
const FileScheme = "file://"

// Class is the kind of content a drop carried.
type Class int

const (
	ClassText Class = iota
	ClassURL
	ClassFiles
)

func (c Class) String() string {
	switch c {
	case ClassURL:
		return "url"
	case ClassFiles:
		return "files"
	default:
		return "text"
	}
}

// Payload is what the window received: either a URI list or plain text.
type Payload struct {
	URIs []string
	Text string
}

// Context holds the content of the drops since the display was last
// cleared. The zero value is an empty context.
type Context struct {
	ID    uuid.UUID
	Items []string
	Class Class
}

// Classify builds a Context from a dropped payload.
func Classify(p Payload) Context {
	var items []string
	if len(p.URIs) > 0 {
		items = append(items, p.URIs...)
	} else if p.Text != "" {
		items = []string{p.Text}
	}
	return Context{
		ID:    uuid.New(),
		Items: items,
		Class: classOf(items),
	}
}

// Append adds the items of next to c, as a second drop onto a display
// that was not cleared yet.
func (c Context) Append(next Context) Context {
	if c.Empty() {
		return next
	}
	items := make([]string, 0, len(c.Items)+len(next.Items))
	items = append(items, c.Items...)
	items = append(items, next.Items...)
	return Context{ID: c.ID, Items: items, Class: classOf(items)}
}

// Empty reports whether nothing has been dropped.
func (c Context) Empty() bool {
	return len(c.Items) == 0
}

// Raw returns the dropped content as shown on the display.
func (c Context) Raw() string {
	return strings.Join(c.Items, "\n")
}

// HasFileURI reports whether the raw text mentions a file URI anywhere.
func (c Context) HasFileURI() bool {
	return strings.Contains(c.Raw(), FileScheme)
}

// Files returns one File per non-blank line of the raw text.
func (c Context) Files() []File {
	var files []File
	for _, line := range strings.Split(c.Raw(), "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		files = append(files, NewFile(ResolvePath(line)))
	}
	return files
}

// ResolvePath converts a dropped line into a filesystem path. Lines with
// the file scheme are stripped and percent-decoded; anything else is
// returned unchanged.
func ResolvePath(line string) string {
	if !strings.HasPrefix(line, FileScheme) {
		return line
	}
	p := strings.TrimPrefix(line, FileScheme)
	if strings.HasPrefix(p, "localhost/") {
		p = strings.TrimPrefix(p, "localhost")
	}
	if decoded, err := url.PathUnescape(p); err == nil {
		return decoded
	}
	return p
}

// File is a dropped local file with the fields templates can refer to.
type File struct {
	Path string
	Name string // basename without extension
	Ext  string // extension including the dot
	Dir  string
}

// NewFile splits path into its template fields. Only the last dot of the
// basename starts the extension, and leading dots never do.
func NewFile(path string) File {
	base := filepath.Base(path)
	stem := strings.TrimLeft(base, ".")
	ext := filepath.Ext(stem)
	return File{
		Path: path,
		Name: strings.TrimSuffix(base, ext),
		Ext:  ext,
		Dir:  filepath.Dir(path),
	}
}

func classOf(items []string) Class {
	if len(items) == 0 {
		return ClassText
	}
	files, urls := true, true
	for _, item := range items {
		if !strings.HasPrefix(item, FileScheme) {
			files = false
		}
		if u, err := url.Parse(item); err != nil || u.Scheme == "" || strings.ContainsAny(item, " \n") {
			urls = false
		}
	}
	switch {
	case files:
		return ClassFiles
	case urls:
		return ClassURL
	default:
		return ClassText
	}
}

// Package expand fills the colon-delimited placeholders of an action
// command. Substitution is literal: values are inserted without any shell
// quoting and are never scanned again for placeholders. Action-specific
// placeholders are substituted before the common ones.
package expand

import (
	"os"
	"sort"
	"strings"
	"time"

	"github.com/taodev/dragster/internal/drop"
)

// Vars maps placeholder names, without the surrounding colons, to values.
type Vars map[string]string

// Text returns the vars of a text action.
func Text(raw string) Vars {
	return Vars{"text": raw}
}

// URL returns the vars of a url action.
func URL(raw string) Vars {
	return Vars{"url": raw}
}

// File returns the vars of a file action for a single file.
func File(f drop.File) Vars {
	return Vars{
		"file":  f.Path,
		"fname": f.Name,
		"fext":  f.Ext,
		"fdir":  f.Dir,
	}
}

// Variables that are only substituted when set to a non-empty value.
var optionalEnv = []string{"BROWSER", "EDITOR", "PLAYER"}

// Expander substitutes placeholders using the process environment and the
// local clock.
type Expander struct {
	lookupEnv func(string) (string, bool)
	now       func() time.Time
}

// Option configures an Expander.
type Option func(*Expander)

// WithEnv replaces the environment lookup, os.LookupEnv by default.
func WithEnv(lookup func(string) (string, bool)) Option {
	return func(e *Expander) { e.lookupEnv = lookup }
}

// WithClock replaces the clock, time.Now by default.
func WithClock(now func() time.Time) Option {
	return func(e *Expander) { e.now = now }
}

// New creates an Expander.
func New(opts ...Option) *Expander {
	e := &Expander{
		lookupEnv: os.LookupEnv,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Expand replaces every occurrence of the placeholders in vars, then of
// the common time and environment placeholders, in tmpl. The second pass
// only sees template text, never a value inserted by the first.
func (e *Expander) Expand(tmpl string, vars Vars) string {
	common := replacer(e.common())

	var b strings.Builder
	for _, seg := range split(tmpl, vars) {
		if seg.value {
			b.WriteString(seg.text)
			continue
		}
		b.WriteString(common.Replace(seg.text))
	}
	return b.String()
}

// segment is a piece of an expanded template: either template text or a
// substituted value.
type segment struct {
	text  string
	value bool
}

// split substitutes vars into tmpl left to right and returns the result
// as alternating template text and values.
func split(tmpl string, vars Vars) []segment {
	var segs []segment
	last := 0
	for i := 0; i < len(tmpl); i++ {
		if tmpl[i] != ':' {
			continue
		}
		name, ok := placeholderAt(tmpl[i:], vars)
		if !ok {
			continue
		}
		if i > last {
			segs = append(segs, segment{text: tmpl[last:i]})
		}
		segs = append(segs, segment{text: vars[name], value: true})
		last = i + len(name) + 2
		i = last - 1
	}
	if last < len(tmpl) {
		segs = append(segs, segment{text: tmpl[last:]})
	}
	return segs
}

// placeholderAt reports the name in vars whose placeholder starts s.
// Names contain no colon, so at most one can match.
func placeholderAt(s string, vars Vars) (string, bool) {
	end := strings.IndexByte(s[1:], ':')
	if end < 0 {
		return "", false
	}
	name := s[1 : end+1]
	_, ok := vars[name]
	return name, ok
}

func replacer(vars Vars) *strings.Replacer {
	names := make([]string, 0, len(vars))
	for k := range vars {
		names = append(names, k)
	}
	sort.Strings(names)

	pairs := make([]string, 0, 2*len(names))
	for _, name := range names {
		pairs = append(pairs, ":"+name+":", vars[name])
	}
	return strings.NewReplacer(pairs...)
}

func (e *Expander) common() Vars {
	now := e.now().Local()
	vars := Vars{
		"timestamp": now.Format("20060102-150405"),
		"year":      now.Format("2006"),
		"month":     now.Format("01"),
		"day":       now.Format("02"),
		"time":      now.Format("150405"),
		"home":      e.getenv("HOME"),
		"user":      e.getenv("USER"),
	}
	for _, key := range optionalEnv {
		if v := e.getenv(key); v != "" {
			vars[strings.ToLower(key)] = v
		}
	}
	return vars
}

func (e *Expander) getenv(key string) string {
	v, _ := e.lookupEnv(key)
	return v
}

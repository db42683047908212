// Package deeplink encodes and decodes editor deep links.
//
// A deep link has the shape <basePath>?<filePath>#<start>,<end>. The query
// component is the raw file path (no escaping) and the optional fragment is a
// comma-separated two-integer selection range.
package deeplink

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/bnema/crumbtrail/internal/domain/entity"
)

// DefaultBasePath is used when no base path is configured.
const DefaultBasePath = "/"

// ErrMalformedFragment is returned when the fragment is not a start,end pair.
// The path part of the link is still returned alongside it.
var ErrMalformedFragment = errors.New("malformed selection fragment")

// ErrEmptyPath is returned when the link does not name a file.
var ErrEmptyPath = errors.New("deep link has no file path")

// Link is a decoded deep link.
type Link struct {
	FilePath  string
	Selection *entity.Selection
}

// Format builds the deep link for filePath and an optional selection.
func Format(basePath, filePath string, sel *entity.Selection) string {
	if basePath == "" {
		basePath = DefaultBasePath
	}
	var b strings.Builder
	b.Grow(len(basePath) + len(filePath) + 16)
	b.WriteString(basePath)
	b.WriteByte('?')
	b.WriteString(filePath)
	if sel != nil {
		b.WriteByte('#')
		b.WriteString(FormatRange(*sel))
	}
	return b.String()
}

// FormatRange renders a selection as "start,end".
func FormatRange(sel entity.Selection) string {
	return strconv.Itoa(sel.Start) + "," + strconv.Itoa(sel.End)
}

// Parse decodes a deep link or a bare "path#start,end" reference.
//
// Everything up to and including the first '?' is dropped. When the fragment
// cannot be parsed the returned Link still carries the path and the error
// wraps ErrMalformedFragment.
func Parse(raw string) (Link, error) {
	ref := strings.TrimSpace(raw)
	if idx := strings.IndexByte(ref, '?'); idx != -1 {
		ref = ref[idx+1:]
	}

	var link Link
	fragment, hasFragment := "", false
	if idx := strings.IndexByte(ref, '#'); idx != -1 {
		fragment, hasFragment = ref[idx+1:], true
		ref = ref[:idx]
	}
	link.FilePath = ref
	if link.FilePath == "" {
		return link, ErrEmptyPath
	}

	if !hasFragment || strings.TrimSpace(fragment) == "" {
		return link, nil
	}

	sel, err := ParseRange(fragment)
	if err != nil {
		return link, err
	}
	link.Selection = sel
	return link, nil
}

// ParseRange decodes a "start,end" fragment.
func ParseRange(fragment string) (*entity.Selection, error) {
	parts := strings.Split(fragment, ",")
	if len(parts) != 2 {
		return nil, fmt.Errorf("%w: %q", ErrMalformedFragment, fragment)
	}
	start, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrMalformedFragment, fragment)
	}
	end, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrMalformedFragment, fragment)
	}
	return entity.NewSelection(start, end), nil
}

package customs

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Issue codes (exported consts for IDE completion and type safety by convention)
const (
	CodeInvalidType     = "invalid_type"
	CodeRequired        = "required"
	CodeInvalidEnum     = "invalid_enum"
	CodeConversionInput = "conversion_input"
	CodeUnionNoMatch    = "union_no_match"
	CodeDuplicateKey    = "duplicate_key"
	CodeParseError      = "parse_error"
	CodeTruncated       = "truncated"
)

// ErrRejected matches every decode failure via errors.Is.
var ErrRejected = errors.New("customs: value rejected")

// Issue represents a single validation entry.
type Issue struct {
	Path    string // JSON Pointer (for example: /board/2).
	Code    string // One of the codes listed above.
	Message string
	Hint    string // Optional: remediation hints, enum members, etc.
	Cause   error  // Optional: underlying error.
	// Params carries structured parameters (e.g., {"expected":"string","got":"number"})
	// for i18n and tests.
	Params map[string]any
}

// Issues is a collection of validation errors that implements error.
type Issues []Issue

// Error summarizes the first few issues.
func (iss Issues) Error() string {
	if len(iss) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	n := len(iss)
	lim := n
	if lim > maxShown {
		lim = maxShown
	}
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		it := iss[i]
		// e.g. invalid_type at /path
		fmt.Fprintf(b, "%s at %s", it.Code, it.Path)
	}
	if n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

// Is lets errors.Is(err, ErrRejected) match any non-empty Issues.
func (iss Issues) Is(target error) bool { return target == ErrRejected && len(iss) > 0 }

// Codes lists the issue codes in order; handy for tests and logs.
func (iss Issues) Codes() []string {
	out := make([]string, 0, len(iss))
	for _, it := range iss {
		out = append(out, it.Code)
	}
	return out
}

// AppendIssues appends issues to the destination, initializing the slice when
// needed.
func AppendIssues(dst Issues, more ...Issue) Issues {
	if dst == nil {
		dst = Issues{}
	}
	dst = append(dst, more...)
	return dst
}

// AsIssues extracts Issues from an error using errors.As internally.
func AsIssues(err error) (Issues, bool) {
	if err == nil {
		return nil, false
	}
	var iss Issues
	if errors.As(err, &iss) {
		return iss, true
	}
	return nil, false
}

// Rebase prefixes every issue path with the given pointer segment so that a
// child's "/" becomes base. Paths are rewritten on a copy.
func Rebase(base string, child Issues) Issues {
	if len(child) == 0 {
		return nil
	}
	out := make(Issues, 0, len(child))
	for _, it := range child {
		p := it.Path
		switch {
		case p == "" || p == "/":
			p = base
		case p[0] == '/':
			p = base + p
		default:
			p = base + "/" + p
		}
		it.Path = p
		out = append(out, it)
	}
	return out
}

// FieldPointer returns the JSON Pointer segment for an object key ("/key"),
// escaping '~' and '/' per RFC 6901.
func FieldPointer(key string) string {
	return "/" + strings.ReplaceAll(strings.ReplaceAll(key, "~", "~0"), "/", "~1")
}

// IndexPointer returns the JSON Pointer segment for an array index ("/3").
func IndexPointer(i int) string { return "/" + strconv.Itoa(i) }

func singleIssue(code, msg string) Issues { return AppendIssues(nil, Issue{Code: code, Path: "/", Message: msg}) }

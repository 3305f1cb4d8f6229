package logging

import (
	"github.com/felixgeelhaar/bolt/v3"

	"github.com/fishbait/customs"
)

// Field is a function that applies structured data to a log event.
type Field func(*bolt.Event) *bolt.Event

// Schema adds the schema name being checked.
func Schema(name string) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Str("schema", name)
	}
}

// Input adds the input name (a path or "-").
func Input(name string) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Str("input", name)
	}
}

// Driver adds the JSON driver name.
func Driver(name string) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Str("driver", name)
	}
}

// IssueCount adds the number of issues.
func IssueCount(n int) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Int("issues", n)
	}
}

// Issue adds the pointer and code of a single issue.
func Issue(iss customs.Issue) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Str("path", iss.Path).Str("code", iss.Code)
	}
}

// Apply runs fields over e in order.
func Apply(e *bolt.Event, fields ...Field) *bolt.Event {
	for _, f := range fields {
		e = f(e)
	}
	return e
}

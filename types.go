package customs

// NumberMode dictates how numbers are materialized when a Source builds the
// untyped tree. The Number agent accepts both representations.
type NumberMode int

const (
	NumberJSONNumber NumberMode = iota // Preserve json.Number (default).
	NumberFloat64                      // Round to float64.
)

// Strictness configures enforcement for duplicate keys.
type Strictness struct {
	OnDuplicateKey Severity // Ignore, Warn or Error (duplicate JSON keys).
}

// Severity expresses the severity level for issues.
type Severity int

const (
	Ignore Severity = iota
	Warn
	Error
)

// ParseOpt bundles options for the Source-driven entry points.
type ParseOpt struct {
	Strictness Strictness
	MaxDepth   int
	MaxBytes   int64
	FailFast   bool
}

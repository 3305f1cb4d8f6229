// Package agents provides the composable agents of customs.
//
// Overview
//   - Primitives: String(), Number(), Bool(), Null() accept exactly their JSON kind.
//   - Unions: Union(l, r) for heterogeneous alternatives, OneOf(l, r) when both
//     sides stamp the same Go type, Nullable(a) for "null or a".
//   - Containers: Array(item) and Object(Shape{...}) rewrite their children and
//     rebase child issue paths (/board/2, /lastAction/0/action).
//   - Enum(values...) / EnumMap(m): closed sets of string literals.
//   - Unsnake(obj): renames top-level snake_case keys to camelCase before obj sees them.
//   - Conversion(in, convert, out): transforms an in-shaped value into an out-shaped one.
//   - Bind[S](a): stamps a into a struct S through its JSON tags.
//
// Semantics
//   - Rewrite is pure and idempotent on conforming values; unowned values pass
//     through untouched and whole-container failures never leak partial results.
//   - Verify never assumes Rewrite ran. Explain is nil exactly when Verify is true.
//   - Union is left-biased: the left alternative wins whenever both match.
//   - Object field absence is always a "required" issue; Nullable only admits
//     an explicit null.
//   - Conversion.Decode checks the raw input against in before converting
//     ("conversion_input" otherwise) and the result against out. Inside a
//     container the conversion is driven by Rewrite/Verify, which also accepts
//     values that are already out-shaped.
//
// Agents are immutable after construction and safe for concurrent use.
//
// Example
//
//	board := agents.Array(agents.Conversion(
//	    agents.Nullable(agents.Number()),
//	    func(id *float64) *string { ... },
//	    agents.Nullable(agents.String()),
//	))
//	cards, err := board.Decode(ctx, []any{0.0, nil, 5.0})
package agents

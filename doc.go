// Package customs inspects untyped values at a decoding boundary and stamps
// them as typed values when they conform to a declared shape.
//
// - Agents (see package agents) describe one shape each and compose into a schema tree
// - Decode runs Rewrite -> Verify -> Project and reports Issues on failure
// - A stable error model via Issues (JSON Pointer, code, message, expected/got)
// - Source adapters build the untyped tree from JSON tokens with duplicate-key/depth/size enforcement
//
// Design policy:
// - Keep only public APIs in the root package; put detailed implementations under internal/.
// - Agent implementations live under agents/, input drivers under source/, the CLI under cmd/customs.
// - Agents hold no mutable state and never perform I/O.
//
// Typical usage:
//
//	state := agents.Unsnake(agents.Object(agents.Shape{
//	    "bigBlind": agents.Number(),
//	    "round":    agents.Enum("Preflop", "Flop", "Turn", "River"),
//	}))
//	v, err := customs.DecodeFrom(ctx, state, customs.JSONBytes(body))
//	v2, ok := customs.SafeDecode(ctx, state, alreadyDecodedJSON)
package customs

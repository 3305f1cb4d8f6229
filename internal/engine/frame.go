package engine

// KeyTracker tells object keys apart from string values for token-level
// decoders (encoding/json and go-json both report keys as plain strings).
type KeyTracker struct {
	stack []frame
}

type frame struct {
	object       bool
	expectingKey bool
}

// Open records the start of an object or array.
func (t *KeyTracker) Open(object bool) {
	t.stack = append(t.stack, frame{object: object, expectingKey: object})
}

// Close pops the innermost container; the enclosing object, if any, then
// expects its next key.
func (t *KeyTracker) Close() {
	if n := len(t.stack); n > 0 {
		t.stack = t.stack[:n-1]
	}
	t.valueDone()
}

// String classifies a string token as KindKey or KindString.
func (t *KeyTracker) String() Kind {
	if n := len(t.stack); n > 0 {
		top := &t.stack[n-1]
		if top.object && top.expectingKey {
			top.expectingKey = false
			return KindKey
		}
	}
	t.valueDone()
	return KindString
}

// Scalar records a non-string scalar value.
func (t *KeyTracker) Scalar() { t.valueDone() }

func (t *KeyTracker) valueDone() {
	if n := len(t.stack); n > 0 {
		top := &t.stack[n-1]
		if top.object && !top.expectingKey {
			top.expectingKey = true
		}
	}
}

package jsonurl

// frameKind tags a [resultBuilder] stack frame.
type frameKind int

const (
	frameArray frameKind = iota
	frameObject
)

// frame is one level of composite nesting under construction.
type frame[V any] struct {
	arr ArrayBuilder[V]
	obj ObjectBuilder[V]
	key string
	kind frameKind
}

// resultBuilder implements the stack-based assembly the parser drives: the
// parser pushes a frame on '(' after an array/object is recognized, routes
// each parsed leaf or completed composite into the current frame, and pops
// on ')'. The zero value is not usable; use newResultBuilder.
type resultBuilder[V any] struct {
	vf        ValueFactory[V]
	stack     []frame[V]
	result    V
	have      bool
	skipNulls bool
}

func newResultBuilder[V any](vf ValueFactory[V], skipNulls bool) *resultBuilder[V] {
	return &resultBuilder[V]{vf: vf, skipNulls: skipNulls}
}

// depth is the current composite nesting depth, for limit enforcement.
func (b *resultBuilder[V]) depth() int {
	return len(b.stack)
}

// pushArray opens a new array frame.
func (b *resultBuilder[V]) pushArray() {
	b.stack = append(b.stack, frame[V]{kind: frameArray, arr: b.vf.NewArrayBuilder()})
}

// pushObject opens a new object frame.
func (b *resultBuilder[V]) pushObject() {
	b.stack = append(b.stack, frame[V]{kind: frameObject, obj: b.vf.NewObjectBuilder()})
}

// setKey records the key the next value will be stored under, for the
// frame currently on top of the stack (which must be an object frame).
func (b *resultBuilder[V]) setKey(key string) {
	b.stack[len(b.stack)-1].key = key
}

// addValue routes v into the current frame (as the next array element, or
// as the value for the most recently set key), or -- if the stack is empty
// -- sets v as the final parse result. Under [SkipNulls] a null v is
// dropped rather than added to a composite frame (a single-element array
// or a key's value alike) -- a single-element array of just null therefore
// builds as the empty array, matching the writer's own SkipNulls omission.
func (b *resultBuilder[V]) addValue(v V) {
	if len(b.stack) == 0 {
		b.result = v
		b.have = true

		return
	}

	if b.skipNulls && b.vf.IsNull(v) {
		return
	}

	top := &b.stack[len(b.stack)-1]

	switch top.kind {
	case frameArray:
		top.arr.Add(v)
	case frameObject:
		top.obj.Add(top.key, v)
	}
}

// closeComposite pops the top frame, builds its V, and routes it into the
// new top frame (or sets it as the result if the stack is now empty).
func (b *resultBuilder[V]) closeComposite() {
	n := len(b.stack)
	top := b.stack[n-1]
	b.stack = b.stack[:n-1]

	var v V

	switch top.kind {
	case frameArray:
		v = top.arr.Build()
	case frameObject:
		v = top.obj.Build()
	}

	b.addValue(v)
}

// topIsObject reports whether the frame on top of the stack is an object,
// for the parser to decide which structural characters are legal next.
func (b *resultBuilder[V]) topIsObject() bool {
	return len(b.stack) > 0 && b.stack[len(b.stack)-1].kind == frameObject
}

// topIsArray reports whether the frame on top of the stack is an array.
func (b *resultBuilder[V]) topIsArray() bool {
	return len(b.stack) > 0 && b.stack[len(b.stack)-1].kind == frameArray
}

// finish returns the completed top-level value. ok is false if nothing was
// ever assembled (an empty document).
func (b *resultBuilder[V]) finish() (V, bool) {
	return b.result, b.have
}

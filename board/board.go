package board

// Size records the dimensions a canvas was created with. The values are
// carried verbatim: the canvas never interprets them and never enforces a
// capacity derived from them.
//
//	Docs: docs/board.md
type Size struct {
	Width  int
	Height int
}

// Element is a single drawable item held by a [Canvas]. Elements are opaque
// to this package; callers own their shape and rendering.
type Element = any

// Canvas is an ordered in-memory collection of drawable elements.
//
// A Canvas is a plain value holder. It performs no validation on appended
// elements and is not safe for concurrent use; callers that share a Canvas
// across goroutines must provide their own coordination.
//
//	Docs: docs/board.md
type Canvas struct {
	size     Size
	elements []Element
}

// New creates an empty [Canvas] with the given size. The size is recorded
// as provided; zero and negative dimensions are accepted.
func New(size Size) *Canvas {
	return &Canvas{size: size}
}

// Size returns the dimensions the canvas was created with.
func (c *Canvas) Size() Size {
	return c.size
}

// AddElement appends el to the canvas, preserving insertion order. The
// element is not inspected and no capacity check is made against the size.
func (c *Canvas) AddElement(el Element) {
	c.elements = append(c.elements, el)
}

// Clear removes all elements. The size is retained.
func (c *Canvas) Clear() {
	c.elements = nil
}

// Len returns the number of elements currently on the canvas.
func (c *Canvas) Len() int {
	return len(c.elements)
}

// Elements returns a copy of the canvas contents in insertion order.
// Mutating the returned slice does not affect the canvas. An empty canvas
// returns nil.
func (c *Canvas) Elements() []Element {
	if len(c.elements) == 0 {
		return nil
	}
	out := make([]Element, len(c.elements))
	copy(out, c.elements)
	return out
}

// DisplayConfig returns the client display settings for board rendering.
// The map is built fresh on every call and is independent of any Canvas
// instance; callers may mutate the returned map freely.
//
//	Docs: docs/board.md
func DisplayConfig() map[string]any {
	return map[string]any{
		"theme": "gruvbox",
		"grid":  true,
	}
}

package record

// Shape is the decoded content of a "shape" tag: a paint kind and an
// ordered list of components.
type Shape struct {
	Kind       string
	Components []Component
}

// Shape kind values. The format may carry other kinds this decoder does
// not interpret specially; Kind is stored verbatim regardless.
const (
	ShapeFill   = "fill"
	ShapeStroke = "stroke"
	ShapeLine   = "line"
)

// Component is the decoded content of a "component" tag: an info record,
// the path it paints, and an optional thickness profile for strokes.
type Component struct {
	Info      Info
	Path      Path
	Thickness *Thickness
}

// Info is the decoded content of a "info" tag. ColorID is nil when the
// source word carried the format's absent-reference sentinel.
type Info struct {
	ColorID *int64
}

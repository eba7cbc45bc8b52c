package record

// Main is the decoded content of a file's single "main" tag: a palette,
// the four fixed compositing layers in canonical painting order, and an
// optional nested identity tag.
//
// The four layers are held positionally (see LayerUnderlay etc.) rather
// than in source order: §3's layer-ordering invariant requires the
// emitted document to list them underlay/color/line/overlay regardless
// of the order their tags appeared on the wire.
type Main struct {
	Palette  Palette
	Layers   [4]Layer
	Identity *Identity

	// UnresolvedColorIDs lists, in first-seen order, every color id an
	// "info" tag referenced that the palette does not define. Per §3 this
	// is not an error; callers get the list instead of having to re-walk
	// the tree looking for dangling references.
	UnresolvedColorIDs []uint64
}

// Layer index positions within Main.Layers.
const (
	LayerUnderlay = iota
	LayerColor
	LayerLine
	LayerOverlay
)

// Palette is the decoded content of a "palette" tag: an ordered list of
// color entries.
//
// HasNameCollision reports whether two display names in this palette
// hashed to the same value despite being different strings. Colors still
// resolve by numeric id regardless, so this is a diagnostic, not an
// error, carried the same way NumericExtreme is.
type Palette struct {
	Colors           []Color
	HasNameCollision bool
}

// Color is one palette entry. It always carries a color id and an RGBA
// value; any tag beyond those two is preserved in Unknown, in order.
type Color struct {
	ID      ColorID
	RGBA    RGBA
	Unknown []Record
}

// ColorID is the content of a "color_id" tag: a numeric id plus the two
// human-readable names the format stores alongside it.
type ColorID struct {
	ID      int64
	Palette string
	Name    string
}

// RGBA is the content of a "color_rgba" tag: four raw bytes.
type RGBA struct {
	R, G, B, A byte
}

// Layer is the decoded content of one of the four layer tags.
//
// Present distinguishes a layer tag that was absent from the source file
// (zero value, nothing to paint) from one that was present with an empty
// shape list.
type Layer struct {
	Present bool
	Kind    string
	Shapes  []Shape
}

// Package tags defines the per-context tag identifiers and wire-width
// constants the dispatcher uses to frame records, plus the generic
// dispatch loop structural decoders drive.
//
// Tag id and length field widths are not uniform across the container:
// a root-level record can span most of the file, while a palette color's
// fields are a handful of bytes. Each context gets its own named widths
// here rather than a single generic scheme, per the container's
// per-call-site framing.
package tags

// Width is the byte width of a tag id or length field.
type Width int

const (
	Width1 Width = 1
	Width2 Width = 2
	Width4 Width = 4
)

// Context groups the tag id width and length width that apply to one
// nesting level of the container.
type Context struct {
	IDWidth     Width
	LengthWidth Width
}

var (
	// Root is the file envelope's top-level tag context: few records, but
	// "main" can span nearly the whole file.
	Root = Context{IDWidth: Width1, LengthWidth: Width4}

	// MainCtx frames the fixed record set inside a "main" tag: palette,
	// the four layers, and an optional identity.
	MainCtx = Context{IDWidth: Width1, LengthWidth: Width4}

	// PaletteCtx frames the "color" entries inside a palette.
	PaletteCtx = Context{IDWidth: Width1, LengthWidth: Width2}

	// ColorCtx frames the tags inside one color entry (color_id,
	// color_rgba): small, fixed-shape payloads.
	ColorCtx = Context{IDWidth: Width1, LengthWidth: Width1}

	// ShapeListCtx frames the "shape" records inside a vector layer.
	ShapeListCtx = Context{IDWidth: Width1, LengthWidth: Width4}

	// ComponentListCtx frames the "component" records inside a shape.
	ComponentListCtx = Context{IDWidth: Width1, LengthWidth: Width4}

	// ComponentCtx frames the tags inside one component (info, path,
	// optional thickness): path payloads can be large, so this context
	// takes the widest length field alongside the smallest tags.
	ComponentCtx = Context{IDWidth: Width1, LengthWidth: Width4}
)

// Root-level tag ids.
const (
	TagMain        byte = 0x01
	TagCertificate byte = 0x02
	TagIdentity    byte = 0x03
	TagSignature   byte = 0x04
)

// Main-level tag ids.
const (
	TagPalette        byte = 0x01
	TagLayerUnderlay  byte = 0x02
	TagLayerColor     byte = 0x03
	TagLayerLine      byte = 0x04
	TagLayerOverlay   byte = 0x05
	TagMainIdentity   byte = 0x06
)

// Palette-level tag id.
const TagColor byte = 0x01

// Color-level tag ids.
const (
	TagColorID   byte = 0x01
	TagColorRGBA byte = 0x02
)

// Shape-list-level tag id.
const TagShape byte = 0x01

// Component-list-level tag id.
const TagComponent byte = 0x01

// Component-level tag ids.
const (
	TagInfo      byte = 0x01
	TagPath      byte = 0x02
	TagThickness byte = 0x03
)

// Layer and shape kind discriminators, read as a single leading byte of
// their payload ahead of any nested tag records.
const (
	LayerKindVector byte = 0x01

	ShapeKindFill   byte = 0x01
	ShapeKindStroke byte = 0x02
	ShapeKindLine   byte = 0x03
)

// InfoAbsentColorID is the sentinel value meaning a component's info
// record carries no color reference.
const InfoAbsentColorID uint32 = 0xFFFFFFFF

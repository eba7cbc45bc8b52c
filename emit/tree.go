package emit

import "github.com/inkbound/tvg/record"

// node builds one {type, content} entry: the only shape every serialized
// value takes, per the boundary format's recursive record tree.
func node(typ string, content any) map[string]any {
	return map[string]any{"type": typ, "content": content}
}

// tree converts a decoded document into the plain map/slice/primitive
// shape the boundary encoder serializes, recursively rebuilding every
// typed domain struct as a {type, content} record instead of relying on
// msgpack's reflection over Go field names.
func tree(f *record.File) any {
	records := make([]any, len(f.Records))
	for i, r := range f.Records {
		records[i] = recordNode(r)
	}

	diagnostics := make([]any, len(f.Diagnostics))
	for i, d := range f.Diagnostics {
		diagnostics[i] = map[string]any{"word": d.Word, "reason": d.Reason}
	}

	return node("file", map[string]any{"records": records, "diagnostics": diagnostics})
}

func recordNode(r record.Record) any {
	return node(r.Type, contentTree(r.Content))
}

func contentTree(content any) any {
	switch v := content.(type) {
	case record.Main:
		return mainTree(v)
	case record.Palette:
		return paletteTree(v)
	case record.Layer:
		return layerTree(v)
	case record.Shape:
		return shapeTree(v)
	case record.Component:
		return componentTree(v)
	case record.Info:
		return infoTree(v)
	case record.Path:
		return pathTree(v)
	case record.Thickness:
		return thicknessTree(v)
	case record.Identity:
		return map[string]any{"text": v.Text}
	case record.Certificate:
		return map[string]any{"bytes": v.Bytes}
	case record.Signature:
		return map[string]any{"bytes": v.Bytes}
	case record.Unknown:
		return map[string]any{"id": v.ID, "bytes": v.Bytes}
	default:
		return v
	}
}

var layerTagTypes = [4]string{"layer_underlay", "layer_color", "layer_line", "layer_overlay"}

func mainTree(m record.Main) map[string]any {
	layers := make([]any, 0, len(m.Layers))
	for i, l := range m.Layers {
		if !l.Present {
			continue
		}
		layers = append(layers, node(layerTagTypes[i], layerTree(l)))
	}

	out := map[string]any{
		"palette": node("palette", paletteTree(m.Palette)),
		"layers":  layers,
	}

	if m.Identity != nil {
		out["identity"] = node("identity", map[string]any{"text": m.Identity.Text})
	}

	if len(m.UnresolvedColorIDs) > 0 {
		out["unresolved_color_ids"] = m.UnresolvedColorIDs
	}

	return out
}

func paletteTree(p record.Palette) map[string]any {
	colors := make([]any, len(p.Colors))
	for i, c := range p.Colors {
		colors[i] = node("color", colorTree(c))
	}

	return map[string]any{"colors": colors, "has_name_collision": p.HasNameCollision}
}

func colorTree(c record.Color) map[string]any {
	unknown := make([]any, len(c.Unknown))
	for i, u := range c.Unknown {
		unknown[i] = recordNode(u)
	}

	return map[string]any{
		"color_id": node("color_id", map[string]any{
			"id":      c.ID.ID,
			"palette": c.ID.Palette,
			"name":    c.ID.Name,
		}),
		"color_rgba": node("color_rgba", map[string]any{
			"r": c.RGBA.R,
			"g": c.RGBA.G,
			"b": c.RGBA.B,
			"a": c.RGBA.A,
		}),
		"unknown": unknown,
	}
}

func layerTree(l record.Layer) map[string]any {
	shapes := make([]any, len(l.Shapes))
	for i, s := range l.Shapes {
		shapes[i] = node("shape", shapeTree(s))
	}

	return map[string]any{"kind": l.Kind, "shapes": shapes}
}

func shapeTree(s record.Shape) map[string]any {
	components := make([]any, len(s.Components))
	for i, c := range s.Components {
		components[i] = node("component", componentTree(c))
	}

	return map[string]any{"kind": s.Kind, "components": components}
}

func componentTree(c record.Component) map[string]any {
	out := map[string]any{
		"info": node("info", infoTree(c.Info)),
		"path": node("path", pathTree(c.Path)),
	}

	if c.Thickness != nil {
		out["thickness"] = node("thickness", thicknessTree(*c.Thickness))
	}

	return out
}

func infoTree(i record.Info) map[string]any {
	if i.ColorID == nil {
		return map[string]any{"color_id": nil}
	}

	return map[string]any{"color_id": *i.ColorID}
}

// pathTree lays out a path's segments per §4.4: each line segment is
// {type: "line", content: (x, y)}, each cubic segment is
// {type: "cubic", content: [(x1,y1),(x2,y2),(x3,y3)]}. The implicit
// leading anchor point isn't part of any segment's own content, so it is
// carried alongside the segment list rather than folded into it.
func pathTree(p record.Path) map[string]any {
	segments := make([]any, len(p.Segments))
	for i, seg := range p.Segments {
		segments[i] = segmentNode(seg)
	}

	return map[string]any{"start": pointTuple(p.Start), "segments": segments}
}

func segmentNode(s record.Segment) any {
	if s.Kind == record.Cubic {
		points := make([]any, len(s.Points))
		for i, p := range s.Points {
			points[i] = pointTuple(p)
		}
		return node("cubic", points)
	}

	return node("line", pointTuple(s.Points[0]))
}

func pointTuple(p record.Point) [2]float64 {
	return [2]float64{p.X, p.Y}
}

func thicknessTree(t record.Thickness) map[string]any {
	points := make([]any, len(t.Points))
	for i, p := range t.Points {
		points[i] = map[string]any{
			"loc":   p.Loc,
			"left":  edgeTree(p.Left),
			"right": edgeTree(p.Right),
		}
	}

	return map[string]any{
		"domain_start": t.DomainStart,
		"domain_end":   t.DomainEnd,
		"points":       points,
	}
}

func edgeTree(e record.Edge) map[string]any {
	return map[string]any{
		"offset":    pointTuple(e.Offset),
		"ctrl_back": pointTuple(e.CtrlBack),
		"ctrl_fwd":  pointTuple(e.CtrlFwd),
	}
}

package ui

import (
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Engine resolves node styles from a stylesheet and draws nodes with raylib. Styles are cached per
// (type, class, id) and recomputed only when the sheet changes.
type Engine struct {
	sheet  *Stylesheet
	styles map[styleKey]ComputedStyle
}

type styleKey struct{ typ, class, id string }

// New creates an engine with no stylesheet; every node gets DefaultComputedStyle.
func New() *Engine {
	return &Engine{styles: make(map[styleKey]ComputedStyle)}
}

// LoadCSS loads and parses a CSS file from path. Replaces the current stylesheet.
func (e *Engine) LoadCSS(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	sheet, err := ParseCSS(string(data))
	if err != nil {
		return err
	}
	e.SetStylesheet(sheet)
	return nil
}

// SetStylesheet sets the stylesheet directly (e.g. from embedded CSS).
func (e *Engine) SetStylesheet(sheet *Stylesheet) {
	e.sheet = sheet
	clear(e.styles)
}

// Stylesheet returns the current stylesheet (may be nil).
func (e *Engine) Stylesheet() *Stylesheet {
	return e.sheet
}

// Style returns the computed style for a node's type, class and id. Type rules apply first, then
// class, then id; within a level the later rule wins.
func (e *Engine) Style(typ, class, id string) ComputedStyle {
	key := styleKey{typ, class, id}
	if s, ok := e.styles[key]; ok {
		return s
	}
	var selectors []string
	if typ != "" {
		selectors = append(selectors, typ)
	}
	if class != "" {
		selectors = append(selectors, "."+class)
	}
	if id != "" {
		selectors = append(selectors, "#"+id)
	}
	merged := make(map[string]string)
	if e.sheet != nil {
		for _, want := range selectors {
			for _, rule := range e.sheet.Rules {
				if rule.Selector != want {
					continue
				}
				for k, v := range rule.Props {
					merged[k] = v
				}
			}
		}
	}
	s := ResolveProps(merged)
	e.styles[key] = s
	return s
}

// NodeStyle is Style for n.
func (e *Engine) NodeStyle(n *Node) ComputedStyle {
	return e.Style(n.Type, n.Class, n.ID)
}

// Draw draws nodes in order: background, border, text, then slider track, fill and value.
func (e *Engine) Draw(nodes []*Node) {
	for _, n := range nodes {
		style := e.NodeStyle(n)
		x, y := int32(n.Bounds.X), int32(n.Bounds.Y)
		w, h := int32(n.Bounds.Width), int32(n.Bounds.Height)

		if n.Type != "slider" && style.Background.A > 0 {
			rl.DrawRectangle(x, y, w, h, style.Background)
		}
		if style.HasBorder && w > 0 && h > 0 {
			rl.DrawRectangleLines(x, y, w, h, style.Border)
		}
		if n.Text != "" {
			textY := y + (h-style.FontSize)/2
			rl.DrawText(n.Text, x+style.Padding, textY, style.FontSize, style.Color)
		}
		if n.Type == "slider" && n.Track.Width > 0 {
			e.drawSlider(n, style)
		}
	}
}

func (e *Engine) drawSlider(n *Node, style ComputedStyle) {
	t := n.Track
	rl.DrawRectangleRec(t, style.Background)
	fill := t
	fill.Width = t.Width * min(max(n.Fill, 0), 1)
	rl.DrawRectangleRec(fill, style.Accent)
	if n.Value != "" {
		tw := rl.MeasureText(n.Value, style.FontSize)
		tx := int32(t.X + (t.Width-float32(tw))/2)
		ty := int32(t.Y + (t.Height-float32(style.FontSize))/2)
		rl.DrawText(n.Value, tx, ty, style.FontSize, style.Color)
	}
}

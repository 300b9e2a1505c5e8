package ui

import (
	_ "embed"
	"fmt"

	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"

	"noise-rooms/internal/material"
)

//go:embed panel.css
var panelCSS string

// DefaultStylesheet returns the embedded control panel sheet.
func DefaultStylesheet() *Stylesheet {
	sheet, err := ParseCSS(panelCSS)
	if err != nil {
		panic(err) // embedded sheet is fixed at build time
	}
	return sheet
}

const (
	rowGap     = 2
	scrollStep = 24
	trackSplit = 0.55 // fraction of a slider row given to its label
)

// Pointer is one frame of mouse state in screen pixels.
type Pointer struct {
	Pos     rl.Vector2
	Down    bool    // primary button held
	Pressed bool    // primary button went down this frame
	Wheel   float32 // scroll steps, positive is away from the user
}

type rowKind int

const (
	rowTitle rowKind = iota
	rowHeader
	rowSubheader
	rowSlider
)

type row struct {
	key     string
	kind    rowKind
	node    *Node
	open    *bool
	field   material.Field
	channel int // color channel for Color fields, else -1
}

var channelNames = [3]string{"R", "G", "B"}

// Panel is the noise control window: a collapsible header per room, a collapsible header per
// object, and one slider per field (three for a color). Sliders write through the store's field
// descriptors, so edits clamp to each field's range and are visible to the next rendered frame.
type Panel struct {
	engine *Engine
	store  *material.Store

	root      *Node
	nodes     map[string]*Node
	open      map[string]*bool
	rows      []row
	visible   []*Node
	scroll    float32
	maxScroll float32
	active    string // key of the slider being dragged
}

// NewPanel returns a panel over store with every header collapsed.
func NewPanel(engine *Engine, store *material.Store) *Panel {
	return &Panel{
		engine: engine,
		store:  store,
		root:   NewNode("panel", "", "panel", ""),
		nodes:  make(map[string]*Node),
		open:   make(map[string]*bool),
	}
}

func (p *Panel) node(key, typ, text string) *Node {
	n, ok := p.nodes[key]
	if !ok {
		n = NewNode(typ, "", "", text)
		p.nodes[key] = n
	}
	n.Text = text
	return n
}

func (p *Panel) openState(key string) *bool {
	o, ok := p.open[key]
	if !ok {
		o = new(bool)
		p.open[key] = o
	}
	return o
}

// SetOpen expands or collapses a room header, or an object header when prim is non-nil.
func (p *Panel) SetOpen(room material.Room, prim *material.Primitive, open bool) {
	key := room.String()
	if prim != nil {
		key = material.Key{Primitive: *prim, Room: room}.String()
	}
	*p.openState(key) = open
}

// layout positions every row from the stylesheet, applies the scroll offset and collects the visible nodes.
func (p *Panel) layout(screenH float32) {
	ps := p.engine.NodeStyle(p.root)
	pad := float32(ps.Padding)
	x, top, w := float32(ps.Left), float32(ps.Top), float32(ps.Width)
	inner := w - 2*pad

	p.rows = p.rows[:0]
	y := p.place(row{key: "title", kind: rowTitle, node: p.node("title", "title", "Noise Controls")}, x+pad, top+pad, inner)
	contentTop := y
	y -= p.scroll

	for _, rp := range p.store.Rooms() {
		room := rp.Room()
		rk := room.String()
		roomOpen := p.openState(rk)
		y = p.place(row{key: rk, kind: rowHeader, open: roomOpen, node: p.node(rk, "header", headerText(*roomOpen, fmt.Sprintf("Room %d", int(room))))}, x+pad, y, inner)
		if !*roomOpen {
			continue
		}
		for _, set := range rp.Sets() {
			sk := set.Key().String()
			setOpen := p.openState(sk)
			y = p.place(row{key: sk, kind: rowSubheader, open: setOpen, node: p.node(sk, "subheader", headerText(*setOpen, set.Title()))}, x+pad, y, inner)
			if !*setOpen {
				continue
			}
			for _, f := range set.Fields() {
				if f.Kind != material.Color {
					key := sk + "." + f.Name
					y = p.place(row{key: key, kind: rowSlider, field: f, channel: -1, node: p.node(key, "slider", f.Label)}, x+pad, y, inner)
					continue
				}
				for ch, name := range channelNames {
					key := sk + "." + f.Name + "." + name
					y = p.place(row{key: key, kind: rowSlider, field: f, channel: ch, node: p.node(key, "slider", f.Label+" "+name)}, x+pad, y, inner)
				}
			}
		}
	}

	contentBottom := y + p.scroll
	maxH := max(screenH-top-pad, contentTop-top)
	height := min(contentBottom+pad-top, maxH)
	p.maxScroll = max(0, contentBottom+pad-top-maxH)
	p.scroll = min(p.scroll, p.maxScroll)
	p.root.Bounds = rl.Rectangle{X: x, Y: top, Width: w, Height: height}

	p.visible = append(p.visible[:0], p.root)
	bottom := top + height
	for _, r := range p.rows {
		b := r.node.Bounds
		if r.kind == rowTitle || (b.Y >= contentTop && b.Y+b.Height <= bottom) {
			p.visible = append(p.visible, r.node)
		}
	}
}

func headerText(open bool, title string) string {
	if open {
		return "- " + title
	}
	return "+ " + title
}

// place lays out r at (x, y) and returns the y of the next row.
func (p *Panel) place(r row, x, y, w float32) float32 {
	st := p.engine.NodeStyle(r.node)
	h := float32(st.Height)
	if h <= 0 {
		h = float32(st.FontSize + 2*st.Padding)
	}
	indent := float32(st.Indent)
	r.node.Bounds = rl.Rectangle{X: x + indent, Y: y, Width: w - indent, Height: h}
	if r.kind == rowSlider {
		b := r.node.Bounds
		r.node.Track = rl.Rectangle{X: b.X + b.Width*trackSplit, Y: b.Y + 1, Width: b.Width * (1 - trackSplit), Height: b.Height - 2}
		r.node.Fill, r.node.Value = sliderState(r.field, r.channel)
	}
	p.rows = append(p.rows, r)
	return y + h + rowGap
}

func sliderState(f material.Field, ch int) (float32, string) {
	var v float32
	var text string
	switch f.Kind {
	case material.Float:
		v, text = *f.F, fmt.Sprintf("%.3f", *f.F)
	case material.Int:
		v, text = float32(*f.I), fmt.Sprintf("%d", *f.I)
	case material.Color:
		v, text = f.C[ch], fmt.Sprintf("%.3f", f.C[ch])
	}
	if f.Max <= f.Min {
		return 0, text
	}
	return (v - f.Min) / (f.Max - f.Min), text
}

// Update applies one frame of pointer input: wheel scrolls, a press toggles a header or grabs a
// slider, and a held button drags the grabbed slider. It reports whether the panel consumed the pointer.
func (p *Panel) Update(ptr Pointer, screenH float32) bool {
	p.layout(screenH)
	over := Contains(p.root.Bounds, ptr.Pos)
	if over && ptr.Wheel != 0 {
		p.scroll = min(max(p.scroll-ptr.Wheel*scrollStep, 0), p.maxScroll)
		p.layout(screenH)
	}
	if !ptr.Down {
		p.active = ""
	}
	if ptr.Pressed && over {
		for _, r := range p.rows {
			if !p.isVisible(r.node) {
				continue
			}
			switch r.kind {
			case rowHeader, rowSubheader:
				if Contains(r.node.Bounds, ptr.Pos) {
					*r.open = !*r.open
					p.layout(screenH)
					return true
				}
			case rowSlider:
				if Contains(r.node.Track, ptr.Pos) {
					p.active = r.key
				}
			}
		}
	}
	if p.active != "" && ptr.Down {
		for _, r := range p.rows {
			if r.key == p.active {
				drag(r, ptr.Pos.X)
				break
			}
		}
		p.layout(screenH)
	}
	return over || p.active != ""
}

func (p *Panel) isVisible(n *Node) bool {
	for _, v := range p.visible {
		if v == n {
			return true
		}
	}
	return false
}

// drag sets the field from the pointer's position along the slider track.
func drag(r row, x float32) {
	t := r.node.Track
	if t.Width <= 0 {
		return
	}
	frac := min(max((x-t.X)/t.Width, 0), 1)
	f := r.field
	v := f.Min + frac*(f.Max-f.Min)
	if frac == 1 {
		v = f.Max
	}
	switch f.Kind {
	case material.Float:
		f.SetFloat(v)
	case material.Int:
		f.SetInt(int32(math32.Round(v)))
	case material.Color:
		c := *f.C
		c[r.channel] = v
		f.SetColor(c)
	}
}

// Dragging reports whether a slider is grabbed.
func (p *Panel) Dragging() bool { return p.active != "" }

// Nodes returns the nodes drawn by the last layout, panel first.
func (p *Panel) Nodes() []*Node { return p.visible }

// Draw lays out and draws the panel. Call after the 3D scene.
func (p *Panel) Draw(screenH float32) {
	p.layout(screenH)
	p.engine.Draw(p.visible)
}

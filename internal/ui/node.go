package ui

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Node is one laid-out UI element. Type is matched by bare CSS selectors ("slider"), Class by
// ".class" and ID by "#id". Sliders also carry a track rectangle, a fill fraction and a value label.
type Node struct {
	Type   string // "panel", "title", "header", "subheader", "slider"
	Class  string
	ID     string
	Bounds rl.Rectangle
	Text   string

	Track rl.Rectangle
	Fill  float32 // 0..1
	Value string
}

// NewNode creates a node with type and optional class, id, and text.
func NewNode(typ, class, id, text string) *Node {
	return &Node{Type: typ, Class: class, ID: id, Text: text}
}

// Contains reports whether p lies inside r (edges inclusive on the top-left, exclusive on the bottom-right).
func Contains(r rl.Rectangle, p rl.Vector2) bool {
	return p.X >= r.X && p.X < r.X+r.Width && p.Y >= r.Y && p.Y < r.Y+r.Height
}

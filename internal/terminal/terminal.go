package terminal

import (
	"strings"
	"unicode/utf8"

	"noise-rooms/internal/commands"
	"noise-rooms/internal/logger"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	BarHeight = 40
	prompt    = "> "
	fontSize  = 20
	padding   = 8
	// Number of log lines drawn above the input bar when the console is open.
	maxLinesOnScreen = 14
	lineHeight       = fontSize + 4
	maxLineLen       = 200
)

var (
	termBarColor    = rl.NewColor(40, 40, 40, 255)
	termLineColor   = rl.NewColor(80, 80, 80, 255)
	termChatBgColor = rl.NewColor(24, 24, 24, 240)
)

// Input is one frame of console keyboard input, gathered by the platform.
type Input struct {
	Toggle    bool   // toggle key went down this frame
	Text      string // characters typed or pasted this frame
	Backspace bool
	Enter     bool
	Recall    bool // history key went down: replace the buffer with the previous command
}

// Terminal is the diagnostic console: the log tail plus an input bar at the bottom of the screen.
// Every submitted line is run through the command registry; errors are logged.
type Terminal struct {
	log     *logger.Logger
	reg     *commands.Registry
	buf     string
	open    bool
	history []string
	recall  int
}

// New returns a closed console that logs to log and runs lines through reg.
func New(log *logger.Logger, reg *commands.Registry) *Terminal {
	return &Terminal{log: log, reg: reg}
}

// IsOpen reports whether the console is visible and capturing keyboard input.
func (t *Terminal) IsOpen() bool {
	return t.open
}

// Buffer returns the current input line.
func (t *Terminal) Buffer() string {
	return t.buf
}

// Update applies one frame of input. It reports whether the open state changed.
func (t *Terminal) Update(in Input) bool {
	toggled := false
	if in.Toggle {
		t.open = !t.open
		toggled = true
	}
	if !t.open || toggled {
		return toggled
	}
	t.buf += in.Text
	if in.Backspace && len(t.buf) > 0 {
		_, size := utf8.DecodeLastRuneInString(t.buf)
		t.buf = t.buf[:len(t.buf)-size]
	}
	if in.Recall && len(t.history) > 0 {
		if t.recall <= 0 {
			t.recall = len(t.history)
		}
		t.recall--
		t.buf = t.history[t.recall]
	}
	if in.Enter && t.buf != "" {
		line := t.buf
		t.buf = ""
		t.Submit(line)
	}
	return false
}

// Submit logs line and executes it as a command. Blank lines are ignored.
func (t *Terminal) Submit(line string) {
	line = strings.TrimSpace(line)
	if line == "" {
		return
	}
	t.log.Log(prompt + line)
	t.history = append(t.history, line)
	t.recall = 0
	args, err := commands.Parse(line)
	if err == nil && len(args) > 0 {
		err = t.reg.Execute(args)
	}
	if err != nil {
		t.log.Log(err.Error())
	}
}

// Draw draws the log tail and input bar when open.
func (t *Terminal) Draw(screenW, screenH int32) {
	if !t.open {
		return
	}
	barY := screenH - BarHeight

	chatHeight := int32(maxLinesOnScreen * lineHeight)
	chatY := barY - chatHeight
	if chatY < 0 {
		chatHeight = barY
		chatY = 0
	}
	if chatHeight > 0 {
		rl.DrawRectangle(0, chatY, screenW, chatHeight, termChatBgColor)
	}
	lines := t.log.Lines()
	start := max(len(lines)-maxLinesOnScreen, 0)
	for i := start; i < len(lines); i++ {
		y := chatY + int32((i-start)*lineHeight+padding)
		line := lines[i]
		if len(line) > maxLineLen {
			line = line[:maxLineLen-3] + "..."
		}
		rl.DrawText(line, padding, y, fontSize, rl.LightGray)
	}

	rl.DrawRectangle(0, barY, screenW, BarHeight, termBarColor)
	rl.DrawRectangle(0, barY, screenW, 1, termLineColor)
	rl.DrawText(prompt+t.buf+"|", padding, barY+padding, fontSize, rl.White)
}

package view

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"principles/internal/tui/design"
)

// Rows reserved outside the card: header, key hints, status bar.
const chromeRows = 3

// Rect is a screen region in cells, border included.
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether the cell (x, y) is inside r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// CardBounds is where the resting card is drawn for a terminal of the given
// size. The controller uses it to hit-test mouse events.
func CardBounds(width, height int) Rect {
	w := clampInt(width-4, design.CardMinWidth, design.CardMaxWidth)
	if w > width {
		w = width
	}
	avail := height - chromeRows
	h := clampInt(avail-2, design.CardMinHeight, design.CardMaxHeight)
	if h > avail {
		h = avail
	}
	if h < 0 {
		h = 0
	}
	x := (width - w) / 2
	y := 1 + maxInt(0, (avail-h)/2)
	return Rect{X: x, Y: y, W: w, H: h}
}

// WrapText word-wraps s to width display cells. Words wider than width are
// split. Existing newlines are kept.
func WrapText(s string, width int) []string {
	if width <= 0 {
		return nil
	}
	var lines []string
	for _, para := range strings.Split(s, "\n") {
		words := strings.Fields(para)
		if len(words) == 0 {
			lines = append(lines, "")
			continue
		}
		line := ""
		for _, w := range words {
			for runewidth.StringWidth(w) > width {
				if line != "" {
					lines = append(lines, line)
					line = ""
				}
				head := runewidth.Truncate(w, width, "")
				if head == "" {
					// a single rune wider than the line
					head = string([]rune(w)[:1])
				}
				lines = append(lines, head)
				w = w[len(head):]
			}
			switch {
			case w == "":
			case line == "":
				line = w
			case runewidth.StringWidth(line)+1+runewidth.StringWidth(w) <= width:
				line += " " + w
			default:
				lines = append(lines, line)
				line = w
			}
		}
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

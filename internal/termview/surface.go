// Package termview renders the particle simulation into a terminal cell grid.
package termview

import (
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/iburimskiy/particle-backdrop/internal/config"
)

// Surface pixels covered by one terminal cell. Cells are roughly twice as tall as wide.
const (
	CellWidth  = 8.0
	CellHeight = 16.0
)

type rgbf struct {
	r, g, b float64
}

func (c rgbf) blend(to config.RGB, alpha float64) rgbf {
	alpha = math.Max(0, math.Min(1, alpha))
	return rgbf{
		r: c.r + (float64(to.R)-c.r)*alpha,
		g: c.g + (float64(to.G)-c.g)*alpha,
		b: c.b + (float64(to.B)-c.b)*alpha,
	}
}

func (c rgbf) color() tcell.Color {
	return tcell.NewRGBColor(int32(c.r+0.5), int32(c.g+0.5), int32(c.b+0.5))
}

func toRGBF(c config.RGB) rgbf {
	return rgbf{float64(c.R), float64(c.G), float64(c.B)}
}

type glyph struct {
	r  rune
	fg rgbf
}

// Surface keeps a persistent background color per cell, so translucent fills fade
// earlier frames like a canvas would. Particle glyphs live for a single Present.
type Surface struct {
	screen     tcell.Screen
	background config.RGB

	cols, rows int
	bg         []rgbf
	glyphs     []glyph
	visible    bool
}

func New(screen tcell.Screen, background config.RGB) *Surface {
	s := &Surface{screen: screen, background: background, visible: true}
	s.Sync()
	return s
}

// Sync matches the buffers to the screen size and reports whether it changed.
func (s *Surface) Sync() bool {
	cols, rows := s.screen.Size()
	if cols == s.cols && rows == s.rows && s.bg != nil {
		return false
	}
	s.cols, s.rows = cols, rows
	s.bg = make([]rgbf, cols*rows)
	s.glyphs = make([]glyph, cols*rows)
	s.Clear()
	return true
}

func (s *Surface) Size() (float64, float64) {
	return float64(s.cols) * CellWidth, float64(s.rows) * CellHeight
}

// CellCenter maps a terminal cell to surface coordinates.
func CellCenter(col, row int) (float64, float64) {
	return (float64(col) + 0.5) * CellWidth, (float64(row) + 0.5) * CellHeight
}

func (s *Surface) cell(x, y float64) (int, bool) {
	col := int(math.Floor(x / CellWidth))
	row := int(math.Floor(y / CellHeight))
	if col < 0 || row < 0 || col >= s.cols || row >= s.rows {
		return 0, false
	}
	return row*s.cols + col, true
}

func (s *Surface) FillRect(x, y, w, h float64, c config.RGB, alpha float64) {
	c0 := max(0, int(math.Floor(x/CellWidth)))
	r0 := max(0, int(math.Floor(y/CellHeight)))
	c1 := min(s.cols, int(math.Ceil((x+w)/CellWidth)))
	r1 := min(s.rows, int(math.Ceil((y+h)/CellHeight)))
	for row := r0; row < r1; row++ {
		for col := c0; col < c1; col++ {
			i := row*s.cols + col
			s.bg[i] = s.bg[i].blend(c, alpha)
		}
	}
}

func (s *Surface) FillCircle(x, y, radius float64, c config.RGB, alpha float64) {
	i, ok := s.cell(x, y)
	if !ok {
		return
	}
	r := '•'
	if radius >= 2 {
		r = '●'
	}
	s.glyphs[i] = glyph{r: r, fg: s.bg[i].blend(c, alpha)}
}

// StrokeLine walks the cells between the endpoints. Width is ignored; a cell is the finest stroke.
func (s *Surface) StrokeLine(x0, y0, x1, y1, width float64, c config.RGB, alpha float64) {
	cx0, cy0 := x0/CellWidth, y0/CellHeight
	cx1, cy1 := x1/CellWidth, y1/CellHeight
	steps := int(math.Ceil(math.Max(math.Abs(cx1-cx0), math.Abs(cy1-cy0))))
	last := -1
	for i := 0; i <= steps; i++ {
		t := 0.0
		if steps > 0 {
			t = float64(i) / float64(steps)
		}
		idx, ok := s.cell(x0+(x1-x0)*t, y0+(y1-y0)*t)
		if !ok || idx == last {
			continue
		}
		last = idx
		s.bg[idx] = s.bg[idx].blend(c, alpha)
	}
}

func (s *Surface) Clear() {
	bg := toRGBF(s.background)
	for i := range s.bg {
		s.bg[i] = bg
		s.glyphs[i] = glyph{}
	}
}

func (s *Surface) SetVisible(v bool) { s.visible = v }

func (s *Surface) Visible() bool { return s.visible }

// Present writes the buffers to the screen, then drops this frame's glyphs.
// Text drawn with DrawText after Present stays on top until the next Present.
func (s *Surface) Present() {
	for row := 0; row < s.rows; row++ {
		for col := 0; col < s.cols; col++ {
			i := row*s.cols + col
			g := s.glyphs[i]
			s.glyphs[i] = glyph{}
			if !s.visible {
				s.screen.SetContent(col, row, ' ', nil, tcell.StyleDefault)
				continue
			}
			style := tcell.StyleDefault.Background(s.bg[i].color())
			r := ' '
			if g.r != 0 {
				r = g.r
				style = style.Foreground(g.fg.color())
			}
			s.screen.SetContent(col, row, r, nil, style)
		}
	}
}

// DrawText writes a single line of text starting at col, row.
func (s *Surface) DrawText(col, row int, text string, style tcell.Style) {
	for _, r := range text {
		if col >= s.cols {
			return
		}
		s.screen.SetContent(col, row, r, nil, style)
		col++
	}
}

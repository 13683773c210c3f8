package viz

import "strings"

// Braille patterns: 2x4 dots per character cell, Unicode offset 0x2800.
var pixelMap = [4][2]rune{
	{0x1, 0x8},
	{0x2, 0x10},
	{0x4, 0x20},
	{0x40, 0x80},
}

// Canvas is a braille dot grid. A cell holds 2x4 sub-pixels, so drawable
// resolution is (Width*2) x (Height*4).
type Canvas struct {
	Width, Height int
	Grid          [][]rune
}

func NewCanvas(w, h int) *Canvas {
	c := &Canvas{Width: w, Height: h, Grid: make([][]rune, h)}
	for i := range c.Grid {
		c.Grid[i] = make([]rune, w)
	}
	c.Clear()
	return c
}

func (c *Canvas) Clear() {
	for _, row := range c.Grid {
		for j := range row {
			row[j] = 0x2800
		}
	}
}

// Set turns on the sub-pixel at (x, y). Out-of-bounds coordinates are
// ignored.
func (c *Canvas) Set(x, y int) {
	if x < 0 || y < 0 {
		return
	}
	col, row := x/2, y/4
	if col >= c.Width || row >= c.Height {
		return
	}
	c.Grid[row][col] |= pixelMap[y%4][x%2]
}

// Rows returns a printable line per canvas row.
func (c *Canvas) Rows() []string {
	rows := make([]string, c.Height)
	for i, row := range c.Grid {
		var sb strings.Builder
		for _, r := range row {
			sb.WriteRune(r)
		}
		rows[i] = sb.String()
	}
	return rows
}

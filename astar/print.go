package astar

import (
	"fmt"
	"io"

	"github.com/logrusorgru/aurora"
)

// Print writes the grid to w, one glyph per cell, colored by state.
func Print(w io.Writer, g *Grid, colors bool) error {
	au := aurora.NewAurora(colors)
	for _, row := range g.Rows() {
		for j := 0; j < len(row); j++ {
			if _, err := fmt.Fprintf(w, "%v ", Colorize(au, row[j])); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}
	return nil
}

// Colorize wraps a layout glyph in the color of its state.
func Colorize(au aurora.Aurora, glyph byte) aurora.Value {
	c := string(glyph)
	switch glyph {
	case 'o':
		return au.Green(c)
	case 'x':
		return au.Red(c)
	case '#':
		return au.Gray(c)
	case 'S':
		return au.Bold(au.Brown(c))
	case 'E':
		return au.Bold(au.Cyan(c))
	case '*':
		return au.Magenta(c)
	}
	return au.Bold(c)
}

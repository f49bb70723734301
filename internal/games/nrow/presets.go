package nrow

import (
	"github.com/vovakirdan/tui-nrow/internal/config"
	"github.com/vovakirdan/tui-nrow/internal/registry"
)

func init() {
	registry.Register("classic", "Classic 3x3, three in a row", func(*config.Config) {})
	registry.Register("four", "Four in a row on a 6x7 board", four)
	registry.Register("gomoku", "Five in a row on a 15x15 board", gomoku)
	registry.Register("wide", "3x7 board, four across, three down", wide)
}

func four(c *config.Config) {
	c.Screen.Rows, c.Screen.Columns = 28, 96
	c.Field.Rows, c.Field.Columns = 6, 7
	c.Field.WinRows, c.Field.WinColumns, c.Field.WinDiagonals = 4, 4, 4
	setPane(c, 1, 48, 27, 94)
}

func gomoku(c *config.Config) {
	c.Screen.Rows, c.Screen.Columns = 34, 80
	c.Field.Rows, c.Field.Columns = 15, 15
	c.Field.WinRows, c.Field.WinColumns, c.Field.WinDiagonals = 5, 5, 5
	c.Field.Frame = "┌─┬┐│├┤┴┘└┼"
	for i := range c.Players {
		c.Players[i].Glyph = []string{c.Players[i].Marker}
	}
	c.Messages.Capacity = 8
	setPane(c, 1, 36, 33, 78)
}

func wide(c *config.Config) {
	c.Screen.Columns = 96
	c.Field.Rows, c.Field.Columns = 3, 7
	c.Field.WinRows, c.Field.WinColumns, c.Field.WinDiagonals = 4, 3, 3
	setPane(c, 1, 48, 14, 94)
}

func setPane(c *config.Config, top, left, bottom, right int) {
	c.Messages.Top, c.Messages.Left = top, left
	c.Messages.Bottom, c.Messages.Right = bottom, right
}

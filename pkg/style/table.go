package style

import (
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// NewDefaultTableStyle renders reports with rounded boxes on a dark
// background, alternating two shades of green per row.
func NewDefaultTableStyle() *table.Style {
	style := table.StyleRounded
	style.Name = "StyleBSTree"
	style.Color = table.ColorOptionsGreenWhiteOnBlack
	style.Color.Row = text.Colors{text.FgHiGreen, text.BgHiBlack}
	style.Color.RowAlternate = text.Colors{text.FgGreen, text.BgBlack}
	style.Title.Align = text.AlignCenter
	return &style
}

// NewPlainTableStyle is the rounded style without colors, for --no-color and
// non terminal outputs.
func NewPlainTableStyle() *table.Style {
	style := table.StyleRounded
	style.Name = "StyleBSTreePlain"
	style.Title.Align = text.AlignCenter
	return &style
}

// TableStyle picks the colored or the plain style.
func TableStyle(withColor bool) *table.Style {
	if withColor {
		return NewDefaultTableStyle()
	}
	return NewPlainTableStyle()
}

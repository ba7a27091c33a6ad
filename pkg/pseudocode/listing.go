package pseudocode

import (
	"strings"

	"github.com/bradenleague/UE-Agent-Asset-Toolkit-sub000/pkg/cfg"
	"github.com/bradenleague/UE-Agent-Asset-Toolkit-sub000/pkg/kismet"
)

// Line is one line of a function listing. Label lines have Index -1.
type Line struct {
	Block  int
	Index  int
	Offset uint32
	Text   string
}

// IsLabel reports whether the line opens a block.
func (l Line) IsLabel() bool {
	return l.Index < 0
}

func (l Line) String() string {
	if l.IsLabel() {
		return l.Text
	}
	return "    " + l.Text
}

// Listing renders a whole function block by block. Each block opens with
// its label; statements that render empty are left out. When r has no
// Blocks, jump targets are resolved through result.
func Listing(exprs []kismet.Expr, result *cfg.Result, r Renderer) []Line {
	if result.Len() == 0 {
		return nil
	}
	if r.Blocks == nil {
		r.Blocks = result
	}

	var lines []Line
	for _, b := range result.Blocks {
		label := BlockLabel(b.ID) + ":"
		if b.LoopTarget {
			label += " // loop"
		}
		lines = append(lines, Line{Block: b.ID, Index: -1, Offset: b.Offset, Text: label})

		for i := b.Start; i < b.End && i < len(exprs) && i < len(result.Offsets); i++ {
			text := r.Render(exprs[i])
			if text == "" {
				continue
			}
			lines = append(lines, Line{
				Block:  b.ID,
				Index:  i,
				Offset: result.Offsets[i],
				Text:   text,
			})
		}
	}
	return lines
}

// Format joins lines into a single text block.
func Format(lines []Line) string {
	var b strings.Builder
	for _, l := range lines {
		b.WriteString(l.String())
		b.WriteByte('\n')
	}
	return b.String()
}

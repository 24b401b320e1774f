package render

import (
	"fmt"

	"github.com/beevik/etree"

	"github.com/arthur-debert/stromschlag/pkg/errors"
	"github.com/arthur-debert/stromschlag/pkg/types"
	"github.com/arthur-debert/stromschlag/pkg/utils"
)

// SVG renders the icon's glyph tile as a scalable vector document with
// the given nominal size. Colors must be valid hex strings.
func SVG(icon types.IconDefinition, size int) ([]byte, error) {
	if size <= 0 {
		return nil, errors.Newf(errors.ErrInvalidInput, "invalid icon size: %d", size)
	}

	bg, err := utils.EnsureHex(icon.BackgroundOrDefault())
	if err != nil {
		return nil, err
	}
	fg, err := utils.EnsureHex(icon.ForegroundOrDefault())
	if err != nil {
		return nil, err
	}

	padding := max(2, size*8/100)
	radius := max(4, size*20/100)
	fontSize := max(12, size*60/100)

	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	svg := doc.CreateElement("svg")
	svg.CreateAttr("xmlns", "http://www.w3.org/2000/svg")
	svg.CreateAttr("width", fmt.Sprintf("%d", size))
	svg.CreateAttr("height", fmt.Sprintf("%d", size))
	svg.CreateAttr("viewBox", fmt.Sprintf("0 0 %d %d", size, size))

	rect := svg.CreateElement("rect")
	rect.CreateAttr("x", fmt.Sprintf("%d", padding))
	rect.CreateAttr("y", fmt.Sprintf("%d", padding))
	rect.CreateAttr("width", fmt.Sprintf("%d", size-2*padding))
	rect.CreateAttr("height", fmt.Sprintf("%d", size-2*padding))
	rect.CreateAttr("rx", fmt.Sprintf("%d", radius))
	rect.CreateAttr("fill", bg)

	text := svg.CreateElement("text")
	text.CreateAttr("x", "50%")
	text.CreateAttr("y", "50%")
	text.CreateAttr("text-anchor", "middle")
	text.CreateAttr("dominant-baseline", "central")
	text.CreateAttr("font-family", "sans-serif")
	text.CreateAttr("font-weight", "bold")
	text.CreateAttr("font-size", fmt.Sprintf("%d", fontSize))
	text.CreateAttr("fill", fg)
	text.SetText(icon.ResolvedGlyph())

	doc.Indent(2)
	return doc.WriteToBytes()
}

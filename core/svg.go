package core

import (
	"bytes"
	"fmt"
	"math"
	"os"
	"strings"

	svg "github.com/ajstarks/svgo"
	"github.com/rs/zerolog/log"
)

const (
	canvasWidth  = 1024
	canvasHeight = 1024

	logoSize    = 120
	logoPadding = 40

	headerText     = "Palaeo Events!"
	headerFontSize = 64

	titleFontSize    = 72
	subtitleFontSize = 48
	detailFontSize   = 40

	// lineHeight is the spacing multiplier between content lines.
	lineHeight = 1.2

	textColour = "#FFFFFF"
)

type svgLine struct {
	text string
	size int
	bold bool
}

// contentLines builds the vertical layout for an event. Absent fields are
// skipped entirely so the remaining lines close up and stay centered.
func contentLines(event Event) []svgLine {
	var lines []svgLine

	if event.Title != "" {
		lines = append(lines, svgLine{text: event.Title, size: titleFontSize, bold: true})
	}

	if event.Subtitle != "" {
		lines = append(lines, svgLine{text: event.Subtitle, size: subtitleFontSize})
	}

	if event.Host != "" {
		lines = append(lines, svgLine{text: event.Host, size: detailFontSize})
	}

	if event.Date != "" {
		lines = append(lines, svgLine{text: stripTime(event.Date), size: detailFontSize})
	}

	if event.Location != "" {
		lines = append(lines, svgLine{text: event.Location, size: detailFontSize})
	}

	return lines
}

// stripTime drops a trailing time component from a date string, keeping only
// the date part for rendering.
func stripTime(date string) string {
	for _, sep := range []string{"T", " at ", " @ "} {
		if i := strings.Index(date, sep); i >= 0 {
			return strings.TrimSpace(date[:i])
		}
	}

	return strings.TrimSpace(date)
}

// RenderSVG produces the complete SVG document for a single event. Output is
// deterministic: the same event and asset state yield byte-identical markup.
// A missing logo file is a warning, not an error.
func RenderSVG(event Event, logoPath string) []byte {
	buf := &bytes.Buffer{}
	canvas := svg.New(buf)
	canvas.Startview(canvasWidth, canvasHeight, 0, 0, canvasWidth, canvasHeight)

	canvas.Rect(0, 0, canvasWidth, canvasHeight, "fill:#000000")

	if _, err := os.Stat(logoPath); err != nil {
		log.Warn().Str("path", logoPath).Msg("logo file not found, continuing without logo")
	} else {
		canvas.Image(logoPadding, logoPadding, logoSize, logoSize, logoPath, `preserveAspectRatio="xMidYMid meet"`)
	}

	canvas.Text(canvasWidth/2, logoPadding+logoSize/2, headerText,
		fmt.Sprintf("font-size:%dpx;font-weight:bold;fill:%s;text-anchor:middle;dominant-baseline:middle", headerFontSize, textColour))

	lines := contentLines(event)

	totalHeight := 0.0
	for _, line := range lines {
		totalHeight += float64(line.size) * lineHeight
	}

	y := (float64(canvasHeight) - totalHeight) / 2

	for _, line := range lines {
		style := fmt.Sprintf("font-size:%dpx;fill:%s;text-anchor:middle;text-rendering:optimizeLegibility", line.size, textColour)
		if line.bold {
			style += ";font-weight:bold"
		}

		canvas.Text(canvasWidth/2, int(math.Round(y)), line.text, style)

		y += float64(line.size) * lineHeight
	}

	canvas.End()

	return buf.Bytes()
}

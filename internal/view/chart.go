package view

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"SmartSprinkler.dashboard/internal/models"
)

const (
	chartWidth   = 640
	chartHeight  = 320
	chartLeft    = 56
	chartRight   = 16
	chartTop     = 36
	chartBottom  = 52
	chartTickGap = 2
)

// BarChart renders the readings as an inline SVG bar chart on a fixed 0–1
// value axis.
func BarChart(points []models.ChartPoint) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		hw := &htmlWriter{w: w}
		plotW := float64(chartWidth - chartLeft - chartRight)
		plotH := float64(chartHeight - chartTop - chartBottom)
		baseY := float64(chartTop) + plotH

		hw.rawf(`<svg class="chart" role="img" aria-label="Current Sensor Readings" viewBox="0 0 %d %d" width="100%%">`, chartWidth, chartHeight)
		hw.rawf(`<text x="%d" y="22" text-anchor="middle" font-weight="600">Current Sensor Readings</text>`, chartWidth/2)

		for _, tick := range []float64{0, 0.25, 0.5, 0.75, 1} {
			y := baseY - tick*plotH
			hw.rawf(`<line x1="%d" y1="%.1f" x2="%d" y2="%.1f" stroke="#d5e4cf"/>`, chartLeft, y, chartWidth-chartRight, y)
			hw.rawf(`<text x="%d" y="%.1f" text-anchor="end" font-size="11">%.2f</text>`, chartLeft-6, y+4, tick)
		}

		if n := len(points); n > 0 {
			slot := plotW / float64(n)
			barW := slot * 0.8
			for _, p := range points {
				v := p.Value
				if v < 0 {
					v = 0
				} else if v > 1 {
					v = 1
				}
				x := float64(chartLeft) + float64(p.Index)*slot + (slot-barW)/2
				h := v * plotH
				hw.rawf(`<rect class="bar" data-index="%d" x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="lightblue"><title>Sensor %d: %.2f</title></rect>`,
					p.Index, x, baseY-h, barW, h, p.Index, p.Value)
				if p.Index%chartTickGap == 0 {
					hw.rawf(`<text x="%.1f" y="%.1f" text-anchor="middle" font-size="11">%d</text>`, x+barW/2, baseY+16, p.Index)
				}
			}
		}

		hw.rawf(`<text x="%d" y="%d" text-anchor="middle" font-size="12">Sensor Number</text>`, chartLeft+int(plotW)/2, chartHeight-10)
		hw.rawf(`<text x="14" y="%.1f" text-anchor="middle" font-size="12" transform="rotate(-90 14 %.1f)">Sensor Value</text>`, float64(chartTop)+plotH/2, float64(chartTop)+plotH/2)
		hw.raw(`</svg>`)
		return hw.err
	})
}

// Package view renders the dashboard page as templ components.
package view

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"

	"SmartSprinkler.dashboard/internal/models"
)

// ActionAnalyze is the form action that requests recommendations.
const ActionAnalyze = "analyze"

const pageStyle = `
body{font-family:system-ui,sans-serif;margin:0;color:#1f2d1f;background:#f6faf4}
.layout{display:grid;grid-template-columns:240px 1fr;min-height:100vh}
aside{background:#e8f2e3;padding:1.25rem}
main{padding:1.5rem 2rem}
.columns{display:grid;grid-template-columns:2fr 1fr;gap:1.5rem}
.grid4{display:grid;grid-template-columns:repeat(4,1fr);gap:.75rem}
.grid3{display:grid;grid-template-columns:repeat(3,1fr);gap:.75rem}
.grid2{display:grid;grid-template-columns:repeat(2,1fr);gap:1.5rem}
.card{background:#fff;border:1px solid #d5e4cf;border-radius:8px;padding:.75rem}
.metric strong{display:block;font-size:1.6rem}
.on{color:#1a7f37}.off{color:#b42318}
label{display:block;font-weight:600;font-size:.85rem}
input[type=range]{width:100%}
button{background:#2f7d32;color:#fff;border:0;border-radius:6px;padding:.6rem 1rem;font-size:1rem;cursor:pointer}
.error{background:#fdecea;border:1px solid #f5c2c0;padding:.75rem;border-radius:6px}
footer{text-align:center;margin-top:2rem;color:#4b5b4b}
`

// Dashboard renders the whole page for view.
func Dashboard(view models.DashboardView) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		hw := &htmlWriter{w: w}
		hw.raw(`<!DOCTYPE html><html lang="en"><head><meta charset="utf-8">`)
		hw.raw(`<meta name="viewport" content="width=device-width, initial-scale=1">`)
		hw.raw(`<title>Smart Sprinkler System</title><style>` + pageStyle + `</style></head><body><div class="layout">`)
		if hw.err != nil {
			return hw.err
		}
		if err := Sidebar().Render(ctx, w); err != nil {
			return err
		}

		hw.raw(`<main><h1>🌱 Smart Sprinkler System</h1>`)
		hw.raw(`<h3>AI-Powered Irrigation Management System</h3>`)
		hw.raw(`<p>Enter sensor values (0 to 1 scale) to get intelligent sprinkler recommendations for your farm parcels.</p>`)
		if view.Error != "" {
			hw.raw(`<div class="error" role="alert">`)
			hw.text(view.Error)
			hw.raw(`</div>`)
		}
		hw.raw(`<form method="post" action="/">`)
		hw.raw(`<div class="columns"><section><h2>🔧 Sensor Input Panel</h2>`)
		if hw.err != nil {
			return hw.err
		}
		if err := SensorPanel(view.Sensors).Render(ctx, w); err != nil {
			return err
		}
		hw.raw(`</section><section><h2>📊 Sensor Statistics</h2>`)
		if hw.err != nil {
			return hw.err
		}
		if err := StatsPanel(view.Summary).Render(ctx, w); err != nil {
			return err
		}
		if err := BarChart(view.Chart).Render(ctx, w); err != nil {
			return err
		}
		hw.raw(`</section></div>`)
		hw.raw(`<h2>🚿 Sprinkler Control System</h2>`)
		hw.rawf(`<button type="submit" name="action" value="%s">🔍 Analyze &amp; Predict Sprinkler Status</button>`, ActionAnalyze)
		hw.raw(`</form>`)
		if hw.err != nil {
			return hw.err
		}

		if view.Analysis != nil {
			if err := Recommendations(*view.Analysis).Render(ctx, w); err != nil {
				return err
			}
		}
		if err := Analytics().Render(ctx, w); err != nil {
			return err
		}
		hw.raw(`</main></div></body></html>`)
		return hw.err
	})
}

// SensorPanel renders one slider per sensor, four to a row. Moving a
// slider resubmits the form so statistics and chart follow the input.
func SensorPanel(sensors []models.SensorInputView) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		hw := &htmlWriter{w: w}
		hw.raw(`<div class="grid4">`)
		for _, s := range sensors {
			hw.raw(`<div class="card">`)
			hw.rawf(`<label for="%s">`, s.Name)
			hw.text(s.Label)
			hw.raw(`</label>`)
			hw.rawf(`<input type="range" id="%s" name="%s" min="0" max="1" step="0.01" value="%.2f" onchange="this.form.requestSubmit()">`, s.Name, s.Name, s.Value)
			hw.rawf(`<output for="%s">%.2f</output>`, s.Name, s.Value)
			hw.raw(`</div>`)
		}
		hw.raw(`</div>`)
		return hw.err
	})
}

// StatsPanel renders the live average, highest and lowest readings.
func StatsPanel(summary models.SummaryView) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		hw := &htmlWriter{w: w}
		metric(hw, "Average Value", summary.Average)
		metric(hw, "Highest Reading", summary.Highest)
		metric(hw, "Lowest Reading", summary.Lowest)
		return hw.err
	})
}

func metric(hw *htmlWriter, name, value string) {
	hw.raw(`<div class="card metric"><span>`)
	hw.text(name)
	hw.raw(`</span><strong>`)
	hw.text(value)
	hw.raw(`</strong></div>`)
}

// Recommendations renders the totals and the per-parcel decisions.
func Recommendations(a models.AnalysisView) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		hw := &htmlWriter{w: w}
		hw.raw(`<section id="recommendations"><h3>📋 Irrigation Recommendations:</h3><div class="grid3">`)
		metric(hw, "🟢 Sprinklers ON", fmt.Sprint(a.Totals.CountOn))
		metric(hw, "🔴 Sprinklers OFF", fmt.Sprint(a.Totals.CountOff))
		metric(hw, "💧 Water Saved", a.Totals.WaterSaved+"%")
		hw.raw(`</div><h4>Detailed Parcel Status:</h4><div class="grid4">`)
		for _, p := range a.Parcels {
			class, badge, emoji := "off", "🔴", "⭕"
			if p.Status == string(models.StatusOn) {
				class, badge, emoji = "on", "🟢", "💧"
			}
			hw.raw(`<div class="card parcel"><strong>`)
			hw.text(p.Parcel)
			hw.raw(`</strong> ` + badge + `<p><em>`)
			hw.text(p.Label)
			hw.raw(`</em></p><p>Value: `)
			hw.text(p.Value)
			hw.rawf(`</p><p class="%s"><strong>`, class)
			hw.text(p.Status)
			hw.raw(`</strong> ` + emoji + `</p></div>`)
		}
		hw.raw(`</div></section>`)
		return hw.err
	})
}

// Sidebar renders the static system information.
func Sidebar() templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		hw := &htmlWriter{w: w}
		hw.raw(`<aside><h2>System Information</h2><p><strong>Smart Irrigation Features:</strong></p><ul>`)
		for _, f := range []string{"20 Multi-sensor monitoring", "AI-based decision making", "Water conservation", "Real-time predictions", "Multi-parcel management"} {
			hw.raw(`<li>`)
			hw.text(f)
			hw.raw(`</li>`)
		}
		hw.raw(`</ul></aside>`)
		return hw.err
	})
}

// Analytics renders the tips, feature list and footer.
func Analytics() templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		hw := &htmlWriter{w: w}
		hw.raw(`<hr><h2>📈 System Analytics</h2><div class="grid2">`)
		list(hw, "🎯 Optimization Tips:", []string{
			"Monitor soil moisture sensors regularly",
			"Adjust irrigation based on weather conditions",
			"Consider plant growth stages for watering",
			"Track water usage for conservation",
		})
		list(hw, "🔧 System Features:", []string{
			"20 intelligent sensors monitoring",
			"Real-time decision making",
			"Water conservation algorithms",
			"Multi-parcel management",
			"Weather-adaptive irrigation",
		})
		hw.raw(`</div><hr><footer><p><strong>Smart Sprinkler System v1.0</strong> | Developed with ❤️ for Sustainable Agriculture</p>`)
		hw.raw(`<p>AICTE-Shell-Edunet Internship Project | Green Skills using AI</p></footer>`)
		return hw.err
	})
}

func list(hw *htmlWriter, title string, items []string) {
	hw.raw(`<div><h4>`)
	hw.text(title)
	hw.raw(`</h4><ul>`)
	for _, item := range items {
		hw.raw(`<li>`)
		hw.text(item)
		hw.raw(`</li>`)
	}
	hw.raw(`</ul></div>`)
}

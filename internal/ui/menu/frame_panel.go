package menu

import (
	"fmt"
	"time"

	"spritebox/internal/graphics/renderer"
	"spritebox/internal/profiling"
	"spritebox/internal/theme"
)

// plotCeiling is the frame time drawn at full bar height.
const plotCeiling = 50 * time.Millisecond

// FramePanel plots recent frame times and summary numbers.
type FramePanel struct {
	layer
	o *Overlay
}

func (p *FramePanel) Render(ctx renderer.RenderContext) error {
	o := p.o
	if !o.Panels.FPS {
		return nil
	}
	o.begin(ctx)
	u := o.UI
	s := o.Style

	const w, h = 300, 190
	x := float32(ctx.Width) - w - 10
	cx, cy := o.panel("Frame times", x, 30, w, h)
	text := s.Packed(theme.ColText)
	line := u.LineHeight(1)

	plotW := float32(w) - 2*s.WindowPadding[0]
	plotH := float32(60)
	u.DrawFilledRect(cx, cy, plotW, plotH, s.Packed(theme.ColFrameBg))
	samples := o.Hist.Samples()
	barW := plotW / profiling.HistogramSize
	for i, d := range samples {
		frac := min(float32(d)/float32(plotCeiling), 1)
		bh := frac * plotH
		u.DrawFilledRect(cx+float32(i)*barW, cy+plotH-bh, max(barW-1, 1), bh, s.Packed(theme.ColPlotHistogram))
	}
	cy += plotH + s.ItemSpacing[1]

	u.DrawText(fmt.Sprintf("avg %s  max %s  %.0f fps",
		profiling.FormatMs(o.Hist.Average()), profiling.FormatMs(o.Hist.Max()), o.Hist.FPS()), cx, cy, 1, text)
	cy += line
	u.DrawText(fmt.Sprintf("buckets %v", o.Hist.Buckets()), cx, cy, 1, text)
	cy += line
	u.DrawText(fmt.Sprintf("draw calls %d  sprites %d", o.Stats.DrawCalls, o.Stats.Sprites), cx, cy, 1, text)
	cy += line
	if top := profiling.TopN(2); top != "" {
		u.DrawText(top, cx, cy, 0.85, s.Packed(theme.ColTextDisabled))
	}
	return nil
}

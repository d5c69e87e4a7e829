package sim

import (
	"github.com/iburimskiy/particle-backdrop/internal/config"
	"github.com/iburimskiy/particle-backdrop/internal/particle"
)

// Surface is the drawing target a host hands to the simulation.
type Surface interface {
	particle.Painter

	Size() (width, height float64)
	FillRect(x, y, w, h float64, c config.RGB, alpha float64)
	StrokeLine(x0, y0, x1, y1, width float64, c config.RGB, alpha float64)
	Clear()
	SetVisible(visible bool)
}

// FrameScheduler runs a callback on the host's next display tick.
type FrameScheduler interface {
	ScheduleNext(frame func())
	CancelPending()
}

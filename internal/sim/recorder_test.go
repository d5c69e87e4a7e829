package sim

import "github.com/iburimskiy/particle-backdrop/internal/config"

type opKind int

const (
	opRect opKind = iota
	opCircle
	opLine
	opClear
)

type op struct {
	kind   opKind
	coords [4]float64
	width  float64
	color  config.RGB
	alpha  float64
}

// recorder is a Surface that keeps every call for inspection.
type recorder struct {
	w, h    float64
	ops     []op
	visible bool
}

func newRecorder(w, h float64) *recorder {
	return &recorder{w: w, h: h, visible: true}
}

func (r *recorder) Size() (float64, float64) { return r.w, r.h }

func (r *recorder) FillRect(x, y, w, h float64, c config.RGB, alpha float64) {
	r.ops = append(r.ops, op{kind: opRect, coords: [4]float64{x, y, w, h}, color: c, alpha: alpha})
}

func (r *recorder) FillCircle(x, y, radius float64, c config.RGB, alpha float64) {
	r.ops = append(r.ops, op{kind: opCircle, coords: [4]float64{x, y, radius}, color: c, alpha: alpha})
}

func (r *recorder) StrokeLine(x0, y0, x1, y1, width float64, c config.RGB, alpha float64) {
	r.ops = append(r.ops, op{kind: opLine, coords: [4]float64{x0, y0, x1, y1}, width: width, color: c, alpha: alpha})
}

func (r *recorder) Clear() { r.ops = append(r.ops, op{kind: opClear}) }

func (r *recorder) SetVisible(v bool) { r.visible = v }

func (r *recorder) reset() { r.ops = r.ops[:0] }

func (r *recorder) count(kind opKind, c config.RGB) int {
	n := 0
	for _, o := range r.ops {
		if o.kind == kind && o.color == c {
			n++
		}
	}
	return n
}

// countingScheduler tracks how many frames are queued at once.
type countingScheduler struct {
	TickScheduler
	scheduled int
	cancelled int
}

func (s *countingScheduler) ScheduleNext(f func()) {
	s.scheduled++
	s.TickScheduler.ScheduleNext(f)
}

func (s *countingScheduler) CancelPending() {
	s.cancelled++
	s.TickScheduler.CancelPending()
}

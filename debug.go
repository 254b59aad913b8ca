package toggle

import "time"

// debugStats holds per-frame metrics. Only populated in debug mode.
type debugStats struct {
	drawTime time.Duration
	widgets  int
	frame    uint64
}

// debugLog writes draw stats for one repainted frame.
func (p *Panel) debugLog(stats debugStats) {
	if !p.debug {
		return
	}
	p.log.Logf("[DEBUG] frame %d: repainted %d widgets in %v", stats.frame, stats.widgets, stats.drawTime)
}

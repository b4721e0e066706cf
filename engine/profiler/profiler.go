package profiler

import (
	"runtime"
	"sync"
	"time"

	"github.com/Carmen-Shannon/oxy-gallery/internal/log"
)

// Stats is one profiler sample.
type Stats struct {
	TicksPerSecond float64   `json:"ticks_per_second"`
	HeapMB         float64   `json:"heap_mb"`
	AllocRateMB    float64   `json:"alloc_rate_mb"`
	NumGC          uint32    `json:"num_gc"`
	LastPauseUs    uint64    `json:"last_pause_us"`
	MaxPauseUs     uint64    `json:"max_pause_us"`
	SysMB          float64   `json:"sys_mb"`
	At             time.Time `json:"at"`
}

// Profiler tracks tick rate and memory statistics for performance monitoring.
// Outputs stats to the log at a configurable interval.
type Profiler struct {
	mu *sync.Mutex

	frameCount     int
	lastTime       time.Time
	updateInterval time.Duration
	memStats       runtime.MemStats
	lastGCCount    uint32
	lastTotalAlloc uint64

	last Stats
}

// NewProfiler creates a new Profiler.
//
// Parameters:
//   - interval: how often a sample is taken and logged; values <= 0 sample every tick
//
// Returns:
//   - *Profiler: the newly created profiler instance
func NewProfiler(interval time.Duration) *Profiler {
	return &Profiler{
		mu:             &sync.Mutex{},
		lastTime:       time.Now(),
		updateInterval: interval,
	}
}

// Tick should be called once per engine tick.
// Logs a sample when the update interval has elapsed.
//
// Returns:
//   - bool: true if a sample was taken this tick, false otherwise
func (p *Profiler) Tick() bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.frameCount++
	currentTime := time.Now()
	elapsed := currentTime.Sub(p.lastTime)
	if elapsed < p.updateInterval {
		return false
	}

	secs := elapsed.Seconds()
	if secs <= 0 {
		secs = 1e-9
	}

	runtime.ReadMemStats(&p.memStats)
	// Alloc is live heap; TotalAlloc grows forever and tracks churn; Sys is the process footprint.
	s := Stats{
		TicksPerSecond: float64(p.frameCount) / secs,
		HeapMB:         float64(p.memStats.Alloc) / 1024 / 1024,
		AllocRateMB:    float64(p.memStats.TotalAlloc-p.lastTotalAlloc) / 1024 / 1024 / secs,
		NumGC:          p.memStats.NumGC,
		SysMB:          float64(p.memStats.Sys) / 1024 / 1024,
		At:             currentTime,
	}

	if gcCount := s.NumGC; gcCount > 0 {
		// PauseNs is a circular buffer of the last 256 pauses
		s.LastPauseUs = p.memStats.PauseNs[(gcCount-1)%256] / 1000

		startIdx := p.lastGCCount
		if gcCount-startIdx > 256 {
			startIdx = gcCount - 256
		}
		for i := startIdx; i < gcCount; i++ {
			if pause := p.memStats.PauseNs[i%256] / 1000; pause > s.MaxPauseUs {
				s.MaxPauseUs = pause
			}
		}
	}

	log.Debug("profiler",
		"tps", s.TicksPerSecond,
		"heap_mb", s.HeapMB,
		"alloc_rate_mb", s.AllocRateMB,
		"gc", s.NumGC,
		"gc_last_us", s.LastPauseUs,
		"gc_max_us", s.MaxPauseUs,
		"sys_mb", s.SysMB,
	)

	p.frameCount = 0
	p.lastTime = currentTime
	p.lastGCCount = s.NumGC
	p.lastTotalAlloc = p.memStats.TotalAlloc
	p.last = s
	return true
}

// Last returns the most recent sample. The zero Stats is returned before the first one.
func (p *Profiler) Last() Stats {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.last
}

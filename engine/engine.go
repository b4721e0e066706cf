package engine

import (
	"sync"
	"time"

	"github.com/Carmen-Shannon/oxy-gallery/engine/camera"
	"github.com/Carmen-Shannon/oxy-gallery/engine/profiler"
	"github.com/Carmen-Shannon/oxy-gallery/internal/log"
)

// Surface is the part of a window the engine drives: the blocking message loop and
// resize notifications. window.Window satisfies it.
type Surface interface {
	SetResizeCallback(callback func(width, height int))
	SetUpdateCallback(callback func())
	ProcessMessages()
	Stop()
	Close() error
}

// engine implements the Engine interface.
// Runs the fixed-rate tick loop on its own goroutine while the surface message loop
// runs on the calling (main) thread.
type engine struct {
	tickRateChannel chan time.Duration // Channel for dynamic tick rate updates

	mu      *sync.Mutex
	running bool
	wg      sync.WaitGroup

	quitChannel chan struct{}
	quitOnce    sync.Once // Ensures quitChannel is only closed once

	surface Surface
	cameras []camera.Camera

	profiler         *profiler.Profiler
	profilingEnabled bool

	engineTickRate time.Duration
	tickCallback   func(deltaTime float32)
}

// Engine is the main entry point for the viewer.
// It orchestrates the tick loop and the window message loop.
type Engine interface {
	// Surface returns the attached surface, or nil when running headless.
	//
	// Returns:
	//   - Surface: the surface instance
	Surface() Surface

	// Profiler returns the engine's profiler.
	//
	// Returns:
	//   - *profiler.Profiler: the profiler
	Profiler() *profiler.Profiler

	// EnableProfiler enables performance profiling output to the log.
	EnableProfiler()

	// DisableProfiler disables performance profiling output.
	DisableProfiler()

	// SetTickRate sets the engine tick rate in ticks per second.
	//
	// Parameters:
	//   - fps: target ticks per second (defaults to 60 if <= 0)
	SetTickRate(fps float64)

	// TickRate returns the current tick period.
	//
	// Returns:
	//   - time.Duration: time between ticks
	TickRate() time.Duration

	// SetTickCallback registers the function called each engine tick.
	// Use this for camera control, input processing and animation updates.
	//
	// Parameters:
	//   - callback: function receiving the delta time in seconds
	SetTickCallback(callback func(deltaTime float32))

	// AddCamera registers a camera whose aspect ratio follows surface resizes.
	//
	// Parameters:
	//   - c: the camera
	AddCamera(c camera.Camera)

	// Run starts the tick loop and blocks until the surface closes or Quit is called.
	Run()

	// Done returns a channel closed when the engine quits.
	//
	// Returns:
	//   - <-chan struct{}: the quit channel
	Done() <-chan struct{}

	// Quit signals all engine goroutines to stop.
	// Safe to call multiple times; subsequent calls are no-ops.
	Quit()
}

// NewEngine creates a new Engine instance with the provided options.
//
// Parameters:
//   - options: functional options for engine configuration (profiling, tick rate, etc.)
//
// Returns:
//   - Engine: the newly created engine
func NewEngine(options ...EngineBuilderOption) Engine {
	e := &engine{
		tickRateChannel: make(chan time.Duration, 1),
		quitChannel:     make(chan struct{}),
		mu:              &sync.Mutex{},
		profiler:        profiler.NewProfiler(time.Second),
		engineTickRate:  time.Second / 60,
	}

	for _, opt := range options {
		opt(e)
	}

	if e.surface != nil {
		e.surface.SetResizeCallback(e.resize)
		e.surface.SetUpdateCallback(e.pollQuit)
	}

	return e
}

func (e *engine) Surface() Surface {
	return e.surface
}

func (e *engine) Profiler() *profiler.Profiler {
	return e.profiler
}

func (e *engine) Done() <-chan struct{} {
	return e.quitChannel
}

// Run starts the tick goroutine and then blocks in the surface message loop. Without a
// surface it blocks until Quit.
func (e *engine) Run() {
	e.mu.Lock()
	e.running = true
	e.mu.Unlock()

	e.wg.Add(1)
	go e.handleEngine()

	if e.surface != nil {
		e.surface.ProcessMessages()
		e.signalQuit()
	} else {
		<-e.quitChannel
	}

	e.wg.Wait()
	if e.surface != nil {
		if err := e.surface.Close(); err != nil {
			log.Warn("surface close failed", "error", err)
		}
	}
}

// Quit signals all engine goroutines to stop and shuts down the engine.
func (e *engine) Quit() {
	e.signalQuit()
}

// signalQuit closes the quit channel to signal all goroutines to exit.
// Uses sync.Once to ensure the channel is only closed once.
func (e *engine) signalQuit() {
	e.quitOnce.Do(func() {
		e.mu.Lock()
		e.running = false
		e.mu.Unlock()
		close(e.quitChannel)
	})
}

// handleEngine runs the fixed-rate tick loop in its own goroutine.
// Fires the tick callback at the configured rate and listens for dynamic rate changes
// via tickRateChannel. A panicking callback is logged and stops the engine.
func (e *engine) handleEngine() {
	defer e.wg.Done()
	defer func() {
		if r := recover(); r != nil {
			log.Error("tick goroutine recovered from panic", "panic", r)
			e.signalQuit()
		}
	}()

	e.mu.Lock()
	rate := e.engineTickRate
	e.mu.Unlock()

	ticker := time.NewTicker(rate)
	defer ticker.Stop()

	lastTick := time.Now()

	for {
		select {
		case <-e.quitChannel:
			return
		case <-ticker.C:
			now := time.Now()
			dt := float32(now.Sub(lastTick).Seconds())
			lastTick = now

			e.mu.Lock()
			cb := e.tickCallback
			profiling := e.profilingEnabled
			e.mu.Unlock()

			if cb != nil {
				cb(dt)
			}
			if profiling {
				e.profiler.Tick()
			}
		case newRate := <-e.tickRateChannel:
			ticker.Reset(newRate)
		}
	}
}

// pollQuit runs on the message loop thread and ends the loop once Quit was called.
func (e *engine) pollQuit() {
	select {
	case <-e.quitChannel:
		e.surface.Stop()
	default:
	}
}

func (e *engine) resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	e.mu.Lock()
	cams := append([]camera.Camera(nil), e.cameras...)
	e.mu.Unlock()
	for _, c := range cams {
		c.SetAspect(float32(width) / float32(height))
	}
}

// EnableProfiler enables performance profiling output to the log.
func (e *engine) EnableProfiler() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.profilingEnabled = true
}

// DisableProfiler disables performance profiling output.
func (e *engine) DisableProfiler() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.profilingEnabled = false
}

// SetTickRate sets the engine tick rate in ticks per second.
// If the engine is running, the change takes effect immediately.
func (e *engine) SetTickRate(fps float64) {
	newRate := tickPeriod(fps)

	e.mu.Lock()
	e.engineTickRate = newRate
	running := e.running
	e.mu.Unlock()

	if !running {
		return
	}
	// Replace any pending update so only the latest rate is applied.
	select {
	case e.tickRateChannel <- newRate:
	default:
		select {
		case <-e.tickRateChannel:
		default:
		}
		e.tickRateChannel <- newRate
	}
}

func (e *engine) TickRate() time.Duration {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.engineTickRate
}

// SetTickCallback registers the function called each engine tick.
func (e *engine) SetTickCallback(callback func(deltaTime float32)) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.tickCallback = callback
}

func (e *engine) AddCamera(c camera.Camera) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.cameras = append(e.cameras, c)
}

// tickPeriod converts a rate to a period, defaulting to 60Hz.
func tickPeriod(fps float64) time.Duration {
	if fps <= 0 {
		fps = 60
	}
	return time.Duration(float64(time.Second) / fps)
}

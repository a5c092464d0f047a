package replay

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/aneeshsunganahalli/PathVisualiser/compare"
	"github.com/aneeshsunganahalli/PathVisualiser/grid"
)

// Sentinel errors for the replay driver.
var (
	// ErrBadSpeed indicates a speed value outside [MinSpeed, MaxSpeed].
	ErrBadSpeed = errors.New("replay: speed must be in [1,100]")
	// ErrRunActive indicates a gated operation was attempted while a
	// replay is in flight.
	ErrRunActive = errors.New("replay: a run is active")
)

// Speed bounds and interval mapping constants.
const (
	// MinSpeed and MaxSpeed bound the user-facing speed control.
	MinSpeed = 1
	MaxSpeed = 100

	// baseInterval is the tick interval at MinSpeed.
	baseInterval = 200 * time.Millisecond
	// minInterval is the clamp floor: one time unit.
	minInterval = time.Millisecond
)

// Interval maps a speed in [MinSpeed, MaxSpeed] to the tick interval.
// The relationship is inverse — higher speed, shorter interval — and
// the result never drops below minInterval.
func Interval(speed int) (time.Duration, error) {
	if speed < MinSpeed || speed > MaxSpeed {
		return 0, fmt.Errorf("%w: got %d", ErrBadSpeed, speed)
	}
	iv := baseInterval / time.Duration(speed)
	if iv < minInterval {
		iv = minInterval
	}

	return iv, nil
}

// Source supplies the frames of one replay. compare.Aggregation
// satisfies it.
type Source interface {
	// Next advances the shared clock one tick; ok=false when exhausted.
	Next() (compare.Tick, bool)
	// Finish is called exactly once, after the final tick, with the
	// total replay wall clock. It returns the path overlay to draw
	// (nil when no engine reached the goal).
	Finish(elapsed time.Duration) []grid.Position
}

// Frame is one emission of the driver: either a merged tick, or the
// terminal frame carrying the overlay.
type Frame struct {
	Tick    compare.Tick
	Overlay []grid.Position
	Done    bool
}

// Driver owns at most one in-flight replay. The zero value is ready to
// use. All methods are safe for concurrent use.
type Driver struct {
	mu      sync.Mutex
	cancel  context.CancelFunc
	wg      sync.WaitGroup
	running bool
}

// Running reports whether a replay is in flight.
func (d *Driver) Running() bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	return d.running
}

// Gate rejects gated operations mid-replay: it returns ErrRunActive
// while a replay is running and nil otherwise. Maze edits, resets and
// new runs must pass the gate first.
func (d *Driver) Gate() error {
	if d.Running() {
		return ErrRunActive
	}

	return nil
}

// Start begins a replay over src at the given speed and returns the
// frame channel, closed when the replay completes or is cancelled.
// Any in-flight replay is fully stopped first, before the new one can
// touch shared state.
func (d *Driver) Start(ctx context.Context, src Source, speed int) (<-chan Frame, error) {
	interval, err := Interval(speed)
	if err != nil {
		return nil, err
	}

	// stop the previous replay completely before starting the next
	d.Stop()

	d.mu.Lock()
	runCtx, cancel := context.WithCancel(ctx)
	d.cancel = cancel
	d.running = true
	d.wg.Add(1)
	d.mu.Unlock()

	frames := make(chan Frame)
	go d.loop(runCtx, src, interval, frames)

	return frames, nil
}

// Stop cancels the in-flight replay, if any, and blocks until its
// goroutine has fully exited. Idempotent.
func (d *Driver) Stop() {
	d.mu.Lock()
	cancel := d.cancel
	d.mu.Unlock()
	if cancel != nil {
		cancel()
	}
	d.wg.Wait()
}

// loop emits one frame per interval until the source is exhausted or
// the context is cancelled.
func (d *Driver) loop(ctx context.Context, src Source, interval time.Duration, frames chan<- Frame) {
	defer func() {
		close(frames)
		d.mu.Lock()
		d.running = false
		d.cancel = nil
		d.mu.Unlock()
		d.wg.Done()
	}()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	started := time.Now()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			tick, ok := src.Next()
			if !ok {
				overlay := src.Finish(time.Since(started))
				select {
				case frames <- Frame{Overlay: overlay, Done: true}:
				case <-ctx.Done():
				}

				return
			}
			select {
			case frames <- Frame{Tick: tick}:
			case <-ctx.Done():
				return
			}
		}
	}
}

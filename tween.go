package reorder

import "slices"

// Tween is a cancellable, time-bounded animation driven by an Animator.
//
// Each frame the animator advances the tween's elapsed time and calls its
// step function with progress in [0, 1]. When progress reaches 1 the tween
// is removed and its completion callback runs on the same goroutine.
type Tween struct {
	anim     *Animator
	elapsed  float32
	duration float32
	step     func(t float32)
	done     func()
	active   bool
}

// Active reports whether the tween is still scheduled.
func (tw *Tween) Active() bool {
	return tw != nil && tw.active
}

// Cancel stops the tween without running its completion callback. The
// animated value stays wherever the last step left it. Cancelling an
// inactive or nil tween is a no-op.
func (tw *Tween) Cancel() {
	if !tw.Active() {
		return
	}
	tw.active = false
	tw.anim.remove(tw)
}

// Progress returns the fraction of the duration elapsed so far, clamped to
// [0, 1].
func (tw *Tween) Progress() float32 {
	if tw == nil {
		return 0
	}
	if tw.duration <= 0 {
		if tw.active {
			return 0
		}
		return 1
	}
	return clampf(tw.elapsed/tw.duration, 0, 1)
}

// Animator advances tweens once per frame.
//
// A tween started during a frame takes its first step at that frame's Tick.
// Starting and cancelling tweens between ticks therefore never produces
// visible output for the superseded ones: only the last start before the
// frame boundary is honoured.
type Animator struct {
	tweens []*Tween
}

// NewAnimator creates an empty animator.
func NewAnimator() *Animator {
	return &Animator{}
}

// Animate schedules step to run each tick for duration seconds with the
// current progress, then done (if non-nil) after the final step.
// A duration <= 0 completes on the next tick with progress 1.
func (a *Animator) Animate(duration float32, step func(t float32), done func()) *Tween {
	tw := &Tween{
		anim:     a,
		duration: duration,
		step:     step,
		done:     done,
		active:   true,
	}
	a.tweens = append(a.tweens, tw)
	return tw
}

// AnimateFloat interpolates from -> to and passes each value to apply.
func (a *Animator) AnimateFloat(from, to, duration float32, apply func(v float32), done func()) *Tween {
	return a.Animate(duration, func(t float32) {
		apply(lerpf(from, to, t))
	}, done)
}

// AnimateVec2 interpolates from -> to component-wise and passes each value
// to apply.
func (a *Animator) AnimateVec2(from, to Vec2, duration float32, apply func(v Vec2), done func()) *Tween {
	return a.Animate(duration, func(t float32) {
		apply(lerpVec2(from, to, t))
	}, done)
}

// Tick advances every active tween by dt seconds.
// Tweens started or cancelled by callbacks during the tick take effect
// immediately: new tweens wait for the next tick, cancelled ones are skipped.
func (a *Animator) Tick(dt float32) {
	if len(a.tweens) == 0 {
		return
	}

	for _, tw := range slices.Clone(a.tweens) {
		if !tw.active {
			continue
		}

		tw.elapsed += dt
		t := float32(1)
		if tw.duration > 0 {
			t = tw.elapsed / tw.duration
		}

		if tw.step != nil {
			tw.step(clampf(t, 0, 1))
		}

		// The step may have cancelled its own tween.
		if !tw.active || t < 1 {
			continue
		}

		tw.active = false
		a.remove(tw)
		if tw.done != nil {
			tw.done()
		}
	}
}

// Len returns the number of active tweens.
func (a *Animator) Len() int {
	return len(a.tweens)
}

// Clear cancels every active tween without running callbacks.
func (a *Animator) Clear() {
	for _, tw := range a.tweens {
		tw.active = false
	}
	a.tweens = a.tweens[:0]
}

func (a *Animator) remove(tw *Tween) {
	if i := slices.Index(a.tweens, tw); i >= 0 {
		a.tweens = slices.Delete(a.tweens, i, i+1)
	}
}

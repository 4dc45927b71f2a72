package reorder

import "testing"

func TestAnimator_FloatProgress(t *testing.T) {
	a := NewAnimator()
	var got []float32
	done := 0
	tw := a.AnimateFloat(0, 100, 1, func(v float32) { got = append(got, v) }, func() { done++ })

	a.Tick(0.25)
	a.Tick(0.25)
	if !tw.Active() || done != 0 {
		t.Fatal("tween finished early")
	}
	if !approx(tw.Progress(), 0.5) {
		t.Errorf("progress = %g, want 0.5", tw.Progress())
	}

	a.Tick(0.75) // overshoot clamps
	if tw.Active() {
		t.Error("tween should be done")
	}
	if done != 1 {
		t.Errorf("done calls = %d, want 1", done)
	}
	want := []float32{25, 50, 100}
	if len(got) != len(want) {
		t.Fatalf("steps = %v, want %v", got, want)
	}
	for i := range want {
		if !approx(got[i], want[i]) {
			t.Errorf("step %d = %g, want %g", i, got[i], want[i])
		}
	}
	if got[2] != 100 {
		t.Errorf("final value = %g, want exactly 100", got[2])
	}

	a.Tick(1)
	if done != 1 || len(got) != 3 {
		t.Error("finished tween kept running")
	}
}

func TestAnimator_CancelSkipsDone(t *testing.T) {
	a := NewAnimator()
	var last Vec2
	done := false
	tw := a.AnimateVec2(Vec2{}, Vec2{X: 10, Y: 20}, 1, func(v Vec2) { last = v }, func() { done = true })

	a.Tick(0.5)
	tw.Cancel()
	a.Tick(1)

	if done {
		t.Error("cancelled tween ran its completion")
	}
	if last != (Vec2{X: 5, Y: 10}) {
		t.Errorf("value = %+v, want left at the last step", last)
	}
	if a.Len() != 0 {
		t.Errorf("Len = %d, want 0", a.Len())
	}

	tw.Cancel()
	var nilTween *Tween
	nilTween.Cancel()
	if nilTween.Active() {
		t.Error("nil tween reported active")
	}
}

func TestAnimator_ZeroDuration(t *testing.T) {
	a := NewAnimator()
	var v float32
	done := false
	a.AnimateFloat(3, 7, 0, func(x float32) { v = x }, func() { done = true })

	a.Tick(0)
	if v != 7 || !done {
		t.Errorf("v = %g done = %v, want 7 true", v, done)
	}
}

func TestAnimator_CallbacksStartingTweens(t *testing.T) {
	a := NewAnimator()
	secondSteps := 0

	a.Animate(0.1, nil, func() {
		a.Animate(0.1, func(float32) { secondSteps++ }, nil)
	})

	a.Tick(0.1)
	if secondSteps != 0 {
		t.Error("tween started in a callback stepped in the same tick")
	}
	if a.Len() != 1 {
		t.Fatalf("Len = %d, want 1", a.Len())
	}
	a.Tick(0.1)
	if secondSteps != 1 {
		t.Errorf("second steps = %d, want 1", secondSteps)
	}
}

func TestAnimator_CancelDuringTick(t *testing.T) {
	a := NewAnimator()
	var later *Tween
	laterSteps := 0

	var self *Tween
	self = a.Animate(1, func(float32) {
		self.Cancel()
		later.Cancel()
	}, func() { t.Error("self-cancelled tween completed") })
	later = a.Animate(1, func(float32) { laterSteps++ }, nil)

	a.Tick(2)
	if laterSteps != 0 {
		t.Error("tween cancelled earlier in the tick still stepped")
	}
	if a.Len() != 0 {
		t.Errorf("Len = %d, want 0", a.Len())
	}
}

func TestAnimator_Clear(t *testing.T) {
	a := NewAnimator()
	tw := a.Animate(1, nil, func() { t.Error("cleared tween completed") })
	a.Animate(1, nil, nil)

	a.Clear()
	a.Tick(2)

	if tw.Active() || a.Len() != 0 {
		t.Error("Clear left tweens scheduled")
	}
}

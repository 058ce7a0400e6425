package runtime

import "testing"

func TestTimelineAddKill(t *testing.T) {
	tl := NewTimeline()

	id := tl.Add(&Tween{Target: "a", Duration: 1})
	if tl.Active() != 1 {
		t.Errorf("Active() = %d, want 1", tl.Active())
	}

	if !tl.Kill(id) {
		t.Error("Kill(id) = false, want true")
	}
	if tl.Kill(id) {
		t.Error("second Kill(id) = true, want false")
	}
	if tl.Active() != 0 {
		t.Errorf("Active() = %d, want 0", tl.Active())
	}
}

func TestTimelineKillAll(t *testing.T) {
	tl := NewTimeline()
	tl.Add(&Tween{Target: "a", Duration: 1})
	tl.Add(&Tween{Target: "b", Duration: 1})
	tl.Add(&Tween{Target: "c", Duration: 1})

	if n := tl.KillAll(); n != 3 {
		t.Errorf("KillAll() = %d, want 3", n)
	}
	if tl.Active() != 0 {
		t.Errorf("Active() = %d, want 0", tl.Active())
	}
	if n := tl.KillAll(); n != 0 {
		t.Errorf("second KillAll() = %d, want 0", n)
	}
}

func TestTimelineStepCompletes(t *testing.T) {
	tl := NewTimeline()

	completed := 0
	id := tl.Add(&Tween{Target: "a", Duration: 1, OnComplete: func() { completed++ }})

	tl.Step(0.5)
	if p, ok := tl.Progress(id); !ok || p != 0.5 {
		t.Errorf("Progress() = %v, %v, want 0.5, true", p, ok)
	}

	tl.Step(0.6)
	if completed != 1 {
		t.Errorf("OnComplete fired %d times, want 1", completed)
	}
	if tl.Active() != 0 {
		t.Errorf("Active() = %d after completion, want 0", tl.Active())
	}
	if _, ok := tl.Progress(id); ok {
		t.Error("Progress(completed id) ok = true, want false")
	}

	// Further steps must not re-fire the callback.
	tl.Step(1)
	if completed != 1 {
		t.Errorf("OnComplete fired %d times after extra step, want 1", completed)
	}
}

func TestTimelineZeroDuration(t *testing.T) {
	tl := NewTimeline()
	tl.Add(&Tween{Target: "a"})

	tl.Step(0.001)
	if tl.Active() != 0 {
		t.Errorf("Active() = %d, want 0 (zero duration completes immediately)", tl.Active())
	}
}

func TestTimelineKilledTweenDoesNotComplete(t *testing.T) {
	tl := NewTimeline()

	completed := false
	id := tl.Add(&Tween{Target: "a", Duration: 0.1, OnComplete: func() { completed = true }})
	tl.Kill(id)
	tl.Step(1)

	if completed {
		t.Error("killed tween fired OnComplete")
	}
}

func TestTimelineOnCompleteMayAddTween(t *testing.T) {
	tl := NewTimeline()

	tl.Add(&Tween{Target: "first", Duration: 0.1, OnComplete: func() {
		tl.Add(&Tween{Target: "second", Duration: 1})
	}})

	tl.Step(0.2) // must not deadlock
	if tl.Active() != 1 {
		t.Errorf("Active() = %d, want 1 (chained tween)", tl.Active())
	}
}

func TestTweenProgressClamped(t *testing.T) {
	tw := &Tween{Duration: 2}
	if p := tw.Progress(); p != 0 {
		t.Errorf("fresh Progress() = %v, want 0", p)
	}

	tl := NewTimeline()
	id := tl.Add(tw)
	tl.Step(1)
	if p, _ := tl.Progress(id); p != 0.5 {
		t.Errorf("Progress() = %v, want 0.5", p)
	}
}

package runtime

import "sync"

// Tween is one active animation registered on the timeline. The timeline
// only tracks progress bookkeeping; easing and rendering belong to the
// scripts and the host.
type Tween struct {
	// Target names what is being animated (a script-chosen label).
	Target string

	// Duration is the tween length in seconds. Non-positive durations
	// complete on the first Step.
	Duration float64

	// OnComplete fires once when the tween finishes naturally. Killed
	// tweens do not complete.
	OnComplete func()

	elapsed float64
	done    bool
}

// Progress returns completion in [0, 1].
func (t *Tween) Progress() float64 {
	if t.done || t.Duration <= 0 {
		return 1
	}
	p := t.elapsed / t.Duration
	if p > 1 {
		p = 1
	}
	return p
}

// Timeline is the process-wide registry of active animations. Every
// component instance shares it; killing animations here affects the whole
// process by design.
type Timeline struct {
	mu     sync.Mutex
	tweens map[int]*Tween
	nextID int
}

// NewTimeline creates an empty timeline.
func NewTimeline() *Timeline {
	return &Timeline{tweens: make(map[int]*Tween)}
}

// Add registers a tween and returns its id.
func (tl *Timeline) Add(t *Tween) int {
	tl.mu.Lock()
	defer tl.mu.Unlock()

	tl.nextID++
	tl.tweens[tl.nextID] = t
	return tl.nextID
}

// Kill removes a single tween. Returns false if the id is not active.
func (tl *Timeline) Kill(id int) bool {
	tl.mu.Lock()
	defer tl.mu.Unlock()

	if _, ok := tl.tweens[id]; !ok {
		return false
	}
	delete(tl.tweens, id)
	return true
}

// KillAll removes every active tween and returns how many were killed.
func (tl *Timeline) KillAll() int {
	tl.mu.Lock()
	defer tl.mu.Unlock()

	n := len(tl.tweens)
	tl.tweens = make(map[int]*Tween)
	return n
}

// Step advances every active tween by dt seconds. Completed tweens are
// removed after their OnComplete fires.
func (tl *Timeline) Step(dt float64) {
	tl.mu.Lock()
	var completed []*Tween
	for id, t := range tl.tweens {
		t.elapsed += dt
		if t.elapsed >= t.Duration {
			t.done = true
			delete(tl.tweens, id)
			completed = append(completed, t)
		}
	}
	tl.mu.Unlock()

	// Callbacks run outside the lock; they may add new tweens.
	for _, t := range completed {
		if t.OnComplete != nil {
			t.OnComplete()
		}
	}
}

// Active returns the number of active tweens.
func (tl *Timeline) Active() int {
	tl.mu.Lock()
	defer tl.mu.Unlock()
	return len(tl.tweens)
}

// Progress returns the progress of a tween by id.
func (tl *Timeline) Progress(id int) (float64, bool) {
	tl.mu.Lock()
	defer tl.mu.Unlock()

	t, ok := tl.tweens[id]
	if !ok {
		return 0, false
	}
	return t.Progress(), true
}

// Package selftest models the startup self-test that runs before the temperature controls become
// available.
package selftest

// Complete is the progress value of a finished self-test.
const Complete = 100

// DefaultStep is the progress added per tick.
const DefaultStep = 5

// Progress counts a self-test from 0 up to Complete.
type Progress struct {
	value int
	step  int
}

// New returns a self-test at 0 that advances by step per tick.  A non-positive step falls back to
// DefaultStep.
func New(step int) *Progress {
	if step <= 0 {
		step = DefaultStep
	}
	return &Progress{step: step}
}

// Tick advances the self-test and reports whether it has completed.
func (p *Progress) Tick() bool {
	if p.Done() {
		return true
	}

	p.value += p.step
	if p.value > Complete {
		p.value = Complete
	}
	return p.Done()
}

// Value is the progress in percent.
func (p *Progress) Value() int {
	return p.value
}

// Fraction is the progress in the range [0, 1].
func (p *Progress) Fraction() float64 {
	return float64(p.value) / Complete
}

func (p *Progress) Done() bool {
	return p.value >= Complete
}

// Ticks is the number of ticks needed to complete.
func (p *Progress) Ticks() int {
	return (Complete + p.step - 1) / p.step
}

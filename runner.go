package thermobox

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/rs/xid"

	"github.com/alittlebrighter/thermobox/controller"
	"github.com/alittlebrighter/thermobox/models"
	"github.com/alittlebrighter/thermobox/selftest"
	tmeter "github.com/alittlebrighter/thermobox/thermometer"
	"github.com/alittlebrighter/thermobox/util"
)

var (
	ErrStopped        = errors.New("runner has stopped")
	ErrUnknownCommand = errors.New("unknown command")
)

// Command is a user request forwarded to the controller.
type Command uint8

const (
	CmdStatus Command = iota
	CmdHeat
	CmdCool
	CmdLock
	CmdUnlock
)

func (cmd Command) String() string {
	switch cmd {
	case CmdHeat:
		return "heat"
	case CmdCool:
		return "cool"
	case CmdLock:
		return "lock"
	case CmdUnlock:
		return "unlock"
	default:
		return "status"
	}
}

// ParseCommand maps the words a user can type to a Command.
func ParseCommand(s string) (Command, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "heat", "warm":
		return CmdHeat, nil
	case "cool":
		return CmdCool, nil
	case "lock", "transport":
		return CmdLock, nil
	case "unlock":
		return CmdUnlock, nil
	case "status":
		return CmdStatus, nil
	}
	return CmdStatus, fmt.Errorf("%w: %q", ErrUnknownCommand, s)
}

// Observer is told about everything a Runner does.  Calls are made from the Runner's goroutine.
type Observer interface {
	SelfTestProgress(percent int)
	StateChanged(from, to controller.State, status models.Status)
	TemperatureChanged(status models.Status)
}

type nopObserver struct{}

func (nopObserver) SelfTestProgress(int) {}

func (nopObserver) StateChanged(controller.State, controller.State, models.Status) {}

func (nopObserver) TemperatureChanged(models.Status) {}

type request struct {
	cmd   Command
	reply chan models.Status
}

// Runner drives a controller without a user interface.  It runs the self-test, then owns the controller:
// commands and ticks are applied one at a time on the goroutine that called Run.
type Runner struct {
	ID string

	events      *util.RingBuffer
	config      *Config
	control     controller.Controller
	thermometer tmeter.Thermometer
	selfTest    *selftest.Progress
	observer    Observer

	requests chan request
	history  chan chan []*util.EventLog
	ready    chan struct{}
	done     chan struct{}
}

// NewRunner prepares a runner for c.  obs may be nil.
func NewRunner(cfg *Config, c controller.Controller, obs Observer) *Runner {
	if obs == nil {
		obs = nopObserver{}
	}

	return &Runner{
		ID:          xid.New().String(),
		events:      util.NewRingBuffer(cfg.EventBuffer),
		config:      cfg,
		control:     c,
		thermometer: tmeter.NewSimulated(c),
		selfTest:    selftest.New(cfg.SelfTest.Step),
		observer:    obs,
		requests:    make(chan request),
		history:     make(chan chan []*util.EventLog),
		ready:       make(chan struct{}),
		done:        make(chan struct{}),
	}
}

// Ready is closed once the self-test has completed.
func (r *Runner) Ready() <-chan struct{} {
	return r.ready
}

// Done is closed when Run returns.
func (r *Runner) Done() <-chan struct{} {
	return r.done
}

// Send applies cmd and returns the resulting status.  It blocks until the self-test has completed.
func (r *Runner) Send(ctx context.Context, cmd Command) (models.Status, error) {
	req := request{cmd: cmd, reply: make(chan models.Status, 1)}

	select {
	case r.requests <- req:
	case <-r.done:
		return models.Status{}, ErrStopped
	case <-ctx.Done():
		return models.Status{}, ctx.Err()
	}

	select {
	case status := <-req.reply:
		return status, nil
	case <-ctx.Done():
		return models.Status{}, ctx.Err()
	}
}

// Events returns a copy of the recorded events, oldest first.  Like Send it blocks until the self-test has
// completed.
func (r *Runner) Events(ctx context.Context) ([]*util.EventLog, error) {
	reply := make(chan []*util.EventLog, 1)

	select {
	case r.history <- reply:
	case <-r.done:
		return nil, ErrStopped
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	select {
	case events := <-reply:
		return events, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Run performs the self-test and then serves commands and ticks until ctx is cancelled.  It must only be
// called once.
func (r *Runner) Run(ctx context.Context) error {
	defer close(r.done)
	defer r.thermometer.Shutdown()

	log.Printf("[%s] Starting self-test.", r.ID)
	if err := r.runSelfTest(ctx); err != nil {
		log.Printf("[%s] Self-test interrupted at %d%%.", r.ID, r.selfTest.Value())
		return err
	}
	close(r.ready)

	status := models.NewStatus(r.control, r.config.UnitPreference)
	log.Printf("[%s] Self-test complete, controller %s at %s.", r.ID, status.State, status.Temperature)
	r.record(status.State)

	// the ticker only exists while the controller is changing the temperature
	var ticker *time.Ticker
	var tickC <-chan time.Time
	defer func() {
		if ticker != nil {
			ticker.Stop()
		}
	}()

	for {
		switch {
		case r.control.Running() && ticker == nil:
			ticker = time.NewTicker(r.config.TickInterval.Std())
			tickC = ticker.C
		case !r.control.Running() && ticker != nil:
			ticker.Stop()
			ticker, tickC = nil, nil
		}

		select {
		case <-tickC:
			r.apply(r.control.Tick)
		case req := <-r.requests:
			req.reply <- r.handle(req.cmd)
		case reply := <-r.history:
			reply <- r.snapshot()
		case <-ctx.Done():
			log.Printf("[%s] Stopping at %s.", r.ID, util.FormatTemperature(r.control.Temperature(), r.config.UnitPreference))
			return ctx.Err()
		}
	}
}

func (r *Runner) runSelfTest(ctx context.Context) error {
	ticker := time.NewTicker(r.config.SelfTest.Interval.Std())
	defer ticker.Stop()

	r.observer.SelfTestProgress(r.selfTest.Value())
	for !r.selfTest.Done() {
		select {
		case <-ticker.C:
			r.selfTest.Tick()
			r.observer.SelfTestProgress(r.selfTest.Value())
		case <-ctx.Done():
			return ctx.Err()
		}
	}

	return nil
}

func (r *Runner) handle(cmd Command) models.Status {
	switch cmd {
	case CmdHeat:
		return r.apply(r.control.StartHeating)
	case CmdCool:
		return r.apply(r.control.StartCooling)
	case CmdLock:
		return r.apply(r.control.Lock)
	case CmdUnlock:
		return r.apply(r.control.Unlock)
	default:
		return models.NewStatus(r.control, r.config.UnitPreference)
	}
}

// apply runs one controller transition and reports what changed.
func (r *Runner) apply(transition func()) models.Status {
	from := r.control.State()
	before := r.control.Temperature()

	transition()

	status := models.NewStatus(r.control, r.config.UnitPreference)
	stateChanged := status.State != from
	tempChanged := r.control.Temperature() != before

	if stateChanged {
		log.Printf("[%s] %s -> %s at %s.", r.ID, from, status.State, status.Temperature)
		r.observer.StateChanged(from, status.State, status)
	}
	if tempChanged {
		r.observer.TemperatureChanged(status)
	}
	if stateChanged || tempChanged {
		r.record(status.State)
	}

	return status
}

func (r *Runner) record(state controller.State) {
	temp, units, err := r.thermometer.ReadTemperature()
	if err != nil {
		log.Printf("[%s] Error reading temperature: %s", r.ID, err.Error())
		return
	}

	r.events.Add(&util.EventLog{
		Timestamp:   time.Now(),
		Temperature: temp,
		Units:       units,
		State:       state,
		Direction:   r.control.Direction(),
	})
}

func (r *Runner) snapshot() []*util.EventLog {
	stored := r.events.GetAll()
	events := make([]*util.EventLog, len(stored))
	for i, event := range stored {
		copied := *event
		events[i] = &copied
	}
	return events
}

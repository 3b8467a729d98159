package main

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/spf13/cobra"

	"github.com/alittlebrighter/thermobox"
	"github.com/alittlebrighter/thermobox/controller"
	"github.com/alittlebrighter/thermobox/models"
)

var verbose bool

var headlessCmd = &cobra.Command{
	Use:   "headless",
	Short: "Run the controller without a UI, reading commands from stdin.",
	Long: `Run the controller without a UI. Commands are read one per line from stdin:

  heat | warm        start warming up
  cool               start cooling down
  lock | transport   enter transport mode
  unlock             leave transport mode
  status             print the current status
  events | log       print the recorded events, oldest first
  wait               block until the controller stops heating or cooling
  quit               stop

The final status is printed as JSON on exit.`,
	RunE: runHeadless,
}

func init() {
	headlessCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Print every temperature change.")
}

func runHeadless(cmd *cobra.Command, args []string) error {
	if _, err := openLogFile(); err != nil {
		return err
	}

	control, err := config.NewController()
	if err != nil {
		return err
	}

	out := &syncWriter{w: cmd.OutOrStdout()}
	runner := thermobox.NewRunner(config, control, &consoleObserver{out: out, verbose: verbose})

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	errc := make(chan error, 1)
	go func() { errc <- runner.Run(ctx) }()

	serveErr := serveCommands(ctx, runner, cmd.InOrStdin(), out, config.TickInterval.Std())
	cancel()
	if err := <-errc; err != nil && !errors.Is(err, context.Canceled) {
		return err
	}

	if err := json.NewEncoder(out).Encode(models.NewStatus(control, config.UnitPreference)); err != nil {
		return err
	}

	if errors.Is(serveErr, context.Canceled) {
		return nil
	}
	return serveErr
}

// serveCommands forwards stdin lines to the runner until quit, EOF or cancellation.
func serveCommands(ctx context.Context, runner *thermobox.Runner, in io.Reader, out io.Writer, poll time.Duration) error {
	lines := make(chan string)
	scanErr := make(chan error, 1)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
		scanErr <- scanner.Err()
	}()

	for {
		var line string
		select {
		case l, ok := <-lines:
			if !ok {
				select {
				case err := <-scanErr:
					return err
				default:
					return nil
				}
			}
			line = strings.TrimSpace(l)
		case <-ctx.Done():
			return ctx.Err()
		}

		switch strings.ToLower(line) {
		case "":
			continue
		case "quit", "exit":
			return nil
		case "events", "log":
			events, err := runner.Events(ctx)
			if err != nil {
				return err
			}
			for _, event := range events {
				fmt.Fprintln(out, event.String())
			}
			continue
		case "wait":
			status, err := waitInactive(ctx, runner, poll)
			if err != nil {
				return err
			}
			printStatus(out, status)
			continue
		}

		command, err := thermobox.ParseCommand(line)
		if err != nil {
			fmt.Fprintln(out, "ERROR: "+err.Error())
			continue
		}

		status, err := runner.Send(ctx, command)
		if err != nil {
			return err
		}
		printStatus(out, status)
	}
}

// waitInactive polls the runner until the controller is neither heating nor cooling.
func waitInactive(ctx context.Context, runner *thermobox.Runner, poll time.Duration) (models.Status, error) {
	for {
		status, err := runner.Send(ctx, thermobox.CmdStatus)
		if err != nil || !status.State.Active() {
			return status, err
		}

		select {
		case <-time.After(poll):
		case <-ctx.Done():
			return status, ctx.Err()
		}
	}
}

func printStatus(out io.Writer, status models.Status) {
	fmt.Fprintf(out, "state=%s temperature=%s transport=%t\n", status.State, status.Temperature, status.Locked)
}

// consoleObserver prints runner progress for a human watching the terminal.
type consoleObserver struct {
	out     io.Writer
	verbose bool
}

func (o *consoleObserver) SelfTestProgress(percent int) {
	if percent%25 == 0 {
		fmt.Fprintf(o.out, "self-test %d%%\n", percent)
	}
}

func (o *consoleObserver) StateChanged(from, to controller.State, status models.Status) {
	fmt.Fprintf(o.out, "%s -> %s at %s\n", from, to, status.Temperature)
}

func (o *consoleObserver) TemperatureChanged(status models.Status) {
	if o.verbose {
		fmt.Fprintf(o.out, "temperature=%s\n", status.Temperature)
	}
}

// syncWriter lets the runner goroutine and the command loop share one output.
type syncWriter struct {
	mu sync.Mutex
	w  io.Writer
}

func (s *syncWriter) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.w.Write(p)
}

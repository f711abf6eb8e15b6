package demo

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/liveout/pkg/config"
	"github.com/arthur-debert/liveout/pkg/display"
	"github.com/arthur-debert/liveout/pkg/errors"
	"github.com/arthur-debert/liveout/pkg/logging"
	"github.com/arthur-debert/liveout/pkg/style"
	"github.com/arthur-debert/liveout/pkg/table"
)

// NewCommand creates the demo command
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "demo",
		Short:   MsgShort,
		Long:    MsgLong,
		Example: MsgExample,
		GroupID: "core",
		RunE: func(cmd *cobra.Command, args []string) error {
			steps, _ := cmd.Flags().GetInt("steps")
			fail, _ := cmd.Flags().GetInt("fail")
			interval, _ := cmd.Flags().GetDuration("interval")

			if steps < 1 {
				return errors.Newf(errors.ErrInvalidInput, "steps must be at least 1, got %d", steps)
			}

			cfg := config.FromContext(cmd.Context())
			sess, err := display.NewSession(cfg.Selector())
			if err != nil {
				return err
			}

			logging.GetLogger("demo").Info().
				Str("backend", sess.Backend().ID()).
				Int("steps", steps).
				Msg("starting demo run")

			run(sess, steps, fail, interval)
			return nil
		},
	}

	cmd.Flags().Int("steps", 4, "Number of steps to simulate")
	cmd.Flags().Duration("interval", 300*time.Millisecond, "Delay between steps")
	cmd.Flags().Int("fail", 0, "Make this step fail (0 for none)")

	return cmd
}

// run simulates a multi-step job through the session: a progress frame
// per state change, then the slot is cleared and replaced with a styled
// summary table. On an updating backend the frames repaint one slot; on
// cli they append.
func run(sess *display.Session, steps, fail int, interval time.Duration) {
	states := make([]style.Status, steps)
	elapsed := make([]time.Duration, steps)
	for i := range states {
		states[i] = style.StatusPending
	}

	mon := display.NewMonitor("Job", "Step", "Elapsed")
	mon.Set("Job", "liveout demo")

	start := time.Now()
	for i := 0; i < steps; i++ {
		states[i] = style.StatusRunning
		stepStart := time.Now()

		mon.Set("Step", fmt.Sprintf("%d of %d", i+1, steps)).
			Set("Elapsed", round(time.Since(start)))
		sess.Show(frame(mon, states, elapsed))

		time.Sleep(interval)
		elapsed[i] = time.Since(stepStart)

		if i+1 == fail {
			states[i] = style.StatusFailed
			break
		}
		states[i] = style.StatusDone
	}

	mon.Set("Elapsed", round(time.Since(start)))
	sess.Show(frame(mon, states, elapsed))

	sess.ClearDisplay()
	sess.Show(table.NewStyled(summary(states, elapsed)))
}

// frame renders one progress snapshot: the monitor panel, a line per
// step, and the aggregate state.
func frame(mon *display.Monitor, states []style.Status, elapsed []time.Duration) string {
	lines := []string{mon.Table().String(), ""}
	for i, state := range states {
		lines = append(lines, style.RenderStep(style.StepStatus{
			Name:    stepName(i),
			Status:  state,
			Elapsed: stepElapsed(state, elapsed[i]),
		}))
	}
	lines = append(lines, "", "  overall: "+string(style.AggregateStatus(states)))
	return strings.Join(lines, "\n")
}

// summary tabulates the final state of every step.
func summary(states []style.Status, elapsed []time.Duration) *table.Table {
	t := table.New("Step", "Status", "Elapsed")
	for i, state := range states {
		t.Append(stepName(i), string(state), stepElapsed(state, elapsed[i]))
	}
	return t
}

func stepName(i int) string {
	return fmt.Sprintf("step %d", i+1)
}

// stepElapsed formats a step's duration once the step has finished.
func stepElapsed(state style.Status, d time.Duration) string {
	if state != style.StatusDone && state != style.StatusFailed {
		return ""
	}
	return round(d)
}

func round(d time.Duration) string {
	return d.Round(time.Millisecond).String()
}

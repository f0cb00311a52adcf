package cli

import (
	"context"
	"fmt"
	"os/exec"
	"time"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/hamed0406/healthchecks/pkg/ping"
)

const closingPingTimeout = 10 * time.Second

func (a *App) list(ctx context.Context) error {
	api, err := a.manageClient()
	if err != nil {
		return err
	}
	checks, err := api.Checks(ctx)
	if err != nil {
		return err
	}
	a.Logger.Info("checks_listed", zap.Int("count", len(checks)))

	rows := make([][]string, 0, len(checks))
	for _, c := range checks {
		last := "-"
		t, ok, err := c.LastPingTime()
		if err != nil {
			return fmt.Errorf("check %q: last_ping: %w", c.Name, err)
		}
		if ok {
			last = t.Format(lastPingLayout)
		}
		rows = append(rows, []string{c.Name, last})
	}
	renderTable(a.Stdout, []string{"Name", "Last Ping"}, rows)
	return nil
}

func (a *App) ping(ctx context.Context, args []string) error {
	if len(args) < 1 || len(args) > 2 {
		return fmt.Errorf("%w: ping <uuid> [success|fail|start]", ErrUsage)
	}
	sig := ping.SignalSuccess
	if len(args) == 2 {
		s, ok := ping.ParseSignal(args[1])
		if !ok {
			return fmt.Errorf("%w: unknown signal %q", ErrUsage, args[1])
		}
		sig = s
	}

	c, err := a.pingClient(args[0])
	if err != nil {
		return err
	}
	if res := a.send(ctx, c, sig); !res.OK() {
		return notAcknowledged(res)
	}
	fmt.Fprintf(a.Stdout, "%s: %s acknowledged\n", c.UUID(), sig)
	return nil
}

// run wraps a job: start timer, execute, then report success or failure
// depending on the command's exit status.
func (a *App) run(ctx context.Context, args []string) error {
	if len(args) > 1 && args[1] == "--" {
		args = append(args[:1:1], args[2:]...)
	}
	if len(args) < 2 {
		return fmt.Errorf("%w: run <uuid> -- <command> [args]", ErrUsage)
	}

	c, err := a.pingClient(args[0])
	if err != nil {
		return err
	}

	var errs error
	if res := a.send(ctx, c, ping.SignalStart); !res.OK() {
		errs = multierr.Append(errs, notAcknowledged(res))
	}

	cmd := exec.CommandContext(ctx, args[1], args[2:]...)
	cmd.Stdin = a.Stdin
	cmd.Stdout = a.Stdout
	cmd.Stderr = a.Stderr
	runErr := cmd.Run()

	sig := ping.SignalSuccess
	if runErr != nil {
		sig = ping.SignalFail
		a.Logger.Warn("command_failed", zap.String("command", args[1]), zap.Error(runErr))
		errs = multierr.Append(errs, fmt.Errorf("command %q: %w", args[1], runErr))
	}
	// the job context may already be cancelled by a signal; the closing
	// ping still has to reach the service
	fctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), closingPingTimeout)
	defer cancel()
	if res := a.send(fctx, c, sig); !res.OK() {
		errs = multierr.Append(errs, notAcknowledged(res))
	}
	return errs
}

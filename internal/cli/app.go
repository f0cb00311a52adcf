package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/hamed0406/healthchecks/internal/config"
	"github.com/hamed0406/healthchecks/internal/version"
	"github.com/hamed0406/healthchecks/pkg/manage"
	"github.com/hamed0406/healthchecks/pkg/ping"
)

var (
	ErrUsage             = errors.New("usage")
	ErrUnknownSubcommand = errors.New("unknown subcommand")
	ErrNotAcknowledged   = errors.New("ping not acknowledged")
)

const Usage = `Usage: hcctl [flags] <command> [args]

Commands:
  list                              list checks with their last ping
  ping <uuid> [success|fail|start]  send a single ping
  run <uuid> -- <command> [args]    ping start, run command, ping success or fail
  version                           print the client version

Environment:
  HEALTHCHECKS_TOKEN      management API key (required by list)
  HEALTHCHECKS_USERAGENT  User-Agent header override
`

type App struct {
	Config *config.Config
	Logger *zap.Logger
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer

	// HTTPClient is shared by the ping and management clients; nil keeps
	// each client's default.
	HTTPClient ping.Doer
}

func New(cfg *config.Config, l *zap.Logger, stdin io.Reader, stdout, stderr io.Writer) *App {
	if l == nil {
		l = zap.NewNop()
	}
	return &App{Config: cfg, Logger: l, Stdin: stdin, Stdout: stdout, Stderr: stderr}
}

// Run dispatches args[0] to its subcommand.
func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		fmt.Fprint(a.Stderr, Usage)
		return fmt.Errorf("%w: missing subcommand", ErrUsage)
	}

	switch cmd, rest := args[0], args[1:]; cmd {
	case "list":
		return a.list(ctx)
	case "ping":
		return a.ping(ctx, rest)
	case "run":
		return a.run(ctx, rest)
	case "version":
		fmt.Fprintln(a.Stdout, version.UserAgent())
		return nil
	case "help":
		fmt.Fprint(a.Stdout, Usage)
		return nil
	default:
		return fmt.Errorf("%w: %s", ErrUnknownSubcommand, cmd)
	}
}

func (a *App) pingClient(id string) (*ping.Client, error) {
	return ping.New(id, a.Config.UserAgent,
		ping.WithBaseURL(a.Config.PingURL),
		ping.WithHTTPClient(a.HTTPClient),
	)
}

func (a *App) manageClient() (*manage.Client, error) {
	if err := a.Config.RequireToken(); err != nil {
		return nil, err
	}
	opts := []manage.Option{manage.WithBaseURL(a.Config.APIURL)}
	if a.HTTPClient != nil {
		opts = append(opts, manage.WithHTTPClient(a.HTTPClient))
	}
	return manage.New(a.Config.Token, a.Config.UserAgent, opts...)
}

// send pings once and logs the outcome.
func (a *App) send(ctx context.Context, c *ping.Client, s ping.Signal) ping.Result {
	res := c.Send(ctx, s)
	fields := []zap.Field{
		zap.String("uuid", c.UUID()),
		zap.String("signal", s.String()),
		zap.String("outcome", res.Outcome.String()),
		zap.Int("status", res.StatusCode),
		zap.Float64("latency_ms", res.LatencyMS),
	}
	if res.OK() {
		a.Logger.Info("ping_sent", fields...)
	} else {
		a.Logger.Warn("ping_failed", append(fields, zap.Error(res.Err))...)
	}
	return res
}

func notAcknowledged(res ping.Result) error {
	if res.Outcome == ping.Unreachable {
		return fmt.Errorf("%w: %s %s: %v", ErrNotAcknowledged, res.Signal, res.Outcome, res.Err)
	}
	return fmt.Errorf("%w: %s %s with HTTP %d", ErrNotAcknowledged, res.Signal, res.Outcome, res.StatusCode)
}

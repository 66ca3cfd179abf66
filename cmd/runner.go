package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/urfave/cli/v3"
	"github.com/videotube/vtx/internal/api"
	"github.com/videotube/vtx/internal/resources"
	"github.com/videotube/vtx/internal/session"
	"github.com/videotube/vtx/internal/shared"
)

// Runner holds all dependencies for CLI commands and provides methods for each command action.
type Runner struct {
	config    *shared.Config
	client    *api.Client
	svc       *session.Service
	boot      *session.Initializer
	refresher *session.Refresher
	coord     *session.Coordinator
	videos    *resources.VideoService
	comments  *resources.CommentService
	tweets    *resources.TweetService
	likes     *resources.LikeService
	subs      *resources.SubscriptionService
	logger    *log.Logger
	output    io.Writer
}

// RunnerOpts contains configuration options for creating a Runner.
type RunnerOpts struct {
	Config *shared.Config
	Client *api.Client
	Logger *log.Logger
	Output io.Writer
}

// NewRunner creates a new Runner with the provided configuration
func NewRunner(opts RunnerOpts) *Runner {
	if opts.Config == nil {
		opts.Config = shared.DefaultConfig()
	}
	if opts.Logger == nil {
		opts.Logger = shared.NewLogger(nil)
	}
	if opts.Output == nil {
		opts.Output = os.Stdout
	}

	store := session.NewStore(opts.Logger)
	svc := session.NewService(opts.Client, store, opts.Logger)

	return &Runner{
		config:    opts.Config,
		client:    opts.Client,
		svc:       svc,
		boot:      session.NewInitializer(svc),
		refresher: session.NewRefresher(svc, opts.Config.Session.RefreshInterval(), opts.Logger),
		coord:     session.NewCoordinator(store, opts.Client.Failures(), opts.Logger),
		videos:    resources.NewVideoService(opts.Client, opts.Logger),
		comments:  resources.NewCommentService(opts.Client, opts.Logger),
		tweets:    resources.NewTweetService(opts.Client, opts.Logger),
		likes:     resources.NewLikeService(opts.Client, opts.Logger),
		subs:      resources.NewSubscriptionService(opts.Client, opts.Logger),
		logger:    opts.Logger,
		output:    opts.Output,
	}
}

// SetLogger swaps the runner's logger, for commands that own the terminal.
func (r *Runner) SetLogger(logger *log.Logger) {
	r.logger = logger
}

func (r *Runner) register() []*cli.Command {
	commands := []*cli.Command{}
	for _, fn := range [](func(*Runner) *cli.Command){
		setupCommand, authCommand, videosCommand, commentsCommand, tweetsCommand, likesCommand, subsCommand, themeCommand, tuiCommand,
	} {
		commands = append(commands, fn(r))
	}

	return commands
}

// resolveSession runs the one-time silent session restore before a command
// that depends on knowing who the caller is.
func (r *Runner) resolveSession(ctx context.Context) error {
	if err := r.boot.Ensure(ctx); err != nil {
		return fmt.Errorf("failed to resolve session: %w", err)
	}
	return nil
}

// requireAuth resolves the session and fails when no identity is present.
func (r *Runner) requireAuth(ctx context.Context) error {
	if err := r.resolveSession(ctx); err != nil {
		return err
	}
	if !r.svc.Store().State().Authenticated() {
		return fmt.Errorf("%w: run 'vtx auth login' first", shared.ErrNotAuthenticated)
	}
	return nil
}

func (r *Runner) writeJSON(data any, pretty bool) error {
	var output []byte
	var err error

	if pretty {
		output, err = json.MarshalIndent(data, "", "  ")
	} else {
		output, err = json.Marshal(data)
	}

	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if _, err := r.output.Write(output); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	if _, err := r.output.Write([]byte("\n")); err != nil {
		return fmt.Errorf("failed to write newline: %w", err)
	}

	return nil
}

func (r *Runner) writePlain(format string, args ...any) error {
	text := fmt.Sprintf(format, args...)
	if _, err := r.output.Write([]byte(text)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func (r *Runner) writePlainln(format string, args ...any) error {
	text := "\n" + fmt.Sprintf(format, args...) + "\n"
	if _, err := r.output.Write([]byte(text)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

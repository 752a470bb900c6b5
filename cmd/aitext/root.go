package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/leofalp/aitext/core/client"
	"github.com/leofalp/aitext/core/client/middleware"
	"github.com/leofalp/aitext/providers/ai"
	"github.com/leofalp/aitext/providers/ai/gemini"
	"github.com/leofalp/aitext/providers/observability"
	"github.com/leofalp/aitext/providers/observability/slogobs"
)

// errResultNotOK is returned when --json produced a result with OK=false.
var errResultNotOK = errors.New("structured result is not ok")

type rootOptions struct {
	model    string
	json     bool
	repair   bool
	output   string
	logLevel string
}

// Execute runs the root command with signal handling.
func Execute(ctx context.Context) error {
	ctx, cancel := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	return newRootCmd().ExecuteContext(ctx)
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "aitext [flags] prompt...",
		Short: "Generate text or JSON with Gemini",
		Long: `aitext sends a prompt to a Gemini model and prints the reply.

Without --json the reply is printed as text with surrounding whitespace
removed. With --json the model is asked for JSON only and the reply is
decoded into a result object {ok, data, text, error}; the command exits
with status 1 when ok is false.

The API key is read from GEMINI_API_KEY.`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRoot(cmd, opts, strings.Join(args, " "))
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.model, "model", "m", string(gemini.DefaultModel), "model identifier, one of "+modelList())
	flags.BoolVar(&opts.json, "json", false, "ask for JSON and print the decoded result")
	flags.BoolVar(&opts.repair, "repair", false, "with --json, repair malformed JSON before giving up")
	flags.StringVarP(&opts.output, "output", "o", string(formatJSON), "result encoding with --json: json or yaml")
	flags.StringVar(&opts.logLevel, "log-level", "", "log level: debug, info, warn or error (default from AITEXT_LOG_LEVEL, else warn)")

	return cmd
}

func runRoot(cmd *cobra.Command, opts *rootOptions, prompt string) error {
	ctx := cmd.Context()
	stdout := cmd.OutOrStdout()

	format, err := parseOutputFormat(opts.output)
	if err != nil {
		return err
	}
	level, err := resolveLogLevel(opts.logLevel)
	if err != nil {
		return err
	}

	observer := slogobs.New(
		slogobs.WithOutput(cmd.ErrOrStderr()),
		slogobs.WithLevel(level),
	)

	c, err := client.New(gemini.New(),
		client.WithObserver(observer),
		client.WithMiddleware(middleware.NewLoggingMiddleware(observer.Logger(), middleware.LogLevelStandard)),
	)
	if err != nil {
		return err
	}

	model := ai.Model(opts.model)
	if !gemini.IsKnown(model) {
		observer.Warn(ctx, "unknown model, forwarding as-is",
			observability.String(observability.AttrLLMModel, opts.model),
		)
	}

	credential := os.Getenv("GEMINI_API_KEY")
	callOpts := []client.GenerateOption{client.WithModel(model)}

	if !opts.json {
		text, err := c.GenerateText(ctx, credential, prompt, callOpts...)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(stdout, text)
		return err
	}

	if opts.repair {
		callOpts = append(callOpts, client.WithRepair())
	}

	result := client.GenerateJSON[any](ctx, c, credential, prompt, callOpts...)
	if err := writeResult(stdout, format, result); err != nil {
		return fmt.Errorf("failed to write result: %w", err)
	}
	if !result.OK {
		return errResultNotOK
	}
	return nil
}

// resolveLogLevel prefers the flag, then the environment, then warn so that
// the per-call logs stay out of the way of the printed answer.
func resolveLogLevel(flagValue string) (slog.Level, error) {
	if flagValue != "" {
		level, err := slogobs.ParseLevel(flagValue)
		if err != nil {
			return level, fmt.Errorf("invalid --log-level: %w", err)
		}
		return level, nil
	}
	if os.Getenv("AITEXT_LOG_LEVEL") != "" || os.Getenv("LOG_LEVEL") != "" {
		return slogobs.LevelFromEnv(), nil
	}
	return slog.LevelWarn, nil
}

func modelList() string {
	names := make([]string, 0, len(gemini.Models()))
	for _, m := range gemini.Models() {
		names = append(names, string(m))
	}
	return strings.Join(names, ", ")
}

package cli

import (
	"github.com/Station-Manager/logsink"
	"github.com/spf13/cobra"
)

// NewRootCommand builds the logsink-demo command. Log lines go to stdout and
// driver diagnostics to stderr unless the command's writers are replaced.
func NewRootCommand() *cobra.Command {
	opts := defaultOptions()

	cmd := &cobra.Command{
		Use:   "logsink-demo [destinationPath]",
		Short: "Exercise a shared log sink from one and then many goroutines",
		Long: `logsink-demo opens a log sink at DEBUG severity, writes a scripted
sequence of lines from the main goroutine, then starts a fixed number of
workers that each log a fixed sequence of lines, waits for them and writes a
final line.

Every line goes to stdout and is appended to the destination file
(default "` + defaultDestination + `").`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args, opts)
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.configPath, "config", emptyString, "YAML file with path, level, threads, messages and delay")
	f.StringVar(&opts.Level, "level", opts.Level, "minimum severity (debug, info, warning, error, critical)")
	f.IntVar(&opts.Threads, "threads", opts.Threads, "number of worker goroutines")
	f.IntVar(&opts.Messages, "messages", opts.Messages, "messages per worker")
	f.DurationVar(&opts.Delay, "delay", opts.Delay, "pause between a worker's messages")

	return cmd
}

// Execute runs the root command against os.Args.
func Execute() error {
	return NewRootCommand().Execute()
}

func run(cmd *cobra.Command, args []string, flags *options) error {
	diag := logsink.NewDiagnostics(cmd.ErrOrStderr())

	opts, err := resolveOptions(cmd, args, flags)
	if err != nil {
		logsink.WithErrorChain(diag.Error(), err).Msg("Invalid demo configuration")
		return err
	}
	minimum, err := logsink.ParseSeverity(opts.Level)
	if err != nil {
		logsink.WithErrorChain(diag.Error(), err).Msg("Invalid demo configuration")
		return err
	}

	sink := logsink.New(opts.Path, minimum,
		logsink.WithConsole(cmd.OutOrStdout()),
		logsink.WithDiagnostics(cmd.ErrOrStderr()),
	)
	defer func() {
		if cerr := sink.Close(); cerr != nil {
			logsink.WithErrorChain(diag.Warn(), cerr).Msg("Closing log sink")
		}
	}()

	runScenario(sink, opts)
	return nil
}

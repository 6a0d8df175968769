package cli

import (
	stderrs "errors"
	"io"
	"os"
	"time"

	"github.com/Station-Manager/errors"
	"github.com/Station-Manager/logsink"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

const (
	defaultDestination = "myLogs.txt"
	defaultLevel       = "debug"
	defaultThreads     = 5
	defaultMessages    = 5
	defaultDelay       = 100 * time.Millisecond
	emptyString        = ""
)

type options struct {
	logsink.Config `yaml:",inline"`

	Threads  int           `yaml:"threads" validate:"min=1,max=1024"`
	Messages int           `yaml:"messages" validate:"gte=0"`
	Delay    time.Duration `yaml:"delay" validate:"gte=0"`

	configPath string
}

func defaultOptions() *options {
	return &options{
		Config:   logsink.Config{Path: defaultDestination, Level: defaultLevel},
		Threads:  defaultThreads,
		Messages: defaultMessages,
		Delay:    defaultDelay,
	}
}

// resolveOptions layers, lowest first: built-in defaults, the --config file,
// flags set on the command line, and the positional destination path.
func resolveOptions(cmd *cobra.Command, args []string, flags *options) (*options, error) {
	const op errors.Op = "cli.resolveOptions"

	opts := *flags
	if flags.configPath != emptyString {
		fileOpts, err := loadOptions(flags.configPath)
		if err != nil {
			return nil, err
		}
		set := cmd.Flags().Changed
		if set("level") {
			fileOpts.Level = flags.Level
		}
		if set("threads") {
			fileOpts.Threads = flags.Threads
		}
		if set("messages") {
			fileOpts.Messages = flags.Messages
		}
		if set("delay") {
			fileOpts.Delay = flags.Delay
		}
		opts = *fileOpts
	}
	if len(args) > 0 && args[0] != emptyString {
		opts.Path = args[0]
	}

	opts.Config.Defaults()
	if err := logsink.Validator().Struct(&opts); err != nil {
		return nil, errors.New(op).Err(err).Msg("Demo options are invalid.")
	}
	return &opts, nil
}

func loadOptions(path string) (*options, error) {
	const op errors.Op = "cli.loadOptions"

	f, err := os.Open(path)
	if err != nil {
		return nil, errors.New(op).Err(err).Msg("Demo config file could not be read.")
	}
	defer f.Close()

	opts := defaultOptions()
	if err = yaml.NewDecoder(f).Decode(opts); err != nil && !stderrs.Is(err, io.EOF) {
		return nil, errors.New(op).Err(err).Msg("Demo config file could not be decoded.")
	}
	return opts, nil
}

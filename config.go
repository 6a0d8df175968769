package logsink

import (
	stderrs "errors"
	"io"
	"os"
	"strings"

	"github.com/Station-Manager/errors"
	"gopkg.in/yaml.v3"
)

// Config is the file form of a sink's construction parameters. It is read
// once; a running sink is never reconfigured.
type Config struct {
	Path  string `yaml:"path" validate:"required"`
	Level string `yaml:"level" validate:"required,oneof=trace debug info warn warning error critical fatal panic"`
}

// Defaults fills empty fields with DefaultPath and DefaultSeverity and
// lower-cases the level name.
func (c *Config) Defaults() {
	c.Level = strings.ToLower(strings.TrimSpace(c.Level))
	if c.Path == emptyString {
		c.Path = DefaultPath
	}
	if c.Level == emptyString {
		c.Level = "info"
	}
}

// LoadConfig decodes a YAML config file, applies defaults and validates it.
func LoadConfig(path string) (*Config, error) {
	const op errors.Op = "logsink.LoadConfig"

	f, err := os.Open(path)
	if err != nil {
		return nil, errors.New(op).Err(err).Msg(errMsgConfigRead)
	}
	defer f.Close()

	var cfg Config
	if err = yaml.NewDecoder(f).Decode(&cfg); err != nil && !stderrs.Is(err, io.EOF) {
		return nil, errors.New(op).Err(err).Msg(errMsgConfigDecode)
	}
	cfg.Defaults()
	if err = validateConfig(&cfg); err != nil {
		return nil, errors.New(op).Err(err).Msg(errMsgConfigInvalid)
	}
	return &cfg, nil
}

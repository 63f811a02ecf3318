package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	oaepbox "github.com/oaepbox/client-go"
)

// envPrefix is the prefix for environment variables, e.g. OAEPBOX_PUBLIC_KEY.
const envPrefix = "OAEPBOX"

// Config holds the process-level dependencies of the CLI.
type Config struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
	// EnvFile is loaded into the environment before flags are read, if it
	// exists. Empty disables loading.
	EnvFile string
}

// DefaultConfig returns a Config wired to the process stdio.
func DefaultConfig() Config {
	return Config{
		Stdin:   os.Stdin,
		Stdout:  os.Stdout,
		Stderr:  os.Stderr,
		EnvFile: ".env",
	}
}

// settings are the resolved values of flags, environment and config file.
type settings struct {
	Encoding   string `mapstructure:"encoding"`
	LogLevel   string `mapstructure:"log-level"`
	PublicKey  string `mapstructure:"public-key"`
	PrivateKey string `mapstructure:"private-key"`
}

// loadSettings resolves settings with precedence flag > env > config file > default.
func loadSettings(cmd *cobra.Command) (*settings, error) {
	v := viper.New()
	v.SetDefault("encoding", "utf8")
	v.SetDefault("log-level", "warn")
	v.SetDefault("public-key", "")
	v.SetDefault("private-key", "")

	if path, _ := cmd.Flags().GetString("config"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return nil, err
	}

	var s settings
	if err := v.Unmarshal(&s); err != nil {
		return nil, fmt.Errorf("parse settings: %w", err)
	}
	return &s, nil
}

// loadEnvFile loads path into the process environment. A missing file is not
// an error.
func loadEnvFile(path string) error {
	if path == "" {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

// newLogger builds a console logger writing to w at the named level.
func newLogger(w io.Writer, level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, err
	}

	encoderCfg := zap.NewDevelopmentEncoderConfig()
	encoderCfg.TimeKey = ""
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encoderCfg), zapcore.AddSync(w), lvl)
	return zap.New(core), nil
}

// newBox builds the Box for a command from resolved settings.
func newBox(s *settings, logger *zap.Logger) (*oaepbox.Box, error) {
	enc, err := oaepbox.ParseTextEncoding(s.Encoding)
	if err != nil {
		return nil, err
	}
	return oaepbox.New(
		oaepbox.WithTextEncoding(enc),
		oaepbox.WithLogger(logger),
	), nil
}

// readKey returns the JWK named by value: inline JSON if it starts with '{',
// "-" for stdin, otherwise a file path.
func readKey(value string, stdin io.Reader) (string, error) {
	value = strings.TrimSpace(value)
	switch {
	case value == "":
		return "", errors.New("no key given")
	case strings.HasPrefix(value, "{"):
		return value, nil
	case value == "-":
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return strings.TrimSpace(string(data)), nil
	default:
		data, err := os.ReadFile(value)
		if err != nil {
			return "", err
		}
		return strings.TrimSpace(string(data)), nil
	}
}

// Command oaepbox generates RSA-OAEP key pairs and encrypts or decrypts short
// messages from the command line.
//
//	oaepbox pair > pair.json
//	jq -r .pub pair.json > pub.jwk
//	oaepbox encrypt --public-key pub.jwk "hello world" > sealed.json
//	oaepbox decrypt --private-key priv.jwk < sealed.json
//
// Keys may also be passed inline or through OAEPBOX_PUBLIC_KEY and
// OAEPBOX_PRIVATE_KEY, read from a .env file or a YAML config file.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	oaepbox "github.com/oaepbox/client-go"
)

// commandContext carries what every subcommand needs after settings are resolved.
type commandContext struct {
	settings *settings
	logger   *zap.Logger
	box      *oaepbox.Box
}

func run(args []string, cfg Config) error {
	if err := loadEnvFile(cfg.EnvFile); err != nil {
		return err
	}

	root := newRootCmd(cfg)
	if len(args) > 0 {
		args = args[1:]
	}
	root.SetArgs(args)
	root.SetIn(cfg.Stdin)
	root.SetOut(cfg.Stdout)
	root.SetErr(cfg.Stderr)

	return root.ExecuteContext(context.Background())
}

func newRootCmd(cfg Config) *cobra.Command {
	cc := &commandContext{}

	root := &cobra.Command{
		Use:           "oaepbox",
		Short:         "RSA-OAEP (2048-bit, SHA-256) key pairs and message encryption",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			s, err := loadSettings(cmd)
			if err != nil {
				return err
			}
			logger, err := newLogger(cfg.Stderr, s.LogLevel)
			if err != nil {
				return fmt.Errorf("log level: %w", err)
			}
			box, err := newBox(s, logger)
			if err != nil {
				return err
			}
			cc.settings, cc.logger, cc.box = s, logger, box
			return nil
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			if cc.logger != nil {
				_ = cc.logger.Sync()
			}
		},
	}

	flags := root.PersistentFlags()
	flags.String("config", "", "YAML config file")
	flags.String("encoding", "utf8", "text encoding: utf8 or latin1")
	flags.String("log-level", "warn", "log level: debug, info, warn, error")

	root.AddCommand(
		newPairCmd(cc),
		newEncryptCmd(cc),
		newDecryptCmd(cc),
		newInspectCmd(cc),
	)
	return root
}

func newPairCmd(cc *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "pair",
		Short: "Generate a key pair and print it as {\"pub\":...,\"priv\":...}",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			pair, err := cc.box.Pair(cmd.Context())
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), pair)
		},
	}
}

func newEncryptCmd(cc *commandContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "encrypt [text]",
		Short: "Encrypt text (argument or stdin) and print the ciphertext as a JSON byte array",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkStdinUse(cc.settings.PublicKey, args); err != nil {
				return err
			}
			key, err := readKey(cc.settings.PublicKey, cmd.InOrStdin())
			if err != nil {
				return fmt.Errorf("public key: %w", err)
			}
			text, err := argsOrStdin(args, cmd.InOrStdin())
			if err != nil {
				return err
			}

			sealed, err := cc.box.Encrypt(cmd.Context(), text, key)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), sealed)
			return err
		},
	}
	cmd.Flags().String("public-key", "", "public JWK: file path, inline JSON, or - for stdin")
	return cmd
}

func newDecryptCmd(cc *commandContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "decrypt [ciphertext]",
		Short: "Decrypt a JSON byte array ciphertext (argument or stdin) and print the text",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkStdinUse(cc.settings.PrivateKey, args); err != nil {
				return err
			}
			key, err := readKey(cc.settings.PrivateKey, cmd.InOrStdin())
			if err != nil {
				return fmt.Errorf("private key: %w", err)
			}
			sealed, err := argsOrStdin(args, cmd.InOrStdin())
			if err != nil {
				return err
			}

			text, err := cc.box.Decrypt(cmd.Context(), sealed, key)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), text)
			return err
		},
	}
	cmd.Flags().String("private-key", "", "private JWK: file path, inline JSON, or - for stdin")
	return cmd
}

func newInspectCmd(cc *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <key>",
		Short: "Describe a JWK (file path, inline JSON, or - for stdin) without printing key material",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			key, err := readKey(args[0], cmd.InOrStdin())
			if err != nil {
				return err
			}
			info, err := oaepbox.Inspect(key)
			if err != nil {
				return err
			}
			cc.logger.Debug("inspected key", zap.String("thumbprint", info.Thumbprint))
			return writeJSON(cmd.OutOrStdout(), info)
		},
	}
}

// errStdinInUse is returned when both the key and the input would be read
// from stdin.
var errStdinInUse = errors.New("input must be given as an argument when the key is read from stdin")

// checkStdinUse rejects reading the key from stdin when the input has no
// argument either, since stdin can only be consumed once.
func checkStdinUse(key string, args []string) error {
	if strings.TrimSpace(key) == "-" && len(args) == 0 {
		return errStdinInUse
	}
	return nil
}

// argsOrStdin joins args with spaces, or reads stdin without its trailing
// newline when no args are given.
func argsOrStdin(args []string, stdin io.Reader) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	data, err := io.ReadAll(stdin)
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	s := strings.TrimSuffix(string(data), "\n")
	return strings.TrimSuffix(s, "\r"), nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode output: %w", err)
	}
	return nil
}

// exitCode maps an error to the process exit status: 2 for bad input,
// 1 for everything else.
func exitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, oaepbox.ErrMalformedKey),
		errors.Is(err, oaepbox.ErrMalformedCiphertext),
		errors.Is(err, oaepbox.ErrInvalidText),
		errors.Is(err, oaepbox.ErrPlaintextTooLarge):
		return 2
	default:
		return 1
	}
}

func fatal(w io.Writer, err error) {
	fmt.Fprintf(w, "oaepbox: %v\n", err)
	os.Exit(exitCode(err))
}

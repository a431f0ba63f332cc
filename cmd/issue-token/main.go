// Command issue-token produces a signed API token for one recipient.
//
// Usage:
//
//	issue-token [flags] <email> <expiry-date>
//
// The expiry date is conventionally YYYY-MM-DD. The token id and the
// base64-encoded token are printed to stdout, one per line; diagnostics go
// to stderr so the output can be piped.
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/spf13/pflag"

	"github.com/livepoll/apikey/pkg/apikey"
	"github.com/livepoll/apikey/pkg/keys"
	"github.com/livepoll/apikey/pkg/logger"
	"github.com/livepoll/apikey/pkg/qrcode"
)

type config struct {
	PrivateKeyPath string `env:"APIKEY_PRIVATE_KEY" envDefault:"private.pem"`
	LogLevel       string `env:"APIKEY_LOG_LEVEL" envDefault:"info"`
	LogFormat      string `env:"APIKEY_LOG_FORMAT" envDefault:"text"`
}

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "issue-token:", err)
		os.Exit(1)
	}
}

func run(args []string, out io.Writer) error {
	// A .env file is optional; the process environment wins either way.
	_ = godotenv.Load()

	var cfg config
	if err := env.Parse(&cfg); err != nil {
		return fmt.Errorf("parse environment: %w", err)
	}

	flags := pflag.NewFlagSet("issue-token", pflag.ContinueOnError)
	keyPath := flags.String("key", cfg.PrivateKeyPath, "path to the ed25519 private key (PEM or OpenSSH)")
	qrOut := flags.String("qr-out", "", "write a QR code PNG of the token to this path")
	qrSize := flags.Int("qr-size", 256, "QR code edge length in pixels")
	flags.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: issue-token [flags] <email> <expiry-date>")
		fmt.Fprintln(os.Stderr)
		fmt.Fprint(os.Stderr, flags.FlagUsages())
	}
	if err := flags.Parse(args); err != nil {
		return err
	}
	if flags.NArg() != 2 {
		flags.Usage()
		return errors.New("email and expiry date are required")
	}

	log, err := newLogger(cfg)
	if err != nil {
		return err
	}

	priv, err := keys.LoadPrivateKey(*keyPath)
	if err != nil {
		return fmt.Errorf("load private key: %w", err)
	}
	log.Debug("private key loaded", slog.String("path", *keyPath))

	iss, err := apikey.New(priv)
	if err != nil {
		return err
	}

	tok, err := iss.Issue(flags.Arg(0), flags.Arg(1))
	if err != nil {
		return err
	}
	log.Info("token issued",
		slog.String("token_id", tok.ID),
		slog.String("email", tok.Claim.Email),
		slog.String("expires", tok.Claim.Expiry),
	)

	fmt.Fprintln(out, tok.ID)
	fmt.Fprintln(out, tok.Encoded)

	if *qrOut != "" {
		if err := qrcode.WriteFile(*qrOut, tok.Encoded, *qrSize); err != nil {
			return err
		}
		log.Info("qr code written", slog.String("path", *qrOut))
	}
	return nil
}

func newLogger(cfg config) (*slog.Logger, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		return nil, fmt.Errorf("invalid APIKEY_LOG_LEVEL %q: %w", cfg.LogLevel, err)
	}
	format := logger.Format(cfg.LogFormat)
	switch format {
	case logger.FormatText, logger.FormatJSON:
	default:
		return nil, fmt.Errorf("invalid APIKEY_LOG_FORMAT %q", cfg.LogFormat)
	}
	return logger.New(logger.WithLevel(level), logger.WithFormat(format)), nil
}

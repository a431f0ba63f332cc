// Command keygen provisions the Ed25519 key pair the issuer signs with.
// It writes private.pem and public.pem into the output directory and
// prints the public key fingerprint.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/pflag"

	"github.com/livepoll/apikey/pkg/keys"
	"github.com/livepoll/apikey/pkg/logger"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "keygen:", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	flags := pflag.NewFlagSet("keygen", pflag.ContinueOnError)
	outDir := flags.String("out-dir", ".", "directory to write private.pem and public.pem into")
	force := flags.Bool("force", false, "overwrite existing key files")
	if err := flags.Parse(args); err != nil {
		return err
	}

	log := logger.New()

	privPath := filepath.Join(*outDir, "private.pem")
	pubPath := filepath.Join(*outDir, "public.pem")

	// Overwriting the private key would orphan every outstanding token.
	if !*force {
		for _, path := range []string{privPath, pubPath} {
			if _, err := os.Stat(path); err == nil {
				return fmt.Errorf("%s already exists (use --force to overwrite)", path)
			}
		}
	}

	pub, priv, err := keys.Generate()
	if err != nil {
		return err
	}
	if err := keys.SaveKeyPair(privPath, pubPath, priv, pub); err != nil {
		return err
	}

	fp, err := keys.Fingerprint(pub)
	if err != nil {
		return err
	}
	log.Info("key pair written",
		slog.String("private", privPath),
		slog.String("public", pubPath),
	)
	fmt.Println(fp)
	return nil
}

// Package cli provides the command-line interface for ksigner.
package cli

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/selfcustody/ksigner/internal/config"
	"github.com/selfcustody/ksigner/internal/openssl"
	ksignersignal "github.com/selfcustody/ksigner/internal/signal"
	"github.com/selfcustody/ksigner/internal/tui"
)

// verifyFlags holds the flags for the verify command.
type verifyFlags struct {
	file    string
	sigFile string
	pubFile string
}

// verifyResult is the machine-readable summary of a verify run.
type verifyResult struct {
	File            string `json:"file"`
	SignatureFile   string `json:"signature_file"`
	CertificateFile string `json:"certificate_file"`
	Valid           bool   `json:"valid"`
}

// AddVerifyCommand adds the verify command to the root command.
func AddVerifyCommand(root *cobra.Command, global *GlobalFlags) {
	flags := &verifyFlags{}

	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Verify a signature with the local openssl tool",
		Long: `Verify checks that the signature file holds a valid signature over the
SHA-256 digest of the given file, using the public key certificate.

Verification is delegated to the openssl binary:

  openssl sha256 -binary <file> | openssl pkeyutl -verify -pubin \
      -inkey <pub.pem> -sigfile <sig>`,
		Example: `  ksigner verify --file release.tar.gz \
      --sig-file release.tar.gz.sig --pub-file pubkey.pem`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runVerify(cmd.Context(), flags, global)
		},
	}

	cmd.Flags().StringVarP(&flags.file, "file", "f", "", "path of the signed file (required)")
	cmd.Flags().StringVarP(&flags.sigFile, "sig-file", "s", "", "path of the signature file (required)")
	cmd.Flags().StringVarP(&flags.pubFile, "pub-file", "p", "", "path of the public key certificate (required)")
	_ = cmd.MarkFlagRequired("file")
	_ = cmd.MarkFlagRequired("sig-file")
	_ = cmd.MarkFlagRequired("pub-file")

	root.AddCommand(cmd)
}

// runVerify executes the verify workflow.
func runVerify(ctx context.Context, flags *verifyFlags, global *GlobalFlags) error {
	logger := GetLogger()

	cfg, err := config.Load(logger.WithContext(ctx))
	if err != nil {
		return err
	}

	handler := ksignersignal.NewHandler(ctx)
	defer handler.Stop()

	out := tui.NewOutput(os.Stdout, global.Output)

	verifier := openssl.New(cfg.Verify.OpenSSLBinary)
	if err := verifier.Verify(handler.Context(), flags.file, flags.pubFile, flags.sigFile); err != nil {
		logger.Error().
			Str("file", flags.file).
			Str("signature", flags.sigFile).
			Str("certificate", flags.pubFile).
			Err(err).
			Msg("verification failed")
		reportError(out, err)
		return err
	}

	logger.Info().
		Str("file", flags.file).
		Str("signature", flags.sigFile).
		Str("certificate", flags.pubFile).
		Msg("verification succeeded")

	if global.Output == OutputJSON {
		return out.JSON(verifyResult{
			File:            flags.file,
			SignatureFile:   flags.sigFile,
			CertificateFile: flags.pubFile,
			Valid:           true,
		})
	}

	out.Success("signature is valid")
	return nil
}

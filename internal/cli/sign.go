// Package cli provides the command-line interface for ksigner.
package cli

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/selfcustody/ksigner/internal/config"
	"github.com/selfcustody/ksigner/internal/qr"
	ksignersignal "github.com/selfcustody/ksigner/internal/signal"
	"github.com/selfcustody/ksigner/internal/signer"
	"github.com/selfcustody/ksigner/internal/tui"
)

// signFlags holds the flags for the sign command.
type signFlags struct {
	file         string
	owner        string
	uncompressed bool
}

// AddSignCommand adds the sign command to the root command.
func AddSignCommand(root *cobra.Command, global *GlobalFlags) {
	flags := &signFlags{}

	cmd := &cobra.Command{
		Use:   "sign",
		Short: "Sign a file with an air-gapped device over QR codes",
		Long: `Sign hashes the given file with SHA-256, records the digest next to it,
and displays the digest as a QR code for the signing device to scan.

It then scans two QR codes back from the device: the signature (saved as
<file>.sig) and the raw public key (reconstructed into <owner>.pem).

The private key never leaves the device.`,
		Example: `  # Sign a release archive, writing pubkey.pem
  ksigner sign --file release.tar.gz

  # Name the certificate after its owner
  ksigner sign --file release.tar.gz --owner alice

  # The device exports an uncompressed public key
  ksigner sign --file release.tar.gz --uncompressed`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSign(cmd.Context(), flags, global)
		},
	}

	cmd.Flags().StringVarP(&flags.file, "file", "f", "", "path of the file to sign (required)")
	cmd.Flags().StringVar(&flags.owner, "owner", "", "certificate owner name, writes <owner>.pem (default from config)")
	cmd.Flags().BoolVarP(&flags.uncompressed, "uncompressed", "u", false, "build the certificate from an uncompressed public key")
	_ = cmd.MarkFlagRequired("file")

	root.AddCommand(cmd)
}

// runSign executes the sign workflow.
func runSign(ctx context.Context, flags *signFlags, global *GlobalFlags) error {
	logger := GetLogger()

	cfg, err := config.Load(logger.WithContext(ctx))
	if err != nil {
		return err
	}
	applySignFlags(cfg, flags)

	// SIGINT during a camera wait must release the device, not kill the
	// process mid-capture.
	handler := ksignersignal.NewHandler(ctx)
	defer handler.Stop()
	runCtx := handler.Context()

	var cancel context.CancelFunc
	if cfg.Camera.Timeout > 0 {
		runCtx, cancel = context.WithTimeout(runCtx, cfg.Camera.Timeout)
		defer cancel()
	}

	out := tui.NewOutput(os.Stdout, global.Output)

	s := signer.New(
		signer.Config{
			File:         flags.file,
			Owner:        cfg.Sign.Owner,
			Uncompressed: cfg.Sign.Uncompressed,
			Armor:        cfg.Sign.Armor,
			Render: qr.RenderConfig{
				Recovery: cfg.QR.Recovery,
				Inverted: cfg.QR.Inverted,
			},
		},
		out,
		logger,
		tui.NewPrompter(),
		cameraOpener(cfg.Camera.Device),
	)

	result, err := s.Run(runCtx)
	if err != nil {
		reportError(out, err)
		return err
	}

	if global.Output == OutputJSON {
		return out.JSON(result)
	}
	return nil
}

// applySignFlags overlays command-line flags onto the loaded configuration.
// Only flags the user actually set override config values.
func applySignFlags(cfg *config.Config, flags *signFlags) {
	if flags.owner != "" {
		cfg.Sign.Owner = flags.owner
	}
	if flags.uncompressed {
		cfg.Sign.Uncompressed = true
	}
}

// cameraOpener returns a SourceOpener bound to the configured capture device.
// The workflow opens and releases the camera around each capture step.
func cameraOpener(device int) signer.SourceOpener {
	return func() (qr.Source, error) {
		return qr.OpenCamera(device)
	}
}

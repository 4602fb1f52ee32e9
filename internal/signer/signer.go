package signer

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/selfcustody/ksigner/internal/ctxutil"
	"github.com/selfcustody/ksigner/internal/digest"
	ksignererrors "github.com/selfcustody/ksigner/internal/errors"
	"github.com/selfcustody/ksigner/internal/pubkey"
	"github.com/selfcustody/ksigner/internal/qr"
	"github.com/selfcustody/ksigner/internal/tui"
)

// Config holds exactly the inputs the sign workflow needs.
type Config struct {
	// File is the path of the file to sign.
	File string

	// Owner names the public key certificate file (<owner>.pem).
	Owner string

	// Uncompressed selects the uncompressed certificate form.
	Uncompressed bool

	// Armor wraps the certificate in PEM delimiters instead of bare base64.
	Armor bool

	// Render controls how payloads are drawn as terminal QR codes.
	Render qr.RenderConfig
}

// Result summarizes the artifacts produced by a completed sign run.
type Result struct {
	File            string `json:"file"`
	Digest          string `json:"digest"`
	DigestRecord    string `json:"digest_record"`
	SignatureFile   string `json:"signature_file"`
	CertificateFile string `json:"certificate_file"`
}

// SourceOpener acquires a fresh optical capture source. The workflow opens
// the camera once per capture and releases it before the next prompt, so
// the device is never held while the user handles the signing device.
type SourceOpener func() (qr.Source, error)

// Signer sequences the sign workflow: hash, record, emit the digest QR,
// capture the signature, capture the public key, build the certificate.
type Signer struct {
	cfg        Config
	out        tui.Output
	log        zerolog.Logger
	prompt     tui.Prompter
	openSource SourceOpener
}

// New creates a Signer. The capture source is injected so tests can drive
// the workflow without camera hardware.
func New(cfg Config, out tui.Output, log zerolog.Logger, prompt tui.Prompter, openSource SourceOpener) *Signer {
	return &Signer{
		cfg:        cfg,
		out:        out,
		log:        log,
		prompt:     prompt,
		openSource: openSource,
	}
}

// Run executes the full sign workflow. Every stage is fatal on error; no
// stage is retried. Artifacts already written when a later stage fails are
// left on disk - each is independently re-derivable by re-running.
func (s *Signer) Run(ctx context.Context) (*Result, error) {
	fileDigest, err := s.hashAndRecord(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.emitDigest(ctx, fileDigest); err != nil {
		return nil, err
	}

	sigPath, err := s.captureSignature(ctx)
	if err != nil {
		return nil, err
	}

	certPath, err := s.captureCertificate(ctx)
	if err != nil {
		return nil, err
	}

	result := &Result{
		File:            s.cfg.File,
		Digest:          fileDigest,
		DigestRecord:    digest.RecordPath(s.cfg.File),
		SignatureFile:   sigPath,
		CertificateFile: certPath,
	}

	s.log.Info().
		Str("file", result.File).
		Str("digest", result.Digest).
		Str("signature", result.SignatureFile).
		Str("certificate", result.CertificateFile).
		Msg("sign workflow complete")

	return result, nil
}

// hashAndRecord hashes the target file and writes the sidecar record from
// the same in-memory digest that will be emitted, so the record and the
// displayed QR code can never diverge.
func (s *Signer) hashAndRecord(ctx context.Context) (string, error) {
	if err := ctxutil.Canceled(ctx); err != nil {
		return "", err
	}

	fileDigest, err := digest.HashFile(s.cfg.File)
	if err != nil {
		return "", err
	}
	s.log.Debug().Str("file", s.cfg.File).Str("digest", fileDigest).Msg("file hashed")

	if err := digest.WriteRecord(s.cfg.File, fileDigest); err != nil {
		return "", err
	}
	s.log.Debug().Str("record", digest.RecordPath(s.cfg.File)).Msg("digest record saved")

	return fileDigest, nil
}

// emitDigest renders the digest as a QR code and shows it together with
// the device usage hints.
func (s *Signer) emitDigest(ctx context.Context, fileDigest string) error {
	if err := ctxutil.Canceled(ctx); err != nil {
		return err
	}

	rendered, err := qr.Render(fileDigest, s.cfg.Render)
	if err != nil {
		return err
	}

	s.out.Info("To sign this file with your device:")
	s.out.Info(" (a) load a 12/24 words key, with or without password;")
	s.out.Info(" (b) use the Sign -> Message feature;")
	s.out.Info(" (c) scan the QR code below.")
	s.out.Plain("")
	s.out.Plain(rendered)

	return nil
}

// captureSignature scans the signature QR code shown by the device and
// persists the decoded bytes to <file>.sig.
func (s *Signer) captureSignature(ctx context.Context) (string, error) {
	payload, err := s.capturePayload(ctx, "Ready to scan the signature QR code?")
	if err != nil {
		return "", err
	}
	s.log.Debug().Int("payload_len", len(payload)).Msg("signature captured")

	sigPath, err := SaveSignature(payload, s.cfg.File)
	if err != nil {
		return "", err
	}
	s.out.Success("signature saved to " + sigPath)

	return sigPath, nil
}

// captureCertificate scans the raw hex public key shown by the device and
// reconstructs the <owner>.pem certificate from it.
func (s *Signer) captureCertificate(ctx context.Context) (string, error) {
	rawHex, err := s.capturePayload(ctx, "Ready to scan the public key QR code?")
	if err != nil {
		return "", err
	}
	s.log.Debug().Str("pubkey", rawHex).Msg("public key captured")

	content, err := pubkey.Build(rawHex, pubkey.Config{
		Uncompressed: s.cfg.Uncompressed,
		Armor:        s.cfg.Armor,
	})
	if err != nil {
		return "", err
	}

	certPath, err := pubkey.WriteCertificate(s.cfg.Owner, content)
	if err != nil {
		return "", err
	}
	s.out.Success("certificate saved to " + certPath)

	return certPath, nil
}

// capturePayload prompts, opens a capture source, and blocks until a QR
// code decodes. A declined prompt is reported as a canceled capture so the
// caller sees one abort taxonomy for the whole optical step.
func (s *Signer) capturePayload(ctx context.Context, title string) (string, error) {
	if err := ctxutil.Canceled(ctx); err != nil {
		return "", err
	}

	if err := s.prompt.Confirm(title); err != nil {
		return "", ksignererrors.Wrap(ksignererrors.ErrCaptureCanceled, "prompt declined")
	}

	src, err := s.openSource()
	if err != nil {
		return "", err
	}
	defer func() { _ = src.Close() }()

	s.out.Info("Scanning... present the QR code to the camera (Ctrl+C to abort).")
	return qr.Capture(ctx, src)
}

// Package constants provides centralized constant values used throughout ksigner.
// This package is the single source of truth for all shared constants and MUST NOT
// import any other internal packages.
package constants

// Directory names and paths used by ksigner for organizing data.
const (
	// KsignerHome is the hidden directory name where ksigner stores its data.
	// This directory is created in the user's home directory.
	KsignerHome = ".ksigner"

	// LogsDir is the directory name where log files are stored.
	LogsDir = "logs"

	// CLILogFileName is the name of the rotating CLI log file.
	CLILogFileName = "ksigner.log"

	// ConfigDirName is the hidden directory name searched for project-level
	// configuration (.ksigner/config.yaml in the working directory).
	ConfigDirName = ".ksigner"

	// ConfigFileName is the base name of the configuration file (without extension).
	ConfigFileName = "config"
)

// Log rotation settings for the CLI log file.
const (
	// LogMaxSizeMB is the maximum size in megabytes before the log is rotated.
	LogMaxSizeMB = 10

	// LogMaxBackups is the maximum number of rotated log files to keep.
	LogMaxBackups = 3

	// LogMaxAgeDays is the maximum number of days to retain rotated logs.
	LogMaxAgeDays = 30

	// LogCompress enables gzip compression of rotated log files.
	LogCompress = true
)

// Sidecar file suffixes produced during a signing session.
// Each artifact is written next to the file it describes and is
// overwritten on every run (last writer wins, no append semantics).
const (
	// DigestFileSuffix is appended to the signed file's path to form the
	// digest record file name (e.g. "doc.txt.sha256sum.txt").
	DigestFileSuffix = ".sha256sum.txt"

	// SignatureFileSuffix is appended to the signed file's path to form the
	// raw binary signature file name (e.g. "doc.txt.sig").
	SignatureFileSuffix = ".sig"

	// CertificateFileSuffix is appended to the owner name to form the public
	// key certificate file name (e.g. "pubkey.pem").
	CertificateFileSuffix = ".pem"
)

// PEM armor delimiters for the reconstructed public key certificate.
const (
	// PEMHeader is the opening delimiter of the PEM-armored certificate.
	PEMHeader = "-----BEGIN PUBLIC KEY-----"

	// PEMFooter is the closing delimiter of the PEM-armored certificate.
	PEMFooter = "-----END PUBLIC KEY-----"
)

// Defaults for the sign and verify workflows.
const (
	// DefaultOwner is the certificate owner name used when --owner is omitted.
	// The certificate is then written to "pubkey.pem".
	DefaultOwner = "pubkey"

	// DefaultOpenSSLBinary is the name of the external verification tool.
	// It is resolved through PATH unless overridden in configuration.
	DefaultOpenSSLBinary = "openssl"

	// DefaultCameraDevice is the video capture device index used for
	// QR code scanning.
	DefaultCameraDevice = 0
)

// Artifact file permissions. Sidecar files carry only public material
// (digests, signatures, public keys), never secrets.
const (
	// ArtifactFileMode is the permission mode for all sidecar files.
	ArtifactFileMode = 0o644

	// DirMode is the permission mode for directories created by ksigner.
	DirMode = 0o750
)

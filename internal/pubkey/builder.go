// Package pubkey reconstructs SubjectPublicKeyInfo certificates from the
// raw hex public keys exported by the signing device.
//
// The device emits only the bare elliptic-curve point (compressed 33 bytes
// or uncompressed 65 bytes). A standards-compliant certificate is rebuilt
// by prepending a fixed ASN.1 DER prefix for the matching secp256k1 form,
// hex-decoding, base64-encoding, and optionally wrapping in PEM armor.
// No general-purpose ASN.1 encoding is involved; the prefixes are protocol
// constants that complete the structure byte-exactly.
//
// The compressed/uncompressed flag is trusted as given: the builder never
// cross-checks it against the key's leading byte (02/03 vs 04). A mismatch
// produces a well-formed but semantically wrong certificate. This mirrors
// the signing-device workflow, where the user states the export form, and
// is a known latent hazard rather than an oversight.
//
// IMPORTANT: This package may import internal/constants and internal/errors,
// but MUST NOT import other internal packages.
package pubkey

import (
	"encoding/base64"
	"encoding/hex"
	"os"
	"strings"

	"github.com/selfcustody/ksigner/internal/constants"
	ksignererrors "github.com/selfcustody/ksigner/internal/errors"
)

// ASN.1 DER prefixes that complete a secp256k1 SubjectPublicKeyInfo when
// concatenated with the raw public key bytes:
//
//	30 <len>            SEQUENCE
//	  30 10             SEQUENCE (algorithm identifier)
//	    06 07 2A8648CE3D0201    OID 1.2.840.10045.2.1 (ecPublicKey)
//	    06 05 2B8104000A        OID 1.3.132.0.10 (secp256k1)
//	  03 <len> 00       BIT STRING (unused bits = 0), key bytes follow
const (
	// UncompressedPrepend precedes a 65-byte uncompressed point (leading 04).
	UncompressedPrepend = "3056301006072A8648CE3D020106052B8104000A034200"

	// CompressedPrepend precedes a 33-byte compressed point (leading 02/03).
	CompressedPrepend = "3036301006072A8648CE3D020106052B8104000A032200"
)

// Config selects the certificate form and output framing.
// Exactly the fields the builder needs; nothing about the wider workflow.
type Config struct {
	// Uncompressed selects the uncompressed-form DER prefix.
	// Default is the compressed form, matching the device's default export.
	Uncompressed bool

	// Armor wraps the base64 payload in PEM BEGIN/END delimiters.
	// When false the bare base64 string is emitted instead.
	Armor bool
}

// Build reconstructs the certificate content for the given raw hex public
// key. Identical inputs always produce byte-identical output.
//
// The scanned hex is normalized to uppercase before decoding. Hex decoding
// is case-insensitive, so this changes nothing semantically; one uniform
// policy just keeps the concatenated DER hex canonical.
//
// Returns ErrMalformedHex when the combined string has odd length or
// non-hex characters.
func Build(rawPubkeyHex string, cfg Config) (string, error) {
	prepend := CompressedPrepend
	if cfg.Uncompressed {
		prepend = UncompressedPrepend
	}

	derHex := prepend + strings.ToUpper(rawPubkeyHex)
	derBytes, err := hex.DecodeString(derHex)
	if err != nil {
		return "", ksignererrors.Wrap(ksignererrors.ErrMalformedHex, "decoding public key")
	}

	payload := base64.StdEncoding.EncodeToString(derBytes)
	if !cfg.Armor {
		return payload, nil
	}

	return strings.Join([]string{constants.PEMHeader, payload, constants.PEMFooter}, "\n"), nil
}

// CertificatePath returns the certificate file path for the given owner
// (e.g. "alice" -> "alice.pem"). The owner string is caller-supplied and
// carries no uniqueness or sanitization guarantee.
func CertificatePath(owner string) string {
	return owner + constants.CertificateFileSuffix
}

// WriteCertificate writes the certificate content as UTF-8 text to
// "<owner>.pem", silently overwriting any existing file, and returns the
// path written.
func WriteCertificate(owner, content string) (string, error) {
	path := CertificatePath(owner)
	if err := os.WriteFile(path, []byte(content), constants.ArtifactFileMode); err != nil {
		return "", ksignererrors.Wrapf(err, "failed to write certificate %s", path)
	}
	return path, nil
}

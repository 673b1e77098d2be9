// Package checksum verifies the size or digest of byte streams.
//
// Supported checksum types are md5, sha1 and sha256, matched case-insensitively;
// "sha" is accepted as an alias for sha1. Failures are reported as
// *errors.InvalidChecksumTypeError for unsupported algorithms and
// *errors.VerificationError for mismatches, both from package
// github.com/iamNilotpal/verify/pkg/errors.
package checksum

import (
	"io"

	adapter "github.com/iamNilotpal/verify/internal/adapters/checksum"
	"github.com/iamNilotpal/verify/internal/core/domain"
	"github.com/iamNilotpal/verify/internal/core/ports"
	"github.com/iamNilotpal/verify/internal/core/services/verification"
)

const (
	TypeMD5    = domain.TypeMD5
	TypeSHA1   = domain.TypeSHA1
	TypeSHA    = domain.TypeSHA
	TypeSHA256 = domain.TypeSHA256
)

var defaultVerifier = func() *verification.Verifier {
	v, err := verification.New(nil, nil)
	if err != nil {
		panic(err)
	}
	return v
}()

// SanitizeChecksumType returns the canonical form of raw.
func SanitizeChecksumType(raw string) (domain.ChecksumType, error) {
	return defaultVerifier.SanitizeChecksumType(raw)
}

// VerifySize reads r to EOF and checks that exactly expected bytes were read.
func VerifySize(r io.Reader, expected uint64) error {
	return defaultVerifier.VerifySize(r, expected)
}

// VerifyChecksum checks that the lowercase hex digest of r equals expected.
func VerifyChecksum(r io.Reader, checksumType, expected string) error {
	return defaultVerifier.VerifyChecksum(r, checksumType, expected)
}

// Sum returns the lowercase hex digest of r.
func Sum(r io.Reader, checksumType string) (string, error) {
	return defaultVerifier.Sum(r, checksumType)
}

// Functions returns a copy of the checksum type to algorithm mapping.
func Functions() map[domain.ChecksumType]ports.Hasher {
	return adapter.Functions()
}

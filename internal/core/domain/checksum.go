package domain

// ChecksumType identifies a hash algorithm used to verify data integrity.
type ChecksumType string

const (
	// TypeMD5 provides MD5 checksums (128-bit).
	TypeMD5 ChecksumType = "md5"

	// TypeSHA1 provides SHA-1 checksums (160-bit).
	TypeSHA1 ChecksumType = "sha1"

	// TypeSHA is an alias for TypeSHA1. It is accepted as input and always
	// normalizes to TypeSHA1.
	TypeSHA ChecksumType = "sha"

	// TypeSHA256 provides SHA-256 checksums (256-bit).
	TypeSHA256 ChecksumType = "sha256"
)

func (t ChecksumType) String() string {
	return string(t)
}

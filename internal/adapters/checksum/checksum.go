package checksum

import (
	"strings"

	"github.com/iamNilotpal/verify/internal/core/domain"
	"github.com/iamNilotpal/verify/internal/core/ports"
	"github.com/iamNilotpal/verify/pkg/errors"
)

// functions maps every accepted checksum type to its algorithm. It is built
// once and never modified. TypeSHA and TypeSHA1 share one implementation.
var functions = func() map[domain.ChecksumType]ports.Hasher {
	sha := NewSHA1()
	return map[domain.ChecksumType]ports.Hasher{
		domain.TypeMD5:    NewMD5(),
		domain.TypeSHA1:   sha,
		domain.TypeSHA:    sha,
		domain.TypeSHA256: NewSHA256(),
	}
}()

// Functions returns a copy of the checksum registry.
func Functions() map[domain.ChecksumType]ports.Hasher {
	out := make(map[domain.ChecksumType]ports.Hasher, len(functions))
	for k, v := range functions {
		out[k] = v
	}
	return out
}

// Lookup returns the algorithm registered for t. The lookup is exact; pass
// the result of Sanitize for user supplied names.
func Lookup(t domain.ChecksumType) (ports.Hasher, error) {
	h, ok := functions[t]
	if !ok {
		return nil, errors.NewInvalidChecksumTypeError(string(t))
	}
	return h, nil
}

// Sanitize folds raw to lowercase and maps it to its canonical checksum type.
// "sha" becomes "sha1". Unknown names yield an InvalidChecksumTypeError.
func Sanitize(raw string) (domain.ChecksumType, error) {
	t := domain.ChecksumType(strings.ToLower(raw))
	if t == domain.TypeSHA {
		return domain.TypeSHA1, nil
	}

	switch t {
	case domain.TypeMD5, domain.TypeSHA1, domain.TypeSHA256:
		return t, nil
	default:
		return "", errors.NewInvalidChecksumTypeError(raw)
	}
}

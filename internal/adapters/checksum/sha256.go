package checksum

import (
	sha256_lib "crypto/sha256"
	"hash"

	"github.com/iamNilotpal/verify/internal/core/domain"
)

type sha256 struct {
	name string
}

func NewSHA256() *sha256 {
	return &sha256{name: string(domain.TypeSHA256)}
}

func (s *sha256) New() hash.Hash {
	return sha256_lib.New()
}

func (s *sha256) Size() int {
	return sha256_lib.Size
}

func (s *sha256) Name() string {
	return s.name
}

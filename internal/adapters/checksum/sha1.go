package checksum

import (
	sha1_lib "crypto/sha1"
	"hash"

	"github.com/iamNilotpal/verify/internal/core/domain"
)

type sha1 struct {
	name string
}

func NewSHA1() *sha1 {
	return &sha1{name: string(domain.TypeSHA1)}
}

func (s *sha1) New() hash.Hash {
	return sha1_lib.New()
}

func (s *sha1) Size() int {
	return sha1_lib.Size
}

func (s *sha1) Name() string {
	return s.name
}

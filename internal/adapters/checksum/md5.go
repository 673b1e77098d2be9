package checksum

import (
	md5_lib "crypto/md5"
	"hash"

	"github.com/iamNilotpal/verify/internal/core/domain"
)

type md5 struct {
	name string
}

func NewMD5() *md5 {
	return &md5{name: string(domain.TypeMD5)}
}

func (m *md5) New() hash.Hash {
	return md5_lib.New()
}

func (m *md5) Size() int {
	return md5_lib.Size
}

func (m *md5) Name() string {
	return m.name
}

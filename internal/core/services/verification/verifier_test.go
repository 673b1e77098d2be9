package verification

import (
	"bytes"
	sha256_lib "crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"
	"testing"

	"github.com/iamNilotpal/verify/internal/core/domain"
	verrors "github.com/iamNilotpal/verify/pkg/errors"
	"github.com/klauspost/compress/zstd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

const (
	sha1TestData   = "cae99c6102aa3596ff9b86c73881154e340c2ea8" // "Test Data"
	sha256TestData = "e27c8214be8b7cf5bccc7c08247e3cb0c1514a48ee1f63197fe4ef3ef51d7e6f"
	md5TestData    = "ca1ea02c10b7c37f425b9b7dd86d5e11"
)

var errBoom = errors.New("boom")

// failingReader returns a few bytes and then errBoom.
type failingReader struct {
	sent bool
}

func (f *failingReader) Read(p []byte) (int, error) {
	if f.sent {
		return 0, errBoom
	}
	f.sent = true
	return copy(p, "Test"), nil
}

// untouchableReader fails the test if anything reads from it.
type untouchableReader struct {
	t *testing.T
}

func (u untouchableReader) Read(p []byte) (int, error) {
	u.t.Fatal("stream must not be read")
	return 0, io.EOF
}

func newVerifier(t *testing.T) *Verifier {
	t.Helper()
	v, err := New(nil, nil)
	require.NoError(t, err)
	return v
}

func TestVerifier_VerifySize(t *testing.T) {
	v := newVerifier(t)

	t.Run("exact size", func(t *testing.T) {
		require.NoError(t, v.VerifySize(strings.NewReader("Test data"), 9))
	})

	t.Run("empty stream", func(t *testing.T) {
		require.NoError(t, v.VerifySize(strings.NewReader(""), 0))
	})

	t.Run("size mismatch", func(t *testing.T) {
		err := v.VerifySize(strings.NewReader("Test data"), 1)
		require.Error(t, err)
		require.True(t, verrors.IsVerificationError(err))
		require.False(t, verrors.IsInvalidChecksumType(err))

		ve := verrors.AsVerificationError(err)
		assert.Equal(t, verrors.CheckSize, ve.Check)
		assert.Equal(t, "1", ve.Expected)
		assert.Equal(t, "9", ve.Actual)
		assert.Equal(t, verrors.CodeSizeMismatch, ve.Code())
	})

	t.Run("read error is returned unchanged", func(t *testing.T) {
		err := v.VerifySize(&failingReader{}, 4)
		require.Equal(t, errBoom, err)
	})
}

func TestVerifier_VerifyChecksum(t *testing.T) {
	v := newVerifier(t)

	tests := []struct {
		name         string
		data         string
		checksumType string
		expected     string
	}{
		{"sha1", "Test Data", "sha1", sha1TestData},
		{"sha alias", "Test Data", "sha", sha1TestData},
		{"mixed case alias", "Test Data", "ShA", sha1TestData},
		{"sha256", "Test data", "sha256", sha256TestData},
		{"upper case sha256", "Test data", "SHA256", sha256TestData},
		{"md5", "Test data", "md5", md5TestData},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.NoError(t, v.VerifyChecksum(strings.NewReader(tt.data), tt.checksumType, tt.expected))
		})
	}
}

func TestVerifier_VerifyChecksumMismatch(t *testing.T) {
	req := require.New(t)
	v := newVerifier(t)

	err := v.VerifyChecksum(strings.NewReader("Test data"), "sha256", "foo")
	req.Error(err)
	req.True(verrors.IsVerificationError(err))

	ve := verrors.AsVerificationError(err)
	req.Equal(verrors.CheckChecksum, ve.Check)
	req.Equal("sha256", ve.Algorithm)
	req.Equal("foo", ve.Expected)
	req.Equal(sha256TestData, ve.Actual)
	req.Equal(verrors.CodeChecksumMismatch, ve.Code())
}

func TestVerifier_VerifyChecksumIsCaseSensitive(t *testing.T) {
	v := newVerifier(t)

	err := v.VerifyChecksum(strings.NewReader("Test data"), "sha256", strings.ToUpper(sha256TestData))
	require.True(t, verrors.IsVerificationError(err))
}

func TestVerifier_VerifyChecksumInvalidType(t *testing.T) {
	v := newVerifier(t)

	err := v.VerifyChecksum(untouchableReader{t: t}, "fake-type", "irrelevant")
	require.Error(t, err)
	require.True(t, verrors.IsInvalidChecksumType(err))
	require.False(t, verrors.IsVerificationError(err))
	require.Equal(t, "fake-type", verrors.AsInvalidChecksumType(err).Value)

	err = v.VerifyChecksum(strings.NewReader(""), "fake-type", "irrelevant")
	require.True(t, verrors.IsInvalidChecksumType(err))
}

func TestVerifier_VerifyChecksumReadError(t *testing.T) {
	v := newVerifier(t)

	err := v.VerifyChecksum(&failingReader{}, "sha1", sha1TestData)
	require.Equal(t, errBoom, err)
}

func TestVerifier_LargeStream(t *testing.T) {
	req := require.New(t)

	v, err := New(&domain.VerifyOptions{ChunkSize: MinChunkSize}, nil)
	req.NoError(err)
	req.Equal(MinChunkSize, v.ChunkSize())

	data := bytes.Repeat([]byte("0123456789abcdef"), 10*MinChunkSize+3)
	sum := sha256_lib.Sum256(data)
	expected := hex.EncodeToString(sum[:])

	req.NoError(v.VerifyChecksum(bytes.NewReader(data), "sha256", expected))
	req.NoError(v.VerifySize(bytes.NewReader(data), uint64(len(data))))

	got, err := v.Sum(io.MultiReader(bytes.NewReader(data[:7]), bytes.NewReader(data[7:])), "SHA256")
	req.NoError(err)
	req.Equal(expected, got)
}

func TestVerifier_Sum(t *testing.T) {
	v := newVerifier(t)

	got, err := v.Sum(strings.NewReader("Test Data"), "sha")
	require.NoError(t, err)
	require.Equal(t, sha1TestData, got)

	_, err = v.Sum(strings.NewReader("Test Data"), "not_a_real_checksum")
	require.True(t, verrors.IsInvalidChecksumType(err))
}

func TestVerifier_SanitizeChecksumType(t *testing.T) {
	v := newVerifier(t)

	for _, in := range []string{"sha", "SHA", "ShA"} {
		got, err := v.SanitizeChecksumType(in)
		require.NoError(t, err)
		require.Equal(t, domain.TypeSHA1, got)
	}

	got, err := v.SanitizeChecksumType("SHA256")
	require.NoError(t, err)
	require.Equal(t, domain.TypeSHA256, got)

	_, err = v.SanitizeChecksumType("not_a_real_checksum")
	require.True(t, verrors.IsInvalidChecksumType(err))
}

func TestVerifier_Decompression(t *testing.T) {
	req := require.New(t)

	var buf bytes.Buffer
	enc, err := zstd.NewWriter(&buf)
	req.NoError(err)
	_, err = enc.Write([]byte("Test data"))
	req.NoError(err)
	req.NoError(enc.Close())
	compressed := buf.Bytes()

	v, err := New(&domain.VerifyOptions{
		CompressionOptions: &domain.CompressionOptions{Enable: true, DecoderConcurrency: 1},
	}, nil)
	req.NoError(err)
	req.True(v.Decompressing())

	req.NoError(v.VerifySize(bytes.NewReader(compressed), 9))
	req.NoError(v.VerifyChecksum(bytes.NewReader(compressed), "sha256", sha256TestData))

	err = v.VerifyChecksum(bytes.NewReader(compressed), "sha256", "foo")
	req.True(verrors.IsVerificationError(err))
}

func TestVerifier_LogsMismatch(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	v, err := New(nil, zap.New(core).Sugar())
	require.NoError(t, err)

	require.NoError(t, v.VerifySize(strings.NewReader("Test data"), 9))
	require.Error(t, v.VerifyChecksum(strings.NewReader("Test data"), "sha256", "foo"))

	require.Equal(t, 1, logs.FilterMessage("size verified").Len())

	mismatch := logs.FilterMessage("checksum mismatch").All()
	require.Len(t, mismatch, 1)
	require.Equal(t, zapcore.WarnLevel, mismatch[0].Level)
	require.Equal(t, "foo", mismatch[0].ContextMap()["expected"])
}

func TestVerifier_LogsAlgorithmDetails(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	v, err := New(&domain.VerifyOptions{
		CompressionOptions: &domain.CompressionOptions{Enable: true, DecoderConcurrency: 2},
	}, zap.New(core).Sugar())
	require.NoError(t, err)

	enabled := logs.FilterMessage("decompression enabled").All()
	require.Len(t, enabled, 1)
	require.Equal(t, "zstd", enabled[0].ContextMap()["compression"])

	var buf bytes.Buffer
	enc, err := zstd.NewWriter(&buf)
	require.NoError(t, err)
	_, err = enc.Write([]byte("Test Data"))
	require.NoError(t, err)
	require.NoError(t, enc.Close())

	_, err = v.Sum(bytes.NewReader(buf.Bytes()), "SHA")
	require.NoError(t, err)

	computed := logs.FilterMessage("digest computed").All()
	require.Len(t, computed, 1)
	fields := computed[0].ContextMap()
	require.Equal(t, "sha1", fields["algorithm"])
	require.EqualValues(t, 20, fields["digest_size"])
	require.EqualValues(t, 9, fields["size"])
}

func TestVerifier_ConcurrentCalls(t *testing.T) {
	v, err := New(&domain.VerifyOptions{ChunkSize: MinChunkSize}, nil)
	require.NoError(t, err)

	large := bytes.Repeat([]byte("0123456789abcdef"), 1024)
	largeSum := sha256_lib.Sum256(large)
	largeHex := hex.EncodeToString(largeSum[:])

	const workers = 64
	errs := make(chan error, workers*3)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()

			errs <- v.VerifyChecksum(bytes.NewReader(large), "sha256", largeHex)
			errs <- v.VerifySize(strings.NewReader("Test data"), 9)

			if i%2 == 0 {
				errs <- v.VerifyChecksum(strings.NewReader("Test Data"), "sha", sha1TestData)
			} else {
				err := v.VerifyChecksum(strings.NewReader("Test data"), "sha256", "foo")
				if !verrors.IsVerificationError(err) {
					errs <- fmt.Errorf("expected a verification error, got %v", err)
					return
				}
				errs <- nil
			}
		}(i)
	}

	wg.Wait()
	close(errs)

	for err := range errs {
		require.NoError(t, err)
	}
}

func TestNew_Options(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		v, err := New(nil, nil)
		require.NoError(t, err)
		require.Equal(t, DefaultChunkSize, v.ChunkSize())
		require.False(t, v.Decompressing())
	})

	invalid := []struct {
		name  string
		opts  *domain.VerifyOptions
		field string
	}{
		{"chunk too small", &domain.VerifyOptions{ChunkSize: 1024}, "ChunkSize"},
		{"chunk too large", &domain.VerifyOptions{ChunkSize: MaxChunkSize * 2}, "ChunkSize"},
		{"chunk not power of two", &domain.VerifyOptions{ChunkSize: 5000}, "ChunkSize"},
		{
			"decoder concurrency",
			&domain.VerifyOptions{CompressionOptions: &domain.CompressionOptions{DecoderConcurrency: 64}},
			"CompressionOptions.DecoderConcurrency",
		},
	}

	for _, tt := range invalid {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.opts, nil)
			require.Error(t, err)
			require.True(t, verrors.IsValidationError(err))
			require.Equal(t, tt.field, verrors.AsValidationError(err).Field)
		})
	}
}

package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/iamNilotpal/verify/internal/core/domain"
	verrors "github.com/iamNilotpal/verify/pkg/errors"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

// EnvPrefix is prepended to every environment override, e.g. VERIFY_CHUNK_SIZE.
const EnvPrefix = "VERIFY"

var validate = validator.New()

type Config struct {
	LogLevel    string            `yaml:"log_level" envconfig:"LOG_LEVEL" validate:"required,oneof=debug info warn error"`
	ChunkSize   uint32            `yaml:"chunk_size" envconfig:"CHUNK_SIZE" validate:"min=4096,max=16777216"` // Bytes read per hash update
	Compression CompressionConfig `yaml:"compression" envconfig:"COMPRESSION"`
}

// Holds decompression settings for compressed input streams.
type CompressionConfig struct {
	Enable             bool  `yaml:"enable" envconfig:"ENABLE"`                                             // Verify the decompressed payload
	DecoderConcurrency uint8 `yaml:"decoder_concurrency" envconfig:"DECODER_CONCURRENCY" validate:"max=16"` // 0 lets the decoder decide
}

// Returns a Config struct with reasonable default values.
func DefaultConfig() *Config {
	return &Config{
		LogLevel:  "info",
		ChunkSize: 64 * 1024, // 64KB
		Compression: CompressionConfig{
			Enable:             false,
			DecoderConcurrency: 0,
		},
	}
}

// Loads configuration starting from the defaults, then the YAML file at
// filename (skipped when empty), then VERIFY_* environment variables.
func LoadConfig(filename string) (*Config, error) {
	config := DefaultConfig()

	if filename != "" {
		data, err := os.ReadFile(filename)
		if err != nil {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}

		if err := yaml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("error parsing config file: %w", err)
		}
	}

	if err := envconfig.Process(EnvPrefix, config); err != nil {
		return nil, fmt.Errorf("error reading environment: %w", err)
	}

	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

func validateConfig(config *Config) error {
	err := validate.Struct(config)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		fe := fieldErrs[0]
		return verrors.NewValidationError(
			fe.Namespace(), fe.Value(), fmt.Errorf("failed on the '%s' rule", fe.Tag()),
		)
	}

	return err
}

// VerifyOptions maps the configuration onto verifier options.
func (c *Config) VerifyOptions() *domain.VerifyOptions {
	return &domain.VerifyOptions{
		ChunkSize: c.ChunkSize,
		CompressionOptions: &domain.CompressionOptions{
			Enable:             c.Compression.Enable,
			DecoderConcurrency: c.Compression.DecoderConcurrency,
		},
	}
}

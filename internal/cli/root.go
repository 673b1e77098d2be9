package cli

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/iamNilotpal/verify/config"
	"github.com/iamNilotpal/verify/internal/core/ports"
	"github.com/iamNilotpal/verify/internal/core/services/verification"
	"github.com/iamNilotpal/verify/pkg/fs"
	"github.com/iamNilotpal/verify/pkg/logger"
	"github.com/iamNilotpal/verify/pkg/system"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const serviceName = "verify"

type globalFlags struct {
	configPath string
	decompress bool
	timeout    time.Duration
	json       bool
	verbose    bool
}

// NewRootCmd builds the command tree. Each call returns an independent tree
// with its own flag state.
func NewRootCmd() *cobra.Command {
	flags := &globalFlags{}

	root := &cobra.Command{
		Use:   serviceName,
		Short: "Verify the size or checksum of files",
		Long: `verify checks local files against an expected byte size or checksum.

Supported checksum types: md5, sha1 (alias sha), sha256. Names are
case-insensitive. Digests are compared as lowercase hex.

Exit Codes:
  0  - Success
  1  - Size or checksum mismatch
  2  - CLI usage error or unsupported checksum type
  3  - I/O or unexpected error
  10 - Invalid configuration`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := root.PersistentFlags()
	pf.StringVarP(&flags.configPath, "config", "c", "", "Path to a YAML configuration file")
	pf.BoolVar(&flags.decompress, "decompress", false, "Treat input as zstd and verify the decompressed payload")
	pf.DurationVar(&flags.timeout, "timeout", 0, "Abort reading after this long (0 disables)")
	pf.BoolVar(&flags.json, "json", false, "Print the result as JSON")
	pf.BoolVarP(&flags.verbose, "verbose", "v", false, "Enable debug logging")

	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return usageError(err)
	})

	root.AddCommand(
		newNormalizeCmd(flags),
		newSumCmd(flags),
		newSizeCmd(flags),
		newChecksumCmd(flags),
	)

	return root
}

// Execute runs the root command against os.Args.
func Execute() error {
	return NewRootCmd().Execute()
}

// exactArgs wraps cobra.ExactArgs so argument errors map to ExitUsageError.
func exactArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := cobra.ExactArgs(n)(cmd, args); err != nil {
			return usageError(err)
		}
		return nil
	}
}

// app carries the collaborators a command needs once flags are parsed.
type app struct {
	flags    *globalFlags
	log      *zap.SugaredLogger
	fs       ports.FileSystem
	verifier *verification.Verifier
	out      io.Writer
}

func newApp(cmd *cobra.Command, flags *globalFlags) (*app, error) {
	cfg, err := config.LoadConfig(flags.configPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	if flags.decompress {
		cfg.Compression.Enable = true
	}
	if flags.verbose {
		cfg.LogLevel = "debug"
	}

	log, err := logger.NewWithLevel(serviceName, cfg.LogLevel, cmd.ErrOrStderr())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	v, err := verification.New(cfg.VerifyOptions(), log)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	return &app{
		flags:    flags,
		log:      log,
		fs:       fs.NewLocalFileSystem(),
		verifier: v,
		out:      cmd.OutOrStdout(),
	}, nil
}

// withInput opens path and hands fn a reader bounded by --timeout.
func (a *app) withInput(ctx context.Context, path string, fn func(r io.Reader) error) error {
	f, err := a.fs.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	var r io.Reader = f
	if a.flags.timeout > 0 {
		ctx, cancel := context.WithTimeout(ctx, a.flags.timeout)
		defer cancel()
		r = system.NewContextReader(ctx, f)
	}

	return fn(r)
}

func (a *app) close() {
	_ = a.log.Sync()
}

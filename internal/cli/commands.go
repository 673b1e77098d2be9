package cli

import (
	"io"
	"strconv"

	"github.com/spf13/cobra"
)

func newNormalizeCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:     "normalize <checksum_type>",
		Short:   "Print the canonical name of a checksum type",
		Example: "  verify normalize SHA",
		Args:    exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd, flags)
			if err != nil {
				return err
			}
			defer a.close()

			t, err := a.verifier.SanitizeChecksumType(args[0])
			report := newReport("normalize", err)
			report.ChecksumType = string(t)
			return a.finish(report, string(t), err)
		},
	}
}

func newSumCmd(flags *globalFlags) *cobra.Command {
	var checksumType string

	cmd := &cobra.Command{
		Use:     "sum <file>",
		Short:   "Print the hex digest of a file",
		Example: "  verify sum --type sha256 artifact.tar",
		Args:    exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd, flags)
			if err != nil {
				return err
			}
			defer a.close()

			var digest string
			err = a.withInput(cmd.Context(), args[0], func(r io.Reader) error {
				var sumErr error
				digest, sumErr = a.verifier.Sum(r, checksumType)
				return sumErr
			})

			report := newReport("sum", err)
			report.File = args[0]
			report.ChecksumType = checksumType
			report.Actual = digest
			return a.finish(report, digest+"  "+args[0], err)
		},
	}

	cmd.Flags().StringVarP(&checksumType, "type", "t", "sha256", "Checksum type (md5, sha1, sha, sha256)")
	return cmd
}

func newSizeCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:     "size <file> <bytes>",
		Short:   "Verify that a file has exactly the given size",
		Example: "  verify size artifact.tar 10240",
		Args:    exactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			expected, err := strconv.ParseUint(args[1], 10, 64)
			if err != nil {
				return usageError(err)
			}

			a, err := newApp(cmd, flags)
			if err != nil {
				return err
			}
			defer a.close()

			a.log.Infow("verifying size", "file", args[0], "expected", expected)
			err = a.withInput(cmd.Context(), args[0], func(r io.Reader) error {
				return a.verifier.VerifySize(r, expected)
			})

			report := newReport("size", err)
			report.File = args[0]
			report.Expected = args[1]
			if err == nil {
				report.Actual = args[1]
			}
			return a.finish(report, "OK "+args[0], err)
		},
	}
}

func newChecksumCmd(flags *globalFlags) *cobra.Command {
	var checksumType string

	cmd := &cobra.Command{
		Use:     "checksum <file> <digest>",
		Short:   "Verify that a file matches the given hex digest",
		Example: "  verify checksum --type sha1 artifact.tar cae99c6102aa3596ff9b86c73881154e340c2ea8",
		Args:    exactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd, flags)
			if err != nil {
				return err
			}
			defer a.close()

			a.log.Infow("verifying checksum", "file", args[0], "type", checksumType)
			err = a.withInput(cmd.Context(), args[0], func(r io.Reader) error {
				return a.verifier.VerifyChecksum(r, checksumType, args[1])
			})

			report := newReport("checksum", err)
			report.File = args[0]
			report.ChecksumType = checksumType
			report.Expected = args[1]
			if err == nil {
				report.Actual = args[1]
			}
			return a.finish(report, "OK "+args[0], err)
		},
	}

	cmd.Flags().StringVarP(&checksumType, "type", "t", "sha256", "Checksum type (md5, sha1, sha, sha256)")
	return cmd
}

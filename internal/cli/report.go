package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/iamNilotpal/verify/internal/serialize"
	verrors "github.com/iamNilotpal/verify/pkg/errors"
)

// Report is the machine readable result of one command.
type Report struct {
	Command      string       `json:"command"`
	File         string       `json:"file,omitempty"`
	ChecksumType string       `json:"checksum_type,omitempty"`
	Expected     string       `json:"expected,omitempty"`
	Actual       string       `json:"actual,omitempty"`
	OK           bool         `json:"ok"`
	Error        *ReportError `json:"error,omitempty"`
}

type ReportError struct {
	Code    string         `json:"code,omitempty"`
	Kind    string         `json:"kind,omitempty"`
	Message string         `json:"message"`
	Data    map[string]any `json:"data,omitempty"`
}

func newReport(command string, err error) *Report {
	r := &Report{Command: command, OK: err == nil}
	if err == nil {
		return r
	}

	r.Error = &ReportError{Message: err.Error()}
	if ce := verrors.AsCodedError(err); ce != nil {
		r.Error.Code = string(ce.Code())
		r.Error.Kind = ce.Kind().String()
		r.Error.Data = ce.Data()
	}
	if ve := verrors.AsVerificationError(err); ve != nil {
		r.Actual = ve.Actual
	}
	return r
}

// reportedError marks a command failure that was already printed as part of
// the command's report.
type reportedError struct {
	err error
}

func (e *reportedError) Error() string { return e.err.Error() }
func (e *reportedError) Unwrap() error { return e.err }

// Reported reports whether err was already printed by the failing command.
func Reported(err error) bool {
	var re *reportedError
	return errors.As(err, &re)
}

// finish writes report and returns err marked as reported.
func (a *app) finish(report *Report, line string, err error) error {
	if werr := report.write(a.out, a.flags.json, line); werr != nil {
		return werr
	}
	if err == nil {
		return nil
	}
	return &reportedError{err: err}
}

// write prints the report as JSON, or text when asJSON is false. Text mode
// prints line, or a FAIL line when the report carries an error.
func (r *Report) write(w io.Writer, asJSON bool, line string) error {
	if asJSON {
		return serialize.WriteJSON(w, r)
	}

	if r.Error != nil {
		subject := r.File
		if subject == "" {
			subject = r.Command
		}
		_, err := fmt.Fprintf(w, "FAIL %s: %s\n", subject, r.Error.Message)
		return err
	}

	_, err := fmt.Fprintln(w, line)
	return err
}

package shared

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/go-ports/todovault/internal/db"
	"github.com/go-ports/todovault/internal/models"
	"github.com/go-ports/todovault/internal/service"
	"github.com/go-ports/todovault/internal/todo"
)

var (
	successColor = color.New(color.FgGreen)
	errorColor   = color.New(color.FgRed)
	noticeColor  = color.New(color.FgCyan)
	headerColor  = color.New(color.FgBlue)
	doneColor    = color.New(color.FgGreen)
	openColor    = color.New(color.FgRed)
	dimColor     = color.New(color.Faint)
)

const (
	barWidth = 40
	title    = "| TODO |"
)

// Success prints a green message line.
func Success(w io.Writer, format string, args ...any) {
	successColor.Fprintf(w, format+"\n", args...)
}

// Failure prints a red message line.
func Failure(w io.Writer, format string, args ...any) {
	errorColor.Fprintf(w, format+"\n", args...)
}

// Notice prints a cyan message line.
func Notice(w io.Writer, format string, args ...any) {
	noticeColor.Fprintf(w, format+"\n", args...)
}

// Dim prints a faint message line.
func Dim(w io.Writer, format string, args ...any) {
	dimColor.Fprintf(w, format+"\n", args...)
}

// Header prints the opening banner bar.
func Header(w io.Writer) {
	bar := strings.Repeat("-", barWidth)
	headerColor.Fprintln(w, bar+title+bar)
}

// Footer prints the closing banner bar.
func Footer(w io.Writer) {
	headerColor.Fprintln(w, strings.Repeat("-", 2*barWidth+len(title)))
}

// Entry prints one list line, green when done and red when open.
func Entry(w io.Writer, pos int, e models.Entry) {
	line := service.FormatLine(pos, e)
	if e.Done {
		doneColor.Fprintln(w, line)
		return
	}
	openColor.Fprintln(w, line)
}

// ---------------------------------------------------------------------------
// Errors
// ---------------------------------------------------------------------------

// Reportable reports whether err is a documented operation failure. Those
// are printed and the process exits cleanly; any other error (I/O) is
// returned so the process exits non-zero.
func Reportable(err error) bool {
	return errors.Is(err, todo.ErrNoItem) ||
		errors.Is(err, todo.ErrEmptyText) ||
		errors.Is(err, todo.ErrReservedText) ||
		errors.Is(err, db.ErrExists)
}

// SaveError wraps a failed save with the user-facing message.
func SaveError(err error) error {
	return fmt.Errorf("an error occurred while attempting to save data: (%w)", err)
}

// ---------------------------------------------------------------------------
// Arguments
// ---------------------------------------------------------------------------

// WithUsage wraps an argument validator so a failure also prints the
// command usage to stderr. SilenceUsage on the root keeps cobra quiet for
// every other kind of error.
func WithUsage(validate cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		err := validate(cmd, args)
		if err != nil {
			fmt.Fprint(cmd.ErrOrStderr(), cmd.UsageString())
		}
		return err
	}
}

// NoArgs rejects any positional argument.
var NoArgs = WithUsage(cobra.NoArgs)

// MinimumNArgs requires at least n positional arguments.
func MinimumNArgs(n int) cobra.PositionalArgs {
	return WithUsage(cobra.MinimumNArgs(n))
}

// IndexArgs validates exactly n integer arguments. Negative values must
// follow "--".
func IndexArgs(n int) cobra.PositionalArgs {
	return WithUsage(func(cmd *cobra.Command, args []string) error {
		if err := cobra.ExactArgs(n)(cmd, args); err != nil {
			return err
		}
		for _, a := range args {
			if _, err := strconv.Atoi(a); err != nil {
				return fmt.Errorf("invalid index %q: must be an integer", a)
			}
		}
		return nil
	})
}

// Ints converts arguments already checked by IndexArgs.
func Ints(args []string) []int {
	out := make([]int, len(args))
	for i, a := range args {
		out[i], _ = strconv.Atoi(a)
	}
	return out
}

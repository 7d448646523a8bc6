package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/stemsi/registrar/internal/config"
	"github.com/stemsi/registrar/internal/logger"
	"github.com/stemsi/registrar/internal/render"
	"github.com/stemsi/registrar/internal/repository"
	"github.com/stemsi/registrar/internal/response"
	"github.com/stemsi/registrar/internal/validator"
	"golang.org/x/term"
)

// Exit codes.
const (
	ExitSuccess = 0
	ExitLoad    = 1
	ExitUsage   = 2
)

// configError carries translated validation failures.
type configError struct {
	fields map[string]string
}

func (e *configError) Error() string {
	keys := make([]string, 0, len(e.fields))
	for k := range e.fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.fields[k])
	}
	return "invalid configuration: " + strings.Join(parts, "; ")
}

// options is shared by every subcommand.
type options struct {
	cfg    *config.Config
	stdout io.Writer
	stderr io.Writer
	log    zerolog.Logger
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	opts := &options{
		cfg:    config.Load(),
		stdout: stdout,
		stderr: stderr,
		log:    zerolog.Nop(),
	}

	root := &cobra.Command{
		Use:   "registrar",
		Short: "Summarize students, instructors and majors from delimited data files",
		Long: `registrar loads majors, students, instructors and grades from a data
directory and prints requirement and enrollment summaries.

Files read from the data directory:
  majors.txt       major, flag (R|E), course
  students.txt     cwid, name, major
  instructors.txt  cwid, name, department
  grades.txt       student cwid, course, grade, instructor cwid`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if fields := validator.Struct(opts.cfg); fields != nil {
				if opts.jsonOutput() {
					_ = response.FailWithFields(response.ErrValidation, fields).Write(opts.stdout)
				}
				return &configError{fields: fields}
			}
			opts.log = logger.Setup(opts.cfg.LogLevel, opts.cfg.LogFormat, opts.stderr)
			return nil
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	f := root.PersistentFlags()
	f.StringVarP(&opts.cfg.DataDir, "dir", "d", opts.cfg.DataDir, "Directory containing the data files")
	f.StringVar(&opts.cfg.SourcesFile, "config", opts.cfg.SourcesFile, "YAML file overriding per-source path, separator and header")
	f.StringVar(&opts.cfg.Separator, "separator", opts.cfg.Separator, "Default field separator (escapes such as \\t are expanded)")
	f.BoolVar(&opts.cfg.MajorsHeader, "majors-header", opts.cfg.MajorsHeader, "Skip the first line of the majors file")
	f.StringVarP(&opts.cfg.Format, "format", "f", opts.cfg.Format, "Output format: table or json")
	f.StringVar(&opts.cfg.LogLevel, "log-level", opts.cfg.LogLevel, "Log level (trace, debug, info, warn, error)")
	f.StringVar(&opts.cfg.LogFormat, "log-format", opts.cfg.LogFormat, "Log format: pretty or json")

	root.AddCommand(
		newReportCmd(opts),
		newMajorsCmd(opts),
		newStudentsCmd(opts),
		newInstructorsCmd(opts),
		newCoursesCmd(opts),
		newStudentCmd(opts),
		newMajorCmd(opts),
		newExportCmd(opts),
		newCheckCmd(opts),
	)
	return root
}

// load builds the repository from the configured sources. A structural load
// error is returned together with the partially loaded repository.
func (o *options) load(ctx context.Context) (*repository.Repository, error) {
	src, err := o.cfg.Sources()
	if err != nil {
		return nil, err
	}
	if fields := validator.Struct(src); fields != nil {
		return nil, &configError{fields: fields}
	}
	return repository.Load(ctx, src, o.log)
}

func (o *options) jsonOutput() bool {
	return o.cfg.Format == "json"
}

func (o *options) tableRenderer() *render.TableRenderer {
	styled := false
	if f, ok := o.stdout.(*os.File); ok {
		styled = term.IsTerminal(int(f.Fd()))
	}
	return render.NewTableRenderer(o.stdout, styled)
}

// writeJSON wraps data in the report envelope.
func (o *options) writeJSON(data interface{}, repo *repository.Repository, loadErr error) error {
	var r response.Report
	if loadErr != nil {
		r = response.Fail(data, repo.Diagnostics(), repository.ErrorCode(loadErr), loadErr)
	} else {
		r = response.Success(data, repo.Diagnostics())
	}
	return r.Write(o.stdout)
}

// reportError prints err and returns the process exit code for it.
func reportError(w io.Writer, err error) int {
	fmt.Fprintln(w, "Error:", err)

	var ce *configError
	if errors.As(err, &ce) {
		return ExitUsage
	}
	return ExitLoad
}

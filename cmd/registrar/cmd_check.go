package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/stemsi/registrar/internal/response"
)

// checkResult summarizes a load for the check command.
type checkResult struct {
	Majors      int  `json:"majors"`
	Students    int  `json:"students"`
	Instructors int  `json:"instructors"`
	Courses     int  `json:"courses"`
	Complete    bool `json:"complete"`
}

func newCheckCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Load every source and list data-quality diagnostics",
		Long: `Load every source and list data-quality diagnostics.

Exits with status 1 when a structural error (wrong field count, invalid
requirement flag) stopped the load.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, loadErr := opts.load(cmd.Context())
			if repo == nil {
				return loadErr
			}

			res := checkResult{
				Majors:      len(repo.GetAllMajors()),
				Students:    len(repo.GetAllStudents()),
				Instructors: len(repo.GetAllInstructors()),
				Courses:     len(repo.GetAllCourses()),
				Complete:    loadErr == nil,
			}

			if opts.jsonOutput() {
				if err := opts.writeJSON(res, repo, loadErr); err != nil {
					return err
				}
				return loadErr
			}

			out := opts.stdout
			fmt.Fprintf(out, "majors=%d students=%d instructors=%d courses=%d\n",
				res.Majors, res.Students, res.Instructors, res.Courses)
			for _, d := range repo.Diagnostics() {
				fmt.Fprintln(out, formatDiagnostic(d))
			}
			return loadErr
		},
	}
}

func formatDiagnostic(d response.Diagnostic) string {
	severity := "warn"
	if response.IsFatal(d.Code) {
		severity = "fatal"
	}
	s := fmt.Sprintf("%-5s %s %s", severity, d.Code, d.Source)
	if d.Line > 0 {
		s += fmt.Sprintf(":%d", d.Line)
	}
	if d.Subject != "" {
		s += fmt.Sprintf(" %q", d.Subject)
	}
	return s + ": " + d.Message
}

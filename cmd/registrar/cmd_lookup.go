package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/stemsi/registrar/internal/render"
	"github.com/stemsi/registrar/internal/service"
)

func newStudentCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "student CWID",
		Short: "Print the transcript and requirement status of one student",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, loadErr := opts.load(cmd.Context())
			if repo == nil {
				return loadErr
			}
			t, err := service.NewStudentService(repo).GetTranscript(args[0])
			if err != nil {
				return fmt.Errorf("%s: %w", args[0], err)
			}
			if opts.jsonOutput() {
				return opts.writeJSON(t, repo, loadErr)
			}

			out := opts.stdout
			fmt.Fprintf(out, "%s  %s  (%s)\n", t.ID, t.Name, t.Major)
			for _, c := range t.Courses {
				mark := " "
				if c.Passing {
					mark = "*"
				}
				fmt.Fprintf(out, "  %s %-10s %s\n", mark, c.Course, c.Grade)
			}
			electives := render.SatisfiedMarker
			if !t.ElectivesSatisfied() {
				electives = render.FormatList(t.RemainingElectives)
			}
			fmt.Fprintf(out, "Remaining required:  %s\n", render.FormatList(t.RemainingRequired))
			fmt.Fprintf(out, "Remaining electives: %s\n", electives)
			return nil
		},
	}
}

func newMajorCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "major LABEL",
		Short: "Print the requirements and enrolled students of one major",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, loadErr := opts.load(cmd.Context())
			if repo == nil {
				return loadErr
			}
			d, err := service.NewMajorService(repo).GetByLabel(args[0])
			if err != nil {
				return fmt.Errorf("%s: %w", args[0], err)
			}
			if opts.jsonOutput() {
				return opts.writeJSON(d, repo, loadErr)
			}

			out := opts.stdout
			fmt.Fprintf(out, "%s\n", d.Major)
			fmt.Fprintf(out, "Required:  %s\n", render.FormatList(d.Required))
			fmt.Fprintf(out, "Electives: %s\n", render.FormatList(d.Electives))
			fmt.Fprintf(out, "Students:  %s\n", strings.Join(d.Students, ", "))
			return nil
		},
	}
}

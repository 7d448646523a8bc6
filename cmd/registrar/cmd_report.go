package main

import (
	"github.com/spf13/cobra"
	"github.com/stemsi/registrar/internal/service"
)

func newReportCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "report",
		Short: "Print the majors, students and instructors summaries",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, loadErr := opts.load(cmd.Context())
			if repo == nil {
				return loadErr
			}
			summary := service.NewReportService(repo).Summary()
			if opts.jsonOutput() {
				return opts.writeJSON(summary, repo, loadErr)
			}
			return opts.tableRenderer().Summary(summary)
		},
	}
}

func newMajorsCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "majors",
		Short: "Print required and elective courses of every major",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, loadErr := opts.load(cmd.Context())
			if repo == nil {
				return loadErr
			}
			rows := service.NewReportService(repo).Majors()
			if opts.jsonOutput() {
				return opts.writeJSON(rows, repo, loadErr)
			}
			return opts.tableRenderer().Majors(rows)
		},
	}
}

func newStudentsCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "students",
		Short: "Print completed and remaining courses of every student",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, loadErr := opts.load(cmd.Context())
			if repo == nil {
				return loadErr
			}
			rows := service.NewReportService(repo).Students()
			if opts.jsonOutput() {
				return opts.writeJSON(rows, repo, loadErr)
			}
			return opts.tableRenderer().Students(rows)
		},
	}
}

func newInstructorsCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "instructors",
		Short: "Print one row per course taught by each instructor",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, loadErr := opts.load(cmd.Context())
			if repo == nil {
				return loadErr
			}
			rows := service.NewReportService(repo).Instructors()
			if opts.jsonOutput() {
				return opts.writeJSON(rows, repo, loadErr)
			}
			return opts.tableRenderer().Instructors(rows)
		},
	}
}

func newCoursesCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "courses",
		Short: "Print the instructors and grade record count of every course",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, loadErr := opts.load(cmd.Context())
			if repo == nil {
				return loadErr
			}
			rows := service.NewReportService(repo).Courses()
			if opts.jsonOutput() {
				return opts.writeJSON(rows, repo, loadErr)
			}
			return opts.tableRenderer().Courses(rows)
		},
	}
}

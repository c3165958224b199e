package main

import (
	"hr-payroll-backend/internal/seed"

	"github.com/spf13/cobra"
)

type checkOutput struct {
	Command     string `json:"command"`
	File        string `json:"file"`
	Employees   int    `json:"employees"`
	Teams       int    `json:"teams"`
	Assignments int    `json:"assignments"`
}

func newCheckCmd() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Parse the roster without touching the database",
		RunE: func(cmd *cobra.Command, args []string) error {
			roster, err := seed.ParseFile(file)
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), checkOutput{
				Command:     "seed check",
				File:        file,
				Employees:   len(roster.Employees),
				Teams:       len(roster.Teams),
				Assignments: len(roster.Assignments),
			})
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", defaultRosterFile, "Roster YAML file")
	return cmd
}

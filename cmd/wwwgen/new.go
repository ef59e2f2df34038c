package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"wwwgen/internal/scaffold"
)

func newNewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "new",
		Short: "Create a new site or post",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "site <dir>",
		Short: "Create a new site scaffold",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := scaffold.CreateNewSite(args[0]); err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "Site scaffolded. You can now:")
			fmt.Fprintln(out, "  wwwgen serve", args[0])
			return nil
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "post <sourceDir> <title>",
		Short: "Create a new blog post dated today",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := scaffold.CreateNewPost(args[0], strings.Join(args[1:], " "), time.Now())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Created:", path)
			return nil
		},
	})
	return cmd
}

package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"
)

func newPagesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pages",
		Short: "Manage editable page content",
	}
	cmd.AddCommand(
		newPagesListCmd(),
		newPagesShowCmd(),
		newPagesSetCmd(),
	)
	return cmd
}

func newPagesListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List stored pages",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := requireLogin()
			if err != nil {
				return err
			}
			pages, err := c.ListPages(cmd.Context())
			if err != nil {
				return err
			}
			for _, page := range pages {
				fmt.Printf("%-12s  updated %s\n", page.PageKey, page.UpdatedAt.Format("2006-01-02 15:04"))
			}
			return nil
		},
	}
}

func newPagesShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <key>",
		Short: "Show a page's fields",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fields, err := apiClient().GetPageFields(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			keys := make([]string, 0, len(fields))
			for k := range fields {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			for _, k := range keys {
				fmt.Printf("%-24s %s\n", k, fields[k])
			}
			return nil
		},
	}
}

func newPagesSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <key> <field>=<value>...",
		Short: "Set fields on a page",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := requireLogin()
			if err != nil {
				return err
			}
			key := args[0]

			fields, err := c.GetPageFields(cmd.Context(), key)
			if err != nil {
				return err
			}
			for _, pair := range args[1:] {
				name, value, ok := strings.Cut(pair, "=")
				if !ok || name == "" {
					return fmt.Errorf("expected field=value, got %q", pair)
				}
				fields[name] = value
			}

			if _, err := c.SavePage(cmd.Context(), key, fields); err != nil {
				return err
			}
			fmt.Printf("Saved page %s\n", key)
			return nil
		},
	}
}

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"excuses/internal/corpus"
)

func newCategoriesCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List keyword categories and specific phrases",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := corpus.Load(opts.corpusFile)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "Categories:")
			for _, cat := range c.Categories {
				fmt.Fprintf(out, "  %-10s %s\n", cat.Name, strings.Join(cat.Keywords, ", "))
			}
			fmt.Fprintln(out, "Specific phrases:")
			for _, p := range c.Specific {
				fmt.Fprintf(out, "  %s\n", p.Key)
			}
			fmt.Fprintf(out, "Generic excuses: %d\n", len(c.Generic))
			return nil
		},
	}
}

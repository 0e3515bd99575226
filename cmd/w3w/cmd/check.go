package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/what3words/w3w-go-wrapper/internal/cli"
	"github.com/what3words/w3w-go-wrapper/internal/utils"
	"github.com/what3words/w3w-go-wrapper/pkg/recognize"
)

func newCheckCmd(a *app) *cobra.Command {
	var lookupFlag, offsets bool

	c := &cobra.Command{
		Use:   "check <text>",
		Short: "Run every classifier over some text",
		Long:  "Reports whether the text is a 3wa, a near miss, and which 3wa-shaped strings it contains.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text := strings.Join(args, " ")
			r := cli.Analyze(cmd.Context(), a.lookup(lookupFlag), text)
			cli.PrintReport(printer(cmd.OutOrStdout()), r, offsets)
			return nil
		},
	}
	c.Flags().BoolVar(&lookupFlag, "lookup", false, "Also confirm the text against the API")
	c.Flags().BoolVar(&offsets, "offsets", false, "Show byte offsets of matches")
	return c
}

func newFindCmd(_ *app) *cobra.Command {
	var offsets, all bool

	c := &cobra.Command{
		Use:   "find <text>",
		Short: "Print every 3wa-shaped string in some text, one per line",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text := strings.Join(args, " ")
			out := cmd.OutOrStdout()
			filter := utils.NewMatchFilter()
			for _, m := range recognize.FindPossibleAddressMatches(text) {
				if !all && !filter.ShouldInclude(m.Words) {
					continue
				}
				if offsets {
					fmt.Fprintf(out, "%d\t%d\t%s\n", m.Start, m.End, m.Words)
					continue
				}
				fmt.Fprintln(out, m.Words)
			}
			return nil
		},
	}
	c.Flags().BoolVar(&offsets, "offsets", false, "Prefix each match with its start and end byte offsets")
	c.Flags().BoolVar(&all, "all", false, "Keep repeated matches")
	return c
}

func newValidCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "valid <3wa>",
		Short: "Confirm a 3wa exists (at most one API request)",
		Long: "Checks the shape offline first. Only shape-valid input is sent to autosuggest,\n" +
			"and it is valid when the top suggestion is exactly the input.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input := args[0]
			if !recognize.IsPossibleAddress(input) {
				fmt.Fprintln(cmd.OutOrStdout(), recognize.ShapeRejected)
				return fmt.Errorf("%q is not a 3wa", input)
			}
			client, err := a.client()
			if err != nil {
				return err
			}
			c, err := client.Confirm3wa(cmd.Context(), input)
			fmt.Fprintln(cmd.OutOrStdout(), c)
			switch {
			case err != nil:
				return err
			case c != recognize.Confirmed:
				return fmt.Errorf("%q is not a 3wa", input)
			}
			return nil
		},
	}
}

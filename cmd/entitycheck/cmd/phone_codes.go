package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/entityvalidator/pkg/phonepattern"
)

func newPhoneCodesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "phone-codes",
		Short: "List the countries with a phone number format",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, code := range phonepattern.Codes() {
				pattern, _ := phonepattern.Lookup(code)
				fmt.Fprintf(w, "%s\t%s\n", code, pattern)
			}
			return w.Flush()
		},
	}
}

package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func newFamilyCmd(flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "family <class>...",
		Short: "Show the conflict family and key of each class",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(cmd, flags)
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "CLASS\tFAMILY\tKEY")
			for _, class := range args {
				family, key := "-", "-"
				if f, ok := app.resolver.Family(class); ok {
					family = string(f)
				}
				if k, ok := app.resolver.Key(class); ok {
					key = k
				}
				fmt.Fprintf(w, "%s\t%s\t%s\n", class, family, key)
			}
			return w.Flush()
		},
	}

	return cmd
}

package main

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newMergeCmd(flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "merge [classes...]",
		Short: "Merge class lists so later utilities override earlier ones",
		Long: `Merge class lists so later utilities override earlier ones.

Each argument is one class list. Without arguments every line of standard
input is read as a class list.`,
		Example: `  vango-ui merge "px-3 py-2 bg-primary" "px-4"
  echo "p-4 px-2" | vango-ui merge`,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(cmd, flags)
			if err != nil {
				return err
			}

			lists := args
			if len(lists) == 0 {
				lists, err = readLines(cmd)
				if err != nil {
					return err
				}
			}

			fmt.Fprintln(cmd.OutOrStdout(), app.resolver.Merge(lists...))
			return nil
		},
	}

	return cmd
}

func readLines(cmd *cobra.Command) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(cmd.InOrStdin())
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			lines = append(lines, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read standard input: %w", err)
	}
	return lines, nil
}

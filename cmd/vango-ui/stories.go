package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/a-h/templ"
	"github.com/spf13/cobra"

	"github.com/vango-dev/vango-ui/app/stories"
	"github.com/vango-dev/vango-ui/pkg/tw"
)

func newStoriesCmd(flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stories",
		Short: "List or render component stories",
	}

	cmd.AddCommand(newStoriesListCmd())
	cmd.AddCommand(newStoriesRenderCmd(flags))

	return cmd
}

func newStoriesListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List registered stories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "STORY\tDESCRIPTION")
			for _, s := range stories.Default().All() {
				fmt.Fprintf(w, "%s\t%s\n", s.ID(), s.Description)
			}
			return w.Flush()
		},
	}
}

type renderOptions struct {
	page bool
}

func newStoriesRenderCmd(flags *rootFlags) *cobra.Command {
	opts := &renderOptions{}

	cmd := &cobra.Command{
		Use:   "render <group>/<name>",
		Short: "Render a story as HTML",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			group, name, ok := strings.Cut(args[0], "/")
			if !ok {
				return fmt.Errorf("story must be given as <group>/<name>, got %q", args[0])
			}
			s, err := stories.Default().Get(group, name)
			if err != nil {
				return err
			}

			app, err := loadApp(cmd, flags)
			if err != nil {
				return err
			}

			var c templ.Component = s.Render()
			if opts.page {
				c = stories.Page(s.ID(), c)
			}
			ctx := tw.WithResolver(cmd.Context(), app.resolver)
			if err := c.Render(ctx, cmd.OutOrStdout()); err != nil {
				return fmt.Errorf("render %s: %w", s.ID(), err)
			}
			fmt.Fprintln(cmd.OutOrStdout())
			return nil
		},
	}

	cmd.Flags().BoolVar(&opts.page, "page", false, "Wrap the story in a complete HTML document")

	return cmd
}

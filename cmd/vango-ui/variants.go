package main

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/vango-dev/vango-ui/app/components/ui"
	"github.com/vango-dev/vango-ui/pkg/variants"
)

func newVariantsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "variants [component]",
		Short: "Print component variant tables",
		Args:  cobra.MaximumNArgs(1),
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			return ui.VariantTableNames(), cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			names := ui.VariantTableNames()
			if len(args) == 1 {
				if _, ok := ui.VariantTable(args[0]); !ok {
					return fmt.Errorf("unknown component %q (known: %v)", args[0], names)
				}
				names = args
			}

			p := newTablePrinter(cmd.OutOrStdout())
			for i, name := range names {
				if i > 0 {
					fmt.Fprintln(cmd.OutOrStdout())
				}
				t, _ := ui.VariantTable(name)
				p.print(name, t)
			}
			return nil
		},
	}

	return cmd
}

type tablePrinter struct {
	out       io.Writer
	title     lipgloss.Style
	axis      lipgloss.Style
	value     lipgloss.Style
	classes   lipgloss.Style
	isDefault lipgloss.Style
}

func newTablePrinter(out io.Writer) *tablePrinter {
	r := lipgloss.NewRenderer(out)
	return &tablePrinter{
		out:       out,
		title:     r.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		axis:      r.NewStyle().Bold(true).PaddingLeft(2),
		value:     r.NewStyle().PaddingLeft(4).Width(18),
		classes:   r.NewStyle().Foreground(lipgloss.Color("245")),
		isDefault: r.NewStyle().Foreground(lipgloss.Color("42")),
	}
}

func (p *tablePrinter) print(name string, t *variants.Table) {
	fmt.Fprintln(p.out, p.title.Render(name))
	if base := t.Base(); base != "" {
		fmt.Fprintln(p.out, p.axis.Render("base"))
		fmt.Fprintln(p.out, p.value.Render("")+p.classes.Render(base))
	}
	for _, axis := range t.Describe() {
		fmt.Fprintln(p.out, p.axis.Render(axis.Name))
		for _, v := range axis.Values {
			label := v.Value
			if v.Value == axis.Default {
				label += p.isDefault.Render("*")
			}
			fmt.Fprintln(p.out, p.value.Render(label)+p.classes.Render(v.Classes))
		}
	}
}

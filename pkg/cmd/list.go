package cmd

import (
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/c9s/streamta/pkg/num"
	"github.com/c9s/streamta/pkg/registry"
	"github.com/c9s/streamta/pkg/style"
)

func init() {
	RootCmd.AddCommand(ListCmd)
}

var ListCmd = &cobra.Command{
	Use:          "list",
	Short:        "list the available indicators",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		reg := registry.New(num.Float64)

		t := style.NewTable(cmd.OutOrStdout(), []string{"name", "category", "parameters", "default", "description"})
		for _, m := range reg.Metadata() {
			// a bare name builds the default configuration
			r, err := reg.Parse(m.Name)
			if err != nil {
				return err
			}

			t.AppendRow(table.Row{m.Name, m.Category, strings.Join(m.Parameters, ", "), r.String(), m.Description})
		}

		t.Render()
		return nil
	},
}

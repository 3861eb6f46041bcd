package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
)

var providersCmd = &cobra.Command{
	Use:     "providers",
	Short:   "List supported VCS providers",
	Long:    `List the registered VCS providers and the reference forms they accept.`,
	Example: `  prref providers`,
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		headerStyle := lipgloss.NewStyle().Bold(true).Padding(0, 1)
		cellStyle := lipgloss.NewStyle().Padding(0, 1)

		providers := buildRegistry().Providers()
		rows := make([][]string, 0, len(providers))
		for _, p := range providers {
			rows = append(rows, []string{p.ID(), p.Name(), exampleRef(p.ID())})
		}

		t := table.New().
			Border(lipgloss.NormalBorder()).
			Headers("ID", "NAME", "EXAMPLE").
			Rows(rows...).
			StyleFunc(func(row, col int) lipgloss.Style {
				if row == table.HeaderRow {
					return headerStyle
				}
				return cellStyle
			})

		fmt.Fprintln(cmd.OutOrStdout(), t)
		return nil
	},
}

// exampleRef returns a representative reference form for a provider.
func exampleRef(id string) string {
	switch id {
	case "github":
		return "owner/repo#123"
	case "gitlab":
		return "group/project!42"
	default:
		return ""
	}
}

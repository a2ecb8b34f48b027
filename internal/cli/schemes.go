package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/bpmngraph/pkg/bpmn"
)

func (c *CLI) schemesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "schemes",
		Short: "List the built-in tag scheme presets",
		Long: `List the tag scheme presets accepted by the "scheme" configuration key.

A scheme fixes the namespace prefix of recognized tags, the tag used for
activities, and whether exactly one start and one end event are required.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rows, err := schemeRows()
			if err != nil {
				return err
			}
			fmt.Fprintln(c.Stdout, schemeTable(rows))
			return nil
		},
	}
}

func schemeRows() ([][]string, error) {
	def := bpmn.DefaultScheme()
	var rows [][]string
	for _, name := range bpmn.SchemeNames() {
		s, err := bpmn.SchemeByName(name)
		if err != nil {
			return nil, err
		}
		if s == def {
			name += " (default)"
		}
		prefix := s.Prefix
		if prefix == "" {
			prefix = "—"
		}
		topology := "zero or more"
		if s.SingleStartEnd {
			topology = "exactly one each"
		}
		rows = append(rows, []string{name, prefix, s.Tag(s.TaskTag), topology})
	}
	return rows, nil
}

func schemeTable(rows [][]string) string {
	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	cellStyle := lipgloss.NewStyle().Padding(0, 1)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Scheme", "Prefix", "Task tag", "Start/End").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle.Padding(0, 1)
			}
			if col == 0 {
				return cellStyle.Foreground(colorCyan)
			}
			return cellStyle
		})
	return t.Render()
}

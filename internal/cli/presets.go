package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/brandmark/pkg/preset"
)

// presetsCommand creates the presets command, which lists the catalog.
func (c *CLI) presetsCommand() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "presets",
		Short: "List available style presets",
		Long: `List the style presets in catalog order.

Built-in presets are listed first; presets_file entries with a new id are
appended and entries reusing a built-in id replace it. The preset applied
when a session starts is marked with ` + iconActive + `.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runPresets(cmd.Context(), cmd.OutOrStdout(), asJSON)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print the catalog as JSON")
	return cmd
}

func (c *CLI) runPresets(ctx context.Context, stdout io.Writer, asJSON bool) error {
	s, err := c.settings()
	if err != nil {
		return err
	}
	cat, err := s.Catalog()
	if err != nil {
		return err
	}
	loggerFromContext(ctx).Debug("Listing presets", "count", cat.Len(), "file", s.PresetsFile)

	if asJSON {
		enc := json.NewEncoder(stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(cat.All())
	}

	fmt.Fprintln(stdout, presetTable(cat, s.Preset))
	printNextStep(stdout, "Try one", "brandmark render --preset "+cat.IDs()[0])
	return nil
}

// presetTable renders the catalog with a swatch per color field.
func presetTable(cat preset.Catalog, active string) string {
	all := cat.All()
	rows := make([][]string, 0, len(all))
	for _, p := range all {
		marker := ""
		if p.ID == active {
			marker = iconActive
		}
		colors := swatch(p.PrimaryColor) + " " + swatch(p.AuxiliaryColor) + " " + swatch(p.BackgroundColor)
		rows = append(rows, []string{
			marker,
			p.ID,
			p.Name,
			colors,
			strconv.Itoa(p.ShadowIntensity),
			strconv.Itoa(p.BorderRadius),
			p.Layout.String(),
		})
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "ID", "Name", "Colors", "Shadow", "Radius", "Layout").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			base := lipgloss.NewStyle().Padding(0, 1)
			if row < len(all) && all[row].ID == active {
				base = base.Bold(true)
			}
			switch col {
			case 0:
				return base.Foreground(colorGreen)
			case 1:
				return base.Foreground(colorCyan)
			case 4, 5:
				return base.Foreground(colorGray).Align(lipgloss.Right)
			}
			return base
		})

	return t.Render()
}

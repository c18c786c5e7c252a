package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/kballard/go-shellquote"
	"github.com/olekukonko/tablewriter"

	"github.com/AntonioJCosta/cmdalias/internal/core/domain/alias"
	"github.com/AntonioJCosta/cmdalias/internal/core/domain/command"
	"github.com/AntonioJCosta/cmdalias/internal/handlers/ui"
	"github.com/AntonioJCosta/cmdalias/internal/paths"
)

// renderCatalog writes the configured commands as a table, one row per entry.
func renderCatalog(w io.Writer, catalog *command.Catalog, configPath string) error {
	source := configPath
	if source == "" {
		p, err := paths.DefaultConfig()
		if err != nil {
			return fmt.Errorf("could not locate configuration: %w", err)
		}
		source = p
	}

	if catalog.Len() == 0 {
		fmt.Fprintln(w, ui.InfoColor("No commands configured."))
		fmt.Fprintln(w, ui.DetailColor(fmt.Sprintf("(Source: %s)", paths.Friendly(source))))
		return nil
	}

	fmt.Fprintln(w, ui.HeaderColor("Configured Commands:"))

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Command", "Alt Names", "Global", "Aliases"})
	table.SetBorder(true)
	table.SetAutoWrapText(false)
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT,
	})

	for _, entry := range catalog.Entries() {
		table.Append([]string{
			ui.CommandNameColor(entry.Name),
			ui.AltNameColor(strings.Join(entry.AltNames, ", ")),
			describeScope(entry.Global),
			describeScope(entry.Root),
		})
	}
	table.Render()

	fmt.Fprintln(w, ui.DetailColor(fmt.Sprintf("(Source: %s)", paths.Friendly(source))))
	return nil
}

// describeScope renders each alias of a scope as "names=substitute".
// Terminal aliases are marked with "!", aliases with children with "+".
func describeScope(scope *alias.Scope) string {
	parts := make([]string, 0, scope.Len())
	for _, node := range scope.Nodes() {
		var b strings.Builder
		b.WriteString(strings.Join(node.Names, "|"))
		if len(node.Substitutes) > 0 {
			b.WriteString("=")
			b.WriteString(formatArgv(node.Substitutes))
		}
		if node.Terminal {
			b.WriteString("!")
		}
		if node.Children.Len() > 0 {
			b.WriteString("+")
		}
		parts = append(parts, b.String())
	}
	return strings.Join(parts, " ")
}

// formatArgv quotes argv so that it can be pasted back into a shell.
func formatArgv(argv []string) string {
	return shellquote.Join(argv...)
}

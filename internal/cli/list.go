package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/anoideaopen/commandline/core/routing"
)

func printCommands(w io.Writer, methods []*routing.Method) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "COMMAND\tDESCRIPTION")
	for _, m := range methods {
		usage := m.String()
		if m.Static {
			usage += " (static)"
		}
		fmt.Fprintf(tw, "%s\t%s\n", usage, m.Description)
	}
	return tw.Flush()
}

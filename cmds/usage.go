package cmds

import (
	"fmt"
	"maps"
	"slices"
	"strings"
	"text/tabwriter"
)

func (p *Executor) PrintUsage() {
	w := tabwriter.NewWriter(p.Output, 0, 4, 2, ' ', 0)
	defer w.Flush()

	fmt.Fprintln(w, "usage: pilex [command [argument]...]...")
	if p.fallback != "" {
		fmt.Fprintf(w, "bare arguments go to %s\n", p.fallback)
	}
	fmt.Fprintln(w)

	commands := slices.SortedFunc(maps.Keys(p.names), func(a, b *Command) int {
		return strings.Compare(p.names[a], p.names[b])
	})
	for _, command := range commands {
		names := append([]string{p.names[command]}, command.aliases...)
		fmt.Fprintf(w, "  %s%s\t%s\n",
			strings.Join(names, ", "),
			command.signature(),
			command.description,
		)
	}
}

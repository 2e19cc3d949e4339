package cmds

import (
	"fmt"
	"os"
	"sort"
)

func (p *Executor) PrintUsage() {
	fmt.Fprintln(os.Stdout, "commands:")
	printCommands(p.commands, "  ")
}

func printCommands(commands map[string]*Command, indent string) {
	names := make([]string, 0, len(commands))
	for name := range commands {
		names = append(names, name)
	}
	sort.Strings(names)

	printed := make(map[*Command]bool)
	for _, name := range names {
		command := commands[name]
		if command == nil || printed[command] {
			continue
		}
		printed[command] = true

		line := indent + name
		for _, alias := range command.Aliases {
			line += " | " + alias
		}
		if command.Description != "" {
			line += "\n" + indent + "    " + command.Description
		}
		fmt.Fprintln(os.Stdout, line)

		if len(command.Subs) > 0 {
			printCommands(command.Subs, indent+"  ")
		}
	}
}

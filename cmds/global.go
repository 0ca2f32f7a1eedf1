package cmds

import (
	"errors"
	"fmt"
	"os"
)

var GlobalExecutor = NewExecutor()

func Define(name string, command *Command) {
	GlobalExecutor.Define(name, command)
}

func Fallback(name string) {
	GlobalExecutor.Fallback(name)
}

// Execute runs args against the global commands. It exits after printing
// usage or on error.
func Execute(args []string) {
	err := GlobalExecutor.Execute(args)
	if errors.Is(err, ErrHelp) {
		os.Exit(0)
	}
	if err != nil {
		fmt.Fprintf(GlobalExecutor.Output, "%v\nrun with -h for usage\n", err)
		os.Exit(2)
	}
}

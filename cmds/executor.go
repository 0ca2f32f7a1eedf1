package cmds

import (
	"errors"
	"fmt"
	"io"
	"os"
	"reflect"
	"strings"
)

// ErrHelp is returned by Execute after printing usage.
var ErrHelp = errors.New("help requested")

type Executor struct {
	commands map[string]*Command
	names    map[*Command]string
	fallback string
	// Output receives usage text, defaults to stderr
	Output io.Writer
}

func NewExecutor() *Executor {
	ret := &Executor{
		commands: make(map[string]*Command),
		names:    make(map[*Command]string),
		Output:   os.Stderr,
	}
	ret.Define("-h", Func(func() error {
		ret.PrintUsage()
		return ErrHelp
	}).Desc("print this usage").Alias("help", "-help", "--help"))
	return ret
}

func (p *Executor) Define(name string, command *Command) {
	for _, n := range append([]string{name}, command.aliases...) {
		if _, ok := p.commands[n]; ok {
			panic(fmt.Errorf("duplicated command %s", n))
		}
		p.commands[n] = command
	}
	p.names[command] = name
}

// Fallback names the command that receives arguments which are not command
// names, like bare file paths. Arguments starting with '-' never fall back.
func (p *Executor) Fallback(name string) {
	command, ok := p.commands[name]
	if !ok {
		panic(fmt.Errorf("no such command %s", name))
	}
	if len(command.params) == 0 {
		panic(fmt.Errorf("fallback command %s takes no arguments", name))
	}
	p.fallback = name
}

func (p *Executor) Execute(args []string) error {
	for len(args) > 0 {
		name := strings.TrimSpace(args[0])
		command, ok := p.commands[name]
		if ok {
			args = args[1:]
		} else if p.fallback != "" && !strings.HasPrefix(name, "-") {
			name = p.fallback
			command = p.commands[name]
		} else {
			return &UnknownCommandError{
				Name: name,
				Near: p.near(name),
			}
		}

		var callArgs []reflect.Value
		var err error
		callArgs, args, err = p.bind(name, command, args)
		if err != nil {
			return err
		}

		var rets []reflect.Value
		if command.variadic {
			rets = command.fn.CallSlice(callArgs)
		} else {
			rets = command.fn.Call(callArgs)
		}
		if len(rets) > 0 && !rets[0].IsNil() {
			return rets[0].Interface().(error)
		}
	}
	return nil
}

// bind parses the arguments of command from args and returns the rest.
func (p *Executor) bind(name string, command *Command, args []string) ([]reflect.Value, []string, error) {
	var ret []reflect.Value
	for i, param := range command.params {

		if command.variadic && i == len(command.params)-1 {
			values := reflect.MakeSlice(reflect.SliceOf(param), 0, 0)
			for len(args) > 0 {
				if _, ok := p.commands[args[0]]; ok {
					break
				}
				value, err := parseArg(param, args[0])
				if err != nil {
					return nil, nil, fmt.Errorf("%s: %w", name, err)
				}
				values = reflect.Append(values, value)
				args = args[1:]
			}
			ret = append(ret, values)
			break
		}

		if len(args) == 0 {
			return nil, nil, fmt.Errorf("%s: missing <%v> argument", name, param)
		}
		value, err := parseArg(param, args[0])
		if err != nil {
			return nil, nil, fmt.Errorf("%s: %w", name, err)
		}
		ret = append(ret, value)
		args = args[1:]
	}
	return ret, args, nil
}

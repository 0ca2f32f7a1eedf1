package cmds

import (
	"fmt"
	"reflect"
	"strings"
)

// Command is an action named on the command line. The parameters of its
// function consume the arguments that follow the name. A variadic last
// parameter consumes arguments up to the next command name.
type Command struct {
	fn          reflect.Value
	params      []reflect.Type
	variadic    bool
	description string
	aliases     []string
}

var errorType = reflect.TypeFor[error]()

// Func wraps fn, which returns nothing or an error.
func Func(fn any) *Command {
	value := reflect.ValueOf(fn)
	if value.Kind() != reflect.Func {
		panic(fmt.Errorf("command must be a function, got %T", fn))
	}
	typ := value.Type()
	switch {
	case typ.NumOut() > 1,
		typ.NumOut() == 1 && typ.Out(0) != errorType:
		panic(fmt.Errorf("command must return nothing or error, got %v", typ))
	}

	command := &Command{
		fn:       value,
		variadic: typ.IsVariadic(),
	}
	for i := range typ.NumIn() {
		param := typ.In(i)
		if command.variadic && i == typ.NumIn()-1 {
			param = param.Elem()
		}
		if !parsable(param) {
			panic(fmt.Errorf("unsupported command argument type %v", param))
		}
		command.params = append(command.params, param)
	}
	return command
}

func (c *Command) Desc(desc string) *Command {
	c.description = desc
	return c
}

func (c *Command) Alias(names ...string) *Command {
	c.aliases = append(c.aliases, names...)
	return c
}

// signature renders the argument placeholders, like "<string>...".
func (c *Command) signature() string {
	var b strings.Builder
	for i, param := range c.params {
		fmt.Fprintf(&b, " <%v>", param)
		if c.variadic && i == len(c.params)-1 {
			b.WriteString("...")
		}
	}
	return b.String()
}

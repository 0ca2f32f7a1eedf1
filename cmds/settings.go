package cmds

// Setting is a value given on the command line. IsSet tells an explicit zero
// from an absent one.
type Setting[T any] struct {
	Value T
	IsSet bool
}

func (s *Setting[T]) set(v T) {
	s.Value = v
	s.IsSet = true
}

// Var defines "name <value>".
func Var[T any](name string, desc string) *Setting[T] {
	return defineVar[T](GlobalExecutor, name, desc)
}

func defineVar[T any](executor *Executor, name string, desc string) *Setting[T] {
	ret := new(Setting[T])
	executor.Define(name, Func(ret.set).Desc(desc))
	return ret
}

// Switch defines name to set true and negation to set false.
func Switch(name string, negation string, desc string) *Setting[bool] {
	return defineSwitch(GlobalExecutor, name, negation, desc)
}

func defineSwitch(executor *Executor, name string, negation string, desc string) *Setting[bool] {
	ret := new(Setting[bool])
	executor.Define(name, Func(func() {
		ret.set(true)
	}).Desc(desc))
	executor.Define(negation, Func(func() {
		ret.set(false)
	}).Desc("undo "+name))
	return ret
}

// Collect defines "name <value>..." appending every value. It may be given
// more than once.
func Collect[T any](name string, desc string) *[]T {
	return defineCollect[T](GlobalExecutor, name, desc)
}

func defineCollect[T any](executor *Executor, name string, desc string) *[]T {
	ret := new([]T)
	executor.Define(name, Func(func(values ...T) {
		*ret = append(*ret, values...)
	}).Desc(desc))
	return ret
}

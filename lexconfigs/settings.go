package lexconfigs

import (
	"fmt"

	"github.com/reusee/pilex/cmds"
	"github.com/reusee/pilex/configs"
	"github.com/reusee/pilex/logs"
)

type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
)

// KeepComments tells whether comment tokens are shown.
type KeepComments bool

var (
	formatFlag   = cmds.Var[string]("-format", "output format, text or json")
	commentsFlag = cmds.Switch("-comments", "-no-comments", "show comment tokens")
)

func init() {
	cmds.Define("-json", cmds.Func(func() {
		formatFlag.Value = string(FormatJSON)
		formatFlag.IsSet = true
	}).Desc("same as -format json"))
}

func (Module) OutputFormat(
	loader configs.Loader,
	logger logs.Logger,
) OutputFormat {
	format := OutputFormat(resolve(logger, loader, formatFlag, "format", string(FormatText)))
	switch format {
	case FormatText, FormatJSON:
		return format
	}
	panic(fmt.Errorf("unknown output format: %s", format))
}

func (Module) KeepComments(
	loader configs.Loader,
	logger logs.Logger,
) KeepComments {
	return KeepComments(resolve(logger, loader, commentsFlag, "comments", true))
}

// resolve picks the flag if given, else the most specific config file, else
// def. Values from less specific files that differ are logged.
func resolve[T comparable](
	logger logs.Logger,
	loader configs.Loader,
	flag *cmds.Setting[T],
	key string,
	def T,
) T {
	if flag.IsSet {
		return flag.Value
	}
	var first *configs.Entry[T]
	for entry, err := range configs.All[T](loader, key) {
		if err != nil {
			panic(err)
		}
		if first == nil {
			first = &entry
			continue
		}
		if entry.Value != first.Value {
			logger.Debug("config value shadowed",
				"key", key,
				"value", entry.Value,
				"path", entry.Path,
				"by", first.Path,
			)
		}
	}
	if first == nil {
		return def
	}
	return first.Value
}

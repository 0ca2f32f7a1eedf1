package lexconfigs

import (
	_ "embed"
	"os"
	"path/filepath"

	"github.com/reusee/pilex/configs"
	"github.com/reusee/pilex/logs"
)

//go:embed schema.cue
var schema string

// ConfigPaths lists existing config files, most specific first.
type ConfigPaths []string

var filenames = []string{
	"pilex.cue",
	".pilex.cue",
}

func (Module) ConfigPaths() ConfigPaths {
	var dirs []string
	if workingDir, err := os.Getwd(); err == nil {
		dirs = append(dirs, workingDir)
	}
	if configDir, err := os.UserConfigDir(); err == nil {
		dirs = append(dirs, configDir)
	}
	dirs = append(dirs, "/etc")

	var paths ConfigPaths
	for _, dir := range dirs {
		for _, filename := range filenames {
			path := filepath.Join(dir, filename)
			if _, err := os.Stat(path); err == nil {
				paths = append(paths, path)
			}
		}
	}
	return paths
}

func (Module) ConfigsLoader(
	paths ConfigPaths,
	logger logs.Logger,
) configs.Loader {
	if len(paths) > 0 {
		logger.Debug("config file",
			"paths", []string(paths),
		)
	}
	return configs.NewLoader(paths, schema)
}

package logs

import (
	"io"
	"log/slog"
	"os"
	"path"
	"strings"

	"github.com/reusee/pilex/cmds"
	slogmulti "github.com/samber/slog-multi"
	slogjournal "github.com/systemd/slog-journal"
)

var level = new(slog.LevelVar)

func init() {
	for name, l := range map[string]slog.Level{
		"-log-debug": slog.LevelDebug,
		"-log-info":  slog.LevelInfo,
		"-log-warn":  slog.LevelWarn,
		"-log-error": slog.LevelError,
	} {
		cmds.Define(name, cmds.Func(func() {
			level.Set(l)
		}).Desc("set log level to "+strings.ToLower(l.String())))
	}
}

type Logger = *slog.Logger

// Writer receives terminal logs.
type Writer io.Writer

func (Module) Writer() Writer {
	return os.Stderr
}

// Level is the minimum level logged, set by the -log-* commands.
type Level slog.Level

func (Module) Level() Level {
	return Level(level.Level())
}

func (Module) Logger(
	writer Writer,
	minLevel Level,
) Logger {
	return slog.New(&Handler{
		Handler: slogmulti.Fanout(newHandlers(writer, minLevel, isSystemdService())...),
	})
}

func newHandlers(writer Writer, minLevel Level, systemdService bool) []slog.Handler {
	var handlers []slog.Handler

	// under systemd, stderr already goes to the journal
	if !systemdService {
		handlers = append(handlers, slog.NewTextHandler(
			writer,
			&slog.HandlerOptions{
				Level: slog.Level(minLevel),
			},
		))
	}

	journalHandler, err := slogjournal.NewHandler(&slogjournal.Options{
		ReplaceGroup: toJournalKey,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			a.Key = toJournalKey(a.Key)
			return a
		},
		Level: slog.Level(minLevel),
	})
	if err == nil {
		handlers = append(handlers, journalHandler)
	}

	return handlers
}

func isSystemdService() bool {
	if os.Getenv("JOURNAL_STREAM") != "" && os.Getenv("INVOCATION_ID") != "" {
		return true
	}
	content, err := os.ReadFile("/proc/self/cgroup")
	if err != nil {
		return false
	}
	// 0::/system.slice/foo.service
	parts := strings.SplitN(strings.TrimSpace(string(content)), ":", 3)
	if len(parts) < 3 {
		return false
	}
	return strings.HasSuffix(path.Dir(parts[2]), ".service") ||
		strings.HasSuffix(parts[2], ".service")
}

func toJournalKey(str string) string {
	return strings.Map(func(r rune) rune {
		if r >= 'A' && r <= 'Z' || r >= '0' && r <= '9' {
			return r
		}
		return '_'
	}, strings.ToUpper(str))
}

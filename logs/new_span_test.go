package logs

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/reusee/dscope"
)

func TestNewSpan(t *testing.T) {
	if isSystemdService() {
		t.Skip("terminal handler is off under systemd")
	}
	buf := new(bytes.Buffer)
	dscope.New(new(Module)).Fork(
		func() Writer {
			return buf
		},
		func() Level {
			return Level(slog.LevelDebug)
		},
	).Call(func(
		newSpan NewSpan,
	) {
		root, rootSpan := newSpan(context.Background(), "")
		child, childSpan := newSpan(root, "")
		// started from child, attached to root
		_, siblingSpan := newSpan(child, rootSpan)

		if len(rootSpan) != 12 || rootSpan == childSpan || childSpan == siblingSpan {
			t.Fatalf("got %s %s %s", rootSpan, childSpan, siblingSpan)
		}

		lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
		if len(lines) != 3 {
			t.Fatalf("got %s", buf.String())
		}
		tests := []struct {
			line    string
			want    []string
			notWant []string
		}{
			{lines[0], []string{"span=" + string(rootSpan)}, []string{"parent=", "creator="}},
			{lines[1], []string{"span=" + string(childSpan), "parent=" + string(rootSpan)}, []string{"creator="}},
			{lines[2], []string{"span=" + string(siblingSpan), "parent=" + string(rootSpan), "creator=" + string(childSpan)}, nil},
		}
		for _, test := range tests {
			for _, want := range test.want {
				if !strings.Contains(test.line, want) {
					t.Fatalf("missing %s in %s", want, test.line)
				}
			}
			for _, notWant := range test.notWant {
				if strings.Contains(test.line, notWant) {
					t.Fatalf("unexpected %s in %s", notWant, test.line)
				}
			}
		}
	})
}

package diags

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/text/width"
)

type Source struct {
	Name    string
	Content string
	Lines   []string
}

func NewSource(name string, content string) *Source {
	return &Source{
		Name:    name,
		Content: content,
		Lines:   strings.Split(content, "\n"),
	}
}

// Render formats err for humans: message, location, the offending line and a
// caret under the column. Errors without a position render as is.
func Render(source *Source, err error) string {
	var e *Error
	if !errors.As(err, &e) {
		return err.Error()
	}
	if source == nil {
		return err.Error()
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "error: %s at %s:%d:%d\n", e.Msg, source.Name, e.Pos.Line, e.Pos.Column)

	idx := e.Pos.Line - 1
	if idx < 0 || idx >= len(source.Lines) {
		return sb.String()
	}
	line := strings.TrimSuffix(source.Lines[idx], "\r")
	sb.WriteString(line)
	sb.WriteString("\n")

	col := e.Pos.Column - 1
	for i, r := range []rune(line) {
		if i >= col {
			break
		}
		if r == '\t' {
			sb.WriteString("\t")
			continue
		}
		sb.WriteString(strings.Repeat(" ", runeWidth(r)))
	}
	sb.WriteString("^\n")

	return sb.String()
}

// runeWidth is the number of terminal cells r takes.
func runeWidth(r rune) int {
	if !unicode.IsPrint(r) {
		return 0
	}
	switch width.LookupRune(r).Kind() {
	case width.EastAsianWide, width.EastAsianFullwidth:
		return 2
	}
	return 1
}

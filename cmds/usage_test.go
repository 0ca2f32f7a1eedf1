package cmds

import (
	"bytes"
	"strings"
	"testing"
)

func TestUsage(t *testing.T) {
	executor := NewExecutor()
	buf := new(bytes.Buffer)
	executor.Output = buf
	defineCollect[string](executor, "scan", "lex files")
	defineVar[int](executor, "-jobs", "parallelism")
	executor.Define("-json", Func(func() {}).Desc("json output").Alias("-j"))
	executor.Fallback("scan")
	executor.PrintUsage()

	out := buf.String()
	for _, want := range []string{
		"usage: pilex",
		"bare arguments go to scan\n",
		"-h, help, -help, --help",
		"print this usage\n",
		"-jobs <int>  ",
		"-json, -j  ",
		"scan <string>...  ",
		"lex files\n",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("missing %q in %s", want, out)
		}
	}
	// sorted by primary name
	if strings.Index(out, "-jobs") > strings.Index(out, "scan <string>") {
		t.Fatalf("got %s", out)
	}
}

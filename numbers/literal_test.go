package numbers

import (
	"errors"
	"math/big"
	"strings"
	"testing"
)

func TestFromLiteral(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{"0", "{}/{0:1}"},
		{"42", "{1:42}/{0:1}"},
		{"007", "{1:7}/{0:1}"},
		{"3.14", "{1:314}/{0:100}"},
		{"0.50", "{1:50}/{0:100}"},
		{".5", "{1:5}/{0:10}"},
		{"5.", "{1:5}/{0:1}"},
		{"123456789012345678901234567890", "{1:123456789012345678901234567890}/{0:1}"},
	}
	for _, test := range tests {
		t.Run(test.text, func(t *testing.T) {
			n, err := FromLiteral(test.text)
			if err != nil {
				t.Fatal(err)
			}
			if str := n.String(); str != test.want {
				t.Fatalf("got %s", str)
			}
		})
	}
}

func TestFromLiteralInvalid(t *testing.T) {
	for _, text := range []string{
		"",
		".",
		"1.2.3",
		"..1",
		"1a",
		"-1",
		"+1",
		"1e5",
	} {
		_, err := FromLiteral(text)
		if !errors.Is(err, ErrInvalidLiteral) {
			t.Fatalf("%q: got %v", text, err)
		}
	}
}

func TestLiteralEquality(t *testing.T) {
	a, err := FromLiteral("1.5")
	if err != nil {
		t.Fatal(err)
	}
	b, err := FromLiteral("1.5")
	if err != nil {
		t.Fatal(err)
	}
	if !a.Equal(b) {
		t.Fatal()
	}
	c, err := FromLiteral("1.50")
	if err != nil {
		t.Fatal(err)
	}
	// not reduced
	if a.Equal(c) {
		t.Fatal()
	}
}

func TestDecimalRoundTrip(t *testing.T) {
	for _, text := range []string{
		"0",
		"1",
		"42",
		"3.14",
		"0.50",
		"10.001",
		"98765432109876543210.0123456789",
	} {
		n, err := FromLiteral(text)
		if err != nil {
			t.Fatal(err)
		}
		got, ok := n.Decimal()
		if !ok {
			t.Fatalf("%s: not decimal", text)
		}
		if got != text {
			t.Fatalf("%s: got %s", text, got)
		}
	}

	// leading zeros are not kept
	for text, want := range map[string]string{
		"007":  "7",
		".5":   "0.5",
		"5.":   "5",
		"00.1": "0.1",
	} {
		n, err := FromLiteral(text)
		if err != nil {
			t.Fatal(err)
		}
		got, ok := n.Decimal()
		if !ok || got != want {
			t.Fatalf("%s: got %s", text, got)
		}
		back, err := FromLiteral(got)
		if err != nil {
			t.Fatal(err)
		}
		if !back.Equal(n) {
			t.Fatalf("%s: got %v, want %v", text, back, n)
		}
	}
}

func TestDecimalNotLiteral(t *testing.T) {
	n, err := FromName("x")
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := n.Decimal(); ok {
		t.Fatal()
	}
	third, err := FromLiteral("1")
	if err != nil {
		t.Fatal(err)
	}
	three, err := FromLiteral("3")
	if err != nil {
		t.Fatal(err)
	}
	q, err := third.Div(three)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := q.Decimal(); ok {
		t.Fatalf("got %v", q)
	}
}

func TestLog10(t *testing.T) {
	k, ok := log10(new(big.Int).Exp(big.NewInt(10), big.NewInt(40), nil))
	if !ok || k != 40 {
		t.Fatalf("got %v %v", k, ok)
	}
	for _, v := range []int64{0, -10, 20, 11} {
		if _, ok := log10(big.NewInt(v)); ok {
			t.Fatalf("%d", v)
		}
	}
}

func TestInvalidLiteralMessage(t *testing.T) {
	_, err := FromLiteral("1.2.3")
	if !strings.Contains(err.Error(), `"1.2.3" is not a valid number literal`) {
		t.Fatalf("got %v", err)
	}
}

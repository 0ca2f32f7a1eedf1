package numbers

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"testing"
)

func TestRotate(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"len", "enl"},
		{"len_", "en_l"},
		{"len_temp", "en_templ"},
		{"len_in", "en_inl"},
		{"main", "ainm"},
		{"x", "x"},
		{"", ""},
	}
	for _, test := range tests {
		got := Rotate(test.name)
		if got != test.want {
			t.Fatalf("%q: got %q", test.name, got)
		}
		if back := Unrotate(got); back != test.name {
			t.Fatalf("%q: got %q", got, back)
		}
	}
}

func TestFromName(t *testing.T) {
	n, err := FromName("abcd")
	if err != nil {
		t.Fatal(err)
	}
	want := fmt.Sprintf("{0:%d 1:%d 2:%d 3:%d}/{0:1}",
		'a',
		'b'*LetterBase,
		'c'*LetterBase*LetterBase,
		'd'*LetterBase*LetterBase*LetterBase,
	)
	if str := n.String(); str != want {
		t.Fatalf("got %s", str)
	}
	letters, ok := Letters(n)
	if !ok {
		t.Fatal()
	}
	if letters != "abcd" {
		t.Fatalf("got %s", letters)
	}
}

func TestFromNameInvalid(t *testing.T) {
	for _, text := range []string{
		"",
		"a-b",
		"a b",
		"é",
	} {
		_, err := FromName(text)
		if !errors.Is(err, ErrInvalidName) {
			t.Fatalf("%q: got %v", text, err)
		}
	}
}

func TestNameInjective(t *testing.T) {
	// rotations of one text must not collide either
	texts := []string{
		"abcd", "bcda", "cdab", "dabc",
		"a", "aa", "aaa", "_", "__",
		"len", "enl", "en_l", "en_templ", "en_inl", "ainm",
		"a0", "0a", "A", "Z9_",
	}
	rng := rand.New(rand.NewPCG(1, 2))
	const alphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789_"
	for range 500 {
		buf := make([]byte, 1+rng.IntN(6))
		for i := range buf {
			buf[i] = alphabet[rng.IntN(len(alphabet))]
		}
		texts = append(texts, string(buf))
	}

	seen := make(map[string]string)
	for _, text := range texts {
		n, err := FromName(text)
		if err != nil {
			t.Fatal(err)
		}
		key := n.String()
		if prev, ok := seen[key]; ok && prev != text {
			t.Fatalf("%q and %q both encode to %s", prev, text, key)
		}
		seen[key] = text

		back, ok := Letters(n)
		if !ok || back != text {
			t.Fatalf("%q: got %q", text, back)
		}
	}
}

func TestNameDiffersFromLiteral(t *testing.T) {
	name, err := FromName("a")
	if err != nil {
		t.Fatal(err)
	}
	lit, err := FromLiteral(fmt.Sprint('a'))
	if err != nil {
		t.Fatal(err)
	}
	if name.Equal(lit) {
		t.Fatal()
	}
	if _, ok := Letters(lit); ok {
		t.Fatal()
	}
}

func TestEncodeName(t *testing.T) {
	n, err := EncodeName("main")
	if err != nil {
		t.Fatal(err)
	}
	m, err := FromName("ainm")
	if err != nil {
		t.Fatal(err)
	}
	if !n.Equal(m) {
		t.Fatal()
	}
	letters, _ := Letters(n)
	if Unrotate(letters) != "main" {
		t.Fatalf("got %s", letters)
	}
}

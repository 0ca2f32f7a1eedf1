package numbers

// Rotate moves the first letter of a name to its end: "main" becomes "ainm".
// Names are rotated before encoding so the token stream never carries them as
// written.
func Rotate(name string) string {
	runes := []rune(name)
	if len(runes) < 2 {
		return name
	}
	return string(append(runes[1:], runes[0]))
}

// Unrotate is the inverse of Rotate.
func Unrotate(name string) string {
	runes := []rune(name)
	if len(runes) < 2 {
		return name
	}
	last := len(runes) - 1
	return string(append([]rune{runes[last]}, runes[:last]...))
}

// EncodeName rotates and encodes a name as written in source.
func EncodeName(name string) (Number, error) {
	return FromName(Rotate(name))
}

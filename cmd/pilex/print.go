package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/reusee/pilex/lexconfigs"
	"github.com/reusee/pilex/lexers"
)

type tokenView struct {
	Line   int    `json:"line"`
	Column int    `json:"column"`
	Kind   string `json:"kind"`
	Text   string `json:"text"`
	Numer  string `json:"numer,omitempty"`
	Denom  string `json:"denom,omitempty"`
}

func newTokenView(token lexers.Token) tokenView {
	view := tokenView{
		Line:   token.Pos.Line,
		Column: token.Pos.Column,
		Text:   token.String(),
	}
	switch kind := token.Kind.(type) {
	case lexers.OpenBracket, lexers.OpenBracket2:
		view.Kind = "open"
	case lexers.CloseBracket, lexers.CloseBracket2:
		view.Kind = "close"
	case lexers.Assign:
		view.Kind = "assign"
	case lexers.Comment:
		view.Kind = "comment"
	case lexers.Number:
		view.Kind = "number"
		view.Numer = kind.Value.Numer.String()
		view.Denom = kind.Value.Denom.String()
	}
	return view
}

func printTokens(w io.Writer, format lexconfigs.OutputFormat, tokens []lexers.Token) error {
	switch format {

	case lexconfigs.FormatJSON:
		encoder := json.NewEncoder(w)
		for _, token := range tokens {
			if err := encoder.Encode(newTokenView(token)); err != nil {
				return err
			}
		}

	default:
		for _, token := range tokens {
			view := newTokenView(token)
			line := fmt.Sprintf("%d:%d\t%s\t%s", view.Line, view.Column, view.Kind, view.Text)
			if view.Numer != "" {
				line += "\t" + view.Numer + "/" + view.Denom
			}
			if _, err := fmt.Fprintln(w, line); err != nil {
				return err
			}
		}

	}
	return nil
}

// Package render serializes query results back to YAML text, with
// optional ANSI highlighting for terminal output.
package render

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/goccy/go-yaml"
	"github.com/goccy/go-yaml/lexer"
	"github.com/goccy/go-yaml/printer"
)

// Render writes value as YAML to w. A nil value prints nothing.
func Render(w io.Writer, value any, colored bool) error {
	if value == nil {
		return nil
	}

	payload, err := yaml.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode YAML: %w", err)
	}

	if colored {
		return renderColored(w, payload)
	}

	_, err = w.Write(payload)
	return err
}

func renderColored(w io.Writer, payload []byte) error {
	tokens := lexer.Tokenize(string(payload))

	var p printer.Printer
	p.Bool = propertyFunc(color.FgHiMagenta)
	p.Number = propertyFunc(color.FgHiMagenta)
	p.MapKey = propertyFunc(color.FgHiCyan)
	p.String = propertyFunc(color.FgHiGreen)
	p.Anchor = propertyFunc(color.FgHiYellow)
	p.Alias = propertyFunc(color.FgHiYellow)

	_, err := io.WriteString(w, p.PrintTokens(tokens)+"\n")
	return err
}

func propertyFunc(attr color.Attribute) func() *printer.Property {
	return func() *printer.Property {
		return &printer.Property{
			Prefix: ansi(attr),
			Suffix: ansi(color.Reset),
		}
	}
}

func ansi(attr color.Attribute) string {
	return fmt.Sprintf("\x1b[%dm", attr)
}

// Package dump prints what the front end produced, for debugging.
package dump

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/rotor-lang/rotor/internal/config"
	"github.com/rotor-lang/rotor/internal/rotor"
)

type tokenView struct {
	Type   string `yaml:"type"`
	Lexeme string `yaml:"lexeme"`
	Line   int    `yaml:"line"`
	Column int    `yaml:"column"`
	Offset int    `yaml:"offset"`
}

type diagnosticView struct {
	Kind    string `yaml:"kind"`
	Message string `yaml:"message"`
	Line    int    `yaml:"line"`
	Column  int    `yaml:"column"`
}

type document struct {
	Tokens      []tokenView      `yaml:"tokens,omitempty"`
	Statements  []string         `yaml:"statements,omitempty"`
	Diagnostics []diagnosticView `yaml:"diagnostics"`
	Clean       bool             `yaml:"clean"`
}

// Dumper writes tokens, statements and diagnostics in the configured format.
// In text format the diagnostics are reported to reporter, yaml documents
// carry them inline.
type Dumper struct {
	writer   io.Writer
	reporter rotor.Reporter
	cfg      config.DumpConfig
}

func New(writer io.Writer, reporter rotor.Reporter, cfg config.DumpConfig) *Dumper {
	return &Dumper{writer, reporter, cfg}
}

// Tokens writes the tokens and the diagnostics of a scan.
func (d *Dumper) Tokens(res *rotor.ScanResult) error {
	doc := document{
		Tokens:      d.tokens(res.Tokens),
		Diagnostics: diagnostics(res.Diagnostics),
		Clean:       res.Clean(),
	}
	return d.write(doc, res.Diagnostics)
}

// Statements writes the statements and the diagnostics of a whole analysis.
func (d *Dumper) Statements(res *rotor.Result) error {
	printer := &rotor.AstPrinter{}
	stmts := make([]string, len(res.Stmts))
	for i, stmt := range res.Stmts {
		stmts[i] = printer.Print(stmt)
	}
	doc := document{
		Statements:  stmts,
		Diagnostics: diagnostics(res.Diagnostics),
		Clean:       res.Clean(),
	}
	return d.write(doc, res.Diagnostics)
}

func (d *Dumper) write(doc document, diags []*rotor.Diagnostic) error {
	if d.cfg.Format == config.FormatYAML {
		enc := yaml.NewEncoder(d.writer)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("encoding yaml: %w", err)
		}
		return enc.Close()
	}

	for _, tok := range doc.Tokens {
		if _, err := fmt.Fprintf(d.writer, "%d:%d\t%s\t%q\n", tok.Line, tok.Column, tok.Type, tok.Lexeme); err != nil {
			return err
		}
	}
	for _, stmt := range doc.Statements {
		if _, err := fmt.Fprintln(d.writer, stmt); err != nil {
			return err
		}
	}
	rotor.ReportAll(d.reporter, diags)
	return nil
}

func (d *Dumper) tokens(toks []*rotor.Token) []tokenView {
	views := make([]tokenView, 0, len(toks))
	for _, tok := range toks {
		if tok.Typ == rotor.NEWLINE && !d.cfg.ShowNewlines {
			continue
		}
		views = append(views, tokenView{tok.Typ.String(), tok.Lexeme, tok.Line, tok.Column, tok.Offset})
	}
	return views
}

func diagnostics(diags []*rotor.Diagnostic) []diagnosticView {
	views := make([]diagnosticView, len(diags))
	for i, diag := range diags {
		views[i] = diagnosticView{diag.Kind.String(), diag.Message, diag.Line, diag.Column}
	}
	return views
}

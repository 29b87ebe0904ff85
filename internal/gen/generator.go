package gen

import (
	"bytes"
	"fmt"
	"go/format"
	"strings"
	"text/template"

	"bulkcopy-generator/internal/analyze"
)

// RuntimePkg is the import path of the adapter runtime the generated
// code instantiates.
const RuntimePkg = "bulkcopy-generator/pkg/bulkcopy"

// Config holds configuration for code generation.
type Config struct {
	// Suffix is appended to the snake_case type name to form the
	// generated filename, before the ".go" extension.
	Suffix string
}

// DefaultConfig returns the default generator configuration.
func DefaultConfig() Config {
	return Config{Suffix: "_copyfrom"}
}

// Generator generates adapter files from a scanned candidate model.
type Generator struct {
	config Config
}

// NewGenerator creates a new Generator with the given configuration.
func NewGenerator(config Config) *Generator {
	if config.Suffix == "" {
		config.Suffix = DefaultConfig().Suffix
	}

	return &Generator{config: config}
}

// GeneratedFile represents a generated Go source file.
type GeneratedFile struct {
	// Dir is the directory of the candidate's package; generated code
	// is merged into the same package that declared the candidate.
	Dir string
	// Filename is the name of the file (e.g., "product_copyfrom.go").
	Filename string
	// Content is the formatted Go source code.
	Content []byte
}

// Generate renders one adapter file per candidate, in model order.
func (g *Generator) Generate(model *analyze.Model) ([]GeneratedFile, error) {
	var files []GeneratedFile

	for i := range model.Candidates {
		file, err := g.generateCandidate(&model.Candidates[i])
		if err != nil {
			return nil, fmt.Errorf("generating %s: %w", model.Candidates[i].ID, err)
		}

		files = append(files, *file)
	}

	return files, nil
}

// generateCandidate renders the adapter file for a single candidate.
func (g *Generator) generateCandidate(cand *analyze.Candidate) (*GeneratedFile, error) {
	data := buildTemplateData(cand)
	filename := analyze.FileBase(cand.ID.Name) + g.config.Suffix + ".go"

	var buf bytes.Buffer
	if err := adapterTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing template: %w", err)
	}

	formatted, err := format.Source(buf.Bytes())
	if err != nil {
		// Best-effort: write unformatted code to a sidecar file to aid debugging.
		if cand.Dir != "" {
			_ = writeDebugUnformatted(cand.Dir, filename, buf.Bytes())
		}

		return &GeneratedFile{
			Dir:      cand.Dir,
			Filename: filename,
			Content:  buf.Bytes(),
		}, fmt.Errorf("formatting code: %w (unformatted code returned)", err)
	}

	return &GeneratedFile{
		Dir:      cand.Dir,
		Filename: filename,
		Content:  formatted,
	}, nil
}

// templateData holds all data needed for the adapter template.
type templateData struct {
	PackageName string
	TypeName    string
	Plural      string
	Table       string
	ValuesFunc  string
	RuntimePkg  string
	Columns     []columnData
}

// columnData maps one member to its destination column.
type columnData struct {
	Column string
	Field  string
}

// buildTemplateData constructs the template data from a candidate,
// preserving member declaration order.
func buildTemplateData(cand *analyze.Candidate) *templateData {
	name := cand.ID.Name

	data := &templateData{
		PackageName: cand.PkgName,
		TypeName:    name,
		Plural:      analyze.Plural(name),
		Table:       cand.Table,
		ValuesFunc:  lowerFirst(name) + "CopyValues",
		RuntimePkg:  RuntimePkg,
	}

	for _, m := range cand.Members {
		data.Columns = append(data.Columns, columnData{
			Column: m.Column,
			Field:  m.Name,
		})
	}

	return data
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}

	return strings.ToLower(s[:1]) + s[1:]
}

// Template for the adapter file

var adapterTemplate = template.Must(template.New("adapter").Parse(`// Code generated by bulkcopy-generator. DO NOT EDIT.

package {{.PackageName}}

import (
	"context"
	"iter"

	"github.com/jackc/pgx/v5"

	"{{.RuntimePkg}}"
)

// {{.TypeName}}Columns lists the destination columns for {{.TypeName}},
// in field declaration order.
var {{.TypeName}}Columns = []string{
{{- range .Columns}}
	"{{.Column}}",
{{- end}}
}

// {{.TypeName}}Table is the destination table for {{.TypeName}}.
var {{.TypeName}}Table = pgx.Identifier{"{{.Table}}"}

// {{.TypeName}}CopySource adapts a sequence of {{.TypeName}} values to the
// row cursor CopyFrom pulls from.
type {{.TypeName}}CopySource = bulkcopy.Source[{{.TypeName}}]

// New{{.TypeName}}CopySource returns a copy source over seq. ctx is
// observed between rows.
func New{{.TypeName}}CopySource(ctx context.Context, seq iter.Seq2[{{.TypeName}}, error]) *{{.TypeName}}CopySource {
	return bulkcopy.NewSource(ctx, seq, {{.ValuesFunc}})
}

// New{{.TypeName}}CopySourceChan returns a copy source that drains ch
// until it is closed or ctx is cancelled.
func New{{.TypeName}}CopySourceChan(ctx context.Context, ch <-chan {{.TypeName}}) *{{.TypeName}}CopySource {
	return bulkcopy.NewSource(ctx, bulkcopy.Chan(ctx, ch), {{.ValuesFunc}})
}

func {{.ValuesFunc}}(v {{.TypeName}}) []any {
	return []any{
{{- range .Columns}}
		v.{{.Field}},
{{- end}}
	}
}

// Copy{{.Plural}} streams seq into {{.TypeName}}Table with the COPY
// protocol and reports the number of rows written. Faults from seq or
// from db surface unchanged.
func Copy{{.Plural}}(ctx context.Context, db bulkcopy.Target, seq iter.Seq2[{{.TypeName}}, error]) (int64, error) {
	src := New{{.TypeName}}CopySource(ctx, seq)
	defer src.Close()

	return db.CopyFrom(ctx, {{.TypeName}}Table, {{.TypeName}}Columns, src)
}

// Copy{{.Plural}}Chan streams rows received on ch into {{.TypeName}}Table.
func Copy{{.Plural}}Chan(ctx context.Context, db bulkcopy.Target, ch <-chan {{.TypeName}}) (int64, error) {
	src := New{{.TypeName}}CopySourceChan(ctx, ch)
	defer src.Close()

	return db.CopyFrom(ctx, {{.TypeName}}Table, {{.TypeName}}Columns, src)
}
`))

package generator

import (
	"bytes"
	"fmt"
	"go/format"
	"os"
	"path/filepath"
	"text/template"

	"github.com/nandemo-ya/gluemodel/internal/smithy"
)

// Generator renders the model package from a Smithy model
type Generator struct {
	packageName string
	outputDir   string
	templates   *template.Template
}

// Stats counts what a Generate call produced
type Stats struct {
	Structures int
	Enums      int
	Errors     int
	Operations int
}

// New creates a new code generator
func New(packageName, outputDir string) *Generator {
	return &Generator{
		packageName: packageName,
		outputDir:   outputDir,
		templates:   template.Must(template.New("model").Parse(templates)),
	}
}

// Generate writes types.go, enums.go, exceptions.go and registry.go into the
// output directory.
func (g *Generator) Generate(model *smithy.Model) (Stats, error) {
	files, stats, err := g.Render(model)
	if err != nil {
		return Stats{}, err
	}

	if err := os.MkdirAll(g.outputDir, 0755); err != nil {
		return Stats{}, fmt.Errorf("failed to create output directory: %w", err)
	}
	for _, name := range fileOrder {
		fullPath := filepath.Join(g.outputDir, name)
		if err := os.WriteFile(fullPath, files[name], 0644); err != nil {
			return Stats{}, fmt.Errorf("failed to write file: %w", err)
		}
	}
	return stats, nil
}

var fileOrder = []string{"types.go", "enums.go", "exceptions.go", "registry.go"}

// Render returns the formatted source of every generated file keyed by file
// name, without touching the file system.
func (g *Generator) Render(model *smithy.Model) (map[string][]byte, Stats, error) {
	data, err := g.collect(model)
	if err != nil {
		return nil, Stats{}, err
	}

	files := make(map[string][]byte, len(fileOrder))
	for _, name := range fileOrder {
		content, err := g.executeTemplate(templateFor(name), data)
		if err != nil {
			return nil, Stats{}, fmt.Errorf("%s: %w", name, err)
		}
		formatted, err := format.Source(content)
		if err != nil {
			// return the raw output so that template bugs can be inspected
			return map[string][]byte{name: content}, Stats{}, fmt.Errorf("failed to format %s: %w", name, err)
		}
		files[name] = formatted
	}

	stats := Stats{
		Structures: len(data.Types),
		Enums:      len(data.Enums),
		Errors:     len(data.Errors),
		Operations: len(data.Operations),
	}
	return files, stats, nil
}

func templateFor(file string) string {
	return file[:len(file)-len(filepath.Ext(file))]
}

// executeTemplate executes a named template with the given data
func (g *Generator) executeTemplate(name string, data interface{}) ([]byte, error) {
	var buf bytes.Buffer
	if err := g.templates.ExecuteTemplate(&buf, name, data); err != nil {
		return nil, fmt.Errorf("failed to execute template: %w", err)
	}
	return buf.Bytes(), nil
}

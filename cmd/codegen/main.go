// Command codegen generates the glue model package from a Smithy JSON model.
package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/nandemo-ya/gluemodel/cmd/codegen/generator"
	"github.com/nandemo-ya/gluemodel/internal/smithy"
)

func main() {
	var (
		modelPath   = flag.String("model", "apimodel/glue.json", "Path to Smithy model JSON file")
		outputDir   = flag.String("output", "glue", "Output directory for generated code")
		packageName = flag.String("package", "glue", "Package name of the generated code")
	)
	flag.Parse()

	model, err := smithy.ParseFile(*modelPath)
	if err != nil {
		log.Fatalf("Failed to parse model: %v", err)
	}

	gen := generator.New(*packageName, *outputDir)
	stats, err := gen.Generate(model)
	if err != nil {
		log.Fatalf("Failed to generate code: %v", err)
	}

	fmt.Printf("Generated %d structures, %d enums, %d errors and %d operations to %s\n",
		stats.Structures, stats.Enums, stats.Errors, stats.Operations, *outputDir)
}

// Package apimodel embeds the Smithy model the glue package is generated from.
package apimodel

import (
	"bytes"
	_ "embed"
	"sync"

	"github.com/nandemo-ya/gluemodel/internal/smithy"
)

// GlueJSON is the Smithy JSON AST of the covered Glue operations.
//
//go:embed glue.json
var GlueJSON []byte

var (
	loadOnce sync.Once
	model    *smithy.Model
	loadErr  error
)

// Load parses the embedded model once and returns it. Callers must not
// modify the returned model.
func Load() (*smithy.Model, error) {
	loadOnce.Do(func() {
		model, loadErr = smithy.Parse(bytes.NewReader(GlueJSON))
	})
	return model, loadErr
}

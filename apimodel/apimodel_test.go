package apimodel_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nandemo-ya/gluemodel/apimodel"
	"github.com/nandemo-ya/gluemodel/glue"
	"github.com/nandemo-ya/gluemodel/internal/smithy"
)

func TestLoad(t *testing.T) {
	model, err := apimodel.Load()
	require.NoError(t, err)

	again, err := apimodel.Load()
	require.NoError(t, err)
	assert.Same(t, model, again)

	_, name, err := model.Service()
	require.NoError(t, err)
	assert.Equal(t, "AWSGlue", smithy.ShapeName(name))
}

func TestModelMatchesGeneratedPackage(t *testing.T) {
	model, err := apimodel.Load()
	require.NoError(t, err)

	var structures []string
	for _, fqn := range model.NamesOfType("structure") {
		if !model.Shapes[fqn].IsError() {
			structures = append(structures, smithy.ShapeName(fqn))
		}
	}
	assert.Equal(t, glue.ShapeNames(), structures)

	var enums []string
	for _, fqn := range model.NamesOfType("enum") {
		enums = append(enums, smithy.ShapeName(fqn))
		values, ok := glue.EnumValues(smithy.ShapeName(fqn))
		require.True(t, ok)
		assert.Equal(t, model.Shapes[fqn].EnumValues(), values)
	}
	assert.Equal(t, glue.EnumNames(), enums)

	assert.Len(t, model.Operations(), len(glue.Operations()))
}

package validator

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

type inner struct {
	Separator string `yaml:"separator" validate:"required"`
	Fields    int    `yaml:"fields" validate:"min=1"`
}

type outer struct {
	Format string `yaml:"format" validate:"oneof=table json"`
	Majors inner  `yaml:"majors"`
}

func TestStruct_Valid(t *testing.T) {
	v := outer{Format: "json", Majors: inner{Separator: "\t", Fields: 3}}
	assert.Nil(t, Struct(v))
}

func TestStruct_NestedFieldPaths(t *testing.T) {
	fields := Struct(outer{Format: "csv"})

	assert.Len(t, fields, 3)
	assert.Contains(t, fields, "format")
	assert.Contains(t, fields, "majors.separator")
	assert.Contains(t, fields, "majors.fields")
	assert.Equal(t, "separator is a required field", fields["majors.separator"])
}

func TestTranslateErrors_NonValidationError(t *testing.T) {
	fields := TranslateErrors(errors.New("boom"))
	assert.Equal(t, map[string]string{"detail": "boom"}, fields)
}

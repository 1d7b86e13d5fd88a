package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name     string
		yaml     string
		errors   []string
		warnings []string
	}{
		{name: "defaults"},
		{name: "dotted decorator", yaml: "decorator: lit.property\n"},
		{name: "bad decorator", yaml: "decorator: 'my-prop'\n", errors: []string{"invalid_decorator"}},
		{name: "trailing dot", yaml: "decorator: 'a.'\n", errors: []string{"invalid_decorator"}},
		{name: "unknown preset", yaml: "preset: maximal\n", errors: []string{"unknown_preset"}},
		{name: "bad extension", yaml: "extensions: [ts]\n", errors: []string{"invalid_extension"}},
		{
			name:     "all rules off",
			yaml:     "rules: {inferType: false, inferAttribute: false, inferReflect: false}\n",
			warnings: []string{"no_rules"},
		},
		{
			name:     "omit without type",
			yaml:     "rules: {inferType: false, omitDefaultStringType: true}\n",
			warnings: []string{"omit_without_type"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := Parse([]byte(tt.yaml))
			require.NoError(t, err)

			res := f.Validate()

			var errs, warns []string
			for _, d := range res.Errors {
				errs = append(errs, d.Code)
			}

			for _, d := range res.Warnings {
				warns = append(warns, d.Code)
			}

			assert.Equal(t, tt.errors, errs)
			assert.Equal(t, tt.warnings, warns)
			assert.Equal(t, len(tt.errors) == 0, res.IsValid())
		})
	}
}

func TestValidate_Nil(t *testing.T) {
	var f *File
	assert.False(t, f.Validate().IsValid())
}

func TestValidate_SuggestsPreset(t *testing.T) {
	f, err := Parse([]byte("preset: ful\n"))
	require.NoError(t, err)

	res := f.Validate()
	require.Len(t, res.Errors, 1)
	assert.Contains(t, res.Errors[0].Message, `did you mean "full"?`)
}

package infer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInferredTypeString(t *testing.T) {
	assert.Equal(t, "Unknown", TypeUnknown.String())
	assert.Equal(t, "String", TypeString.String())
	assert.Equal(t, "Number", TypeNumber.String())
	assert.Equal(t, "Boolean", TypeBoolean.String())
	assert.Equal(t, "Array", TypeArray.String())
	assert.Equal(t, "Object", TypeObject.String())
	assert.Equal(t, "InferredType(42)", InferredType(42).String())
}

func TestInferredTypeIdentifier(t *testing.T) {
	id, ok := TypeBoolean.Identifier()
	assert.True(t, ok)
	assert.Equal(t, "Boolean", id)

	_, ok = TypeUnknown.Identifier()
	assert.False(t, ok)
}

func TestInferredTypePredicates(t *testing.T) {
	for _, k := range []InferredType{TypeString, TypeNumber, TypeBoolean} {
		assert.True(t, k.IsKnown(), k.String())
		assert.True(t, k.IsPrimitive(), k.String())
	}

	for _, k := range []InferredType{TypeArray, TypeObject} {
		assert.True(t, k.IsKnown(), k.String())
		assert.False(t, k.IsPrimitive(), k.String())
	}

	assert.False(t, TypeUnknown.IsKnown())
	assert.False(t, TypeUnknown.IsPrimitive())
}

func TestParseIdentifier(t *testing.T) {
	assert.Equal(t, TypeString, ParseIdentifier("String"))
	assert.Equal(t, TypeObject, ParseIdentifier("Object"))
	assert.Equal(t, TypeUnknown, ParseIdentifier("Unknown"))
	assert.Equal(t, TypeUnknown, ParseIdentifier("string"))
	assert.Equal(t, TypeUnknown, ParseIdentifier("Date"))
}

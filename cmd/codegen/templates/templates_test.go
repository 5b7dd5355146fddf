package templates

import (
	"go/format"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListHelpers(t *testing.T) {
	assert.Equal(t, "T0, T1, T2", prefixedStrings("T", 3))
	assert.Equal(t, "", prefixedStrings("T", 0))
	assert.Equal(t, "get0(), get1()", repeated("get%[1]d()", 2, ", "))
	assert.Equal(t, "\tv0 T0\n\tv1 T1\n", repeated("\tv%[1]d T%[1]d\n", 2, ""))
}

func TestSubscribeGen(t *testing.T) {
	src := SubscribeGen(3)
	formatted, err := format.Source([]byte(src))
	require.NoError(t, err)

	out := string(formatted)
	assert.Contains(t, out, "// Code generated by cmd/codegen. DO NOT EDIT.")
	assert.Contains(t, out, "func Subscribe2[T0, T1 comparable](")
	assert.Contains(t, out, "func Subscribe3[T0, T1, T2 comparable](")
	assert.NotContains(t, out, "Subscribe4")
	assert.Contains(t, out, "fn(a.v0, a.v1, a.v2)")
}

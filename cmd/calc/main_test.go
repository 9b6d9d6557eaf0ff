package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ltungv/calc/internal/calc"
)

func TestEvalFile(t *testing.T) {
	fpath := filepath.Join(t.TempDir(), "lines.txt")
	require.NoError(t, os.WriteFile(fpath, []byte("1+2\n1 2\n5/0\n2*3\n"), 0644))

	var out, errOut strings.Builder
	reporter := calc.NewSimpleReporter(&errOut)
	calculator := calc.NewCalculator(&out, reporter)

	assert := assert.New(t)
	assert.NoError(evalFile(fpath, calculator))
	assert.Equal("Result: 3\nResult: 6\n", out.String())
	assert.Equal(2, strings.Count(errOut.String(), "Parse failed: "))
	assert.True(reporter.HadError())
	assert.True(reporter.HadRuntimeError())
}

func TestEvalFileMissing(t *testing.T) {
	calculator := calc.NewCalculator(&strings.Builder{}, calc.NewSimpleReporter(&strings.Builder{}))
	err := evalFile(filepath.Join(t.TempDir(), "missing.txt"), calculator)
	assert.True(t, os.IsNotExist(err))
}

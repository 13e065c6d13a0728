/*
File    : lox/cmd/lox/main_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

package main

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akashmaji946/lox/runner"
)

func TestRun_TooManyArgs_IsUsageError(t *testing.T) {
	assert.Equal(t, runner.ExitUsageError, run([]string{"a.lox", "b.lox", "c.lox"}))
}

func TestRun_Script_Success(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "*.lox")
	require.NoError(t, err)
	_, err = f.WriteString(`print "hi";`)
	require.NoError(t, err)
	require.NoError(t, f.Close())

	assert.Equal(t, runner.ExitOK, run([]string{f.Name()}))
}

func TestRun_Script_MissingFile_IsDataError(t *testing.T) {
	assert.Equal(t, runner.ExitDataError, run([]string{"/no/such/file.lox"}))
}

func TestRun_ServerWithoutPort_IsUsageError(t *testing.T) {
	assert.Equal(t, runner.ExitUsageError, run([]string{"server"}))
}

package main

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sergiupopescu199/payment-engine/internal/infrastructure/config"
)

func testConfig() *config.Config {
	return &config.Config{
		LogLevel:     "error",
		LogFormat:    "json",
		EngineBuffer: 8,
	}
}

func TestRootCmd_WritesOutputFile(t *testing.T) {
	input := writeFile(t, "transactions.csv",
		"type,client,tx,amount\n"+
			"deposit,1,1,100\n"+
			"dispute,1,1\n"+
			"chargeback,1,1\n")
	output := filepath.Join(t.TempDir(), "accounts.csv")

	cmd := newRootCmd(testConfig(), zerolog.Nop(), nil)
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)
	cmd.SetArgs([]string{input, "--output", output})

	require.NoError(t, cmd.Execute())

	data, err := os.ReadFile(output)
	require.NoError(t, err)

	expected := "client,available,held,total,locked\n" +
		"1,0.0000,0.0000,0.0000,true\n"
	assert.Equal(t, expected, string(data))
}

func TestRootCmd_WritesToStdoutByDefault(t *testing.T) {
	input := writeFile(t, "transactions.csv",
		"type,client,tx,amount\n"+
			"deposit,4,1,1.5\n")

	cmd := newRootCmd(testConfig(), zerolog.Nop(), nil)
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)
	cmd.SetArgs([]string{input})

	oldStdout := os.Stdout
	r, w, err := os.Pipe()
	require.NoError(t, err)
	os.Stdout = w

	execErr := cmd.Execute()

	require.NoError(t, w.Close())
	os.Stdout = oldStdout

	data, err := io.ReadAll(r)
	require.NoError(t, err)
	require.NoError(t, execErr)

	expected := "client,available,held,total,locked\n" +
		"4,1.5000,0.0000,1.5000,false\n"
	assert.Equal(t, expected, string(data))
}

func TestRootCmd_RequiresAtLeastOneSource(t *testing.T) {
	cmd := newRootCmd(testConfig(), zerolog.Nop(), nil)
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)
	cmd.SetArgs([]string{})

	require.Error(t, cmd.Execute())
}

func TestRootCmd_FailsOnMalformedInput(t *testing.T) {
	input := writeFile(t, "broken.csv",
		"type,client,tx,amount\n"+
			"deposit,not-a-client,1,10\n")
	output := filepath.Join(t.TempDir(), "accounts.csv")

	cmd := newRootCmd(testConfig(), zerolog.Nop(), nil)
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)
	cmd.SetArgs([]string{input, "-o", output})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 2")
}

func TestRootCmd_RejectsNonPositiveBuffer(t *testing.T) {
	input := writeFile(t, "transactions.csv",
		"type,client,tx,amount\n"+
			"deposit,1,1,10\n")

	for _, size := range []string{"0", "-1"} {
		t.Run(size, func(t *testing.T) {
			cmd := newRootCmd(testConfig(), zerolog.Nop(), nil)
			cmd.SetOut(io.Discard)
			cmd.SetErr(io.Discard)
			cmd.SetArgs([]string{input, "--buffer", size})

			err := cmd.Execute()
			require.Error(t, err)
			assert.Contains(t, err.Error(), "--buffer")
		})
	}
}

func TestRootCmd_BufferFlagOverridesConfig(t *testing.T) {
	input := writeFile(t, "transactions.csv",
		"type,client,tx,amount\n"+
			"deposit,1,1,10\n"+
			"deposit,1,2,10\n"+
			"deposit,1,3,10\n")
	output := filepath.Join(t.TempDir(), "accounts.csv")

	cmd := newRootCmd(testConfig(), zerolog.Nop(), nil)
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)
	cmd.SetArgs([]string{input, "--buffer", "1", "-o", output})

	require.NoError(t, cmd.Execute())

	data, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Contains(t, string(data), "1,30.0000,0.0000,30.0000,false")
}

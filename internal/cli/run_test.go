package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/aretw0/advent/internal/config"
	"github.com/aretw0/advent/internal/testutils"
	"github.com/aretw0/advent/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "github.com/aretw0/advent/puzzles/all"
)

func embeddedConfig() config.Config {
	cfg := config.Default()
	cfg.LogLevel = "error"
	cfg.Inputs.Source = config.SourceEmbedded
	return cfg
}

func noColor() *bool {
	v := false
	return &v
}

func TestExecute_BundledExample(t *testing.T) {
	var out bytes.Buffer
	err := Execute(context.Background(), RunOptions{
		EngineOptions: EngineOptions{Config: embeddedConfig()},
		Request:       Request{Year: intPtr(2024), Day: intPtr(1), Example: true},
		Color:         noColor(),
		Stdout:        &out,
	})
	require.NoError(t, err)

	assert.Equal(t, "[OK]   Year 2024 Day 01 Part 1:\n      11\n[OK]   Year 2024 Day 01 Part 2:\n      31\n", out.String())
}

func TestExecute_Summary(t *testing.T) {
	var out bytes.Buffer
	err := Execute(context.Background(), RunOptions{
		EngineOptions: EngineOptions{Config: embeddedConfig()},
		Request:       Request{Year: intPtr(2024), Example: true},
		Summary:       true,
		Color:         noColor(),
		Stdout:        &out,
	})
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(out.String(), "6 passed, 0 failed\n"), out.String())
}

func TestExecute_MissingRealInputFails(t *testing.T) {
	var out bytes.Buffer
	err := Execute(context.Background(), RunOptions{
		EngineOptions: EngineOptions{Config: embeddedConfig()},
		Request:       Request{Year: intPtr(2025), Day: intPtr(1)},
		Color:         noColor(),
		Stdout:        &out,
	})
	assert.ErrorIs(t, err, ErrPartsFailed)
	assert.Contains(t, out.String(), "[FAIL] Year 2025 Day 01 Part 1:\n      MissingInput: ")
	assert.Contains(t, out.String(), "[FAIL] Year 2025 Day 01 Part 2:\n      MissingInput: ")
}

func TestExecute_ValidationRunsNothing(t *testing.T) {
	sol := &testutils.Solution{}
	reg := testutils.NewRegistry(t, map[string]domain.Factory{
		"Year2030.Day01": testutils.Factory(sol),
	})

	var out bytes.Buffer
	err := Execute(context.Background(), RunOptions{
		EngineOptions: EngineOptions{Config: embeddedConfig(), Registry: reg},
		Request:       Request{Year: intPtr(2030), Day: intPtr(2)},
		Stdout:        &out,
	})

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "No solutions exist for day 2 in year 2030.", verr.Message)
	assert.Empty(t, out.String())
	one, two := sol.Calls()
	assert.Zero(t, one+two)
}

func TestExecute_DirInputs(t *testing.T) {
	dir := t.TempDir()
	writeInput(t, dir, 2030, 1, "input.txt", "hello")

	reg := testutils.NewRegistry(t, map[string]domain.Factory{
		"Year2030.Day01": testutils.Factory(&testutils.Solution{One: testutils.Echo(), Two: testutils.Panicking("kaboom")}),
	})
	cfg := embeddedConfig()
	cfg.Inputs.Source = config.SourceDir
	cfg.Inputs.Dir = dir

	var out bytes.Buffer
	err := Execute(context.Background(), RunOptions{
		EngineOptions: EngineOptions{Config: cfg, Registry: reg},
		JSON:          true,
		Stdout:        &out,
	})
	assert.ErrorIs(t, err, ErrPartsFailed)

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 2)

	var first, second domain.ExecutionResult
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &first))
	require.NoError(t, json.Unmarshal([]byte(lines[1]), &second))
	assert.Equal(t, "hello", first.Output)
	assert.Equal(t, domain.KindOperationFault, second.Kind)
	assert.Contains(t, second.Message, "kaboom")
}

func TestExecute_LoadFailure(t *testing.T) {
	reg := testutils.NewRegistry(t, map[string]domain.Factory{
		"Year2030.Day01": testutils.FailingFactory(errors.New("broken constructor")),
	})

	var out bytes.Buffer
	err := Execute(context.Background(), RunOptions{
		EngineOptions: EngineOptions{Config: embeddedConfig(), Registry: reg},
		Stdout:        &out,
	})

	var loadErr *domain.LoadError
	require.ErrorAs(t, err, &loadErr)
	assert.Contains(t, err.Error(), "broken constructor")
	assert.Empty(t, out.String())
}

func TestExecute_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out, errOut bytes.Buffer
	err := Execute(ctx, RunOptions{
		EngineOptions: EngineOptions{Config: embeddedConfig()},
		Request:       Request{Example: true},
		Stdout:        &out,
		Stderr:        &errOut,
	})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, out.String())
	assert.Contains(t, errOut.String(), "Interrupted after 0 parts.")
}

package runtime_test

import (
	"context"
	"errors"
	"io"
	"os"
	"testing"
	"time"

	"github.com/aretw0/advent/internal/runtime"
	"github.com/aretw0/advent/internal/testutils"
	"github.com/aretw0/advent/pkg/adapters/memory"
	"github.com/aretw0/advent/pkg/domain"
	"github.com/aretw0/advent/pkg/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func key(year, day int) domain.InputKey {
	return domain.InputKey{Year: year, Day: day, Variant: domain.VariantReal}
}

type summary struct {
	Year, Day, Part int
	Output          string
	Kind            domain.ErrorKind
}

func summarize(results []domain.ExecutionResult) []summary {
	out := make([]summary, 0, len(results))
	for _, r := range results {
		out = append(out, summary{r.Year, r.Day, r.Part, r.Output, r.Kind})
	}
	return out
}

func refs(descriptors []domain.Descriptor) []string {
	out := make([]string, 0, len(descriptors))
	for _, d := range descriptors {
		out = append(out, d.Ref)
	}
	return out
}

func TestEngine_Select(t *testing.T) {
	reg := testutils.NewRegistry(t, map[string]domain.Factory{
		"Year2023.Day25": testutils.Factory(&testutils.Solution{}),
		"Year2024.Day02": testutils.Factory(&testutils.Solution{}),
		"Year2024.Day01": testutils.Factory(&testutils.Solution{}),
		"Year2025.Day01": testutils.Factory(&testutils.Solution{}),
		"Year2024.Day10": testutils.Factory(&testutils.Solution{}),
	})
	engine := runtime.NewEngine(reg, memory.NewStore())

	t.Run("All", func(t *testing.T) {
		got, err := engine.Select(domain.SelectAll(domain.VariantReal))
		require.NoError(t, err)
		assert.Equal(t, refs(reg.Catalog()), refs(got))
	})

	t.Run("Year", func(t *testing.T) {
		got, err := engine.Select(domain.SelectYear(2024, domain.VariantReal))
		require.NoError(t, err)

		var want []domain.Descriptor
		for _, d := range reg.Catalog() {
			if d.Year == 2024 {
				want = append(want, d)
			}
		}
		require.Len(t, got, 3)
		for i := range got {
			assert.Equal(t, 2024, got[i].Year)
			assert.Equal(t, want[i].Ref, got[i].Ref, "relative catalog order must be kept")
		}
	})

	t.Run("Day", func(t *testing.T) {
		got, err := engine.Select(domain.SelectDay(2024, 10, domain.VariantReal))
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "Year2024.Day10", got[0].Ref)
	})

	t.Run("Nonexistent Day", func(t *testing.T) {
		got, err := engine.Select(domain.SelectDay(2024, 99, domain.VariantReal))
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("Day Without Year", func(t *testing.T) {
		day := 1
		_, err := engine.Select(domain.Selection{Day: &day})
		assert.ErrorIs(t, err, domain.ErrDayWithoutYear)
	})
}

func TestEngine_OperationIsolation(t *testing.T) {
	sol := &testutils.Solution{
		One: testutils.Failing("part one exploded"),
		Two: testutils.Returning("42"),
	}
	reg := testutils.NewRegistry(t, map[string]domain.Factory{"Year2024.Day01": testutils.Factory(sol)})
	store := memory.NewStore()
	store.Put(key(2024, 1), "input")

	results, err := runtime.NewEngine(reg, store).Run(context.Background(), domain.SelectAll(domain.VariantReal))
	require.NoError(t, err)

	assert.Equal(t, []summary{
		{2024, 1, 1, "", domain.KindOperationFault},
		{2024, 1, 2, "42", ""},
	}, summarize(results))
	assert.Equal(t, "part one exploded", results[0].Message)
}

func TestEngine_PanicIsContained(t *testing.T) {
	sol := &testutils.Solution{
		One: testutils.Returning("ok"),
		Two: testutils.Panicking("index out of range"),
	}
	other := &testutils.Solution{One: testutils.Returning("a"), Two: testutils.Returning("b")}
	reg := testutils.NewRegistry(t, map[string]domain.Factory{
		"Year2024.Day01": testutils.Factory(sol),
		"Year2024.Day02": testutils.Factory(other),
	})
	store := memory.NewStore()
	store.Put(key(2024, 1), "input")
	store.Put(key(2024, 2), "input")

	results, err := runtime.NewEngine(reg, store).Run(context.Background(), domain.SelectYear(2024, domain.VariantReal))
	require.NoError(t, err)

	assert.Equal(t, []summary{
		{2024, 1, 1, "ok", ""},
		{2024, 1, 2, "", domain.KindOperationFault},
		{2024, 2, 1, "a", ""},
		{2024, 2, 2, "b", ""},
	}, summarize(results))

	var panicErr *runtime.PanicError
	require.ErrorAs(t, results[1].Err, &panicErr)
	assert.NotEmpty(t, panicErr.Stack)
	assert.Equal(t, "panic: index out of range", results[1].Message)
}

func TestEngine_InputShortCircuit(t *testing.T) {
	blank := &testutils.Solution{One: testutils.Returning("1"), Two: testutils.Returning("2")}
	missing := &testutils.Solution{One: testutils.Returning("1"), Two: testutils.Returning("2")}
	reg := testutils.NewRegistry(t, map[string]domain.Factory{
		"Year2024.Day01": testutils.Factory(blank),
		"Year2024.Day02": testutils.Factory(missing),
	})
	store := memory.NewStore()
	store.Put(key(2024, 1), "  \n\t ")

	results, err := runtime.NewEngine(reg, store).Run(context.Background(), domain.SelectAll(domain.VariantReal))
	require.NoError(t, err)

	assert.Equal(t, []summary{
		{2024, 1, 1, "", domain.KindEmptyInput},
		{2024, 1, 2, "", domain.KindEmptyInput},
		{2024, 2, 1, "", domain.KindMissingInput},
		{2024, 2, 2, "", domain.KindMissingInput},
	}, summarize(results))
	assert.Equal(t, results[0].Message, results[1].Message)
	assert.Equal(t, results[2].Message, results[3].Message)

	one, two := blank.Calls()
	assert.Zero(t, one, "part one must not run on blank input")
	assert.Zero(t, two, "part two must not run on blank input")
	one, two = missing.Calls()
	assert.Zero(t, one)
	assert.Zero(t, two)
}

func TestEngine_VariantSelectsInput(t *testing.T) {
	sol := &testutils.Solution{One: testutils.Echo(), Two: testutils.Echo()}
	reg := testutils.NewRegistry(t, map[string]domain.Factory{"Year2024.Day01": testutils.Factory(sol)})
	store := memory.NewStore()
	store.Put(domain.InputKey{Year: 2024, Day: 1, Variant: domain.VariantReal}, "real")
	store.Put(domain.InputKey{Year: 2024, Day: 1, Variant: domain.VariantExample}, "example")

	results, err := runtime.NewEngine(reg, store).Run(context.Background(), domain.SelectAll(domain.VariantExample))
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, "example", results[0].Output)
	assert.Equal(t, "example", results[1].Output)
}

func TestEngine_NonexistentSelectionIsEmpty(t *testing.T) {
	reg := testutils.NewRegistry(t, map[string]domain.Factory{
		"Year2024.Day01": testutils.Factory(&testutils.Solution{}),
	})

	results, err := runtime.NewEngine(reg, memory.NewStore()).Run(context.Background(), domain.SelectDay(2024, 99, domain.VariantReal))
	require.NoError(t, err)
	assert.NotNil(t, results)
	assert.Empty(t, results)
}

func TestEngine_LoadFailureAbortsRun(t *testing.T) {
	healthy := &testutils.Solution{One: testutils.Returning("1"), Two: testutils.Returning("2")}
	reg := testutils.NewRegistry(t, map[string]domain.Factory{
		"Year2024.Day01": testutils.Factory(healthy),
		"Year2024.Day02": testutils.FailingFactory(errors.New("cannot build")),
	})
	store := memory.NewStore()
	store.Put(key(2024, 1), "input")
	store.Put(key(2024, 2), "input")
	engine := runtime.NewEngine(reg, store)

	seq, err := engine.Execute(context.Background(), domain.SelectAll(domain.VariantReal))
	assert.Nil(t, seq)

	var loadErr *domain.LoadError
	require.ErrorAs(t, err, &loadErr)
	require.Len(t, loadErr.Failures, 1)
	assert.Equal(t, 2, loadErr.Failures[0].Descriptor.Day)

	one, two := healthy.Calls()
	assert.Zero(t, one+two, "no part may run when pre-flight fails")

	// Selecting only the healthy module succeeds.
	results, err := engine.Run(context.Background(), domain.SelectDay(2024, 1, domain.VariantReal))
	require.NoError(t, err)
	assert.Len(t, results, 2)
}

func TestEngine_ResultCountAndOrder(t *testing.T) {
	modules := map[string]domain.Factory{}
	store := memory.NewStore()
	for _, ref := range []string{"Year2025.Day02", "Year2024.Day03", "Year2025.Day01", "Year2024.Day01"} {
		modules[ref] = testutils.Factory(&testutils.Solution{One: testutils.Returning("x"), Two: testutils.Returning("y")})
	}
	reg := testutils.NewRegistry(t, modules)
	for _, d := range reg.Catalog() {
		store.Put(key(d.Year, d.Day), "input")
	}

	results, err := runtime.NewEngine(reg, store).Run(context.Background(), domain.SelectAll(domain.VariantReal))
	require.NoError(t, err)
	require.Len(t, results, 8)

	want := [][3]int{
		{2024, 1, 1}, {2024, 1, 2}, {2024, 3, 1}, {2024, 3, 2},
		{2025, 1, 1}, {2025, 1, 2}, {2025, 2, 1}, {2025, 2, 2},
	}
	for i, r := range results {
		assert.Equal(t, want[i], [3]int{r.Year, r.Day, r.Part})
	}
}

func TestEngine_StreamingStopsWhenConsumerStops(t *testing.T) {
	first := &testutils.Solution{One: testutils.Returning("1"), Two: testutils.Returning("2")}
	second := &testutils.Solution{One: testutils.Returning("3"), Two: testutils.Returning("4")}
	reg := testutils.NewRegistry(t, map[string]domain.Factory{
		"Year2024.Day01": testutils.Factory(first),
		"Year2024.Day02": testutils.Factory(second),
	})
	store := memory.NewStore()
	store.Put(key(2024, 1), "input")
	store.Put(key(2024, 2), "input")

	seq, err := runtime.NewEngine(reg, store).Execute(context.Background(), domain.SelectAll(domain.VariantReal))
	require.NoError(t, err)

	for r := range seq {
		assert.Equal(t, 1, r.Part)
		break
	}

	one, two := first.Calls()
	assert.Equal(t, int64(1), one)
	assert.Zero(t, two)
	one, two = second.Calls()
	assert.Zero(t, one+two)
}

func TestEngine_CancelledBetweenModules(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	first := &testutils.Solution{
		One: testutils.Returning("1"),
		Two: func(string) (string, error) { cancel(); return "2", nil },
	}
	second := &testutils.Solution{}
	reg := testutils.NewRegistry(t, map[string]domain.Factory{
		"Year2024.Day01": testutils.Factory(first),
		"Year2024.Day02": testutils.Factory(second),
	})
	store := memory.NewStore()
	store.Put(key(2024, 1), "input")
	store.Put(key(2024, 2), "input")

	results, err := runtime.NewEngine(reg, store).Run(ctx, domain.SelectAll(domain.VariantReal))
	assert.ErrorIs(t, err, context.Canceled)
	assert.Len(t, results, 2)
	one, two := second.Calls()
	assert.Zero(t, one+two)
}

func TestEngine_Hooks(t *testing.T) {
	sol := &testutils.Solution{One: testutils.Returning("1"), Two: testutils.Failing("no")}
	reg := testutils.NewRegistry(t, map[string]domain.Factory{"Year2024.Day01": testutils.Factory(sol)})
	store := memory.NewStore()
	store.Put(key(2024, 1), "input")

	var started []domain.Descriptor
	var completed []domain.ExecutionResult
	hooks := domain.LifecycleHooks{
		OnModuleStart: func(_ context.Context, e *domain.ModuleEvent) {
			assert.Equal(t, domain.EventModuleStart, e.Type)
			started = append(started, e.Descriptor)
		},
		OnPartComplete: func(_ context.Context, e *domain.PartEvent) {
			assert.Equal(t, domain.EventPartComplete, e.Type)
			completed = append(completed, e.Result)
		},
	}

	results, err := runtime.NewEngine(reg, store, runtime.WithLifecycleHooks(hooks)).Run(context.Background(), domain.SelectAll(domain.VariantReal))
	require.NoError(t, err)

	require.Len(t, started, 1)
	assert.Equal(t, 2024, started[0].Year)
	assert.Equal(t, summarize(results), summarize(completed))
}

// A part that never returns blocks the whole run: parts have no timeout.
// The test is opt-in because it demonstrates the hang.
func TestEngine_HangingPartBlocksRun(t *testing.T) {
	if os.Getenv("ADVENT_HANG_TEST") == "" {
		t.Skip("set ADVENT_HANG_TEST=1 to demonstrate that a hanging part blocks the run")
	}

	release := make(chan struct{})
	sol := &testutils.Solution{
		One: func(string) (string, error) { <-release; return "late", nil },
	}
	reg := testutils.NewRegistry(t, map[string]domain.Factory{"Year2024.Day01": testutils.Factory(sol)})
	store := memory.NewStore()
	store.Put(key(2024, 1), "input")

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	done := make(chan struct{})
	go func() {
		defer close(done)
		_, _ = runtime.NewEngine(reg, store).Run(ctx, domain.SelectAll(domain.VariantReal))
	}()

	select {
	case <-done:
		t.Fatal("run finished although part one never returned")
	case <-time.After(300 * time.Millisecond):
	}

	close(release)
	<-done
}

func TestEngine_PanickingInputStoreIsolated(t *testing.T) {
	first := &testutils.Solution{One: testutils.Returning("1"), Two: testutils.Returning("2")}
	second := &testutils.Solution{One: testutils.Returning("3"), Two: testutils.Returning("4")}
	reg := testutils.NewRegistry(t, map[string]domain.Factory{
		"Year2024.Day01": testutils.Factory(first),
		"Year2024.Day02": testutils.Factory(second),
	})
	backing := memory.NewStore()
	backing.Put(key(2024, 2), "input")
	store := ports.InputStoreFunc(func(ctx context.Context, k domain.InputKey) (io.ReadCloser, error) {
		if k.Day == 1 {
			panic("disk driver exploded")
		}
		return backing.Open(ctx, k)
	})

	results, err := runtime.NewEngine(reg, store).Run(context.Background(), domain.SelectAll(domain.VariantReal))
	require.NoError(t, err)
	assert.Equal(t, []summary{
		{2024, 1, 1, "", domain.KindInputError},
		{2024, 1, 2, "", domain.KindInputError},
		{2024, 2, 1, "3", ""},
		{2024, 2, 2, "4", ""},
	}, summarize(results))
	assert.ErrorContains(t, results[0].Err, "disk driver exploded")
	one, two := first.Calls()
	assert.Zero(t, one+two, "parts must not run without input")
}

func TestEngine_UnknownVariantRejected(t *testing.T) {
	sol := &testutils.Solution{}
	reg := testutils.NewRegistry(t, map[string]domain.Factory{"Year2024.Day01": testutils.Factory(sol)})
	store := memory.NewStore()
	store.Put(key(2024, 1), "real")

	seq, err := runtime.NewEngine(reg, store).Execute(context.Background(), domain.SelectAll("bogus"))
	assert.ErrorIs(t, err, domain.ErrUnknownVariant)
	assert.Nil(t, seq)
	one, _ := sol.Calls()
	assert.Zero(t, one)
}

package cmd

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/mouse-blink/disksort/internal/domain"
	domainmocks "github.com/mouse-blink/disksort/internal/domain/mocks"
	m "github.com/mouse-blink/disksort/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestRunCmd(t *testing.T) *domainmocks.MockWorkflow {
	t.Helper()

	mockWorkflow := domainmocks.NewMockWorkflow(t)

	originalWorkflow := workflow
	workflow = mockWorkflow

	t.Cleanup(func() { workflow = originalWorkflow })

	return mockWorkflow
}

func executeRun(t *testing.T, args ...string) error {
	t.Helper()

	cmd := newRootCmd()
	cmd.AddCommand(newRunCmd())
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(append([]string{"run"}, args...))

	return cmd.Execute()
}

func TestRunCmd_Sizes(t *testing.T) {
	mockWorkflow := newTestRunCmd(t)

	mockWorkflow.On("Run", mock.Anything, mock.MatchedBy(func(args domain.RunArgs) bool {
		return assert.ObjectsAreEqual([]int{2, 4, 5, 6, 9}, args.Sizes) &&
			len(args.Algorithms) == 0 &&
			args.Threads == 1 &&
			args.ShardIndex == 0 &&
			args.TotalShardCount == 1 &&
			!args.ShowRows
	})).Return(nil)

	require.NoError(t, executeRun(t, "2", "4..6", "9"))
}

func TestRunCmd_Flags(t *testing.T) {
	mockWorkflow := newTestRunCmd(t)

	mockWorkflow.On("Run", mock.Anything, mock.MatchedBy(func(args domain.RunArgs) bool {
		return len(args.Algorithms) == 1 &&
			args.Algorithms[0] == m.AlgorithmLawnmower &&
			args.Threads == 4 &&
			args.ShardIndex == 1 &&
			args.TotalShardCount == 3 &&
			args.ShowRows
	})).Return(nil)

	require.NoError(t, executeRun(t, "-a", "Lawnmower", "--parallel", "4", "--shard", "1/3", "--rows", "8"))
}

func TestRunCmd_InvalidSize(t *testing.T) {
	newTestRunCmd(t)

	for _, arg := range []string{"x", "3..", "..3", "5..2", "1..2000000000"} {
		assert.Error(t, executeRun(t, arg), "size %q", arg)
	}
}

func TestRunCmd_UsesConfigFile(t *testing.T) {
	mockWorkflow := newTestRunCmd(t)

	path := filepath.Join(t.TempDir(), "disksort.yaml")
	require.NoError(t, os.WriteFile(path, []byte("sizes: [3, 7]\nparallel: 2\nalgorithms: [alternate]\nshow_rows: true\n"), 0o600))

	mockWorkflow.On("Run", mock.Anything, mock.MatchedBy(func(args domain.RunArgs) bool {
		return assert.ObjectsAreEqual([]int{3, 7}, args.Sizes) &&
			assert.ObjectsAreEqual([]m.Algorithm{m.AlgorithmAlternate}, args.Algorithms) &&
			args.Threads == 2 &&
			args.ShowRows
	})).Return(nil)

	require.NoError(t, executeRun(t, "--config", path))
}

func TestRunCmd_FlagsOverrideConfigFile(t *testing.T) {
	mockWorkflow := newTestRunCmd(t)

	path := filepath.Join(t.TempDir(), "disksort.yaml")
	require.NoError(t, os.WriteFile(path, []byte("sizes: [3]\nparallel: 2\n"), 0o600))

	mockWorkflow.On("Run", mock.Anything, mock.MatchedBy(func(args domain.RunArgs) bool {
		return assert.ObjectsAreEqual([]int{10}, args.Sizes) && args.Threads == 6
	})).Return(nil)

	require.NoError(t, executeRun(t, "--config", path, "-p", "6", "10"))
}

func TestRunCmd_MissingConfigFile(t *testing.T) {
	newTestRunCmd(t)

	err := executeRun(t, "--config", filepath.Join(t.TempDir(), "missing.yaml"), "2")
	require.Error(t, err)
}

func TestNewRunCmd(t *testing.T) {
	cmd := newRunCmd()

	assert.Equal(t, "run [sizes...]", cmd.Use)
	assert.NotEmpty(t, cmd.Short)
	assert.Equal(t, runLongDescription, cmd.Long)

	for _, name := range []string{"algorithm", "parallel", "shard", "rows"} {
		assert.NotNil(t, cmd.Flags().Lookup(name), "missing --%s", name)
	}
}

func TestParseSizes(t *testing.T) {
	sizes, err := parseSizes([]string{"1", "3..5", "3"})
	require.NoError(t, err)
	assert.Equal(t, []int{1, 3, 4, 5, 3}, sizes)

	sizes, err = parseSizes(nil)
	require.NoError(t, err)
	assert.Empty(t, sizes)

	_, err = parseSizes([]string{"a..b"})
	assert.Error(t, err)
}

func TestParseSizes_RangeLimit(t *testing.T) {
	sizes, err := parseSizes([]string{fmt.Sprintf("1..%d", maxSizes)})
	require.NoError(t, err)
	assert.Len(t, sizes, maxSizes)

	_, err = parseSizes([]string{"1..2000000000"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expands past")

	_, err = parseSizes([]string{"-9223372036854775808..9223372036854775807"})
	assert.Error(t, err)

	_, err = parseSizes([]string{"7", fmt.Sprintf("1..%d", maxSizes)})
	assert.Error(t, err)
}

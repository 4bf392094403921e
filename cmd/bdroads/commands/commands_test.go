package commands_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/bdroads/cmd/bdroads/commands"
	"go.trai.ch/bdroads/internal/app"
	"go.trai.ch/bdroads/internal/build"
	"go.trai.ch/bdroads/internal/core/domain"
)

type mockApp struct {
	analyzeFunc    func(ctx context.Context, opts app.AnalyzeOptions) error
	cacheInfoFunc  func(ctx context.Context, opts app.CacheOptions) error
	clearCacheFunc func(ctx context.Context, opts app.CacheOptions) error
	simpleFunc     func(ctx context.Context, opts app.SimpleOptions) error
}

func (m *mockApp) Analyze(ctx context.Context, opts app.AnalyzeOptions) error {
	if m.analyzeFunc != nil {
		return m.analyzeFunc(ctx, opts)
	}
	return nil
}

func (m *mockApp) CacheInfo(ctx context.Context, opts app.CacheOptions) error {
	if m.cacheInfoFunc != nil {
		return m.cacheInfoFunc(ctx, opts)
	}
	return nil
}

func (m *mockApp) ClearCache(ctx context.Context, opts app.CacheOptions) error {
	if m.clearCacheFunc != nil {
		return m.clearCacheFunc(ctx, opts)
	}
	return nil
}

func (m *mockApp) Simple(ctx context.Context, opts app.SimpleOptions) error {
	if m.simpleFunc != nil {
		return m.simpleFunc(ctx, opts)
	}
	return nil
}

func execute(t *testing.T, a commands.Application, args ...string) (string, error) {
	t.Helper()
	cli := commands.New(a)
	buf := new(bytes.Buffer)
	cli.SetOutput(buf, buf)
	cli.SetArgs(args)
	err := cli.Execute(context.Background())
	return buf.String(), err
}

func TestCommands_Analyze(t *testing.T) {
	t.Run("wires flags correctly", func(t *testing.T) {
		var captured app.AnalyzeOptions
		called := false

		mock := &mockApp{
			analyzeFunc: func(_ context.Context, opts app.AnalyzeOptions) error {
				captured = opts
				called = true
				return nil
			},
		}

		_, err := execute(t, mock,
			"--force-download", "--force-boundaries",
			"--network-type", "walk",
			"-c", "custom.yaml",
			"--cache-dir", "/tmp/cache",
			"-o", "out.html",
		)
		require.NoError(t, err)
		assert.True(t, called)
		assert.Equal(t, app.AnalyzeOptions{
			ConfigPath:  "custom.yaml",
			CacheDir:    "/tmp/cache",
			Output:      "out.html",
			NetworkType: "walk",
			Force:       domain.ForceFlags{Graph: true, Boundaries: true},
		}, captured)
	})

	t.Run("network type defaults to config", func(t *testing.T) {
		var captured app.AnalyzeOptions
		mock := &mockApp{
			analyzeFunc: func(_ context.Context, opts app.AnalyzeOptions) error {
				captured = opts
				return nil
			},
		}

		_, err := execute(t, mock, "--force-analysis")
		require.NoError(t, err)
		assert.Empty(t, captured.NetworkType)
		assert.Equal(t, domain.ForceFlags{Stats: true}, captured.Force)
	})

	t.Run("returns error on failure", func(t *testing.T) {
		mock := &mockApp{
			analyzeFunc: func(_ context.Context, _ app.AnalyzeOptions) error {
				return errors.New("simulated error")
			},
		}

		_, err := execute(t, mock)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "simulated error")
	})

	t.Run("rejects positional arguments", func(t *testing.T) {
		mock := &mockApp{
			analyzeFunc: func(_ context.Context, _ app.AnalyzeOptions) error {
				panic("should not be called")
			},
		}

		_, err := execute(t, mock, "dhaka")
		require.Error(t, err)
	})
}

func TestCommands_Cache(t *testing.T) {
	t.Run("cache info", func(t *testing.T) {
		var captured app.CacheOptions
		mock := &mockApp{
			cacheInfoFunc: func(_ context.Context, opts app.CacheOptions) error {
				captured = opts
				return nil
			},
			analyzeFunc: func(_ context.Context, _ app.AnalyzeOptions) error {
				panic("should not be called")
			},
		}

		_, err := execute(t, mock, "--cache-info", "--cache-dir", "c")
		require.NoError(t, err)
		assert.Equal(t, app.CacheOptions{CacheDir: "c"}, captured)
	})

	t.Run("clear cache skips analysis", func(t *testing.T) {
		cleared := false
		mock := &mockApp{
			clearCacheFunc: func(_ context.Context, _ app.CacheOptions) error {
				cleared = true
				return nil
			},
			analyzeFunc: func(_ context.Context, _ app.AnalyzeOptions) error {
				panic("should not be called")
			},
		}

		_, err := execute(t, mock, "--clear-cache", "--force-download")
		require.NoError(t, err)
		assert.True(t, cleared)
	})

	t.Run("conflicting flags", func(t *testing.T) {
		mock := &mockApp{
			cacheInfoFunc: func(_ context.Context, _ app.CacheOptions) error {
				panic("should not be called")
			},
			clearCacheFunc: func(_ context.Context, _ app.CacheOptions) error {
				panic("should not be called")
			},
		}

		_, err := execute(t, mock, "--cache-info", "--clear-cache")
		require.ErrorIs(t, err, domain.ErrConfig)
		require.ErrorContains(t, err, domain.ErrConflictingFlags.Error())
	})
}

func TestCommands_Simple(t *testing.T) {
	var captured app.SimpleOptions
	mock := &mockApp{
		simpleFunc: func(_ context.Context, opts app.SimpleOptions) error {
			captured = opts
			return nil
		},
	}

	_, err := execute(t, mock, "simple", "-o", "simple.html", "--config", "custom.yaml")
	require.NoError(t, err)
	assert.Equal(t, app.SimpleOptions{ConfigPath: "custom.yaml", Output: "simple.html"}, captured)
}

func TestCommands_Version(t *testing.T) {
	out, err := execute(t, &mockApp{}, "version")
	require.NoError(t, err)

	assert.Contains(t, out, "bdroads version "+build.Version)
}

package log_test

import (
	"context"
	"io"
	glog "log"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tlowell/objstore/util/log"
)

func captureStdout(t *testing.T, f func()) string {
	t.Helper()
	r, w, err := os.Pipe()
	require.NoError(t, err)
	stdout := os.Stdout
	stderr := os.Stderr
	os.Stdout = w
	os.Stderr = w
	glog.SetOutput(w)
	defer func() {
		os.Stdout = stdout
		os.Stderr = stderr
		glog.SetOutput(stdout)
	}()
	f()
	require.NoError(t, w.Close())
	out, err := io.ReadAll(r)
	require.NoError(t, err)
	return string(out)
}

func TestAddTags(t *testing.T) {
	ctx := context.Background()
	t.Run("tags appear on f calls", func(t *testing.T) {
		ctx := log.AddTags(ctx, "key", "abc123")
		output := captureStdout(t, func() {
			log.Infof(ctx, "stored object")
		})
		require.Contains(t, output, "INFO stored object key=abc123")
	})
	t.Run("tags appear on w calls", func(t *testing.T) {
		ctx := log.AddTags(ctx, "key", "abc123")
		output := captureStdout(t, func() {
			log.Infow(ctx, "stored object", "size", 42)
		})
		require.Contains(t, output, "INFO stored object size=42 key=abc123")
	})
	t.Run("tags accumulate", func(t *testing.T) {
		ctx := log.AddTags(ctx, "run_id", "r1")
		ctx = log.AddTags(ctx, "bucket", "images")
		output := captureStdout(t, func() {
			log.Infow(ctx, "hello")
		})
		require.Contains(t, output, "run_id=r1")
		require.Contains(t, output, "bucket=images")
	})
}

func TestLogLevels(t *testing.T) {
	old := slog.SetLogLoggerLevel(slog.LevelDebug)
	defer slog.SetLogLoggerLevel(old)
	cases := []struct {
		assertion string
		f         func(context.Context, string, ...any)
		contains  string
	}{
		{"infow", log.Infow, "INFO hello"},
		{"warnw", log.Warnw, "WARN hello"},
		{"errorw", log.Errorw, "ERROR hello"},
		{"debugw", log.Debugw, "DEBUG hello"},
	}
	for _, c := range cases {
		t.Run(c.assertion, func(t *testing.T) {
			output := captureStdout(t, func() {
				c.f(context.Background(), "hello")
			})
			require.Contains(t, output, c.contains)
		})
	}
}

func TestLogLeveling(t *testing.T) {
	old := slog.SetLogLoggerLevel(slog.LevelDebug)
	defer slog.SetLogLoggerLevel(old)
	s := captureStdout(t, func() {
		log.Debugf(context.Background(), "foo")
	})
	require.Contains(t, s, "DEBUG foo")

	slog.SetLogLoggerLevel(slog.LevelInfo)
	s = captureStdout(t, func() {
		log.Debugf(context.Background(), "foo")
		log.Debugw(context.Background(), "bar")
	})
	require.Equal(t, "", s)
}

package main

import (
	"bytes"
	"context"
	"io/ioutil"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func writeLayout(t *testing.T, text string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "layout.txt")
	require.NoError(t, ioutil.WriteFile(path, []byte(text), 0644))
	return path
}

func TestPrintLayoutExitCodes(t *testing.T) {
	ctx := context.Background()
	var out bytes.Buffer
	assert.Equal(t, 0, printLayout(ctx, &out, filepath.Join("layouts", "walls.txt"), false))
	assert.Equal(t, 0, printLayout(ctx, &out, writeLayout(t, "S.\n.E\n"), false))
	assert.Equal(t, 1, printLayout(ctx, &out, writeLayout(t, "S#.\n##.\n..E\n"), false))
	assert.Equal(t, 2, printLayout(ctx, &out, writeLayout(t, "S.\n.\n"), false))
	assert.Equal(t, 2, printLayout(ctx, &out, writeLayout(t, "S.\n..\n"), false), "no end")
	assert.Equal(t, 2, printLayout(ctx, &out, filepath.Join(t.TempDir(), "missing.txt"), false))
}

func TestPrintLayoutOutput(t *testing.T) {
	var out bytes.Buffer
	require.Equal(t, 0, printLayout(context.Background(), &out, writeLayout(t, "S.\n.E\n"), false))
	assert.Contains(t, out.String(), "path length 2")
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func observeGlobal(t *testing.T) *observer.ObservedLogs {
	t.Helper()
	core, logs := observer.New(zapcore.DebugLevel)
	restore := zap.ReplaceGlobals(zap.New(core))
	t.Cleanup(restore)
	return logs
}

func TestPrintLayoutReportsFailures(t *testing.T) {
	path := writeLayout(t, "S..\n...\n..E\n")

	logs := observeGlobal(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	var out bytes.Buffer
	assert.Equal(t, 2, printLayout(ctx, &out, path, false))
	assert.Empty(t, out.String(), "nothing printed for an unfinished search")
	assert.Equal(t, 1, logs.FilterMessage("search").Len())

	logs = observeGlobal(t)
	assert.Equal(t, 2, printLayout(context.Background(), failingWriter{}, path, false))
	assert.Equal(t, 1, logs.FilterMessage("print").Len())
}

func TestNewLogger(t *testing.T) {
	for _, env := range []string{"", "SERVER"} {
		logger, err := newLogger(env)
		require.NoError(t, err)
		assert.NotNil(t, logger)
	}
}

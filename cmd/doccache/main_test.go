package main

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/grindlemire/graft"
	"github.com/stretchr/testify/assert"
	"go.trai.ch/doccache/internal/app"
)

func TestRun(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "doccache.yaml")

	tests := []struct {
		name         string
		args         []string
		expectedExit int
		expectedOut  string
	}{
		{
			name:         "Load embedded resource",
			args:         []string{"-c", configPath, "load", "/config.json"},
			expectedExit: 0,
			expectedOut:  "/config.json: ",
		},
		{
			name:         "Version",
			args:         []string{"version"},
			expectedExit: 0,
			expectedOut:  "doccache version",
		},
		{
			name:         "Missing resource",
			args:         []string{"-c", configPath, "load", "/missing.json"},
			expectedExit: 1,
		},
		{
			name:         "Unknown command",
			args:         []string{"unknown"},
			expectedExit: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout := &bytes.Buffer{}
			exitCode := run(context.Background(), tt.args, stdout, &bytes.Buffer{},
				func(ctx context.Context) (*app.Components, error) {
					c, _, err := graft.ExecuteFor[*app.Components](ctx)
					return c, err
				})
			assert.Equal(t, tt.expectedExit, exitCode)
			assert.Contains(t, stdout.String(), tt.expectedOut)
		})
	}
}

func TestRun_ProviderError(t *testing.T) {
	stderr := &bytes.Buffer{}
	exitCode := run(context.Background(), []string{"version"}, &bytes.Buffer{}, stderr,
		func(context.Context) (*app.Components, error) {
			return nil, errors.New("wiring failed")
		})

	assert.Equal(t, 1, exitCode)
	assert.Equal(t, "Error: wiring failed\n", stderr.String())
}

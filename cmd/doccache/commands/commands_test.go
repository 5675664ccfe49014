package commands_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/doccache/cmd/doccache/commands"
	"go.trai.ch/doccache/internal/adapters/config"
	"go.trai.ch/doccache/internal/app"
	"go.trai.ch/doccache/internal/build"
	"go.trai.ch/doccache/internal/core/domain"
	"go.trai.ch/doccache/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

var testResources = fstest.MapFS{
	"config.json": {Data: []byte(`{"b":2,"a":1}`)},
	"other.json":  {Data: []byte(`[true,null]`)},
	"config.yaml": {Data: []byte("b: 2\na: 1\n")},
	"ids.json":    {Data: []byte(`{"id":12345678901234567891,"max":1e400}`)},
}

func newCLI(t *testing.T) (*commands.CLI, *bytes.Buffer) {
	t.Helper()
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Debug(gomock.Any()).AnyTimes()
	log.EXPECT().Warn(gomock.Any()).AnyTimes()

	shared, err := app.NewCache(app.CacheOptions{Resources: testResources, Logger: log})
	require.NoError(t, err)

	a := app.New(config.NewLoader(log), log, testResources, shared, "json")
	cli := commands.New(a, log)

	out := &bytes.Buffer{}
	cli.SetOutput(out, &bytes.Buffer{})
	return cli, out
}

func missingConfig(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "doccache.yaml")
}

func TestLoad_PrintsCanonicalDocuments(t *testing.T) {
	cli, out := newCLI(t)
	cli.SetArgs([]string{"-c", missingConfig(t), "load", "/config.json", "/other.json"})

	require.NoError(t, cli.Execute(context.Background()))
	assert.Equal(t, "/config.json: {\"a\":1,\"b\":2}\n/other.json: [true,null]\ncached documents: 2\n", out.String())
}

func TestLoad_PrintsExactNumbers(t *testing.T) {
	cli, out := newCLI(t)
	cli.SetArgs([]string{"-c", missingConfig(t), "load", "/ids.json"})

	require.NoError(t, cli.Execute(context.Background()))
	assert.Equal(t, "/ids.json: {\"id\":12345678901234567891,\"max\":1e+400}\ncached documents: 1\n", out.String())
}

func TestLoad_YAMLParser(t *testing.T) {
	cli, out := newCLI(t)
	cli.SetArgs([]string{"-c", missingConfig(t), "load", "--parser", "yaml", "config.yaml"})

	require.NoError(t, cli.Execute(context.Background()))
	assert.Equal(t, "config.yaml: {\"a\":1,\"b\":2}\ncached documents: 1\n", out.String())
}

func TestLoad_AbsoluteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"file":true}`), 0o600))

	cli, out := newCLI(t)
	cli.SetArgs([]string{"-c", missingConfig(t), "load", "-a", "-r", path})

	require.NoError(t, cli.Execute(context.Background()))
	assert.Equal(t, path+": {\"file\":true}\ncached documents: 1\n", out.String())
}

func TestLoad_NoArgsPrintsHelp(t *testing.T) {
	cli, out := newCLI(t)
	cli.SetArgs([]string{"-c", missingConfig(t), "load"})

	require.NoError(t, cli.Execute(context.Background()))
	assert.Contains(t, out.String(), "Usage:")
}

func TestLoad_UnknownParser(t *testing.T) {
	cli, _ := newCLI(t)
	cli.SetArgs([]string{"-c", missingConfig(t), "load", "--parser", "toml", "/config.json"})

	err := cli.Execute(context.Background())
	require.ErrorIs(t, err, domain.ErrUnknownParser)
}

func TestLoad_MissingResource(t *testing.T) {
	cli, _ := newCLI(t)
	cli.SetArgs([]string{"-c", missingConfig(t), "load", "/missing.json"})

	err := cli.Execute(context.Background())
	require.ErrorIs(t, err, domain.ErrLoadFailure)
}

func TestConfig_Preload(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "doccache.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("version: \"1\"\npreload:\n  - /other.json\n"), 0o600))

	cli, out := newCLI(t)
	cli.SetArgs([]string{"-c", configPath, "load", "/config.json"})

	require.NoError(t, cli.Execute(context.Background()))
	assert.Contains(t, out.String(), "cached documents: 2\n")
}

func TestConfig_Invalid(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "doccache.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("preload: [\n"), 0o600))

	cli, _ := newCLI(t)
	cli.SetArgs([]string{"-c", configPath, "load", "/config.json"})

	err := cli.Execute(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load configuration")
}

func TestVersion(t *testing.T) {
	cli, out := newCLI(t)
	// The config file is not read for the version command.
	cli.SetArgs([]string{"-c", t.TempDir(), "version"})

	require.NoError(t, cli.Execute(context.Background()))
	assert.Equal(t, "doccache version "+build.Version+"\n", out.String())
}

package cmd

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/what3words/w3w-go-wrapper/pkg/server"
)

// execute runs w3w with args against an isolated config and returns stdout.
func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("W3W_API_KEY", "")
	t.Setenv("W3W_HOST", "")

	cfgPath := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("[api]\n"), 0o600))

	root := NewRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&bytes.Buffer{})
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(append([]string{"--config", cfgPath}, args...))
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func fakeAPI(t *testing.T, routes map[string]string) string {
	t.Helper()
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, ok := routes[r.URL.Path]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"error": {"code": "NotFound", "message": "no route"}}`))
			return
		}
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(ts.Close)
	return ts.URL
}

func TestFindCmd(t *testing.T) {
	out, err := execute(t, "", "find", "meet", "at", "filled.count.soap,", "or", "filled.count.soap")
	require.NoError(t, err)
	assert.Equal(t, "filled.count.soap\n", out)

	out, err = execute(t, "", "find", "--all", "--offsets", "a.b.c", "a.b.c")
	require.NoError(t, err)
	assert.Equal(t, "0\t5\ta.b.c\n6\t11\ta.b.c\n", out)

	out, err = execute(t, "", "find", "nothing here")
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestCheckCmd(t *testing.T) {
	out, err := execute(t, "", "check", "filled.count.soap")
	require.NoError(t, err)
	assert.Contains(t, out, "possible 3wa")
	assert.Contains(t, out, "filled.count.soap")
	assert.NotContains(t, out, "lookup")
}

func TestValidCmd(t *testing.T) {
	host := fakeAPI(t, map[string]string{
		"/autosuggest": `{"suggestions": [{"words": "filled.count.soap", "rank": 1}]}`,
	})

	out, err := execute(t, "", "--key", "k", "--host", host, "valid", "filled.count.soap")
	require.NoError(t, err)
	assert.Equal(t, "confirmed\n", out)

	out, err = execute(t, "", "--key", "k", "--host", host, "valid", "filled.count.sap")
	assert.Error(t, err)
	assert.Equal(t, "not_an_address\n", out)

	out, err = execute(t, "", "valid", "not-a-3wa")
	assert.Error(t, err)
	assert.Equal(t, "shape_rejected\n", out)
}

func TestValidCmdNeedsKey(t *testing.T) {
	_, err := execute(t, "", "valid", "filled.count.soap")
	assert.ErrorIs(t, err, errNoAPIKey)
}

func TestSuggestCmd(t *testing.T) {
	host := fakeAPI(t, map[string]string{
		"/autosuggest": `{"suggestions": [
			{"country": "GB", "nearestPlace": "Bayswater, London", "words": "filled.count.soap", "rank": 1, "language": "en"},
			{"country": "US", "nearestPlace": "Homer, Alaska", "words": "filled.count.soaps", "rank": 2, "language": "en"}
		]}`,
	})

	out, err := execute(t, "", "--key", "k", "--host", host, "suggest", "-n", "2", "filled.count.so")
	require.NoError(t, err)
	assert.Contains(t, out, "Found 2 suggestions")
	assert.Contains(t, out, "///filled.count.soap")
	assert.Contains(t, out, "Homer, Alaska, US")

	_, err = execute(t, "", "--key", "k", "--host", host, "suggest", "--focus", "nowhere", "x.y.z")
	assert.Error(t, err)
}

func TestConvertCmd(t *testing.T) {
	address := `{"country": "GB", "square": {"southwest": {"lng": -0.195543, "lat": 51.520833},
		"northeast": {"lng": -0.195499, "lat": 51.52086}}, "nearestPlace": "Bayswater, London",
		"coordinates": {"lng": -0.195521, "lat": 51.520847}, "words": "filled.count.soap",
		"language": "en", "map": "https://w3w.co/filled.count.soap"}`
	host := fakeAPI(t, map[string]string{
		"/convert-to-3wa":         address,
		"/convert-to-coordinates": address,
	})

	out, err := execute(t, "", "--key", "k", "--host", host, "convert", "51.520847,-0.195521")
	require.NoError(t, err)
	assert.Contains(t, out, "///filled.count.soap")

	out, err = execute(t, "", "--key", "k", "--host", host, "convert", "///filled.count.soap")
	require.NoError(t, err)
	assert.Contains(t, out, "51.520847,-0.195521")
}

func TestConvertCmdAPIError(t *testing.T) {
	host := fakeAPI(t, map[string]string{})
	_, err := execute(t, "", "--key", "k", "--host", host, "convert", "filled.count.soap")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "NotFound")
}

func TestServeCmd(t *testing.T) {
	var in bytes.Buffer
	require.NoError(t, msgpack.NewEncoder(&in).Encode(server.Request{ID: "1", Op: server.OpPossible, Text: "filled.count.soap"}))

	out, err := execute(t, in.String(), "serve")
	require.NoError(t, err)

	dec := msgpack.NewDecoder(strings.NewReader(out))
	var ready, resp server.Response
	require.NoError(t, dec.Decode(&ready))
	require.NoError(t, dec.Decode(&resp))
	assert.Equal(t, "ready", ready.Status)
	assert.Equal(t, "1", resp.ID)
	assert.True(t, resp.OK)
}

func TestCliCmd(t *testing.T) {
	out, err := execute(t, "filled.count.soap\n", "cli", "--offsets")
	require.NoError(t, err)
	assert.Contains(t, out, "[0:17]")
}

func TestConfigCmd(t *testing.T) {
	out, err := execute(t, "", "--key", "abcdefgh", "config")
	require.NoError(t, err)
	assert.Contains(t, out, "****efgh")
	assert.NotContains(t, out, "abcdefgh")
}

func TestVersionCmd(t *testing.T) {
	out, err := execute(t, "", "version")
	require.NoError(t, err)
	assert.Contains(t, out, Version)
}

func TestMaskKey(t *testing.T) {
	assert.Equal(t, "(not set)", maskKey(""))
	assert.Equal(t, "****", maskKey("abc"))
	assert.Equal(t, "****5678", maskKey("12345678"))
}

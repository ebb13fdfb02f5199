package confplay_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/sagarc03/confplay"
)

func TestSecret_Expose(t *testing.T) {
	s := confplay.NewSecret("hunter2")
	assert.Equal(t, "hunter2", s.Expose())
}

func TestSecret_FmtVerbsRedact(t *testing.T) {
	s := confplay.NewSecret("hunter2")

	for _, verb := range []string{"%v", "%s", "%+v", "%#v"} {
		out := fmt.Sprintf(verb, s)
		assert.NotContains(t, out, "hunter2", "verb %s leaked the value", verb)
		assert.Contains(t, out, confplay.Redacted)
	}
}

func TestSecret_StructPrintRedacts(t *testing.T) {
	settings := confplay.Settings{
		Somestring: "base",
		Somesecret: confplay.NewSecret("hunter2"),
	}

	out := fmt.Sprintf("%+v", settings)
	assert.NotContains(t, out, "hunter2")
	assert.Contains(t, out, "base")
}

func TestSecret_JSONRedacts(t *testing.T) {
	settings := confplay.Settings{
		Somestring: "base",
		Somesecret: confplay.NewSecret("hunter2"),
	}

	out, err := json.Marshal(settings)
	require.NoError(t, err)

	assert.NotContains(t, string(out), "hunter2")
	assert.Contains(t, string(out), confplay.Redacted)
	// nil optional field is omitted entirely
	assert.NotContains(t, string(out), "someoptionalstring")
}

func TestSecret_YAMLRedacts(t *testing.T) {
	out, err := yaml.Marshal(confplay.NewSecret("hunter2"))
	require.NoError(t, err)

	assert.NotContains(t, string(out), "hunter2")
	assert.Contains(t, string(out), confplay.Redacted)
}

func TestSecret_SlogRedacts(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	logger.Info("resolved", "secret", confplay.NewSecret("hunter2"))

	assert.NotContains(t, buf.String(), "hunter2")
	assert.Contains(t, buf.String(), confplay.Redacted)
}

func TestSecret_UnmarshalText(t *testing.T) {
	var s confplay.Secret
	require.NoError(t, s.UnmarshalText([]byte("hunter2")))
	assert.Equal(t, "hunter2", s.Expose())
}

package respond_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/xy-planning-network/respond"
)

func TestEnvironmentValid(t *testing.T) {
	require.Nil(t, respond.Production.Valid())
	require.ErrorIs(t, respond.Environment("LOCAL").Valid(), respond.ErrNotValid)
}

func TestEnvVarOrEnv(t *testing.T) {
	key := "RESPOND_TEST_ENV"

	// Arrange + Act + Assert
	require.Equal(t, respond.Development, respond.EnvVarOrEnv(key, respond.Development))

	t.Setenv(key, "staging")
	require.Equal(t, respond.Staging, respond.EnvVarOrEnv(key, respond.Development))

	t.Setenv(key, "nowhere")
	require.Equal(t, respond.Development, respond.EnvVarOrEnv(key, respond.Development))
}

func TestEnvVarOr(t *testing.T) {
	key := "RESPOND_TEST_VAR"

	t.Setenv(key, "TRUE")
	require.True(t, respond.EnvVarOrBool(key, false))

	t.Setenv(key, "2s")
	require.Equal(t, 2*time.Second, respond.EnvVarOrDuration(key, time.Second))

	t.Setenv(key, "12")
	require.Equal(t, 12, respond.EnvVarOrInt(key, 1))
	require.Equal(t, 12.0, respond.EnvVarOrFloat(key, 1))

	t.Setenv(key, "twelve")
	require.Equal(t, 1, respond.EnvVarOrInt(key, 1))
	require.Equal(t, 1.5, respond.EnvVarOrFloat(key, 1.5))
	require.Equal(t, "twelve", respond.EnvVarOrString(key, "one"))

	t.Setenv(key, "")
	require.Equal(t, "one", respond.EnvVarOrString(key, "one"))
	require.Equal(t, "https://example.com/", respond.EnvVarOrURL(key, "https://example.com/path").String())

	t.Setenv(key, "http://localhost:8080/")
	require.Equal(t, "http://localhost:8080/", respond.EnvVarOrURL(key, "https://example.com").String())
}

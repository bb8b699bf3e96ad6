package cli

import (
	"encoding/json"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/appwrite/starter-for-vue/internal/config"
	"github.com/appwrite/starter-for-vue/internal/version"
	"github.com/appwrite/starter-for-vue/pkg/client"
	"github.com/appwrite/starter-for-vue/pkg/models"
)

// useHandles points the CLI at endpoint for the duration of the test.
func useHandles(t *testing.T, endpoint string) {
	t.Helper()
	prev := apiHandles
	SetAPIHandles(client.NewFromConfig(&config.Config{
		Endpoint:  endpoint,
		ProjectID: "demo",
		Timeout:   5 * time.Second,
	}))
	t.Cleanup(func() { apiHandles = prev })
}

func TestPingCmd(t *testing.T) {
	srv := newFakeAppwrite(t, true)
	useHandles(t, srv.URL+"/v1")

	out, err := captureStdout(t, func() error { return PingCmd.RunE(PingCmd, nil) })
	require.NoError(t, err)
	assert.Contains(t, out, `answered "Pong!"`)
	assert.Contains(t, out, "(demo)")
}

func TestPingCmd_WaitsThenFails(t *testing.T) {
	useHandles(t, "http://127.0.0.1:19999/v1")

	pingAttempts, pingInterval = 2, time.Millisecond
	defer func() { pingAttempts, pingInterval = 1, 2*time.Second }()

	_, err := captureStdout(t, func() error { return PingCmd.RunE(PingCmd, nil) })
	require.Error(t, err)
	assert.Contains(t, err.Error(), "after 2 attempts")
}

func TestAccountGetCmd(t *testing.T) {
	srv := newFakeAppwrite(t, true)
	useHandles(t, srv.URL+"/v1")

	out, err := captureStdout(t, func() error { return accountGetCmd.RunE(accountGetCmd, nil) })
	require.NoError(t, err)
	assert.Contains(t, out, "ID:        u1")
	assert.Contains(t, out, "Email:     ada@example.com")
}

func TestAccountGetCmd_Unauthorized(t *testing.T) {
	srv := newFakeAppwrite(t, false)
	useHandles(t, srv.URL+"/v1")

	_, err := captureStdout(t, func() error { return accountGetCmd.RunE(accountGetCmd, nil) })
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing scope")
}

func TestAccountSessionsCmd_JSON(t *testing.T) {
	srv := newFakeAppwrite(t, true)
	useHandles(t, srv.URL+"/v1")

	accountOutputFormat = "json"
	defer func() { accountOutputFormat = "table" }()

	out, err := captureStdout(t, func() error { return accountSessionsCmd.RunE(accountSessionsCmd, nil) })
	require.NoError(t, err)

	var got struct {
		Total    int `json:"total"`
		Sessions []struct {
			ID      string `json:"$id"`
			Current bool   `json:"current"`
		} `json:"sessions"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, 1, got.Total)
	require.Len(t, got.Sessions, 1)
	assert.Equal(t, "s1", got.Sessions[0].ID)
	assert.True(t, got.Sessions[0].Current)
}

func TestDocumentsListCmd(t *testing.T) {
	srv := newFakeAppwrite(t, true)
	useHandles(t, srv.URL+"/v1")

	out, err := captureStdout(t, func() error {
		return documentsListCmd.RunE(documentsListCmd, []string{"main", "todos"})
	})
	require.NoError(t, err)
	assert.Contains(t, out, "d1")
	assert.Contains(t, out, "title=write tests")
	assert.Contains(t, out, "2 of 2 documents")
}

func TestDocumentsGetCmd(t *testing.T) {
	srv := newFakeAppwrite(t, true)
	useHandles(t, srv.URL+"/v1")

	out, err := captureStdout(t, func() error {
		return documentsGetCmd.RunE(documentsGetCmd, []string{"main", "todos", "d1"})
	})
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	assert.Equal(t, "d1", doc["$id"])
	assert.Equal(t, "write tests", doc["title"])
}

func TestDocumentsGetCmd_NotFound(t *testing.T) {
	srv := newFakeAppwrite(t, true)
	useHandles(t, srv.URL+"/v1")

	_, err := captureStdout(t, func() error {
		return documentsGetCmd.RunE(documentsGetCmd, []string{"main", "todos", "missing"})
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "get document")
}

func TestVersionCmd_JSON(t *testing.T) {
	srv := newFakeAppwrite(t, true)
	useHandles(t, srv.URL+"/v1")

	jsonOutput = true
	defer func() { jsonOutput = false }()

	out, err := captureStdout(t, func() error {
		VersionCmd.Run(VersionCmd, nil)
		return nil
	})
	require.NoError(t, err)

	var got VersionOutput
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, version.Version, got.ClientVersion)
	assert.Equal(t, "1.6.1", got.ServerVersion)
	assert.Equal(t, version.MinServerVersion, got.MinServerVersion)
	assert.Empty(t, got.UpdateRecommendation)
}

func TestVersionCmd_WithoutHandles(t *testing.T) {
	prev := apiHandles
	apiHandles = nil
	defer func() { apiHandles = prev }()

	out, _ := captureStdout(t, func() error {
		VersionCmd.Run(VersionCmd, nil)
		return nil
	})
	assert.Contains(t, out, "appwritectl version "+version.Version)
	assert.NotContains(t, out, "Server version")
}

func TestConfigCmd(t *testing.T) {
	t.Setenv(config.EndpointKey, "https://cloud.appwrite.io/v1")
	t.Setenv(config.ProjectIDKey, "demo")
	t.Setenv(config.ProjectNameKey, "")

	out, err := captureStdout(t, func() error { return ConfigCmd.RunE(ConfigCmd, nil) })
	require.NoError(t, err)
	assert.Contains(t, out, "Endpoint:        https://cloud.appwrite.io/v1")
	assert.Contains(t, out, "Project name:    (not set)")
	assert.Contains(t, out, "Configuration:   valid")
}

func TestConfigCmd_InvalidJSON(t *testing.T) {
	t.Setenv(config.EndpointKey, "")
	t.Setenv(config.ProjectIDKey, "demo")

	configOutputFormat = "json"
	defer func() { configOutputFormat = "table" }()

	out, err := captureStdout(t, func() error { return ConfigCmd.RunE(ConfigCmd, nil) })
	require.NoError(t, err)

	var info configInfo
	require.NoError(t, json.Unmarshal([]byte(out), &info))
	assert.False(t, info.Valid)
	assert.True(t, strings.Contains(info.Error, config.EndpointKey), info.Error)
}

func TestLoadAPIHandles_KeepsExisting(t *testing.T) {
	useHandles(t, "http://localhost/v1")
	before := APIHandles()

	t.Setenv(config.EndpointKey, "")
	require.NoError(t, LoadAPIHandles(PingCmd, nil))
	assert.Same(t, before, APIHandles())
}

func TestLoadAPIHandles_MissingConfig(t *testing.T) {
	prev := apiHandles
	apiHandles = nil
	defer func() { apiHandles = prev }()

	t.Setenv(config.EndpointKey, "")
	t.Setenv(config.ProjectIDKey, "")

	err := LoadAPIHandles(PingCmd, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "appwrite is not configured")
	assert.Nil(t, APIHandles())
}

func TestSummarizeFields(t *testing.T) {
	got := summarizeFields(models.Document{Data: map[string]any{"b": 2, "a": "x"}})
	assert.Equal(t, "a=x b=2", got)

	got = summarizeFields(models.Document{Data: map[string]any{"text": strings.Repeat("y", 100)}})
	assert.Len(t, got, 60)
	assert.True(t, strings.HasSuffix(got, "..."))
}

func TestSummarizeFields_MultiByteRunes(t *testing.T) {
	got := summarizeFields(models.Document{Data: map[string]any{"t": strings.Repeat("é", 100)}})
	assert.True(t, utf8.ValidString(got), "summary must stay valid UTF-8: %q", got)
	assert.True(t, strings.HasSuffix(got, "..."))
	assert.LessOrEqual(t, runewidth.StringWidth(got), summaryWidth)
}

func TestPingCmd_WaitUsesAttemptsFlag(t *testing.T) {
	srv := newFakeAppwrite(t, true)
	useHandles(t, srv.URL+"/v1")

	pingWait = true
	defer func() { pingWait = false }()

	out, err := captureStdout(t, func() error { return PingCmd.RunE(PingCmd, nil) })
	require.NoError(t, err)
	assert.Contains(t, out, "answered")
}

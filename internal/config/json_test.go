// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJSON_FullFile(t *testing.T) {
	contents := `{
		"app": {"version": "0.9.0", "max_cards": 100000},
		"storage": {
			"db": {"dsn": "postgres://localhost:5432/cards"},
			"device_db": {"dsn": "/data/gate.db"},
			"files": {"data_dir": "/data"}
		},
		"server": {"http_address": "0.0.0.0:5000", "request_timeout": "30s", "include_uid_lists": true},
		"adapter": {"server_base": "http://192.168.1.32:5000", "request_timeout": "5s", "probe_timeout": "1500ms"},
		"workers": {"sync_interval": "1m", "status_interval": "2s"}
	}`

	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))

	cfg, err := parseJSON(path)
	require.NoError(t, err)

	assert.Equal(t, "0.9.0", cfg.App.Version)
	assert.EqualValues(t, 100000, cfg.App.MaxCards)
	assert.Equal(t, "postgres://localhost:5432/cards", cfg.Storage.DB.DSN)
	assert.Equal(t, "/data/gate.db", cfg.Storage.DeviceDB.DSN)
	assert.Equal(t, "/data", cfg.Storage.Files.DataDir)
	assert.Equal(t, "0.0.0.0:5000", cfg.Server.HTTPAddress)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)
	assert.True(t, cfg.Server.IncludeUIDLists)
	assert.Equal(t, "http://192.168.1.32:5000", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 5*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, 1500*time.Millisecond, cfg.Adapter.ProbeTimeout)
	assert.Equal(t, time.Minute, cfg.Workers.SyncInterval)
	assert.Equal(t, 2*time.Second, cfg.Workers.StatusInterval)
}

func TestParseJSON_MissingFile(t *testing.T) {
	_, err := parseJSON(filepath.Join(t.TempDir(), "does-not-exist.json"))
	assert.Error(t, err)
}

func TestParseJSON_MalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	_, err := parseJSON(path)
	assert.Error(t, err)
}

func TestDuration_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  time.Duration
	}{
		{name: "string with unit", input: `"90s"`, want: 90 * time.Second},
		{name: "compound string", input: `"1h30m"`, want: 90 * time.Minute},
		{name: "numeric nanoseconds", input: `5000000000`, want: 5 * time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Duration
			require.NoError(t, json.Unmarshal([]byte(tt.input), &d))
			assert.Equal(t, tt.want, time.Duration(d))
		})
	}
}

func TestDuration_UnmarshalJSON_Invalid(t *testing.T) {
	var d Duration
	assert.Error(t, json.Unmarshal([]byte(`"not-a-duration"`), &d))
}

func TestDuration_MarshalRoundTrip(t *testing.T) {
	in := Duration(42 * time.Second)

	raw, err := json.Marshal(in)
	require.NoError(t, err)

	var out Duration
	require.NoError(t, json.Unmarshal(raw, &out))
	assert.Equal(t, in, out)
}

package server

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_ParseDBConnString(t *testing.T) {
	testCases := []struct {
		name      string
		input     string
		expect    Database
		expectErr bool
	}{
		{
			name:   "inmem",
			input:  "inmem",
			expect: Database{Type: DatabaseInMemory},
		},
		{
			name:   "sqlite with dir",
			input:  "sqlite:/var/lib/minnow",
			expect: Database{Type: DatabaseSQLite, DataDir: "/var/lib/minnow"},
		},
		{
			name:   "sqlite with relative dir",
			input:  "sqlite:data",
			expect: Database{Type: DatabaseSQLite, DataDir: "data"},
		},
		{
			name:      "sqlite without dir",
			input:     "sqlite",
			expectErr: true,
		},
		{
			name:      "inmem with params",
			input:     "inmem:somewhere",
			expectErr: true,
		},
		{
			name:      "none",
			input:     "none",
			expectErr: true,
		},
		{
			name:      "unknown engine",
			input:     "postgres:something",
			expectErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert := assert.New(t)

			actual, err := ParseDBConnString(tc.input)
			if tc.expectErr {
				assert.Error(err)
				return
			}
			if !assert.NoError(err) {
				return
			}

			assert.Equal(tc.expect, actual)
		})
	}
}

func Test_ParseListenAddress(t *testing.T) {
	testCases := []struct {
		name       string
		input      string
		expectAddr string
		expectPort int
		expectErr  bool
	}{
		{
			name:       "full address",
			input:      "192.168.0.2:6001",
			expectAddr: "192.168.0.2",
			expectPort: 6001,
		},
		{
			name:       "port only",
			input:      ":8080",
			expectAddr: "",
			expectPort: 8080,
		},
		{
			name:       "address only",
			input:      "localhost",
			expectAddr: "localhost",
			expectPort: 0,
		},
		{
			name:      "bad port",
			input:     "localhost:pickles",
			expectErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert := assert.New(t)

			addr, port, err := ParseListenAddress(tc.input)
			if tc.expectErr {
				assert.Error(err)
				return
			}
			if !assert.NoError(err) {
				return
			}

			assert.Equal(tc.expectAddr, addr)
			assert.Equal(tc.expectPort, port)
		})
	}
}

func Test_LoadConfigFile(t *testing.T) {
	assert := assert.New(t)

	confPath := filepath.Join(t.TempDir(), "minnow.toml")
	confData := []byte(`listen = "0.0.0.0:6001"
token_secret = "grumpkins_and_snarks-grumpkins_and_snarks"
db = "sqlite:/var/lib/minnow"
unauth_delay = 250
`)
	if err := os.WriteFile(confPath, confData, 0660); err != nil {
		t.Fatalf("could not write config file: %v", err)
	}

	cfg, err := LoadConfigFile(confPath)
	if !assert.NoError(err) {
		return
	}

	assert.Equal("0.0.0.0", cfg.Address)
	assert.Equal(6001, cfg.Port)
	assert.Equal([]byte("grumpkins_and_snarks-grumpkins_and_snarks"), cfg.TokenSecret)
	assert.Equal(Database{Type: DatabaseSQLite, DataDir: "/var/lib/minnow"}, cfg.DB)
	assert.Equal(250, cfg.UnauthDelayMillis)
}

func Test_LoadConfigFile_empty(t *testing.T) {
	assert := assert.New(t)

	confPath := filepath.Join(t.TempDir(), "minnow.toml")
	if err := os.WriteFile(confPath, []byte{}, 0660); err != nil {
		t.Fatalf("could not write config file: %v", err)
	}

	cfg, err := LoadConfigFile(confPath)
	if !assert.NoError(err) {
		return
	}

	// unset values are zero; FillDefaults is the caller's job
	assert.Equal(Config{}, cfg)
}

func Test_Config_FillDefaults(t *testing.T) {
	assert := assert.New(t)

	cfg := Config{}.FillDefaults()

	assert.NotEmpty(cfg.TokenSecret)
	assert.Equal(DatabaseInMemory, cfg.DB.Type)
	assert.Equal(1000, cfg.UnauthDelayMillis)
	assert.Equal(8080, cfg.Port)
	assert.NoError(cfg.Validate())
}

package profile

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vladfi1/libmelee/melee"
	"github.com/vladfi1/libmelee/menu"
)

const sampleProfile = `
connection:
  address: 192.168.1.20
  service_wait: 500ms
dolphin:
  path: /opt/slippi/dolphin
  iso: /games/melee.iso
  fast_forward: true
bot:
  port: 2
  character: MARTH
  stage: BATTLEFIELD
  costume: 3
  autostart: true
opponent:
  port: 1
  character: FALCO
  cpu_level: 9
`

func TestParse(t *testing.T) {
	p, err := Parse([]byte(sampleProfile))
	require.NoError(t, err)

	assert.Equal(t, "192.168.1.20", p.Connection.Address)
	// defaults survive
	assert.Equal(t, 51441, p.Connection.Port)
	assert.Equal(t, 10, p.Connection.ConnectAttempts)
	assert.Equal(t, 500*time.Millisecond, p.Connection.ServiceWait)
	assert.True(t, p.Dolphin.FastForward)
	require.NotNil(t, p.Opponent)
	assert.Equal(t, 9, p.Opponent.CPULevel)
	require.NoError(t, p.Validate())

	target, err := p.Target()
	require.NoError(t, err)
	assert.Equal(t, menu.Target{
		Character: melee.Marth,
		Stage:     melee.Battlefield,
		Costume:   3,
		Autostart: true,
	}, target)

	opponent, ok, err := p.OpponentTarget()
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, melee.Falco, opponent.Character)
	assert.Equal(t, melee.Battlefield, opponent.Stage)
	assert.Empty(t, p.Opponent.Stage)

	cfg := p.ClientConfig()
	assert.Equal(t, "192.168.1.20:51441", cfg.Endpoint())
	assert.Equal(t, 500*time.Millisecond, cfg.ServiceWait)
}

func TestParseInvalidYAML(t *testing.T) {
	_, err := Parse([]byte("bot: [1, 2"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(p *Profile)
		field   string
		wantErr error
	}{
		{
			name:   "default is valid",
			mutate: func(p *Profile) {},
		},
		{
			name:    "missing address",
			mutate:  func(p *Profile) { p.Connection.Address = "" },
			field:   "connection.address",
			wantErr: ErrMissingValue,
		},
		{
			name:    "bad stream port",
			mutate:  func(p *Profile) { p.Connection.Port = 70000 },
			field:   "connection.port",
			wantErr: ErrInvalidPort,
		},
		{
			name:    "bad controller port",
			mutate:  func(p *Profile) { p.Bot.Port = 5 },
			field:   "bot.port",
			wantErr: ErrInvalidPort,
		},
		{
			name:    "unknown character",
			mutate:  func(p *Profile) { p.Bot.Character = "WALUIGI" },
			field:   "bot.character",
			wantErr: ErrUnknownCharacter,
		},
		{
			name:    "unknown stage",
			mutate:  func(p *Profile) { p.Bot.Stage = "HYRULE_TEMPLE" },
			field:   "bot.stage",
			wantErr: ErrUnknownStage,
		},
		{
			name:    "target error",
			mutate:  func(p *Profile) { p.Bot.CPULevel = 12 },
			wantErr: menu.ErrInvalidCPULevel,
		},
		{
			name: "opponent on bot port",
			mutate: func(p *Profile) {
				p.Opponent = &Player{Port: 1, Character: "MARTH"}
			},
			field:   "opponent.port",
			wantErr: ErrPortInUse,
		},
		{
			name: "fast forward crash",
			mutate: func(p *Profile) {
				p.Dolphin.FastForward = true
				p.Bot.Stage = "YOSHIS_STORY"
				p.Opponent = &Player{Port: 2, Character: "FALCO"}
			},
			field:   "dolphin.fast_forward",
			wantErr: ErrBadFastForward,
		},
		{
			name: "same matchup without fast forward",
			mutate: func(p *Profile) {
				p.Bot.Stage = "YOSHIS_STORY"
				p.Opponent = &Player{Port: 2, Character: "FALCO"}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Default()
			tt.mutate(p)
			err := p.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
			if tt.field != "" {
				var fieldErr *FieldError
				require.True(t, errors.As(err, &fieldErr))
				assert.Equal(t, tt.field, fieldErr.Field)
			}
		})
	}
}

func TestLoadWithEnvFile(t *testing.T) {
	dir := t.TempDir()
	profilePath := filepath.Join(dir, "bot.yaml")
	envPath := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(profilePath, []byte(sampleProfile), 0o644))
	require.NoError(t, os.WriteFile(envPath, []byte("SLIPPI_PORT=51442\nMELEE_ISO=/tmp/melee.iso\n"), 0o644))

	t.Setenv(EnvDolphinPath, "/usr/local/bin/dolphin-emu")

	p, err := Load(profilePath, envPath, filepath.Join(dir, "missing.env"))
	require.NoError(t, err)
	assert.Equal(t, 51442, p.Connection.Port)
	assert.Equal(t, "/tmp/melee.iso", p.Dolphin.ISO)
	assert.Equal(t, "/usr/local/bin/dolphin-emu", p.Dolphin.Path)
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := Load(filepath.Join(dir, "nope.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	invalid := filepath.Join(dir, "invalid.yaml")
	require.NoError(t, os.WriteFile(invalid, []byte("bot:\n  character: NOBODY\n"), 0o644))
	_, err = Load(invalid)
	assert.ErrorIs(t, err, ErrUnknownCharacter)
}

func TestApplyEnvBadPort(t *testing.T) {
	p := Default()
	err := p.ApplyEnv(func(key string) (string, bool) {
		if key == EnvPort {
			return "slippi", true
		}
		return "", false
	})
	assert.ErrorIs(t, err, ErrInvalidPort)
}

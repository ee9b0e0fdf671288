// Package profile loads bot profiles: which console to connect to, how to
// launch it, and what each driven port should pick.
//
// Profiles are YAML. Machine-local settings (addresses, emulator paths) can
// be overridden from the environment or from .env files, so one profile
// can be shared between machines.
package profile

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/vladfi1/libmelee/melee"
	"github.com/vladfi1/libmelee/menu"
	"github.com/vladfi1/libmelee/slippstream"
)

// Environment variables that override profile fields.
const (
	EnvAddress     = "SLIPPI_ADDRESS"
	EnvPort        = "SLIPPI_PORT"
	EnvDolphinPath = "DOLPHIN_PATH"
	EnvISO         = "MELEE_ISO"
)

// Profile is a parsed bot profile.
type Profile struct {
	Connection Connection `yaml:"connection"`
	Dolphin    Dolphin    `yaml:"dolphin"`
	Bot        Player     `yaml:"bot"`
	// Opponent is optional. It is needed for the fast-forward check and
	// when the opponent port is driven as a CPU.
	Opponent *Player `yaml:"opponent,omitempty"`
}

// Connection holds the stream settings.
type Connection struct {
	Address         string        `yaml:"address"`
	Port            int           `yaml:"port"`
	ConnectAttempts int           `yaml:"connect_attempts"`
	ServiceWait     time.Duration `yaml:"service_wait"`
	InboxCapacity   int           `yaml:"inbox_capacity"`
}

// Dolphin holds the emulator launch settings.
type Dolphin struct {
	Path        string   `yaml:"path"`
	ISO         string   `yaml:"iso"`
	UserDir     string   `yaml:"user_dir"`
	FastForward bool     `yaml:"fast_forward"`
	Args        []string `yaml:"args"`
}

// Player is what one port should end up playing.
type Player struct {
	Port        int    `yaml:"port"`
	Character   string `yaml:"character"`
	Stage       string `yaml:"stage"`
	ConnectCode string `yaml:"connect_code"`
	CPULevel    int    `yaml:"cpu_level"`
	Costume     int    `yaml:"costume"`
	Autostart   bool   `yaml:"autostart"`
	Swag        bool   `yaml:"swag"`
}

// Default returns a profile for a local versus match with default
// connection settings.
func Default() *Profile {
	cfg := slippstream.DefaultConfig()
	return &Profile{
		Connection: Connection{
			Address:         cfg.Address,
			Port:            cfg.Port,
			ConnectAttempts: cfg.ConnectAttempts,
			ServiceWait:     cfg.ServiceWait,
			InboxCapacity:   cfg.InboxCapacity,
		},
		Bot: Player{
			Port:      1,
			Character: melee.Fox.String(),
			Stage:     melee.FinalDestination.String(),
		},
	}
}

// Parse reads a profile from YAML. Fields missing from data keep their
// defaults. The result is not validated.
func Parse(data []byte) (*Profile, error) {
	p := Default()
	if err := yaml.Unmarshal(data, p); err != nil {
		return nil, fmt.Errorf("parse profile: %w", err)
	}
	return p, nil
}

// Load reads the profile at path, applies environment overrides and
// validates it. Variables already set in the process environment win over
// the given .env files; missing .env files are ignored.
func Load(path string, envFiles ...string) (*Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read profile: %w", err)
	}
	p, err := Parse(data)
	if err != nil {
		return nil, err
	}

	env, err := readEnvFiles(envFiles)
	if err != nil {
		return nil, err
	}
	lookup := func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok {
			return v, true
		}
		v, ok := env[key]
		return v, ok
	}
	if err := p.ApplyEnv(lookup); err != nil {
		return nil, err
	}

	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

func readEnvFiles(files []string) (map[string]string, error) {
	out := make(map[string]string)
	for _, f := range files {
		vars, err := godotenv.Read(f)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", f, err)
		}
		for k, v := range vars {
			// earlier files win, as with godotenv.Load
			if _, ok := out[k]; !ok {
				out[k] = v
			}
		}
	}
	return out, nil
}

// ApplyEnv overrides machine-local fields from lookup.
func (p *Profile) ApplyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvAddress); ok && v != "" {
		p.Connection.Address = v
	}
	if v, ok := lookup(EnvPort); ok && v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return &FieldError{Field: EnvPort, Value: v, Err: ErrInvalidPort}
		}
		p.Connection.Port = port
	}
	if v, ok := lookup(EnvDolphinPath); ok && v != "" {
		p.Dolphin.Path = v
	}
	if v, ok := lookup(EnvISO); ok && v != "" {
		p.Dolphin.ISO = v
	}
	return nil
}

// ClientConfig returns the stream client settings.
func (p *Profile) ClientConfig() slippstream.Config {
	return slippstream.Config{
		Address:         p.Connection.Address,
		Port:            p.Connection.Port,
		ConnectAttempts: p.Connection.ConnectAttempts,
		ServiceWait:     p.Connection.ServiceWait,
		InboxCapacity:   p.Connection.InboxCapacity,
	}
}

// Target returns the menu target for the bot's port.
func (p *Profile) Target() (menu.Target, error) {
	return p.Bot.Target("bot")
}

// OpponentTarget returns the menu target for the opponent port, if the
// profile has one. The opponent plays on the bot's stage unless it names
// its own.
func (p *Profile) OpponentTarget() (menu.Target, bool, error) {
	if p.Opponent == nil {
		return menu.Target{}, false, nil
	}
	opponent := *p.Opponent
	if opponent.Stage == "" {
		opponent.Stage = p.Bot.Stage
	}
	t, err := opponent.Target("opponent")
	if err != nil {
		return menu.Target{}, false, err
	}
	return t, true, nil
}

// Target converts the player entry into a validated menu target. prefix
// names the entry in errors.
func (pl Player) Target(prefix string) (menu.Target, error) {
	character, ok := melee.ParseCharacter(pl.Character)
	if !ok {
		return menu.Target{}, &FieldError{Field: prefix + ".character", Value: pl.Character, Err: ErrUnknownCharacter}
	}
	stage, ok := melee.ParseStage(pl.Stage)
	if !ok {
		return menu.Target{}, &FieldError{Field: prefix + ".stage", Value: pl.Stage, Err: ErrUnknownStage}
	}
	t := menu.Target{
		Character:   character,
		Stage:       stage,
		ConnectCode: pl.ConnectCode,
		CPULevel:    pl.CPULevel,
		Costume:     pl.Costume,
		Autostart:   pl.Autostart,
		Swag:        pl.Swag,
	}
	if err := t.Validate(); err != nil {
		return menu.Target{}, fmt.Errorf("%s: %w", prefix, err)
	}
	return t, nil
}

// Validate reports the first configuration error in the profile.
func (p *Profile) Validate() error {
	if p.Connection.Address == "" {
		return &FieldError{Field: "connection.address", Err: ErrMissingValue}
	}
	if p.Connection.Port <= 0 || p.Connection.Port > 65535 {
		return &FieldError{Field: "connection.port", Value: strconv.Itoa(p.Connection.Port), Err: ErrInvalidPort}
	}
	if err := validateControllerPort("bot.port", p.Bot.Port); err != nil {
		return err
	}
	bot, err := p.Target()
	if err != nil {
		return err
	}

	if p.Opponent == nil {
		return nil
	}
	if err := validateControllerPort("opponent.port", p.Opponent.Port); err != nil {
		return err
	}
	if p.Opponent.Port == p.Bot.Port {
		return &FieldError{Field: "opponent.port", Value: strconv.Itoa(p.Opponent.Port), Err: ErrPortInUse}
	}
	opponent, _, err := p.OpponentTarget()
	if err != nil {
		return err
	}

	if p.Dolphin.FastForward && melee.BadFastForward(bot.Character, opponent.Character, bot.Stage) {
		return &FieldError{
			Field: "dolphin.fast_forward",
			Value: fmt.Sprintf("%s vs %s on %s", bot.Character, opponent.Character, bot.Stage),
			Err:   ErrBadFastForward,
		}
	}
	return nil
}

func validateControllerPort(field string, port int) error {
	if port < 1 || port > 4 {
		return &FieldError{Field: field, Value: strconv.Itoa(port), Err: ErrInvalidPort}
	}
	return nil
}

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/Derek-Wen/daily-rhythm/internal/game"
	"github.com/Derek-Wen/daily-rhythm/internal/pattern"
	"github.com/Derek-Wen/daily-rhythm/internal/score"
	"github.com/Derek-Wen/daily-rhythm/internal/weather"
	"gopkg.in/alecthomas/kingpin.v2"
)

const (
	Version = "0.3.0"

	CommandPlay    = "play"
	CommandPattern = "pattern"
	CommandHistory = "history"

	// SettingsEnv points at an ini settings file
	SettingsEnv = "DAILY_RHYTHM_CONFIG"
)

type Config struct {
	Command string

	Speed       float64
	Frequency   float64
	Difficulty  string
	Keys        string
	TickRate    float64
	Timezone    string
	Date        string
	Database    string
	LogFile     string
	Mute        bool
	NoWeather   bool
	CountMisses bool
	Latitude    float64
	Longitude   float64
	Settings    string

	SaveSettings bool
}

// Location resolves the configured zone
func (c *Config) Location() (*time.Location, error) {
	return pattern.Location(c.Timezone)
}

// Day returns the calendar day to play, the date override or today in the zone
func (c *Config) Day(now time.Time, loc *time.Location) (time.Time, error) {
	if c.Date == "" {
		return pattern.Today(now, loc), nil
	}
	d, err := time.ParseInLocation("2006-01-02", c.Date, loc)
	if nil != err {
		return time.Time{}, fmt.Errorf("unable to parse date %q: %w", c.Date, err)
	}
	return d, nil
}

// Lanes returns the keys mapped to each lane
func (c *Config) Lanes() []rune {
	return []rune(c.Keys)
}

func DefaultSettingsPath() string {
	if p := os.Getenv(SettingsEnv); p != "" {
		return p
	}
	dir, err := os.UserConfigDir()
	if nil != err {
		return "daily-rhythm.ini"
	}
	return filepath.Join(dir, "daily-rhythm", "settings.ini")
}

// Load parses the command line. Defaults come from the settings file when present.
func Load(args []string) (*Config, error) {
	settingsPath := DefaultSettingsPath()
	for i, a := range args {
		if a == "--config" && i+1 < len(args) {
			settingsPath = args[i+1]
		} else if strings.HasPrefix(a, "--config=") {
			settingsPath = strings.TrimPrefix(a, "--config=")
		}
	}
	settings, err := LoadSettings(settingsPath)
	if nil != err {
		return nil, err
	}

	c := &Config{}
	app := kingpin.New("daily-rhythm", "A daily seeded four lane rhythm game.")
	app.Version(Version)

	app.Flag("config", "Settings file").Default(settingsPath).StringVar(&c.Settings)
	app.Flag("save-settings", "Store speed, frequency, keys and forecast location as the new defaults").BoolVar(&c.SaveSettings)
	app.Flag("speed", "Note speed in field units per second").Default(settings.speed()).Short('s').Float64Var(&c.Speed)
	app.Flag("frequency", "Note frequency multiplier").Default(settings.frequency()).Short('f').Float64Var(&c.Frequency)
	app.Flag("difficulty", "Named frequency preset, overrides --frequency").EnumVar(&c.Difficulty, game.DifficultyNames()...)
	app.Flag("keys", "Keys for the four lanes").Default(settings.keys()).Short('k').StringVar(&c.Keys)
	app.Flag("tick-rate", "Game ticks per second").Default("60").Short('R').Float64Var(&c.TickRate)
	app.Flag("timezone", "Zone that decides the calendar day").Default(pattern.ReferenceZone).StringVar(&c.Timezone)
	app.Flag("date", "Play another day's pattern (YYYY-MM-DD)").StringVar(&c.Date)
	app.Flag("db", "Score and streak database").Default("./rhythm.db").StringVar(&c.Database)
	app.Flag("log-file", "Where to write the log while the game owns the terminal").Default("rhythm.log").StringVar(&c.LogFile)
	app.Flag("mute", "Disable hit sounds").BoolVar(&c.Mute)
	app.Flag("no-weather", "Skip the forecast").BoolVar(&c.NoWeather)
	app.Flag("count-misses", "Count taps that hit nothing in the miss bucket").BoolVar(&c.CountMisses)
	app.Flag("latitude", "Forecast latitude").Default(settings.latitude()).Float64Var(&c.Latitude)
	app.Flag("longitude", "Forecast longitude").Default(settings.longitude()).Float64Var(&c.Longitude)

	app.Command(CommandPlay, "Play today's pattern").Default()
	app.Command(CommandPattern, "Print today's notes")
	app.Command(CommandHistory, "List stored performances of today's pattern")

	c.Command, err = app.Parse(args)
	if nil != err {
		return nil, err
	}

	if err := c.normalise(); nil != err {
		return nil, err
	}
	return c, nil
}

func (c *Config) normalise() error {
	if f, ok := game.Difficulties[c.Difficulty]; ok {
		c.Frequency = f
	}
	c.Frequency = game.ClampFrequency(c.Frequency)
	c.Speed = score.ClampSpeed(c.Speed)
	if len(c.Lanes()) != game.Lanes {
		return errors.New("--keys needs exactly one key per lane")
	}
	seen := map[rune]bool{}
	for _, r := range c.Lanes() {
		if seen[r] {
			return fmt.Errorf("key %q is mapped to more than one lane", r)
		}
		seen[r] = true
	}
	if c.TickRate <= 0 {
		c.TickRate = 60
	}
	return nil
}

// Field builds the lane geometry for the configured speed
func (c *Config) Field() score.Field {
	f := score.DefaultField()
	f.Speed = c.Speed
	return f
}

// Current returns the settings this configuration would persist
func (c *Config) Current() Settings {
	return Settings{
		Speed:     c.Speed,
		Frequency: c.Frequency,
		Keys:      c.Keys,
		Latitude:  c.Latitude,
		Longitude: c.Longitude,
	}
}

func (c *Config) Weather() *weather.Client {
	return weather.NewClient(c.Latitude, c.Longitude)
}

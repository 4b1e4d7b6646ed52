package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/Derek-Wen/daily-rhythm/internal/game"
	"github.com/Derek-Wen/daily-rhythm/internal/score"
	"github.com/Derek-Wen/daily-rhythm/internal/weather"
	"gopkg.in/ini.v1"
)

// Settings are the persistent defaults, read from an ini file:
//
//	[game]
//	speed = 500
//	frequency = 1.2
//	keys = asjk
//
//	[weather]
//	latitude = 40.7128
//	longitude = -74.0060
type Settings struct {
	Speed     float64
	Frequency float64
	Keys      string
	Latitude  float64
	Longitude float64
}

func DefaultSettings() Settings {
	return Settings{
		Speed:     score.DefaultSpeed,
		Frequency: game.DefaultFrequency,
		Keys:      "dfjk",
		Latitude:  weather.DefaultLatitude,
		Longitude: weather.DefaultLongitude,
	}
}

// LoadSettings reads the file at path, a missing file yields the defaults
func LoadSettings(path string) (Settings, error) {
	s := DefaultSettings()
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return s, nil
	}
	f, err := ini.Load(path)
	if nil != err {
		return s, fmt.Errorf("unable to read settings %v: %w", path, err)
	}

	g := f.Section("game")
	s.Speed = g.Key("speed").MustFloat64(s.Speed)
	s.Frequency = g.Key("frequency").MustFloat64(s.Frequency)
	s.Keys = g.Key("keys").MustString(s.Keys)

	w := f.Section("weather")
	s.Latitude = w.Key("latitude").MustFloat64(s.Latitude)
	s.Longitude = w.Key("longitude").MustFloat64(s.Longitude)
	return s, nil
}

// Save writes the settings so the next run starts with them
func (s Settings) Save(path string) error {
	f := ini.Empty()
	g := f.Section("game")
	g.Key("speed").SetValue(s.speed())
	g.Key("frequency").SetValue(s.frequency())
	g.Key("keys").SetValue(s.keys())
	w := f.Section("weather")
	w.Key("latitude").SetValue(s.latitude())
	w.Key("longitude").SetValue(s.longitude())
	if err := f.SaveTo(path); nil != err {
		return fmt.Errorf("unable to write settings %v: %w", path, err)
	}
	return nil
}

func (s Settings) speed() string {
	return strconv.FormatFloat(s.Speed, 'f', -1, 64)
}

func (s Settings) frequency() string {
	return strconv.FormatFloat(s.Frequency, 'f', -1, 64)
}

func (s Settings) keys() string {
	return s.Keys
}

func (s Settings) latitude() string {
	return strconv.FormatFloat(s.Latitude, 'f', -1, 64)
}

func (s Settings) longitude() string {
	return strconv.FormatFloat(s.Longitude, 'f', -1, 64)
}

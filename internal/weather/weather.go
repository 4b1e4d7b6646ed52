package weather

import (
	"context"
	"fmt"
	"io"
	"log"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/tidwall/gjson"
)

const (
	ForecastURL      = "https://api.open-meteo.com/v1/forecast"
	DefaultLatitude  = 37.7749
	DefaultLongitude = -122.4194
	DefaultTimeout   = 3 * time.Second
)

type Condition string

const (
	Clear   Condition = "Clear"
	Cloudy  Condition = "Cloudy"
	Drizzle Condition = "Drizzle"
	Rain    Condition = "Rain"
	Snow    Condition = "Snow"
	Fog     Condition = "Fog"
)

// Reading temperatures are in fahrenheit
type Reading struct {
	Temp      int
	High, Low int
	Condition Condition
	Fallback  bool // The default reading was substituted
}

// Default is shown whenever the forecast cannot be fetched
var Default = Reading{Temp: 65, High: 65, Low: 65, Condition: Clear, Fallback: true}

func (r Reading) String() string {
	return fmt.Sprintf("%v°F %v", r.Temp, r.Condition)
}

// ConditionFor maps a WMO weather code
func ConditionFor(code int) Condition {
	switch {
	case code >= 61 && code <= 67:
		return Rain
	case code >= 71 && code <= 77:
		return Snow
	case code >= 45 && code <= 48:
		return Fog
	case code >= 51 && code <= 57:
		return Drizzle
	case code >= 1 && code <= 3:
		return Cloudy
	}
	return Clear
}

type Client struct {
	HTTP      *http.Client
	URL       string
	Latitude  float64
	Longitude float64
	Timeout   time.Duration
}

func NewClient(latitude, longitude float64) *Client {
	return &Client{
		HTTP:      http.DefaultClient,
		URL:       ForecastURL,
		Latitude:  latitude,
		Longitude: longitude,
		Timeout:   DefaultTimeout,
	}
}

func (c *Client) requestURL() (string, error) {
	u, err := url.Parse(c.URL)
	if nil != err {
		return "", err
	}
	q := u.Query()
	q.Set("latitude", strconv.FormatFloat(c.Latitude, 'f', -1, 64))
	q.Set("longitude", strconv.FormatFloat(c.Longitude, 'f', -1, 64))
	q.Set("current_weather", "true")
	q.Set("temperature_unit", "fahrenheit")
	q.Set("daily", "temperature_2m_max,temperature_2m_min")
	q.Set("timezone", "auto")
	u.RawQuery = q.Encode()
	return u.String(), nil
}

// Fetch returns the current reading, or an error and the default reading
func (c *Client) Fetch(ctx context.Context) (Reading, error) {
	if c.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.Timeout)
		defer cancel()
	}

	u, err := c.requestURL()
	if nil != err {
		return Default, fmt.Errorf("unable to build forecast url: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if nil != err {
		return Default, fmt.Errorf("unable to create forecast request: %w", err)
	}
	resp, err := c.HTTP.Do(req)
	if nil != err {
		return Default, fmt.Errorf("unable to fetch forecast: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Default, fmt.Errorf("forecast returned %v", resp.Status)
	}
	body, err := io.ReadAll(resp.Body)
	if nil != err {
		return Default, fmt.Errorf("unable to read forecast: %w", err)
	}
	return Parse(body)
}

// Parse reads an open-meteo forecast body
func Parse(body []byte) (Reading, error) {
	if !gjson.ValidBytes(body) {
		return Default, fmt.Errorf("forecast is not valid json")
	}
	current := gjson.GetBytes(body, "current_weather")
	if !current.Exists() {
		return Default, fmt.Errorf("forecast has no current weather")
	}
	temp := current.Get("temperature")
	if !temp.Exists() {
		return Default, fmt.Errorf("forecast has no temperature")
	}

	r := Reading{
		Temp:      int(math.Round(temp.Float())),
		Condition: ConditionFor(int(current.Get("weathercode").Int())),
	}
	r.High, r.Low = r.Temp, r.Temp
	if high := gjson.GetBytes(body, "daily.temperature_2m_max.0"); high.Exists() {
		r.High = int(math.Round(high.Float()))
	}
	if low := gjson.GetBytes(body, "daily.temperature_2m_min.0"); low.Exists() {
		r.Low = int(math.Round(low.Float()))
	}
	return r, nil
}

// Watch fetches in the background and delivers exactly one reading on the returned
// channel, the default one on failure. It never blocks the caller.
func (c *Client) Watch(ctx context.Context) <-chan Reading {
	out := make(chan Reading, 1)
	go func() {
		r, err := c.Fetch(ctx)
		if nil != err {
			log.Println("weather fetch failed:", err)
		}
		out <- r
	}()
	return out
}

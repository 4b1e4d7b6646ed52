package weather

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

const forecast = `{
	"latitude": 37.78,
	"longitude": -122.42,
	"current_weather": {"temperature": 58.6, "windspeed": 9.1, "weathercode": 3},
	"daily": {
		"time": ["2024-03-15"],
		"temperature_2m_max": [61.4],
		"temperature_2m_min": [49.5]
	}
}`

var conditionTests = map[int]Condition{
	0:  Clear,
	1:  Cloudy,
	3:  Cloudy,
	45: Fog,
	48: Fog,
	51: Drizzle,
	57: Drizzle,
	61: Rain,
	67: Rain,
	71: Snow,
	77: Snow,
	80: Clear,
	95: Clear,
}

func TestConditionFor(t *testing.T) {
	for code, expected := range conditionTests {
		if c := ConditionFor(code); c != expected {
			t.Errorf("code %v = %v, expected %v", code, c, expected)
		}
	}
}

func TestParse(t *testing.T) {
	r, err := Parse([]byte(forecast))
	if nil != err {
		t.Fatal(err)
	}
	expected := Reading{Temp: 59, High: 61, Low: 50, Condition: Cloudy}
	if r != expected {
		t.Fatalf("reading = %+v, expected %+v", r, expected)
	}
	if r.String() != "59°F Cloudy" {
		t.Fatalf("string = %q", r.String())
	}
}

func TestParseErrors(t *testing.T) {
	for _, body := range []string{"", "not json", `{"daily": {}}`, `{"current_weather": {}}`} {
		r, err := Parse([]byte(body))
		if nil == err {
			t.Errorf("%q: expected an error", body)
		}
		if r != Default {
			t.Errorf("%q: expected the default reading, got %+v", body, r)
		}
	}
}

func TestFetch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("latitude") != "37.7749" || q.Get("longitude") != "-122.4194" || q.Get("temperature_unit") != "fahrenheit" {
			t.Errorf("unexpected query %v", r.URL.RawQuery)
		}
		w.Write([]byte(forecast))
	}))
	defer server.Close()

	c := NewClient(DefaultLatitude, DefaultLongitude)
	c.URL = server.URL
	r, err := c.Fetch(context.Background())
	if nil != err {
		t.Fatal(err)
	}
	if r.Temp != 59 || r.Condition != Cloudy || r.Fallback {
		t.Fatalf("unexpected reading %+v", r)
	}
}

func TestFetchFallback(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusServiceUnavailable)
	}))
	defer server.Close()

	c := NewClient(DefaultLatitude, DefaultLongitude)
	c.URL = server.URL
	r, err := c.Fetch(context.Background())
	if nil == err || r != Default {
		t.Fatalf("expected the default reading and an error, got %+v %v", r, err)
	}
}

func TestWatchTimesOut(t *testing.T) {
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer server.Close()
	defer close(release)

	c := NewClient(DefaultLatitude, DefaultLongitude)
	c.URL = server.URL
	c.Timeout = 50 * time.Millisecond

	select {
	case r := <-c.Watch(context.Background()):
		if r != Default {
			t.Fatalf("expected the default reading, got %+v", r)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("watch did not deliver a reading")
	}
}

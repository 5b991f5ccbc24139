// Package compose turns a forecast record into the greeting message text.
package compose

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/chris/morning/internal/catalog"
	"github.com/chris/morning/internal/headers"
	"github.com/chris/morning/internal/pick"
	"github.com/chris/morning/internal/weather"
)

// Category ids the composer resolves against.
const (
	CategorySky        = 1001
	CategoryMoon       = 1002
	CategoryUV         = 1011
	CategorySeason     = 1012
	CategoryVisibility = 1013
	CategoryWind       = 1014
	CategoryHumidity   = 1015
	CategoryCloud      = 1017
)

// UnknownIcon marks a sky or moon code missing from the catalog.
const UnknownIcon = "❔"

var (
	fallbackSeason     = catalog.Label{Name: "未知", Icon: "?"}
	fallbackHumidity   = catalog.Label{Name: "适宜", Icon: "💧"}
	fallbackUV         = catalog.Label{Name: "正常", Icon: "🏠"}
	fallbackVisibility = catalog.Label{Name: "一般", Icon: "👀"}
	fallbackWind       = catalog.Label{Name: "有风", Icon: "🌬️"}
	fallbackCloud      = catalog.Label{Name: "有云", Icon: "☁️"}
)

// ErrUnknownStyle is returned when a named style is not registered.
var ErrUnknownStyle = errors.New("unknown weather style")

// Engine renders weather messages from a catalog, a header pool and a set
// of styles. It is safe for concurrent use when its Rand is.
type Engine struct {
	catalog *catalog.Store
	headers *headers.Store
	rand    pick.Rand
	styles  []*Style
	byName  map[string]*Style
}

type Option func(*Engine)

// WithRand sets the randomness source for headers, icons and style choice.
func WithRand(r pick.Rand) Option {
	return func(e *Engine) { e.rand = r }
}

// WithStyles replaces the built-in styles.
func WithStyles(styles ...*Style) Option {
	return func(e *Engine) { e.styles = styles }
}

func NewEngine(cat *catalog.Store, hdr *headers.Store, opts ...Option) *Engine {
	e := &Engine{
		catalog: cat,
		headers: hdr,
		rand:    pick.Default(),
		styles:  DefaultStyles(),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.catalog == nil {
		e.catalog = catalog.New()
	}
	e.byName = make(map[string]*Style, len(e.styles))
	for _, s := range e.styles {
		e.byName[s.Name()] = s
	}
	return e
}

// Styles returns the registered style names in registration order.
func (e *Engine) Styles() []string {
	names := make([]string, len(e.styles))
	for i, s := range e.styles {
		names[i] = s.Name()
	}
	return names
}

func (e *Engine) style(name string) (*Style, error) {
	if name == "" {
		return pick.One(e.rand, e.styles)
	}
	s, ok := e.byName[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownStyle, name)
	}
	return s, nil
}

func (e *Engine) resolve(id int, value float64, ok bool, fallback catalog.Label) (catalog.Label, bool) {
	if !ok {
		return catalog.Label{}, false
	}
	cat, _ := e.catalog.CategoryByID(id)
	return cat.Resolve(value, e.rand, fallback), true
}

func (e *Engine) codeIcon(code string) string {
	n, err := strconv.Atoi(strings.TrimSpace(code))
	if err != nil {
		return UnknownIcon
	}
	item, ok := e.catalog.LookupCode(n)
	if !ok {
		return UnknownIcon
	}
	return item.Icon(e.rand)
}

// Facts resolves every placeholder value for rec. Labels derived from a
// numeric field are present only when that field parses.
func (e *Engine) Facts(rec weather.Record, today time.Time) Facts {
	f := Facts{}
	f.set("date", rec.Date)
	f.set("temp_min", rec.TempMin)
	f.set("temp_max", rec.TempMax)
	f.set("text_day", rec.TextDay)
	f.set("text_night", rec.TextNight)
	f.set("wind_dir_day", rec.WindDirDay)
	f.set("wind_scale_day", rec.WindScaleDay)
	f.set("wind_dir_night", rec.WindDirNight)
	f.set("wind_scale_night", rec.WindScaleNight)
	f.set("humidity", rec.Humidity)
	f.set("uv_index", rec.UVIndex)
	f.set("precip", rec.Precip)
	f.set("vis", rec.Visibility)
	f.set("cloud", rec.Cloud)
	f.set("pressure", rec.Pressure)
	f.set("sunrise", rec.Sunrise)
	f.set("sunset", rec.Sunset)
	f.set("moon_phase", rec.MoonPhase)
	f.set("moonrise", rec.Moonrise)
	f.set("moonset", rec.Moonset)

	if rec.TextDay != "" {
		f.set("day_icon", e.codeIcon(rec.IconDay))
	}
	if rec.TextNight != "" {
		f.set("night_icon", e.codeIcon(rec.IconNight))
	}
	if rec.MoonPhase != "" {
		f.set("moon_icon", e.codeIcon(rec.MoonPhaseIcon))
	}

	season, _ := e.resolve(CategorySeason, float64(today.Month()), true, fallbackSeason)
	f.set("season", season.Name)
	f.set("season_icon", season.Icon)

	labels := []struct {
		prefix   string
		id       int
		field    string
		parse    func(string) (float64, bool)
		fallback catalog.Label
	}{
		{"humidity", CategoryHumidity, rec.Humidity, weather.Number, fallbackHumidity},
		{"uv", CategoryUV, rec.UVIndex, weather.Number, fallbackUV},
		{"vis", CategoryVisibility, rec.Visibility, weather.Number, fallbackVisibility},
		{"wind", CategoryWind, rec.WindScaleDay, weather.Scale, fallbackWind},
		{"cloud", CategoryCloud, rec.Cloud, weather.Number, fallbackCloud},
	}
	for _, l := range labels {
		v, parsed := l.parse(l.field)
		if label, ok := e.resolve(l.id, v, parsed, l.fallback); ok {
			f.set(l.prefix+"_label", label.Name)
			f.set(l.prefix+"_icon", label.Icon)
		}
	}
	return f
}

// Render returns the message body for rec in the named style. An empty
// name picks a style at random.
func (e *Engine) Render(style string, rec weather.Record, today time.Time) (string, error) {
	s, err := e.style(style)
	if err != nil {
		return "", err
	}
	return strings.Join(s.Render(e.Facts(rec, today)), "\n"), nil
}

// WeatherMessage prefixes the rendered body with a random header phrase.
func (e *Engine) WeatherMessage(style string, rec weather.Record, today time.Time) (string, error) {
	header, err := e.headers.Choice(e.rand)
	if err != nil {
		return "", err
	}
	body, err := e.Render(style, rec, today)
	if err != nil {
		return "", err
	}
	return header + "\n\n" + body, nil
}

// RandomStyleMessage is WeatherMessage with a uniformly chosen style.
func (e *Engine) RandomStyleMessage(rec weather.Record, today time.Time) (string, error) {
	return e.WeatherMessage("", rec, today)
}

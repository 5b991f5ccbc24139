// Package weather defines the daily forecast record consumed by the message
// composer. Values arrive as strings from upstream and any optional field
// may be empty.
package weather

import (
	"strconv"
	"strings"
)

// Record is one day of forecast data.
type Record struct {
	Date           string `json:"fxDate"`
	Sunrise        string `json:"sunrise"`
	Sunset         string `json:"sunset"`
	Moonrise       string `json:"moonrise"`
	Moonset        string `json:"moonset"`
	MoonPhase      string `json:"moonPhase"`
	MoonPhaseIcon  string `json:"moonPhaseIcon"`
	TempMax        string `json:"tempMax"`
	TempMin        string `json:"tempMin"`
	IconDay        string `json:"iconDay"`
	TextDay        string `json:"textDay"`
	IconNight      string `json:"iconNight"`
	TextNight      string `json:"textNight"`
	Wind360Day     string `json:"wind360Day"`
	WindDirDay     string `json:"windDirDay"`
	WindScaleDay   string `json:"windScaleDay"`
	WindSpeedDay   string `json:"windSpeedDay"`
	Wind360Night   string `json:"wind360Night"`
	WindDirNight   string `json:"windDirNight"`
	WindScaleNight string `json:"windScaleNight"`
	WindSpeedNight string `json:"windSpeedNight"`
	Precip         string `json:"precip"`
	UVIndex        string `json:"uvIndex"`
	Humidity       string `json:"humidity"`
	Pressure       string `json:"pressure"`
	Visibility     string `json:"vis"`
	Cloud          string `json:"cloud"`
}

// Number parses a numeric field. ok is false for empty or non-numeric input.
func Number(field string) (v float64, ok bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
	return v, err == nil
}

// Scale parses a wind scale such as "1-3", returning the upper bound.
func Scale(field string) (float64, bool) {
	field = strings.TrimSpace(field)
	if i := strings.LastIndex(field, "-"); i > 0 {
		field = field[i+1:]
	}
	return Number(field)
}

// Sample is a fixed record used for offline previews and tests.
func Sample() Record {
	return Record{
		Date:           "2025-04-12",
		Sunrise:        "06:52",
		Sunset:         "19:35",
		Moonrise:       "17:48",
		Moonset:        "05:40",
		MoonPhase:      "盈凸月",
		MoonPhaseIcon:  "803",
		TempMax:        "26",
		TempMin:        "16",
		IconDay:        "101",
		TextDay:        "多云",
		IconNight:      "151",
		TextNight:      "多云",
		Wind360Day:     "0",
		WindDirDay:     "北风",
		WindScaleDay:   "1-3",
		WindSpeedDay:   "3",
		Wind360Night:   "0",
		WindDirNight:   "北风",
		WindScaleNight: "1-3",
		WindSpeedNight: "3",
		Precip:         "0.0",
		UVIndex:        "6",
		Humidity:       "72",
		Pressure:       "968",
		Visibility:     "24",
		Cloud:          "25",
	}
}

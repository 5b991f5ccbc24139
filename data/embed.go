// Package data embeds the default datasets shipped with the binary.
package data

import "embed"

const (
	WeatherFile = "weather.json"
	HeaderFile  = "header.json"
)

//go:embed weather.json header.json
var FS embed.FS

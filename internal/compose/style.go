package compose

import (
	"bytes"
	"fmt"
	"text/template"
)

// Facts maps placeholder names to resolved display values. Absent keys mean
// the value is unknown.
type Facts map[string]string

func (f Facts) set(key, value string) {
	if value != "" {
		f[key] = value
	}
}

// Style is a named, ordered list of line templates. A line whose
// placeholders are not all present in the facts is dropped.
type Style struct {
	name  string
	lines []*template.Template
}

// NewStyle parses each line as a text/template using {{.key}} placeholders.
func NewStyle(name string, lines ...string) (*Style, error) {
	s := &Style{name: name, lines: make([]*template.Template, 0, len(lines))}
	for i, line := range lines {
		t, err := template.New(fmt.Sprintf("%s:%d", name, i)).Option("missingkey=error").Parse(line)
		if err != nil {
			return nil, fmt.Errorf("style %s line %d: %w", name, i, err)
		}
		s.lines = append(s.lines, t)
	}
	return s, nil
}

func mustStyle(name string, lines ...string) *Style {
	s, err := NewStyle(name, lines...)
	if err != nil {
		panic(err)
	}
	return s
}

func (s *Style) Name() string { return s.name }

// Render executes every line against facts and returns the surviving lines.
func (s *Style) Render(facts Facts) []string {
	var buf bytes.Buffer
	out := make([]string, 0, len(s.lines))
	for _, t := range s.lines {
		buf.Reset()
		if err := t.Execute(&buf, facts); err != nil {
			continue
		}
		out = append(out, buf.String())
	}
	return out
}

// DefaultStyles are the built-in weather layouts. classic lists every
// field on its own line.
func DefaultStyles() []*Style {
	return []*Style{classic, brief, cozy, report}
}

var classic = mustStyle("classic",
	"📅 日期: {{.date}} | {{.season}} {{.season_icon}}",
	"🌡️ 温度: {{.temp_min}}°C ~ {{.temp_max}}°C",
	"☀️ 白天: {{.text_day}} {{.day_icon}}",
	"🌙 夜间: {{.text_night}} {{.night_icon}}",
	"🌬️ 白天风向: {{.wind_dir_day}} {{.wind_scale_day}}级",
	"🌌 夜间风向: {{.wind_dir_night}} {{.wind_scale_night}}级",
	"💧 湿度: {{.humidity_label}} {{.humidity_icon}} {{.humidity}}%",
	"☂️ 紫外线: {{.uv_label}} {{.uv_icon}} 等级{{.uv_index}}",
	"🌧️ 降水: {{.precip}}mm",
	"👀 能见度: {{.vis}}公里",
	"☁️ 云量: {{.cloud}}%",
	"📊 气压: {{.pressure}}hPa",
	"🌅 日出: {{.sunrise}} | 日落: {{.sunset}}",
	"🌙 月相: {{.moon_phase}} {{.moon_icon}}",
	"🌖 月出: {{.moonrise}} | 月落: {{.moonset}}",
)

var brief = mustStyle("brief",
	"📅 {{.date}} {{.season_icon}} {{.text_day}}{{.day_icon}} {{.temp_min}}~{{.temp_max}}°C",
	"💧 {{.humidity}}% {{.humidity_label}} | ☂️ UV {{.uv_index}} {{.uv_label}}",
	"🌬️ {{.wind_dir_day}} {{.wind_scale_day}}级 {{.wind_label}}",
	"🌅 {{.sunrise}} ~ 🌇 {{.sunset}}",
)

var cozy = mustStyle("cozy",
	"{{.season_icon}} {{.season}}的{{.date}}，白天{{.text_day}}{{.day_icon}}，夜里{{.text_night}}{{.night_icon}}",
	"🌡️ 气温在 {{.temp_min}}°C 到 {{.temp_max}}°C 之间",
	"{{.wind_icon}} 白天吹{{.wind_dir_day}}，{{.wind_label}}（{{.wind_scale_day}}级）",
	"{{.humidity_icon}} 空气{{.humidity_label}}，湿度 {{.humidity}}%",
	"{{.uv_icon}} 紫外线{{.uv_label}}（{{.uv_index}}级）",
	"{{.vis_icon}} 能见度{{.vis_label}}，约 {{.vis}} 公里",
	"{{.cloud_icon}} 云量 {{.cloud}}%，{{.cloud_label}}",
	"{{.moon_icon}} 今晚是{{.moon_phase}}，{{.moonrise}} 月出",
)

var report = mustStyle("report",
	"【天气播报】{{.date}} {{.season}}{{.season_icon}}",
	"━━━━━━━━━━━━",
	"▸ 白天 {{.text_day}} {{.day_icon}} / 夜间 {{.text_night}} {{.night_icon}}",
	"▸ 气温 {{.temp_min}}~{{.temp_max}}°C",
	"▸ 风况 {{.wind_dir_day}} {{.wind_scale_day}}级 {{.wind_icon}}",
	"▸ 湿度 {{.humidity}}% {{.humidity_label}}",
	"▸ 紫外线 {{.uv_index}} {{.uv_label}} {{.uv_icon}}",
	"▸ 能见度 {{.vis}}km {{.vis_label}} {{.vis_icon}}",
	"▸ 降水 {{.precip}}mm · 云量 {{.cloud}}% · 气压 {{.pressure}}hPa",
	"▸ 日出 {{.sunrise}} · 日落 {{.sunset}}",
)

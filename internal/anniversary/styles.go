package anniversary

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/chris/morning/internal/pick"
)

var ErrUnknownStyle = errors.New("unknown anniversary style")

// Style names one rendering of a Snapshot.
type Style string

const (
	StyleDetailed  Style = "detailed"
	StyleRomantic  Style = "romantic"
	StyleCute      Style = "cute"
	StylePoetic    Style = "poetic"
	StyleFunny     Style = "funny"
	StyleMilestone Style = "milestone"
)

// Styles lists every style; random selection is uniform over it.
var Styles = []Style{StyleDetailed, StyleRomantic, StyleCute, StylePoetic, StyleFunny, StyleMilestone}

type renderer func(s Snapshot, r pick.Rand) []string

var renderers = map[Style]renderer{
	StyleDetailed:  detailed,
	StyleRomantic:  romantic,
	StyleCute:      cute,
	StylePoetic:    poetic,
	StyleFunny:     funny,
	StyleMilestone: milestone,
}

var romanticAnalogies = []string{
	"初生的朝阳，充满希望和温暖",
	"绽放的花朵，美丽而芬芳",
	"成熟的果实，甜蜜而充实",
	"陈年的美酒，越久越香醇",
	"永恒的星辰，闪耀而持久",
	"深海的珍珠，珍贵而难得",
	"山间的清泉，纯净而甘甜",
}

var poeticMetaphors = []string{
	"长河流水，绵延不绝",
	"青山不改，绿水长流",
	"明月清风，相伴永远",
	"琴瑟和鸣，岁月静好",
	"花开并蒂，莲生同心",
	"云卷云舒，不离不弃",
	"星辰大海，共赴前程",
}

const (
	longDate = "2006年01月02日"
	dotDate  = "2006.01.02"
)

// ParseStyle validates a style name. The empty string is accepted and
// means "pick at random".
func ParseStyle(name string) (Style, error) {
	if name == "" {
		return "", nil
	}
	st := Style(strings.ToLower(strings.TrimSpace(name)))
	if _, ok := renderers[st]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownStyle, name)
	}
	return st, nil
}

// Render formats s in this style.
func (st Style) Render(s Snapshot, r pick.Rand) (string, error) {
	render, ok := renderers[st]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownStyle, string(st))
	}
	return strings.Join(render(s, r), "\n"), nil
}

// Generate calculates the snapshot for (start, current) and renders it in
// style, or in a uniformly chosen style when style is empty.
func Generate(start, current time.Time, style Style, r pick.Rand) (string, error) {
	snap, err := Calculate(start, current)
	if err != nil {
		return "", err
	}
	if style == "" {
		style, _ = pick.One(r, Styles)
	}
	return style.Render(snap, r)
}

func detailed(s Snapshot, _ pick.Rand) []string {
	return []string{
		"💕 我们的纪念日统计 💕",
		strings.Repeat("═", 15),
		"📅 相识日期: " + s.Start.Format(longDate),
		"📅 今天日期: " + s.Current.Format(longDate),
		"",
		fmt.Sprintf("✨ 总天数: %d 天", s.TotalDays),
		"📆 " + s.Weekly.Message(),
		"🌙 " + s.Monthly.Message(),
		"🎉 " + s.Yearly.Message(),
		"",
		"🎯 下一个纪念日:",
		"   " + s.Next.Message(),
		"",
		"🌟 爱情指数:",
		fmt.Sprintf("   💖 %d/100 分", s.LoveScore),
	}
}

func romantic(s Snapshot, r pick.Rand) []string {
	days := s.TotalDays
	analogy, _ := pick.One(r, romanticAnalogies)
	return []string{
		"🌹 致我最爱的人 🌹",
		strings.Repeat("❤️", 15),
		fmt.Sprintf("从 %s 开始", s.Start.Format(longDate)),
		fmt.Sprintf("到 %s 的此刻", s.Current.Format(longDate)),
		"",
		fmt.Sprintf("我们已经相爱 %d 个日夜", days),
		fmt.Sprintf("相当于 %d 个月 %d 天的浪漫", days/30, days%30),
		fmt.Sprintf("也就是 %d 年 %d 个月的甜蜜", days/365, (days%365)/30),
		"",
		"💝 我们的爱情就像:",
		"   " + analogy,
		"",
		"🌈 每一天都因为有你而更加美好",
		"✨ 期待我们的每一个明天",
	}
}

func cute(s Snapshot, _ pick.Rand) []string {
	days := s.TotalDays
	return []string{
		"🐰🎀 纪念日小贴士 🎀🐰",
		strings.Repeat("🌸", 20),
		"📅 开始日期: " + s.Start.Format(dotDate),
		"⏰ 今天日期: " + s.Current.Format(dotDate),
		"",
		fmt.Sprintf("🐾 我们已经一起: %d 天啦！", days),
		fmt.Sprintf("🦄 相当于: %d 周 %d 天", days/7, days%7),
		fmt.Sprintf("🍰 月亮姐姐见证了我们: %d 个月", days/30),
		"",
		"🎁 下一个惊喜日:",
		"   🎯 " + s.Next.Message(),
		"",
		"💫 爱情魔法值:",
		fmt.Sprintf("   ✨ %d%% 充满魔力！", s.LoveScore),
	}
}

func poetic(s Snapshot, r pick.Rand) []string {
	days := s.TotalDays
	metaphor, _ := pick.One(r, poeticMetaphors)
	return []string{
		"📜 时光的诗篇 📜",
		"──────────────",
		"初遇于 " + s.Start.Format(longDate),
		"相守至 " + s.Current.Format(longDate),
		"",
		fmt.Sprintf("🌅 %d 个日出日落", days),
		fmt.Sprintf("🌙 %d 回月圆月缺", days/30),
		fmt.Sprintf("🎋 %d 度春夏秋冬", days/365),
		"",
		"💞 情如:",
		"   " + metaphor,
		"",
		"🎑 愿时光静好，与君语",
		"🌌 愿细水流年，与君同",
	}
}

func funny(s Snapshot, _ pick.Rand) []string {
	days := s.TotalDays
	return []string{
		"😂 爱情生存报告 😂",
		strings.Repeat("🎪", 15),
		fmt.Sprintf("从 %s 开始", s.Start.Format(longDate)),
		fmt.Sprintf("你已经被我'烦'了 %d 天！", days),
		"",
		"📊 生存数据:",
		fmt.Sprintf("   🎯 忍耐等级: %d/100", min(100, days/10)),
		fmt.Sprintf("   😜 搞笑次数: %d 次", days*3),
		fmt.Sprintf("   🍔 一起吃饭: %d 顿", days*2),
		"",
		"🏆 成就解锁:",
		fmt.Sprintf("   ✅ 成功相处 %d 天", days),
		"   🎉 下一个成就: " + s.Next.Message(),
		"",
		"💕 总结: 继续互相'伤害'吧！",
	}
}

func milestone(s Snapshot, _ pick.Rand) []string {
	days := s.TotalDays
	return []string{
		"🏆 爱情里程碑 🏆",
		strings.Repeat("⭐", 20),
		fmt.Sprintf("🎯 总成就点数: %d", days),
		"📅 旅程开始: " + s.Start.Format(dotDate),
		"",
		"🎖️ 已达成里程碑:",
		fmt.Sprintf("   ✅ 第一周 (%s)", reachedOr(days, 7)),
		fmt.Sprintf("   ✅ 第一个月 (%s)", reachedOr(days, 30)),
		fmt.Sprintf("   ✅ 第一百天 (%s)", reachedOr(days, 100)),
		fmt.Sprintf("   ✅ 第一年 (%s)", reachedOr(days, 365)),
		"",
		"🔜 下一个里程碑:",
		"   🎯 " + s.Next.Message(),
		"",
		"💫 爱情能量值:",
		fmt.Sprintf("   ✨ %d/100", s.LoveScore),
	}
}

func reachedOr(days, mark int) string {
	if days >= mark {
		return strconv.Itoa(mark)
	}
	return "进行中"
}

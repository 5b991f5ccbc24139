// Package anniversary derives day, week, month and year counts between a
// start date and today, the upcoming milestones and a bounded love score,
// and renders them in one of several message styles.
package anniversary

import (
	"errors"
	"fmt"
	"time"
)

// ErrDateOrder is returned when the start date lies after the current date.
var ErrDateOrder = errors.New("开始日期不能晚于当前日期")

// SpecialDays are the fixed milestones, ascending.
var SpecialDays = []int{7, 14, 30, 100, 365, 500, 730, 1000, 1825, 3650, 10000}

var specialNames = map[int]string{
	7:     "一周",
	14:    "两周",
	30:    "一个月",
	100:   "百日",
	365:   "一周年",
	500:   "五百天",
	730:   "两周年",
	1000:  "千日",
	1825:  "五周年",
	3650:  "十周年",
	10000: "万日",
}

const day = 24 * time.Hour

// Snapshot holds every figure derived from one (start, current) pair.
type Snapshot struct {
	Start     time.Time
	Current   time.Time
	TotalDays int
	Weekly    Weekly
	Monthly   Monthly
	Yearly    Yearly
	Special   []Milestone
	Next      Next
	LoveScore int
}

func (s Snapshot) DaysMessage() string {
	return fmt.Sprintf("已经相识 %d 天", s.TotalDays)
}

type Weekly struct {
	Weeks         int
	RemainingDays int
}

func (w Weekly) Message() string {
	return fmt.Sprintf("已经相识 %d 周 %d 天", w.Weeks, w.RemainingDays)
}

// Monthly counts completed calendar months. NextMonthDays uses a 30-day
// month from the start date, which drifts from the calendar over long spans.
type Monthly struct {
	Months        int
	NextMonthDays int
}

func (m Monthly) Message() string {
	return fmt.Sprintf("已经相识 %d 个月", m.Months)
}

type Yearly struct {
	Years        int
	NextYearDays int
}

func (y Yearly) Message() string {
	return fmt.Sprintf("已经相识 %d 年", y.Years)
}

// Milestone is one of SpecialDays relative to the total day count.
type Milestone struct {
	Days      int
	Reached   bool
	DaysUntil int
	Name      string
}

func (m Milestone) Message() string {
	if m.Reached {
		return fmt.Sprintf("第 %d 天纪念日 (%s)", m.Days, m.Name)
	}
	return fmt.Sprintf("距离第 %d 天纪念日还有 %d 天", m.Days, m.DaysUntil)
}

type NextKind string

const (
	NextSpecial NextKind = "special"
	NextMonthly NextKind = "monthly"
	NextYearly  NextKind = "yearly"
)

// Next is the soonest upcoming anniversary. Days is only set for
// NextSpecial.
type Next struct {
	Kind      NextKind
	Days      int
	DaysUntil int
}

func (n Next) Message() string {
	switch n.Kind {
	case NextSpecial:
		return fmt.Sprintf("距离第 %d 天纪念日还有 %d 天", n.Days, n.DaysUntil)
	case NextMonthly:
		return fmt.Sprintf("距离下个月纪念日还有 %d 天", n.DaysUntil)
	default:
		return fmt.Sprintf("距离周年纪念日还有 %d 天", n.DaysUntil)
	}
}

// Calculate derives a Snapshot. Only the calendar dates of start and
// current are used; clock time and location are ignored.
func Calculate(start, current time.Time) (Snapshot, error) {
	start, current = civil(start), civil(current)
	if start.After(current) {
		return Snapshot{}, fmt.Errorf("%w: %s > %s", ErrDateOrder, start.Format(time.DateOnly), current.Format(time.DateOnly))
	}
	total := daysBetween(start, current)
	return Snapshot{
		Start:     start,
		Current:   current,
		TotalDays: total,
		Weekly:    Weekly{Weeks: total / 7, RemainingDays: total % 7},
		Monthly:   monthly(start, current),
		Yearly:    yearly(start, current),
		Special:   milestones(total),
		Next:      next(start, current, total),
		LoveScore: LoveScore(total),
	}, nil
}

// LoveScore grows one point per ten days plus ten bonus points per hundred
// days (bonus capped at 50), saturating at 100.
func LoveScore(days int) int {
	base := min(100, days/10)
	bonus := min(50, days/100*10)
	return min(100, base+bonus)
}

func monthly(start, current time.Time) Monthly {
	months := (current.Year()-start.Year())*12 + int(current.Month()-start.Month())
	if current.Day() < start.Day() {
		months--
	}
	mark := start.AddDate(0, 0, 30*(months+1))
	return Monthly{Months: months, NextMonthDays: max(0, daysBetween(current, mark))}
}

func yearly(start, current time.Time) Yearly {
	years := current.Year() - start.Year()
	if current.Month() < start.Month() || (current.Month() == start.Month() && current.Day() < start.Day()) {
		years--
	}
	return Yearly{Years: years, NextYearDays: max(0, daysBetween(current, nextYearMark(start, current)))}
}

func milestones(total int) []Milestone {
	out := make([]Milestone, 0, len(SpecialDays))
	for _, d := range SpecialDays {
		m := Milestone{Days: d, Name: specialName(d)}
		if total >= d {
			m.Reached = true
		} else {
			m.DaysUntil = d - total
		}
		out = append(out, m)
	}
	return out
}

func next(start, current time.Time, total int) Next {
	for _, d := range SpecialDays {
		if d > total {
			return Next{Kind: NextSpecial, Days: d, DaysUntil: d - total}
		}
	}
	untilMonth := daysBetween(current, start.AddDate(0, 0, 30*(total/30+1)))
	untilYear := daysBetween(current, nextYearMark(start, current))
	if untilMonth <= untilYear {
		return Next{Kind: NextMonthly, DaysUntil: untilMonth}
	}
	return Next{Kind: NextYearly, DaysUntil: untilYear}
}

// nextYearMark is the start date's month and day in the current year, or in
// the following year once it has passed.
func nextYearMark(start, current time.Time) time.Time {
	mark := anniversaryIn(current.Year(), start)
	if mark.Before(current) {
		mark = anniversaryIn(current.Year()+1, start)
	}
	return mark
}

// anniversaryIn places start's month and day in year. A 29 February start
// falls on 28 February in common years.
func anniversaryIn(year int, start time.Time) time.Time {
	d := start.Day()
	if start.Month() == time.February && d == 29 && !isLeap(year) {
		d = 28
	}
	return time.Date(year, start.Month(), d, 0, 0, 0, 0, time.UTC)
}

func specialName(days int) string {
	if name, ok := specialNames[days]; ok {
		return name
	}
	return fmt.Sprintf("%d天", days)
}

func civil(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func daysBetween(from, to time.Time) int {
	return int(to.Sub(from) / day)
}

func isLeap(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

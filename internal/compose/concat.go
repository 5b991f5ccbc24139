package compose

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"
)

// Ellipsis terminates a truncated message.
const Ellipsis = "..."

// DefaultSeparator joins message parts.
const DefaultSeparator = "\n\n"

type concatOptions struct {
	reminder  func() string
	separator string
	maxLength int
}

type ConcatOption func(*concatOptions)

// WithReminder appends the reminder text as a final part when non-empty.
func WithReminder(f func() string) ConcatOption {
	return func(o *concatOptions) { o.reminder = f }
}

func WithSeparator(sep string) ConcatOption {
	return func(o *concatOptions) { o.separator = sep }
}

// WithMaxLength caps the result at n characters. Zero or less disables the cap.
func WithMaxLength(n int) ConcatOption {
	return func(o *concatOptions) { o.maxLength = n }
}

// Concat joins the non-empty parts in order. When a max length is set and
// exceeded, the result is cut to exactly that many characters, the last
// three being Ellipsis.
func Concat(parts []string, opts ...ConcatOption) string {
	o := concatOptions{separator: DefaultSeparator}
	for _, opt := range opts {
		opt(&o)
	}

	kept := make([]string, 0, len(parts)+1)
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	if o.reminder != nil {
		if r := o.reminder(); r != "" {
			kept = append(kept, r)
		}
	}
	return Truncate(strings.Join(kept, o.separator), o.maxLength)
}

// Truncate shortens s to max runes, ending in Ellipsis. max <= 0 is a no-op.
func Truncate(s string, max int) string {
	if max <= 0 || utf8.RuneCountInString(s) <= max {
		return s
	}
	if max <= len(Ellipsis) {
		return Ellipsis[:max]
	}
	runes := []rune(s)
	return string(runes[:max-len(Ellipsis)]) + Ellipsis
}

// DailyReminder is the optional closing line for now's date.
func DailyReminder(now time.Time) string {
	return fmt.Sprintf("⏰ 每日提醒：今天是%d月%d日，记得保持好心情哦！", int(now.Month()), now.Day())
}

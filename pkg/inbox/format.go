package inbox

import (
	"fmt"
	"time"

	"golang.org/x/text/language"
)

// TimeFormatter renders stored timestamps as relative labels, falling back
// to an absolute date in the locale's day/month order once the record is a
// week old.
type TimeFormatter struct {
	layout string
}

// supportedLocales drives layout matching. The first tag is the fallback
// for unmatched locales. Month-first ordering is the US convention;
// everything else gets day-first.
var supportedLocales = language.NewMatcher([]language.Tag{
	language.English,
	language.AmericanEnglish, // month-first
	language.German,
	language.French,
	language.Spanish,
})

// NewTimeFormatter picks the absolute-date layout for the given locale tag.
func NewTimeFormatter(tag language.Tag) *TimeFormatter {
	matched, _, _ := supportedLocales.Match(tag)
	layout := "2 Jan 2006"
	if matched == language.AmericanEnglish {
		layout = "Jan 2, 2006"
	}
	return &TimeFormatter{layout: layout}
}

// Relative renders a stored epoch-millisecond timestamp relative to now:
// "Just now" under a minute, then minutes, hours, and days, and an absolute
// date from seven days on.
func (f *TimeFormatter) Relative(timestampMilli int64, now time.Time) string {
	t := time.UnixMilli(timestampMilli).In(now.Location())
	elapsed := now.Sub(t)

	switch {
	case elapsed < time.Minute:
		return "Just now"
	case elapsed < time.Hour:
		return fmt.Sprintf("%dm ago", int(elapsed.Minutes()))
	case elapsed < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(elapsed.Hours()))
	case elapsed < 7*24*time.Hour:
		return fmt.Sprintf("%dd ago", int(elapsed.Hours()/24))
	}
	return t.Format(f.layout)
}

// FormatRelativeTime is the package-level shortcut using the American
// English layout.
func FormatRelativeTime(timestampMilli int64, now time.Time) string {
	return NewTimeFormatter(language.AmericanEnglish).Relative(timestampMilli, now)
}

package inbox

import "time"

// Groups is the date partition of an inbox listing. Every input record
// falls into exactly one bucket; the split uses local-midnight boundaries.
type Groups struct {
	Today     []Stored `json:"today"`
	Yesterday []Stored `json:"yesterday"`
	ThisWeek  []Stored `json:"this_week"` // older than yesterday, within the last seven days
	Older     []Stored `json:"older"`
}

// GroupByDate partitions items by their stored timestamp relative to now.
func GroupByDate(items []Stored, now time.Time) Groups {
	startToday := startOfDay(now)
	startYesterday := startToday.AddDate(0, 0, -1)
	startWeek := startToday.AddDate(0, 0, -7)

	var g Groups
	for _, item := range items {
		ts := time.UnixMilli(item.Timestamp).In(now.Location())
		switch {
		case !ts.Before(startToday):
			g.Today = append(g.Today, item)
		case !ts.Before(startYesterday):
			g.Yesterday = append(g.Yesterday, item)
		case !ts.Before(startWeek):
			g.ThisWeek = append(g.ThisWeek, item)
		default:
			g.Older = append(g.Older, item)
		}
	}
	return g
}

func startOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}

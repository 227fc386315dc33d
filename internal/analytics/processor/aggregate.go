package processor

import (
	"math"
	"sort"
	"time"

	"scriptvault/internal/store"

	"github.com/google/uuid"
)

const (
	// DashboardWindow is the number of newest events the dashboard folds over
	DashboardWindow = 1000
	// RecentFeedSize is the length of the recent events feed
	RecentFeedSize = 20
	// TopCountries is the number of countries kept in the histogram
	TopCountries = 8
	// ActivityDays is the length of the daily activity series
	ActivityDays = 7
	// UnknownScriptTitle labels feed entries whose script no longer exists
	UnknownScriptTitle = "Unknown"

	dayKeyLayout = "2006-01-02"
)

// ScriptStats holds per-script counts within the window
type ScriptStats struct {
	Views  int `json:"views"`
	Copies int `json:"copies"`
}

// CountryCount is one bar of the country histogram
type CountryCount struct {
	Country string `json:"country"`
	Count   int    `json:"count"`
}

// RecentEvent is one entry of the recent events feed
type RecentEvent struct {
	ScriptID  uuid.UUID `json:"script_id"`
	Title     string    `json:"title"`
	EventType string    `json:"event_type"`
	Country   *string   `json:"country"`
	CreatedAt time.Time `json:"created_at"`
}

// DayActivity is the event count of one UTC calendar day
type DayActivity struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

// Dashboard is the aggregate view over the event window
type Dashboard struct {
	PerScript    map[uuid.UUID]ScriptStats `json:"per_script"`
	TotalViews   int                       `json:"total_views"`
	TotalCopies  int                       `json:"total_copies"`
	CopyRate     int                       `json:"copy_rate"`
	TopCountries []CountryCount            `json:"top_countries"`
	Recent       []RecentEvent             `json:"recent"`
	Activity     []DayActivity             `json:"activity"`
	MaxActivity  int                       `json:"max_activity"`
}

// Aggregate folds a newest-first event window into the dashboard. Scripts
// with no events in the window have no PerScript entry. Events of unknown
// type count toward nothing except the daily activity series.
func Aggregate(events []store.AnalyticsEvent, scripts []store.Script, now time.Time) Dashboard {
	titles := make(map[uuid.UUID]string, len(scripts))
	for _, s := range scripts {
		titles[s.ID] = s.Title
	}

	dashboard := Dashboard{
		PerScript:    make(map[uuid.UUID]ScriptStats),
		TopCountries: []CountryCount{},
		Recent:       []RecentEvent{},
	}

	countryCounts := make(map[string]int)
	var countryOrder []string

	for _, e := range events {
		stats := dashboard.PerScript[e.ScriptID]
		switch e.EventType {
		case store.EventTypeView:
			stats.Views++
			dashboard.TotalViews++
			if e.Country != nil && *e.Country != "" {
				if _, seen := countryCounts[*e.Country]; !seen {
					countryOrder = append(countryOrder, *e.Country)
				}
				countryCounts[*e.Country]++
			}
		case store.EventTypeCopy:
			stats.Copies++
			dashboard.TotalCopies++
		default:
			continue
		}
		dashboard.PerScript[e.ScriptID] = stats
	}

	dashboard.CopyRate = copyRate(dashboard.TotalCopies, dashboard.TotalViews)
	dashboard.TopCountries = topCountries(countryOrder, countryCounts)

	for i := 0; i < len(events) && i < RecentFeedSize; i++ {
		e := events[i]
		title, ok := titles[e.ScriptID]
		if !ok || title == "" {
			title = UnknownScriptTitle
		}
		dashboard.Recent = append(dashboard.Recent, RecentEvent{
			ScriptID:  e.ScriptID,
			Title:     title,
			EventType: e.EventType,
			Country:   e.Country,
			CreatedAt: e.CreatedAt,
		})
	}

	dashboard.Activity = dailyActivity(events, now)
	dashboard.MaxActivity = 1
	for _, day := range dashboard.Activity {
		if day.Count > dashboard.MaxActivity {
			dashboard.MaxActivity = day.Count
		}
	}

	return dashboard
}

// copyRate returns round(copies / views * 100), or 0 when there are no views
func copyRate(copies, views int) int {
	if views == 0 {
		return 0
	}
	return int(math.Round(float64(copies) / float64(views) * 100))
}

// topCountries sorts by count descending, ties keeping first-seen order
func topCountries(order []string, counts map[string]int) []CountryCount {
	out := make([]CountryCount, 0, len(order))
	for _, country := range order {
		out = append(out, CountryCount{Country: country, Count: counts[country]})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Count > out[j].Count
	})
	if len(out) > TopCountries {
		out = out[:TopCountries]
	}
	return out
}

// dailyActivity counts events per UTC day for the ActivityDays days ending on now
func dailyActivity(events []store.AnalyticsEvent, now time.Time) []DayActivity {
	now = now.UTC()
	days := make([]DayActivity, ActivityDays)
	index := make(map[string]int, ActivityDays)
	for i := 0; i < ActivityDays; i++ {
		key := now.AddDate(0, 0, i-(ActivityDays-1)).Format(dayKeyLayout)
		days[i] = DayActivity{Date: key}
		index[key] = i
	}

	for _, e := range events {
		if i, ok := index[e.CreatedAt.UTC().Format(dayKeyLayout)]; ok {
			days[i].Count++
		}
	}
	return days
}

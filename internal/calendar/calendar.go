// Package calendar assigns dates and kick-off times to league jornadas.
package calendar

import (
	"fmt"
	"slices"
	"sort"
	"time"

	"github.com/albapepper/leaguesim/internal/model"
)

// DefaultMatchDays is Saturday and Sunday (0 = Monday).
var DefaultMatchDays = []int{5, 6}

// Options controls Plan.
type Options struct {
	StartDate    model.Date // zero means today
	EndDate      *model.Date
	AutoSchedule bool
	MatchDays    []int
}

// Slot is a planned calendar entry for one match.
type Slot struct {
	Jornada int
	MatchID int
	Date    *model.Date
	Time    *string
}

// KickOff returns the i-th kick-off time of a jornada: 12:00, 14:00, 16:00
// or 18:00.
func KickOff(i int) string {
	return fmt.Sprintf("%d:00", 12+(i%4)*2)
}

// Plan lays out matches jornada by jornada. Matches in scheduled already
// have an entry and are skipped, though they still take a kick-off slot.
// Without AutoSchedule every slot is left undated. Jornadas that would fall
// after EndDate are left undated as well.
func Plan(matches []model.Match, scheduled map[int]bool, opts Options) []Slot {
	byJornada := map[int][]model.Match{}
	for _, m := range matches {
		byJornada[m.Jornada] = append(byJornada[m.Jornada], m)
	}
	jornadas := make([]int, 0, len(byJornada))
	for j := range byJornada {
		jornadas = append(jornadas, j)
	}
	sort.Ints(jornadas)

	days := opts.MatchDays
	if len(days) == 0 {
		days = DefaultMatchDays
	}
	cursor := opts.StartDate
	if cursor.IsZero() {
		cursor = model.NewDate(time.Now())
	}

	var out []Slot
	for _, j := range jornadas {
		var day *model.Date
		if opts.AutoSchedule {
			d := nextMatchDay(cursor, days)
			cursor = d.AddDays(7)
			if opts.EndDate == nil || !d.After(opts.EndDate.Time) {
				day = &d
			}
		}

		group := byJornada[j]
		sort.Slice(group, func(a, b int) bool { return group[a].ID < group[b].ID })
		for i, m := range group {
			if scheduled[m.ID] {
				continue
			}
			s := Slot{Jornada: j, MatchID: m.ID}
			if day != nil {
				t := KickOff(i)
				s.Date, s.Time = day, &t
			}
			out = append(out, s)
		}
	}
	return out
}

func nextMatchDay(from model.Date, days []int) model.Date {
	d := from
	for i := 0; i < 7 && !slices.Contains(days, d.Weekday()); i++ {
		d = d.AddDays(1)
	}
	return d
}

// Group buckets entries by jornada and orders each bucket by date, then
// time. Entries without a date or time sort last.
func Group(entries []model.CalendarEntryDetails) map[int][]model.CalendarEntryDetails {
	out := map[int][]model.CalendarEntryDetails{}
	for _, e := range entries {
		out[e.Jornada] = append(out[e.Jornada], e)
	}
	for _, bucket := range out {
		sort.SliceStable(bucket, func(i, j int) bool { return less(bucket[i], bucket[j]) })
	}
	return out
}

func less(a, b model.CalendarEntryDetails) bool {
	ad, bd := a.ScheduledDate, b.ScheduledDate
	switch {
	case ad == nil && bd != nil:
		return false
	case ad != nil && bd == nil:
		return true
	case ad != nil && bd != nil && !ad.Equal(bd.Time):
		return ad.Before(bd.Time)
	}
	at, bt := a.ScheduledTime, b.ScheduledTime
	switch {
	case at == nil && bt != nil:
		return false
	case at != nil && bt == nil:
		return true
	case at != nil && bt != nil:
		return clock(*at) < clock(*bt)
	}
	return false
}

// clock normalises "H:MM" so that "9:00" sorts before "12:00".
func clock(s string) string {
	if len(s) == 4 {
		return "0" + s
	}
	return s
}

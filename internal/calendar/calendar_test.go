package calendar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/albapepper/leaguesim/internal/model"
)

func date(t *testing.T, s string) model.Date {
	t.Helper()
	d, err := model.ParseDate(s)
	require.NoError(t, err)
	return d
}

func fixtures() []model.Match {
	return []model.Match{
		{ID: 3, Jornada: 2},
		{ID: 1, Jornada: 1},
		{ID: 2, Jornada: 1},
		{ID: 4, Jornada: 2},
		{ID: 5, Jornada: 3},
	}
}

func TestKickOff(t *testing.T) {
	assert.Equal(t, "12:00", KickOff(0))
	assert.Equal(t, "14:00", KickOff(1))
	assert.Equal(t, "18:00", KickOff(3))
	assert.Equal(t, "12:00", KickOff(4))
}

func TestPlan_AutoSchedule(t *testing.T) {
	// 2025-01-01 is a Wednesday.
	slots := Plan(fixtures(), nil, Options{StartDate: date(t, "2025-01-01"), AutoSchedule: true})
	require.Len(t, slots, 5)

	assert.Equal(t, 1, slots[0].MatchID)
	assert.Equal(t, "2025-01-04", slots[0].Date.String())
	assert.Equal(t, "12:00", *slots[0].Time)
	assert.Equal(t, 2, slots[1].MatchID)
	assert.Equal(t, "14:00", *slots[1].Time)

	assert.Equal(t, 3, slots[2].MatchID)
	assert.Equal(t, "2025-01-11", slots[2].Date.String())
	assert.Equal(t, "2025-01-18", slots[4].Date.String())
}

func TestPlan_CustomMatchDays(t *testing.T) {
	// Wednesday start, Monday-only schedule.
	slots := Plan(fixtures(), nil, Options{StartDate: date(t, "2025-01-01"), AutoSchedule: true, MatchDays: []int{0}})
	require.NotEmpty(t, slots)
	assert.Equal(t, "2025-01-06", slots[0].Date.String())
	assert.Equal(t, 0, slots[0].Date.Weekday())
}

func TestPlan_WithoutAutoSchedule(t *testing.T) {
	slots := Plan(fixtures(), nil, Options{})
	require.Len(t, slots, 5)
	for _, s := range slots {
		assert.Nil(t, s.Date)
		assert.Nil(t, s.Time)
	}
}

func TestPlan_SkipsScheduledMatches(t *testing.T) {
	slots := Plan(fixtures(), map[int]bool{1: true, 4: true}, Options{StartDate: date(t, "2025-01-01"), AutoSchedule: true})
	require.Len(t, slots, 3)

	assert.Equal(t, 2, slots[0].MatchID)
	// The skipped match keeps its kick-off slot.
	assert.Equal(t, "14:00", *slots[0].Time)
	assert.Equal(t, 3, slots[1].MatchID)
	assert.Equal(t, 5, slots[2].MatchID)
}

func TestPlan_EndDateLeavesLateJornadasUndated(t *testing.T) {
	end := date(t, "2025-01-12")
	slots := Plan(fixtures(), nil, Options{StartDate: date(t, "2025-01-01"), EndDate: &end, AutoSchedule: true})
	require.Len(t, slots, 5)

	assert.NotNil(t, slots[0].Date)
	assert.NotNil(t, slots[3].Date)
	assert.Equal(t, 5, slots[4].MatchID)
	assert.Nil(t, slots[4].Date)
	assert.Nil(t, slots[4].Time)
}

func TestGroup(t *testing.T) {
	d1 := date(t, "2025-02-01")
	d2 := date(t, "2025-02-02")
	t12, t9 := "12:00", "9:00"

	entries := []model.CalendarEntryDetails{
		{CalendarEntry: model.CalendarEntry{ID: 1, Jornada: 1}},
		{CalendarEntry: model.CalendarEntry{ID: 2, Jornada: 1, ScheduledDate: &d2, ScheduledTime: &t12}},
		{CalendarEntry: model.CalendarEntry{ID: 3, Jornada: 1, ScheduledDate: &d1, ScheduledTime: &t12}},
		{CalendarEntry: model.CalendarEntry{ID: 4, Jornada: 1, ScheduledDate: &d1, ScheduledTime: &t9}},
		{CalendarEntry: model.CalendarEntry{ID: 5, Jornada: 2}},
	}

	grouped := Group(entries)
	require.Len(t, grouped, 2)

	ids := []int{}
	for _, e := range grouped[1] {
		ids = append(ids, e.ID)
	}
	assert.Equal(t, []int{4, 3, 2, 1}, ids)
	assert.Len(t, grouped[2], 1)
}

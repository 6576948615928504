package generator

import (
	"alcyxob/fitness-planner/internal/domain"
	"slices"
)

// Muscle group names as seeded in the library.
const (
	Chest     = "Chest"
	Back      = "Back"
	Legs      = "Legs"
	Shoulders = "Shoulders"
	Biceps    = "Biceps"
	Triceps   = "Triceps"
	Abs       = "Abs"
)

var (
	pushGroups  = []string{Chest, Shoulders, Triceps}
	pullGroups  = []string{Back, Biceps}
	legGroups   = []string{Legs, Abs}
	upperGroups = []string{Chest, Back, Shoulders, Biceps, Triceps}
	fullGroups  = []string{Chest, Back, Legs, Shoulders}
)

// DayPlan describes what one weekday of a split trains. A rest day has no groups.
type DayPlan struct {
	Day    domain.Weekday
	Groups []string
	Count  int
}

// IsRest reports whether no exercises are drawn for the day.
func (p DayPlan) IsRest() bool {
	return len(p.Groups) == 0 || p.Count <= 0
}

// Split is a named weekly layout of exactly seven DayPlans, Monday first.
type Split struct {
	Name string
	Days []DayPlan
}

// SplitFor selects the weekly layout for the requested sessions per week.
// Values above 6 use the six-day split, values below 3 the two-day fallback.
func SplitFor(sessionsPerWeek int) Split {
	switch {
	case sessionsPerWeek >= 6:
		return newSplit("push-pull-legs-x2", map[domain.Weekday]DayPlan{
			domain.Monday:    {Groups: pushGroups, Count: 5},
			domain.Tuesday:   {Groups: pullGroups, Count: 5},
			domain.Wednesday: {Groups: legGroups, Count: 5},
			domain.Thursday:  {Groups: pushGroups, Count: 5},
			domain.Friday:    {Groups: pullGroups, Count: 5},
			domain.Saturday:  {Groups: legGroups, Count: 5},
		})
	case sessionsPerWeek == 5:
		return newSplit("push-pull-legs-upper-legs", map[domain.Weekday]DayPlan{
			domain.Monday:    {Groups: pushGroups, Count: 6},
			domain.Tuesday:   {Groups: pullGroups, Count: 5},
			domain.Wednesday: {Groups: legGroups, Count: 5},
			domain.Friday:    {Groups: upperGroups, Count: 5},
			domain.Saturday:  {Groups: legGroups, Count: 5},
		})
	case sessionsPerWeek == 4:
		return newSplit("upper-lower", map[domain.Weekday]DayPlan{
			domain.Monday:   {Groups: upperGroups, Count: 6},
			domain.Tuesday:  {Groups: legGroups, Count: 5},
			domain.Thursday: {Groups: upperGroups, Count: 6},
			domain.Friday:   {Groups: legGroups, Count: 5},
		})
	case sessionsPerWeek == 3:
		return newSplit("full-body-x3", map[domain.Weekday]DayPlan{
			domain.Monday:    {Groups: fullGroups, Count: 5},
			domain.Wednesday: {Groups: fullGroups, Count: 5},
			domain.Friday:    {Groups: fullGroups, Count: 5},
		})
	default:
		return newSplit("full-body-x2", map[domain.Weekday]DayPlan{
			domain.Monday:    {Groups: fullGroups, Count: 5},
			domain.Wednesday: {Groups: fullGroups, Count: 5},
		})
	}
}

// newSplit fills every weekday missing from training with a rest day. Each day
// gets its own copy of the group list.
func newSplit(name string, training map[domain.Weekday]DayPlan) Split {
	days := make([]DayPlan, 0, len(domain.Week))
	for _, d := range domain.Week {
		plan := training[d]
		plan.Day = d
		plan.Groups = slices.Clone(plan.Groups)
		days = append(days, plan)
	}
	return Split{Name: name, Days: days}
}

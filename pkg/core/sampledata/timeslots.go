package sampledata

import (
	"fmt"
	"time"

	"github.com/teambition/rrule-go"

	"github.com/SultanDF/exam-dss/pkg/core/model"
)

// Daily exam slots: one morning and one afternoon sitting per exam day
var dayparts = []struct {
	start, end, session string
}{
	{"08:00", "10:00", "Pagi"},
	{"13:30", "15:30", "Siang"},
}

// maxSlotDays caps rule expansion so an unbounded recurrence cannot
// produce an endless timeslot list
const maxSlotDays = 30

// TimeslotsFromRule expands an RFC 5545 recurrence into numbered exam
// timeslots, one morning and one afternoon slot per matched day. The rule
// is evaluated from start over at most three months.
func TimeslotsFromRule(ruleStr string, start time.Time) ([]model.Timeslot, error) {
	rule, err := rrule.StrToRRule(ruleStr)
	if err != nil {
		return nil, fmt.Errorf("failed to parse timeslot rule: %w", err)
	}
	rule.DTStart(start)

	days := rule.Between(start, start.AddDate(0, 3, 0), true)
	if len(days) > maxSlotDays {
		days = days[:maxSlotDays]
	}
	if len(days) == 0 {
		return nil, fmt.Errorf("timeslot rule %q matches no days", ruleStr)
	}

	timeslots := make([]model.Timeslot, 0, len(days)*len(dayparts))
	for _, day := range days {
		for _, part := range dayparts {
			timeslots = append(timeslots, model.Timeslot{
				ID:        len(timeslots) + 1,
				Day:       day.Format("2006-01-02"),
				StartTime: part.start,
				EndTime:   part.end,
				Session:   part.session,
			})
		}
	}
	return timeslots, nil
}

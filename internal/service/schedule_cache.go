package service

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	dayExpected uint8 = 1 << iota
	dayCompleted
)

// cachedSchedule is the compact form of a schedule kept in the cache.
// Day i is from+i, and cycles are stored once and referenced by position.
type cachedSchedule struct {
	Cycles []cachedCycle `json:"c,omitempty"`
	Days   []cachedDay   `json:"d"`
}

type cachedCycle struct {
	ID     primitive.ObjectID `json:"i"`
	Number int                `json:"n"`
}

type cachedDay struct {
	Flags   uint8               `json:"f,omitempty"`
	Cycle   int                 `json:"c,omitempty"` // 1-based index into Cycles, 0 = none
	Session *primitive.ObjectID `json:"s,omitempty"`
}

func compactSchedule(days []ScheduledDay) cachedSchedule {
	out := cachedSchedule{Days: make([]cachedDay, len(days))}
	positions := make(map[primitive.ObjectID]int)
	for i, d := range days {
		var cd cachedDay
		if d.Expected {
			cd.Flags |= dayExpected
		}
		if d.Completed {
			cd.Flags |= dayCompleted
		}
		if d.CycleID != nil {
			pos, ok := positions[*d.CycleID]
			if !ok {
				out.Cycles = append(out.Cycles, cachedCycle{ID: *d.CycleID, Number: d.CycleNumber})
				pos = len(out.Cycles)
				positions[*d.CycleID] = pos
			}
			cd.Cycle = pos
		}
		cd.Session = d.SessionID
		out.Days[i] = cd
	}
	return out
}

// expand rebuilds the schedule starting at from.
func (c cachedSchedule) expand(from time.Time) []ScheduledDay {
	days := make([]ScheduledDay, len(c.Days))
	for i, cd := range c.Days {
		day := ScheduledDay{
			Date:      from.AddDate(0, 0, i),
			Expected:  cd.Flags&dayExpected != 0,
			Completed: cd.Flags&dayCompleted != 0,
			SessionID: cd.Session,
		}
		if cd.Cycle > 0 && cd.Cycle <= len(c.Cycles) {
			cycle := c.Cycles[cd.Cycle-1]
			cycleID := cycle.ID
			day.CycleID = &cycleID
			day.CycleNumber = cycle.Number
		}
		days[i] = day
	}
	return days
}

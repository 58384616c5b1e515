package dashboard

import "time"

// NewActivity describes an activity to prepend to the feed.
type NewActivity struct {
	Action  string
	Time    string
	Type    ActivityType
	Details string
}

// NewProject describes a project to append.
type NewProject struct {
	Name     string
	Status   ProjectStatus
	Progress int
	DueDate  time.Time
	Team     []string
	Priority Priority
}

// ProjectUpdate holds the fields to merge into a project; nil fields are
// left untouched.
type ProjectUpdate struct {
	Name     *string
	Status   *ProjectStatus
	Progress *int
	DueDate  *time.Time
	Team     []string
	Priority *Priority
}

// StatsUpdate holds the counters to merge into the stats snapshot.
type StatsUpdate struct {
	TotalUsers     *int
	Revenue        *int
	Documents      *int
	SecurityScore  *int
	UserGrowth     *int
	RevenueGrowth  *int
	DocumentGrowth *int
	SecurityGrowth *int
}

func (u StatsUpdate) apply(s Stats) Stats {
	setIf(&s.TotalUsers, u.TotalUsers)
	setIf(&s.Revenue, u.Revenue)
	setIf(&s.Documents, u.Documents)
	setIf(&s.SecurityScore, u.SecurityScore)
	setIf(&s.UserGrowth, u.UserGrowth)
	setIf(&s.RevenueGrowth, u.RevenueGrowth)
	setIf(&s.DocumentGrowth, u.DocumentGrowth)
	setIf(&s.SecurityGrowth, u.SecurityGrowth)
	return s
}

func (u ProjectUpdate) apply(p Project) Project {
	setIf(&p.Name, u.Name)
	setIf(&p.Status, u.Status)
	if u.Progress != nil {
		p.Progress = clampProgress(*u.Progress)
	}
	if u.DueDate != nil {
		p.DueDate = u.DueDate.UTC()
	}
	if u.Team != nil {
		p.Team = append([]string(nil), u.Team...)
	}
	setIf(&p.Priority, u.Priority)
	return p
}

func setIf[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}

func clampProgress(v int) int {
	return min(max(v, 0), 100)
}

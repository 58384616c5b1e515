// Package mockdata fabricates plausible dashboard seed data. Output shape is
// fixed; values come from a seedable random source so tests can reproduce
// them.
package mockdata

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"sync"
	"time"

	"github.com/rpggio/shielddash/internal/clock"
	"github.com/rpggio/shielddash/internal/domain/dashboard"
)

const day = 24 * time.Hour

var (
	activityActions = []string{
		"New user registered",
		"Document uploaded",
		"Security scan completed",
		"Team member invited",
		"Project created",
		"Settings updated",
		"Backup completed",
		"Alert resolved",
	}
	activityTypes = []dashboard.ActivityType{
		dashboard.ActivityUser,
		dashboard.ActivityDocument,
		dashboard.ActivitySecurity,
		dashboard.ActivityTeam,
	}

	projectNames = []string{
		"Website Redesign",
		"Mobile App Development",
		"Security Audit",
		"Data Migration",
		"API Integration",
		"User Research",
		"Brand Guidelines",
		"Marketing Campaign",
	}
	projectStatuses = []dashboard.ProjectStatus{dashboard.ProjectActive, dashboard.ProjectCompleted, dashboard.ProjectPaused}
	priorities      = []dashboard.Priority{dashboard.PriorityLow, dashboard.PriorityMedium, dashboard.PriorityHigh}

	memberNames = []string{
		"Alice Johnson",
		"Bob Smith",
		"Carol Davis",
		"David Wilson",
		"Emma Brown",
		"Frank Miller",
		"Grace Lee",
		"Henry Taylor",
	}
	memberRoles = []string{
		"Product Manager",
		"Software Engineer",
		"UX Designer",
		"Data Analyst",
		"Marketing Specialist",
		"Security Expert",
	}
	presences = []dashboard.Presence{dashboard.PresenceOnline, dashboard.PresenceOffline, dashboard.PresenceAway}

	documentNames = []string{
		"Project Proposal.pdf",
		"Design Mockups.sketch",
		"User Research.docx",
		"Financial Report.xlsx",
		"Security Policy.pdf",
		"Brand Guidelines.ai",
		"Meeting Notes.md",
		"Code Review.txt",
	}
	documentTypes    = []string{"pdf", "sketch", "docx", "xlsx", "ai", "md", "txt"}
	documentStatuses = []dashboard.DocumentStatus{dashboard.DocumentProcessing, dashboard.DocumentCompleted, dashboard.DocumentError}
	securityLevels   = []dashboard.SecurityLevel{dashboard.SecurityLow, dashboard.SecurityMedium, dashboard.SecurityHigh}

	notificationTemplates = []struct {
		title   string
		message string
		kind    dashboard.NotificationType
	}{
		{"Security Alert", "Unusual login activity detected", dashboard.NotificationWarning},
		{"Backup Complete", "Your data has been successfully backed up", dashboard.NotificationSuccess},
		{"New Team Member", "Alice Johnson joined your team", dashboard.NotificationInfo},
		{"System Update", "New features are now available", dashboard.NotificationInfo},
		{"Storage Warning", "You are running low on storage space", dashboard.NotificationWarning},
		{"Document Processed", "Your document has been processed successfully", dashboard.NotificationSuccess},
	}
)

// MemberEmailDomain is the mail domain of generated team members.
const MemberEmailDomain = "creativeshield.com"

// Generator implements dashboard.Seeder.
type Generator struct {
	mu    sync.Mutex
	rng   *rand.Rand
	clock clock.Clock
}

var _ dashboard.Seeder = (*Generator)(nil)

// New creates a generator whose output is fully determined by seed and the
// times reported by clk.
func New(seed uint64, clk clock.Clock) *Generator {
	if clk == nil {
		clk = clock.System{}
	}
	return &Generator{
		rng:   rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		clock: clk,
	}
}

// intn returns a value in [lo, lo+n).
func (g *Generator) intn(lo, n int) int {
	return lo + g.rng.IntN(n)
}

func pick[T any](g *Generator, items []T) T {
	return items[g.rng.IntN(len(items))]
}

// within returns a random duration in [0, span).
func (g *Generator) within(span time.Duration) time.Duration {
	return time.Duration(g.rng.Int64N(int64(span)))
}

// stamp drops sub-millisecond precision so values match what clients store.
func stamp(t time.Time) time.Time {
	return t.UTC().Truncate(time.Millisecond)
}

func (g *Generator) Stats() dashboard.Stats {
	g.mu.Lock()
	defer g.mu.Unlock()

	return dashboard.Stats{
		TotalUsers:     g.intn(2000, 5000),
		Revenue:        g.intn(30000, 100000),
		Documents:      g.intn(500, 2000),
		SecurityScore:  g.intn(80, 20),
		UserGrowth:     g.intn(5, 30),
		RevenueGrowth:  g.intn(3, 25),
		DocumentGrowth: g.intn(10, 40),
		SecurityGrowth: g.intn(1, 10),
	}
}

func (g *Generator) Activities() []dashboard.ActivityItem {
	g.mu.Lock()
	defer g.mu.Unlock()

	out := make([]dashboard.ActivityItem, dashboard.MaxActivities)
	for i := range out {
		out[i] = dashboard.ActivityItem{
			ID:     fmt.Sprintf("activity-%d", i+1),
			Action: pick(g, activityActions),
			Time:   fmt.Sprintf("%d minutes ago", g.intn(1, 60)),
			Type:   pick(g, activityTypes),
		}
	}
	return out
}

func (g *Generator) Projects() []dashboard.Project {
	g.mu.Lock()
	defer g.mu.Unlock()

	now := g.clock.Now()
	out := make([]dashboard.Project, 6)
	for i := range out {
		out[i] = dashboard.Project{
			ID:       fmt.Sprintf("project-%d", i+1),
			Name:     pick(g, projectNames),
			Status:   pick(g, projectStatuses),
			Progress: g.rng.IntN(100),
			DueDate:  stamp(now.Add(g.within(30 * day))),
			Team: []string{
				fmt.Sprintf("user-%d", g.intn(1, 5)),
				fmt.Sprintf("user-%d", g.intn(1, 5)),
			},
			Priority: pick(g, priorities),
		}
	}
	return out
}

func (g *Generator) TeamMembers() []dashboard.TeamMember {
	g.mu.Lock()
	defer g.mu.Unlock()

	now := g.clock.Now()
	out := make([]dashboard.TeamMember, len(memberNames))
	for i, name := range memberNames {
		out[i] = dashboard.TeamMember{
			ID:       fmt.Sprintf("user-%d", i+1),
			Name:     name,
			Email:    memberEmail(name),
			Role:     pick(g, memberRoles),
			Status:   pick(g, presences),
			JoinedAt: stamp(now.Add(-g.within(365 * day))),
		}
	}
	return out
}

func memberEmail(name string) string {
	return strings.ToLower(strings.Replace(name, " ", ".", 1)) + "@" + MemberEmailDomain
}

func (g *Generator) Documents() []dashboard.Document {
	g.mu.Lock()
	defer g.mu.Unlock()

	now := g.clock.Now()
	out := make([]dashboard.Document, 12)
	for i := range out {
		out[i] = dashboard.Document{
			ID:            fmt.Sprintf("doc-%d", i+1),
			Name:          pick(g, documentNames),
			Type:          pick(g, documentTypes),
			Size:          int64(g.intn(100000, 10000000)),
			UploadedAt:    stamp(now.Add(-g.within(30 * day))),
			UploadedBy:    fmt.Sprintf("user-%d", g.intn(1, 8)),
			Status:        pick(g, documentStatuses),
			SecurityLevel: pick(g, securityLevels),
		}
	}
	return out
}

func (g *Generator) Notifications() []dashboard.Notification {
	g.mu.Lock()
	defer g.mu.Unlock()

	now := g.clock.Now()
	out := make([]dashboard.Notification, 8)
	for i := range out {
		tmpl := pick(g, notificationTemplates)
		out[i] = dashboard.Notification{
			ID:        fmt.Sprintf("notification-%d", i+1),
			Title:     tmpl.title,
			Message:   tmpl.message,
			Type:      tmpl.kind,
			Read:      g.rng.Float64() > 0.5,
			CreatedAt: stamp(now.Add(-g.within(7 * day))),
		}
	}
	return out
}

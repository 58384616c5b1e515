package dashboard

import (
	"context"
	"io"
	"log/slog"
	"slices"
	"strings"
	"sync"

	"github.com/rpggio/shielddash/internal/clock"
	"github.com/rpggio/shielddash/internal/storage"
)

// MaxActivities bounds the activity feed.
const MaxActivities = 10

// Service holds the dashboard collections in memory and mirrors every change
// to storage before returning (write-through).
type Service struct {
	mu      sync.Mutex
	storage *storage.Adapter
	seeder  Seeder
	ids     *idSource
	logger  *slog.Logger

	stats         Stats
	activities    []ActivityItem
	projects      []Project
	teamMembers   []TeamMember
	documents     []Document
	notifications []Notification
}

// NewService creates a dashboard service, loading each collection from
// storage or seeding and persisting it when nothing readable is stored.
func NewService(ctx context.Context, store *storage.Adapter, seeder Seeder, clk clock.Clock, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if clk == nil {
		clk = clock.System{}
	}
	s := &Service{
		storage: store,
		seeder:  seeder,
		ids:     &idSource{clock: clk},
		logger:  logger,
	}
	s.load(ctx)
	return s
}

func (s *Service) load(ctx context.Context) {
	s.stats = loadOrSeed(ctx, s, storage.KeyDashboardStats, s.seeder.Stats)
	s.activities = loadOrSeed(ctx, s, storage.KeyActivities, s.seeder.Activities)
	s.projects = loadOrSeed(ctx, s, storage.KeyProjects, s.seeder.Projects)
	s.teamMembers = loadOrSeed(ctx, s, storage.KeyTeamMembers, s.seeder.TeamMembers)
	s.documents = loadOrSeed(ctx, s, storage.KeyDocuments, s.seeder.Documents)
	s.notifications = loadOrSeed(ctx, s, storage.KeyNotifications, s.seeder.Notifications)

	if len(s.activities) > MaxActivities {
		s.activities = s.activities[:MaxActivities:MaxActivities]
		s.storage.Set(ctx, storage.KeyActivities, s.activities)
	}

	for _, a := range s.activities {
		s.ids.observe(a.ID)
	}
	for _, p := range s.projects {
		s.ids.observe(p.ID)
	}
	for _, m := range s.teamMembers {
		s.ids.observe(m.ID)
	}
	for _, d := range s.documents {
		s.ids.observe(d.ID)
	}
	for _, n := range s.notifications {
		s.ids.observe(n.ID)
	}
}

func loadOrSeed[T any](ctx context.Context, s *Service, key string, seed func() T) T {
	if value, ok := storage.Lookup[T](ctx, s.storage, key); ok {
		return value
	}
	value := seed()
	s.logger.Debug("seeded collection", "key", key)
	s.storage.Set(ctx, key, value)
	return value
}

// Snapshot returns a copy of every collection.
func (s *Service) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	return Snapshot{
		Stats:         s.stats,
		Activities:    slices.Clone(s.activities),
		Projects:      cloneProjects(s.projects),
		TeamMembers:   slices.Clone(s.teamMembers),
		Documents:     slices.Clone(s.documents),
		Notifications: slices.Clone(s.notifications),
	}
}

func (s *Service) Stats() Stats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stats
}

func (s *Service) Activities() []ActivityItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.activities)
}

func (s *Service) Projects() []Project {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneProjects(s.projects)
}

func (s *Service) TeamMembers() []TeamMember {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.teamMembers)
}

func (s *Service) Documents() []Document {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.documents)
}

func (s *Service) Notifications() []Notification {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.notifications)
}

// AddActivity prepends an activity and drops the oldest entries beyond
// MaxActivities.
func (s *Service) AddActivity(ctx context.Context, entry NewActivity) (ActivityItem, error) {
	if strings.TrimSpace(entry.Action) == "" {
		return ActivityItem{}, ErrInvalidInput
	}
	if entry.Time == "" {
		entry.Time = "just now"
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	item := ActivityItem{
		ID:      s.ids.next("activity"),
		Action:  entry.Action,
		Time:    entry.Time,
		Type:    entry.Type,
		Details: entry.Details,
	}

	keep := s.activities[:min(len(s.activities), MaxActivities-1)]
	next := make([]ActivityItem, 0, len(keep)+1)
	next = append(next, item)
	next = append(next, keep...)

	s.activities = next
	s.storage.Set(ctx, storage.KeyActivities, s.activities)
	return item, nil
}

// AddProject appends a new project. Progress is clamped to 0-100.
func (s *Service) AddProject(ctx context.Context, req NewProject) (Project, error) {
	if strings.TrimSpace(req.Name) == "" {
		return Project{}, ErrInvalidInput
	}

	proj := Project{
		Name:     req.Name,
		Status:   req.Status,
		Progress: clampProgress(req.Progress),
		DueDate:  req.DueDate.UTC(),
		Team:     append([]string{}, req.Team...),
		Priority: req.Priority,
	}
	if proj.Status == "" {
		proj.Status = ProjectActive
	}
	if proj.Priority == "" {
		proj.Priority = PriorityMedium
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	proj.ID = s.ids.next("project")
	next := make([]Project, 0, len(s.projects)+1)
	next = append(next, s.projects...)
	next = append(next, proj)

	s.projects = next
	s.storage.Set(ctx, storage.KeyProjects, s.projects)
	return cloneProject(proj), nil
}

// UpdateProject merges the non-nil fields of upd into the project with the
// given id. The collection is left untouched when no project matches.
func (s *Service) UpdateProject(ctx context.Context, id string, upd ProjectUpdate) (Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := slices.IndexFunc(s.projects, func(p Project) bool { return p.ID == id })
	if idx < 0 {
		return Project{}, ErrProjectNotFound
	}

	next := slices.Clone(s.projects)
	next[idx] = upd.apply(next[idx])

	s.projects = next
	s.storage.Set(ctx, storage.KeyProjects, s.projects)
	return cloneProject(next[idx]), nil
}

// DeleteProject removes the project with the given id.
func (s *Service) DeleteProject(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !slices.ContainsFunc(s.projects, func(p Project) bool { return p.ID == id }) {
		return ErrProjectNotFound
	}

	s.projects = slices.DeleteFunc(slices.Clone(s.projects), func(p Project) bool { return p.ID == id })
	s.storage.Set(ctx, storage.KeyProjects, s.projects)
	return nil
}

// MarkNotificationRead sets the read flag of one notification.
func (s *Service) MarkNotificationRead(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := slices.IndexFunc(s.notifications, func(n Notification) bool { return n.ID == id })
	if idx < 0 {
		return ErrNotificationNotFound
	}

	next := slices.Clone(s.notifications)
	next[idx].Read = true

	s.notifications = next
	s.storage.Set(ctx, storage.KeyNotifications, s.notifications)
	return nil
}

// MarkAllNotificationsRead sets every read flag.
func (s *Service) MarkAllNotificationsRead(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := slices.Clone(s.notifications)
	for i := range next {
		next[i].Read = true
	}

	s.notifications = next
	s.storage.Set(ctx, storage.KeyNotifications, s.notifications)
}

// DeleteNotification removes one notification.
func (s *Service) DeleteNotification(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !slices.ContainsFunc(s.notifications, func(n Notification) bool { return n.ID == id }) {
		return ErrNotificationNotFound
	}

	s.notifications = slices.DeleteFunc(slices.Clone(s.notifications), func(n Notification) bool { return n.ID == id })
	s.storage.Set(ctx, storage.KeyNotifications, s.notifications)
	return nil
}

// UpdateStats merges the non-nil counters of upd into the stats snapshot.
func (s *Service) UpdateStats(ctx context.Context, upd StatsUpdate) Stats {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.stats = upd.apply(s.stats)
	s.storage.Set(ctx, storage.KeyDashboardStats, s.stats)
	return s.stats
}

// RefreshData regenerates stats and activities. Projects, team members,
// documents and notifications are user data and survive a refresh.
func (s *Service) RefreshData(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.stats = s.seeder.Stats()
	s.activities = s.seeder.Activities()
	s.storage.Set(ctx, storage.KeyDashboardStats, s.stats)
	s.storage.Set(ctx, storage.KeyActivities, s.activities)
	s.logger.Info("dashboard data refreshed")
}

// Reset clears every stored key except the session user and reseeds all
// collections.
func (s *Service) Reset(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.storage.ClearAll(ctx, storage.KeyUser)
	s.load(ctx)
	s.logger.Info("dashboard data reset")
}

func cloneProject(p Project) Project {
	p.Team = slices.Clone(p.Team)
	return p
}

func cloneProjects(projects []Project) []Project {
	if projects == nil {
		return nil
	}
	out := make([]Project, len(projects))
	for i, p := range projects {
		out[i] = cloneProject(p)
	}
	return out
}

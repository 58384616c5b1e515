package dashboard

// Seeder fabricates initial collections when nothing is persisted yet. It
// must not touch storage.
type Seeder interface {
	Stats() Stats
	Activities() []ActivityItem
	Projects() []Project
	TeamMembers() []TeamMember
	Documents() []Document
	Notifications() []Notification
}

package storage

// Storage keys. The dashboard and auth stores own disjoint subsets.
const (
	KeyUser           = "user"
	KeyDashboardStats = "dashboardStats"
	KeyActivities     = "activities"
	KeyProjects       = "projects"
	KeyTeamMembers    = "teamMembers"
	KeyDocuments      = "documents"
	KeyNotifications  = "notifications"
	KeyUserSettings   = "userSettings"
)

// Keys lists every key the application writes.
var Keys = []string{
	KeyUser,
	KeyDashboardStats,
	KeyActivities,
	KeyProjects,
	KeyTeamMembers,
	KeyDocuments,
	KeyNotifications,
	KeyUserSettings,
}

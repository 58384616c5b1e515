package dashboard

import "time"

// Stats is a snapshot of the dashboard counters. It is replaced wholesale on
// refresh; no history is kept.
type Stats struct {
	TotalUsers     int `json:"totalUsers"`
	Revenue        int `json:"revenue"`
	Documents      int `json:"documents"`
	SecurityScore  int `json:"securityScore"`
	UserGrowth     int `json:"userGrowth"`
	RevenueGrowth  int `json:"revenueGrowth"`
	DocumentGrowth int `json:"documentGrowth"`
	SecurityGrowth int `json:"securityGrowth"`
}

// ActivityType categorises an activity feed entry
type ActivityType string

const (
	ActivityUser     ActivityType = "user"
	ActivityDocument ActivityType = "document"
	ActivitySecurity ActivityType = "security"
	ActivityTeam     ActivityType = "team"
)

// ActivityItem is one entry of the recent activity feed
type ActivityItem struct {
	ID      string       `json:"id"`
	Action  string       `json:"action"`
	Time    string       `json:"time"` // relative, e.g. "5 minutes ago"
	Type    ActivityType `json:"type"`
	Details string       `json:"details,omitempty"`
}

// ProjectStatus represents the lifecycle of a project
type ProjectStatus string

const (
	ProjectActive    ProjectStatus = "active"
	ProjectCompleted ProjectStatus = "completed"
	ProjectPaused    ProjectStatus = "paused"
)

// Priority is shared by projects
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Project is a user-managed unit of work. Team holds free-text member
// references, not foreign keys.
type Project struct {
	ID       string        `json:"id"`
	Name     string        `json:"name"`
	Status   ProjectStatus `json:"status"`
	Progress int           `json:"progress"`
	DueDate  time.Time     `json:"dueDate"`
	Team     []string      `json:"team"`
	Priority Priority      `json:"priority"`
}

// Presence of a team member
type Presence string

const (
	PresenceOnline  Presence = "online"
	PresenceOffline Presence = "offline"
	PresenceAway    Presence = "away"
)

type TeamMember struct {
	ID       string    `json:"id"`
	Name     string    `json:"name"`
	Email    string    `json:"email"`
	Role     string    `json:"role"`
	Avatar   string    `json:"avatar,omitempty"`
	Status   Presence  `json:"status"`
	JoinedAt time.Time `json:"joinedAt"`
}

// DocumentStatus is the processing state of an uploaded document
type DocumentStatus string

const (
	DocumentProcessing DocumentStatus = "processing"
	DocumentCompleted  DocumentStatus = "completed"
	DocumentError      DocumentStatus = "error"
)

// SecurityLevel classifies a document
type SecurityLevel string

const (
	SecurityLow    SecurityLevel = "low"
	SecurityMedium SecurityLevel = "medium"
	SecurityHigh   SecurityLevel = "high"
)

type Document struct {
	ID            string         `json:"id"`
	Name          string         `json:"name"`
	Type          string         `json:"type"`
	Size          int64          `json:"size"`
	UploadedAt    time.Time      `json:"uploadedAt"`
	UploadedBy    string         `json:"uploadedBy"`
	Status        DocumentStatus `json:"status"`
	SecurityLevel SecurityLevel  `json:"securityLevel"`
}

// NotificationType is the severity of a notification
type NotificationType string

const (
	NotificationInfo    NotificationType = "info"
	NotificationWarning NotificationType = "warning"
	NotificationError   NotificationType = "error"
	NotificationSuccess NotificationType = "success"
)

type Notification struct {
	ID        string           `json:"id"`
	Title     string           `json:"title"`
	Message   string           `json:"message"`
	Type      NotificationType `json:"type"`
	Read      bool             `json:"read"`
	CreatedAt time.Time        `json:"createdAt"`
}

// Snapshot is a copy of every collection held by the store
type Snapshot struct {
	Stats         Stats          `json:"stats"`
	Activities    []ActivityItem `json:"activities"`
	Projects      []Project      `json:"projects"`
	TeamMembers   []TeamMember   `json:"teamMembers"`
	Documents     []Document     `json:"documents"`
	Notifications []Notification `json:"notifications"`
}

// DocumentSummary aggregates the document collection
type DocumentSummary struct {
	Total      int    `json:"total"`
	Completed  int    `json:"completed"`
	Processing int    `json:"processing"`
	Failed     int    `json:"failed"`
	TotalBytes int64  `json:"totalBytes"`
	TotalSize  string `json:"totalSize"`
}

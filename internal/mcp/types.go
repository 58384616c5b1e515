package mcp

import (
	"encoding/json"
	"time"

	"github.com/rpggio/shielddash/internal/domain/auth"
	"github.com/rpggio/shielddash/internal/domain/dashboard"
)

// ToolDefinition describes a callable tool
type ToolDefinition struct {
	Name        string
	Description string
	InputSchema map[string]any
	// Protected tools are rejected until a user is signed in.
	Protected bool
}

type LoginParams struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type SignupParams struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
}

type UpdateUserParams struct {
	Name        *string           `json:"name,omitempty"`
	Email       *string           `json:"email,omitempty"`
	Avatar      *string           `json:"avatar,omitempty"`
	Preferences *auth.Preferences `json:"preferences,omitempty"`
}

type PasswordStrengthParams struct {
	Password string `json:"password"`
}

type UpdateStatsParams struct {
	TotalUsers     *int `json:"total_users,omitempty"`
	Revenue        *int `json:"revenue,omitempty"`
	Documents      *int `json:"documents,omitempty"`
	SecurityScore  *int `json:"security_score,omitempty"`
	UserGrowth     *int `json:"user_growth,omitempty"`
	RevenueGrowth  *int `json:"revenue_growth,omitempty"`
	DocumentGrowth *int `json:"document_growth,omitempty"`
	SecurityGrowth *int `json:"security_growth,omitempty"`
}

type AddActivityParams struct {
	Action  string                 `json:"action"`
	Time    string                 `json:"time,omitempty"`
	Type    dashboard.ActivityType `json:"type,omitempty"`
	Details string                 `json:"details,omitempty"`
}

type AddProjectParams struct {
	Name     string                  `json:"name"`
	Status   dashboard.ProjectStatus `json:"status,omitempty"`
	Progress int                     `json:"progress,omitempty"`
	DueDate  *time.Time              `json:"due_date,omitempty"`
	Team     []string                `json:"team,omitempty"`
	Priority dashboard.Priority      `json:"priority,omitempty"`
}

type UpdateProjectParams struct {
	ID       string                   `json:"id"`
	Name     *string                  `json:"name,omitempty"`
	Status   *dashboard.ProjectStatus `json:"status,omitempty"`
	Progress *int                     `json:"progress,omitempty"`
	DueDate  *time.Time               `json:"due_date,omitempty"`
	Team     []string                 `json:"team,omitempty"`
	Priority *dashboard.Priority      `json:"priority,omitempty"`
}

type IDParams struct {
	ID string `json:"id"`
}

type ListTeamMembersParams struct {
	Query string `json:"query,omitempty"`
}

type ListDocumentsParams struct {
	Query string `json:"query,omitempty"`
	Type  string `json:"type,omitempty"`
}

type ListNotificationsParams struct {
	UnreadOnly bool `json:"unread_only,omitempty"`
}

// UpdateSettingsParams carries a partial settings document; fields it omits
// keep their current values.
type UpdateSettingsParams struct {
	Settings json.RawMessage `json:"settings"`
}

type SessionResponse struct {
	Status auth.Status `json:"status"`
	User   *auth.User  `json:"user,omitempty"`
}

type DashboardResponse struct {
	dashboard.Snapshot
	UnreadNotifications int `json:"unreadNotifications"`
	OnlineMembers       int `json:"onlineMembers"`
}

type NotificationsResponse struct {
	Notifications []dashboard.Notification `json:"notifications"`
	Unread        int                      `json:"unread"`
}

type TeamResponse struct {
	Members []dashboard.TeamMember `json:"members"`
	Online  int                    `json:"online"`
}

type OKResponse struct {
	OK bool `json:"ok"`
}

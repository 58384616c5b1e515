package functional_test

import (
	"context"
	"testing"
	"time"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/require"

	"github.com/rpggio/shielddash/internal/domain/auth"
	"github.com/rpggio/shielddash/internal/domain/dashboard"
	"github.com/rpggio/shielddash/internal/domain/settings"
	"github.com/rpggio/shielddash/internal/mcp"
	"github.com/rpggio/shielddash/internal/memstore"
	"github.com/rpggio/shielddash/internal/testserver"
)

func TestFunctional_DashboardRequiresSignIn(t *testing.T) {
	ts := testserver.New(t)

	require.Equal(t, "NOT_AUTHENTICATED", ts.CallErr(t, "get_dashboard", nil))
	require.Equal(t, "NOT_AUTHENTICATED", ts.CallErr(t, "get_settings", nil))

	var session mcp.SessionResponse
	ts.MustCall(t, "current_user", nil, &session)
	require.Equal(t, auth.StatusAnonymous, session.Status)

	require.Equal(t, "INVALID_CREDENTIALS", ts.CallErr(t, "login", map[string]any{"email": "a@b.co", "password": "12345"}))

	ts.MustCall(t, "login", map[string]any{"email": "a@b.co", "password": "123456"}, &session)
	require.Equal(t, auth.StatusAuthenticated, session.Status)
	require.Equal(t, "a@b.co", session.User.Email)

	var dash mcp.DashboardResponse
	ts.MustCall(t, "get_dashboard", nil, &dash)
	require.Len(t, dash.Activities, 10)
	require.Len(t, dash.Projects, 6)
	require.Len(t, dash.TeamMembers, 8)
	require.Len(t, dash.Documents, 12)
	require.Len(t, dash.Notifications, 8)

	ts.MustCall(t, "logout", nil, &session)
	require.Equal(t, "NOT_AUTHENTICATED", ts.CallErr(t, "get_dashboard", nil))
}

func TestFunctional_ProjectLifecycle(t *testing.T) {
	ts := testserver.New(t)
	ts.Login(t)

	var proj dashboard.Project
	ts.MustCall(t, "add_project", map[string]any{
		"name":     "Perimeter audit",
		"progress": -5,
		"due_date": "2025-07-01T00:00:00Z",
		"team":     []string{"user-1"},
	}, &proj)
	require.Zero(t, proj.Progress)
	require.Equal(t, dashboard.PriorityMedium, proj.Priority)
	require.Equal(t, time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC), proj.DueDate)

	var updated dashboard.Project
	ts.MustCall(t, "update_project", map[string]any{"id": proj.ID, "progress": 60, "priority": "high"}, &updated)
	require.Equal(t, 60, updated.Progress)
	require.Equal(t, dashboard.PriorityHigh, updated.Priority)
	require.Equal(t, "Perimeter audit", updated.Name)

	require.Equal(t, "PROJECT_NOT_FOUND", ts.CallErr(t, "delete_project", map[string]any{"id": "project-0"}))
	ts.MustCall(t, "delete_project", map[string]any{"id": proj.ID}, nil)

	var projects []dashboard.Project
	ts.MustCall(t, "list_projects", nil, &projects)
	require.Len(t, projects, 6)
}

func TestFunctional_ActivityFeedIsBounded(t *testing.T) {
	ts := testserver.New(t)
	ts.Login(t)

	for i := 0; i < 3; i++ {
		ts.MustCall(t, "add_activity", map[string]any{"action": "Scan completed", "type": "security"}, nil)
	}

	var activities []dashboard.ActivityItem
	ts.MustCall(t, "list_activities", nil, &activities)
	require.Len(t, activities, 10)
	require.Equal(t, "Scan completed", activities[0].Action)
	require.Equal(t, "Scan completed", activities[2].Action)
	require.NotEqual(t, activities[0].ID, activities[1].ID)

	require.Equal(t, "INVALID_INPUT", ts.CallErr(t, "add_activity", map[string]any{}))
}

func TestFunctional_NotificationsAndRefresh(t *testing.T) {
	ts := testserver.New(t)
	ts.Login(t)

	var before mcp.DashboardResponse
	ts.MustCall(t, "get_dashboard", nil, &before)

	ts.MustCall(t, "mark_all_notifications_read", nil, nil)
	var notifs mcp.NotificationsResponse
	ts.MustCall(t, "list_notifications", map[string]any{"unread_only": true}, &notifs)
	require.Empty(t, notifs.Notifications)
	require.Zero(t, notifs.Unread)

	var after mcp.DashboardResponse
	ts.MustCall(t, "refresh_data", nil, &after)
	require.Equal(t, before.Projects, after.Projects)
	require.Equal(t, before.Documents, after.Documents)
	require.Zero(t, after.UnreadNotifications)
}

func TestFunctional_TeamDocumentsAndSummary(t *testing.T) {
	ts := testserver.New(t)
	ts.Login(t)

	var team mcp.TeamResponse
	ts.MustCall(t, "list_team_members", map[string]any{"query": "CREATIVESHIELD.COM"}, &team)
	require.Len(t, team.Members, 8)

	var docs []dashboard.Document
	ts.MustCall(t, "list_documents", map[string]any{"type": "all"}, &docs)
	require.Len(t, docs, 12)

	var summary dashboard.DocumentSummary
	ts.MustCall(t, "document_summary", nil, &summary)
	require.Equal(t, 12, summary.Total)
	require.Equal(t, summary.Total, summary.Completed+summary.Processing+summary.Failed)
	require.NotEmpty(t, summary.TotalSize)
}

func TestFunctional_SettingsAndReset(t *testing.T) {
	ts := testserver.New(t)
	ts.Login(t)

	var saved settings.UserSettings
	ts.MustCall(t, "update_settings", map[string]any{
		"settings": map[string]any{"notifications": map[string]any{"updates": true}},
	}, &saved)
	require.True(t, saved.Notifications.Updates)
	require.True(t, saved.Notifications.Email)

	require.Equal(t, "INVALID_SETTINGS", ts.CallErr(t, "update_settings", map[string]any{
		"settings": map[string]any{"security": map[string]any{"sessionTimeout": -1}},
	}))

	ts.MustCall(t, "add_project", map[string]any{"name": "Temporary"}, nil)
	ts.MustCall(t, "reset_dashboard", nil, nil)

	var got settings.UserSettings
	ts.MustCall(t, "get_settings", nil, &got)
	require.Equal(t, settings.Defaults(), got)

	var projects []dashboard.Project
	ts.MustCall(t, "list_projects", nil, &projects)
	require.Len(t, projects, 6)

	var session mcp.SessionResponse
	ts.MustCall(t, "current_user", nil, &session)
	require.Equal(t, auth.StatusAuthenticated, session.Status)
}

func TestFunctional_StatePersistsAcrossRestart(t *testing.T) {
	store := memstore.New()

	first := testserver.NewWithStore(t, store)
	first.Login(t)
	var proj dashboard.Project
	first.MustCall(t, "add_project", map[string]any{"name": "Survivor"}, &proj)
	first.MustCall(t, "mark_notification_read", map[string]any{"id": "notification-1"}, nil)

	second := testserver.NewWithStore(t, store)
	var session mcp.SessionResponse
	second.MustCall(t, "current_user", nil, &session)
	require.Equal(t, auth.StatusAuthenticated, session.Status)

	var projects []dashboard.Project
	second.MustCall(t, "list_projects", nil, &projects)
	require.Equal(t, proj, projects[len(projects)-1])

	var notifs mcp.NotificationsResponse
	second.MustCall(t, "list_notifications", nil, &notifs)
	require.True(t, notifs.Notifications[0].Read)
}

func TestFunctional_MCPProtocolCompliance(t *testing.T) {
	ts := testserver.New(t)

	initResult := ts.Session.InitializeResult()
	require.NotNil(t, initResult)
	require.Equal(t, "shielddash", initResult.ServerInfo.Name)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	tools, err := ts.Session.ListTools(ctx, nil)
	require.NoError(t, err)
	require.Len(t, tools.Tools, 26)

	toolMap := make(map[string]*sdkmcp.Tool)
	for _, tool := range tools.Tools {
		toolMap[tool.Name] = tool
	}
	for _, name := range []string{"login", "get_dashboard", "add_project", "update_settings", "reset_dashboard"} {
		require.Contains(t, toolMap, name)
		require.NotEmpty(t, toolMap[name].Description)
	}

	res, err := ts.Session.ReadResource(ctx, &sdkmcp.ReadResourceParams{URI: "shielddash://docs/index"})
	require.NoError(t, err)
	require.Len(t, res.Contents, 1)
	require.Contains(t, res.Contents[0].Text, "get_dashboard")
}

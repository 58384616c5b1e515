package mcp

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/rpggio/shielddash/internal/clock"
	"github.com/rpggio/shielddash/internal/domain/auth"
	"github.com/rpggio/shielddash/internal/domain/dashboard"
	"github.com/rpggio/shielddash/internal/domain/settings"
	"github.com/rpggio/shielddash/internal/memstore"
	"github.com/rpggio/shielddash/internal/mockdata"
	"github.com/rpggio/shielddash/internal/storage"
	"github.com/stretchr/testify/require"
)

func newTestHandler(t *testing.T) *Handler {
	t.Helper()
	ctx := context.Background()
	clk := clock.NewManual(time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC))
	adapter := storage.NewAdapter(memstore.New(), nil)

	return NewHandler(Services{
		Auth:      auth.NewService(ctx, adapter, clk, nil, auth.WithDelays(0, 0)),
		Dashboard: dashboard.NewService(ctx, adapter, mockdata.New(7, clk), clk, nil),
		Settings:  settings.NewService(adapter, nil),
	})
}

func call(t *testing.T, h *Handler, method string, params any) (any, error) {
	t.Helper()
	var raw json.RawMessage
	if params != nil {
		data, err := json.Marshal(params)
		require.NoError(t, err)
		raw = data
	}
	return h.Handle(context.Background(), method, raw)
}

func requireCode(t *testing.T, err error, code string) {
	t.Helper()
	require.Error(t, err)
	apiErr, ok := err.(*APIError)
	require.True(t, ok, "expected *APIError, got %T", err)
	require.Equal(t, code, apiErr.Code)
}

func login(t *testing.T, h *Handler) {
	t.Helper()
	_, err := call(t, h, "login", LoginParams{Email: "ops@creativeshield.com", Password: "hunter22"})
	require.NoError(t, err)
}

func TestHandler_CatalogToolsAreAllDispatched(t *testing.T) {
	h := newTestHandler(t)
	login(t, h)

	for _, tool := range buildToolCatalog() {
		if tool.Name == "logout" {
			continue
		}
		_, err := call(t, h, tool.Name, nil)
		if apiErr, ok := err.(*APIError); ok {
			require.NotEqual(t, "UNKNOWN_TOOL", apiErr.Code, tool.Name)
			require.NotEqual(t, "NOT_AUTHENTICATED", apiErr.Code, tool.Name)
		}
	}
}

func TestHandler_SessionCommands(t *testing.T) {
	h := newTestHandler(t)

	resp, err := call(t, h, "current_user", nil)
	require.NoError(t, err)
	require.Equal(t, auth.StatusAnonymous, resp.(SessionResponse).Status)

	_, err = call(t, h, "login", LoginParams{Email: "a@b.co", Password: "12345"})
	requireCode(t, err, "INVALID_CREDENTIALS")

	resp, err = call(t, h, "login", LoginParams{Email: "a@b.co", Password: "123456"})
	require.NoError(t, err)
	session := resp.(SessionResponse)
	require.Equal(t, auth.StatusAuthenticated, session.Status)
	require.Equal(t, "a@b.co", session.User.Email)

	name := "Alice"
	resp, err = call(t, h, "update_user", UpdateUserParams{Name: &name})
	require.NoError(t, err)
	require.Equal(t, "Alice", resp.(auth.User).Name)

	resp, err = call(t, h, "logout", nil)
	require.NoError(t, err)
	require.Equal(t, auth.StatusAnonymous, resp.(SessionResponse).Status)
	require.Nil(t, resp.(SessionResponse).User)
}

func TestHandler_SignupRejectsMismatch(t *testing.T) {
	h := newTestHandler(t)

	_, err := call(t, h, "signup", SignupParams{Name: "Ada", Email: "ada@x.io", Password: "secret1", ConfirmPassword: "secret2"})
	requireCode(t, err, "INVALID_CREDENTIALS")

	resp, err := call(t, h, "signup", SignupParams{Name: "Ada", Email: "ada@x.io", Password: "secret1", ConfirmPassword: "secret1"})
	require.NoError(t, err)
	require.Equal(t, "Ada", resp.(SessionResponse).User.Name)
}

func TestHandler_ProtectedToolsRequireSession(t *testing.T) {
	h := newTestHandler(t)

	for _, tool := range buildToolCatalog() {
		if !tool.Protected {
			continue
		}
		_, err := call(t, h, tool.Name, nil)
		requireCode(t, err, "NOT_AUTHENTICATED")
	}

	// password_strength works signed out
	resp, err := call(t, h, "password_strength", PasswordStrengthParams{Password: "Abcdefg1!"})
	require.NoError(t, err)
	require.Equal(t, 5, resp.(auth.Strength).Score)
}

func TestHandler_ProjectCommands(t *testing.T) {
	h := newTestHandler(t)
	login(t, h)

	resp, err := call(t, h, "add_project", AddProjectParams{Name: "Vault", Progress: 150})
	require.NoError(t, err)
	proj := resp.(dashboard.Project)
	require.Equal(t, 100, proj.Progress)
	require.Equal(t, dashboard.ProjectActive, proj.Status)

	status := dashboard.ProjectPaused
	resp, err = call(t, h, "update_project", UpdateProjectParams{ID: proj.ID, Status: &status})
	require.NoError(t, err)
	require.Equal(t, dashboard.ProjectPaused, resp.(dashboard.Project).Status)
	require.Equal(t, "Vault", resp.(dashboard.Project).Name)

	_, err = call(t, h, "update_project", UpdateProjectParams{ID: "project-missing", Status: &status})
	requireCode(t, err, "PROJECT_NOT_FOUND")

	_, err = call(t, h, "delete_project", IDParams{ID: proj.ID})
	require.NoError(t, err)

	resp, err = call(t, h, "list_projects", nil)
	require.NoError(t, err)
	require.Len(t, resp.([]dashboard.Project), 6)

	_, err = call(t, h, "add_project", AddProjectParams{})
	requireCode(t, err, "INVALID_INPUT")
}

func TestHandler_NotificationCommands(t *testing.T) {
	h := newTestHandler(t)
	login(t, h)

	resp, err := call(t, h, "list_notifications", nil)
	require.NoError(t, err)
	all := resp.(NotificationsResponse)
	require.Len(t, all.Notifications, 8)

	resp, err = call(t, h, "list_notifications", ListNotificationsParams{UnreadOnly: true})
	require.NoError(t, err)
	require.Len(t, resp.(NotificationsResponse).Notifications, all.Unread)

	_, err = call(t, h, "mark_notification_read", IDParams{ID: "notification-404"})
	requireCode(t, err, "NOTIFICATION_NOT_FOUND")

	_, err = call(t, h, "mark_all_notifications_read", nil)
	require.NoError(t, err)
	resp, err = call(t, h, "list_notifications", nil)
	require.NoError(t, err)
	require.Zero(t, resp.(NotificationsResponse).Unread)

	_, err = call(t, h, "delete_notification", IDParams{ID: all.Notifications[0].ID})
	require.NoError(t, err)
	resp, err = call(t, h, "list_notifications", nil)
	require.NoError(t, err)
	require.Len(t, resp.(NotificationsResponse).Notifications, 7)
}

func TestHandler_ActivityAndStatsCommands(t *testing.T) {
	h := newTestHandler(t)
	login(t, h)

	resp, err := call(t, h, "add_activity", AddActivityParams{Action: "Rotated keys", Type: dashboard.ActivitySecurity})
	require.NoError(t, err)
	require.Equal(t, "just now", resp.(dashboard.ActivityItem).Time)

	resp, err = call(t, h, "list_activities", nil)
	require.NoError(t, err)
	activities := resp.([]dashboard.ActivityItem)
	require.Len(t, activities, 10)
	require.Equal(t, "Rotated keys", activities[0].Action)

	score := 42
	resp, err = call(t, h, "update_stats", UpdateStatsParams{SecurityScore: &score})
	require.NoError(t, err)
	require.Equal(t, 42, resp.(dashboard.Stats).SecurityScore)

	resp, err = call(t, h, "get_dashboard", nil)
	require.NoError(t, err)
	dash := resp.(DashboardResponse)
	require.Equal(t, 42, dash.Stats.SecurityScore)
	require.Len(t, dash.TeamMembers, 8)
}

func TestHandler_SettingsMergeAndValidate(t *testing.T) {
	h := newTestHandler(t)
	login(t, h)

	resp, err := call(t, h, "get_settings", nil)
	require.NoError(t, err)
	require.Equal(t, settings.Defaults(), resp.(settings.UserSettings))

	resp, err = call(t, h, "update_settings", map[string]any{
		"settings": map[string]any{"theme": "dark", "security": map[string]any{"twoFactorEnabled": true}},
	})
	require.NoError(t, err)
	saved := resp.(settings.UserSettings)
	require.Equal(t, "dark", saved.Theme)
	require.True(t, saved.Security.TwoFactorEnabled)
	require.Equal(t, 30, saved.Security.SessionTimeout)

	_, err = call(t, h, "update_settings", map[string]any{
		"settings": map[string]any{"security": map[string]any{"sessionTimeout": 0}},
	})
	requireCode(t, err, "INVALID_SETTINGS")
}

func TestHandler_MalformedArguments(t *testing.T) {
	h := newTestHandler(t)

	_, err := h.Handle(context.Background(), "login", json.RawMessage(`{"email": 5}`))
	requireCode(t, err, "INVALID_ARGUMENTS")

	_, err = call(t, h, "no_such_tool", nil)
	requireCode(t, err, "UNKNOWN_TOOL")
}

func TestRedactMasksPasswords(t *testing.T) {
	got := redact(`{"arguments":{"email":"a@b.co","password":"s3cr\"et","confirm_password":"x"}}`)
	require.NotContains(t, got, "s3cr")
	require.Contains(t, got, `"password":"***"`)
	require.Contains(t, got, `"confirm_password":"***"`)
	require.Contains(t, got, `"email":"a@b.co"`)
}

package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rpggio/shielddash/internal/domain/auth"
	"github.com/rpggio/shielddash/internal/domain/dashboard"
	"github.com/rpggio/shielddash/internal/domain/settings"
)

// AuthService defines session operations needed by MCP.
type AuthService interface {
	Status() auth.Status
	Current() (auth.User, bool)
	Login(ctx context.Context, email, password string) (auth.User, error)
	Signup(ctx context.Context, req auth.SignupRequest) (auth.User, error)
	Logout(ctx context.Context)
	UpdateUser(ctx context.Context, upd auth.UserUpdate) (auth.User, error)
}

// DashboardService defines dashboard operations needed by MCP.
type DashboardService interface {
	Snapshot() dashboard.Snapshot
	Stats() dashboard.Stats
	Activities() []dashboard.ActivityItem
	Projects() []dashboard.Project
	Notifications() []dashboard.Notification
	UnreadCount() int
	OnlineCount() int
	SearchTeam(query string) []dashboard.TeamMember
	FilterDocuments(query, docType string) []dashboard.Document
	DocumentSummary() dashboard.DocumentSummary

	AddActivity(ctx context.Context, entry dashboard.NewActivity) (dashboard.ActivityItem, error)
	AddProject(ctx context.Context, req dashboard.NewProject) (dashboard.Project, error)
	UpdateProject(ctx context.Context, id string, upd dashboard.ProjectUpdate) (dashboard.Project, error)
	DeleteProject(ctx context.Context, id string) error
	MarkNotificationRead(ctx context.Context, id string) error
	MarkAllNotificationsRead(ctx context.Context)
	DeleteNotification(ctx context.Context, id string) error
	UpdateStats(ctx context.Context, upd dashboard.StatsUpdate) dashboard.Stats
	RefreshData(ctx context.Context)
	Reset(ctx context.Context)
}

// SettingsService defines settings operations needed by MCP.
type SettingsService interface {
	Get(ctx context.Context) settings.UserSettings
	Save(ctx context.Context, s settings.UserSettings) (settings.UserSettings, error)
}

// Handler dispatches MCP tool calls.
type Handler struct {
	auth      AuthService
	dashboard DashboardService
	settings  SettingsService
	protected map[string]bool
}

// NewHandler creates a new MCP handler.
func NewHandler(services Services) *Handler {
	protected := make(map[string]bool)
	for _, tool := range buildToolCatalog() {
		if tool.Protected {
			protected[tool.Name] = true
		}
	}
	return &Handler{
		auth:      services.Auth,
		dashboard: services.Dashboard,
		settings:  services.Settings,
		protected: protected,
	}
}

// Handle dispatches a tool call to the domain services. Dashboard and
// settings tools fail with auth.ErrNotAuthenticated until a user signs in.
func (h *Handler) Handle(ctx context.Context, method string, params json.RawMessage) (any, error) {
	if h.protected[method] {
		if _, ok := h.auth.Current(); !ok {
			return nil, mapError(auth.ErrNotAuthenticated)
		}
	}

	switch method {
	// Session
	case "login":
		var req LoginParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		if _, err := h.auth.Login(ctx, req.Email, req.Password); err != nil {
			return nil, mapError(err)
		}
		return h.session(), nil
	case "signup":
		var req SignupParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		if _, err := h.auth.Signup(ctx, auth.SignupRequest{
			Name:            req.Name,
			Email:           req.Email,
			Password:        req.Password,
			ConfirmPassword: req.ConfirmPassword,
		}); err != nil {
			return nil, mapError(err)
		}
		return h.session(), nil
	case "logout":
		h.auth.Logout(ctx)
		return h.session(), nil
	case "current_user":
		return h.session(), nil
	case "update_user":
		var req UpdateUserParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		user, err := h.auth.UpdateUser(ctx, auth.UserUpdate{
			Name:        req.Name,
			Email:       req.Email,
			Avatar:      req.Avatar,
			Preferences: req.Preferences,
		})
		if err != nil {
			return nil, mapError(err)
		}
		return user, nil
	case "password_strength":
		var req PasswordStrengthParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		return auth.PasswordStrength(req.Password), nil

	// Dashboard overview
	case "get_dashboard":
		return DashboardResponse{
			Snapshot:            h.dashboard.Snapshot(),
			UnreadNotifications: h.dashboard.UnreadCount(),
			OnlineMembers:       h.dashboard.OnlineCount(),
		}, nil
	case "get_stats":
		return h.dashboard.Stats(), nil
	case "update_stats":
		var req UpdateStatsParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		return h.dashboard.UpdateStats(ctx, dashboard.StatsUpdate{
			TotalUsers:     req.TotalUsers,
			Revenue:        req.Revenue,
			Documents:      req.Documents,
			SecurityScore:  req.SecurityScore,
			UserGrowth:     req.UserGrowth,
			RevenueGrowth:  req.RevenueGrowth,
			DocumentGrowth: req.DocumentGrowth,
			SecurityGrowth: req.SecurityGrowth,
		}), nil
	case "refresh_data":
		h.dashboard.RefreshData(ctx)
		return h.dashboard.Snapshot(), nil
	case "reset_dashboard":
		h.dashboard.Reset(ctx)
		return h.dashboard.Snapshot(), nil

	// Activities
	case "list_activities":
		return h.dashboard.Activities(), nil
	case "add_activity":
		var req AddActivityParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		item, err := h.dashboard.AddActivity(ctx, dashboard.NewActivity{
			Action:  req.Action,
			Time:    req.Time,
			Type:    req.Type,
			Details: req.Details,
		})
		if err != nil {
			return nil, mapError(err)
		}
		return item, nil

	// Projects
	case "list_projects":
		return h.dashboard.Projects(), nil
	case "add_project":
		var req AddProjectParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		np := dashboard.NewProject{
			Name:     req.Name,
			Status:   req.Status,
			Progress: req.Progress,
			Team:     req.Team,
			Priority: req.Priority,
		}
		if req.DueDate != nil {
			np.DueDate = *req.DueDate
		}
		proj, err := h.dashboard.AddProject(ctx, np)
		if err != nil {
			return nil, mapError(err)
		}
		return proj, nil
	case "update_project":
		var req UpdateProjectParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		proj, err := h.dashboard.UpdateProject(ctx, req.ID, dashboard.ProjectUpdate{
			Name:     req.Name,
			Status:   req.Status,
			Progress: req.Progress,
			DueDate:  req.DueDate,
			Team:     req.Team,
			Priority: req.Priority,
		})
		if err != nil {
			return nil, mapError(err)
		}
		return proj, nil
	case "delete_project":
		var req IDParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		if err := h.dashboard.DeleteProject(ctx, req.ID); err != nil {
			return nil, mapError(err)
		}
		return OKResponse{OK: true}, nil

	// Team and documents
	case "list_team_members":
		var req ListTeamMembersParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		return TeamResponse{
			Members: h.dashboard.SearchTeam(req.Query),
			Online:  h.dashboard.OnlineCount(),
		}, nil
	case "list_documents":
		var req ListDocumentsParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		return h.dashboard.FilterDocuments(req.Query, req.Type), nil
	case "document_summary":
		return h.dashboard.DocumentSummary(), nil

	// Notifications
	case "list_notifications":
		var req ListNotificationsParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		notifications := h.dashboard.Notifications()
		if req.UnreadOnly {
			unread := notifications[:0]
			for _, n := range notifications {
				if !n.Read {
					unread = append(unread, n)
				}
			}
			notifications = unread
		}
		return NotificationsResponse{
			Notifications: notifications,
			Unread:        h.dashboard.UnreadCount(),
		}, nil
	case "mark_notification_read":
		var req IDParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		if err := h.dashboard.MarkNotificationRead(ctx, req.ID); err != nil {
			return nil, mapError(err)
		}
		return OKResponse{OK: true}, nil
	case "mark_all_notifications_read":
		h.dashboard.MarkAllNotificationsRead(ctx)
		return OKResponse{OK: true}, nil
	case "delete_notification":
		var req IDParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		if err := h.dashboard.DeleteNotification(ctx, req.ID); err != nil {
			return nil, mapError(err)
		}
		return OKResponse{OK: true}, nil

	// Settings
	case "get_settings":
		return h.settings.Get(ctx), nil
	case "update_settings":
		var req UpdateSettingsParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		current := h.settings.Get(ctx)
		if err := decodeParams(req.Settings, &current); err != nil {
			return nil, err
		}
		saved, err := h.settings.Save(ctx, current)
		if err != nil {
			return nil, mapError(err)
		}
		return saved, nil
	default:
		return nil, mapError(fmt.Errorf("%w: %s", errUnknownTool, method))
	}
}

func (h *Handler) session() SessionResponse {
	resp := SessionResponse{Status: h.auth.Status()}
	if user, ok := h.auth.Current(); ok {
		resp.User = &user
	}
	return resp
}

func decodeParams(params json.RawMessage, out any) error {
	if len(params) == 0 || string(params) == "null" {
		return nil
	}
	if err := json.Unmarshal(params, out); err != nil {
		return mapError(fmt.Errorf("%w: %v", errBadParams, err))
	}
	return nil
}

func mapError(err error) error {
	if apiErr := MapError(err); apiErr != nil {
		return apiErr
	}
	return err
}

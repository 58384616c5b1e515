package mcp

import (
	"context"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

const serverInstructions = `shielddash serves a mock security-operations dashboard: seeded stats, an activity feed, projects, team members, documents, notifications and user settings.

Workflow:
1) Sign in: login (any email, password of 6+ characters) or signup. Check with current_user.
2) Read: get_dashboard for everything at once, or the list_* tools for one collection.
3) Mutate: add_activity, add_project / update_project / delete_project, mark_notification_read / mark_all_notifications_read / delete_notification, update_stats, update_settings.
4) refresh_data regenerates stats and activities. reset_dashboard reseeds every collection and clears settings but keeps you signed in.

All data is mock data. Every change is written through to the configured store and survives a restart.

Docs:
- shielddash://docs/index
- shielddash://docs/data-model
`

type docResource struct {
	URI         string
	Name        string
	Title       string
	Description string
	Content     string
}

var docResources = []docResource{
	{
		URI:         "shielddash://docs/index",
		Name:        "docs_index",
		Title:       "shielddash docs index",
		Description: "Tool overview grouped by area, with access rules.",
		Content: `# shielddash tools

## Session (always available)

- ` + "`login`" + `, ` + "`signup`" + `, ` + "`logout`" + `, ` + "`current_user`" + `, ` + "`update_user`" + `
- ` + "`password_strength`" + ` scores a password 0-5 before signup.

Login and signup take about a second. While one is in flight ` + "`current_user`" + ` reports status ` + "`authenticating`" + `.
A failed attempt always reports ` + "`INVALID_CREDENTIALS`" + ` without naming the bad field.

## Dashboard (sign-in required)

- Overview: ` + "`get_dashboard`" + `, ` + "`get_stats`" + `, ` + "`update_stats`" + `, ` + "`refresh_data`" + `, ` + "`reset_dashboard`" + `
- Activities: ` + "`list_activities`" + `, ` + "`add_activity`" + `
- Projects: ` + "`list_projects`" + `, ` + "`add_project`" + `, ` + "`update_project`" + `, ` + "`delete_project`" + `
- Team: ` + "`list_team_members`" + ` (optional ` + "`query`" + `)
- Documents: ` + "`list_documents`" + ` (optional ` + "`query`" + ` and ` + "`type`" + `), ` + "`document_summary`" + `
- Notifications: ` + "`list_notifications`" + `, ` + "`mark_notification_read`" + `, ` + "`mark_all_notifications_read`" + `, ` + "`delete_notification`" + `
- Settings: ` + "`get_settings`" + `, ` + "`update_settings`" + `

Calling these while signed out returns ` + "`NOT_AUTHENTICATED`" + `.
`,
	},
	{
		URI:         "shielddash://docs/data-model",
		Name:        "docs_data_model",
		Title:       "shielddash data model",
		Description: "Collections, ids and the rules mutations follow.",
		Content: `# Data model

| Collection | Notes |
|---|---|
| stats | eight integer counters |
| activities | newest first, never more than 10 |
| projects | status active/completed/paused, priority low/medium/high, progress 0-100 |
| teamMembers | status online/offline/away |
| documents | status processing/completed/error, size in bytes |
| notifications | type info/warning/error/success, read flag |

## Ids

Seeded entries use ` + "`{kind}-1..n`" + `. Entries you add get ` + "`{kind}-{millis}`" + ` and are never reused.

## Mutations

- Unknown ids return ` + "`PROJECT_NOT_FOUND`" + ` or ` + "`NOTIFICATION_NOT_FOUND`" + ` and change nothing.
- Progress outside 0-100 is clamped.
- ` + "`refresh_data`" + ` replaces stats and activities only.
- ` + "`update_settings`" + ` merges the fields you send; ` + "`security.sessionTimeout`" + ` must be positive.
`,
	},
}

func registerDocResources(server *sdkmcp.Server) {
	for _, doc := range docResources {
		server.AddResource(&sdkmcp.Resource{
			URI:         doc.URI,
			Name:        doc.Name,
			Title:       doc.Title,
			Description: doc.Description,
			MIMEType:    "text/markdown",
			Size:        int64(len(doc.Content)),
		}, func(_ context.Context, req *sdkmcp.ReadResourceRequest) (*sdkmcp.ReadResourceResult, error) {
			uri := doc.URI
			if req != nil && req.Params != nil && req.Params.URI != "" {
				uri = req.Params.URI
			}
			return &sdkmcp.ReadResourceResult{
				Contents: []*sdkmcp.ResourceContents{{
					URI:      uri,
					MIMEType: "text/markdown",
					Text:     doc.Content,
				}},
			}, nil
		})
	}
}

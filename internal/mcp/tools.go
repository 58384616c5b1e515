package mcp

func objectSchema(properties map[string]any, required ...string) map[string]any {
	schema := map[string]any{
		"type":       "object",
		"properties": properties,
	}
	if len(required) > 0 {
		schema["required"] = required
	}
	return schema
}

func stringProp(description string) map[string]any {
	return map[string]any{"type": "string", "description": description}
}

func intProp(description string) map[string]any {
	return map[string]any{"type": "integer", "description": description}
}

func enumProp(description string, values ...string) map[string]any {
	return map[string]any{"type": "string", "description": description, "enum": values}
}

// buildToolCatalog returns all available MCP tools
func buildToolCatalog() []ToolDefinition {
	return []ToolDefinition{
		// Session
		{
			Name:        "login",
			Description: "Sign in with an email and a password of at least 6 characters",
			InputSchema: objectSchema(map[string]any{
				"email":    stringProp("Account email"),
				"password": stringProp("Password (min 6 characters)"),
			}, "email", "password"),
		},
		{
			Name:        "signup",
			Description: "Create an account and sign in",
			InputSchema: objectSchema(map[string]any{
				"name":             stringProp("Display name"),
				"email":            stringProp("Account email"),
				"password":         stringProp("Password (min 6 characters)"),
				"confirm_password": stringProp("Must equal password"),
			}, "name", "email", "password", "confirm_password"),
		},
		{
			Name:        "logout",
			Description: "Sign out and clear the persisted session",
			InputSchema: objectSchema(map[string]any{}),
		},
		{
			Name:        "current_user",
			Description: "Get the session status and the signed-in user, if any",
			InputSchema: objectSchema(map[string]any{}),
		},
		{
			Name:        "update_user",
			Description: "Update fields of the signed-in user; omitted fields are kept",
			InputSchema: objectSchema(map[string]any{
				"name":   stringProp("Display name"),
				"email":  stringProp("Account email"),
				"avatar": stringProp("Avatar URL"),
				"preferences": objectSchema(map[string]any{
					"theme":         enumProp("Colour scheme", "light", "dark"),
					"notifications": map[string]any{"type": "boolean"},
					"privacy":       enumProp("Profile visibility", "public", "private"),
				}),
			}),
		},
		{
			Name:        "password_strength",
			Description: "Rate a candidate password from 0 (Very Weak) to 5 (Strong)",
			InputSchema: objectSchema(map[string]any{
				"password": stringProp("Candidate password"),
			}, "password"),
		},

		// Dashboard overview
		{
			Name:        "get_dashboard",
			Description: "Get every dashboard collection plus unread and online counts",
			InputSchema: objectSchema(map[string]any{}),
			Protected:   true,
		},
		{
			Name:        "get_stats",
			Description: "Get the headline counters",
			InputSchema: objectSchema(map[string]any{}),
			Protected:   true,
		},
		{
			Name:        "update_stats",
			Description: "Overwrite selected headline counters",
			InputSchema: objectSchema(map[string]any{
				"total_users":     intProp("Total users"),
				"revenue":         intProp("Revenue"),
				"documents":       intProp("Document count"),
				"security_score":  intProp("Security score"),
				"user_growth":     intProp("User growth percent"),
				"revenue_growth":  intProp("Revenue growth percent"),
				"document_growth": intProp("Document growth percent"),
				"security_growth": intProp("Security growth percent"),
			}),
			Protected: true,
		},
		{
			Name:        "refresh_data",
			Description: "Regenerate stats and the activity feed; other collections are kept",
			InputSchema: objectSchema(map[string]any{}),
			Protected:   true,
		},
		{
			Name:        "reset_dashboard",
			Description: "Discard all stored dashboard data and settings and reseed; the session is kept",
			InputSchema: objectSchema(map[string]any{}),
			Protected:   true,
		},

		// Activities
		{
			Name:        "list_activities",
			Description: "List the activity feed, newest first (at most 10)",
			InputSchema: objectSchema(map[string]any{}),
			Protected:   true,
		},
		{
			Name:        "add_activity",
			Description: "Prepend an entry to the activity feed",
			InputSchema: objectSchema(map[string]any{
				"action":  stringProp("What happened"),
				"time":    stringProp("Relative time label (default \"just now\")"),
				"type":    enumProp("Activity category", "user", "document", "security", "team"),
				"details": stringProp("Extra detail"),
			}, "action"),
			Protected: true,
		},

		// Projects
		{
			Name:        "list_projects",
			Description: "List projects",
			InputSchema: objectSchema(map[string]any{}),
			Protected:   true,
		},
		{
			Name:        "add_project",
			Description: "Create a project; progress is clamped to 0-100",
			InputSchema: objectSchema(map[string]any{
				"name":     stringProp("Project name"),
				"status":   enumProp("Project status (default active)", "active", "completed", "paused"),
				"progress": intProp("Percent complete"),
				"due_date": stringProp("Due date (RFC 3339)"),
				"team": map[string]any{
					"type":        "array",
					"description": "Team member ids",
					"items":       map[string]any{"type": "string"},
				},
				"priority": enumProp("Priority (default medium)", "low", "medium", "high"),
			}, "name"),
			Protected: true,
		},
		{
			Name:        "update_project",
			Description: "Update fields of a project; omitted fields are kept",
			InputSchema: objectSchema(map[string]any{
				"id":       stringProp("Project id"),
				"name":     stringProp("Project name"),
				"status":   enumProp("Project status", "active", "completed", "paused"),
				"progress": intProp("Percent complete"),
				"due_date": stringProp("Due date (RFC 3339)"),
				"team": map[string]any{
					"type":        "array",
					"description": "Team member ids",
					"items":       map[string]any{"type": "string"},
				},
				"priority": enumProp("Priority", "low", "medium", "high"),
			}, "id"),
			Protected: true,
		},
		{
			Name:        "delete_project",
			Description: "Delete a project",
			InputSchema: objectSchema(map[string]any{
				"id": stringProp("Project id"),
			}, "id"),
			Protected: true,
		},

		// Team and documents
		{
			Name:        "list_team_members",
			Description: "List team members, optionally matching a query against name, email or role",
			InputSchema: objectSchema(map[string]any{
				"query": stringProp("Case-insensitive search text"),
			}),
			Protected: true,
		},
		{
			Name:        "list_documents",
			Description: "List documents, optionally filtered by name and type",
			InputSchema: objectSchema(map[string]any{
				"query": stringProp("Case-insensitive name search"),
				"type":  stringProp("File type such as PDF or DOCX, or \"all\""),
			}),
			Protected: true,
		},
		{
			Name:        "document_summary",
			Description: "Count documents by status and total their size",
			InputSchema: objectSchema(map[string]any{}),
			Protected:   true,
		},

		// Notifications
		{
			Name:        "list_notifications",
			Description: "List notifications with the unread count",
			InputSchema: objectSchema(map[string]any{
				"unread_only": map[string]any{"type": "boolean", "description": "Only return unread notifications"},
			}),
			Protected: true,
		},
		{
			Name:        "mark_notification_read",
			Description: "Mark one notification as read",
			InputSchema: objectSchema(map[string]any{
				"id": stringProp("Notification id"),
			}, "id"),
			Protected: true,
		},
		{
			Name:        "mark_all_notifications_read",
			Description: "Mark every notification as read",
			InputSchema: objectSchema(map[string]any{}),
			Protected:   true,
		},
		{
			Name:        "delete_notification",
			Description: "Delete a notification",
			InputSchema: objectSchema(map[string]any{
				"id": stringProp("Notification id"),
			}, "id"),
			Protected: true,
		},

		// Settings
		{
			Name:        "get_settings",
			Description: "Get user settings, or the defaults if none were saved",
			InputSchema: objectSchema(map[string]any{}),
			Protected:   true,
		},
		{
			Name:        "update_settings",
			Description: "Merge a partial settings document into the current settings and save",
			InputSchema: objectSchema(map[string]any{
				"settings": objectSchema(map[string]any{
					"theme": stringProp("Colour scheme"),
					"notifications": objectSchema(map[string]any{
						"email":    map[string]any{"type": "boolean"},
						"push":     map[string]any{"type": "boolean"},
						"security": map[string]any{"type": "boolean"},
						"updates":  map[string]any{"type": "boolean"},
					}),
					"privacy": objectSchema(map[string]any{
						"profileVisibility": enumProp("Who can see the profile", "public", "private"),
						"dataSharing":       map[string]any{"type": "boolean"},
						"analytics":         map[string]any{"type": "boolean"},
					}),
					"security": objectSchema(map[string]any{
						"twoFactorEnabled": map[string]any{"type": "boolean"},
						"sessionTimeout":   intProp("Minutes, must be positive"),
						"loginAlerts":      map[string]any{"type": "boolean"},
					}),
				}),
			}, "settings"),
			Protected: true,
		},
	}
}

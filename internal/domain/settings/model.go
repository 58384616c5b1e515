package settings

type NotificationSettings struct {
	Email    bool `json:"email"`
	Push     bool `json:"push"`
	Security bool `json:"security"`
	Updates  bool `json:"updates"`
}

// Visibility is who may see the user's profile
type Visibility string

const (
	VisibilityPublic  Visibility = "public"
	VisibilityPrivate Visibility = "private"
)

type PrivacySettings struct {
	ProfileVisibility Visibility `json:"profileVisibility"`
	DataSharing       bool       `json:"dataSharing"`
	Analytics         bool       `json:"analytics"`
}

type SecuritySettings struct {
	TwoFactorEnabled bool `json:"twoFactorEnabled"`
	SessionTimeout   int  `json:"sessionTimeout"` // minutes
	LoginAlerts      bool `json:"loginAlerts"`
}

// UserSettings is the document persisted under the userSettings key.
type UserSettings struct {
	Theme         string               `json:"theme"`
	Notifications NotificationSettings `json:"notifications"`
	Privacy       PrivacySettings      `json:"privacy"`
	Security      SecuritySettings     `json:"security"`
}

// Defaults returns the settings shown before the user saves anything.
func Defaults() UserSettings {
	return UserSettings{
		Theme: "light",
		Notifications: NotificationSettings{
			Email:    true,
			Push:     true,
			Security: true,
			Updates:  false,
		},
		Privacy: PrivacySettings{
			ProfileVisibility: VisibilityPrivate,
			DataSharing:       false,
			Analytics:         true,
		},
		Security: SecuritySettings{
			TwoFactorEnabled: false,
			SessionTimeout:   30,
			LoginAlerts:      true,
		},
	}
}

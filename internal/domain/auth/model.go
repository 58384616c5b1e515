package auth

import "time"

// Status is the session state
type Status string

const (
	StatusAnonymous      Status = "anonymous"
	StatusAuthenticating Status = "authenticating"
	StatusAuthenticated  Status = "authenticated"
)

// Theme is the preferred colour scheme
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// Privacy controls profile visibility
type Privacy string

const (
	PrivacyPublic  Privacy = "public"
	PrivacyPrivate Privacy = "private"
)

type Preferences struct {
	Theme         Theme   `json:"theme"`
	Notifications bool    `json:"notifications"`
	Privacy       Privacy `json:"privacy"`
}

// DefaultPreferences are assigned to every new user
func DefaultPreferences() Preferences {
	return Preferences{
		Theme:         ThemeLight,
		Notifications: true,
		Privacy:       PrivacyPrivate,
	}
}

// User is the single signed-in identity
type User struct {
	ID          string      `json:"id"`
	Email       string      `json:"email"`
	Name        string      `json:"name"`
	Avatar      string      `json:"avatar,omitempty"`
	CreatedAt   time.Time   `json:"createdAt"`
	Preferences Preferences `json:"preferences"`
}

// UserUpdate holds fields to merge into the current user; nil fields are
// left untouched.
type UserUpdate struct {
	Name        *string
	Email       *string
	Avatar      *string
	Preferences *Preferences
}

func (u UserUpdate) apply(user User) User {
	if u.Name != nil {
		user.Name = *u.Name
	}
	if u.Email != nil {
		user.Email = *u.Email
	}
	if u.Avatar != nil {
		user.Avatar = *u.Avatar
	}
	if u.Preferences != nil {
		user.Preferences = *u.Preferences
	}
	return user
}

// SignupRequest carries the signup form fields
type SignupRequest struct {
	Name            string
	Email           string
	Password        string
	ConfirmPassword string
}

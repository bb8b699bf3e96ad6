package models

// Preferences are free-form user preferences stored on the account.
type Preferences map[string]any

// User is the account of the currently authenticated user.
type User struct {
	ID                string      `json:"$id"`
	CreatedAt         string      `json:"$createdAt"`
	UpdatedAt         string      `json:"$updatedAt"`
	Name              string      `json:"name"`
	Registration      string      `json:"registration"`
	Status            bool        `json:"status"`
	Labels            []string    `json:"labels"`
	PasswordUpdate    string      `json:"passwordUpdate"`
	Email             string      `json:"email"`
	Phone             string      `json:"phone"`
	EmailVerification bool        `json:"emailVerification"`
	PhoneVerification bool        `json:"phoneVerification"`
	MFA               bool        `json:"mfa"`
	Prefs             Preferences `json:"prefs"`
	AccessedAt        string      `json:"accessedAt"`
}

// Session is a login session. Secret is only populated for server-side
// requests made with an API key.
type Session struct {
	ID          string `json:"$id"`
	CreatedAt   string `json:"$createdAt"`
	UpdatedAt   string `json:"$updatedAt"`
	UserID      string `json:"userId"`
	Expire      string `json:"expire"`
	Provider    string `json:"provider"`
	ProviderUID string `json:"providerUid"`
	IP          string `json:"ip"`
	OSName      string `json:"osName"`
	ClientType  string `json:"clientType"`
	ClientName  string `json:"clientName"`
	DeviceName  string `json:"deviceName"`
	CountryCode string `json:"countryCode"`
	CountryName string `json:"countryName"`
	Current     bool   `json:"current"`
	Secret      string `json:"secret"`
}

type SessionList struct {
	Total    int       `json:"total"`
	Sessions []Session `json:"sessions"`
}

type JWT struct {
	JWT string `json:"jwt"`
}

type HealthVersion struct {
	Version string `json:"version"`
}

// Package role builds the role strings used inside permissions.
package role

func Any() string {
	return "any"
}

// Users is any authenticated user, optionally narrowed to "verified" or
// "unverified".
func Users(status ...string) string {
	if len(status) > 0 && status[0] != "" {
		return "users/" + status[0]
	}
	return "users"
}

func User(id string, status ...string) string {
	if len(status) > 0 && status[0] != "" {
		return "user:" + id + "/" + status[0]
	}
	return "user:" + id
}

func Guests() string {
	return "guests"
}

// Team is every member of a team, or only members holding teamRole.
func Team(id string, teamRole ...string) string {
	if len(teamRole) > 0 && teamRole[0] != "" {
		return "team:" + id + "/" + teamRole[0]
	}
	return "team:" + id
}

func Member(id string) string {
	return "member:" + id
}

func Label(name string) string {
	return "label:" + name
}

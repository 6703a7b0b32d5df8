package users

import "strings"

// IsProfileComplete reports whether a user may pass the onboarding gate:
// full name, location, org, and workspace must all be non-blank and at
// least one interest must be selected. A nil profile is never complete.
func IsProfileComplete(profile *UserProfile) bool {
	if profile == nil {
		return false
	}

	required := []string{
		profile.FullName,
		profile.Location,
		profile.Org,
		profile.Workspace,
	}
	for _, field := range required {
		if strings.TrimSpace(field) == "" {
			return false
		}
	}

	return len(profile.Interests) > 0
}

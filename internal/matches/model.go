package matches

// MatchedUser is the public slice of a matched member's profile.
type MatchedUser struct {
	UserID          string  `json:"userId"`
	FullName        string  `json:"fullName"`
	ProfilePhotoURL *string `json:"profilePhotoUrl"`
	Location        string  `json:"location"`
	Org             string  `json:"org"`
	Role            string  `json:"role"`
}

// UserMatch pairs a member with a score and shared context.
type UserMatch struct {
	MatchScore      float64     `json:"matchScore"`
	CommonInterests []string    `json:"commonInterests"`
	User            MatchedUser `json:"user"`
	Context         string      `json:"context"`
}

// Community describes a joinable community.
type Community struct {
	CommunityID  string `json:"communityId"`
	Name         string `json:"name"`
	Description  string `json:"description"`
	SlackChannel string `json:"slackChannel"`
}

// CommunityMatch pairs a community with a score and the interests that drove it.
type CommunityMatch struct {
	MatchScore        float64   `json:"matchScore"`
	MatchingInterests []string  `json:"matchingInterests"`
	Community         Community `json:"community"`
}

// NetworkNode is a member in the relationship graph.
type NetworkNode struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Group int    `json:"group"`
}

// NetworkLink is a labeled relationship between two members.
type NetworkLink struct {
	Source       string `json:"source"`
	Target       string `json:"target"`
	Relationship string `json:"relationship"`
}

// NetworkGraph is the member relationship graph rendered on the network page.
type NetworkGraph struct {
	Nodes []NetworkNode `json:"nodes"`
	Links []NetworkLink `json:"links"`
}

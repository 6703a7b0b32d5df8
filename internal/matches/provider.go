package matches

// Provider serves the curated match and network fixtures. Scores are
// static: there is no ranking engine behind this surface, only a stable
// seam the router reads through.
type Provider struct {
	userMatches      []UserMatch
	communityMatches []CommunityMatch
	network          NetworkGraph
}

// NewProvider constructs a provider over the built-in fixtures.
func NewProvider() *Provider {
	return &Provider{
		userMatches:      fixtureUserMatches(),
		communityMatches: fixtureCommunityMatches(),
		network:          fixtureNetwork(),
	}
}

// UserMatches returns recommended people-matches for the given member.
func (p *Provider) UserMatches(userID string) []UserMatch {
	snapshot := make([]UserMatch, len(p.userMatches))
	copy(snapshot, p.userMatches)
	return snapshot
}

// CommunityMatches returns recommended community-matches for the given member.
func (p *Provider) CommunityMatches(userID string) []CommunityMatch {
	snapshot := make([]CommunityMatch, len(p.communityMatches))
	copy(snapshot, p.communityMatches)
	return snapshot
}

// Network returns the relationship graph centered on the given member.
func (p *Provider) Network(userID string) NetworkGraph {
	graph := NetworkGraph{
		Nodes: make([]NetworkNode, len(p.network.Nodes)),
		Links: make([]NetworkLink, len(p.network.Links)),
	}
	copy(graph.Nodes, p.network.Nodes)
	copy(graph.Links, p.network.Links)
	return graph
}

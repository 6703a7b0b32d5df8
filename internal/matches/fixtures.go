package matches

func photoURL(url string) *string {
	return &url
}

func fixtureUserMatches() []UserMatch {
	return []UserMatch{
		{
			MatchScore:      0.92,
			CommonInterests: []string{"Hackathons", "Mentorship"},
			Context:         "You co-led the Spring 2024 TDP hackathon onboarding circle.",
			User: MatchedUser{
				UserID:          "ENA492",
				FullName:        "Ananya Vangoor",
				ProfilePhotoURL: photoURL("https://images.unsplash.com/photo-1521572267360-ee0c2909d518?auto=format&fit=facearea&w=256&h=256"),
				Location:        "Plano, TX",
				Org:             "Enterprise Product & Experience",
				Role:            "Associate Software Engineer",
			},
		},
		{
			MatchScore:      0.88,
			CommonInterests: []string{"Hackathons", "Coffee Chats"},
			Context:         "Partnered with you on a hackathon showcase and the design system sprint for the TDP welcome portal.",
			User: MatchedUser{
				UserID:          "ENA493",
				FullName:        "Jacky Lin",
				ProfilePhotoURL: photoURL("https://images.unsplash.com/photo-1488426862026-3ee34a7d66df?auto=format&fit=facearea&w=256&h=256"),
				Location:        "Plano, TX",
				Org:             "Card Tech",
				Role:            "Associate Software Engineer",
			},
		},
		{
			MatchScore:      0.81,
			CommonInterests: []string{"Coffee Chats", "Mentorship"},
			Context:         "You both run weekly coffee chat rotations for new hires and share mentorship playbooks.",
			User: MatchedUser{
				UserID:          "ENA494",
				FullName:        "Kausar Alkaderi",
				ProfilePhotoURL: photoURL("https://images.unsplash.com/photo-1544723795-3fb6469f5b39?auto=format&fit=facearea&w=256&h=256"),
				Location:        "Plano, TX",
				Org:             "Enterprise Platforms",
				Role:            "Associate Software Engineer",
			},
		},
		{
			MatchScore:      0.78,
			CommonInterests: []string{"AI Ethics", "Coffee Chats"},
			Context:         "Matthew is piloting responsible AI sessions that align with your community goals.",
			User: MatchedUser{
				UserID:          "ENA495",
				FullName:        "Matthew Straughn",
				ProfilePhotoURL: photoURL("https://images.unsplash.com/photo-1529539795054-3c162aab037a?auto=format&fit=facearea&w=256&h=256"),
				Location:        "McLean, VA",
				Org:             "Enterprise Data",
				Role:            "Associate Software Engineer",
			},
		},
	}
}

func fixtureCommunityMatches() []CommunityMatch {
	return []CommunityMatch{
		{
			MatchScore:        0.96,
			MatchingInterests: []string{"Hackathons", "Design Systems"},
			Community: Community{
				CommunityID:  "comm-uuid-1",
				Name:         "Capital One Builders Guild",
				Description:  "Build, ship, and demo passion projects alongside fellow TDPs across tech stacks.",
				SlackChannel: "#tdp-builders",
			},
		},
		{
			MatchScore:        0.91,
			MatchingInterests: []string{"Community Building", "Coffee Chats"},
			Community: Community{
				CommunityID:  "comm-uuid-2",
				Name:         "Wellness Warriors DFW",
				Description:  "Weekend pickleball ladders, hiking meetups, and coffee chat pairings in DFW.",
				SlackChannel: "#tdp-wellness-dfw",
			},
		},
		{
			MatchScore:        0.87,
			MatchingInterests: []string{"AI Ethics", "Data Storytelling"},
			Community: Community{
				CommunityID:  "comm-uuid-3",
				Name:         "Responsible AI Roundtable",
				Description:  "Monthly salons to explore fairness, transparency, and responsible AI in Capital One products.",
				SlackChannel: "#tdp-ai-ethics",
			},
		},
	}
}

func fixtureNetwork() NetworkGraph {
	return NetworkGraph{
		Nodes: []NetworkNode{
			{ID: "ENA487", Name: "Rithvik Senthilkumar", Group: 1},
			{ID: "ENA492", Name: "Ananya Vangoor", Group: 2},
			{ID: "ENA493", Name: "Jacky Lin", Group: 3},
			{ID: "ENA494", Name: "Kausar Alkaderi", Group: 2},
			{ID: "ENA495", Name: "Matthew Straughn", Group: 3},
		},
		Links: []NetworkLink{
			{Source: "ENA487", Target: "ENA492", Relationship: "Hackathon Teammate"},
			{Source: "ENA487", Target: "ENA493", Relationship: "Design System Sprint"},
			{Source: "ENA487", Target: "ENA494", Relationship: "Coffee Chat Rotation"},
			{Source: "ENA492", Target: "ENA495", Relationship: "AI Guild"},
			{Source: "ENA493", Target: "ENA494", Relationship: "Community Launch"},
		},
	}
}

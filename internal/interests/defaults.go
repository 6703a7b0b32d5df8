package interests

// DefaultInterests returns the interest tags every fresh deployment starts
// with. Profiles created during onboarding select from (or extend) these.
func DefaultInterests() []Interest {
	return []Interest{
		{ID: "interest-uuid-1", Name: "Design Systems"},
		{ID: "interest-uuid-2", Name: "Hackathons"},
		{ID: "interest-uuid-3", Name: "Mentorship"},
		{ID: "interest-uuid-4", Name: "AI Ethics"},
		{ID: "interest-uuid-5", Name: "Community Building"},
		{ID: "interest-uuid-6", Name: "Product Strategy"},
		{ID: "interest-uuid-7", Name: "Data Storytelling"},
		{ID: "interest-uuid-8", Name: "Coffee Chats"},
	}
}

package users

import (
	"github.com/MarcoPoloResearchLab/onematch/backend/internal/interests"
)

// SeedProfiles returns the member profiles a fresh deployment starts with.
// Interests reference the default catalog entries by position.
func SeedProfiles() []UserProfile {
	tags := interests.DefaultInterests()

	return []UserProfile{
		{
			UserID:          "ENA487",
			Username:        "rsenthilkumar",
			FullName:        "Rithvik Senthilkumar",
			ProfilePhotoURL: photoURL("https://images.unsplash.com/photo-1500648767791-00dcc994a43e?auto=format&fit=facearea&w=256&h=256"),
			Location:        "Plano, TX",
			Org:             "Cloud Platform",
			Workspace:       "Plano Campus",
			Interests:       []interests.Interest{tags[1], tags[2], tags[3], tags[7]},
			Bio:             "Associate Software Engineer helping TDPs ship ideas and grow their networks.",
			Goals:           "Pair every new hire with a cross-site mentor in week one.",
		},
		{
			UserID:          "ENA492",
			Username:        "avangoor",
			FullName:        "Ananya Vangoor",
			ProfilePhotoURL: photoURL("https://images.unsplash.com/photo-1521572267360-ee0c2909d518?auto=format&fit=facearea&w=256&h=256"),
			Location:        "Plano, TX",
			Org:             "Enterprise Product & Experience",
			Workspace:       "Plano Campus",
			Interests:       []interests.Interest{tags[0], tags[1], tags[2], tags[5]},
			Bio:             "Associate Software Engineer building programs that help TDPs find their people from day zero.",
			Goals:           "Pilot OneMatch across cohorts and spark cross-site collaboration.",
		},
		{
			UserID:          "ENA493",
			Username:        "jlin",
			FullName:        "Jacky Lin",
			ProfilePhotoURL: photoURL("https://images.unsplash.com/photo-1488426862026-3ee34a7d66df?auto=format&fit=facearea&w=256&h=256"),
			Location:        "Plano, TX",
			Org:             "Card Tech",
			Workspace:       "Plano Campus",
			Interests:       []interests.Interest{tags[0], tags[4], tags[5]},
			Bio:             "Associate Software Engineer focused on inclusive experiences and mentorship programs.",
			Goals:           "Scale the design system guild across cohorts.",
		},
		{
			UserID:          "ENA494",
			Username:        "kalkaderi",
			FullName:        "Kausar Alkaderi",
			ProfilePhotoURL: photoURL("https://images.unsplash.com/photo-1544723795-3fb6469f5b39?auto=format&fit=facearea&w=256&h=256"),
			Location:        "Plano, TX",
			Org:             "Enterprise Platforms",
			Workspace:       "Plano Campus",
			Interests:       []interests.Interest{tags[4], tags[7]},
			Bio:             "Associate Software Engineer matching people to conversations that move careers forward.",
			Goals:           "Pilot weekly coffee chat rotations for TDP newcomers.",
		},
		{
			UserID:          "ENA495",
			Username:        "mstraughn",
			FullName:        "Matthew Straughn",
			ProfilePhotoURL: photoURL("https://images.unsplash.com/photo-1529539795054-3c162aab037a?auto=format&fit=facearea&w=256&h=256"),
			Location:        "Plano, TX",
			Org:             "Enterprise Data",
			Workspace:       "Plano Campus",
			Interests:       []interests.Interest{tags[3], tags[6]},
			Bio:             "Associate Software Engineer running responsible AI salons and storytelling workshops.",
			Goals:           "Bring more voices into the Responsible AI roundtable.",
		},
	}
}

func photoURL(url string) *string {
	return &url
}

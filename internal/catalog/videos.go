package catalog

import "justice-play/internal/domain"

var (
	bothTiers  = []domain.AgeTier{domain.AgeTierJunior, domain.AgeTierSenior}
	seniorOnly = []domain.AgeTier{domain.AgeTierSenior}
)

func libraryVideos() []domain.Video {
	return []domain.Video{
		{
			ID:          1,
			Title:       "What Are Rights?",
			Description: "A fun introduction to understanding what rights are and why they're important for everyone.",
			URL:         "https://www.youtube.com/embed/pOH0I4zDieM",
			Category:    "Basic Rights",
			Duration:    "3:24",
			Points:      50,
			Tiers:       bothTiers,
		},
		{
			ID:          2,
			Title:       "The Right to Education",
			Description: "Learn why every child has the right to go to school and learn.",
			URL:         "https://www.youtube.com/embed/Y6gMRJz7v0s",
			Category:    "Education Rights",
			Duration:    "4:12",
			Points:      75,
			Tiers:       bothTiers,
		},
		{
			ID:          3,
			Title:       "Rights and Responsibilities",
			Description: "With rights come responsibilities. Learn how they work together!",
			URL:         "https://www.youtube.com/embed/TyP09S0UEzA",
			Category:    "Responsibilities",
			Duration:    "5:07",
			Points:      100,
			Tiers:       bothTiers,
		},
		{
			ID:          4,
			Title:       "Freedom of Expression",
			Description: "Understanding how to express yourself and respect others' opinions.",
			URL:         "https://www.youtube.com/embed/5TPJPzY5dRw",
			Category:    "Expression Rights",
			Duration:    "3:58",
			Points:      85,
			Tiers:       seniorOnly,
		},
		{
			ID:          5,
			Title:       "The Right to Play",
			Description: "Why playing and having fun is actually one of your important rights!",
			URL:         "https://www.youtube.com/embed/uMYLDjSORpQ",
			Category:    "Play Rights",
			Duration:    "3:15",
			Points:      60,
			Tiers:       bothTiers,
		},
		{
			ID:          6,
			Title:       "Privacy Rights",
			Description: "Learn about your right to privacy and personal space.",
			URL:         "https://www.youtube.com/embed/dbDFe3fS7gM",
			Category:    "Privacy",
			Duration:    "4:42",
			Points:      90,
			Tiers:       seniorOnly,
		},
	}
}

package catalog

import "justice-play/internal/domain"

func seniorLevels() []domain.LevelDefinition {
	return []domain.LevelDefinition{
		{
			ID:           1,
			Name:         "Kid's Castle",
			Description:  "Learn about basic rights every child has",
			MapPosition:  domain.Position{X: 70, Y: 85},
			PointsToEarn: 50,
			Questions: []domain.Question{
				{
					ID:                 1,
					Prompt:             "Every child has the right to:",
					Options:            []string{"Play video games all day", "Education", "Stay up late", "Choose what to eat for every meal"},
					CorrectOptionIndex: 1,
					Explanation:        "Education is a fundamental right of every child.",
					SupplementalFact:   "The UN Convention on the Rights of the Child states that all children have the right to education.",
				},
				{
					ID:                 2,
					Prompt:             "Who is responsible for protecting children's rights?",
					Options:            []string{"Only parents", "Only teachers", "Only the government", "Everyone in society"},
					CorrectOptionIndex: 3,
					Explanation:        "Everyone in society has a responsibility to protect children's rights.",
					SupplementalFact:   "While parents, schools and governments have special duties, protecting children is everyone's responsibility.",
				},
				{
					ID:                 3,
					Prompt:             "Children have the right to express their opinions about matters that affect them.",
					Options:            []string{"True", "False", "Only if they're teenagers", "Only in school"},
					CorrectOptionIndex: 0,
					Explanation:        "True! Children have the right to express their opinions about matters affecting them.",
					SupplementalFact:   "Article 12 of the UN Convention on the Rights of the Child gives children the right to express their views.",
				},
				{
					ID:                 4,
					Prompt:             "Which of these is NOT a basic right of children?",
					Options:            []string{"Health care", "Protection from harm", "Having the latest toys", "Nutritious food"},
					CorrectOptionIndex: 2,
					Explanation:        "Having the latest toys is not a basic right, but a want or desire.",
					SupplementalFact:   "Basic rights include necessities like healthcare, protection, food, and shelter, not luxury items.",
				},
				{
					ID:                 5,
					Prompt:             "Children have the right to play and rest.",
					Options:            []string{"True", "False", "Only after finishing homework", "Only on weekends"},
					CorrectOptionIndex: 0,
					Explanation:        "True! Play and rest are recognized rights of children.",
					SupplementalFact:   "Article 31 of the UN Convention recognizes the right of children to rest, leisure, play and recreational activities.",
				},
			},
		},
		{
			ID:           2,
			Name:         "Mountain of Fairness",
			Description:  "Explore equality and fairness in society",
			MapPosition:  domain.Position{X: 45, Y: 45},
			PointsToEarn: 75,
			Questions: []domain.Question{
				{
					ID:                 1,
					Prompt:             "What does 'equality' mean for children?",
					Options:            []string{"Getting exactly the same things", "Being treated with the same respect", "Having the same toys", "Going to the same school"},
					CorrectOptionIndex: 1,
					Explanation:        "Equality means being treated with the same respect and dignity.",
					SupplementalFact:   "Equality doesn't mean everyone gets identical things, but that everyone's rights are equally respected.",
				},
				{
					ID:                 2,
					Prompt:             "Children with disabilities have the right to:",
					Options:            []string{"Stay at home", "Special care and support to participate fully", "Be treated differently", "Less education"},
					CorrectOptionIndex: 1,
					Explanation:        "Children with disabilities have the right to special care and support to participate fully in life.",
					SupplementalFact:   "Article 23 of the Convention ensures that children with disabilities receive special care and support.",
				},
				{
					ID:                 3,
					Prompt:             "Is it fair to treat everyone exactly the same way?",
					Options:            []string{"Yes, always", "No, different people have different needs", "Only if they're the same age", "Only in schools"},
					CorrectOptionIndex: 1,
					Explanation:        "No, fairness often means giving different support based on different needs.",
					SupplementalFact:   "True equity means providing what each person needs to have equal opportunities.",
				},
				{
					ID:                 4,
					Prompt:             "Which statement about bullying is true?",
					Options:            []string{"It's part of growing up", "It helps toughen kids up", "It's a violation of children's rights", "It only happens at school"},
					CorrectOptionIndex: 2,
					Explanation:        "Bullying is a violation of children's rights to safety and dignity.",
					SupplementalFact:   "All children have the right to be protected from any form of physical or mental violence, including bullying.",
				},
				{
					ID:                 5,
					Prompt:             "Children from all countries, cultures and religions deserve the same rights.",
					Options:            []string{"True", "False", "Only in developed countries", "Only if they speak the same language"},
					CorrectOptionIndex: 0,
					Explanation:        "True! Children's rights are universal regardless of nationality, culture or religion.",
					SupplementalFact:   "The Convention applies to ALL children without discrimination of any kind.",
				},
			},
		},
		{
			ID:           3,
			Name:         "Treasure of Knowledge",
			Description:  "Discover the power of education and information",
			MapPosition:  domain.Position{X: 20, Y: 15},
			PointsToEarn: 100,
			Questions: []domain.Question{
				{
					ID:                 1,
					Prompt:             "Why is education important for children?",
					Options:            []string{"To keep them busy", "To develop their full potential", "To make them tired", "Just because adults say so"},
					CorrectOptionIndex: 1,
					Explanation:        "Education helps children develop their talents, abilities and potential to the fullest.",
					SupplementalFact:   "Education is not just about learning facts, but developing critical thinking and life skills.",
				},
				{
					ID:                 2,
					Prompt:             "Children have the right to access information from:",
					Options:            []string{"Only school books", "Only what parents approve", "Various sources including the internet, books, and media", "Only age-appropriate sources"},
					CorrectOptionIndex: 2,
					Explanation:        "Children have the right to access information from various sources including books, internet and media.",
					SupplementalFact:   "Article 17 gives children the right to access information from mass media, with appropriate protections.",
				},
				{
					ID:                 3,
					Prompt:             "Who has the responsibility to make sure children receive education?",
					Options:            []string{"Only parents", "Only teachers", "Only governments", "All of these working together"},
					CorrectOptionIndex: 3,
					Explanation:        "Parents, teachers, and governments all share responsibility for children's education.",
					SupplementalFact:   "While governments must provide education systems, parents and communities also support children's learning.",
				},
				{
					ID:                 4,
					Prompt:             "What should education teach children besides academic subjects?",
					Options:            []string{"Just reading and math", "Only science", "Respect for rights, identity, and the environment", "Only computer skills"},
					CorrectOptionIndex: 2,
					Explanation:        "Education should teach respect for human rights, cultural identity, and the environment.",
					SupplementalFact:   "Quality education develops children's personalities, talents, and mental and physical abilities to their fullest potential.",
				},
				{
					ID:                 5,
					Prompt:             "Is it important for children to learn about their rights?",
					Options:            []string{"Yes, to know what they're entitled to", "No, it makes them demanding", "Only when they're older", "Only in civics class"},
					CorrectOptionIndex: 0,
					Explanation:        "Yes, children should learn about their rights to understand and exercise them.",
					SupplementalFact:   "Understanding their rights helps children protect themselves and respect others' rights too.",
				},
			},
		},
	}
}

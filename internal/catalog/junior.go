package catalog

import "justice-play/internal/domain"

// juniorLevels mirrors seniorLevels level by level with simpler wording.
func juniorLevels() []domain.LevelDefinition {
	return []domain.LevelDefinition{
		{
			ID:           1,
			Name:         "Kid's Castle",
			Description:  "Find out which rights every kid has",
			MapPosition:  domain.Position{X: 70, Y: 85},
			PointsToEarn: 50,
			Questions: []domain.Question{
				{
					ID:                 1,
					Prompt:             "Every kid has the right to:",
					Options:            []string{"Eat candy for dinner", "Go to school and learn", "Never go to bed", "Watch TV all day"},
					CorrectOptionIndex: 1,
					Explanation:        "Going to school and learning is a right for every kid.",
					SupplementalFact:   "Kids all over the world have the right to learn, no matter where they live.",
				},
				{
					ID:                 2,
					Prompt:             "Who should help keep kids safe?",
					Options:            []string{"Only mom and dad", "Only teachers", "Only police officers", "All grown-ups around them"},
					CorrectOptionIndex: 3,
					Explanation:        "All grown-ups share the job of keeping kids safe.",
					SupplementalFact:   "Families, teachers and neighbours all help protect children.",
				},
				{
					ID:                 3,
					Prompt:             "Is it okay for kids to say what they think?",
					Options:            []string{"Yes", "No", "Only on birthdays", "Only when nobody is listening"},
					CorrectOptionIndex: 0,
					Explanation:        "Yes! Your ideas matter and you can share them.",
					SupplementalFact:   "Grown-ups should listen to kids when deciding things that affect them.",
				},
				{
					ID:                 4,
					Prompt:             "Which one is NOT something every kid needs?",
					Options:            []string{"A doctor when sick", "A safe home", "The newest toy", "Healthy food"},
					CorrectOptionIndex: 2,
					Explanation:        "The newest toy is fun, but it is a want, not a need.",
					SupplementalFact:   "Needs are things like food, safety and care. Wants are extras.",
				},
				{
					ID:                 5,
					Prompt:             "Do kids have the right to play?",
					Options:            []string{"Yes", "No", "Only after chores", "Only in summer"},
					CorrectOptionIndex: 0,
					Explanation:        "Yes! Playing and resting are rights for every kid.",
					SupplementalFact:   "Playing helps kids grow healthy and happy.",
				},
			},
		},
		{
			ID:           2,
			Name:         "Mountain of Fairness",
			Description:  "Learn what it means to be fair to everyone",
			MapPosition:  domain.Position{X: 45, Y: 45},
			PointsToEarn: 75,
			Questions: []domain.Question{
				{
					ID:                 1,
					Prompt:             "What does being equal mean?",
					Options:            []string{"Everyone has the same shoes", "Everyone is treated with respect", "Everyone is the same height", "Everyone likes the same games"},
					CorrectOptionIndex: 1,
					Explanation:        "Being equal means everyone is treated with respect.",
					SupplementalFact:   "People can be different and still be treated equally.",
				},
				{
					ID:                 2,
					Prompt:             "A kid who uses a wheelchair should:",
					Options:            []string{"Stay home", "Get help so they can join in", "Be left out of games", "Not go to school"},
					CorrectOptionIndex: 1,
					Explanation:        "Every kid should get the help they need to join in.",
					SupplementalFact:   "Ramps, helpers and kind friends make it possible for everyone to take part.",
				},
				{
					ID:                 3,
					Prompt:             "Is being fair always giving everyone the exact same thing?",
					Options:            []string{"Yes, always", "No, some people need different help", "Only for twins", "Only at lunch"},
					CorrectOptionIndex: 1,
					Explanation:        "Being fair means giving each person the help they need.",
					SupplementalFact:   "Glasses help someone who cannot see well. That is fair, even if others don't get glasses.",
				},
				{
					ID:                 4,
					Prompt:             "What is true about bullying?",
					Options:            []string{"It's just a game", "It makes kids stronger", "It hurts and is never okay", "It only happens on the playground"},
					CorrectOptionIndex: 2,
					Explanation:        "Bullying hurts and is never okay.",
					SupplementalFact:   "If someone bullies you, tell a grown-up you trust.",
				},
				{
					ID:                 5,
					Prompt:             "Do kids from every country have the same rights?",
					Options:            []string{"Yes", "No", "Only in big cities", "Only if they speak English"},
					CorrectOptionIndex: 0,
					Explanation:        "Yes! Kids everywhere have the same rights.",
					SupplementalFact:   "Children's rights belong to all kids, wherever they come from.",
				},
			},
		},
		{
			ID:           3,
			Name:         "Treasure of Knowledge",
			Description:  "See why learning is a superpower",
			MapPosition:  domain.Position{X: 20, Y: 15},
			PointsToEarn: 100,
			Questions: []domain.Question{
				{
					ID:                 1,
					Prompt:             "Why is school important?",
					Options:            []string{"To keep kids busy", "To help kids grow and learn new things", "To make kids tired", "Because of homework"},
					CorrectOptionIndex: 1,
					Explanation:        "School helps you grow and discover what you are good at.",
					SupplementalFact:   "Learning helps you think, ask questions and solve problems.",
				},
				{
					ID:                 2,
					Prompt:             "Where can kids find information?",
					Options:            []string{"Only in one book", "Only from one person", "In books, libraries and safe websites", "Nowhere"},
					CorrectOptionIndex: 2,
					Explanation:        "Kids can learn from books, libraries and safe websites.",
					SupplementalFact:   "A grown-up can help you find websites that are safe for kids.",
				},
				{
					ID:                 3,
					Prompt:             "Who helps kids get to learn?",
					Options:            []string{"Only parents", "Only teachers", "Only the mayor", "Parents, teachers and the government together"},
					CorrectOptionIndex: 3,
					Explanation:        "Many people work together so that kids can learn.",
					SupplementalFact:   "Governments build schools, teachers teach and families help at home.",
				},
				{
					ID:                 4,
					Prompt:             "Besides reading and math, school can teach kids to:",
					Options:            []string{"Only draw", "Only run", "Respect others and take care of nature", "Only use computers"},
					CorrectOptionIndex: 2,
					Explanation:        "School also teaches respect for others and for nature.",
					SupplementalFact:   "Good schools help kids become kind and caring people.",
				},
				{
					ID:                 5,
					Prompt:             "Should kids learn about their rights?",
					Options:            []string{"Yes, so they know them", "No, never", "Only grown-ups should", "Only in secret"},
					CorrectOptionIndex: 0,
					Explanation:        "Yes! Knowing your rights helps you stand up for yourself and others.",
					SupplementalFact:   "When you know your rights, you can help your friends know theirs too.",
				},
			},
		},
	}
}

package service

import "github.com/dheerajjx/portfolio/internal/domain"

// defaultStory is written on the first read so the About page always has
// content. It returns fresh slices on every call.
func defaultStory() *domain.Story {
	return &domain.Story{
		Highlights: []domain.Highlight{
			{Icon: "🎯", Label: "Vision", Value: "Build experiences that matter", Color: "from-pink-500 to-rose-500", Glow: "hover:shadow-pink-500/20"},
			{Icon: "🌙", Label: "Style", Value: "Dark, bold, and unapologetic", Color: "from-violet-500 to-purple-600", Glow: "hover:shadow-violet-500/20"},
			{Icon: "📸", Label: "Craft", Value: "Storytelling through content", Color: "from-blue-500 to-cyan-500", Glow: "hover:shadow-blue-500/20"},
			{Icon: "🔥", Label: "Energy", Value: "Relentless & fiercely creative", Color: "from-amber-500 to-orange-500", Glow: "hover:shadow-amber-500/20"},
		},
		Chapters: []domain.Chapter{
			{Order: 0, Title: "Not Built Overnight", Lines: []string{
				"I wasn't built in comfort.",
				"I was built in moments no one saw.",
				"",
				"In quiet rooms.",
				"In long nights.",
				"In battles that never made it to social media.",
			}},
			{Order: 1, Title: "The Process of Becoming", Lines: []string{
				"There was a time I waited —",
				"for clarity,",
				"for confidence,",
				`for the "right moment."`,
				"",
				"Clarity comes from action.",
				"Confidence comes from discipline.",
				"The right moment is created — not found.",
			}},
			{Order: 2, Title: "The Invisible Growth", Lines: []string{
				"Growth is strange.",
				"",
				"It doesn't always feel exciting.",
				"Sometimes it feels lonely.",
				"",
				"But every doubt shaped my resilience.",
				"Every setback sharpened my mindset.",
				"Every challenge forced me to level up.",
			}},
			{Order: 3, Title: "The Shift", Lines: []string{
				"At some point, I realized:",
				"",
				"You can either be controlled by your circumstances",
				"or you can control your response to them.",
				"",
				"I chose ownership.",
			}},
			{Order: 4, Title: "Who I Am Now", Lines: []string{
				"I'm not perfect.",
				"I'm not finished.",
				"",
				"I'm evolving.",
				"",
				"I believe in depth over noise.",
				"Discipline over motivation.",
				"Progress over attention.",
			}},
			{Order: 5, Title: "Why This Space Exists", Lines: []string{
				"This space is not here to show perfection.",
				"",
				"It's here to show the journey.",
				"",
				"The growth.",
				"The lessons.",
				"The mindset shifts.",
				"The evolution.",
			}},
			{Order: 6, Title: "The Promise to Myself", Lines: []string{
				"No matter how far I go —",
				"I will never stop becoming better than I was.",
				"",
				"Still building.",
				"Still rising.",
				"Still becoming.",
			}},
		},
		SignatureQuote: "I don't just create content — I create a feeling. Every post, every word, every moment is a piece of the universe I'm building.",
		SignatureTags:  []string{"Still Building", "Still Rising", "Still Becoming"},
	}
}

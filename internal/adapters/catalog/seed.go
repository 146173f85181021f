package catalog

import "github.com/claudeomosa/NETconf25/internal/domain"

// SeedQuotes returns the built-in quote list in its fixed order.
// Tags are stored lowercase; a quote's position in this list is its
// identity for the lifetime of the process. Each call returns a fresh
// slice so callers cannot reach the catalog's storage through it.
func SeedQuotes() []domain.Quote {
	return []domain.Quote{
		{
			Text:   "Talk is cheap. Show me the code.",
			Author: "Linus Torvalds",
			Tags:   []string{"programming"},
		},
		{
			Text:   "Programs must be written for people to read, and only incidentally for machines to execute.",
			Author: "Harold Abelson",
			Tags:   []string{"programming", "readability"},
		},
		{
			Text:   "Any fool can write code that a computer can understand. Good programmers write code that humans can understand.",
			Author: "Martin Fowler",
			Tags:   []string{"programming", "readability"},
		},
		{
			Text:   "First, solve the problem. Then, write the code.",
			Author: "John Johnson",
		},
		{
			Text:   "Premature optimization is the root of all evil.",
			Author: "Donald Knuth",
			Tags:   []string{"performance", "wisdom"},
		},
		{
			Text:   "Simplicity is the soul of efficiency.",
			Author: "Austin Freeman",
			Tags:   []string{"simplicity", "design"},
		},
		{
			Text:   "Code is like humor. When you have to explain it, it's bad.",
			Author: "Cory House",
			Tags:   []string{"humor", "readability"},
		},
		{
			Text:   "Debugging is twice as hard as writing the code in the first place. Therefore, if you write the code as cleverly as possible, you are, by definition, not smart enough to debug it.",
			Author: "Brian Kernighan",
			Tags:   []string{"debugging", "wisdom"},
		},
		{
			Text:   "The only way to learn a new programming language is by writing programs in it.",
			Author: "Dennis Ritchie",
			Tags:   []string{"programming", "learning"},
		},
		{
			Text:   "Controlling complexity is the essence of computer programming.",
			Author: "Brian Kernighan",
			Tags:   []string{"programming", "complexity"},
		},
	}
}

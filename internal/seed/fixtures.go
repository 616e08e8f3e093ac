package seed

// categoryFixture describes one baseline category.
type categoryFixture struct {
	Name        string
	Description string
}

// bookFixture describes one sample book and the categories it belongs to.
type bookFixture struct {
	Title       string
	Author      string
	Genre       string
	Description string
	Cover       string
	Categories  []string
}

var defaultCategories = []categoryFixture{
	{Name: "Classic Literature", Description: "Timeless works that have influenced generations"},
	{Name: "Fantasy", Description: "Stories involving magic and supernatural phenomena"},
	{Name: "Science Fiction", Description: "Speculative fiction focusing on scientific advancement"},
	{Name: "Mystery & Thriller", Description: "Suspenseful stories of crime and intrigue"},
	{Name: "Romance", Description: "Stories centered around love and relationships"},
	{Name: "Horror", Description: "Stories designed to frighten and unsettle"},
	{Name: "Young Adult", Description: "Literature aimed at teenage readers"},
	{Name: "Non-Fiction", Description: "Factual works based on real events and topics"},
	{Name: "Historical Fiction", Description: "Fiction set in the past"},
	{Name: "Contemporary Fiction", Description: "Modern stories set in present times"},
}

var sampleBooks = []bookFixture{
	{
		Title:       "Pride and Prejudice",
		Author:      "Jane Austen",
		Genre:       "Classic Literature",
		Description: "A masterpiece of regency romance.",
		Cover:       "pride_prejudice.jpg",
		Categories:  []string{"Classic Literature", "Romance"},
	},
	{
		Title:       "The Hobbit",
		Author:      "J.R.R. Tolkien",
		Genre:       "Fantasy",
		Description: "A fantasy novel about Bilbo Baggins' journey.",
		Cover:       "hobbit.jpg",
		Categories:  []string{"Fantasy", "Classic Literature"},
	},
	{
		Title:       "Dune",
		Author:      "Frank Herbert",
		Genre:       "Science Fiction",
		Description: "A masterpiece of science fiction.",
		Cover:       "dune.jpg",
		Categories:  []string{"Science Fiction"},
	},
	{
		Title:       "The Silent Patient",
		Author:      "Alex Michaelides",
		Genre:       "Thriller",
		Description: "A psychological thriller about a woman's act of violence.",
		Cover:       "silent_patient.jpg",
		Categories:  []string{"Mystery & Thriller"},
	},
	{
		Title:       "Project Hail Mary",
		Author:      "Andy Weir",
		Genre:       "Science Fiction",
		Description: "An astronaut wakes up alone on a spacecraft.",
		Cover:       "hail_mary.jpg",
		Categories:  []string{"Science Fiction"},
	},
	{
		Title:       "The Midnight Library",
		Author:      "Matt Haig",
		Genre:       "Contemporary Fiction",
		Description: "A library between life and death.",
		Cover:       "midnight_library.jpg",
		Categories:  []string{"Contemporary Fiction", "Fantasy"},
	},
	{
		Title:       "Mexican Gothic",
		Author:      "Silvia Moreno-Garcia",
		Genre:       "Horror",
		Description: "A gothic horror set in 1950s Mexico.",
		Cover:       "mexican_gothic.jpg",
		Categories:  []string{"Horror", "Historical Fiction"},
	},
	{
		Title:       "The Seven Husbands of Evelyn Hugo",
		Author:      "Taylor Jenkins Reid",
		Genre:       "Historical Fiction",
		Description: "The story of a fictional Hollywood star.",
		Cover:       "evelyn_hugo.jpg",
		Categories:  []string{"Historical Fiction", "Romance"},
	},
	{
		Title:       "Atomic Habits",
		Author:      "James Clear",
		Genre:       "Non-Fiction",
		Description: "A guide to building good habits.",
		Cover:       "atomic_habits.jpg",
		Categories:  []string{"Non-Fiction"},
	},
	{
		Title:       "Six of Crows",
		Author:      "Leigh Bardugo",
		Genre:       "Young Adult",
		Description: "A heist story set in a fantasy world.",
		Cover:       "six_of_crows.jpg",
		Categories:  []string{"Young Adult", "Fantasy"},
	},
	{
		Title:       "The Thursday Murder Club",
		Author:      "Richard Osman",
		Genre:       "Mystery",
		Description: "Four retirees meet weekly to solve cold cases.",
		Cover:       "thursday_club.jpg",
		Categories:  []string{"Mystery & Thriller"},
	},
	{
		Title:       "The Invisible Life of Addie LaRue",
		Author:      "V.E. Schwab",
		Genre:       "Fantasy",
		Description: "A woman makes a Faustian bargain.",
		Cover:       "addie_larue.jpg",
		Categories:  []string{"Fantasy", "Historical Fiction"},
	},
	{
		Title:       "Klara and the Sun",
		Author:      "Kazuo Ishiguro",
		Genre:       "Science Fiction",
		Description: "An AI observes human behavior.",
		Cover:       "klara_sun.jpg",
		Categories:  []string{"Science Fiction", "Contemporary Fiction"},
	},
	{
		Title:       "The Paris Apartment",
		Author:      "Lucy Foley",
		Genre:       "Mystery",
		Description: "A woman arrives in Paris to find her brother missing.",
		Cover:       "paris_apartment.jpg",
		Categories:  []string{"Mystery & Thriller"},
	},
	{
		Title:       "Beach Read",
		Author:      "Emily Henry",
		Genre:       "Romance",
		Description: "Two writers switch genres for a summer.",
		Cover:       "beach_read.jpg",
		Categories:  []string{"Romance", "Contemporary Fiction"},
	},
}

// SampleBookCount is the number of seeded sample books.
func SampleBookCount() int {
	return len(sampleBooks)
}

// CategoryCount is the number of seeded categories.
func CategoryCount() int {
	return len(defaultCategories)
}

// SampleCover describes a cover file the fetch-covers command should obtain.
type SampleCover struct {
	Title    string
	Author   string
	Filename string
}

// SampleCovers lists title/author/filename triples for all seeded books.
func SampleCovers() []SampleCover {
	covers := make([]SampleCover, 0, len(sampleBooks))
	for _, b := range sampleBooks {
		covers = append(covers, SampleCover{Title: b.Title, Author: b.Author, Filename: b.Cover})
	}
	return covers
}

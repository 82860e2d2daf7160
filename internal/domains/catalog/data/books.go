// Package data holds the static catalog. The storefront ships with a fixed
// set of books; only cart state lives in the database.
package data

import (
	"time"

	"github.com/shopspring/decimal"

	"amana-bookstore/internal/domains/catalog/model"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func price(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// Books is the full catalog, ordered by id.
var Books = []model.Book{
	{
		ID:          "1",
		Title:       "The Midnight Library",
		Author:      "Matt Haig",
		Description: "Between life and death there is a library, and within that library, the shelves go on forever. Every book provides a chance to try another life you could have lived.",
		Price:       price("13.99"),
		Genres:      []string{"Fiction", "Fantasy"},
		Rating:      4.2,
		ReviewCount: 3,
		InStock:     true,
		Featured:    true,
		Published:   day(2020, time.August, 13),
	},
	{
		ID:          "2",
		Title:       "Project Hail Mary",
		Author:      "Andy Weir",
		Description: "Ryland Grace is the sole survivor on a desperate, last-chance mission, and if he fails, humanity and the earth itself will perish.",
		Price:       price("16.99"),
		Genres:      []string{"Science Fiction", "Adventure"},
		Rating:      4.7,
		ReviewCount: 2,
		InStock:     true,
		Featured:    true,
		Published:   day(2021, time.May, 4),
	},
	{
		ID:          "3",
		Title:       "A Brief History of Time",
		Author:      "Stephen Hawking",
		Description: "A landmark volume in science writing, exploring the outer limits of our knowledge of the universe, from the big bang to black holes.",
		Price:       price("11.50"),
		Genres:      []string{"Science", "Non-Fiction"},
		Rating:      4.4,
		ReviewCount: 2,
		InStock:     true,
		Published:   day(1988, time.April, 1),
	},
	{
		ID:          "4",
		Title:       "Educated",
		Author:      "Tara Westover",
		Description: "A memoir about a young girl who, kept out of school, leaves her survivalist family and goes on to earn a PhD from Cambridge University.",
		Price:       price("14.25"),
		Genres:      []string{"Memoir", "Non-Fiction"},
		Rating:      4.5,
		ReviewCount: 1,
		InStock:     true,
		Published:   day(2018, time.February, 20),
	},
	{
		ID:          "5",
		Title:       "The Name of the Wind",
		Author:      "Patrick Rothfuss",
		Description: "The riveting first-person narrative of a young man who grows to be the most notorious magician his world has ever seen.",
		Price:       price("12.99"),
		Genres:      []string{"Fantasy", "Adventure"},
		Rating:      4.6,
		ReviewCount: 2,
		InStock:     true,
		Published:   day(2007, time.March, 27),
	},
	{
		ID:          "6",
		Title:       "Thinking, Fast and Slow",
		Author:      "Daniel Kahneman",
		Description: "The two systems that drive the way we think: the fast, intuitive, and emotional; and the slower, more deliberative, and more logical.",
		Price:       price("15.75"),
		Genres:      []string{"Psychology", "Non-Fiction"},
		Rating:      4.1,
		ReviewCount: 1,
		InStock:     true,
		Published:   day(2011, time.October, 25),
	},
	{
		ID:          "7",
		Title:       "Klara and the Sun",
		Author:      "Kazuo Ishiguro",
		Description: "The story of Klara, an Artificial Friend with outstanding observational qualities, who watches the behaviour of those who come to browse the store.",
		Price:       price("14.99"),
		Genres:      []string{"Fiction", "Science Fiction"},
		Rating:      3.9,
		ReviewCount: 1,
		InStock:     false,
		Published:   day(2021, time.March, 2),
	},
	{
		ID:          "8",
		Title:       "The Pragmatic Programmer",
		Author:      "David Thomas, Andrew Hunt",
		Description: "A guide through the increasing specialization and technicalities of modern software development, examining the core process of writing maintainable code.",
		Price:       price("39.99"),
		Genres:      []string{"Technology", "Non-Fiction"},
		Rating:      4.8,
		ReviewCount: 2,
		InStock:     true,
		Published:   day(2019, time.September, 13),
	},
	{
		ID:          "9",
		Title:       "Circe",
		Author:      "Madeline Miller",
		Description: "In the house of Helios, god of the sun, a daughter is born. Circe is a strange child, neither powerful like her father nor viciously alluring like her mother.",
		Price:       price("13.50"),
		Genres:      []string{"Fantasy", "Mythology"},
		Rating:      4.3,
		ReviewCount: 1,
		InStock:     true,
		Published:   day(2018, time.April, 10),
	},
	{
		ID:          "10",
		Title:       "Sapiens: A Brief History of Humankind",
		Author:      "Yuval Noah Harari",
		Description: "A sweeping narrative of humanity's creation and evolution, exploring how biology and history have defined us.",
		Price:       price("18.00"),
		Genres:      []string{"History", "Non-Fiction"},
		Rating:      4.4,
		ReviewCount: 1,
		InStock:     true,
		Published:   day(2015, time.February, 10),
	},
	{
		ID:          "11",
		Title:       "The Song of Achilles",
		Author:      "Madeline Miller",
		Description: "A tale of gods, kings, immortal fame, and the human heart, this is a profoundly moving retelling of the Iliad.",
		Price:       price("12.75"),
		Genres:      []string{"Fantasy", "Mythology", "Romance"},
		Rating:      4.5,
		ReviewCount: 0,
		InStock:     true,
		Published:   day(2012, time.March, 6),
	},
	{
		ID:          "12",
		Title:       "Atomic Habits",
		Author:      "James Clear",
		Description: "A proven framework for improving every day: tiny changes, remarkable results.",
		Price:       price("17.25"),
		Genres:      []string{"Self-Help", "Non-Fiction"},
		Rating:      4.6,
		ReviewCount: 1,
		InStock:     false,
		Published:   day(2018, time.October, 16),
	},
}

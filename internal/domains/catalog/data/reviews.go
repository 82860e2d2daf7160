package data

import (
	"time"

	"amana-bookstore/internal/domains/catalog/model"
)

// Reviews is the static review set, keyed to Books by BookID.
var Reviews = []model.Review{
	{
		ID:        "r1",
		BookID:    "1",
		Author:    "Sarah M.",
		Title:     "Couldn't put it down",
		Comment:   "A beautiful meditation on regret and second chances. Finished it in two sittings.",
		Rating:    5,
		Timestamp: time.Date(2023, time.January, 14, 9, 30, 0, 0, time.UTC),
		Verified:  true,
	},
	{
		ID:        "r2",
		BookID:    "1",
		Author:    "James T.",
		Title:     "Good but predictable",
		Comment:   "Enjoyable premise, though the ending was visible from a long way off.",
		Rating:    3.5,
		Timestamp: time.Date(2023, time.March, 2, 18, 12, 0, 0, time.UTC),
		Verified:  false,
	},
	{
		ID:        "r3",
		BookID:    "1",
		Author:    "Priya K.",
		Title:     "A warm hug of a book",
		Comment:   "Exactly what I needed this winter.",
		Rating:    4,
		Timestamp: time.Date(2023, time.November, 21, 21, 5, 0, 0, time.UTC),
		Verified:  true,
	},
	{
		ID:        "r4",
		BookID:    "2",
		Author:    "Dev R.",
		Title:     "Weir does it again",
		Comment:   "The science is playful, the stakes are real, and Rocky is the best character of the decade.",
		Rating:    5,
		Timestamp: time.Date(2022, time.June, 8, 14, 45, 0, 0, time.UTC),
		Verified:  true,
	},
	{
		ID:        "r5",
		BookID:    "2",
		Author:    "Hannah L.",
		Title:     "Great audiobook too",
		Comment:   "Read it twice. The mid-book reveal lands even better the second time.",
		Rating:    4.5,
		Timestamp: time.Date(2022, time.September, 30, 7, 20, 0, 0, time.UTC),
		Verified:  false,
	},
	{
		ID:        "r6",
		BookID:    "3",
		Author:    "Omar F.",
		Title:     "Dense but rewarding",
		Comment:   "Some chapters need a second pass, but Hawking's clarity about hard ideas is unmatched.",
		Rating:    4,
		Timestamp: time.Date(2021, time.April, 17, 11, 0, 0, 0, time.UTC),
		Verified:  true,
	},
	{
		ID:        "r7",
		BookID:    "3",
		Author:    "Lena W.",
		Title:     "A classic for a reason",
		Comment:   "Still the best starting point for cosmology.",
		Rating:    4.5,
		Timestamp: time.Date(2022, time.January, 3, 16, 40, 0, 0, time.UTC),
		Verified:  true,
	},
	{
		ID:        "r8",
		BookID:    "5",
		Author:    "Marcus B.",
		Title:     "Beautiful prose",
		Comment:   "Rothfuss writes sentences you want to read aloud. Now if only book three would arrive.",
		Rating:    5,
		Timestamp: time.Date(2020, time.July, 22, 19, 15, 0, 0, time.UTC),
		Verified:  false,
	},
	{
		ID:        "r9",
		BookID:    "8",
		Author:    "Ana S.",
		Title:     "Required reading",
		Comment:   "I hand this to every junior engineer on my team. The 20th anniversary edition aged well.",
		Rating:    5,
		Timestamp: time.Date(2023, time.May, 11, 10, 25, 0, 0, time.UTC),
		Verified:  true,
	},
	{
		ID:        "r10",
		BookID:    "8",
		Author:    "Tom G.",
		Title:     "Solid, a little dated in places",
		Comment:   "The principles hold; a few tool examples show their age.",
		Rating:    4,
		Timestamp: time.Date(2023, time.August, 29, 13, 55, 0, 0, time.UTC),
		Verified:  false,
	},
}

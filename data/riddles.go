// Package data carries the built-in riddle records. The full content set
// is produced outside this repository; this table is the bundled default
// the repository falls back to when no external set is supplied.
package data

import (
	"github.com/salex1993/Who-Am-I-Bible-Riddles/internal/models"
)

// Riddles returns a fresh copy of the bundled riddle records.
func Riddles() []*models.RiddleRecord {
	out := make([]*models.RiddleRecord, len(riddles))
	for i := range riddles {
		record := riddles[i]
		out[i] = &record
	}
	return out
}

var riddles = []models.RiddleRecord{
	{
		ID:              1,
		Category:        "Patriarchs & Matriarchs",
		DifficultyLevel: 1,
		Poem: "I was the child of promise long delayed,\n" +
			"On an altar of wood I once was laid.\n" +
			"My name means laughter, joy hard-won,\n" +
			"I carried the covenant as Abraham's son.\nWho am I?",
		Answer:    "Isaac",
		Reference: "Genesis 22",
		Options:   []string{"Isaac", "Ishmael", "Jacob", "Esau"},
	},
	{
		ID:              2,
		Category:        "Patriarchs & Matriarchs",
		DifficultyLevel: 2,
		Poem: "At a well I showed a stranger grace,\n" +
			"Watering his camels in that dusty place.\n" +
			"Two nations struggled deep inside of me,\n" +
			"I favored the younger in destiny.\nWho am I?",
		Answer:    "Rebekah",
		Reference: "Genesis 24",
	},
	{
		ID:              3,
		Category:        "Patriarchs & Matriarchs",
		DifficultyLevel: 3,
		Poem: "Unloved, unseen, I bore him sons,\n" +
			"From my womb came priesthood and the kingly line,\n" +
			"Judah and Levi were children of mine.\nWho am I?",
		Answer:    "Leah",
		Reference: "Genesis 29",
	},
	{
		ID:              4,
		Category:        "Patriarchs & Matriarchs",
		DifficultyLevel: 5,
		Poem: "Bread and wine from my table he saw,\n" +
			"As priest and king in one strange role,\n" +
			"No father or mother recorded for me,\n" +
			"My name hints at righteousness and royalty.\nWho am I?",
		Answer:    "Melchizedek",
		Reference: "Genesis 14",
	},
	{
		ID:              5,
		Category:        "Prophets & Seers",
		DifficultyLevel: 2,
		Poem: "In a small town my voice was heard,\n" +
			"Not empty rites or outward show,\n" +
			"But justice, mercy, and humbleness low.\nWho am I?",
		Answer:    "Micah",
		Reference: "Bible",
	},
	{
		ID:              6,
		Category:        "Prophets & Seers",
		DifficultyLevel: 4,
		Poem: "I stood on my watch to question the Lord,\n" +
			"Why evil prospers and swings the sword.\n" +
			"He answered me, the righteous live by faith.\nWho am I?",
		Answer:    "Habakkuk",
		Reference: "Bible",
	},
	{
		ID:              7,
		Category:        "Prophets & Seers",
		DifficultyLevel: 3,
		Poem: "I spoke of locusts dark as night,\n" +
			"Yet promised afterward Spirit and light.\nWho am I?",
		Answer:    "Joel",
		Reference: "Bible",
	},
	{
		ID:              8,
		Category:        "Kings & Rulers",
		DifficultyLevel: 1,
		Poem: "A shepherd boy with sling and stone,\n" +
			"I felled a giant and won a throne.\nWho am I?",
		Answer:    "David",
		Reference: "1 Samuel 17",
		Options:   []string{"David", "Saul", "Solomon", "Jonathan"},
	},
	{
		ID:              9,
		Category:        "Kings & Rulers",
		DifficultyLevel: 3,
		Poem: "I asked for wisdom, not for gold,\n" +
			"I built the temple grand and bold.\nWho am I?",
		Answer:    "Solomon",
		Reference: "1 Kings 3",
	},
	{
		ID:              10,
		Category:        "Kings & Rulers",
		DifficultyLevel: 5,
		Poem: "Eight years old when my reign began,\n" +
			"I tore my robes at the book of the law,\n" +
			"And purged the land of idols I saw.\nWho am I?",
		Answer:    "Josiah",
		Reference: "2 Kings 22",
	},
	{
		ID:              11,
		Category:        "Women of the Bible",
		DifficultyLevel: 2,
		Poem: "For such a time as this I came,\n" +
			"A queen who risked her royal name.\nWho am I?",
		Answer:    "Esther",
		Reference: "Esther 4",
	},
	{
		ID:              12,
		Category:        "Women of the Bible",
		DifficultyLevel: 1,
		Poem: "Where you go I will go, I said,\n" +
			"Gleaning the fields for daily bread.\nWho am I?",
		Answer:    "Ruth",
		Reference: "Ruth 1",
		Options:   []string{"Ruth", "Naomi", "Orpah", "Deborah"},
	},
	{
		ID:              13,
		Category:        "Judges & Deliverers",
		DifficultyLevel: 2,
		Poem: "My strength was hidden in my hair,\n" +
			"I brought the temple down in prayer.\nWho am I?",
		Answer:    "Samson",
		Reference: "Judges 16",
	},
	{
		ID:              14,
		Category:        "Judges & Deliverers",
		DifficultyLevel: 3,
		Poem: "Under a palm I judged the land,\n" +
			"With Barak's army at my command.\nWho am I?",
		Answer:    "Deborah",
		Reference: "Judges 4",
	},
	{
		ID:              15,
		Category:        "Apostles & Early Church",
		DifficultyLevel: 1,
		Poem: "A fisherman called by the sea,\n" +
			"On this rock, He said of me.\nWho am I?",
		Answer:    "Peter",
		Reference: "Matthew 16",
		Options:   []string{"Peter", "Andrew", "James", "John"},
	},
	{
		ID:              16,
		Category:        "Apostles & Early Church",
		DifficultyLevel: 4,
		Poem: "A tentmaker blinded on the road,\n" +
			"I carried grace where no one sowed.\nWho am I?",
		Answer:    "Paul",
		Reference: "Acts 9",
	},
	{
		ID:              17,
		Category:        "Angels & Heavenly Beings",
		DifficultyLevel: 2,
		Poem: "I stand in the presence of the Most High,\n" +
			"To Daniel and Mary I came from the sky.\nWho am I?",
		Answer:    "Gabriel",
		Reference: "Luke 1",
	},
	{
		ID:              18,
		Category:        "Enemies & Villains",
		DifficultyLevel: 4,
		Poem: "I built a gallows high and proud,\n" +
			"And hung upon it before the crowd.\nWho am I?",
		Answer:    "Haman",
		Reference: "Esther 7",
	},
	{
		ID:              19,
		Category:        "Parables & Symbolic Figures",
		DifficultyLevel: 2,
		Poem: "I left my father with wealth in hand,\n" +
			"And fed the swine in a famished land.\n" +
			"Yet home I turned, and mercy ran to meet me.\nWho am I?",
		Answer:    "The Prodigal Son",
		Reference: "Luke 15",
	},
	{
		ID:              20,
		Category:        "Gentiles & Foreigners",
		DifficultyLevel: 3,
		Poem: "A captain's leprosy washed away,\n" +
			"Seven dips in the Jordan that day.\nWho am I?",
		Answer:    "Naaman",
		Reference: "2 Kings 5",
	},
	{
		ID:              21,
		Category:        "Women of the Bible",
		DifficultyLevel: 5,
		Poem: "A seller of purple, my house made new,\n" +
			"The first in Europe the gospel knew.\nWho am I?",
		Answer:    "Lydia",
		Reference: "Acts 16",
	},
	{
		ID:              22,
		Category:        "Kings & Rulers",
		DifficultyLevel: 2,
		Poem: "Head and shoulders above the rest,\n" +
			"The first to wear the crown's bequest,\n" +
			"Yet jealousy consumed my days.\nWho am I?",
		Answer:    "Saul",
		Reference: "1 Samuel 10",
	},
	{
		ID:              23,
		Category:        "Patriarchs & Matriarchs",
		DifficultyLevel: 1,
		Poem: "I dreamed of ladders touching sky,\n" +
			"I wrestled till the dawn drew nigh,\n" +
			"And Israel became my name.\nWho am I?",
		Answer:    "Jacob",
		Reference: "Genesis 28",
	},
	{
		ID:              24,
		Category:        "Prophets & Seers",
		DifficultyLevel: 5,
		Poem: "A herdsman from Tekoa's field,\n" +
			"A plumb line in my vision revealed,\n" +
			"I thundered justice at Bethel's shrine.\nWho am I?",
		Answer:    "Amos",
		Reference: "Bible",
	},
}

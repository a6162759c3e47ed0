package catalog

import "github.com/NewsContentAPI/internal/domain"

var defaultArticles = []domain.Article{
	{
		ID:       "1",
		Title:    "Gen Z Leads Climate Change March",
		Subtitle: "Thousands of students walked out of class to demand faster action on emissions.",
		Category: "Environment",
		Source:   "The Guardian",
		Date:     "April 12, 2025",
		Image:    "climate-march.jpg",
		Logo:     "guardian-logo.png",
		Paragraphs: []string{
			"Tens of thousands of young people filled city centres on Friday as a student-organised climate strike spread across more than 40 countries.",
			"Organisers, most of them under 25, said the march was timed to pressure negotiators ahead of the next round of international climate talks.",
			"\"We are the ones who will live with the consequences,\" said one 19-year-old coordinator. \"We are not asking for permission to care.\"",
			"Several city councils announced they would review their net-zero timelines in response to the turnout.",
		},
	},
	{
		ID:       "2",
		Title:    "Instagram vs News: Gen Z's Preference",
		Subtitle: "A new survey finds most young adults get their headlines from social feeds first.",
		Category: "Technology",
		Source:   "Reuters",
		Date:     "April 10, 2025",
		Image:    "instagram-news.jpg",
		Logo:     "reuters-logo.png",
		Paragraphs: []string{
			"Nearly two thirds of adults aged 18 to 24 say social media is their main source of news, according to an annual digital news report.",
			"Short-form video and creator-led explainers now outrank traditional news apps for that age group.",
			"Researchers warned that trust in information varies widely depending on the platform and the account sharing it.",
		},
	},
	{
		ID:       "3",
		Title:    "Here's a breakdown of the newly announced tariffs by country",
		Subtitle: "New import duties range from 10% to more than 40% depending on the trading partner.",
		Category: "Politics",
		Source:   "CNN",
		Date:     "April 3, 2025",
		Image:    "tariffs.jpg",
		Logo:     "cnn-logo.png",
		Paragraphs: []string{
			"The administration unveiled a tiered tariff schedule on Wednesday covering imports from dozens of countries.",
			"A baseline 10% duty applies broadly, with higher rates for partners the White House says run large trade surpluses.",
			"Economists expect consumer prices on electronics, clothing and cars to rise in the coming months.",
		},
	},
	{
		ID:       "4",
		Title:    "Could Trump's tariffs spell the end of Canadian-made NHL jerseys?",
		Subtitle: "The league's official jersey maker produces most of its sweaters in Quebec.",
		Category: "Business",
		Source:   "CBC",
		Date:     "April 5, 2025",
		Image:    "nhl-jerseys.jpg",
		Logo:     "cbc-logo.png",
		Paragraphs: []string{
			"Every NHL jersey worn on ice is stitched at a factory in Saint-Jean-sur-Richelieu, Que.",
			"Cross-border duties could push the manufacturer to reconsider where future production happens.",
			"Workers at the plant say they are watching negotiations between Ottawa and Washington closely.",
		},
	},
	{
		ID:       "5",
		Title:    "Campus Housing Costs Climb for Third Straight Year",
		Subtitle: "Students are doubling up and commuting farther as rents near universities soar.",
		Category: "Education",
		Source:   "The New York Times",
		Date:     "April 8, 2025",
		Image:    "campus-housing.jpg",
		Logo:     "nyt-logo.png",
		Paragraphs: []string{
			"Median rent within a mile of large public universities rose again this year, outpacing both wages and financial aid.",
			"Some schools have started converting hotels and office space into temporary dorms.",
			"Student unions are calling for rent caps on university-owned housing.",
		},
	},
	{
		ID:       "6",
		Title:    "Heat Records Broken Across Southern Europe",
		Subtitle: "Spain, Italy and Greece issued red alerts as temperatures topped 44C.",
		Category: "Environment",
		Source:   "BBC News",
		Date:     "April 14, 2025",
		Image:    "heatwave.jpg",
		Logo:     "bbc-logo.png",
		Paragraphs: []string{
			"Meteorologists recorded the hottest spring day on record in several southern European cities.",
			"Authorities closed outdoor tourist sites during the afternoon and opened public cooling centres.",
			"Scientists say heatwaves of this intensity have become far more likely because of climate change.",
		},
	},
	{
		ID:       "7",
		Title:    "AI Study Tools Split Classrooms",
		Subtitle: "Teachers are divided over whether chatbots help or hurt learning.",
		Category: "Technology",
		Source:   "The Verge",
		Date:     "April 9, 2025",
		Image:    "ai-classroom.jpg",
		Logo:     "verge-logo.png",
		Paragraphs: []string{
			"A growing number of high school and college students use AI assistants to draft essays and check problem sets.",
			"Some districts have banned the tools outright while others are building them into the curriculum.",
			"Educators say the bigger challenge is redesigning assignments so they still measure understanding.",
		},
	},
	{
		ID:       "8",
		Title:    "Young Voters Register in Record Numbers",
		Subtitle: "Registration among 18- to 24-year-olds is up sharply ahead of local elections.",
		Category: "Politics",
		Source:   "Associated Press",
		Date:     "April 11, 2025",
		Image:    "voter-registration.jpg",
		Logo:     "ap-logo.png",
		Paragraphs: []string{
			"Election officials in several states reported their highest youth registration figures in two decades.",
			"Campus drives and social media campaigns were credited with much of the increase.",
			"Analysts caution that registration does not always translate into turnout on election day.",
		},
	},
	{
		ID:       "9",
		Title:    "Thrift Economy Booms as Fast Fashion Slows",
		Subtitle: "Resale platforms report double-digit growth driven by younger shoppers.",
		Category: "Business",
		Source:   "Bloomberg",
		Date:     "April 7, 2025",
		Image:    "thrift.jpg",
		Logo:     "bloomberg-logo.png",
		Paragraphs: []string{
			"Second-hand clothing sales grew several times faster than the broader apparel market last year.",
			"Shoppers cite price and sustainability as the main reasons for buying pre-owned items.",
			"Major retailers are launching their own resale programmes to keep up.",
		},
	},
	{
		ID:       "10",
		Title:    "Mental Health Days Gain Ground in Schools",
		Subtitle: "More states now let students take excused absences for mental health.",
		Category: "Health",
		Source:   "NPR",
		Date:     "April 13, 2025",
		Image:    "mental-health.jpg",
		Logo:     "npr-logo.png",
		Paragraphs: []string{
			"At least a dozen states have passed laws allowing students to miss school for mental health reasons.",
			"Supporters say the policies reduce stigma and encourage students to ask for help earlier.",
			"School counsellors say the days work best when paired with follow-up support.",
		},
	},
}

var defaultPolls = []domain.Poll{
	{
		ID:        "1",
		ArticleID: "1",
		Question:  "Would you join a climate march in your city?",
		Options: []domain.PollOption{
			{Label: "I already have", Percentage: 18},
			{Label: "Yes, if it's nearby", Percentage: 72},
			{Label: "Not sure", Percentage: 8},
			{Label: "No", Percentage: 2},
		},
	},
	{
		ID:        "2",
		ArticleID: "2",
		Question:  "Where do you see news first?",
		Options: []domain.PollOption{
			{Label: "Instagram", Percentage: 41},
			{Label: "TikTok", Percentage: 33},
			{Label: "News apps", Percentage: 17},
			{Label: "TV", Percentage: 9},
		},
	},
	{
		ID:        "3",
		ArticleID: "3",
		Question:  "Will the new tariffs change what you buy?",
		Options: []domain.PollOption{
			{Label: "Yes, a lot", Percentage: 38},
			{Label: "A little", Percentage: 45},
			{Label: "Not at all", Percentage: 17},
		},
	},
	{
		ID:        "4",
		ArticleID: "4",
		Question:  "Should NHL jerseys stay made in Canada?",
		Options: []domain.PollOption{
			{Label: "Yes", Percentage: 64},
			{Label: "Doesn't matter", Percentage: 29},
			{Label: "No", Percentage: 7},
		},
	},
	{
		ID:        "5",
		ArticleID: "5",
		Question:  "How much of your budget goes to rent?",
		Options: []domain.PollOption{
			{Label: "Under 30%", Percentage: 14},
			{Label: "30-50%", Percentage: 47},
			{Label: "Over 50%", Percentage: 39},
		},
	},
	{
		ID:        "6",
		ArticleID: "6",
		Question:  "Has extreme heat changed your summer plans?",
		Options: []domain.PollOption{
			{Label: "Yes", Percentage: 52},
			{Label: "Somewhat", Percentage: 31},
			{Label: "No", Percentage: 17},
		},
	},
	{
		ID:        "7",
		ArticleID: "7",
		Question:  "Do you use AI tools for schoolwork?",
		Options: []domain.PollOption{
			{Label: "Every week", Percentage: 44},
			{Label: "Sometimes", Percentage: 36},
			{Label: "Never", Percentage: 20},
		},
	},
	{
		ID:        "8",
		ArticleID: "8",
		Question:  "Are you registered to vote?",
		Options: []domain.PollOption{
			{Label: "Yes", Percentage: 68},
			{Label: "Planning to", Percentage: 22},
			{Label: "No", Percentage: 10},
		},
	},
	{
		ID:        "9",
		ArticleID: "9",
		Question:  "How often do you buy second-hand clothes?",
		Options: []domain.PollOption{
			{Label: "Most of the time", Percentage: 27},
			{Label: "Occasionally", Percentage: 51},
			{Label: "Never", Percentage: 22},
		},
	},
	{
		ID:        "10",
		ArticleID: "10",
		Question:  "Does your school offer mental health days?",
		Options: []domain.PollOption{
			{Label: "Yes", Percentage: 35},
			{Label: "No", Percentage: 48},
			{Label: "I don't know", Percentage: 17},
		},
	},
}

var defaultDiscussions = []domain.Discussion{
	{
		ArticleID: "1",
		Article: domain.DiscussionArticle{
			Summary:  "Thousands of students walked out of class to demand faster action on emissions.",
			Source:   "The Guardian",
			Category: "Environment",
			Image:    "climate-march.jpg",
			Logo:     "guardian-logo.png",
		},
		Comments: []domain.Comment{
			{User: "Maya", Text: "I was there! The energy was unreal.", Likes: 24, Dislikes: 1, Replies: 3},
			{User: "Jordan", Text: "Marches are great but we need policy, not just posters.", Likes: 17, Dislikes: 4, Replies: 6},
			{User: "Priya", Text: "My whole class walked out. Teachers were surprisingly supportive.", Likes: 11, Dislikes: 0, Replies: 1},
		},
	},
	{
		ArticleID: "2",
		Article: domain.DiscussionArticle{
			Summary:  "A new survey finds most young adults get their headlines from social feeds first.",
			Source:   "Reuters",
			Category: "Technology",
			Image:    "instagram-news.jpg",
			Logo:     "reuters-logo.png",
		},
		Comments: []domain.Comment{
			{User: "Leo", Text: "Honestly I only check news apps when something goes viral first.", Likes: 9, Dislikes: 2, Replies: 2},
			{User: "Sam", Text: "The algorithm decides what I know. That's kind of scary.", Likes: 15, Dislikes: 1, Replies: 4},
		},
	},
	{
		ArticleID: "3",
		Article: domain.DiscussionArticle{
			Summary:  "New import duties range from 10% to more than 40% depending on the trading partner.",
			Source:   "CNN",
			Category: "Politics",
			Image:    "tariffs.jpg",
			Logo:     "cnn-logo.png",
		},
		Comments: []domain.Comment{
			{User: "Ava", Text: "So my next phone is going to cost more. Great.", Likes: 21, Dislikes: 3, Replies: 5},
			{User: "Noah", Text: "Does anyone know how this affects student visas or imports for small shops?", Likes: 4, Dislikes: 0, Replies: 2},
		},
	},
	{
		ArticleID: "6",
		Article: domain.DiscussionArticle{
			Summary:  "Spain, Italy and Greece issued red alerts as temperatures topped 44C.",
			Source:   "BBC News",
			Category: "Environment",
			Image:    "heatwave.jpg",
			Logo:     "bbc-logo.png",
		},
		Comments: []domain.Comment{
			{User: "Elena", Text: "We cancelled our trip to Athens. Not worth the risk.", Likes: 8, Dislikes: 0, Replies: 1},
		},
	},
	{
		ArticleID: "7",
		Article: domain.DiscussionArticle{
			Summary:  "Teachers are divided over whether chatbots help or hurt learning.",
			Source:   "The Verge",
			Category: "Technology",
			Image:    "ai-classroom.jpg",
			Logo:     "verge-logo.png",
		},
		Comments: []domain.Comment{
			{User: "Kai", Text: "It explains calculus better than my textbook does.", Likes: 19, Dislikes: 5, Replies: 7},
			{User: "Rosa", Text: "If everyone uses it for essays, what's the point of grades?", Likes: 12, Dislikes: 6, Replies: 3},
		},
	},
}

package domain

// Poll is a question attached to a single article.
type Poll struct {
	ID        string
	ArticleID string
	Question  string
	Options   []PollOption
}

// PollOption is a single answer. Percentages are display values and are not
// required to sum to 100.
type PollOption struct {
	Label      string `json:"label"`
	Percentage int    `json:"percentage"`
}

// PollView is a poll joined with the article it references.
type PollView struct {
	ID       string         `json:"id"`
	Article  ArticleSummary `json:"article"`
	Question string         `json:"question"`
	Options  []PollOption   `json:"options"`
}

func NewPollView(p *Poll, a *Article, baseURL string) PollView {
	options := make([]PollOption, len(p.Options))
	copy(options, p.Options)
	return PollView{
		ID:       p.ID,
		Article:  NewArticleSummary(a, baseURL),
		Question: p.Question,
		Options:  options,
	}
}

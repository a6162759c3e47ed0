package domain

// Discussion is the comment thread of an article. It keeps its own snapshot of
// the article header instead of joining against the articles table.
type Discussion struct {
	ArticleID string
	Article   DiscussionArticle
	Comments  []Comment
}

// DiscussionArticle is the denormalized article header of a discussion.
type DiscussionArticle struct {
	Summary  string
	Source   string
	Category string
	Image    string
	Logo     string
}

type Comment struct {
	User     string `json:"user"`
	Text     string `json:"comment"`
	Likes    int    `json:"likes"`
	Dislikes int    `json:"dislikes"`
	Replies  int    `json:"replies"`
}

// DiscussionHeader is the wire form of DiscussionArticle. The zero value
// encodes as {}.
type DiscussionHeader struct {
	Summary  string `json:"summary,omitempty"`
	Source   string `json:"source,omitempty"`
	Category string `json:"category,omitempty"`
	ImageURL string `json:"image_url,omitempty"`
	LogoURL  string `json:"logo_url,omitempty"`
}

// DiscussionView is the discussion endpoint payload.
type DiscussionView struct {
	Article  DiscussionHeader `json:"article"`
	Comments []Comment        `json:"comments"`
}

// EmptyDiscussion is returned for unknown discussions: {"article":{},"comments":[]}.
func EmptyDiscussion() DiscussionView {
	return DiscussionView{Comments: []Comment{}}
}

func NewDiscussionView(d *Discussion, baseURL string) DiscussionView {
	comments := make([]Comment, len(d.Comments))
	copy(comments, d.Comments)
	return DiscussionView{
		Article: DiscussionHeader{
			Summary:  d.Article.Summary,
			Source:   d.Article.Source,
			Category: d.Article.Category,
			ImageURL: AssetURL(baseURL, d.Article.Image),
			LogoURL:  AssetURL(baseURL, d.Article.Logo),
		},
		Comments: comments,
	}
}

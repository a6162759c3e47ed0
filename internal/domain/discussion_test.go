package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmptyDiscussion_EncodesAsShell(t *testing.T) {
	payload, err := json.Marshal(EmptyDiscussion())
	require.NoError(t, err)
	assert.JSONEq(t, `{"article":{},"comments":[]}`, string(payload))
}

func TestNewDiscussionView_ResolvesAssets(t *testing.T) {
	d := &Discussion{
		ArticleID: "1",
		Article: DiscussionArticle{
			Summary:  "Students walk out",
			Source:   "The Guardian",
			Category: "Environment",
			Image:    "climate-march.jpg",
			Logo:     "guardian-logo.png",
		},
		Comments: []Comment{{User: "maya", Text: "Proud of everyone", Likes: 3}},
	}

	view := NewDiscussionView(d, "http://10.0.0.5:5050/")

	assert.Equal(t, "http://10.0.0.5:5050/static/climate-march.jpg", view.Article.ImageURL)
	assert.Equal(t, "http://10.0.0.5:5050/static/guardian-logo.png", view.Article.LogoURL)
	require.Len(t, view.Comments, 1)
	assert.Equal(t, "maya", view.Comments[0].User)

	// the view owns its comments
	view.Comments[0].Likes = 99
	assert.Equal(t, 3, d.Comments[0].Likes)
}

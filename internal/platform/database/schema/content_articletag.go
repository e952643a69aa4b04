package schema

// ContentArticleTagTable represents the 'content.articletag' junction table
type ContentArticleTagTable struct {
	Table     string
	ArticleID string
	TagID     string
}

// ContentArticleTag is the schema definition for content.articletag
var ContentArticleTag = ContentArticleTagTable{
	Table:     "content.articletag",
	ArticleID: "articleid",
	TagID:     "tagid",
}

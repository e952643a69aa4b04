package schema

// ContentCommentTable represents the 'content.comment' table
type ContentCommentTable struct {
	Table     string
	ID        string
	ArticleID string
	Author    string
	Body      string
	CreatedAt string
	UpdatedAt string
}

// ContentComment is the schema definition for content.comment
var ContentComment = ContentCommentTable{
	Table:     "content.comment",
	ID:        "id",
	ArticleID: "articleid",
	Author:    "author",
	Body:      "body",
	CreatedAt: "createdat",
	UpdatedAt: "updatedat",
}

func (t ContentCommentTable) Columns() []string {
	return []string{t.ID, t.ArticleID, t.Author, t.Body, t.CreatedAt, t.UpdatedAt}
}

package schema

// ContentArticleTable represents the 'content.article' table
type ContentArticleTable struct {
	Table     string
	ID        string
	Title     string
	Author    string
	Body      string
	CreatedAt string
	UpdatedAt string
}

// ContentArticle is the schema definition for content.article
var ContentArticle = ContentArticleTable{
	Table:     "content.article",
	ID:        "id",
	Title:     "title",
	Author:    "author",
	Body:      "body",
	CreatedAt: "createdat",
	UpdatedAt: "updatedat",
}

func (t ContentArticleTable) Columns() []string {
	return []string{t.ID, t.Title, t.Author, t.Body, t.CreatedAt, t.UpdatedAt}
}

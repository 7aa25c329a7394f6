package domain

import "context"

// Blog is a post owned by exactly one User.
type Blog struct {
	ID      uint   `json:"id" gorm:"primaryKey"`
	Title   string `json:"title" gorm:"not null"`
	Body    string `json:"body" gorm:"not null"`
	UserID  uint   `json:"user_id" gorm:"not null;index"`
	Creator *User  `json:"-" gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
}

func (Blog) TableName() string { return "blogs" }

// BlogRequest is the body of create and update; update replaces both fields.
type BlogRequest struct {
	Title string `json:"title" form:"title" binding:"required"`
	Body  string `json:"body" form:"body" binding:"required"`
}

type BlogSummary struct {
	ID    uint   `json:"id"`
	Title string `json:"title"`
	Body  string `json:"body"`
}

// ShowBlog is a Blog together with its creator.
type ShowBlog struct {
	ID      uint     `json:"id"`
	Title   string   `json:"title"`
	Body    string   `json:"body"`
	Creator ShowUser `json:"creator"`
}

func NewShowBlog(b *Blog) ShowBlog {
	show := ShowBlog{ID: b.ID, Title: b.Title, Body: b.Body}
	if b.Creator != nil {
		show.Creator = NewShowUser(b.Creator)
	} else {
		show.Creator = ShowUser{ID: b.UserID, Blogs: []BlogSummary{}}
	}
	return show
}

func NewShowBlogs(blogs []*Blog) []ShowBlog {
	out := make([]ShowBlog, 0, len(blogs))
	for _, b := range blogs {
		out = append(out, NewShowBlog(b))
	}
	return out
}

type BlogRepository interface {
	Create(blog *Blog) error
	GetByID(id uint) (*Blog, error)
	List() ([]*Blog, error)
	Update(id uint, title, body string) error
	Delete(id uint) error
}

// BlogService is the single authorized entry point for blog operations.
// Every method requires the authenticated caller (token subject).
type BlogService interface {
	Create(ctx context.Context, caller string, req BlogRequest) (*Blog, error)
	Get(ctx context.Context, caller string, id uint) (*Blog, error)
	List(ctx context.Context, caller string) ([]*Blog, error)
	Update(ctx context.Context, caller string, id uint, req BlogRequest) error
	Delete(ctx context.Context, caller string, id uint) error
}

package domain

import "context"

// User is a registered author. Password holds the bcrypt digest only.
type User struct {
	ID       uint   `json:"id" gorm:"primaryKey"`
	Name     string `json:"name" gorm:"not null"`
	Email    string `json:"email" gorm:"index;not null"`
	Password string `json:"-" gorm:"not null"`
	Blogs    []Blog `json:"blogs" gorm:"foreignKey:UserID"`
}

func (User) TableName() string { return "users" }

// MaxPasswordBytes is the bcrypt input limit. It counts bytes, not characters.
const MaxPasswordBytes = 72

type CreateUserRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginRequest is the OAuth2 password-grant form: the username field carries the email.
type LoginRequest struct {
	Username string `form:"username" binding:"required"`
	Password string `form:"password" binding:"required"`
}

type Token struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// ShowUser is the public projection of a User.
type ShowUser struct {
	ID    uint          `json:"id"`
	Name  string        `json:"name"`
	Email string        `json:"email"`
	Blogs []BlogSummary `json:"blogs"`
}

func NewShowUser(u *User) ShowUser {
	blogs := make([]BlogSummary, 0, len(u.Blogs))
	for _, b := range u.Blogs {
		blogs = append(blogs, BlogSummary{ID: b.ID, Title: b.Title, Body: b.Body})
	}
	return ShowUser{ID: u.ID, Name: u.Name, Email: u.Email, Blogs: blogs}
}

type UserRepository interface {
	Create(user *User) error
	GetByID(id uint) (*User, error)
	GetByEmail(email string) (*User, error)
}

type UserService interface {
	Create(ctx context.Context, req CreateUserRequest) (*User, error)
	Get(ctx context.Context, id uint) (*User, error)
}

type AuthService interface {
	Login(ctx context.Context, email string, password string) (*Token, error)
	Logout(ctx context.Context, token string) error
}

package handler

import (
	"context"
	"io"
	"sort"
	"time"

	"github.com/gin-gonic/gin"
	"seungpyo.lee/BlogBackend/internal/domain"
	"seungpyo.lee/BlogBackend/pkg/jwt"
	"seungpyo.lee/BlogBackend/pkg/logger"
	"seungpyo.lee/BlogBackend/pkg/middleware"
)

type stubBlogService struct {
	blogs map[uint]*domain.Blog
	users map[string]*domain.User
	next  uint
	err   error
}

func newStubBlogService() *stubBlogService {
	return &stubBlogService{
		blogs: map[uint]*domain.Blog{},
		users: map[string]*domain.User{"ann@example.com": {ID: 1, Name: "Ann", Email: "ann@example.com"}},
	}
}

func (s *stubBlogService) Create(_ context.Context, caller string, req domain.BlogRequest) (*domain.Blog, error) {
	if s.err != nil {
		return nil, s.err
	}
	owner, ok := s.users[caller]
	if !ok {
		return nil, domain.ErrUnauthenticated
	}
	s.next++
	b := &domain.Blog{ID: s.next, Title: req.Title, Body: req.Body, UserID: owner.ID, Creator: owner}
	s.blogs[b.ID] = b
	return b, nil
}

func (s *stubBlogService) Get(_ context.Context, _ string, id uint) (*domain.Blog, error) {
	if s.err != nil {
		return nil, s.err
	}
	b, ok := s.blogs[id]
	if !ok {
		return nil, domain.ErrBlogNotFound
	}
	return b, nil
}

func (s *stubBlogService) List(_ context.Context, _ string) ([]*domain.Blog, error) {
	if s.err != nil {
		return nil, s.err
	}
	out := make([]*domain.Blog, 0, len(s.blogs))
	for _, b := range s.blogs {
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *stubBlogService) Update(_ context.Context, _ string, id uint, req domain.BlogRequest) error {
	if s.err != nil {
		return s.err
	}
	b, ok := s.blogs[id]
	if !ok {
		return domain.ErrBlogNotFound
	}
	b.Title, b.Body = req.Title, req.Body
	return nil
}

func (s *stubBlogService) Delete(_ context.Context, _ string, id uint) error {
	if s.err != nil {
		return s.err
	}
	if _, ok := s.blogs[id]; !ok {
		return domain.ErrBlogNotFound
	}
	delete(s.blogs, id)
	return nil
}

type stubUserService struct {
	users map[uint]*domain.User
	next  uint
	err   error
}

func (s *stubUserService) Create(_ context.Context, req domain.CreateUserRequest) (*domain.User, error) {
	if s.err != nil {
		return nil, s.err
	}
	for _, u := range s.users {
		if u.Email == req.Email {
			return nil, domain.ErrEmailInUse
		}
	}
	s.next++
	u := &domain.User{ID: s.next, Name: req.Name, Email: req.Email, Password: "$2a$04$digest"}
	s.users[u.ID] = u
	return u, nil
}

func (s *stubUserService) Get(_ context.Context, id uint) (*domain.User, error) {
	u, ok := s.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return u, nil
}

// stubAuthService accepts the credentials in passwords and issues real tokens.
type stubAuthService struct {
	tm        jwt.TokenManager
	passwords map[string]string
	loggedOut []string
}

func (s *stubAuthService) Login(_ context.Context, email, password string) (*domain.Token, error) {
	want, ok := s.passwords[email]
	if !ok {
		return nil, domain.ErrInvalidName
	}
	if want != password {
		return nil, domain.ErrIncorrectPassword
	}
	tok, err := s.tm.Issue(email, time.Minute)
	if err != nil {
		return nil, err
	}
	return &domain.Token{AccessToken: tok, TokenType: "bearer"}, nil
}

func (s *stubAuthService) Logout(_ context.Context, token string) error {
	s.loggedOut = append(s.loggedOut, token)
	return nil
}

type stubPinger struct{ err error }

func (p stubPinger) PingContext(context.Context) error { return p.err }

type testEnv struct {
	router *gin.Engine
	tm     jwt.TokenManager
	blogs  *stubBlogService
	users  *stubUserService
	auth   *stubAuthService
}

func newTestEnv(failureStatus int, ping error) *testEnv {
	gin.SetMode(gin.TestMode)
	log := logger.NewWithWriter(io.Discard, "error")
	tm := jwt.NewTokenManager("handler-test-key")

	env := &testEnv{
		tm:    tm,
		blogs: newStubBlogService(),
		users: &stubUserService{users: map[uint]*domain.User{}},
		auth:  &stubAuthService{tm: tm, passwords: map[string]string{"ann@example.com": "s3cret"}},
	}
	r := gin.New()
	SetupRoutes(r, Handlers{
		Blog:   NewBlogHandler(env.blogs, log),
		User:   NewUserHandler(env.users, log),
		Auth:   NewAuthHandler(env.auth, log, failureStatus),
		Health: NewHealthHandler(stubPinger{err: ping}, log),
	}, middleware.AuthMiddleware(tm))
	env.router = r
	return env
}

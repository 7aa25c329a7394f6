package service

import (
	"context"
	"sort"

	"seungpyo.lee/BlogBackend/internal/domain"
)

// memStore is an in-memory stand-in for the gorm repositories. memTx restores
// the previous state when the unit of work fails.
type memStore struct {
	users    map[uint]domain.User
	blogs    map[uint]domain.Blog
	nextUser uint
	nextBlog uint
	err      error // returned by every repository call when set
}

func newMemStore() *memStore {
	return &memStore{users: map[uint]domain.User{}, blogs: map[uint]domain.Blog{}}
}

type memTx struct {
	store *memStore
	calls int
}

func (m *memTx) Do(_ context.Context, fn func(uow domain.UnitOfWork) error) error {
	m.calls++
	users := make(map[uint]domain.User, len(m.store.users))
	for k, v := range m.store.users {
		users[k] = v
	}
	blogs := make(map[uint]domain.Blog, len(m.store.blogs))
	for k, v := range m.store.blogs {
		blogs[k] = v
	}
	nextUser, nextBlog := m.store.nextUser, m.store.nextBlog

	if err := fn(m.store); err != nil {
		m.store.users, m.store.blogs = users, blogs
		m.store.nextUser, m.store.nextBlog = nextUser, nextBlog
		return err
	}
	return nil
}

func (s *memStore) Users() domain.UserRepository { return memUsers{s} }
func (s *memStore) Blogs() domain.BlogRepository { return memBlogs{s} }

func (s *memStore) blogsOf(userID uint) []domain.Blog {
	var out []domain.Blog
	for _, b := range s.blogs {
		if b.UserID == userID {
			out = append(out, b)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

type memUsers struct{ s *memStore }

func (r memUsers) Create(user *domain.User) error {
	if r.s.err != nil {
		return r.s.err
	}
	r.s.nextUser++
	user.ID = r.s.nextUser
	r.s.users[user.ID] = *user
	return nil
}

func (r memUsers) GetByID(id uint) (*domain.User, error) {
	if r.s.err != nil {
		return nil, r.s.err
	}
	u, ok := r.s.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	u.Blogs = r.s.blogsOf(id)
	u.Password = ""
	return &u, nil
}

func (r memUsers) GetByEmail(email string) (*domain.User, error) {
	if r.s.err != nil {
		return nil, r.s.err
	}
	var found *domain.User
	for _, u := range r.s.users {
		if u.Email == email && (found == nil || u.ID < found.ID) {
			u := u
			found = &u
		}
	}
	if found == nil {
		return nil, domain.ErrUserNotFound
	}
	return found, nil
}

type memBlogs struct{ s *memStore }

func (r memBlogs) Create(blog *domain.Blog) error {
	if r.s.err != nil {
		return r.s.err
	}
	if _, ok := r.s.users[blog.UserID]; !ok {
		return domain.ErrUserNotFound
	}
	r.s.nextBlog++
	blog.ID = r.s.nextBlog
	r.s.blogs[blog.ID] = *blog
	return nil
}

func (r memBlogs) withCreator(b domain.Blog) *domain.Blog {
	if u, ok := r.s.users[b.UserID]; ok {
		u.Blogs = r.s.blogsOf(u.ID)
		b.Creator = &u
	}
	return &b
}

func (r memBlogs) GetByID(id uint) (*domain.Blog, error) {
	if r.s.err != nil {
		return nil, r.s.err
	}
	b, ok := r.s.blogs[id]
	if !ok {
		return nil, domain.ErrBlogNotFound
	}
	return r.withCreator(b), nil
}

func (r memBlogs) List() ([]*domain.Blog, error) {
	if r.s.err != nil {
		return nil, r.s.err
	}
	out := make([]*domain.Blog, 0, len(r.s.blogs))
	for _, b := range r.s.blogs {
		out = append(out, r.withCreator(b))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r memBlogs) Update(id uint, title, body string) error {
	if r.s.err != nil {
		return r.s.err
	}
	b, ok := r.s.blogs[id]
	if !ok {
		return domain.ErrBlogNotFound
	}
	b.Title, b.Body = title, body
	r.s.blogs[id] = b
	return nil
}

func (r memBlogs) Delete(id uint) error {
	if r.s.err != nil {
		return r.s.err
	}
	if _, ok := r.s.blogs[id]; !ok {
		return domain.ErrBlogNotFound
	}
	delete(r.s.blogs, id)
	return nil
}

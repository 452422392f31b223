package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/rimonomega/sampleapp/internal/core/domain"
	"github.com/rimonomega/sampleapp/internal/core/ports"
)

// ---------------------------------------------------------------------------
// In-memory stub repositories
// ---------------------------------------------------------------------------

type stubUserRepo struct {
	users     map[string]*domain.User
	nextID    int
	findCalls int
	findErr   error // if set, FindByID returns this error
	updateErr error // if set, Update* return this error

	posts *stubMicropostRepo
	rels  *stubRelationshipRepo
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == user.Email {
			return nil, domain.ErrEmailTaken
		}
	}
	r.nextID++
	c := cloneUser(user)
	c.ID = fmt.Sprintf("u%d", r.nextID)
	r.users[c.ID] = c
	return cloneUser(c), nil
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	r.findCalls++
	if r.findErr != nil {
		return nil, r.findErr
	}
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return cloneUser(u), nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByIDs(_ context.Context, ids []string) ([]*domain.User, error) {
	var out []*domain.User
	for _, id := range ids {
		if u, ok := r.users[id]; ok {
			out = append(out, cloneUser(u))
		}
	}
	return out, nil
}

func (r *stubUserRepo) UpdateRememberDigest(_ context.Context, id, digest string) error {
	if r.updateErr != nil {
		return r.updateErr
	}
	u, ok := r.users[id]
	if !ok {
		return domain.ErrUserNotFound
	}
	u.RememberDigest = digest
	return nil
}

func (r *stubUserRepo) UpdateSessionToken(_ context.Context, id, token string) error {
	if r.updateErr != nil {
		return r.updateErr
	}
	u, ok := r.users[id]
	if !ok {
		return domain.ErrUserNotFound
	}
	u.SessionToken = token
	return nil
}

// Delete mirrors the Mongo transaction: user, its microposts and every edge
// touching it go together.
func (r *stubUserRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.users[id]; !ok {
		return domain.ErrUserNotFound
	}
	delete(r.users, id)
	if r.posts != nil {
		for pid, p := range r.posts.posts {
			if p.UserID == id {
				delete(r.posts.posts, pid)
			}
		}
	}
	if r.rels != nil {
		for e := range r.rels.edges {
			if e.follower == id || e.followed == id {
				delete(r.rels.edges, e)
			}
		}
	}
	return nil
}

type edge struct{ follower, followed string }

type stubRelationshipRepo struct {
	edges map[edge]struct{}
	err   error
}

func newStubRelationshipRepo() *stubRelationshipRepo {
	return &stubRelationshipRepo{edges: make(map[edge]struct{})}
}

func (r *stubRelationshipRepo) Create(_ context.Context, followerID, followedID string) (bool, error) {
	if r.err != nil {
		return false, r.err
	}
	e := edge{followerID, followedID}
	if _, ok := r.edges[e]; ok {
		return false, nil
	}
	r.edges[e] = struct{}{}
	return true, nil
}

func (r *stubRelationshipRepo) Delete(_ context.Context, followerID, followedID string) error {
	if r.err != nil {
		return r.err
	}
	delete(r.edges, edge{followerID, followedID})
	return nil
}

func (r *stubRelationshipRepo) Exists(_ context.Context, followerID, followedID string) (bool, error) {
	_, ok := r.edges[edge{followerID, followedID}]
	return ok, r.err
}

func (r *stubRelationshipRepo) FollowingIDs(_ context.Context, followerID string) ([]string, error) {
	if r.err != nil {
		return nil, r.err
	}
	var ids []string
	for e := range r.edges {
		if e.follower == followerID {
			ids = append(ids, e.followed)
		}
	}
	sort.Strings(ids)
	return ids, nil
}

func (r *stubRelationshipRepo) FollowerIDs(_ context.Context, followedID string) ([]string, error) {
	if r.err != nil {
		return nil, r.err
	}
	var ids []string
	for e := range r.edges {
		if e.followed == followedID {
			ids = append(ids, e.follower)
		}
	}
	sort.Strings(ids)
	return ids, nil
}

type stubMicropostRepo struct {
	posts     map[string]*domain.Micropost
	nextID    int
	lastOwner []string // owner set passed to the last FindByOwners call
	findCalls int
}

func newStubMicropostRepo() *stubMicropostRepo {
	return &stubMicropostRepo{posts: make(map[string]*domain.Micropost)}
}

func (r *stubMicropostRepo) Create(_ context.Context, p *domain.Micropost) (*domain.Micropost, error) {
	r.nextID++
	clone := *p
	clone.ID = fmt.Sprintf("p%d", r.nextID)
	r.posts[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubMicropostRepo) FindByID(_ context.Context, id string) (*domain.Micropost, error) {
	p, ok := r.posts[id]
	if !ok {
		return nil, domain.ErrMicropostNotFound
	}
	clone := *p
	return &clone, nil
}

func (r *stubMicropostRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.posts[id]; !ok {
		return domain.ErrMicropostNotFound
	}
	delete(r.posts, id)
	return nil
}

func (r *stubMicropostRepo) CountByUser(_ context.Context, userID string) (int64, error) {
	var n int64
	for _, p := range r.posts {
		if p.UserID == userID {
			n++
		}
	}
	return n, nil
}

// FindByOwners applies the same "$in + created_at desc" query the Mongo repo uses.
func (r *stubMicropostRepo) FindByOwners(_ context.Context, owners []string, page ports.PageFilter) ([]*domain.Micropost, int64, error) {
	r.findCalls++
	r.lastOwner = owners
	in := make(map[string]struct{}, len(owners))
	for _, o := range owners {
		in[o] = struct{}{}
	}
	var matched []*domain.Micropost
	for _, p := range r.posts {
		if _, ok := in[p.UserID]; ok {
			clone := *p
			matched = append(matched, &clone)
		}
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].CreatedAt.After(matched[j].CreatedAt) })
	total := int64(len(matched))

	start := int(page.Skip())
	if start > len(matched) {
		start = len(matched)
	}
	end := start + page.Limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[start:end], total, nil
}

// ---------------------------------------------------------------------------
// Session collaborators
// ---------------------------------------------------------------------------

type stubSessionStore struct {
	values  map[string]string
	cleared int
	renewed int
}

func newStubSessionStore() *stubSessionStore {
	return &stubSessionStore{values: make(map[string]string)}
}

func (s *stubSessionStore) Get(key string) (string, bool) {
	v, ok := s.values[key]
	return v, ok
}

func (s *stubSessionStore) Set(key, value string) { s.values[key] = value }
func (s *stubSessionStore) Delete(key string)     { delete(s.values, key) }

func (s *stubSessionStore) Clear() {
	s.values = make(map[string]string)
	s.cleared++
}

func (s *stubSessionStore) Renew() { s.renewed++ }

type stubCookieJar struct {
	cookies   map[string]string
	permanent map[string]bool
}

func newStubCookieJar() *stubCookieJar {
	return &stubCookieJar{cookies: make(map[string]string), permanent: make(map[string]bool)}
}

func (j *stubCookieJar) Get(name string) (string, bool) {
	v, ok := j.cookies[name]
	return v, ok
}

func (j *stubCookieJar) SetPermanent(name, value string) {
	j.cookies[name] = value
	j.permanent[name] = true
}

func (j *stubCookieJar) Delete(name string) {
	delete(j.cookies, name)
	delete(j.permanent, name)
}

const signedPrefix = "signed:"

type stubSigner struct{}

func (stubSigner) Sign(value string) (string, error) { return signedPrefix + value, nil }

func (stubSigner) Verify(signed string) (string, error) {
	if !strings.HasPrefix(signed, signedPrefix) {
		return "", errors.New("bad signature")
	}
	return strings.TrimPrefix(signed, signedPrefix), nil
}

type stubSink struct {
	mu     sync.Mutex
	events []domain.AuthEvent
}

func (s *stubSink) Enqueue(e domain.AuthEvent) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, e)
}

func (s *stubSink) methods() []domain.AuthMethod {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.AuthMethod, 0, len(s.events))
	for _, e := range s.events {
		out = append(out, e.Method)
	}
	return out
}

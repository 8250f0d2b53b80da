package usecase

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/tuiter/tuiter/internal/domain/contract"
	"github.com/tuiter/tuiter/internal/domain/entity"
)

type nopLogger struct{}

func (nopLogger) Debugf(string, ...interface{}) {}
func (nopLogger) Infof(string, ...interface{}) {}
func (nopLogger) Warnf(string, ...interface{}) {}
func (nopLogger) Errorf(string, ...interface{}) {}
func (nopLogger) Fatalf(string, ...interface{}) {}

// memReactionStore is an in-memory IReactionRepository. Setting fail[method]
// makes that method return the error.
type memReactionStore struct {
	mu        sync.Mutex
	kind      entity.ReactionKind
	records   []*entity.Reaction
	tuits     *memTuitRepo
	users     *memUserRepo
	fail      map[string]error
	mutations int
	seq       int
	// afterCount, when set, runs once a Count result is computed.
	afterCount func()
}

func newMemReactionStore(kind entity.ReactionKind, tuits *memTuitRepo, users *memUserRepo) *memReactionStore {
	return &memReactionStore{kind: kind, tuits: tuits, users: users, fail: map[string]error{}}
}

func (s *memReactionStore) Kind() entity.ReactionKind { return s.kind }

func (s *memReactionStore) FindByTuit(_ context.Context, tuitID string) ([]*entity.Reaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.fail["FindByTuit"]; err != nil {
		return nil, err
	}
	var out []*entity.Reaction
	for _, r := range s.records {
		if r.TuitID == tuitID {
			cp := *r
			if s.users != nil {
				cp.User = s.users.byID[r.UserID]
			}
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (s *memReactionStore) FindByUser(_ context.Context, userID string) ([]*entity.Reaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.fail["FindByUser"]; err != nil {
		return nil, err
	}
	var out []*entity.Reaction
	for _, r := range s.records {
		if r.UserID == userID {
			cp := *r
			if s.tuits != nil {
				cp.Tuit = s.tuits.get(r.TuitID)
			}
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (s *memReactionStore) Find(_ context.Context, userID, tuitID string) (*entity.Reaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.fail["Find"]; err != nil {
		return nil, err
	}
	for _, r := range s.records {
		if r.UserID == userID && r.TuitID == tuitID {
			cp := *r
			return &cp, nil
		}
	}
	return nil, nil
}

func (s *memReactionStore) Create(_ context.Context, userID, tuitID string) (*entity.Reaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.fail["Create"]; err != nil {
		return nil, err
	}
	s.seq++
	s.mutations++
	r := &entity.Reaction{
		ID:        fmt.Sprintf("%s-%d", s.kind, s.seq),
		Kind:      s.kind,
		UserID:    userID,
		TuitID:    tuitID,
		CreatedAt: time.Now(),
	}
	s.records = append(s.records, r)
	cp := *r
	return &cp, nil
}

func (s *memReactionStore) Delete(_ context.Context, userID, tuitID string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.fail["Delete"]; err != nil {
		return 0, err
	}
	kept := s.records[:0]
	var deleted int64
	for _, r := range s.records {
		if r.UserID == userID && r.TuitID == tuitID {
			deleted++
			continue
		}
		kept = append(kept, r)
	}
	s.records = kept
	if deleted > 0 {
		s.mutations++
	}
	return deleted, nil
}

func (s *memReactionStore) Count(_ context.Context, tuitID string) (int64, error) {
	if s.afterCount != nil {
		defer s.afterCount()
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.fail["Count"]; err != nil {
		return 0, err
	}
	var n int64
	for _, r := range s.records {
		if r.TuitID == tuitID {
			n++
		}
	}
	return n, nil
}

func (s *memReactionStore) has(userID, tuitID string) bool {
	r, _ := s.Find(context.Background(), userID, tuitID)
	return r != nil
}

type memTuitRepo struct {
	mu          sync.Mutex
	byID        map[string]*entity.Tuit
	fail        map[string]error
	statsWrites int
}

func newMemTuitRepo(ids ...string) *memTuitRepo {
	repo := &memTuitRepo{byID: map[string]*entity.Tuit{}, fail: map[string]error{}}
	for _, id := range ids {
		repo.byID[id] = &entity.Tuit{ID: id, Tuit: "tuit " + id, PostedByID: "author"}
	}
	return repo
}

func (r *memTuitRepo) get(id string) *entity.Tuit {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.byID[id]
	if !ok {
		return nil
	}
	cp := *t
	return &cp
}

func (r *memTuitRepo) CreateTuit(_ context.Context, tuit *entity.Tuit) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.fail["CreateTuit"]; err != nil {
		return err
	}
	cp := *tuit
	r.byID[tuit.ID] = &cp
	return nil
}

func (r *memTuitRepo) GetTuitByID(_ context.Context, tuitID string) (*entity.Tuit, error) {
	if err := r.fail["GetTuitByID"]; err != nil {
		return nil, err
	}
	t := r.get(tuitID)
	if t == nil {
		return nil, contract.ErrTuitNotFound
	}
	return t, nil
}

func (r *memTuitRepo) GetTuits(context.Context) ([]*entity.Tuit, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*entity.Tuit, 0, len(r.byID))
	for _, t := range r.byID {
		cp := *t
		out = append(out, &cp)
	}
	return out, nil
}

func (r *memTuitRepo) GetTuitsByUser(_ context.Context, userID string) ([]*entity.Tuit, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.Tuit
	for _, t := range r.byID {
		if t.PostedByID == userID {
			cp := *t
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *memTuitRepo) UpdateTuit(_ context.Context, tuitID string, updates map[string]interface{}) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.byID[tuitID]
	if !ok {
		return contract.ErrTuitNotFound
	}
	if text, ok := updates["tuit"].(string); ok {
		t.Tuit = text
	}
	return nil
}

func (r *memTuitRepo) UpdateStats(_ context.Context, tuitID string, stats entity.Stats) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.fail["UpdateStats"]; err != nil {
		return err
	}
	t, ok := r.byID[tuitID]
	if !ok {
		return contract.ErrTuitNotFound
	}
	t.Stats = stats
	r.statsWrites++
	return nil
}

func (r *memTuitRepo) DeleteTuit(_ context.Context, tuitID string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[tuitID]; !ok {
		return 0, nil
	}
	delete(r.byID, tuitID)
	return 1, nil
}

type memUserRepo struct {
	byID map[string]*entity.User
}

func newMemUserRepo(users ...*entity.User) *memUserRepo {
	repo := &memUserRepo{byID: map[string]*entity.User{}}
	for _, u := range users {
		repo.byID[u.ID] = u
	}
	return repo
}

func (r *memUserRepo) CreateUser(_ context.Context, user *entity.User) error {
	for _, u := range r.byID {
		if u.Username == user.Username {
			return contract.ErrDuplicateUser
		}
	}
	r.byID[user.ID] = user
	return nil
}

func (r *memUserRepo) GetUserByID(_ context.Context, id string) (*entity.User, error) {
	if u, ok := r.byID[id]; ok {
		return u, nil
	}
	return nil, contract.ErrUserNotFound
}

func (r *memUserRepo) GetUserByUsername(_ context.Context, username string) (*entity.User, error) {
	for _, u := range r.byID {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, contract.ErrUserNotFound
}

func (r *memUserRepo) GetAllUsers(context.Context) ([]*entity.User, error) {
	out := make([]*entity.User, 0, len(r.byID))
	for _, u := range r.byID {
		out = append(out, u)
	}
	return out, nil
}

func (r *memUserRepo) UpdateUser(_ context.Context, id string, updates map[string]interface{}) (*entity.User, error) {
	u, ok := r.byID[id]
	if !ok {
		return nil, contract.ErrUserNotFound
	}
	if hash, ok := updates["password_hash"].(string); ok {
		u.PasswordHash = hash
	}
	if email, ok := updates["email"].(string); ok {
		u.Email = email
	}
	return u, nil
}

func (r *memUserRepo) DeleteUser(_ context.Context, id string) (int64, error) {
	if _, ok := r.byID[id]; !ok {
		return 0, nil
	}
	delete(r.byID, id)
	return 1, nil
}

func (r *memUserRepo) DeleteUsersByUsername(_ context.Context, username string) (int64, error) {
	var n int64
	for id, u := range r.byID {
		if u.Username == username {
			delete(r.byID, id)
			n++
		}
	}
	return n, nil
}

func (r *memUserRepo) DeleteAllUsers(context.Context) (int64, error) {
	n := int64(len(r.byID))
	r.byID = map[string]*entity.User{}
	return n, nil
}

type memTuitCache struct {
	entries     map[string]*entity.Tuit
	invalidated []string
}

func newMemTuitCache() *memTuitCache {
	return &memTuitCache{entries: map[string]*entity.Tuit{}}
}

func (c *memTuitCache) GetTuit(_ context.Context, tuitID string) (*entity.Tuit, bool, error) {
	t, ok := c.entries[tuitID]
	return t, ok, nil
}

func (c *memTuitCache) SetTuit(_ context.Context, tuit *entity.Tuit) error {
	c.entries[tuit.ID] = tuit
	return nil
}

func (c *memTuitCache) InvalidateTuit(_ context.Context, tuitID string) error {
	delete(c.entries, tuitID)
	c.invalidated = append(c.invalidated, tuitID)
	return nil
}

type recordingPublisher struct {
	events []contract.ReactionToggled
	err    error
}

func (p *recordingPublisher) PublishReactionToggled(_ context.Context, event contract.ReactionToggled) error {
	p.events = append(p.events, event)
	return p.err
}

type recordingObserver struct {
	transitions []string
	failures    int
	hits        int
	misses      int
}

func (o *recordingObserver) ObserveToggle(kind entity.ReactionKind, transition string) {
	o.transitions = append(o.transitions, string(kind)+":"+transition)
}

func (o *recordingObserver) ObserveToggleFailure(entity.ReactionKind) { o.failures++ }
func (o *recordingObserver) ObserveCacheHit(time.Duration) { o.hits++ }
func (o *recordingObserver) ObserveCacheMiss(time.Duration) { o.misses++ }

// mutexLocker is an in-process IToggleLocker keyed like the Redis one.
type mutexLocker struct {
	mu       sync.Mutex
	locks    map[string]*sync.Mutex
	acquired int
	err      error
}

func (l *mutexLocker) Acquire(_ context.Context, userID, tuitID string) (func(), error) {
	if l.err != nil {
		return nil, l.err
	}
	l.mu.Lock()
	if l.locks == nil {
		l.locks = map[string]*sync.Mutex{}
	}
	key := userID + "/" + tuitID
	m, ok := l.locks[key]
	if !ok {
		m = &sync.Mutex{}
		l.locks[key] = m
	}
	l.acquired++
	l.mu.Unlock()

	m.Lock()
	return m.Unlock, nil
}

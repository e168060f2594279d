package engine

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/shufflegram/backend/internal/models"
	"github.com/shufflegram/backend/internal/repositories"
	"golang.org/x/time/rate"
)

// The fakes below replace the Mongo and Postgres repositories with in-memory
// maps. Reads hand out copies so the engine's mutate-then-save flow is
// exercised the same way it is against real decode/replace round trips.
// Sampling is deterministic: the smallest eligible id wins.

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[string]*models.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*models.User)}
}

func (r *fakeUserRepo) EnsureUser(ctx context.Context, id string, now time.Time) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if u, ok := r.users[id]; ok {
		return cloneUser(u), nil
	}
	u := models.NewUser(id, now)
	r.users[id] = cloneUser(u)
	return u, nil
}

func (r *fakeUserRepo) GetUser(ctx context.Context, id string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return cloneUser(u), nil
}

func (r *fakeUserRepo) SaveUser(ctx context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[user.ID]; !ok {
		return repositories.ErrNotFound
	}
	r.users[user.ID] = cloneUser(user)
	return nil
}

func (r *fakeUserRepo) AddXP(ctx context.Context, id string, amount int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return repositories.ErrNotFound
	}
	u.XP += amount
	return nil
}

func (r *fakeUserRepo) TopByXP(ctx context.Context, limit int64) ([]models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	users := make([]models.User, 0, len(r.users))
	for _, u := range r.users {
		users = append(users, *cloneUser(u))
	}
	sort.Slice(users, func(i, j int) bool {
		if users[i].XP != users[j].XP {
			return users[i].XP > users[j].XP
		}
		return users[i].ID < users[j].ID
	})
	if int64(len(users)) > limit {
		users = users[:limit]
	}
	return users, nil
}

func (r *fakeUserRepo) SampleChatPartner(ctx context.Context, excludeID string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var ids []string
	for id, u := range r.users {
		if id == excludeID || !u.AnonymousReceive || u.Banned || u.AnonConversation != "" {
			continue
		}
		ids = append(ids, id)
	}
	if len(ids) == 0 {
		return nil, repositories.ErrNotFound
	}
	sort.Strings(ids)
	return cloneUser(r.users[ids[0]]), nil
}

func (r *fakeUserRepo) CountUsers(ctx context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.users)), nil
}

func (r *fakeUserRepo) CountVerified(ctx context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for _, u := range r.users {
		if u.Verified {
			n++
		}
	}
	return n, nil
}

func (r *fakeUserRepo) CountBanned(ctx context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for _, u := range r.users {
		if u.Banned {
			n++
		}
	}
	return n, nil
}

// mustUser reads a user's stored state directly, bypassing the repository
// interface, for assertions.
func (r *fakeUserRepo) mustUser(id string) *models.User {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		panic("fakeUserRepo: no user " + id)
	}
	return cloneUser(u)
}

type fakePostRepo struct {
	mu    sync.Mutex
	posts map[string]*models.Post
}

func newFakePostRepo() *fakePostRepo {
	return &fakePostRepo{posts: make(map[string]*models.Post)}
}

func (r *fakePostRepo) CreatePost(ctx context.Context, post *models.Post) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.posts[post.ID] = clonePost(post)
	return nil
}

func (r *fakePostRepo) GetPost(ctx context.Context, id string) (*models.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.posts[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return clonePost(p), nil
}

func (r *fakePostRepo) SavePost(ctx context.Context, post *models.Post) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.posts[post.ID]; !ok {
		return repositories.ErrNotFound
	}
	r.posts[post.ID] = clonePost(post)
	return nil
}

func (r *fakePostRepo) DeletePost(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.posts[id]; !ok {
		return repositories.ErrNotFound
	}
	delete(r.posts, id)
	return nil
}

func (r *fakePostRepo) DeleteByUploader(ctx context.Context, uploader string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for id, p := range r.posts {
		if p.Uploader == uploader {
			delete(r.posts, id)
			n++
		}
	}
	return n, nil
}

func (r *fakePostRepo) SampleExcluding(ctx context.Context, excludeIDs []string, excludeUploader string) (*models.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	excluded := make(map[string]bool, len(excludeIDs))
	for _, id := range excludeIDs {
		excluded[id] = true
	}
	var ids []string
	for id, p := range r.posts {
		if excluded[id] || p.Uploader == excludeUploader {
			continue
		}
		ids = append(ids, id)
	}
	if len(ids) == 0 {
		return nil, repositories.ErrNotFound
	}
	sort.Strings(ids)
	return clonePost(r.posts[ids[0]]), nil
}

func (r *fakePostRepo) TopByLikes(ctx context.Context, limit int64) ([]models.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	posts := make([]models.Post, 0, len(r.posts))
	for _, p := range r.posts {
		posts = append(posts, *clonePost(p))
	}
	sort.Slice(posts, func(i, j int) bool {
		if posts[i].Likes != posts[j].Likes {
			return posts[i].Likes > posts[j].Likes
		}
		return posts[i].ID < posts[j].ID
	})
	if int64(len(posts)) > limit {
		posts = posts[:limit]
	}
	return posts, nil
}

func (r *fakePostRepo) MostReported(ctx context.Context, limit int64) ([]models.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var posts []models.Post
	for _, p := range r.posts {
		if len(p.ReportedBy) > 0 {
			posts = append(posts, *clonePost(p))
		}
	}
	sort.Slice(posts, func(i, j int) bool {
		return len(posts[i].ReportedBy) > len(posts[j].ReportedBy)
	})
	if int64(len(posts)) > limit {
		posts = posts[:limit]
	}
	return posts, nil
}

func (r *fakePostRepo) CountPosts(ctx context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.posts)), nil
}

func (r *fakePostRepo) has(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.posts[id]
	return ok
}

type fakeSettingsRepo struct {
	mu       sync.Mutex
	settings *models.Settings
}

func (r *fakeSettingsRepo) GetSettings(ctx context.Context) (*models.Settings, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.settings == nil {
		r.settings = models.DefaultSettings()
	}
	s := *r.settings
	s.Admins = append([]string(nil), r.settings.Admins...)
	return &s, nil
}

func (r *fakeSettingsRepo) SaveSettings(ctx context.Context, settings *models.Settings) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	s := *settings
	s.Admins = append([]string(nil), settings.Admins...)
	r.settings = &s
	return nil
}

type fakeNotificationRepo struct {
	mu      sync.Mutex
	records []models.Notification
}

func (r *fakeNotificationRepo) Record(n *models.Notification) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.records = append(r.records, *n)
	return nil
}

func (r *fakeNotificationRepo) RecentByRecipient(recipientID string, limit int) ([]models.Notification, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Notification
	for i := len(r.records) - 1; i >= 0 && len(out) < limit; i-- {
		if r.records[i].RecipientID == recipientID {
			out = append(out, r.records[i])
		}
	}
	return out, nil
}

func (r *fakeNotificationRepo) CountSince(since time.Time) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for _, rec := range r.records {
		if !rec.CreatedAt.Before(since) {
			n++
		}
	}
	return n, nil
}

// fakeDeliverer records deliveries and can be told to fail for specific
// recipients.
type fakeDeliverer struct {
	mu      sync.Mutex
	sent    []Delivery
	failFor map[string]bool
}

func (d *fakeDeliverer) Deliver(ctx context.Context, delivery Delivery) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.failFor[delivery.Recipient] {
		return errors.New("recipient unreachable")
	}
	d.sent = append(d.sent, delivery)
	return nil
}

func (d *fakeDeliverer) sentTo(recipient string) []Delivery {
	d.mu.Lock()
	defer d.mu.Unlock()
	var out []Delivery
	for _, s := range d.sent {
		if s.Recipient == recipient {
			out = append(out, s)
		}
	}
	return out
}

func (d *fakeDeliverer) failRecipient(id string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.failFor == nil {
		d.failFor = make(map[string]bool)
	}
	d.failFor[id] = true
}

func cloneUser(u *models.User) *models.User {
	c := *u
	c.Uploads = append([]string(nil), u.Uploads...)
	c.Liked = append([]string(nil), u.Liked...)
	c.Disliked = append([]string(nil), u.Disliked...)
	c.Saved = append([]string(nil), u.Saved...)
	c.Shuffled = append([]string(nil), u.Shuffled...)
	c.UploadedAt = append([]time.Time(nil), u.UploadedAt...)
	c.Following = append([]string(nil), u.Following...)
	c.Followers = append([]string(nil), u.Followers...)
	c.MutedNotifications = append([]string(nil), u.MutedNotifications...)
	return &c
}

func clonePost(p *models.Post) *models.Post {
	c := *p
	c.Comments = make([]models.Comment, len(p.Comments))
	for i, cm := range p.Comments {
		cc := cm
		cc.Replies = append([]models.Reply(nil), cm.Replies...)
		c.Comments[i] = cc
	}
	c.SavedBy = append([]string(nil), p.SavedBy...)
	c.ReportedBy = append([]string(nil), p.ReportedBy...)
	return &c
}

// testEnv bundles an engine with its fakes and a controllable clock.
type testEnv struct {
	engine    *Engine
	users     *fakeUserRepo
	posts     *fakePostRepo
	settings  *fakeSettingsRepo
	notes     *fakeNotificationRepo
	deliverer *fakeDeliverer
	clock     time.Time
}

const testRootAdmin = "root1234"

func newTestEnv() *testEnv {
	env := &testEnv{
		users:     newFakeUserRepo(),
		posts:     newFakePostRepo(),
		settings:  &fakeSettingsRepo{},
		notes:     &fakeNotificationRepo{},
		deliverer: &fakeDeliverer{},
		clock:     time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}
	fanout := NewFanOut(env.deliverer, env.notes, 4, rate.Inf)
	env.engine = New(env.users, env.posts, env.settings, fanout, testRootAdmin)
	env.engine.now = func() time.Time { return env.clock }
	return env
}

func (env *testEnv) advance(d time.Duration) { env.clock = env.clock.Add(d) }

// flush waits for pending fan-out deliveries.
func (env *testEnv) flush() { env.engine.fanout.Flush() }

// seedPost inserts a post owned by uploader and returns its id. Each call
// advances the clock one second so ids never collide.
func (env *testEnv) seedPost(uploader string) string {
	env.advance(time.Second)
	post := models.NewPost(uploader, "file-"+uploader, env.clock)
	if err := env.posts.CreatePost(context.Background(), post); err != nil {
		panic(err)
	}
	u, err := env.users.EnsureUser(context.Background(), uploader, env.clock)
	if err != nil {
		panic(err)
	}
	u.Uploads = append(u.Uploads, post.ID)
	if err := env.users.SaveUser(context.Background(), u); err != nil {
		panic(err)
	}
	return post.ID
}

func (env *testEnv) setSettings(mutate func(*models.Settings)) {
	s, err := env.settings.GetSettings(context.Background())
	if err != nil {
		panic(err)
	}
	mutate(s)
	if err := env.settings.SaveSettings(context.Background(), s); err != nil {
		panic(err)
	}
}

package engine

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/shufflegram/backend/internal/models"
)

func TestNextPostExcludesSeenAndOwn(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	own := env.seedPost("alice")
	other1 := env.seedPost("bob")
	other2 := env.seedPost("carol")

	seen := make(map[string]bool)
	for i := 0; i < 2; i++ {
		post, err := env.engine.NextPost(ctx, "alice")
		if err != nil {
			t.Fatalf("shuffle %d: %v", i+1, err)
		}
		if post.ID == own {
			t.Fatal("own post served")
		}
		if seen[post.ID] {
			t.Fatalf("post %s served twice", post.ID)
		}
		seen[post.ID] = true
	}
	if !seen[other1] || !seen[other2] {
		t.Errorf("expected both foreign posts served, saw %v", seen)
	}
}

func TestNextPostExhaustedIsStable(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	env.seedPost("bob")
	if _, err := env.engine.NextPost(ctx, "alice"); err != nil {
		t.Fatal(err)
	}

	for i := 0; i < 2; i++ {
		if _, err := env.engine.NextPost(ctx, "alice"); !errors.Is(err, ErrFeedExhausted) {
			t.Fatalf("attempt %d: expected ErrFeedExhausted, got %v", i+1, err)
		}
	}

	// A new upload makes the feed live again.
	env.seedPost("carol")
	if _, err := env.engine.NextPost(ctx, "alice"); err != nil {
		t.Fatalf("expected new post to end exhaustion, got %v", err)
	}
}

func TestNextPostExcludesReacted(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	liked := env.seedPost("bob")
	disliked := env.seedPost("carol")

	if _, _, err := env.engine.React(ctx, "alice", liked, true); err != nil {
		t.Fatal(err)
	}
	if _, _, err := env.engine.React(ctx, "alice", disliked, false); err != nil {
		t.Fatal(err)
	}

	if _, err := env.engine.NextPost(ctx, "alice"); !errors.Is(err, ErrFeedExhausted) {
		t.Fatalf("reacted posts must not be served, got %v", err)
	}
}

func TestRememberShuffledIdempotent(t *testing.T) {
	u := models.NewUser("alice", time.Now())

	rememberShuffled(u, "p1")
	rememberShuffled(u, "p1")
	if len(u.Shuffled) != 1 {
		t.Fatalf("duplicate append: memory = %v", u.Shuffled)
	}
}

func TestShuffleMemoryEvictsOldest(t *testing.T) {
	u := models.NewUser("alice", time.Now())

	for i := 0; i < shuffleMemoryCap+5; i++ {
		rememberShuffled(u, fmt.Sprintf("p%04d", i))
	}
	if len(u.Shuffled) != shuffleMemoryCap {
		t.Fatalf("memory size = %d, want %d", len(u.Shuffled), shuffleMemoryCap)
	}
	if u.Shuffled[0] != "p0005" {
		t.Errorf("oldest surviving entry = %s, want p0005", u.Shuffled[0])
	}
	if u.Shuffled[len(u.Shuffled)-1] != fmt.Sprintf("p%04d", shuffleMemoryCap+4) {
		t.Errorf("newest entry = %s", u.Shuffled[len(u.Shuffled)-1])
	}
}

func TestEvictedPostBecomesEligibleAgain(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	target := env.seedPost("bob")
	if _, err := env.engine.NextPost(ctx, "alice"); err != nil {
		t.Fatal(err)
	}

	// Push the target out of the dedup memory by hand.
	u := env.users.mustUser("alice")
	u.Shuffled = nil
	for i := 0; i < shuffleMemoryCap; i++ {
		u.Shuffled = append(u.Shuffled, fmt.Sprintf("p%04d", i))
	}
	if err := env.users.SaveUser(ctx, u); err != nil {
		t.Fatal(err)
	}

	post, err := env.engine.NextPost(ctx, "alice")
	if err != nil {
		t.Fatalf("evicted post should be eligible again, got %v", err)
	}
	if post.ID != target {
		t.Errorf("served %s, want %s", post.ID, target)
	}
}

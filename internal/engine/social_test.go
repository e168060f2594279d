package engine

import (
	"context"
	"errors"
	"testing"
)

func TestFollowIsSymmetricAndIdempotent(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	already, err := env.engine.Follow(ctx, "alice", "bob")
	if err != nil {
		t.Fatal(err)
	}
	if already {
		t.Fatal("first follow reported as existing")
	}

	follower := env.users.mustUser("alice")
	target := env.users.mustUser("bob")
	if !follower.IsFollowing("bob") {
		t.Error("following edge missing")
	}
	if len(target.Followers) != 1 || target.Followers[0] != "alice" {
		t.Errorf("followers = %v", target.Followers)
	}

	already, err = env.engine.Follow(ctx, "alice", "bob")
	if err != nil {
		t.Fatal(err)
	}
	if !already {
		t.Error("repeat follow not detected")
	}
	if got := env.users.mustUser("bob").Followers; len(got) != 1 {
		t.Errorf("followers after repeat = %v", got)
	}
	env.flush()
}

func TestFollowSelfRejected(t *testing.T) {
	env := newTestEnv()

	if _, err := env.engine.Follow(context.Background(), "alice", "alice"); !errors.Is(err, ErrInvalidState) {
		t.Fatalf("expected ErrInvalidState, got %v", err)
	}
}

func TestFollowNotifiesTarget(t *testing.T) {
	env := newTestEnv()

	if _, err := env.engine.Follow(context.Background(), "alice", "bob"); err != nil {
		t.Fatal(err)
	}
	env.flush()

	sent := env.deliverer.sentTo("bob")
	if len(sent) != 1 {
		t.Fatalf("deliveries to bob = %d, want 1", len(sent))
	}
}

func TestMuteSuppressesUploadNotifications(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	if _, err := env.engine.Follow(ctx, "muter", "uploader"); err != nil {
		t.Fatal(err)
	}
	if _, err := env.engine.Follow(ctx, "listener", "uploader"); err != nil {
		t.Fatal(err)
	}
	if _, err := env.engine.Mute(ctx, "muter", "uploader"); err != nil {
		t.Fatal(err)
	}
	env.flush()
	followNotes := len(env.deliverer.sentTo("uploader"))

	if _, err := env.engine.Upload(ctx, "uploader", "f"); err != nil {
		t.Fatal(err)
	}
	env.flush()

	if got := env.deliverer.sentTo("listener"); len(got) != 1 {
		t.Errorf("listener deliveries = %d, want 1", len(got))
	} else {
		if got[0].Control != ControlPostActions {
			t.Errorf("control = %q, want %q", got[0].Control, ControlPostActions)
		}
		if got[0].Post == nil {
			t.Error("post not attached to upload notification")
		}
	}
	if got := env.deliverer.sentTo("muter"); len(got) != 0 {
		t.Errorf("muter deliveries = %d, want 0", len(got))
	}
	if got := len(env.deliverer.sentTo("uploader")); got != followNotes {
		t.Errorf("uploader received %d extra deliveries", got-followNotes)
	}
}

func TestMuteIdempotent(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	already, err := env.engine.Mute(ctx, "alice", "bob")
	if err != nil || already {
		t.Fatalf("first mute: already=%v err=%v", already, err)
	}
	already, err = env.engine.Mute(ctx, "alice", "bob")
	if err != nil || !already {
		t.Fatalf("second mute: already=%v err=%v", already, err)
	}
	if muted := env.users.mustUser("alice").MutedNotifications; len(muted) != 1 {
		t.Errorf("muted = %v", muted)
	}
}

func TestFanOutIsolatesFailures(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	for _, f := range []string{"f1", "f2", "f3"} {
		if _, err := env.engine.Follow(ctx, f, "uploader"); err != nil {
			t.Fatal(err)
		}
	}
	env.deliverer.failRecipient("f2")

	post, err := env.engine.Upload(ctx, "uploader", "f")
	if err != nil {
		t.Fatalf("upload must not fail on delivery errors: %v", err)
	}
	env.flush()

	if len(env.deliverer.sentTo("f1")) != 1 || len(env.deliverer.sentTo("f3")) != 1 {
		t.Error("healthy recipients missed the notification")
	}

	// Every attempt lands in the delivery log, failed ones flagged.
	var delivered, failed int
	env.notes.mu.Lock()
	for _, rec := range env.notes.records {
		if rec.Type != "upload" || rec.TargetID != post.ID {
			continue
		}
		if rec.Delivered {
			delivered++
		} else {
			failed++
		}
	}
	env.notes.mu.Unlock()
	if delivered != 2 || failed != 1 {
		t.Errorf("delivery log: delivered=%d failed=%d, want 2/1", delivered, failed)
	}
}

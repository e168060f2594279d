package engine

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shufflegram/backend/internal/models"
)

func TestUploadWindowDeniesOverLimit(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	env.setSettings(func(s *models.Settings) { s.UploadLimit = 3 })

	for i := 0; i < 3; i++ {
		env.advance(time.Minute)
		if _, err := env.engine.Upload(ctx, "alice", "f"); err != nil {
			t.Fatalf("upload %d: %v", i+1, err)
		}
	}

	env.advance(time.Minute)
	_, err := env.engine.Upload(ctx, "alice", "f")
	var rateErr *RateLimitError
	if !errors.As(err, &rateErr) {
		t.Fatalf("expected RateLimitError, got %v", err)
	}
	if rateErr.Limit != 3 || rateErr.Window != time.Hour {
		t.Errorf("unexpected error detail: %+v", rateErr)
	}
	env.flush()
}

func TestUploadWindowSlides(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	env.setSettings(func(s *models.Settings) { s.UploadLimit = 2 })

	if _, err := env.engine.Upload(ctx, "alice", "f"); err != nil {
		t.Fatal(err)
	}
	env.advance(30 * time.Minute)
	if _, err := env.engine.Upload(ctx, "alice", "f"); err != nil {
		t.Fatal(err)
	}

	// Still inside the first upload's window.
	env.advance(20 * time.Minute)
	if _, err := env.engine.Upload(ctx, "alice", "f"); err == nil {
		t.Fatal("expected denial inside the window")
	}

	// First upload ages out; one slot frees up.
	env.advance(11 * time.Minute)
	if _, err := env.engine.Upload(ctx, "alice", "f"); err != nil {
		t.Fatalf("expected slot after window slide, got %v", err)
	}
	env.flush()
}

func TestUploadWindowExemptions(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	env.setSettings(func(s *models.Settings) { s.UploadLimit = 1 })

	if _, err := env.engine.EnsureUser(ctx, "verified-user"); err != nil {
		t.Fatal(err)
	}
	if err := env.engine.VerifyUser(ctx, testRootAdmin, "verified-user"); err != nil {
		t.Fatal(err)
	}

	for i := 0; i < 5; i++ {
		env.advance(time.Second)
		if _, err := env.engine.Upload(ctx, "verified-user", "f"); err != nil {
			t.Fatalf("verified upload %d: %v", i+1, err)
		}
	}
	for i := 0; i < 5; i++ {
		env.advance(time.Second)
		if _, err := env.engine.Upload(ctx, testRootAdmin, "f"); err != nil {
			t.Fatalf("admin upload %d: %v", i+1, err)
		}
	}
	env.flush()
}

func TestShuffleQuotaGatesAfterLimit(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	env.setSettings(func(s *models.Settings) {
		s.ReferralSystem = true
		s.ShuffleLimit = 2
	})

	env.seedPost("uploader1")
	env.seedPost("uploader2")
	env.seedPost("uploader3")

	for i := 0; i < 2; i++ {
		if _, err := env.engine.NextPost(ctx, "alice"); err != nil {
			t.Fatalf("shuffle %d: %v", i+1, err)
		}
	}

	_, err := env.engine.NextPost(ctx, "alice")
	var shufErr *ShuffleLimitError
	if !errors.As(err, &shufErr) {
		t.Fatalf("expected ShuffleLimitError, got %v", err)
	}
	if shufErr.Limit != 2 || shufErr.ReferralsRequired != 3 {
		t.Errorf("unexpected error detail: %+v", shufErr)
	}
}

func TestShuffleQuotaLiftedByReferrals(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	env.setSettings(func(s *models.Settings) {
		s.ReferralSystem = true
		s.ShuffleLimit = 1
	})

	env.seedPost("uploader1")
	env.seedPost("uploader2")

	if _, err := env.engine.NextPost(ctx, "alice"); err != nil {
		t.Fatal(err)
	}
	if _, err := env.engine.NextPost(ctx, "alice"); err == nil {
		t.Fatal("expected quota denial")
	}

	for _, friend := range []string{"f1", "f2", "f3"} {
		if err := env.engine.RegisterReferral(ctx, friend, "alice"); err != nil {
			t.Fatal(err)
		}
	}
	if _, err := env.engine.NextPost(ctx, "alice"); err != nil {
		t.Fatalf("three referrals should lift the gate, got %v", err)
	}
}

func TestShuffleQuotaInactiveWithoutReferralSystem(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	env.setSettings(func(s *models.Settings) { s.ShuffleLimit = 1 })

	env.seedPost("uploader1")
	env.seedPost("uploader2")
	env.seedPost("uploader3")

	for i := 0; i < 3; i++ {
		if _, err := env.engine.NextPost(ctx, "alice"); err != nil {
			t.Fatalf("shuffle %d with referral system off: %v", i+1, err)
		}
	}
}

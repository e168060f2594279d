package engine

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/shufflegram/backend/internal/models"
	"github.com/shufflegram/backend/internal/repositories"
	"golang.org/x/time/rate"
)

// Control describes the interactive affordance attached to a delivery.
type Control string

const (
	ControlNone        Control = ""
	ControlPostActions Control = "post_actions" // like/dislike/comment/save/report/mute buttons
	ControlAnonReply   Control = "anon_reply"   // reply button for anonymous messages
)

// Delivery is one outbound notification handed to the transport.
type Delivery struct {
	Recipient string
	Text      string
	Post      *models.Post // when set, the post media is attached
	Control   Control
	Target    string // control target: post id or sender id
}

// Deliverer is the transport collaborator. Implementations must treat a
// failed delivery as final; the engine never retries.
type Deliverer interface {
	Deliver(ctx context.Context, d Delivery) error
}

// FanOut sends notifications with bounded concurrency and per-recipient
// isolation: one unreachable recipient never stalls or aborts the rest.
// Every attempt is recorded in the delivery log with its outcome.
type FanOut struct {
	deliver Deliverer
	logRepo repositories.NotificationRepository
	limiter *rate.Limiter
	sem     chan struct{}
	wg      sync.WaitGroup
}

// NewFanOut creates a pool with the given worker bound and send rate.
func NewFanOut(d Deliverer, logRepo repositories.NotificationRepository, workers int, perSecond rate.Limit) *FanOut {
	if workers < 1 {
		workers = 1
	}
	return &FanOut{
		deliver: d,
		logRepo: logRepo,
		limiter: rate.NewLimiter(perSecond, workers),
		sem:     make(chan struct{}, workers),
	}
}

// Send queues one delivery. It returns immediately; the attempt happens on a
// pool worker and its failure is swallowed (logged and recorded, never
// surfaced to the triggering user).
func (f *FanOut) Send(noteType string, actorID string, targetID string, d Delivery) {
	f.wg.Add(1)
	go func() {
		defer f.wg.Done()
		f.sem <- struct{}{}
		defer func() { <-f.sem }()

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := f.limiter.Wait(ctx); err != nil {
			f.record(noteType, actorID, targetID, d, false)
			return
		}
		err := f.deliver.Deliver(ctx, d)
		if err != nil {
			log.Printf("delivery to %s failed: %v", d.Recipient, err)
		}
		f.record(noteType, actorID, targetID, d, err == nil)
	}()
}

// Flush blocks until all queued deliveries finished. Used on shutdown and in
// tests.
func (f *FanOut) Flush() { f.wg.Wait() }

func (f *FanOut) record(noteType, actorID, targetID string, d Delivery, delivered bool) {
	if f.logRepo == nil {
		return
	}
	note := &models.Notification{
		Type:        noteType,
		ActorID:     actorID,
		RecipientID: d.Recipient,
		TargetID:    targetID,
		Message:     d.Text,
		Delivered:   delivered,
		CreatedAt:   time.Now(),
	}
	if err := f.logRepo.Record(note); err != nil {
		log.Printf("failed to record notification: %v", err)
	}
}

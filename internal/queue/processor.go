package queue

import (
	"context"
	"errors"
	"fmt"
	"hash/maphash"
	"log"
	"sync"
	"time"

	apperrors "opportunity-team/internal/errors"
	"opportunity-team/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	// MaxRetries is the maximum number of attempts for a share job.
	MaxRetries = 3
	// RetryDelay is the base delay between retries (exponential backoff).
	RetryDelay = 2 * time.Second

	keyLockStripes = 64
)

// ShareUpdater applies share changes. Implemented by repository.ShareRepository.
type ShareUpdater interface {
	Grant(ctx context.Context, opportunityID, userID primitive.ObjectID, accessLevel string) error
	Revoke(ctx context.Context, opportunityID, userID primitive.ObjectID) error
}

// MembershipFinder reports the current team membership of a user.
// Implemented by repository.TeamMemberRepository.
type MembershipFinder interface {
	FindByOpportunityAndUser(ctx context.Context, opportunityID, userID primitive.ObjectID) (*models.TeamMember, error)
}

// Processor applies share jobs from the queue.
//
// A job names an (opportunity, user) pair; its Op only records what
// triggered it. When a job runs, the share is reconciled with the
// membership at that moment, under a per-pair lock, so jobs that run late
// or out of order still leave the share matching the roster.
type Processor struct {
	queue        *MemoryQueue
	updater      ShareUpdater
	members      MembershipFinder
	workerCount  int
	retryDelay   time.Duration
	seed         maphash.Seed
	locks        [keyLockStripes]sync.Mutex
	wg           sync.WaitGroup
	shutdownOnce sync.Once
	shutdownCh   chan struct{}
}

// NewProcessor creates a new share job processor.
func NewProcessor(queue *MemoryQueue, updater ShareUpdater, members MembershipFinder, workerCount int) *Processor {
	return &Processor{
		queue:       queue,
		updater:     updater,
		members:     members,
		workerCount: workerCount,
		retryDelay:  RetryDelay,
		seed:        maphash.MakeSeed(),
		shutdownCh:  make(chan struct{}),
	}
}

// Start begins processing jobs with the configured number of workers.
func (p *Processor) Start(ctx context.Context) {
	for i := 0; i < p.workerCount; i++ {
		p.wg.Add(1)
		go p.worker(ctx, i)
	}
	log.Printf("Share processor started with %d workers", p.workerCount)
}

// Stop gracefully stops the processor, waiting for workers to finish.
// Jobs waiting for a retry are dropped.
func (p *Processor) Stop() {
	p.shutdownOnce.Do(func() {
		close(p.shutdownCh)
		p.queue.Close()
	})
	p.wg.Wait()
	log.Println("Share processor stopped")
}

func (p *Processor) worker(ctx context.Context, id int) {
	defer p.wg.Done()

	for {
		job, err := p.queue.Dequeue(ctx)
		if err != nil {
			if errors.Is(err, ErrQueueClosed) || ctx.Err() != nil {
				log.Printf("Share worker %d shutting down", id)
				return
			}
			continue
		}
		p.processJob(ctx, job)
	}
}

func (p *Processor) processJob(ctx context.Context, job ShareJob) {
	if err := p.apply(ctx, job); err != nil {
		log.Printf("Share %s failed for user %s on opportunity %s: %v",
			job.Op, job.UserID.Hex(), job.OpportunityID.Hex(), err)
		if errors.Is(err, ErrUnknownShareOp) {
			return
		}
		p.handleFailure(job)
	}
}

func (p *Processor) apply(ctx context.Context, job ShareJob) error {
	if job.Op != OpGrant && job.Op != OpRevoke {
		return fmt.Errorf("%w %q", ErrUnknownShareOp, job.Op)
	}

	mu := p.lockFor(job.OpportunityID, job.UserID)
	mu.Lock()
	defer mu.Unlock()

	member, err := p.members.FindByOpportunityAndUser(ctx, job.OpportunityID, job.UserID)
	switch {
	case errors.Is(err, apperrors.ErrTeamMemberNotFound):
		return p.updater.Revoke(ctx, job.OpportunityID, job.UserID)
	case err != nil:
		return fmt.Errorf("look up membership: %w", err)
	default:
		return p.updater.Grant(ctx, job.OpportunityID, job.UserID, member.AccessLevel)
	}
}

// lockFor returns the stripe lock guarding an (opportunity, user) pair.
func (p *Processor) lockFor(opportunityID, userID primitive.ObjectID) *sync.Mutex {
	var h maphash.Hash
	h.SetSeed(p.seed)
	_, _ = h.Write(opportunityID[:])
	_, _ = h.Write(userID[:])
	return &p.locks[h.Sum64()%keyLockStripes]
}

func (p *Processor) handleFailure(job ShareJob) {
	job.RetryCount++

	if job.RetryCount >= MaxRetries {
		log.Printf("Giving up on share %s for user %s on opportunity %s after %d attempts",
			job.Op, job.UserID.Hex(), job.OpportunityID.Hex(), job.RetryCount)
		return
	}

	delay := p.retryDelay * time.Duration(1<<uint(job.RetryCount-1))

	// Waits on shutdownCh rather than ctx so Stop can abandon pending retries.
	go func() {
		select {
		case <-p.shutdownCh:
			log.Printf("Shutdown during retry delay, dropping share %s for user %s", job.Op, job.UserID.Hex())
		case <-time.After(delay):
			if err := p.queue.Enqueue(job); err != nil {
				log.Printf("Failed to re-enqueue share %s for user %s: %v", job.Op, job.UserID.Hex(), err)
			}
		}
	}()
}

package queue

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	apperrors "opportunity-team/internal/errors"
	"opportunity-team/internal/models"
	repomocks "opportunity-team/internal/repository/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/mock/gomock"
)

func runProcessor(t *testing.T, p *Processor, wait time.Duration) {
	t.Helper()

	ctx, cancel := context.WithCancel(context.Background())
	p.Start(ctx)
	time.Sleep(wait)
	cancel()
	p.Stop()
}

func member(job ShareJob, accessLevel string) *models.TeamMember {
	return &models.TeamMember{
		OpportunityID: job.OpportunityID,
		UserID:        job.UserID,
		AccessLevel:   accessLevel,
	}
}

type shareKey struct {
	opportunityID primitive.ObjectID
	userID        primitive.ObjectID
}

// rosterState is an in-memory roster and share table. Grants fail while
// failGrants is positive.
type rosterState struct {
	mu         sync.Mutex
	members    map[shareKey]string
	shares     map[shareKey]string
	failGrants int
}

func newRosterState() *rosterState {
	return &rosterState{
		members: make(map[shareKey]string),
		shares:  make(map[shareKey]string),
	}
}

func (r *rosterState) FindByOpportunityAndUser(_ context.Context, opportunityID, userID primitive.ObjectID) (*models.TeamMember, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	level, ok := r.members[shareKey{opportunityID, userID}]
	if !ok {
		return nil, apperrors.ErrTeamMemberNotFound
	}
	return &models.TeamMember{OpportunityID: opportunityID, UserID: userID, AccessLevel: level}, nil
}

func (r *rosterState) Grant(_ context.Context, opportunityID, userID primitive.ObjectID, accessLevel string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.failGrants > 0 {
		r.failGrants--
		return assert.AnError
	}
	r.shares[shareKey{opportunityID, userID}] = accessLevel
	return nil
}

func (r *rosterState) Revoke(_ context.Context, opportunityID, userID primitive.ObjectID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.shares, shareKey{opportunityID, userID})
	return nil
}

func (r *rosterState) setMember(job ShareJob, accessLevel string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.members[shareKey{job.OpportunityID, job.UserID}] = accessLevel
}

func (r *rosterState) removeMember(job ShareJob) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.members, shareKey{job.OpportunityID, job.UserID})
}

func (r *rosterState) share(job ShareJob) (string, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	level, ok := r.shares[shareKey{job.OpportunityID, job.UserID}]
	return level, ok
}

func TestNewProcessor(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	queue := NewMemoryQueue(10)
	shares := repomocks.NewMockShareRepository(ctrl)
	members := repomocks.NewMockTeamMemberRepository(ctrl)

	processor := NewProcessor(queue, shares, members, 2)

	assert.NotNil(t, processor)
	assert.Equal(t, queue, processor.queue)
	assert.Equal(t, 2, processor.workerCount)
	assert.Equal(t, RetryDelay, processor.retryDelay)
}

func TestProcessor_StartStop(t *testing.T) {
	t.Run("stops cleanly and is idempotent", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		processor := NewProcessor(NewMemoryQueue(10), repomocks.NewMockShareRepository(ctrl), repomocks.NewMockTeamMemberRepository(ctrl), 3)
		processor.Start(context.Background())

		done := make(chan struct{})
		go func() {
			processor.Stop()
			processor.Stop()
			close(done)
		}()

		select {
		case <-done:
		case <-time.After(2 * time.Second):
			t.Fatal("Stop() timed out")
		}
	})

	t.Run("workers exit when the context deadline passes", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		processor := NewProcessor(NewMemoryQueue(10), repomocks.NewMockShareRepository(ctrl), repomocks.NewMockTeamMemberRepository(ctrl), 2)

		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
		defer cancel()
		processor.Start(ctx)

		done := make(chan struct{})
		go func() {
			processor.wg.Wait()
			close(done)
		}()

		select {
		case <-done:
		case <-time.After(2 * time.Second):
			t.Fatal("workers kept running after the deadline")
		}
		processor.Stop()
	})
}

func TestProcessor_ProcessJob(t *testing.T) {
	t.Run("grants the current access level of a member", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		queue := NewMemoryQueue(10)
		shares := repomocks.NewMockShareRepository(ctrl)
		members := repomocks.NewMockTeamMemberRepository(ctrl)
		processor := NewProcessor(queue, shares, members, 1)

		job := grantJob()
		members.EXPECT().
			FindByOpportunityAndUser(gomock.Any(), job.OpportunityID, job.UserID).
			Return(member(job, models.AccessRead), nil)
		shares.EXPECT().
			Grant(gomock.Any(), job.OpportunityID, job.UserID, models.AccessRead).
			Return(nil)

		_ = queue.Enqueue(job)
		runProcessor(t, processor, 100*time.Millisecond)
	})

	t.Run("revokes when the user is no longer a member", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		queue := NewMemoryQueue(10)
		shares := repomocks.NewMockShareRepository(ctrl)
		members := repomocks.NewMockTeamMemberRepository(ctrl)
		processor := NewProcessor(queue, shares, members, 1)

		job := grantJob()
		members.EXPECT().
			FindByOpportunityAndUser(gomock.Any(), job.OpportunityID, job.UserID).
			Return(nil, apperrors.ErrTeamMemberNotFound)
		shares.EXPECT().
			Revoke(gomock.Any(), job.OpportunityID, job.UserID).
			Return(nil)

		_ = queue.Enqueue(job)
		runProcessor(t, processor, 100*time.Millisecond)
	})

	t.Run("grants on a revoke job when the user was re-added", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		queue := NewMemoryQueue(10)
		shares := repomocks.NewMockShareRepository(ctrl)
		members := repomocks.NewMockTeamMemberRepository(ctrl)
		processor := NewProcessor(queue, shares, members, 1)

		job := grantJob()
		job.Op = OpRevoke
		members.EXPECT().
			FindByOpportunityAndUser(gomock.Any(), job.OpportunityID, job.UserID).
			Return(member(job, models.AccessEdit), nil)
		shares.EXPECT().
			Grant(gomock.Any(), job.OpportunityID, job.UserID, models.AccessEdit).
			Return(nil)

		_ = queue.Enqueue(job)
		runProcessor(t, processor, 100*time.Millisecond)
	})

	t.Run("retries when membership lookup fails", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		queue := NewMemoryQueue(10)
		shares := repomocks.NewMockShareRepository(ctrl)
		members := repomocks.NewMockTeamMemberRepository(ctrl)
		processor := NewProcessor(queue, shares, members, 1)
		processor.retryDelay = 10 * time.Millisecond

		job := grantJob()
		gomock.InOrder(
			members.EXPECT().FindByOpportunityAndUser(gomock.Any(), job.OpportunityID, job.UserID).Return(nil, assert.AnError),
			members.EXPECT().FindByOpportunityAndUser(gomock.Any(), job.OpportunityID, job.UserID).Return(member(job, models.AccessEdit), nil),
		)
		shares.EXPECT().Grant(gomock.Any(), job.OpportunityID, job.UserID, models.AccessEdit).Return(nil)

		_ = queue.Enqueue(job)
		runProcessor(t, processor, 200*time.Millisecond)
	})

	t.Run("retries failed grant until it succeeds", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		queue := NewMemoryQueue(10)
		shares := repomocks.NewMockShareRepository(ctrl)
		members := repomocks.NewMockTeamMemberRepository(ctrl)
		processor := NewProcessor(queue, shares, members, 1)
		processor.retryDelay = 10 * time.Millisecond

		job := grantJob()
		members.EXPECT().
			FindByOpportunityAndUser(gomock.Any(), job.OpportunityID, job.UserID).
			Return(member(job, job.AccessLevel), nil).
			Times(2)
		gomock.InOrder(
			shares.EXPECT().Grant(gomock.Any(), job.OpportunityID, job.UserID, job.AccessLevel).Return(assert.AnError),
			shares.EXPECT().Grant(gomock.Any(), job.OpportunityID, job.UserID, job.AccessLevel).Return(nil),
		)

		_ = queue.Enqueue(job)
		runProcessor(t, processor, 200*time.Millisecond)
	})

	t.Run("gives up after max retries", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		queue := NewMemoryQueue(10)
		shares := repomocks.NewMockShareRepository(ctrl)
		members := repomocks.NewMockTeamMemberRepository(ctrl)
		processor := NewProcessor(queue, shares, members, 1)
		processor.retryDelay = 5 * time.Millisecond

		job := grantJob()
		members.EXPECT().
			FindByOpportunityAndUser(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(member(job, models.AccessEdit), nil).
			AnyTimes()

		var calls atomic.Int32
		shares.EXPECT().
			Grant(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _, _ any, _ string) error {
				calls.Add(1)
				return assert.AnError
			}).
			Times(MaxRetries)

		_ = queue.Enqueue(job)
		runProcessor(t, processor, 300*time.Millisecond)

		assert.Equal(t, int32(MaxRetries), calls.Load())
	})

	t.Run("unknown op is dropped without retry", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		queue := NewMemoryQueue(10)
		processor := NewProcessor(queue, repomocks.NewMockShareRepository(ctrl), repomocks.NewMockTeamMemberRepository(ctrl), 1)
		processor.retryDelay = time.Millisecond

		job := grantJob()
		job.Op = "sideways"
		_ = queue.Enqueue(job)

		runProcessor(t, processor, 50*time.Millisecond)
		assert.Equal(t, 0, queue.Len())
	})
}

func TestProcessor_ShareFollowsMembership(t *testing.T) {
	t.Run("retried grant after removal leaves no share", func(t *testing.T) {
		state := newRosterState()
		state.failGrants = 1

		queue := NewMemoryQueue(10)
		processor := NewProcessor(queue, state, state, 1)
		processor.retryDelay = 50 * time.Millisecond

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		processor.Start(ctx)

		add := grantJob()
		state.setMember(add, models.AccessEdit)
		require.NoError(t, queue.Enqueue(add))

		// The first grant fails and is scheduled for retry; the member is
		// removed before the retry runs.
		time.Sleep(10 * time.Millisecond)
		remove := add
		remove.Op = OpRevoke
		state.removeMember(remove)
		require.NoError(t, queue.Enqueue(remove))

		time.Sleep(200 * time.Millisecond)
		processor.Stop()

		_, granted := state.share(add)
		assert.False(t, granted, "removed member must not hold a share")
	})

	t.Run("concurrent workers converge on the last membership change", func(t *testing.T) {
		state := newRosterState()

		queue := NewMemoryQueue(100)
		processor := NewProcessor(queue, state, state, 4)

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		processor.Start(ctx)

		job := grantJob()
		for i := 0; i < 20; i++ {
			state.setMember(job, models.AccessEdit)
			require.NoError(t, queue.Enqueue(job))

			revoke := job
			revoke.Op = OpRevoke
			state.removeMember(revoke)
			require.NoError(t, queue.Enqueue(revoke))
		}
		state.setMember(job, models.AccessRead)
		require.NoError(t, queue.Enqueue(job))

		require.Eventually(t, func() bool { return queue.Len() == 0 }, time.Second, 5*time.Millisecond)
		time.Sleep(20 * time.Millisecond)
		processor.Stop()

		level, granted := state.share(job)
		assert.True(t, granted)
		assert.Equal(t, models.AccessRead, level)
	})
}

func TestProcessor_Backoff(t *testing.T) {
	delays := []time.Duration{
		RetryDelay * time.Duration(1<<0),
		RetryDelay * time.Duration(1<<1),
	}

	assert.Equal(t, 2*time.Second, delays[0])
	assert.Equal(t, 4*time.Second, delays[1])
}

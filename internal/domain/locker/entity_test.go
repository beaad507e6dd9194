//go:build unit

package locker_test

import (
	"testing"
	"time"

	"smartlocker/internal/domain/locker"
	"smartlocker/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.LockerBuilder)
	errIs  error
}

func TestLocker(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := builder.NewLockerBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.Equal(t, "LOCKER_001", actual.ID())
		assert.Equal(t, locker.StatusAvailable, actual.Status())
		assert.Nil(t, actual.Lease())
		assert.Nil(t, actual.OccupantRef())
	})

	t.Run("id validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "empty id",
				mutate: func(b *builder.LockerBuilder) { b.ID = "" },
				errIs:  locker.ErrEmptyLockerID,
			},
			{
				name: "id at maximum length",
				mutate: func(b *builder.LockerBuilder) {
					long := make([]byte, locker.MaxLockerIDLength)
					for i := range long {
						long[i] = 'A'
					}
					b.ID = string(long)
				},
			},
			{
				name: "id above maximum length",
				mutate: func(b *builder.LockerBuilder) {
					long := make([]byte, locker.MaxLockerIDLength+1)
					for i := range long {
						long[i] = 'A'
					}
					b.ID = string(long)
				},
				errIs: locker.ErrLockerIDTooLong,
			},
		})
	})

	t.Run("status and lease consistency", func(t *testing.T) {
		now := time.Now()
		runCases(t, []testCase{
			{
				name: "leased locker with lease",
				mutate: func(b *builder.LockerBuilder) {
					b.WithLease("a1b2", now, now.Add(5*time.Minute))
				},
			},
			{
				name:   "leased locker without lease",
				mutate: func(b *builder.LockerBuilder) { b.Status = locker.StatusLeased },
				errIs:  locker.ErrLeaseRequired,
			},
			{
				name: "available locker with lease",
				mutate: func(b *builder.LockerBuilder) {
					b.WithLease("a1b2", now, now.Add(5*time.Minute))
					b.Status = locker.StatusAvailable
				},
				errIs: locker.ErrLeaseNotAllowed,
			},
			{
				name: "maintenance locker with lease",
				mutate: func(b *builder.LockerBuilder) {
					b.WithLease("a1b2", now, now.Add(5*time.Minute))
					b.Status = locker.StatusMaintenance
				},
				errIs: locker.ErrLeaseNotAllowed,
			},
			{
				name: "occupied locker with leftover lease is tolerated",
				mutate: func(b *builder.LockerBuilder) {
					b.WithLease("a1b2", now, now.Add(5*time.Minute))
					b.Status = locker.StatusOccupied
				},
			},
			{
				name:   "unknown status",
				mutate: func(b *builder.LockerBuilder) { b.Status = locker.Status("BROKEN") },
				errIs:  locker.ErrInvalidStatus,
			},
		})
	})

	t.Run("occupant consistency", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name: "occupied locker with occupant",
				mutate: func(b *builder.LockerBuilder) {
					b.WithOccupant(uuid.New())
				},
			},
			{
				name: "available locker with occupant",
				mutate: func(b *builder.LockerBuilder) {
					ref := uuid.New()
					b.OccupantRef = &ref
				},
				errIs: locker.ErrOccupantNotAllowed,
			},
		})
	})
}

func TestLease(t *testing.T) {
	issued := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	expires := issued.Add(5 * time.Minute)
	lease := locker.NewLease("token-a", issued, expires)

	t.Run("expiry boundary", func(t *testing.T) {
		assert.False(t, lease.ExpiredAt(expires.Add(-time.Second)))
		assert.True(t, lease.ExpiredAt(expires), "deadline itself counts as expired")
		assert.True(t, lease.ExpiredAt(expires.Add(time.Second)))
	})

	t.Run("token match", func(t *testing.T) {
		assert.True(t, lease.Matches("token-a"))
		assert.False(t, lease.Matches("token-b"))
		assert.False(t, lease.Matches(""))
	})
}

func TestLockerLeaseExpired(t *testing.T) {
	now := time.Now()

	leased, err := builder.NewLockerBuilder().
		WithLease("tok", now.Add(-10*time.Minute), now.Add(-time.Minute)).
		BuildDomain()
	require.NoError(t, err)
	assert.True(t, leased.LeaseExpired(now))
	assert.False(t, leased.HasActiveLease(now))

	active, err := builder.NewLockerBuilder().
		WithLease("tok", now, now.Add(time.Minute)).
		BuildDomain()
	require.NoError(t, err)
	assert.False(t, active.LeaseExpired(now))
	assert.True(t, active.HasActiveLease(now))

	available, err := builder.NewLockerBuilder().BuildDomain()
	require.NoError(t, err)
	assert.False(t, available.LeaseExpired(now))
	assert.False(t, available.HasActiveLease(now))
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := builder.NewLockerBuilder()
			tc.mutate(b)
			actual, err := b.BuildDomain()

			if tc.errIs != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tc.errIs)
				assert.Nil(t, actual)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, actual)
		})
	}
}

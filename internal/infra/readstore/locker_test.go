//go:build unit

package readstore_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"smartlocker/internal/domain/locker"
	"smartlocker/internal/infra"
	"smartlocker/internal/infra/query"
	"smartlocker/internal/infra/readstore"
	"smartlocker/internal/usecase/shared"
	"smartlocker/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubQueries feeds canned rows through the read-store without a database.
type stubQueries struct {
	row  query.Lockers
	rows []query.Lockers
	err  error
}

func (s *stubQueries) GetLockerByID(context.Context, query.DBTX, string) (query.Lockers, error) {
	return s.row, s.err
}

func (s *stubQueries) ListLockers(context.Context, query.DBTX) ([]query.Lockers, error) {
	return s.rows, s.err
}

func newReadStore(stub *stubQueries) *readstore.LockerReadStore {
	return readstore.NewLockerReadStore(stub, nil)
}

func TestFindByID(t *testing.T) {
	t.Run("maps the full row", func(t *testing.T) {
		b := builder.NewLockerBuilder().WithLease("tok", time.Now(), time.Now().Add(5*time.Minute))
		store := newReadStore(&stubQueries{row: b.BuildInfra()})

		snap, err := store.FindByID(context.Background(), b.ID)
		require.NoError(t, err)

		if diff := cmp.Diff(b.BuildSnapshot(), snap); diff != "" {
			t.Errorf("snapshot mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("no rows maps to not found", func(t *testing.T) {
		store := newReadStore(&stubQueries{err: pgx.ErrNoRows})

		_, err := store.FindByID(context.Background(), "LOCKER_404")
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})

	t.Run("other failures map to db failure", func(t *testing.T) {
		store := newReadStore(&stubQueries{err: errors.New("connection refused")})

		_, err := store.FindByID(context.Background(), "LOCKER_001")
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})

	t.Run("leased row without lease columns is rejected", func(t *testing.T) {
		row := builder.NewLockerBuilder().BuildInfra()
		row.Status = string(locker.StatusLeased)

		store := newReadStore(&stubQueries{row: row})

		_, err := store.FindByID(context.Background(), row.LockerID)
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
		assert.ErrorIs(t, err, locker.ErrLeaseRequired)
	})

	t.Run("unknown status string is rejected", func(t *testing.T) {
		row := builder.NewLockerBuilder().BuildInfra()
		row.Status = "DISASSEMBLED"

		store := newReadStore(&stubQueries{row: row})

		_, err := store.FindByID(context.Background(), row.LockerID)
		require.Error(t, err)
		assert.ErrorIs(t, err, locker.ErrInvalidStatus)
	})

	t.Run("occupant on a non-occupied row is rejected", func(t *testing.T) {
		row := builder.NewLockerBuilder().BuildInfra()
		ref := uuid.New()
		row.OccupantRef = &ref

		store := newReadStore(&stubQueries{row: row})

		_, err := store.FindByID(context.Background(), row.LockerID)
		require.Error(t, err)
		assert.ErrorIs(t, err, locker.ErrOccupantNotAllowed)
	})
}

func TestFindAll(t *testing.T) {
	first := builder.NewLockerBuilder()
	second := builder.NewLockerBuilder()
	second.ID = "LOCKER_002"
	second.Status = locker.StatusMaintenance

	store := newReadStore(&stubQueries{rows: []query.Lockers{first.BuildInfra(), second.BuildInfra()}})

	snaps, err := store.FindAll(context.Background())
	require.NoError(t, err)

	want := []*shared.LockerSnapshot{first.BuildSnapshot(), second.BuildSnapshot()}
	if diff := cmp.Diff(want, snaps); diff != "" {
		t.Errorf("snapshot mismatch (-want +got):\n%s", diff)
	}
}

//go:build e2e

package kvstore_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"tourease/internal/domain/booking"
	"tourease/internal/infra/kvstore"
	"tourease/internal/infra/repository"
	"tourease/internal/pkg/config"

	"github.com/docker/go-connections/nat"
	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

const (
	testUser     = "test"
	testPassword = "testpass"
	testDBName   = "tourease_test"
)

func startPostgres(t *testing.T) config.DBConfig {
	t.Helper()
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "postgres:17",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     testUser,
			"POSTGRES_PASSWORD": testPassword,
			"POSTGRES_DB":       testDBName,
		},
		Tmpfs: map[string]string{
			"/var/lib/postgresql/data": "rw,size=256m",
		},
		WaitingFor: wait.ForSQL("5432/tcp", "pgx", func(host string, port nat.Port) string {
			return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
				testUser, testPassword, host, port.Port(), testDBName)
		}).WithStartupTimeout(60 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err, "failed to start postgres container")
	t.Cleanup(func() {
		termCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = container.Terminate(termCtx)
	})

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "5432/tcp")
	require.NoError(t, err)

	return config.DBConfig{
		Host:     host,
		Port:     port.Port(),
		User:     testUser,
		Password: testPassword,
		DBName:   testDBName,
		SSLMode:  "disable",
	}
}

func confirmedBookingFixture(t *testing.T, userID *uuid.UUID) *booking.Booking {
	t.Helper()
	stay := booking.ReconstructStayRange(
		time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 3, 13, 0, 0, 0, 0, time.UTC),
	)
	guest := booking.ReconstructGuestDetails("Asha Rao", "P1234567", "data:image/png;base64,x")
	payment := booking.PaymentRecord{Method: booking.MethodCash}
	return booking.ReconstructBooking(
		uuid.New(), userID, uuid.New(), "Lakeside Cottage",
		guest, stay, 3, booking.NewMoney(22500), payment,
		booking.StatusConfirmed, time.Now(),
	)
}

func TestPostgresStore(t *testing.T) {
	ctx := context.Background()
	dbCfg := startPostgres(t)

	store, cleanup, err := kvstore.Connect(ctx, dbCfg)
	require.NoError(t, err)
	t.Cleanup(cleanup)

	t.Run("missing collection loads as empty", func(t *testing.T) {
		var docs []repository.AccountRecord
		require.NoError(t, store.Load(ctx, "nonexistent", &docs))
		assert.Empty(t, docs)
	})

	t.Run("save replaces the whole collection", func(t *testing.T) {
		first := []map[string]any{{"id": "a"}}
		second := []map[string]any{{"id": "b"}, {"id": "c"}}

		require.NoError(t, store.Save(ctx, "scratch", first))
		require.NoError(t, store.Save(ctx, "scratch", second))

		var loaded []map[string]any
		require.NoError(t, store.Load(ctx, "scratch", &loaded))
		require.Len(t, loaded, 2)
		assert.Equal(t, "b", loaded[0]["id"])
	})

	t.Run("booking round-trips through a repository", func(t *testing.T) {
		repo := repository.NewBookingRepository(store)
		userID := uuid.New()
		b := confirmedBookingFixture(t, &userID)

		require.NoError(t, repo.Create(ctx, b))

		rec, err := repo.FindByID(ctx, b.ID())
		require.NoError(t, err)
		assert.Equal(t, "Asha Rao", rec.GuestName)
		assert.Equal(t, int64(22500), rec.TotalCents)
		require.NotNil(t, rec.UserID)
		assert.Equal(t, userID, *rec.UserID)
	})

	t.Run("data survives reconnect", func(t *testing.T) {
		require.NoError(t, store.Save(ctx, "durable", []string{"x", "y"}))

		reopened, reopenCleanup, err := kvstore.Connect(ctx, dbCfg)
		require.NoError(t, err)
		t.Cleanup(reopenCleanup)

		var loaded []string
		require.NoError(t, reopened.Load(ctx, "durable", &loaded))
		assert.Equal(t, []string{"x", "y"}, loaded)
	})
}

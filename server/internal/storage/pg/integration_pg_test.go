package pg

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"sync/atomic"
	"testing"
	"time"

	"github.com/shareit-dev/shareit/shared/config"
	"github.com/shareit-dev/shareit/shared/domain"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

var storage *Storage

func TestMain(m *testing.M) {
	ctx := context.Background()
	var container *postgres.PostgresContainer
	storage, container = mustSetup(ctx)

	exitCode := m.Run()
	teardown(ctx, storage, container)
	os.Exit(exitCode)
}

func mustSetup(ctx context.Context) (*Storage, *postgres.PostgresContainer) {
	dbName := "shareit"
	dbUser := "user"
	dbPassword := "password"
	container, err := postgres.Run(ctx,
		"postgres:15.3-alpine",
		postgres.WithInitScripts(filepath.Join("migrations", "init.sql")),
		postgres.WithDatabase(dbName),
		postgres.WithUsername(dbUser),
		postgres.WithPassword(dbPassword),
		testcontainers.WithWaitStrategy(
			// First, we wait for the container to log readiness twice.
			// This is because it will restart itself after the first startup.
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	if err != nil {
		log.Fatalf("failed to start container: %s", err)
	}
	containerPort, err := container.MappedPort(ctx, "5432/tcp")
	if err != nil {
		log.Fatalf("failed to obtain container port: %s", err)
	}
	port, err := strconv.Atoi(containerPort.Port())
	if err != nil {
		log.Fatalf("failed to obtain int container port: %s", err)
	}

	host, err := container.Host(ctx)
	if err != nil {
		log.Fatalf("failed to obtain container host: %s", err)
	}

	storage, err := New(ctx, config.Pg{Host: host, Port: port, User: dbUser, Password: dbPassword, Dbname: dbName})
	if err != nil {
		log.Fatalf("failed to connect to postgres container: %s", err)
	}
	return storage, container
}

func teardown(ctx context.Context, storage *Storage, container *postgres.PostgresContainer) {
	if err := storage.Cleanup(); err != nil {
		log.Printf("failed to close storage connection: %s", err)
	}
	if err := container.Terminate(ctx); err != nil {
		log.Printf("failed to terminate container: %s", err)
	}
}

// =========================================================================
// Fixtures
// =========================================================================

var seq atomic.Int64

func createTestUser(t *testing.T) domain.User {
	t.Helper()
	n := seq.Add(1)
	user, err := storage.SaveUser(context.Background(), domain.UserCreationData{
		Name:  fmt.Sprintf("user%d", n),
		Email: fmt.Sprintf("user%d@example.com", n),
	})
	require.NoError(t, err)
	return user
}

func createTestItem(t *testing.T, ownerId domain.UserId, name string, available bool) domain.Item {
	t.Helper()
	item, err := storage.SaveItem(context.Background(), domain.ItemCreationData{
		Name:        name,
		Description: "description of " + name,
		Available:   available,
		OwnerId:     ownerId,
	})
	require.NoError(t, err)
	return item
}

func createTestBooking(t *testing.T, itemId domain.ItemId, bookerId domain.UserId, start, end time.Time, status domain.BookingStatus) domain.Booking {
	t.Helper()
	ctx := context.Background()
	booking, err := storage.SaveBooking(ctx, domain.BookingCreationData{
		ItemId:   itemId,
		BookerId: bookerId,
		Start:    domain.NewDateTime(start),
		End:      domain.NewDateTime(end),
	}, func(domain.Item) error { return nil })
	require.NoError(t, err)
	if status != domain.StatusWaiting {
		booking, err = storage.UpdateBookingStatus(ctx, booking.Id, status, func(domain.Booking) error { return nil })
		require.NoError(t, err)
	}
	return booking
}

func TestMigrateIsIdempotent(t *testing.T) {
	ctx := context.Background()
	require.NoError(t, storage.Migrate(ctx))
	require.NoError(t, storage.Ping(ctx))
}

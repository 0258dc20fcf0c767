package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/khoahotran/portfolio-api/internal/domain/record"
	"github.com/khoahotran/portfolio-api/pkg/logger"
)

type RecordClientIntegrationTestSuite struct {
	suite.Suite
	dbPool      *pgxpool.Pool
	pgContainer *postgres.PostgresContainer
	client      record.Client
}

func (s *RecordClientIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	pgContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("portfolio_test"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).WithStartupTimeout(1*time.Minute),
		),
	)
	if err != nil {
		s.T().Fatalf("Failed to start postgres container: %s", err)
	}
	s.pgContainer = pgContainer

	dsn, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		s.T().Fatalf("Failed to get connection string: %s", err)
	}

	m, err := migrate.New("file://../../migrations", dsn)
	if err != nil {
		s.T().Fatalf("Failed to create migrate instance: %s", err)
	}
	if err := m.Up(); err != nil {
		s.T().Fatalf("Failed to run migrations: %s", err)
	}

	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		s.T().Fatalf("Failed to create pgxpool: %s", err)
	}
	s.dbPool = pool
	s.client = NewPostgresRecordClient(pool, logger.NewNopLogger())
}

func (s *RecordClientIntegrationTestSuite) TearDownSuite() {
	if s.dbPool != nil {
		s.dbPool.Close()
	}
	if s.pgContainer != nil {
		if err := s.pgContainer.Terminate(context.Background()); err != nil {
			s.T().Fatalf("Failed to terminate postgres container: %s", err)
		}
	}
}

func (s *RecordClientIntegrationTestSuite) SetupTest() {
	_, err := s.dbPool.Exec(context.Background(), `TRUNCATE projects, certificates`)
	s.Require().NoError(err)
}

func TestRecordClientIntegration(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode.")
	}
	suite.Run(t, new(RecordClientIntegrationTestSuite))
}

func (s *RecordClientIntegrationTestSuite) Test_Insert_Select_Update_Delete() {
	ctx := context.Background()

	inserted, err := s.client.Insert(ctx, "projects", record.Row{
		"title":        "Portfolio",
		"description":  "Site",
		"image":        "/p.png",
		"category":     "web",
		"profile_id":   "owner-1",
		"tags":         []string{"go", "sql"},
		"technologies": map[string]any{"backend": []string{"go"}},
		"status":       "completed",
	})
	s.Require().NoError(err)
	s.Require().Len(inserted, 1)

	id := inserted[0].ID()
	s.Len(id, 36, "uuid ids are rendered as canonical strings")
	s.NotNil(inserted[0][record.ColumnCreatedAt])
	s.Equal(false, inserted[0]["featured"])

	rows, err := s.client.Select(ctx, "projects", record.Where("profile_id", "owner-1"))
	s.Require().NoError(err)
	s.Require().Len(rows, 1)
	s.Equal([]any{"go", "sql"}, rows[0]["tags"])
	s.Equal(map[string]any{"backend": []any{"go"}}, rows[0]["technologies"])

	updated, err := s.client.Update(ctx, "projects", id, record.Row{"featured": true})
	s.Require().NoError(err)
	s.Require().Len(updated, 1)
	s.Equal(true, updated[0]["featured"])
	s.Equal("Portfolio", updated[0]["title"])

	unchanged, err := s.client.Update(ctx, "projects", id, record.Row{})
	s.Require().NoError(err)
	s.Require().Len(unchanged, 1)

	deleted, err := s.client.Delete(ctx, "projects", id)
	s.Require().NoError(err)
	s.Len(deleted, 1)

	deleted, err = s.client.Delete(ctx, "projects", id)
	s.Require().NoError(err)
	s.Empty(deleted)
}

func (s *RecordClientIntegrationTestSuite) Test_NonUUIDIdentifiers_MatchNothing() {
	ctx := context.Background()

	deleted, err := s.client.Delete(ctx, "projects", "not-a-uuid")
	s.Require().NoError(err)
	s.Empty(deleted)

	updated, err := s.client.Update(ctx, "certificates", "not-a-uuid", record.Row{"title": "x"})
	s.Require().NoError(err)
	s.Empty(updated)
}

func (s *RecordClientIntegrationTestSuite) Test_Select_First() {
	ctx := context.Background()
	for _, slug := range []string{"a", "b"} {
		_, err := s.client.Insert(ctx, "certificates", record.Row{
			"slug": slug, "title": "T", "issuer": "I", "certificate_date": "2024",
			"image": "/c.png", "description": "D", "credential_url": "https://c",
		})
		s.Require().NoError(err)
	}

	rows, err := s.client.Select(ctx, "certificates", record.All().First())
	s.Require().NoError(err)
	s.Len(rows, 1)

	rows, err = s.client.Select(ctx, "certificates", record.Where("slug", "b"))
	s.Require().NoError(err)
	s.Require().Len(rows, 1)
	s.Equal("https://c", rows[0]["credential_url"])
}

package postgres

import (
	"context"
	"database/sql"
	"path/filepath"
	"strconv"
	"testing"
	"time"

	"crud-tutorials/config"
	"crud-tutorials/internal/entities"

	_ "github.com/lib/pq"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const testDBName = "crud_tutorials_test"

func TestRepositoryIntegration(t *testing.T) {
	ctx := context.Background()
	repo := startRepo(t)

	desc := "two litres"
	todo, err := repo.CreateTodo(ctx, entities.Todo{Title: "Buy milk", Description: &desc})
	require.NoError(t, err)
	require.NotZero(t, todo.ID)

	done, err := repo.MarkTodoDone(ctx, todo.ID)
	require.NoError(t, err)
	require.True(t, done.Done)
	require.Equal(t, desc, *done.Description)

	todos, err := repo.ListTodos(ctx)
	require.NoError(t, err)
	require.Len(t, todos, 1)

	require.NoError(t, repo.DeleteTodo(ctx, todo.ID))
	require.ErrorIs(t, repo.DeleteTodo(ctx, todo.ID), entities.ErrTodoNotFound)
	_, err = repo.GetTodo(ctx, todo.ID)
	require.ErrorIs(t, err, entities.ErrTodoNotFound)

	age := 40
	person, err := repo.CreatePerson(ctx, entities.Person{Name: "Ann", Age: &age, Job: "Engineer"})
	require.NoError(t, err)
	person.Age = nil
	updated, err := repo.UpdatePerson(ctx, *person)
	require.NoError(t, err)
	require.Nil(t, updated.Age)
	_, err = repo.UpdatePerson(ctx, entities.Person{ID: 999, Name: "x", Job: "y"})
	require.ErrorIs(t, err, entities.ErrPersonNotFound)
	require.NoError(t, repo.DeletePerson(ctx, person.ID))
}

func TestContactUniqueEmailIntegration(t *testing.T) {
	ctx := context.Background()
	repo := startRepo(t)

	ann, err := repo.CreateContact(ctx, entities.Contact{FirstName: "Ann", LastName: "Lee", Email: "ann@example.com"})
	require.NoError(t, err)

	_, err = repo.CreateContact(ctx, entities.Contact{FirstName: "A", LastName: "L", Email: "ann@example.com"})
	require.ErrorIs(t, err, entities.ErrContactExists)

	bob, err := repo.CreateContact(ctx, entities.Contact{FirstName: "Bob", LastName: "Ray", Email: "bob@example.com"})
	require.NoError(t, err)

	bob.Email = ann.Email
	_, err = repo.UpdateContact(ctx, *bob)
	require.ErrorIs(t, err, entities.ErrContactExists)

	_, err = repo.UpdateContact(ctx, entities.Contact{ID: 999, FirstName: "x", LastName: "y", Email: "z@example.com"})
	require.ErrorIs(t, err, entities.ErrContactNotFound)

	list, err := repo.ListContacts(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
}

func TestUserIntegration(t *testing.T) {
	ctx := context.Background()
	repo := startRepo(t)

	u, err := repo.CreateUser(ctx, entities.User{Username: "sam", PasswordHash: "hash"})
	require.NoError(t, err)

	byName, err := repo.GetUserByUsername(ctx, "sam")
	require.NoError(t, err)
	require.Equal(t, u.ID, byName.ID)
	require.Nil(t, byName.Role)

	_, err = repo.CreateUser(ctx, entities.User{Username: "sam", PasswordHash: "x"})
	require.ErrorIs(t, err, entities.ErrUserExists)

	_, err = repo.GetUserByID(ctx, 999)
	require.ErrorIs(t, err, entities.ErrUserNotFound)
}

func startRepo(t *testing.T) *Postgres {
	t.Helper()
	if testing.Short() {
		t.Skip("postgres integration test needs docker")
	}

	ctx := context.Background()
	cfg, cleanup := setupPostgres(t)
	t.Cleanup(cleanup)

	repo := New(ctx, testLogger(t), cfg)
	require.NoError(t, repo.OnStart(ctx))
	t.Cleanup(func() { _ = repo.OnStop(ctx) })
	return repo
}

func setupPostgres(t *testing.T) (*config.Config, func()) {
	t.Helper()

	pool, err := dockertest.NewPool("")
	require.NoError(t, err)

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "16-alpine",
		Env: []string{
			"POSTGRES_PASSWORD=postgres",
			"POSTGRES_USER=postgres",
			"POSTGRES_DB=" + testDBName,
		},
	}, func(hc *docker.HostConfig) {
		hc.AutoRemove = true
	})
	require.NoError(t, err)

	hostPort := resource.GetPort("5432/tcp")
	port, err := strconv.Atoi(hostPort)
	require.NoError(t, err)

	migrationsDir, err := filepath.Abs(filepath.Join("..", "..", "..", "db", "migrations"))
	require.NoError(t, err)
	require.DirExists(t, migrationsDir)

	cfg := &config.Config{
		App:      config.AppConfig{Name: config.AppContacts},
		Server:   config.ServerConfig{Host: "127.0.0.1", Port: 5001, ShutdownTimeout: 5 * time.Second},
		HTTP:     config.HTTPConfig{RequestTimeout: 5 * time.Second},
		Database: config.DatabaseConfig{Driver: config.DriverPgx},
		Postgres: config.PostgresConfig{
			Host:           "localhost",
			Port:           port,
			User:           "postgres",
			Password:       "postgres",
			DBName:         testDBName,
			SSLMode:        "disable",
			MigrationsDir:  migrationsDir,
			QueryTimeout:   10 * time.Second,
			MigrateTimeout: 20 * time.Second,
			MaxConns:       4,
			MinConns:       1,
		},
	}

	require.NoError(t, pool.Retry(func() error {
		db, err := sql.Open("postgres", cfg.Postgres.DSN())
		if err != nil {
			return err
		}
		defer func() { _ = db.Close() }()
		return db.Ping()
	}))

	cleanup := func() {
		_ = pool.Purge(resource)
	}

	return cfg, cleanup
}

func testLogger(t *testing.T) *zap.SugaredLogger {
	t.Helper()

	l, _ := zap.NewDevelopment()
	t.Cleanup(func() { _ = l.Sync() })
	return l.Sugar()
}

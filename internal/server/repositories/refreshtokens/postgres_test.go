package refreshtokens

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/gophauth/internal/common"
	"github.com/dmitrijs2005/gophauth/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var cols = []string{"id", "jti", "principal_id", "client_id", "token_hash", "created_at", "last_used_at",
	"expires_at", "revoked", "replaced_by_jti", "ip_address", "user_agent"}

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	t.Cleanup(func() {
		_ = db.Close()
	})
	return NewPostgresRepository(db), mock, db
}

func strPtr(s string) *string { return &s }

func sampleRow(now time.Time) []driver.Value {
	return []driver.Value{"id-1", "jti-1", "u1", "web", "hash-1", now, nil, now.Add(time.Hour), false, nil, "10.0.0.1", nil}
}

func TestCreate_Success(t *testing.T) {
	repo, mock, _ := newRepoWithMock(t)
	now := time.Now()

	q := `(?s)^\s*INSERT\s+INTO\s+refresh_tokens\s*\(id,.*user_agent\)\s*VALUES\s*\(\$1,.*\$12\)\s*$`

	mock.ExpectExec(q).
		WithArgs("id-1", "jti-1", "u1", "web", "hash-1", now, nil, now.Add(time.Hour), false, nil, "10.0.0.1", nil).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Create(context.Background(), &models.RefreshToken{
		ID: "id-1", JTI: "jti-1", PrincipalID: "u1", ClientID: strPtr("web"), TokenHash: "hash-1",
		CreatedAt: now, ExpiresAt: now.Add(time.Hour), IPAddress: strPtr("10.0.0.1"),
	})
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreate_DBError(t *testing.T) {
	repo, mock, _ := newRepoWithMock(t)

	mock.ExpectExec(`(?s)INSERT\s+INTO\s+refresh_tokens`).
		WillReturnError(errors.New("db down"))

	err := repo.Create(context.Background(), &models.RefreshToken{ID: "x"})
	if err == nil || !regexp.MustCompile(`error performing sql request: .*db down`).MatchString(err.Error()) {
		t.Fatalf("expected wrapped db error, got %v", err)
	}
}

func TestFindByHash_Found(t *testing.T) {
	repo, mock, _ := newRepoWithMock(t)
	now := time.Now()

	q := `(?s)^\s*SELECT\s+id,\s*jti,.*FROM\s+refresh_tokens\s+WHERE\s+token_hash\s*=\s*\$1\s*$`
	mock.ExpectQuery(q).
		WithArgs("hash-1").
		WillReturnRows(sqlmock.NewRows(cols).AddRow(sampleRow(now)...))

	got, err := repo.FindByHash(context.Background(), "hash-1")
	require.NoError(t, err)
	assert.Equal(t, "id-1", got.ID)
	assert.Equal(t, "jti-1", got.JTI)
	assert.Equal(t, "u1", got.PrincipalID)
	require.NotNil(t, got.ClientID)
	assert.Equal(t, "web", *got.ClientID)
	assert.Nil(t, got.LastUsedAt)
	assert.Nil(t, got.ReplacedByJTI)
	assert.Nil(t, got.UserAgent)
	assert.True(t, got.ExpiresAt.Equal(now.Add(time.Hour)))
	assert.False(t, got.Revoked)
}

func TestFindByHashForUpdate_LocksRow(t *testing.T) {
	repo, mock, _ := newRepoWithMock(t)

	q := `(?s)WHERE\s+token_hash\s*=\s*\$1\s+FOR\s+UPDATE\s*$`
	mock.ExpectQuery(q).
		WithArgs("hash-1").
		WillReturnRows(sqlmock.NewRows(cols).AddRow(sampleRow(time.Now())...))

	_, err := repo.FindByHashForUpdate(context.Background(), "hash-1")
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestFind_NotFoundAndDBError(t *testing.T) {
	repo, mock, _ := newRepoWithMock(t)

	mock.ExpectQuery(`(?s)WHERE\s+jti\s*=\s*\$1`).
		WithArgs("missing").
		WillReturnError(sql.ErrNoRows)
	_, err := repo.FindByJTI(context.Background(), "missing")
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("want common.ErrorNotFound, got %v", err)
	}

	mock.ExpectQuery(`(?s)WHERE\s+token_hash\s*=\s*\$1`).
		WithArgs("h").
		WillReturnError(errors.New("db err"))
	_, err = repo.FindByHash(context.Background(), "h")
	if err == nil || !regexp.MustCompile(`db error: .*db err`).MatchString(err.Error()) {
		t.Fatalf("expected wrapped db error, got %v", err)
	}
}

func TestMarkRotated(t *testing.T) {
	q := `(?s)^\s*UPDATE\s+refresh_tokens\s+SET\s+revoked\s*=\s*TRUE,\s*replaced_by_jti\s*=\s*\$2,\s*last_used_at\s*=\s*\$3\s+WHERE\s+id\s*=\s*\$1\s+AND\s+revoked\s*=\s*FALSE\s*$`
	now := time.Now()

	t.Run("success", func(t *testing.T) {
		repo, mock, _ := newRepoWithMock(t)
		mock.ExpectExec(q).WithArgs("id-1", "jti-2", now).WillReturnResult(sqlmock.NewResult(0, 1))
		require.NoError(t, repo.MarkRotated(context.Background(), "id-1", "jti-2", now))
	})

	t.Run("lost race", func(t *testing.T) {
		repo, mock, _ := newRepoWithMock(t)
		mock.ExpectExec(q).WithArgs("id-1", "jti-2", now).WillReturnResult(sqlmock.NewResult(0, 0))
		require.ErrorIs(t, repo.MarkRotated(context.Background(), "id-1", "jti-2", now), common.ErrConflict)
	})

	t.Run("db error", func(t *testing.T) {
		repo, mock, _ := newRepoWithMock(t)
		mock.ExpectExec(q).WillReturnError(errors.New("boom"))
		require.ErrorContains(t, repo.MarkRotated(context.Background(), "id-1", "jti-2", now), "db error: boom")
	})
}

func TestRevokeByJTI(t *testing.T) {
	q := `(?s)^\s*UPDATE\s+refresh_tokens\s+SET\s+revoked\s*=\s*TRUE\s+WHERE\s+jti\s*=\s*\$1\s*$`

	repo, mock, _ := newRepoWithMock(t)
	mock.ExpectExec(q).WithArgs("jti-1").WillReturnResult(sqlmock.NewResult(0, 1))
	require.NoError(t, repo.RevokeByJTI(context.Background(), "jti-1"))

	mock.ExpectExec(q).WithArgs("jti-x").WillReturnResult(sqlmock.NewResult(0, 0))
	require.ErrorIs(t, repo.RevokeByJTI(context.Background(), "jti-x"), common.ErrorNotFound)

	mock.ExpectExec(q).WithArgs("jti-1").WillReturnResult(sqlmock.NewErrorResult(errors.New("no count")))
	require.ErrorContains(t, repo.RevokeByJTI(context.Background(), "jti-1"), "no count")
}

func TestRevokeAllForPrincipal(t *testing.T) {
	q := `(?s)^\s*UPDATE\s+refresh_tokens\s+SET\s+revoked\s*=\s*TRUE\s+WHERE\s+principal_id\s*=\s*\$1\s+AND\s+revoked\s*=\s*FALSE\s*$`

	repo, mock, _ := newRepoWithMock(t)
	mock.ExpectExec(q).WithArgs("u1").WillReturnResult(sqlmock.NewResult(0, 3))
	n, err := repo.RevokeAllForPrincipal(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)

	mock.ExpectExec(q).WithArgs("u2").WillReturnResult(sqlmock.NewResult(0, 0))
	n, err = repo.RevokeAllForPrincipal(context.Background(), "u2")
	require.NoError(t, err, "nothing to revoke is not an error")
	assert.Zero(t, n)

	mock.ExpectExec(q).WithArgs("u3").WillReturnError(errors.New("down"))
	_, err = repo.RevokeAllForPrincipal(context.Background(), "u3")
	require.ErrorContains(t, err, "db error: down")
}

func TestListActiveForPrincipal(t *testing.T) {
	repo, mock, _ := newRepoWithMock(t)
	now := time.Now()

	q := `(?s)WHERE\s+principal_id\s*=\s*\$1\s+AND\s+revoked\s*=\s*FALSE\s+AND\s+expires_at\s*>\s*\$2\s+ORDER\s+BY\s+created_at\s+DESC`
	second := sampleRow(now)
	second[0], second[1] = "id-2", "jti-2"
	mock.ExpectQuery(q).
		WithArgs("u1", now).
		WillReturnRows(sqlmock.NewRows(cols).AddRow(sampleRow(now)...).AddRow(second...))

	got, err := repo.ListActiveForPrincipal(context.Background(), "u1", now)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "jti-2", got[1].JTI)
}

func TestListActiveForPrincipal_RowError(t *testing.T) {
	repo, mock, _ := newRepoWithMock(t)
	now := time.Now()

	mock.ExpectQuery(`(?s)FROM\s+refresh_tokens`).
		WillReturnRows(sqlmock.NewRows(cols).AddRow(sampleRow(now)...).RowError(0, errors.New("broken row")))

	_, err := repo.ListActiveForPrincipal(context.Background(), "u1", now)
	require.ErrorContains(t, err, "broken row")
}

func TestDeleteSweepable(t *testing.T) {
	repo, mock, _ := newRepoWithMock(t)
	now := time.Now()
	cutoff := now.Add(-24 * time.Hour)

	q := `(?s)^\s*DELETE\s+FROM\s+refresh_tokens\s+WHERE\s+expires_at\s*<=\s*\$1\s+OR\s+\(revoked\s*=\s*TRUE\s+AND\s+COALESCE\(last_used_at,\s*created_at\)\s*<=\s*\$2\)\s+RETURNING\s+id,`
	mock.ExpectQuery(q).
		WithArgs(now, cutoff).
		WillReturnRows(sqlmock.NewRows(cols).AddRow(sampleRow(now)...))

	got, err := repo.DeleteSweepable(context.Background(), now, cutoff)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "hash-1", got[0].TokenHash)

	mock.ExpectQuery(q).WillReturnError(errors.New("locked"))
	_, err = repo.DeleteSweepable(context.Background(), now, cutoff)
	require.ErrorContains(t, err, "db error: locked")
}

package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"miniblog/internal/models"
)

// newMockUserRepo opens GORM over a sqlmock connection; expectations use
// the default regexp matcher because GORM builds the SQL itself.
func newMockUserRepo(t *testing.T) (UserRepository, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	orm, err := gorm.Open(postgres.New(postgres.Config{Conn: db}), &gorm.Config{
		Logger:                 gormlogger.Default.LogMode(gormlogger.Silent),
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	return NewUserRepository(orm), mock, func() { db.Close() }
}

func userRows(users ...models.User) *sqlmock.Rows {
	rows := sqlmock.NewRows([]string{"id", "username", "email", "password_hash", "created_at", "updated_at"})
	for _, u := range users {
		rows.AddRow(u.ID, u.Username, u.Email, u.PasswordHash, u.CreatedAt, u.UpdatedAt)
	}
	return rows
}

func mustHash(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

func TestUserRepository_CreateUser(t *testing.T) {
	repo, mock, closeDB := newMockUserRepo(t)
	defer closeDB()

	ctx := context.Background()

	t.Run("Хранится только хеш пароля", func(t *testing.T) {
		user := &models.User{Username: "alice", Email: "a@x.com"}

		mock.ExpectQuery(`INSERT INTO "users"`).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(1)))

		err := repo.CreateUser(ctx, user, "pw1")

		require.NoError(t, err)
		assert.NotEmpty(t, user.PasswordHash)
		assert.NotEqual(t, "pw1", user.PasswordHash)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("pw1")))
	})
}

func TestUserRepository_GetUserByUsername(t *testing.T) {
	repo, mock, closeDB := newMockUserRepo(t)
	defer closeDB()

	ctx := context.Background()

	t.Run("Найденный пользователь", func(t *testing.T) {
		mock.ExpectQuery(`SELECT \* FROM "users" WHERE username = \$1`).
			WithArgs("alice", 1).
			WillReturnRows(userRows(models.User{
				ID: 1, Username: "alice", Email: "a@x.com",
				CreatedAt: time.Now(), UpdatedAt: time.Now(),
			}))

		user, err := repo.GetUserByUsername(ctx, "alice")

		require.NoError(t, err)
		assert.Equal(t, int64(1), user.ID)
	})

	t.Run("Отсутствующий пользователь дает ErrUserNotFound", func(t *testing.T) {
		mock.ExpectQuery(`SELECT \* FROM "users" WHERE username = \$1`).
			WithArgs("nobody", 1).
			WillReturnRows(userRows())

		user, err := repo.GetUserByUsername(ctx, "nobody")

		assert.Nil(t, user)
		assert.ErrorIs(t, err, ErrUserNotFound)
	})
}

func TestUserRepository_VerifyPassword(t *testing.T) {
	repo, mock, closeDB := newMockUserRepo(t)
	defer closeDB()

	ctx := context.Background()
	hash := mustHash(t, "pw1")

	t.Run("Точная пара email и пароль", func(t *testing.T) {
		mock.ExpectQuery(`SELECT \* FROM "users" WHERE email = \$1`).
			WithArgs("a@x.com", 1).
			WillReturnRows(userRows(models.User{
				ID: 1, Username: "alice", Email: "a@x.com", PasswordHash: hash,
			}))

		user, err := repo.VerifyPassword(ctx, "a@x.com", "pw1")

		require.NoError(t, err)
		assert.Equal(t, "alice", user.Username)
	})

	t.Run("Неверный пароль", func(t *testing.T) {
		mock.ExpectQuery(`SELECT \* FROM "users" WHERE email = \$1`).
			WithArgs("a@x.com", 1).
			WillReturnRows(userRows(models.User{
				ID: 1, Email: "a@x.com", PasswordHash: hash,
			}))

		user, err := repo.VerifyPassword(ctx, "a@x.com", "wrongpw")

		assert.Nil(t, user)
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	// unknown email and wrong password produce the same error
	t.Run("Неизвестный email неотличим от неверного пароля", func(t *testing.T) {
		mock.ExpectQuery(`SELECT \* FROM "users" WHERE email = \$1`).
			WithArgs("ghost@x.com", 1).
			WillReturnRows(userRows())

		user, err := repo.VerifyPassword(ctx, "ghost@x.com", "pw1")

		assert.Nil(t, user)
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})
}

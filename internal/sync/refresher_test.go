package sync_test

import (
	"context"
	"testing"
	"time"

	"taskboard/internal/repository"
	"taskboard/internal/service"
	internalsync "taskboard/internal/sync"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)

	dialector := postgres.New(postgres.Config{
		DSN:                  "sqlmock_db_0",
		DriverName:           "postgres",
		Conn:                 db,
		PreferSimpleProtocol: true,
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{})
	assert.NoError(t, err)

	return gormDB, mock
}

func newRefresher(db *gorm.DB, interval time.Duration) *internalsync.BadgeRefresher {
	feedbackRepo := repository.NewFeedbackRepository(db)
	return internalsync.NewBadgeRefresher(
		repository.NewUserRepository(db),
		service.NewFeedbackService(feedbackRepo, repository.NewTaskRepository(db)),
		service.NewCommentService(
			repository.NewCommentRepository(db),
			repository.NewCommentLikeRepository(db),
			feedbackRepo,
		),
		interval,
	)
}

func userColumns() []string {
	return []string{"id", "email", "hashed_password", "name", "role", "created_at"}
}

func feedbackColumns() []string {
	return []string{"id", "task_id", "sender_id", "recipient_id", "message", "is_read", "last_viewed_at", "created_at"}
}

func TestBadgeRefresher_Refresh(t *testing.T) {
	// Arrange
	gormDB, mock := setupMockDB(t)
	refresher := newRefresher(gormDB, 30*time.Second)

	userID := uuid.New()
	taskID := uuid.New()

	// Список пользователей, затем по каждому непрочитанное и ответы
	mock.ExpectQuery(`SELECT .* FROM "users"`).
		WillReturnRows(sqlmock.NewRows(userColumns()).
			AddRow(userID.String(), "ivan@example.com", "hash", "Ivan", "employee", time.Now()))
	mock.ExpectQuery(`SELECT .* FROM "feedbacks" WHERE recipient_id = .* AND is_read = .*`).
		WillReturnRows(sqlmock.NewRows(feedbackColumns()).
			AddRow(uuid.New().String(), taskID.String(), uuid.New().String(), userID.String(), "note", false, nil, time.Now()))
	mock.ExpectQuery(`SELECT .* FROM "feedbacks" WHERE sender_id = .*`).
		WillReturnRows(sqlmock.NewRows(feedbackColumns()))

	// Act
	refresher.Refresh(context.Background())

	// Assert
	summary, ok := refresher.Summary(userID)
	assert.True(t, ok)
	assert.Equal(t, 1, summary.UnreadFeedback)
	assert.Empty(t, summary.UnreadReplyTasks)
	assert.False(t, summary.RefreshedAt.IsZero())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBadgeRefresher_Refresh_SkipsFailedUser(t *testing.T) {
	// Arrange
	gormDB, mock := setupMockDB(t)
	refresher := newRefresher(gormDB, 30*time.Second)

	brokenID := uuid.New()
	healthyID := uuid.New()

	// Сбой по одному пользователю не срывает весь проход
	mock.ExpectQuery(`SELECT .* FROM "users"`).
		WillReturnRows(sqlmock.NewRows(userColumns()).
			AddRow(brokenID.String(), "a@example.com", "hash", "A", "employee", time.Now()).
			AddRow(healthyID.String(), "b@example.com", "hash", "B", "employee", time.Now()))
	mock.ExpectQuery(`SELECT .* FROM "feedbacks" WHERE recipient_id = .*`).
		WillReturnError(gorm.ErrInvalidDB)
	mock.ExpectQuery(`SELECT .* FROM "feedbacks" WHERE recipient_id = .*`).
		WillReturnRows(sqlmock.NewRows(feedbackColumns()))
	mock.ExpectQuery(`SELECT .* FROM "feedbacks" WHERE sender_id = .*`).
		WillReturnRows(sqlmock.NewRows(feedbackColumns()))

	// Act
	refresher.Refresh(context.Background())

	// Assert
	_, ok := refresher.Summary(brokenID)
	assert.False(t, ok)
	summary, ok := refresher.Summary(healthyID)
	assert.True(t, ok)
	assert.Equal(t, 0, summary.UnreadFeedback)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBadgeRefresher_Summary_Miss(t *testing.T) {
	gormDB, _ := setupMockDB(t)
	refresher := newRefresher(gormDB, 30*time.Second)

	_, ok := refresher.Summary(uuid.New())
	assert.False(t, ok)
}

func TestBadgeRefresher_Start_RejectsZeroInterval(t *testing.T) {
	gormDB, _ := setupMockDB(t)
	refresher := newRefresher(gormDB, 0)

	assert.Error(t, refresher.Start())
}

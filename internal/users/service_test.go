package users

import (
	"context"
	"testing"
	"time"

	"github.com/jcastellanos/habitframe-backend/pkg/db/models"
	pkgerrors "github.com/jcastellanos/habitframe-backend/pkg/errors"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type stubHabitSource struct {
	ids map[uuid.UUID][]uuid.UUID
}

func (s *stubHabitSource) ListActiveIDs(_ context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	return s.ids[userID], nil
}

type stubBadgeSource struct {
	ids map[uuid.UUID][]string
}

func (s *stubBadgeSource) ListEarnedIDs(_ context.Context, userID uuid.UUID) ([]string, error) {
	return s.ids[userID], nil
}

type usersFixture struct {
	conn    *gorm.DB
	repo    *Repository
	habitIt *stubHabitSource
	badgeIt *stubBadgeSource
	svc     Service
}

func newUsersFixture(t *testing.T) *usersFixture {
	t.Helper()

	dsn := "file:users_" + uuid.NewString() + "?mode=memory&cache=shared"
	conn, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, conn.AutoMigrate(&models.User{}))

	f := &usersFixture{
		conn:    conn,
		repo:    NewRepository(conn),
		habitIt: &stubHabitSource{ids: map[uuid.UUID][]uuid.UUID{}},
		badgeIt: &stubBadgeSource{ids: map[uuid.UUID][]string{}},
	}
	svc, err := NewService(ServiceParams{
		UserRepo:    f.repo,
		HabitSource: f.habitIt,
		BadgeSource: f.badgeIt,
	})
	require.NoError(t, err)
	f.svc = svc
	return f
}

func strptr(s string) *string { return &s }

func TestUpsertCreatesThenRefreshes(t *testing.T) {
	ctx := context.Background()
	f := newUsersFixture(t)

	created, err := f.svc.Upsert(ctx, UpsertInput{
		FarcasterID: "777",
		DisplayName: strptr("alice"),
	})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, created.ID)
	require.NotNil(t, created.DisplayName)
	assert.Equal(t, "alice", *created.DisplayName)
	assert.Empty(t, created.ActiveHabits)
	assert.Empty(t, created.AchievedBadges)

	// Second call with the same identity updates in place.
	again, err := f.svc.Upsert(ctx, UpsertInput{
		FarcasterID:    "777",
		DisplayName:    strptr("alice2"),
		ProfilePicture: strptr("https://pics.example/a.png"),
	})
	require.NoError(t, err)
	assert.Equal(t, created.ID, again.ID)
	require.NotNil(t, again.DisplayName)
	assert.Equal(t, "alice2", *again.DisplayName)

	var count int64
	require.NoError(t, f.conn.Model(&models.User{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestUpsertKeepsProfileWhenFieldsOmitted(t *testing.T) {
	ctx := context.Background()
	f := newUsersFixture(t)

	_, err := f.svc.Upsert(ctx, UpsertInput{FarcasterID: "9", DisplayName: strptr("bob")})
	require.NoError(t, err)

	again, err := f.svc.Upsert(ctx, UpsertInput{FarcasterID: "9"})
	require.NoError(t, err)
	require.NotNil(t, again.DisplayName)
	assert.Equal(t, "bob", *again.DisplayName, "omitted fields must not be cleared")
}

func TestUpsertRequiresIdentity(t *testing.T) {
	f := newUsersFixture(t)
	for _, raw := range []string{"", "   "} {
		_, err := f.svc.Upsert(context.Background(), UpsertInput{FarcasterID: raw})
		require.Error(t, err)
		typed := pkgerrors.As(err)
		require.NotNil(t, typed)
		assert.Equal(t, pkgerrors.CodeValidation, typed.Code())
	}
}

func TestGetByFarcasterIDHydratesComputedViews(t *testing.T) {
	ctx := context.Background()
	f := newUsersFixture(t)

	created, err := f.svc.Upsert(ctx, UpsertInput{FarcasterID: "55"})
	require.NoError(t, err)

	habitID := uuid.New()
	f.habitIt.ids[created.ID] = []uuid.UUID{habitID}
	f.badgeIt.ids[created.ID] = []string{"first-step", "week-warrior"}

	got, err := f.svc.GetByFarcasterID(ctx, "55")
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{habitID}, got.ActiveHabits)
	assert.Equal(t, []string{"first-step", "week-warrior"}, got.AchievedBadges)
}

func TestGetByFarcasterIDNotFound(t *testing.T) {
	f := newUsersFixture(t)

	_, err := f.svc.GetByFarcasterID(context.Background(), "no-such-user")
	require.Error(t, err)
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeNotFound, typed.Code())
}

func TestRepoUniqueFarcasterID(t *testing.T) {
	ctx := context.Background()
	f := newUsersFixture(t)

	_, err := f.repo.Create(ctx, &models.User{FarcasterID: "dup"})
	require.NoError(t, err)

	_, err = f.repo.Create(ctx, &models.User{FarcasterID: "dup"})
	require.Error(t, err)
	assert.True(t, pkgerrors.IsUniqueViolation(err))
}

func TestRepoUpdateProfilePartial(t *testing.T) {
	ctx := context.Background()
	f := newUsersFixture(t)

	created, err := f.repo.Create(ctx, &models.User{
		FarcasterID: "p",
		DisplayName: strptr("old"),
	})
	require.NoError(t, err)
	createdAt := created.CreatedAt
	require.False(t, createdAt.IsZero())

	time.Sleep(time.Millisecond)
	updated, err := f.repo.UpdateProfile(ctx, created.ID, nil, strptr("https://pics.example/p.png"))
	require.NoError(t, err)
	require.NotNil(t, updated.DisplayName)
	assert.Equal(t, "old", *updated.DisplayName)
	require.NotNil(t, updated.ProfilePicture)
	assert.Equal(t, "https://pics.example/p.png", *updated.ProfilePicture)
}

package repository

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/liberiadate/liberiadate/app/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Profile{}, &models.Report{}, &models.AdminUser{}))
	return db
}

func testProfile(id string) *models.Profile {
	return &models.Profile{
		ID:             id,
		Name:           "Test Person",
		Age:            30,
		Gender:         "female",
		LookingFor:     "men",
		City:           "Monrovia",
		Occupation:     "Teacher",
		Bio:            "Hello.",
		Phone:          "+231 77 000 0000",
		Whatsapp:       "+231 88 000 0000",
		HasChildren:    models.HasChildrenNo,
		CardPhoto:      "/uploads/a.jpg",
		FullBodyPhoto1: "/uploads/b.jpg",
		FullBodyPhoto2: "/uploads/c.jpg",
		IntroVideo:     "/uploads/d.mp4",
		Status:         models.ProfileStatusPending,
	}
}

func TestProfileLifecycle(t *testing.T) {
	repos := NewRepositories(newTestDB(t))

	require.NoError(t, repos.Profile.Create(testProfile("profile-1")))

	pending, err := repos.Profile.ListByStatus(models.ProfileStatusPending)
	require.NoError(t, err)
	require.Len(t, pending, 1)

	approved, err := repos.Profile.ListByStatus(models.ProfileStatusApproved)
	require.NoError(t, err)
	assert.Empty(t, approved)

	require.NoError(t, repos.Profile.Approve("profile-1"))

	pending, err = repos.Profile.ListByStatus(models.ProfileStatusPending)
	require.NoError(t, err)
	assert.Empty(t, pending)

	approved, err = repos.Profile.ListByStatus(models.ProfileStatusApproved)
	require.NoError(t, err)
	require.Len(t, approved, 1)
	assert.Equal(t, "profile-1", approved[0].ID)

	count, err := repos.Profile.CountByStatus(models.ProfileStatusApproved)
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)

	require.NoError(t, repos.Profile.Delete("profile-1"))

	approved, err = repos.Profile.ListByStatus(models.ProfileStatusApproved)
	require.NoError(t, err)
	assert.Empty(t, approved)
}

func TestProfileApproveUnknownIDIsNotFound(t *testing.T) {
	repos := NewRepositories(newTestDB(t))

	err := repos.Profile.Approve("no-such-profile")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	err = repos.Profile.Delete("no-such-profile")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestProfileListOrderNewestFirst(t *testing.T) {
	db := newTestDB(t)
	repos := NewRepositories(db)

	older := testProfile("profile-old")
	older.Status = models.ProfileStatusApproved
	require.NoError(t, repos.Profile.Create(older))
	require.NoError(t, db.Model(older).Update("created_at", time.Now().Add(-time.Hour)).Error)

	newer := testProfile("profile-new")
	newer.Status = models.ProfileStatusApproved
	require.NoError(t, repos.Profile.Create(newer))

	approved, err := repos.Profile.ListByStatus(models.ProfileStatusApproved)
	require.NoError(t, err)
	require.Len(t, approved, 2)
	assert.Equal(t, "profile-new", approved[0].ID)
	assert.Equal(t, "profile-old", approved[1].ID)
}

func TestReportLifecycle(t *testing.T) {
	repos := NewRepositories(newTestDB(t))

	report := &models.Report{
		ID:              "report-1",
		ProfileID:       models.ReportProfileUnknown,
		Reason:          "fake",
		ReporterName:    "A Reporter",
		ReporterContact: "reporter@example.org",
		Details:         "This profile looks fake.",
		Status:          models.ReportStatusOpen,
	}
	require.NoError(t, repos.Report.Create(report))

	reports, err := repos.Report.List()
	require.NoError(t, err)
	require.Len(t, reports, 1)
	assert.True(t, reports[0].IsOpen())

	require.NoError(t, repos.Report.Resolve("report-1"))

	reports, err = repos.Report.List()
	require.NoError(t, err)
	require.Len(t, reports, 1)
	assert.False(t, reports[0].IsOpen())

	require.NoError(t, repos.Report.Delete("report-1"))

	assert.ErrorIs(t, repos.Report.Resolve("report-1"), gorm.ErrRecordNotFound)
	assert.ErrorIs(t, repos.Report.Delete("report-1"), gorm.ErrRecordNotFound)
}

func TestAdminUserSingleAccount(t *testing.T) {
	repos := NewRepositories(newTestDB(t))

	count, err := repos.AdminUser.Count()
	require.NoError(t, err)
	assert.EqualValues(t, 0, count)

	user, err := models.CreateAdminUser("admin", "longenoughpassword")
	require.NoError(t, err)
	require.NoError(t, repos.AdminUser.Create(user))

	count, err = repos.AdminUser.Count()
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)

	// The unique username index backs the invariant under races.
	dup, err := models.CreateAdminUser("admin", "anotherpassword1")
	require.NoError(t, err)
	assert.Error(t, repos.AdminUser.Create(dup))

	found, err := repos.AdminUser.GetByUsername("admin")
	require.NoError(t, err)
	assert.True(t, found.CheckPassword("longenoughpassword"))

	_, err = repos.AdminUser.GetByUsername("nobody")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	require.NoError(t, repos.AdminUser.DeleteAll())
	count, err = repos.AdminUser.Count()
	require.NoError(t, err)
	assert.EqualValues(t, 0, count)
}

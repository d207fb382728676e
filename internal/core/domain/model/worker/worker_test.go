package worker_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"finder/internal/core/domain/model/kernel"
	"finder/internal/core/domain/model/worker"
	"finder/internal/pkg/errs"
)

func mustNewGeoPoint(t *testing.T, lat, lng float64) kernel.GeoPoint {
	t.Helper()
	point, err := kernel.NewGeoPoint(lat, lng)
	require.NoError(t, err)
	return point
}

func newTestWorker(t *testing.T, skills []string) *worker.Worker {
	t.Helper()
	w, err := worker.NewWorker(kernel.NewUUID(), kernel.NewUUID(), skills)
	require.NoError(t, err)
	return w
}

func Test_NewWorker(t *testing.T) {
	id := kernel.NewUUID()
	userID := kernel.NewUUID()

	w, err := worker.NewWorker(id, userID, []string{"plumbing", "welding"})

	require.NoError(t, err)
	assert.True(t, w.ID().IsEqual(id))
	assert.True(t, w.UserID().IsEqual(userID))
	assert.Nil(t, w.Location())
	assert.Equal(t, worker.DefaultServiceRadiusKm, w.ServiceRadiusKm())
	assert.Equal(t, []string{"plumbing", "welding"}, w.Skills())
	assert.Equal(t, []kernel.Category{kernel.CategoryPlumbing, kernel.CategoryGeneral}, w.Categories())
	assert.Zero(t, w.Rating())
	assert.Zero(t, w.CompletedJobs())
	assert.Empty(t, w.Notifications())
	assert.Nil(t, w.PushSubscription())
}

func Test_NewWorkerShouldReturnErrorWhenIDIsInvalid(t *testing.T) {
	_, err := worker.NewWorker(kernel.UUID{}, kernel.NewUUID(), nil)
	assert.Error(t, err)

	_, err = worker.NewWorker(kernel.NewUUID(), kernel.UUID{}, nil)
	assert.Error(t, err)
}

func Test_WorkerValidateShouldReturnErrorWhenNotConstructed(t *testing.T) {
	var w worker.Worker
	assert.ErrorIs(t, w.Validate(), worker.ErrWorkerIsNotConstructed)

	var nilWorker *worker.Worker
	assert.ErrorIs(t, nilWorker.Validate(), worker.ErrWorkerIsNotConstructed)
}

func Test_WorkerSetLocation(t *testing.T) {
	w := newTestWorker(t, nil)
	point := mustNewGeoPoint(t, 28.6139, 77.2090)

	err := w.SetLocation(point)

	require.NoError(t, err)
	require.NotNil(t, w.Location())
	equal, err := w.Location().IsEqual(point)
	require.NoError(t, err)
	assert.True(t, equal)
}

func Test_WorkerSetLocationShouldRejectUnconstructedPoint(t *testing.T) {
	w := newTestWorker(t, nil)

	err := w.SetLocation(kernel.GeoPoint{})

	assert.Error(t, err)
	assert.Nil(t, w.Location())
}

func Test_WorkerSetServiceRadius(t *testing.T) {
	tests := []struct {
		name     string
		radiusKm float64
		wantErr  bool
	}{
		{"positive radius", 25, false},
		{"small radius", 0.5, false},
		{"zero radius", 0, true},
		{"negative radius", -10, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := newTestWorker(t, nil)

			err := w.SetServiceRadius(tt.radiusKm)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, worker.DefaultServiceRadiusKm, w.ServiceRadiusKm())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.radiusKm, w.ServiceRadiusKm())
		})
	}
}

func Test_WorkerUpdateSkillsRederivesCategories(t *testing.T) {
	w := newTestWorker(t, []string{"plumbing"})

	w.UpdateSkills([]string{"Electrical", "hvac", "underwater basket weaving"})

	assert.Equal(t, []string{"Electrical", "hvac", "underwater basket weaving"}, w.Skills())
	assert.Equal(
		t,
		[]kernel.Category{kernel.CategoryElectrical, kernel.CategoryHVAC, kernel.CategoryGeneral},
		w.Categories(),
	)
}

func Test_WorkerSetRating(t *testing.T) {
	w := newTestWorker(t, nil)

	require.NoError(t, w.SetRating(4.5))
	assert.InDelta(t, 4.5, w.Rating(), 0.0001)

	assert.Error(t, w.SetRating(5.1))
	assert.Error(t, w.SetRating(-0.1))
	assert.InDelta(t, 4.5, w.Rating(), 0.0001)
}

func Test_WorkerIncrementCompletedJobs(t *testing.T) {
	w := newTestWorker(t, nil)

	w.IncrementCompletedJobs()
	w.IncrementCompletedJobs()

	assert.Equal(t, 2, w.CompletedJobs())
}

func Test_WorkerSetPushSubscription(t *testing.T) {
	w := newTestWorker(t, nil)

	w.SetPushSubscription("arn:aws:sns:us-east-1:000000000000:endpoint/abc")
	require.NotNil(t, w.PushSubscription())
	assert.Equal(t, "arn:aws:sns:us-east-1:000000000000:endpoint/abc", *w.PushSubscription())

	w.SetPushSubscription("")
	assert.Nil(t, w.PushSubscription())
}

func Test_WorkerMatchesCategoryStrict(t *testing.T) {
	tests := []struct {
		name     string
		skills   []string
		category kernel.Category
		want     bool
	}{
		{"exact membership", []string{"plumbing", "hvac"}, kernel.CategoryPlumbing, true},
		{"no membership", []string{"plumbing", "hvac"}, kernel.CategoryRoofing, false},
		{"general-only wildcard", []string{"welding"}, kernel.CategoryRoofing, true},
		{"general alongside others is not a wildcard", []string{"plumbing", "welding"}, kernel.CategoryRoofing, false},
		{"empty skills do not match", nil, kernel.CategoryPlumbing, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := newTestWorker(t, tt.skills)
			assert.Equal(t, tt.want, w.MatchesCategoryStrict(tt.category))
		})
	}
}

func Test_WorkerMatchesCategoryFuzzy(t *testing.T) {
	tests := []struct {
		name     string
		skills   []string
		category kernel.Category
		want     bool
	}{
		{"exact skill", []string{"plumbing"}, kernel.CategoryPlumbing, true},
		{"substring skill", []string{"Emergency Plumbing Repairs"}, kernel.CategoryPlumbing, true},
		{"case-insensitive", []string{"PLUMBING"}, kernel.CategoryPlumbing, true},
		{"unrelated skill", []string{"welding", "masonry"}, kernel.CategoryRoofing, true}, // general-only wildcard
		{"partial but non-containing", []string{"plumb", "roofing"}, kernel.CategoryPlumbing, false},
		{"partial-only skills normalize to the wildcard", []string{"plumb"}, kernel.CategoryPlumbing, true},
		{"no match alongside specific categories", []string{"plumbing", "roof consulting"}, kernel.CategoryHVAC, false},
		{"category tag contains needle", []string{"appliance_repair", "hvac"}, kernel.CategoryHVAC, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := newTestWorker(t, tt.skills)
			assert.Equal(t, tt.want, w.MatchesCategoryFuzzy(tt.category))
		})
	}
}

func Test_WorkerDistanceKmTo(t *testing.T) {
	w := newTestWorker(t, nil)
	target := mustNewGeoPoint(t, 28.7041, 77.1025)

	_, err := w.DistanceKmTo(target)
	assert.ErrorIs(t, err, worker.ErrLocationIsNotSet)

	require.NoError(t, w.SetLocation(mustNewGeoPoint(t, 28.6139, 77.2090)))

	distance, err := w.DistanceKmTo(target)
	require.NoError(t, err)
	assert.InDelta(t, 14.4, distance, 0.3)
}

func Test_WorkerNotifications(t *testing.T) {
	w := newTestWorker(t, nil)
	jobID := kernel.NewUUID()

	first, err := worker.NewNotification(kernel.NewUUID(), worker.NotificationNewJob, "New job nearby", &jobID)
	require.NoError(t, err)
	second, err := worker.NewNotification(kernel.NewUUID(), worker.NotificationMessage, "You have a message", nil)
	require.NoError(t, err)

	require.NoError(t, w.AddNotification(first))
	require.NoError(t, w.AddNotification(second))

	assert.Len(t, w.Notifications(), 2)
	assert.True(t, w.Notifications()[0].ID().IsEqual(first.ID()))
}

func Test_WorkerAddNotificationShouldRejectUnconstructed(t *testing.T) {
	w := newTestWorker(t, nil)

	err := w.AddNotification(&worker.Notification{})

	assert.Error(t, err)
	assert.Empty(t, w.Notifications())
}

func Test_WorkerNotificationsByNewest(t *testing.T) {
	w := newTestWorker(t, nil)

	older, err := worker.RestoreNotification(
		kernel.NewUUID(), worker.NotificationNewJob, "older", nil,
		false, time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	newer, err := worker.RestoreNotification(
		kernel.NewUUID(), worker.NotificationNewJob, "newer", nil,
		false, time.Date(2025, 3, 2, 10, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	require.NoError(t, w.AddNotification(older))
	require.NoError(t, w.AddNotification(newer))

	sorted := w.NotificationsByNewest()
	require.Len(t, sorted, 2)
	assert.Equal(t, "newer", sorted[0].Message())
	assert.Equal(t, "older", sorted[1].Message())
}

func Test_WorkerMarkNotificationRead(t *testing.T) {
	w := newTestWorker(t, nil)
	n, err := worker.NewNotification(kernel.NewUUID(), worker.NotificationJobUpdate, "Job accepted", nil)
	require.NoError(t, err)
	require.NoError(t, w.AddNotification(n))

	require.NoError(t, w.MarkNotificationRead(n.ID()))
	assert.True(t, w.Notifications()[0].IsRead())

	err = w.MarkNotificationRead(kernel.NewUUID())
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func Test_RestoreWorker(t *testing.T) {
	id := kernel.NewUUID()
	userID := kernel.NewUUID()
	location := mustNewGeoPoint(t, 28.6139, 77.2090)
	subscription := "endpoint-token"

	n, err := worker.RestoreNotification(
		kernel.NewUUID(), worker.NotificationNewJob, "restored", nil,
		true, time.Date(2025, 2, 1, 8, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	w, err := worker.RestoreWorker(
		id, userID,
		&location,
		[]string{"plumbing", "hvac"},
		[]kernel.Category{kernel.CategoryPlumbing, kernel.CategoryHVAC},
		40,
		&subscription,
		4.2,
		17,
		[]*worker.Notification{n},
	)

	require.NoError(t, err)
	assert.True(t, w.ID().IsEqual(id))
	require.NotNil(t, w.Location())
	equal, err := w.Location().IsEqual(location)
	require.NoError(t, err)
	assert.True(t, equal)
	assert.Equal(t, 40.0, w.ServiceRadiusKm())
	assert.Equal(t, []kernel.Category{kernel.CategoryPlumbing, kernel.CategoryHVAC}, w.Categories())
	assert.InDelta(t, 4.2, w.Rating(), 0.0001)
	assert.Equal(t, 17, w.CompletedJobs())
	require.NotNil(t, w.PushSubscription())
	assert.Equal(t, "endpoint-token", *w.PushSubscription())
	require.Len(t, w.Notifications(), 1)
	assert.True(t, w.Notifications()[0].IsRead())
}

func Test_RestoreWorkerShouldRejectInvalidCategory(t *testing.T) {
	_, err := worker.RestoreWorker(
		kernel.NewUUID(), kernel.NewUUID(),
		nil, nil,
		[]kernel.Category{"welding"},
		worker.DefaultServiceRadiusKm,
		nil, 0, 0, nil,
	)

	assert.Error(t, err)
}

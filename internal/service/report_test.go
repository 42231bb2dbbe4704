package service

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campuseats/campuseats/internal/models"
	"github.com/campuseats/campuseats/internal/service/mocks"
)

func newTestReportService(repo ReportRepository, notifier Notifier) *ReportService {
	svc := NewReportService(repo, notifier)
	svc.now = func() time.Time { return testNow }
	return svc
}

func reportDraft() models.ReportDraft {
	orderID := uint64(7)
	return models.ReportDraft{
		StudentID:    1,
		RestaurantID: 2,
		OrderID:      &orderID,
		Type:         models.ReportTypeRestaurantClosed,
		Comment:      "lights off, door locked",
	}
}

func TestReportService_Create(t *testing.T) {
	tests := []struct {
		name    string
		draft   func() models.ReportDraft
		setup   func(repo *mocks.MockReportRepository, notifier *mocks.MockNotifier)
		wantErr error
	}{
		{
			name:  "first_report_below_threshold",
			draft: reportDraft,
			setup: func(repo *mocks.MockReportRepository, notifier *mocks.MockNotifier) {
				repo.EXPECT().LastReportAgainstRestaurant(gomock.Any(), uint64(1), uint64(2)).Return(nil, models.ErrDataNotFound)
				repo.EXPECT().CreateReport(gomock.Any(), gomock.Any()).Return(nil)
				repo.EXPECT().CountDistinctReporters(gomock.Any(), uint64(2), models.ReportTypeRestaurantClosed, testNow.Add(-models.StrikeWindow)).Return(1, nil)
			},
		},
		{
			name: "invalid_type",
			draft: func() models.ReportDraft {
				d := reportDraft()
				d.Type = "BAD_VIBES"
				return d
			},
			setup:   func(repo *mocks.MockReportRepository, notifier *mocks.MockNotifier) {},
			wantErr: models.ErrInvalidReportType,
		},
		{
			name:  "rate_limited_within_window",
			draft: reportDraft,
			setup: func(repo *mocks.MockReportRepository, notifier *mocks.MockNotifier) {
				repo.EXPECT().LastReportAgainstRestaurant(gomock.Any(), uint64(1), uint64(2)).Return(&models.Report{
					CreatedAt: testNow.Add(-2 * time.Hour),
				}, nil)
			},
			wantErr: models.ErrReportRateLimited,
		},
		{
			name:  "old_report_does_not_rate_limit",
			draft: reportDraft,
			setup: func(repo *mocks.MockReportRepository, notifier *mocks.MockNotifier) {
				repo.EXPECT().LastReportAgainstRestaurant(gomock.Any(), uint64(1), uint64(2)).Return(&models.Report{
					CreatedAt: testNow.Add(-25 * time.Hour),
				}, nil)
				repo.EXPECT().CreateReport(gomock.Any(), gomock.Any()).Return(nil)
				repo.EXPECT().CountDistinctReporters(gomock.Any(), uint64(2), models.ReportTypeRestaurantClosed, gomock.Any()).Return(1, nil)
			},
		},
		{
			name:  "duplicate_order_report_passthrough",
			draft: reportDraft,
			setup: func(repo *mocks.MockReportRepository, notifier *mocks.MockNotifier) {
				repo.EXPECT().LastReportAgainstRestaurant(gomock.Any(), uint64(1), uint64(2)).Return(nil, models.ErrDataNotFound)
				repo.EXPECT().CreateReport(gomock.Any(), gomock.Any()).Return(models.ErrOrderAlreadyReported)
			},
			wantErr: models.ErrOrderAlreadyReported,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repoMock := mocks.NewMockReportRepository(ctrl)
			notifierMock := mocks.NewMockNotifier(ctrl)
			tt.setup(repoMock, notifierMock)

			svc := newTestReportService(repoMock, notifierMock)
			report, err := svc.Create(context.Background(), tt.draft())
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, models.ReportStatusPending, report.Status)
			assert.NotEqual(t, uuid.Nil, report.ID)
		})
	}
}

func TestReportService_ThreeStrikes(t *testing.T) {
	t.Run("third_reporter_disables_and_notifies", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repoMock := mocks.NewMockReportRepository(ctrl)
		notifierMock := mocks.NewMockNotifier(ctrl)

		since := testNow.Add(-models.StrikeWindow)
		repoMock.EXPECT().LastReportAgainstRestaurant(gomock.Any(), uint64(1), uint64(2)).Return(nil, models.ErrDataNotFound)
		repoMock.EXPECT().CreateReport(gomock.Any(), gomock.Any()).Return(nil)
		repoMock.EXPECT().CountDistinctReporters(gomock.Any(), uint64(2), models.ReportTypeRestaurantClosed, since).Return(3, nil)
		repoMock.EXPECT().DisableRestaurant(gomock.Any(), uint64(2)).Return(true, nil)
		repoMock.EXPECT().EscalateReportsInWindow(gomock.Any(), uint64(2), models.ReportTypeRestaurantClosed, since).Return(int64(3), nil)
		notifierMock.EXPECT().NotifyAdmins(gomock.Any(), models.NotificationRestaurantDisabled, gomock.Any(), gomock.Any()).Return(nil)

		svc := newTestReportService(repoMock, notifierMock)
		_, err := svc.Create(context.Background(), reportDraft())
		assert.NoError(t, err)
	})

	t.Run("lost_disable_race_stays_silent", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repoMock := mocks.NewMockReportRepository(ctrl)
		notifierMock := mocks.NewMockNotifier(ctrl)

		repoMock.EXPECT().LastReportAgainstRestaurant(gomock.Any(), uint64(1), uint64(2)).Return(nil, models.ErrDataNotFound)
		repoMock.EXPECT().CreateReport(gomock.Any(), gomock.Any()).Return(nil)
		repoMock.EXPECT().CountDistinctReporters(gomock.Any(), uint64(2), models.ReportTypeRestaurantClosed, gomock.Any()).Return(4, nil)
		repoMock.EXPECT().DisableRestaurant(gomock.Any(), uint64(2)).Return(false, nil)
		repoMock.EXPECT().EscalateReportsInWindow(gomock.Any(), uint64(2), models.ReportTypeRestaurantClosed, gomock.Any()).Return(int64(0), nil)
		notifierMock.EXPECT().NotifyAdmins(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		svc := newTestReportService(repoMock, notifierMock)
		_, err := svc.Create(context.Background(), reportDraft())
		assert.NoError(t, err)
	})

	t.Run("strike_failure_does_not_fail_creation", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repoMock := mocks.NewMockReportRepository(ctrl)
		notifierMock := mocks.NewMockNotifier(ctrl)

		repoMock.EXPECT().LastReportAgainstRestaurant(gomock.Any(), uint64(1), uint64(2)).Return(nil, models.ErrDataNotFound)
		repoMock.EXPECT().CreateReport(gomock.Any(), gomock.Any()).Return(nil)
		repoMock.EXPECT().CountDistinctReporters(gomock.Any(), uint64(2), gomock.Any(), gomock.Any()).Return(0, models.ErrInternalError)

		svc := newTestReportService(repoMock, notifierMock)
		report, err := svc.Create(context.Background(), reportDraft())
		require.NoError(t, err)
		assert.Equal(t, models.ReportStatusPending, report.Status)
	})
}

func TestReportService_Resolve(t *testing.T) {
	reportID := uuid.New()
	report := &models.Report{
		ID:           reportID,
		StudentID:    1,
		RestaurantID: 2,
		Status:       models.ReportStatusPending,
	}

	tests := []struct {
		name    string
		actor   models.TokenPayload
		setup   func(repo *mocks.MockReportRepository, notifier *mocks.MockNotifier)
		wantErr error
	}{
		{
			name:  "owner_resolves_pending_report",
			actor: models.TokenPayload{UserID: 2, Role: models.RoleRestaurant},
			setup: func(repo *mocks.MockReportRepository, notifier *mocks.MockNotifier) {
				repo.EXPECT().GetReportByID(gomock.Any(), reportID).Return(report, nil)
				repo.EXPECT().ResolveReport(gomock.Any(), reportID, models.ReportStatusPending, models.ReportStatusResolved).Return(nil)
				notifier.EXPECT().Notify(gomock.Any(), uint64(1), models.RoleStudent,
					models.NotificationReportResolved, gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name:    "student_forbidden",
			actor:   models.TokenPayload{UserID: 1, Role: models.RoleStudent},
			setup:   func(repo *mocks.MockReportRepository, notifier *mocks.MockNotifier) {},
			wantErr: models.ErrForbidden,
		},
		{
			name:  "foreign_restaurant_forbidden",
			actor: models.TokenPayload{UserID: 3, Role: models.RoleRestaurant},
			setup: func(repo *mocks.MockReportRepository, notifier *mocks.MockNotifier) {
				repo.EXPECT().GetReportByID(gomock.Any(), reportID).Return(report, nil)
			},
			wantErr: models.ErrForbidden,
		},
		{
			name:  "escalated_report_not_resolvable",
			actor: models.TokenPayload{UserID: 2, Role: models.RoleRestaurant},
			setup: func(repo *mocks.MockReportRepository, notifier *mocks.MockNotifier) {
				repo.EXPECT().GetReportByID(gomock.Any(), reportID).Return(report, nil)
				repo.EXPECT().ResolveReport(gomock.Any(), reportID, models.ReportStatusPending, models.ReportStatusResolved).Return(models.ErrStaleTransition)
			},
			wantErr: models.ErrStaleTransition,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repoMock := mocks.NewMockReportRepository(ctrl)
			notifierMock := mocks.NewMockNotifier(ctrl)
			tt.setup(repoMock, notifierMock)

			svc := newTestReportService(repoMock, notifierMock)
			err := svc.Resolve(context.Background(), reportID, tt.actor)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestReportService_Confirm(t *testing.T) {
	reportID := uuid.New()
	report := &models.Report{
		ID:           reportID,
		StudentID:    1,
		RestaurantID: 2,
		Status:       models.ReportStatusResolved,
	}

	t.Run("reporter_confirms_resolution", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repoMock := mocks.NewMockReportRepository(ctrl)
		repoMock.EXPECT().GetReportByID(gomock.Any(), reportID).Return(report, nil)
		repoMock.EXPECT().UpdateReportStatus(gomock.Any(), reportID, models.ReportStatusResolved, models.ReportStatusConfirmed).Return(nil)

		svc := newTestReportService(repoMock, mocks.NewMockNotifier(ctrl))
		err := svc.Confirm(context.Background(), reportID, models.TokenPayload{UserID: 1, Role: models.RoleStudent})
		assert.NoError(t, err)
	})

	t.Run("other_student_forbidden", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repoMock := mocks.NewMockReportRepository(ctrl)
		repoMock.EXPECT().GetReportByID(gomock.Any(), reportID).Return(report, nil)

		svc := newTestReportService(repoMock, mocks.NewMockNotifier(ctrl))
		err := svc.Confirm(context.Background(), reportID, models.TokenPayload{UserID: 5, Role: models.RoleStudent})
		assert.ErrorIs(t, err, models.ErrForbidden)
	})
}

func TestReportService_SweepStale(t *testing.T) {
	t.Run("escalates_batch_and_notifies_admins_once", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repoMock := mocks.NewMockReportRepository(ctrl)
		notifierMock := mocks.NewMockNotifier(ctrl)

		released := false
		repoMock.EXPECT().AcquireSweepLock(gomock.Any()).Return(func() { released = true }, true, nil)
		repoMock.EXPECT().EscalateStaleResolved(gomock.Any(), testNow.Add(-models.StaleResolveAfter)).Return(int64(4), nil)
		notifierMock.EXPECT().NotifyAdmins(gomock.Any(), models.NotificationReportEscalated, gomock.Any(), gomock.Any()).Return(nil).Times(1)

		svc := newTestReportService(repoMock, notifierMock)
		require.NoError(t, svc.SweepStale(context.Background()))
		assert.True(t, released)
	})

	t.Run("skips_when_lock_held_elsewhere", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repoMock := mocks.NewMockReportRepository(ctrl)
		notifierMock := mocks.NewMockNotifier(ctrl)

		repoMock.EXPECT().AcquireSweepLock(gomock.Any()).Return(nil, false, nil)
		repoMock.EXPECT().EscalateStaleResolved(gomock.Any(), gomock.Any()).Times(0)

		svc := newTestReportService(repoMock, notifierMock)
		assert.NoError(t, svc.SweepStale(context.Background()))
	})

	t.Run("quiet_when_nothing_stale", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repoMock := mocks.NewMockReportRepository(ctrl)
		notifierMock := mocks.NewMockNotifier(ctrl)

		repoMock.EXPECT().AcquireSweepLock(gomock.Any()).Return(func() {}, true, nil)
		repoMock.EXPECT().EscalateStaleResolved(gomock.Any(), gomock.Any()).Return(int64(0), nil)
		notifierMock.EXPECT().NotifyAdmins(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		svc := newTestReportService(repoMock, notifierMock)
		assert.NoError(t, svc.SweepStale(context.Background()))
	})
}

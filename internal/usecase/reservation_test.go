//go:build unit

package usecase_test

import (
	"context"
	"testing"
	"time"

	"reservatenis/internal/domain/closure"
	"reservatenis/internal/domain/court"
	"reservatenis/internal/domain/reservation"
	"reservatenis/internal/domain/user"
	"reservatenis/internal/infra"
	"reservatenis/internal/pkg/clock"
	"reservatenis/internal/pkg/errs"
	"reservatenis/internal/usecase"
	usecasemock "reservatenis/tests/mock/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ReservationUseCaseTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	resRepo     *usecasemock.MockReservationRepository
	courtRepo   *usecasemock.MockCourtRepository
	closureRepo *usecasemock.MockClosureRepository
	userRepo    *usecasemock.MockUserRepository
	notifRepo   *usecasemock.MockNotificationRepository
	clock       *clock.MockClock
	uc          usecase.ReservationUseCase
}

func (s *ReservationUseCaseTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.resRepo = usecasemock.NewMockReservationRepository(s.ctrl)
	s.courtRepo = usecasemock.NewMockCourtRepository(s.ctrl)
	s.closureRepo = usecasemock.NewMockClosureRepository(s.ctrl)
	s.userRepo = usecasemock.NewMockUserRepository(s.ctrl)
	s.notifRepo = usecasemock.NewMockNotificationRepository(s.ctrl)
	s.clock = clock.NewMockClock(time.Date(2024, 6, 10, 7, 0, 0, 0, time.UTC))

	factory := reservation.NewFactory(s.clock, reservation.NewHourlyPriceCalculator(2000), 15)
	notifier := usecase.NewNotifier(s.notifRepo, s.clock)
	s.uc = usecase.NewReservationUseCase(s.resRepo, s.courtRepo, s.closureRepo, s.userRepo, factory, notifier, s.clock)
}

func (s *ReservationUseCaseTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestReservationUseCaseSuite(t *testing.T) {
	suite.Run(t, new(ReservationUseCaseTestSuite))
}

func (s *ReservationUseCaseTestSuite) buildCourt() *court.Court {
	c, err := court.NewCourt("Pista Central", nil)
	s.Require().NoError(err)
	return c
}

func (s *ReservationUseCaseTestSuite) buildUser() *user.User {
	email, err := user.NewEmail("player@example.com")
	s.Require().NoError(err)
	return user.NewUser(email, "hashed", nil, nil, false)
}

func (s *ReservationUseCaseTestSuite) buildReservation(ownerID *uuid.UUID) *reservation.Reservation {
	slot, err := reservation.NewTimeSlot(
		time.Date(2024, 6, 10, 9, 0, 0, 0, time.UTC),
		time.Date(2024, 6, 10, 10, 0, 0, 0, time.UTC),
	)
	s.Require().NoError(err)
	customer, err := reservation.NewCustomer("Ana", nil)
	s.Require().NoError(err)
	res, err := reservation.NewReservation(uuid.New(), ownerID, customer, slot, reservation.NewMoney(2000), s.clock.Now(), 15)
	s.Require().NoError(err)
	return res
}

func (s *ReservationUseCaseTestSuite) expectExpireLapsed() {
	s.resRepo.EXPECT().ExpireLapsed(gomock.Any(), s.clock.Now()).Return(int64(0), nil)
}

func (s *ReservationUseCaseTestSuite) TestCreateReservation() {
	courtEntity := s.buildCourt()
	owner := s.buildUser()
	actor := usecase.Actor{ID: owner.ID()}
	input := usecase.CreateReservationInput{
		CourtID:      courtEntity.ID(),
		Start:        time.Date(2024, 6, 10, 9, 0, 0, 0, time.UTC),
		End:          time.Date(2024, 6, 10, 10, 0, 0, 0, time.UTC),
		CustomerName: "Ana",
	}

	s.Run("正常系_予約を保留状態で作成し通知する", func() {
		s.expectExpireLapsed()
		s.courtRepo.EXPECT().FindByID(gomock.Any(), courtEntity.ID()).Return(courtEntity, nil)
		s.closureRepo.EXPECT().ListBlocking(gomock.Any(), courtEntity.ID(), input.Start, input.End).Return(nil, nil)
		s.userRepo.EXPECT().FindByID(gomock.Any(), owner.ID()).Return(owner, nil)
		s.resRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
		s.notifRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
		s.notifRepo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)

		res, err := s.uc.CreateReservation(context.Background(), actor, input)
		s.Require().NoError(err)
		s.Equal(reservation.StatusPending, res.Status())
		s.Require().NotNil(res.ExpiresAt())
		s.Equal(s.clock.Now().Add(15*time.Minute), *res.ExpiresAt())
		s.Equal(int64(2000), res.Price().Cents())
	})

	s.Run("異常系_重複する枠はErrSlotConflict", func() {
		s.expectExpireLapsed()
		s.courtRepo.EXPECT().FindByID(gomock.Any(), courtEntity.ID()).Return(courtEntity, nil)
		s.closureRepo.EXPECT().ListBlocking(gomock.Any(), courtEntity.ID(), input.Start, input.End).Return(nil, nil)
		s.userRepo.EXPECT().FindByID(gomock.Any(), owner.ID()).Return(owner, nil)
		s.resRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(infra.WrapRepoErr(infra.KindConflict, "slot taken", nil))

		_, err := s.uc.CreateReservation(context.Background(), actor, input)
		s.Require().ErrorIs(err, errs.ErrSlotConflict)
	})

	s.Run("異常系_閉鎖期間と重なる枠はErrSlotClosed", func() {
		blocking, err := closure.NewClosure(nil, input.Start, input.End, nil)
		s.Require().NoError(err)
		s.expectExpireLapsed()
		s.courtRepo.EXPECT().FindByID(gomock.Any(), courtEntity.ID()).Return(courtEntity, nil)
		s.closureRepo.EXPECT().ListBlocking(gomock.Any(), courtEntity.ID(), input.Start, input.End).
			Return([]*closure.Closure{blocking}, nil)

		_, err = s.uc.CreateReservation(context.Background(), actor, input)
		s.Require().ErrorIs(err, errs.ErrSlotClosed)
	})
}

func (s *ReservationUseCaseTestSuite) TestCreateReservationValidation() {
	courtEntity := s.buildCourt()
	actor := usecase.Actor{ID: uuid.New()}

	s.Run("異常系_存在しないコートはErrCourtNotFound", func() {
		s.expectExpireLapsed()
		s.courtRepo.EXPECT().FindByID(gomock.Any(), courtEntity.ID()).
			Return(nil, infra.WrapRepoErr(infra.KindNotFound, "court not found", nil))

		_, err := s.uc.CreateReservation(context.Background(), actor, usecase.CreateReservationInput{
			CourtID:      courtEntity.ID(),
			Start:        time.Date(2024, 6, 10, 9, 0, 0, 0, time.UTC),
			End:          time.Date(2024, 6, 10, 10, 0, 0, 0, time.UTC),
			CustomerName: "Ana",
		})
		s.Require().ErrorIs(err, errs.ErrCourtNotFound)
	})

	s.Run("異常系_非アクティブなコートはErrCourtNotFound", func() {
		inactive := s.buildCourt()
		inactive.Deactivate()
		s.expectExpireLapsed()
		s.courtRepo.EXPECT().FindByID(gomock.Any(), inactive.ID()).Return(inactive, nil)

		_, err := s.uc.CreateReservation(context.Background(), actor, usecase.CreateReservationInput{
			CourtID:      inactive.ID(),
			Start:        time.Date(2024, 6, 10, 9, 0, 0, 0, time.UTC),
			End:          time.Date(2024, 6, 10, 10, 0, 0, 0, time.UTC),
			CustomerName: "Ana",
		})
		s.Require().ErrorIs(err, errs.ErrCourtNotFound)
	})

	s.Run("異常系_終了が開始以前ならErrInvalidTimeRange", func() {
		s.expectExpireLapsed()
		s.courtRepo.EXPECT().FindByID(gomock.Any(), courtEntity.ID()).Return(courtEntity, nil)

		_, err := s.uc.CreateReservation(context.Background(), actor, usecase.CreateReservationInput{
			CourtID:      courtEntity.ID(),
			Start:        time.Date(2024, 6, 10, 10, 0, 0, 0, time.UTC),
			End:          time.Date(2024, 6, 10, 9, 0, 0, 0, time.UTC),
			CustomerName: "Ana",
		})
		s.Require().ErrorIs(err, errs.ErrInvalidTimeRange)
	})
}

func (s *ReservationUseCaseTestSuite) TestConfirmReservation() {
	owner := s.buildUser()
	ownerID := owner.ID()
	admin := usecase.Actor{ID: uuid.New(), IsAdmin: true}

	s.Run("正常系_保留中の予約を確定し通知する", func() {
		res := s.buildReservation(&ownerID)
		s.expectExpireLapsed()
		s.resRepo.EXPECT().FindByID(gomock.Any(), res.ID()).Return(res, nil)
		s.resRepo.EXPECT().Update(gomock.Any(), res).Return(nil)
		s.userRepo.EXPECT().FindByID(gomock.Any(), ownerID).Return(owner, nil)
		s.notifRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
		s.notifRepo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)

		got, err := s.uc.ConfirmReservation(context.Background(), admin, res.ID())
		s.Require().NoError(err)
		s.Equal(reservation.StatusConfirmed, got.Status())
		s.Nil(got.ExpiresAt())
	})

	s.Run("正常系_確定済みへの再確定は更新せずそのまま返す", func() {
		res := s.buildReservation(&ownerID)
		s.Require().NoError(res.Confirm())
		s.expectExpireLapsed()
		s.resRepo.EXPECT().FindByID(gomock.Any(), res.ID()).Return(res, nil)

		got, err := s.uc.ConfirmReservation(context.Background(), admin, res.ID())
		s.Require().NoError(err)
		s.Equal(reservation.StatusConfirmed, got.Status())
	})

	s.Run("異常系_キャンセル済みの確定はErrInvalidTransition", func() {
		res := s.buildReservation(&ownerID)
		res.Cancel()
		s.expectExpireLapsed()
		s.resRepo.EXPECT().FindByID(gomock.Any(), res.ID()).Return(res, nil)

		_, err := s.uc.ConfirmReservation(context.Background(), admin, res.ID())
		s.Require().ErrorIs(err, errs.ErrInvalidTransition)
	})
}

func (s *ReservationUseCaseTestSuite) TestCancelReservation() {
	owner := s.buildUser()
	ownerID := owner.ID()
	actor := usecase.Actor{ID: ownerID}

	s.Run("正常系_所有者がキャンセルできる", func() {
		res := s.buildReservation(&ownerID)
		s.expectExpireLapsed()
		s.resRepo.EXPECT().FindByID(gomock.Any(), res.ID()).Return(res, nil)
		s.resRepo.EXPECT().Update(gomock.Any(), res).Return(nil)
		s.userRepo.EXPECT().FindByID(gomock.Any(), ownerID).Return(owner, nil)
		s.notifRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
		s.notifRepo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)

		got, err := s.uc.CancelReservation(context.Background(), actor, res.ID())
		s.Require().NoError(err)
		s.True(got.IsCancelled())
		s.Nil(got.ExpiresAt())
	})

	s.Run("正常系_キャンセル済みの再キャンセルは冪等", func() {
		res := s.buildReservation(&ownerID)
		res.Cancel()
		s.expectExpireLapsed()
		s.resRepo.EXPECT().FindByID(gomock.Any(), res.ID()).Return(res, nil)

		got, err := s.uc.CancelReservation(context.Background(), actor, res.ID())
		s.Require().NoError(err)
		s.True(got.IsCancelled())
	})

	s.Run("異常系_他人の予約はErrForbidden", func() {
		res := s.buildReservation(&ownerID)
		stranger := usecase.Actor{ID: uuid.New()}
		s.expectExpireLapsed()
		s.resRepo.EXPECT().FindByID(gomock.Any(), res.ID()).Return(res, nil)

		_, err := s.uc.CancelReservation(context.Background(), stranger, res.ID())
		s.Require().ErrorIs(err, errs.ErrForbidden)
	})
}

func (s *ReservationUseCaseTestSuite) TestListReservations() {
	owner := s.buildUser()
	ownerID := owner.ID()

	s.Run("正常系_非管理者は自分の予約に絞られる", func() {
		s.expectExpireLapsed()
		s.resRepo.EXPECT().List(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, filter usecase.ReservationFilter) ([]*reservation.Reservation, error) {
				s.Require().NotNil(filter.UserID)
				s.Equal(ownerID, *filter.UserID)
				return nil, nil
			})

		_, err := s.uc.ListReservations(context.Background(), usecase.Actor{ID: ownerID}, usecase.ReservationFilter{})
		s.Require().NoError(err)
	})

	s.Run("正常系_管理者はフィルタをそのまま使える", func() {
		s.expectExpireLapsed()
		s.resRepo.EXPECT().List(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, filter usecase.ReservationFilter) ([]*reservation.Reservation, error) {
				s.Nil(filter.UserID)
				return nil, nil
			})

		_, err := s.uc.ListReservations(context.Background(), usecase.Actor{ID: uuid.New(), IsAdmin: true}, usecase.ReservationFilter{})
		s.Require().NoError(err)
	})
}

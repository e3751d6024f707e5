//go:build unit

package usecase_test

import (
	"context"
	"testing"
	"time"

	"reservatenis/internal/domain/availability"
	"reservatenis/internal/domain/court"
	"reservatenis/internal/domain/reservation"
	"reservatenis/internal/infra"
	"reservatenis/internal/pkg/clock"
	"reservatenis/internal/pkg/errs"
	"reservatenis/internal/usecase"
	usecasemock "reservatenis/tests/mock/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AvailabilityUseCaseTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	resRepo     *usecasemock.MockReservationRepository
	courtRepo   *usecasemock.MockCourtRepository
	closureRepo *usecasemock.MockClosureRepository
	clock       *clock.MockClock
	uc          usecase.AvailabilityUseCase
}

func (s *AvailabilityUseCaseTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.resRepo = usecasemock.NewMockReservationRepository(s.ctrl)
	s.courtRepo = usecasemock.NewMockCourtRepository(s.ctrl)
	s.closureRepo = usecasemock.NewMockClosureRepository(s.ctrl)
	s.clock = clock.NewMockClock(time.Date(2024, 6, 10, 7, 0, 0, 0, time.UTC))
	s.uc = usecase.NewAvailabilityUseCase(s.courtRepo, s.resRepo, s.closureRepo, s.clock)
}

func (s *AvailabilityUseCaseTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestAvailabilityUseCaseSuite(t *testing.T) {
	suite.Run(t, new(AvailabilityUseCaseTestSuite))
}

func (s *AvailabilityUseCaseTestSuite) TestGetFreeSlots() {
	courtEntity, err := court.NewCourt("Pista 1", nil)
	s.Require().NoError(err)
	day := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)
	query := usecase.AvailabilityQuery{
		CourtID: courtEntity.ID(),
		Day:     day,
		Params:  availability.Params{SlotMinutes: 60, FromHour: 8, ToHour: 11},
	}

	s.Run("正常系_保留中の予約が枠を塞ぐ", func() {
		slot, err := reservation.NewTimeSlot(
			time.Date(2024, 6, 10, 9, 0, 0, 0, time.UTC),
			time.Date(2024, 6, 10, 10, 0, 0, 0, time.UTC),
		)
		s.Require().NoError(err)
		customer, err := reservation.NewCustomer("Ana", nil)
		s.Require().NoError(err)
		pending, err := reservation.NewReservation(courtEntity.ID(), nil, customer, slot, reservation.NewMoney(2000), s.clock.Now(), 15)
		s.Require().NoError(err)

		s.resRepo.EXPECT().ExpireLapsed(gomock.Any(), s.clock.Now()).Return(int64(0), nil)
		s.courtRepo.EXPECT().FindByID(gomock.Any(), courtEntity.ID()).Return(courtEntity, nil)
		s.resRepo.EXPECT().ListBlocking(gomock.Any(), courtEntity.ID(), day, day.AddDate(0, 0, 1)).
			Return([]*reservation.Reservation{pending}, nil)
		s.closureRepo.EXPECT().ListBlocking(gomock.Any(), courtEntity.ID(), day, day.AddDate(0, 0, 1)).Return(nil, nil)

		slots, err := s.uc.GetFreeSlots(context.Background(), query)
		s.Require().NoError(err)
		s.Require().Len(slots, 2)
		s.Equal(time.Date(2024, 6, 10, 8, 0, 0, 0, time.UTC), slots[0].Start)
		s.Equal(time.Date(2024, 6, 10, 10, 0, 0, 0, time.UTC), slots[1].Start)
	})

	s.Run("異常系_存在しないコートはErrCourtNotFound", func() {
		s.resRepo.EXPECT().ExpireLapsed(gomock.Any(), s.clock.Now()).Return(int64(0), nil)
		s.courtRepo.EXPECT().FindByID(gomock.Any(), gomock.Any()).
			Return(nil, infra.WrapRepoErr(infra.KindNotFound, "court not found", nil))

		_, err := s.uc.GetFreeSlots(context.Background(), usecase.AvailabilityQuery{CourtID: uuid.New(), Day: day, Params: query.Params})
		s.Require().ErrorIs(err, errs.ErrCourtNotFound)
	})

	s.Run("異常系_非アクティブなコートはErrCourtNotFound", func() {
		inactive, err := court.NewCourt("Pista cerrada", nil)
		s.Require().NoError(err)
		inactive.Deactivate()

		s.resRepo.EXPECT().ExpireLapsed(gomock.Any(), s.clock.Now()).Return(int64(0), nil)
		s.courtRepo.EXPECT().FindByID(gomock.Any(), inactive.ID()).Return(inactive, nil)

		_, err = s.uc.GetFreeSlots(context.Background(), usecase.AvailabilityQuery{CourtID: inactive.ID(), Day: day, Params: query.Params})
		s.Require().ErrorIs(err, errs.ErrCourtNotFound)
	})

	s.Run("異常系_不正な枠長はErrInvalidSlotMinutes", func() {
		s.resRepo.EXPECT().ExpireLapsed(gomock.Any(), s.clock.Now()).Return(int64(0), nil)
		s.courtRepo.EXPECT().FindByID(gomock.Any(), courtEntity.ID()).Return(courtEntity, nil)
		s.resRepo.EXPECT().ListBlocking(gomock.Any(), courtEntity.ID(), day, day.AddDate(0, 0, 1)).Return(nil, nil)
		s.closureRepo.EXPECT().ListBlocking(gomock.Any(), courtEntity.ID(), day, day.AddDate(0, 0, 1)).Return(nil, nil)

		bad := query
		bad.Params.SlotMinutes = 0
		_, err := s.uc.GetFreeSlots(context.Background(), bad)
		s.Require().ErrorIs(err, errs.ErrInvalidSlotMinutes)
	})
}

//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"reservatenis/internal/domain/availability"
	"reservatenis/internal/handler/api"
	resdto "reservatenis/internal/handler/dto/response"
	"reservatenis/internal/pkg/config"
	"reservatenis/internal/pkg/errs"
	"reservatenis/internal/usecase"
	httptestutil "reservatenis/tests/common/httptest"
	usecasemock "reservatenis/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CourtHandlerTestSuite struct {
	suite.Suite
	router           *gin.Engine
	mockCtrl         *gomock.Controller
	mockCourts       *usecasemock.MockCourtUseCase
	mockAvailability *usecasemock.MockAvailabilityUseCase
	handler          *api.CourtHandler
}

func (s *CourtHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCourts = usecasemock.NewMockCourtUseCase(s.mockCtrl)
	s.mockAvailability = usecasemock.NewMockAvailabilityUseCase(s.mockCtrl)
	s.handler = api.NewCourtHandler(s.mockCourts, s.mockAvailability, config.NewTestConfig().Reservation)

	s.router.GET("/courts/:id/availability", s.handler.GetAvailability)
	s.router.GET("/courts", s.handler.ListCourts)
}

func (s *CourtHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCourtHandlerSuite(t *testing.T) {
	suite.Run(t, new(CourtHandlerTestSuite))
}

func (s *CourtHandlerTestSuite) TestGetAvailability() {
	courtID := uuid.New()
	base := "/courts/" + courtID.String() + "/availability"

	s.Run("正常系_デフォルトの営業時間で空き枠を返す", func() {
		day := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)
		s.mockAvailability.EXPECT().GetFreeSlots(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, query usecase.AvailabilityQuery) ([]availability.Slot, error) {
				s.Equal(courtID, query.CourtID)
				s.Equal(day, query.Day)
				s.Equal(60, query.Params.SlotMinutes)
				s.Equal(8, query.Params.FromHour)
				s.Equal(23, query.Params.ToHour)
				return []availability.Slot{
					{CourtID: courtID, Start: day.Add(8 * time.Hour), End: day.Add(9 * time.Hour)},
				}, nil
			})

		w := httptestutil.PerformRequest(s.T(), s.router, http.MethodGet, base+"?date=2024-06-10", nil, "")

		var resp resdto.AvailabilityResponse
		httptestutil.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)
		s.Equal(courtID, resp.CourtID)
		s.Equal("2024-06-10", resp.Date)
		s.Require().Len(resp.Slots, 1)
		s.Equal(day.Add(8*time.Hour), resp.Slots[0].StartTime)
	})

	s.Run("正常系_クエリパラメータで枠長と時間帯を上書きできる", func() {
		s.mockAvailability.EXPECT().GetFreeSlots(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, query usecase.AvailabilityQuery) ([]availability.Slot, error) {
				s.Equal(90, query.Params.SlotMinutes)
				s.Equal(9, query.Params.FromHour)
				s.Equal(12, query.Params.ToHour)
				return []availability.Slot{}, nil
			})

		w := httptestutil.PerformRequest(s.T(), s.router, http.MethodGet,
			base+"?date=2024-06-10&slot_minutes=90&from_hour=9&to_hour=12", nil, "")
		s.Equal(http.StatusOK, w.Code)
	})

	s.Run("異常系_dateパラメータ必須", func() {
		w := httptestutil.PerformRequest(s.T(), s.router, http.MethodGet, base, nil, "")
		s.Equal(http.StatusBadRequest, w.Code)
	})

	s.Run("異常系_不正な日付は400", func() {
		w := httptestutil.PerformRequest(s.T(), s.router, http.MethodGet, base+"?date=2024-13-40", nil, "")
		s.Equal(http.StatusBadRequest, w.Code)
	})

	s.Run("異常系_数値でないslot_minutesは400", func() {
		w := httptestutil.PerformRequest(s.T(), s.router, http.MethodGet, base+"?date=2024-06-10&slot_minutes=abc", nil, "")
		s.Equal(http.StatusBadRequest, w.Code)
	})

	s.Run("異常系_存在しないコートは404", func() {
		s.mockAvailability.EXPECT().GetFreeSlots(gomock.Any(), gomock.Any()).
			Return(nil, errs.ErrCourtNotFound)

		w := httptestutil.PerformRequest(s.T(), s.router, http.MethodGet, base+"?date=2024-06-10", nil, "")
		s.Equal(http.StatusNotFound, w.Code)
	})

	s.Run("異常系_不正な枠長は400", func() {
		s.mockAvailability.EXPECT().GetFreeSlots(gomock.Any(), gomock.Any()).
			Return(nil, errs.ErrInvalidSlotMinutes)

		w := httptestutil.PerformRequest(s.T(), s.router, http.MethodGet, base+"?date=2024-06-10&slot_minutes=-5", nil, "")
		s.Equal(http.StatusBadRequest, w.Code)
	})

	s.Run("異常系_不正なコートIDは400", func() {
		w := httptestutil.PerformRequest(s.T(), s.router, http.MethodGet, "/courts/not-a-uuid/availability?date=2024-06-10", nil, "")
		s.Equal(http.StatusBadRequest, w.Code)
	})
}

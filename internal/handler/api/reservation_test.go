//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"reservatenis/internal/domain/reservation"
	"reservatenis/internal/handler/api"
	resdto "reservatenis/internal/handler/dto/response"
	"reservatenis/internal/pkg/errs"
	httptestutil "reservatenis/tests/common/httptest"
	usecasemock "reservatenis/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ReservationHandlerTestSuite struct {
	suite.Suite
	router          *gin.Engine
	mockCtrl        *gomock.Controller
	mockReservation *usecasemock.MockReservationUseCase
	handler         *api.ReservationHandler
	actorID         uuid.UUID
}

func (s *ReservationHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockReservation = usecasemock.NewMockReservationUseCase(s.mockCtrl)
	s.handler = api.NewReservationHandler(s.mockReservation)
	s.actorID = uuid.New()

	// Mock middleware behavior: inject the authenticated actor
	withActor := func(next gin.HandlerFunc) gin.HandlerFunc {
		return func(c *gin.Context) {
			c.Set("user_id", s.actorID)
			c.Set("is_admin", false)
			next(c)
		}
	}

	s.router.POST("/reservations", withActor(s.handler.CreateReservation))
	s.router.POST("/reservations/:id/confirm", withActor(s.handler.ConfirmReservation))
	s.router.POST("/reservations/:id/cancel", withActor(s.handler.CancelReservation))
	s.router.GET("/reservations/:id", withActor(s.handler.GetReservation))
}

func (s *ReservationHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestReservationHandlerSuite(t *testing.T) {
	suite.Run(t, new(ReservationHandlerTestSuite))
}

func (s *ReservationHandlerTestSuite) buildReservation() *reservation.Reservation {
	slot, err := reservation.NewTimeSlot(
		time.Date(2024, 6, 10, 9, 0, 0, 0, time.UTC),
		time.Date(2024, 6, 10, 10, 0, 0, 0, time.UTC),
	)
	s.Require().NoError(err)
	customer, err := reservation.NewCustomer("Ana", nil)
	s.Require().NoError(err)
	res, err := reservation.NewReservation(uuid.New(), &s.actorID, customer, slot,
		reservation.NewMoney(2000), time.Date(2024, 6, 10, 8, 0, 0, 0, time.UTC), 15)
	s.Require().NoError(err)
	return res
}

func (s *ReservationHandlerTestSuite) TestCreateReservation() {
	reqBody := map[string]any{
		"court_id":      uuid.New().String(),
		"start_time":    "2024-06-10T09:00:00Z",
		"end_time":      "2024-06-10T10:00:00Z",
		"customer_name": "Ana",
	}

	s.Run("正常系_201と保留中の予約を返す", func() {
		res := s.buildReservation()
		s.mockReservation.EXPECT().CreateReservation(gomock.Any(), gomock.Any(), gomock.Any()).Return(res, nil)

		w := httptestutil.PerformRequest(s.T(), s.router, http.MethodPost, "/reservations", reqBody, "")

		var resp resdto.ReservationResponse
		httptestutil.AssertSuccessResponse(s.T(), w, http.StatusCreated, &resp)
		s.Equal("pending", resp.Status)
		s.NotNil(resp.ExpiresAt)
	})

	s.Run("異常系_枠の重複は409", func() {
		s.mockReservation.EXPECT().CreateReservation(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errs.ErrSlotConflict)

		w := httptestutil.PerformRequest(s.T(), s.router, http.MethodPost, "/reservations", reqBody, "")
		s.Equal(http.StatusConflict, w.Code)
	})

	s.Run("異常系_閉鎖中の枠は409", func() {
		s.mockReservation.EXPECT().CreateReservation(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errs.ErrSlotClosed)

		w := httptestutil.PerformRequest(s.T(), s.router, http.MethodPost, "/reservations", reqBody, "")
		s.Equal(http.StatusConflict, w.Code)
	})

	s.Run("異常系_不正な時間帯は400", func() {
		s.mockReservation.EXPECT().CreateReservation(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errs.ErrInvalidTimeRange)

		w := httptestutil.PerformRequest(s.T(), s.router, http.MethodPost, "/reservations", reqBody, "")
		s.Equal(http.StatusBadRequest, w.Code)
	})

	s.Run("異常系_存在しないコートは404", func() {
		s.mockReservation.EXPECT().CreateReservation(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errs.ErrCourtNotFound)

		w := httptestutil.PerformRequest(s.T(), s.router, http.MethodPost, "/reservations", reqBody, "")
		s.Equal(http.StatusNotFound, w.Code)
	})

	s.Run("異常系_必須フィールド欠落は400", func() {
		w := httptestutil.PerformRequest(s.T(), s.router, http.MethodPost, "/reservations",
			map[string]any{"court_id": uuid.New().String()}, "")
		s.Equal(http.StatusBadRequest, w.Code)
	})
}

func (s *ReservationHandlerTestSuite) TestConfirmReservation() {
	s.Run("正常系_200と確定済みの予約を返す", func() {
		res := s.buildReservation()
		s.Require().NoError(res.Confirm())
		s.mockReservation.EXPECT().ConfirmReservation(gomock.Any(), gomock.Any(), res.ID()).Return(res, nil)

		w := httptestutil.PerformRequest(s.T(), s.router, http.MethodPost,
			"/reservations/"+res.ID().String()+"/confirm", nil, "")

		var resp resdto.ReservationResponse
		httptestutil.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)
		s.Equal("confirmed", resp.Status)
		s.Nil(resp.ExpiresAt)
	})

	s.Run("異常系_キャンセル済みの確定は409", func() {
		id := uuid.New()
		s.mockReservation.EXPECT().ConfirmReservation(gomock.Any(), gomock.Any(), id).
			Return(nil, errs.ErrInvalidTransition)

		w := httptestutil.PerformRequest(s.T(), s.router, http.MethodPost,
			"/reservations/"+id.String()+"/confirm", nil, "")
		s.Equal(http.StatusConflict, w.Code)
	})

	s.Run("異常系_他人の予約は403", func() {
		id := uuid.New()
		s.mockReservation.EXPECT().ConfirmReservation(gomock.Any(), gomock.Any(), id).
			Return(nil, errs.ErrForbidden)

		w := httptestutil.PerformRequest(s.T(), s.router, http.MethodPost,
			"/reservations/"+id.String()+"/confirm", nil, "")
		s.Equal(http.StatusForbidden, w.Code)
	})
}

func (s *ReservationHandlerTestSuite) TestCancelReservation() {
	s.Run("正常系_200とキャンセル済みの予約を返す", func() {
		res := s.buildReservation()
		res.Cancel()
		s.mockReservation.EXPECT().CancelReservation(gomock.Any(), gomock.Any(), res.ID()).Return(res, nil)

		w := httptestutil.PerformRequest(s.T(), s.router, http.MethodPost,
			"/reservations/"+res.ID().String()+"/cancel", nil, "")

		var resp resdto.ReservationResponse
		httptestutil.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)
		s.Equal("cancelled", resp.Status)
	})

	s.Run("異常系_存在しない予約は404", func() {
		id := uuid.New()
		s.mockReservation.EXPECT().CancelReservation(gomock.Any(), gomock.Any(), id).
			Return(nil, errs.ErrReservationNotFound)

		w := httptestutil.PerformRequest(s.T(), s.router, http.MethodPost,
			"/reservations/"+id.String()+"/cancel", nil, "")
		s.Equal(http.StatusNotFound, w.Code)
	})
}

//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"ride-together/internal/handler/api"
	resdto "ride-together/internal/handler/dto/response"
	"ride-together/internal/usecase/queries"
	"ride-together/tests/common/httptest"
	queriesmock "ride-together/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type NotificationHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockQueries *queriesmock.MockNotificationQueries
	userID      uuid.UUID
}

func (s *NotificationHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockQueries = queriesmock.NewMockNotificationQueries(s.mockCtrl)
	s.userID = uuid.New()

	h := api.NewNotificationHandler(s.mockQueries, testClock())
	s.router.GET("/notifications", fakeAuth(s.userID), h.List)
}

func (s *NotificationHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestNotificationHandlerSuite(t *testing.T) {
	suite.Run(t, new(NotificationHandlerTestSuite))
}

func (s *NotificationHandlerTestSuite) TestList() {
	s.Run("success: defaults", func() {
		bookingID := uuid.New()
		s.mockQueries.EXPECT().ListNotifications(gomock.Any(), s.userID, false, 0).
			Return([]*queries.NotificationView{{
				ID:        uuid.New(),
				Type:      "booking_accepted",
				Message:   "Your ride request was accepted!",
				BookingID: &bookingID,
			}}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/notifications", nil, testToken)

		var response struct {
			Notifications []resdto.NotificationResponse `json:"notifications"`
		}
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Require().Len(response.Notifications, 1)
		s.Equal("booking_accepted", response.Notifications[0].Type)
		s.Require().NotNil(response.Notifications[0].BookingID)
		s.Equal(bookingID, *response.Notifications[0].BookingID)
		s.False(response.Notifications[0].Read)
	})

	s.Run("success: unread with limit", func() {
		s.mockQueries.EXPECT().ListNotifications(gomock.Any(), s.userID, true, 5).Return(nil, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/notifications?unread=true&limit=5", nil, testToken)
		s.Equal(http.StatusOK, rec.Code)
		s.JSONEq(`{"notifications":[]}`, rec.Body.String())
	})

	s.Run("error: 400 on bad query parameters", func() {
		cases := []struct {
			query string
			msg   string
		}{
			{query: "unread=maybe", msg: "unread must be true or false"},
			{query: "limit=ten", msg: "limit must be a positive number"},
			{query: "limit=-1", msg: "limit must be a positive number"},
		}
		for _, tc := range cases {
			s.Run(tc.query, func() {
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/notifications?"+tc.query, nil, testToken)
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, tc.msg)
			})
		}
	})
}

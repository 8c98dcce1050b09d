//go:build unit

package api_test

import (
	"net/http"
	nethttptest "net/http/httptest"
	"strings"
	"testing"
	"time"

	"ride-together/internal/handler/api"
	resdto "ride-together/internal/handler/dto/response"
	"ride-together/internal/infra/changefeed"
	"ride-together/internal/pkg/config"
	"ride-together/internal/usecase/queries"
	"ride-together/internal/usecase/shared"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/suite"
)

type StreamHandlerTestSuite struct {
	suite.Suite
	server    *nethttptest.Server
	broker    *changefeed.Broker
	requester uuid.UUID
}

func (s *StreamHandlerTestSuite) SetupSubTest() {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	s.broker = changefeed.NewBroker()
	s.requester = uuid.New()

	q := queries.NewBookingQueries(nil, nil, nil, nil, s.broker)
	h := api.NewStreamHandler(q, config.NewTestConfig())
	router.GET("/bookings/stream", fakeAuth(s.requester), h.Stream)

	s.server = nethttptest.NewServer(router)
}

func (s *StreamHandlerTestSuite) TearDownSubTest() {
	s.server.Close()
}

func TestStreamHandlerSuite(t *testing.T) {
	suite.Run(t, new(StreamHandlerTestSuite))
}

func (s *StreamHandlerTestSuite) dial(query string) *websocket.Conn {
	url := "ws" + strings.TrimPrefix(s.server.URL, "http") + "/bookings/stream" + query
	header := http.Header{"Authorization": []string{"Bearer " + testToken}}
	conn, resp, err := websocket.DefaultDialer.Dial(url, header)
	s.Require().NoError(err)
	s.Equal(http.StatusSwitchingProtocols, resp.StatusCode)
	s.T().Cleanup(func() { _ = conn.Close() })

	var hello map[string]string
	s.Require().NoError(conn.ReadJSON(&hello))
	s.Equal("connected", hello["kind"])
	return conn
}

func (s *StreamHandlerTestSuite) read(conn *websocket.Conn) resdto.ChangeResponse {
	s.Require().NoError(conn.SetReadDeadline(time.Now().Add(2 * time.Second)))
	var frame resdto.ChangeResponse
	s.Require().NoError(conn.ReadJSON(&frame))
	return frame
}

func (s *StreamHandlerTestSuite) decided(status string, users ...uuid.UUID) shared.ChangeEvent {
	return shared.ChangeEvent{
		Collection: shared.CollectionBookings,
		Kind:       shared.EventBookingDecided,
		ID:         uuid.New(),
		Status:     status,
		UserIDs:    users,
		OccurredAt: fixedNow,
	}
}

func (s *StreamHandlerTestSuite) TestStream() {
	s.Run("success: an accept reaches the requester", func() {
		conn := s.dial("")
		owner := uuid.New()

		s.broker.Dispatch(s.decided("accepted", uuid.New()))
		accepted := s.decided("accepted", owner, s.requester)
		s.broker.Dispatch(accepted)

		frame := s.read(conn)
		s.Equal("bookings", frame.Collection)
		s.Equal(shared.EventBookingDecided, frame.Kind)
		s.Equal(accepted.ID, frame.ID)
		s.Equal("accepted", frame.Status)
	})

	s.Run("success: status filter drops other decisions", func() {
		conn := s.dial("?status=accepted")

		s.broker.Dispatch(s.decided("declined", s.requester))
		accepted := s.decided("accepted", s.requester)
		s.broker.Dispatch(accepted)

		frame := s.read(conn)
		s.Equal(accepted.ID, frame.ID)
	})

	s.Run("success: closing the socket unsubscribes", func() {
		conn := s.dial("")
		s.Equal(1, s.broker.Len())

		s.Require().NoError(conn.Close())
		s.Eventually(func() bool { return s.broker.Len() == 0 }, 2*time.Second, 10*time.Millisecond)
	})

	s.Run("error: unknown status filter", func() {
		url := "ws" + strings.TrimPrefix(s.server.URL, "http") + "/bookings/stream?status=maybe"
		header := http.Header{"Authorization": []string{"Bearer " + testToken}}
		_, resp, err := websocket.DefaultDialer.Dial(url, header)
		s.Require().Error(err)
		s.Equal(http.StatusBadRequest, resp.StatusCode)
	})

	s.Run("error: unauthenticated", func() {
		url := "ws" + strings.TrimPrefix(s.server.URL, "http") + "/bookings/stream"
		_, resp, err := websocket.DefaultDialer.Dial(url, nil)
		s.Require().Error(err)
		s.Equal(http.StatusUnauthorized, resp.StatusCode)
	})
}

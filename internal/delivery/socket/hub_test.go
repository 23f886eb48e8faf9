package socket

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/partyline/internal/delivery"
	"github.com/KirkDiggler/partyline/internal/models"
)

type HubTestSuite struct {
	suite.Suite
	hub      *Hub
	server   *httptest.Server
	received chan string
}

func (s *HubTestSuite) SetupTest() {
	s.hub = NewHub(&Config{SendBuffer: 4})
	s.received = make(chan string, 4)

	upgrader := websocket.Upgrader{}
	s.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		s.hub.Serve(context.Background(), r.URL.Query().Get("user"), conn, func(_ context.Context, userID, text string) {
			s.received <- userID + ":" + text
		})
	}))
}

func (s *HubTestSuite) TearDownTest() {
	s.server.Close()
}

func TestHubTestSuite(t *testing.T) {
	suite.Run(t, new(HubTestSuite))
}

func (s *HubTestSuite) dial(userID string) *websocket.Conn {
	url := "ws" + strings.TrimPrefix(s.server.URL, "http") + "/?user=" + userID
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	s.Require().NoError(err)
	s.Eventually(func() bool { return s.hub.Connected(userID) > 0 }, time.Second, 10*time.Millisecond)
	return conn
}

func (s *HubTestSuite) TestDeliverWritesJSON() {
	conn := s.dial("alice")
	defer conn.Close()

	err := s.hub.Deliver(context.Background(), &delivery.DeliverInput{
		User:         &models.User{ID: "alice"},
		Notification: &models.Notification{Title: "Round 1", Body: "hi", Action: models.ActionNextRound},
	})
	s.Require().NoError(err)

	_ = conn.SetReadDeadline(time.Now().Add(time.Second))
	_, msg, err := conn.ReadMessage()
	s.Require().NoError(err)

	var got models.Notification
	s.Require().NoError(json.Unmarshal(msg, &got))
	s.Equal("Round 1", got.Title)
	s.Equal(models.ActionNextRound, got.Action)
}

func (s *HubTestSuite) TestDeliverWithoutConnection() {
	err := s.hub.Deliver(context.Background(), &delivery.DeliverInput{
		User:         &models.User{ID: "nobody"},
		Notification: &models.Notification{Title: "x"},
	})
	s.ErrorIs(err, delivery.ErrNoChannel)
}

func (s *HubTestSuite) TestInboundFramesAreForwarded() {
	conn := s.dial("bob")
	defer conn.Close()

	s.Require().NoError(conn.WriteMessage(websocket.TextMessage, []byte("  vote alice ")))

	select {
	case got := <-s.received:
		s.Equal("bob:vote alice", got)
	case <-time.After(time.Second):
		s.Fail("inbound frame was not forwarded")
	}
}

func (s *HubTestSuite) TestDisconnectUnregisters() {
	conn := s.dial("carol")
	s.Require().NoError(conn.Close())

	s.Eventually(func() bool { return s.hub.Connected("carol") == 0 }, time.Second, 10*time.Millisecond)
	s.Equal(models.DeliveryChannelSocket, s.hub.Channel())
}

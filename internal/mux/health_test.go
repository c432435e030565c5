package mux

import (
	"net/http/httptest"
	"testing"

	"blackjack-server/pkg/room"

	"github.com/bmizerany/assert"
	"github.com/sirupsen/logrus"
)

func TestHealthHandler(t *testing.T) {
	casino := room.NewCasino(logrus.StandardLogger(), 0)
	ts := httptest.NewServer(NewMux("v1.2.3", casino))
	defer ts.Close()

	var expects healthResponse
	assertGet(t, ts, "/health", &expects, 200)
	assert.Equal(t, "OK", expects.Status)
	assert.Equal(t, "v1.2.3", expects.Version)
}

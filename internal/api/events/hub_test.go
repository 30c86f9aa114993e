package events

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"nhooyr.io/websocket"
	"nhooyr.io/websocket/wsjson"
)

type balancePayload struct {
	Balance int `json:"balance"`
}

type testMsg struct {
	T string         `json:"t"`
	M balancePayload `json:"m"`
}

func TestHubBroadcast(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	h := NewHub(func() []Msg {
		return []Msg{{T: "balance", M: balancePayload{Balance: 500}}}
	})
	go h.Run(ctx)

	srv := httptest.NewServer(http.HandlerFunc(h.ServeWS))
	defer srv.Close()

	conn, _, err := websocket.Dial(ctx, "ws"+strings.TrimPrefix(srv.URL, "http"), nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close(websocket.StatusNormalClosure, "")

	var msg testMsg
	if err := wsjson.Read(ctx, conn, &msg); err != nil {
		t.Fatalf("read snapshot: %v", err)
	}
	if msg.T != "balance" || msg.M.Balance != 500 {
		t.Fatalf("unexpected snapshot %+v", msg)
	}

	h.Publish(Msg{T: "balance", M: balancePayload{Balance: 510}})
	if err := wsjson.Read(ctx, conn, &msg); err != nil {
		t.Fatalf("read broadcast: %v", err)
	}
	if msg.M.Balance != 510 {
		t.Fatalf("expected balance 510, got %+v", msg)
	}
}

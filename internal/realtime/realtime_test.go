package realtime

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func eventServer(t *testing.T, frames []Message) *httptest.Server {
	t.Helper()
	upgrader := websocket.Upgrader{}
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ws, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			t.Error(err)
			return
		}
		defer ws.Close()

		// Wait for the client's ready frame so handlers are registered
		// before any event goes out.
		if _, _, err := ws.ReadMessage(); err != nil {
			return
		}

		for _, frame := range frames {
			if err := ws.WriteJSON(frame); err != nil {
				t.Error(err)
				return
			}
		}
		// Hold the connection open until the client hangs up.
		for {
			if _, _, err := ws.ReadMessage(); err != nil {
				return
			}
		}
	}))
}

func wsURL(server *httptest.Server) string {
	return "ws" + strings.TrimPrefix(server.URL, "http")
}

func waitFor(t *testing.T, ch <-chan string, want string) {
	t.Helper()
	select {
	case got := <-ch:
		assert.Equal(t, want, got)
	case <-time.After(2 * time.Second):
		t.Fatalf("timed out waiting for %q", want)
	}
}

func TestSubscribeDispatchesNamedEvents(t *testing.T) {
	server := eventServer(t, []Message{
		{Event: "task_created", Payload: json.RawMessage(`{"task_id":"t1"}`)},
		{Event: "unrelated", Payload: json.RawMessage(`{}`)},
		{Event: "task_updated", Payload: json.RawMessage(`{"task_id":"t2"}`)},
	})
	defer server.Close()

	conn, err := Dial(wsURL(server), "tok")
	require.NoError(t, err)
	defer conn.Close()

	created := make(chan string, 1)
	updated := make(chan string, 1)
	conn.Subscribe("task_created", func(payload json.RawMessage) {
		created <- string(payload)
	})
	conn.Subscribe("task_updated", func(payload json.RawMessage) {
		updated <- string(payload)
	})
	require.NoError(t, conn.Send("ready", nil))

	waitFor(t, created, `{"task_id":"t1"}`)
	waitFor(t, updated, `{"task_id":"t2"}`)
}

func TestResubscribeReplacesHandler(t *testing.T) {
	server := eventServer(t, []Message{
		{Event: "task_created", Payload: json.RawMessage(`{"n":1}`)},
	})
	defer server.Close()

	conn, err := Dial(wsURL(server), "")
	require.NoError(t, err)
	defer conn.Close()

	got := make(chan string, 2)
	conn.Subscribe("task_created", func(json.RawMessage) { got <- "first" })
	conn.Subscribe("task_created", func(json.RawMessage) { got <- "second" })
	require.NoError(t, conn.Send("ready", nil))

	waitFor(t, got, "second")
	select {
	case extra := <-got:
		t.Fatalf("replaced handler still fired: %q", extra)
	case <-time.After(100 * time.Millisecond):
	}
}

func TestUnsubscribeDropsHandler(t *testing.T) {
	server := eventServer(t, []Message{
		{Event: "task_deleted", Payload: json.RawMessage(`{}`)},
	})
	defer server.Close()

	conn, err := Dial(wsURL(server), "")
	require.NoError(t, err)
	defer conn.Close()

	fired := make(chan string, 1)
	conn.Subscribe("task_deleted", func(json.RawMessage) { fired <- "fired" })
	conn.Unsubscribe("task_deleted")
	require.NoError(t, conn.Send("ready", nil))

	select {
	case <-fired:
		t.Fatal("unsubscribed handler fired")
	case <-time.After(100 * time.Millisecond):
	}
}

func TestDoneClosesWhenServerHangsUp(t *testing.T) {
	upgrader := websocket.Upgrader{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ws, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			t.Error(err)
			return
		}
		ws.Close()
	}))
	defer server.Close()

	conn, err := Dial(wsURL(server), "")
	require.NoError(t, err)

	select {
	case <-conn.Done():
	case <-time.After(2 * time.Second):
		t.Fatal("Done was not closed after the server hung up")
	}
	conn.Close()
}

package server_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"ctchen222/BoardGameKit/internal/api/controller"
	"ctchen222/BoardGameKit/internal/binding"
	"ctchen222/BoardGameKit/internal/display"
	"ctchen222/BoardGameKit/internal/game"
	"ctchen222/BoardGameKit/internal/server"
	"ctchen222/BoardGameKit/pkg/proto"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type screenResponse struct {
	Success bool                `json:"success"`
	Code    int                 `json:"code"`
	Extras  proto.ScreenMessage `json:"extras"`
}

type terminatorFunc func(code int)

func (f terminatorFunc) Terminate(code int) { f(code) }

type fixture struct {
	http       *httptest.Server
	screen     *display.Screen
	terminated chan int
}

func newFixture(t *testing.T, webDir string) *fixture {
	t.Helper()
	gin.SetMode(gin.TestMode)

	f := &fixture{
		screen:     display.NewScreen(),
		terminated: make(chan int, 1),
	}
	registry, err := binding.NewRegistry(binding.Entry{
		ID:    "tictactoe",
		Title: "Tic Tac Toe",
		NewPane: func() binding.GamePane {
			return binding.NewTicTacToe(f.screen, game.PlayerX)
		},
	})
	require.NoError(t, err)
	registry.Freeze()

	dispatcher := binding.NewDispatcher(binding.NewMenu(registry, f.screen), terminatorFunc(func(code int) {
		f.terminated <- code
	}))
	ctx, cancel := context.WithCancel(context.Background())
	go dispatcher.Run(ctx)

	ctrl := controller.NewScreenController(dispatcher, f.screen, registry)
	srv := server.NewServer(ctrl, dispatcher, f.screen, webDir)
	f.http = httptest.NewServer(srv.Engine())

	t.Cleanup(func() {
		f.http.Close()
		cancel()
	})
	return f
}

func (f *fixture) postEvent(t *testing.T, body string) (*http.Response, screenResponse) {
	t.Helper()

	resp, err := http.Post(f.http.URL+"/api/events", "application/json", bytes.NewBufferString(body))
	require.NoError(t, err)
	defer resp.Body.Close()

	var out screenResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return resp, out
}

func TestGetScreen_StartsOnMenu(t *testing.T) {
	f := newFixture(t, "")

	resp, err := http.Get(f.http.URL + "/api/screen")
	require.NoError(t, err)
	defer resp.Body.Close()

	var out screenResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, out.Success)
	assert.Equal(t, binding.MenuPaneName, out.Extras.Pane)
	require.Len(t, out.Extras.Games, 1)
	assert.Equal(t, "tictactoe", out.Extras.Games[0].ID)
}

func TestListGames(t *testing.T) {
	f := newFixture(t, "")

	resp, err := http.Get(f.http.URL + "/api/games")
	require.NoError(t, err)
	defer resp.Body.Close()

	var out struct {
		Extras struct {
			List []proto.GameInfo `json:"list"`
		} `json:"extras"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, []proto.GameInfo{{ID: "tictactoe", Title: "Tic Tac Toe"}}, out.Extras.List)
}

func TestPostEvent_PlaysMoves(t *testing.T) {
	f := newFixture(t, "")

	resp, out := f.postEvent(t, `{"type":"game_selected","index":0}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, binding.TicTacToePaneName, out.Extras.Pane)
	assert.Equal(t, "Turn: X", out.Extras.Status)

	_, out = f.postEvent(t, `{"type":"cell_activated","index":4}`)
	assert.Equal(t, "X", out.Extras.Cells[4])
	assert.Equal(t, "Turn: O", out.Extras.Status)

	// Occupied cell: accepted request, unchanged screen.
	resp, out = f.postEvent(t, `{"type":"cell_activated","index":4}`)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "X", out.Extras.Cells[4])
	assert.Equal(t, "Turn: O", out.Extras.Status)

	_, out = f.postEvent(t, `{"type":"new_game","starting":"O"}`)
	assert.Equal(t, "Turn: O", out.Extras.Status)
	assert.Empty(t, out.Extras.Cells[4])

	_, out = f.postEvent(t, `{"type":"return_to_menu"}`)
	assert.Equal(t, binding.MenuPaneName, out.Extras.Pane)
}

func TestPostEvent_Rejects(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "malformed json", body: `{"type":`},
		{name: "missing index", body: `{"type":"cell_activated"}`},
		{name: "unknown type", body: `{"type":"teleport"}`},
		{name: "bad starting player", body: `{"type":"new_game","starting":"Z"}`},
		{name: "index out of range", body: `{"type":"cell_activated","index":9}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, "")
			f.postEvent(t, `{"type":"game_selected","index":0}`)

			resp, out := f.postEvent(t, tt.body)

			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
			assert.False(t, out.Success)
			assert.Equal(t, [game.BoardSize]string{}, f.screen.Snapshot().Cells)
		})
	}
}

func TestPostEvent_Exit(t *testing.T) {
	f := newFixture(t, "")

	resp, _ := f.postEvent(t, `{"type":"exit"}`)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	select {
	case code := <-f.terminated:
		assert.Equal(t, binding.ExitCode, code)
	case <-time.After(time.Second):
		t.Fatal("terminator was not called")
	}
}

func TestWebSocket_PushesScreenAfterEvents(t *testing.T) {
	f := newFixture(t, "")
	wsURL := "ws" + strings.TrimPrefix(f.http.URL, "http") + "/ws"

	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	defer conn.Close()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))

	var initial proto.ScreenMessage
	require.NoError(t, conn.ReadJSON(&initial))
	assert.Equal(t, binding.MenuPaneName, initial.Pane)

	require.NoError(t, conn.WriteJSON(map[string]any{"type": "game_selected", "index": 0}))
	require.NoError(t, conn.WriteJSON(map[string]any{"type": "cell_activated", "index": 8}))

	var last proto.ScreenMessage
	for last.Cells == nil || last.Cells[8] != "X" {
		require.NoError(t, conn.ReadJSON(&last))
	}
	assert.Equal(t, binding.TicTacToePaneName, last.Pane)
}

func TestWebSocket_InvalidFrameGetsError(t *testing.T) {
	f := newFixture(t, "")
	wsURL := "ws" + strings.TrimPrefix(f.http.URL, "http") + "/ws"

	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	defer conn.Close()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))

	var initial proto.ScreenMessage
	require.NoError(t, conn.ReadJSON(&initial))

	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte(`{"type":"cell_activated"}`)))

	var errMsg struct {
		Success bool   `json:"success"`
		Code    int    `json:"code"`
		Extras  string `json:"extras"`
	}
	require.NoError(t, conn.ReadJSON(&errMsg))
	assert.False(t, errMsg.Success)
	assert.Equal(t, http.StatusBadRequest, errMsg.Code)
}

func TestStaticFiles(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.html"), []byte("<title>Board Game Kit</title>"), 0o600))
	f := newFixture(t, dir)

	resp, err := http.Get(f.http.URL + "/")
	require.NoError(t, err)
	defer resp.Body.Close()

	var buf bytes.Buffer
	_, err = buf.ReadFrom(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, buf.String(), "Board Game Kit")
}

func TestWebSocket_RejectsForeignOrigin(t *testing.T) {
	f := newFixture(t, "")
	wsURL := "ws" + strings.TrimPrefix(f.http.URL, "http") + "/ws"

	// Given: a page from another site opening the socket
	header := http.Header{"Origin": {"https://evil.example"}}

	// When: dialing
	conn, resp, err := websocket.DefaultDialer.Dial(wsURL, header)

	// Then: the handshake is refused and nothing reaches the terminator
	require.ErrorIs(t, err, websocket.ErrBadHandshake)
	if conn != nil {
		conn.Close()
	}
	require.NotNil(t, resp)
	resp.Body.Close()
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	select {
	case code := <-f.terminated:
		t.Fatalf("terminator called with %d", code)
	case <-time.After(100 * time.Millisecond):
	}
}

func TestWebSocket_AcceptsSameOrigin(t *testing.T) {
	f := newFixture(t, "")
	wsURL := "ws" + strings.TrimPrefix(f.http.URL, "http") + "/ws"

	conn, _, err := websocket.DefaultDialer.Dial(wsURL, http.Header{"Origin": {f.http.URL}})
	require.NoError(t, err)
	defer conn.Close()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))

	var initial proto.ScreenMessage
	require.NoError(t, conn.ReadJSON(&initial))
	assert.Equal(t, binding.MenuPaneName, initial.Pane)
}

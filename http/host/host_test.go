package host_test

import (
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xy-planning-network/respond/http/host"
	tt "github.com/xy-planning-network/respond/http/template/templatetest"
	"github.com/xy-planning-network/respond/logger"
)

func quietLogger() logger.Logger {
	return logger.New(logger.WithLogger(log.New(io.Discard, "", 0)))
}

// newWriter builds a *host.Writer over a recorder for a GET request with the given Accept header.
func newWriter(t *testing.T, accept string, opts ...host.ResponderOptFn) (*host.Writer, *httptest.ResponseRecorder) {
	t.Helper()

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	if accept != "" {
		r.Header.Set("Accept", accept)
	}

	w := httptest.NewRecorder()
	opts = append([]host.ResponderOptFn{host.WithLogger(quietLogger())}, opts...)
	return host.NewResponder(opts...).Host(w, r), w
}

func TestSend(t *testing.T) {
	tcs := []struct {
		name   string
		status int
		body   any
		ct     string
		out    string
	}{
		{"nil", 0, nil, "", ""},
		{"string", 0, "hello", "text/plain; charset=utf-8", "hello"},
		{"bytes", http.StatusCreated, []byte{0x1, 0x2}, "application/octet-stream", "\x01\x02"},
		{"map", 0, map[string]int{"a": 1}, "application/json; charset=utf-8", "{\"a\":1}\n"},
		{"no-content", http.StatusNoContent, "dropped", "text/plain; charset=utf-8", ""},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			// Arrange
			hw, w := newWriter(t, "")
			if tc.status != 0 {
				hw.SetStatus(tc.status)
			}

			// Act
			err := hw.Send(tc.body)

			// Assert
			require.Nil(t, err)
			require.True(t, hw.Written())
			require.Equal(t, hw.Status(), w.Code)
			require.Equal(t, tc.ct, w.Header().Get("Content-Type"))
			require.Equal(t, tc.out, w.Body.String())
		})
	}
}

func TestSendTwice(t *testing.T) {
	// Arrange
	hw, w := newWriter(t, "")
	require.Nil(t, hw.Send("first"))

	// Act
	err := hw.Send("second")

	// Assert
	require.ErrorIs(t, err, host.ErrWritten)
	require.Equal(t, "first", w.Body.String())
}

func TestSetHeader(t *testing.T) {
	// Arrange
	hw, w := newWriter(t, "")
	w.Header().Set("Upgrade", "old")

	// Act
	hw.SetHeader("Upgrade", "HTTP/2.0", "websocket")

	// Assert
	require.Equal(t, []string{"HTTP/2.0", "websocket"}, w.Header().Values("Upgrade"))

	// Act
	hw.SetHeader("Upgrade")

	// Assert
	require.Empty(t, w.Header().Values("Upgrade"))
}

func TestJSON(t *testing.T) {
	// Arrange
	hw, w := newWriter(t, "")
	hw.SetStatus(http.StatusTeapot)

	// Act
	err := hw.JSON(struct {
		Name string `json:"name"`
	}{"x"})

	// Assert
	require.Nil(t, err)
	require.Equal(t, http.StatusTeapot, w.Code)
	require.Equal(t, "application/json; charset=utf-8", w.Header().Get("Content-Type"))
	require.JSONEq(t, `{"name":"x"}`, w.Body.String())
}

func TestJSONUnsupported(t *testing.T) {
	// Arrange
	hw, w := newWriter(t, "")

	// Act
	err := hw.JSON(func() {})

	// Assert
	require.NotNil(t, err)
	require.False(t, hw.Written())
	require.Zero(t, w.Body.Len())
}

func TestRender(t *testing.T) {
	// Arrange
	p := tt.NewParser(tt.NewMockFile("views/profile.tmpl", []byte(`<p>{{ .name }}</p>`)))
	tcs := []struct {
		name string
		view string
	}{
		{"default-ext", "profile"},
		{"explicit-ext", "profile.tmpl"},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			hw, w := newWriter(t, "", host.WithParser(p), host.WithViews("views", ".tmpl"))

			// Act
			err := hw.Render(tc.view, map[string]string{"name": "x"})

			// Assert
			require.Nil(t, err)
			require.Equal(t, http.StatusOK, w.Code)
			require.Equal(t, "text/html; charset=utf-8", w.Header().Get("Content-Type"))
			require.Equal(t, "<p>x</p>", w.Body.String())
		})
	}
}

func TestRenderErrors(t *testing.T) {
	t.Run("No-Parser", func(t *testing.T) {
		// Arrange
		hw, _ := newWriter(t, "")

		// Act
		err := hw.Render("profile", nil)

		// Assert
		require.ErrorIs(t, err, host.ErrNoParser)
		require.False(t, hw.Written())
	})

	t.Run("Missing-View", func(t *testing.T) {
		// Arrange
		hw, _ := newWriter(t, "", host.WithParser(tt.NewParser()))

		// Act
		err := hw.Render("profile", nil)

		// Assert
		require.NotNil(t, err)
		require.False(t, hw.Written())
	})
}

func TestRedirect(t *testing.T) {
	// Arrange
	hw, w := newWriter(t, "")

	// Act
	err := hw.Redirect(http.StatusTemporaryRedirect, "/elsewhere")

	// Assert
	require.Nil(t, err)
	require.Equal(t, http.StatusTemporaryRedirect, w.Code)
	require.Equal(t, "/elsewhere", w.Header().Get("Location"))
	require.ErrorIs(t, hw.Redirect(http.StatusFound, "/again"), host.ErrWritten)
}

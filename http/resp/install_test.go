package resp_test

import (
	"errors"
	"net/http"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
	"github.com/xy-planning-network/respond/http/resp"
	"github.com/xy-planning-network/respond/http/resp/resptest"
)

func TestInstallIdempotent(t *testing.T) {
	// Arrange
	custom := resp.NewError("NotFound", http.StatusNotFound, resp.Msg("custom"))
	rw, _ := newResponse(t, resp.OverrideErr("NotFound", func(...resp.ErrFn) *resp.Error { return custom }))

	// Act
	actual := resp.Install(rw, resp.OverrideErr("NotFound", func(...resp.ErrFn) *resp.Error { return nil }))

	// Assert
	require.Same(t, rw, actual)
	require.Same(t, custom, actual.NotFound())
}

func TestInstallFirstRegistrantWins(t *testing.T) {
	// Arrange
	first := resp.NewError("NotFound", http.StatusNotFound, resp.Msg("first"))
	second := resp.NewError("NotFound", http.StatusNotFound, resp.Msg("second"))

	// Act
	rw, _ := newResponse(t,
		resp.OverrideErr("NotFound", func(...resp.ErrFn) *resp.Error { return first }),
		resp.OverrideErr("NotFound", func(...resp.ErrFn) *resp.Error { return second }),
	)

	// Assert
	require.Same(t, first, rw.NotFound())
	require.Equal(t, "Conflict", rw.Conflict().Category)
}

func TestInstallIgnoresMismatchedOverrides(t *testing.T) {
	// Arrange
	bad := func(...resp.ErrFn) *resp.Error { return nil }
	rw, h := newResponse(t,
		resp.OverrideErr("Found", bad),
		resp.OverrideErr("Accepted", bad),
		resp.OverrideErr("NotFound", nil),
		resp.OverrideRedirect("NoContent", func(resp.Host, string) error { return errors.New("nope") }),
		resp.OverrideEmpty("Found", func(resp.Host) error { return errors.New("nope") }),
	)

	h.EXPECT().Redirect(http.StatusFound, "/home").Return(nil)
	h.EXPECT().SetStatus(http.StatusNoContent)
	h.EXPECT().Send(nil).Return(nil)

	// Act + Assert
	require.NotNil(t, rw.NotFound())
	require.Nil(t, rw.Found("/home"))
	require.Nil(t, rw.NoContent())
}

func TestInstallOverrideBehaviors(t *testing.T) {
	// Arrange
	var calls []string
	h := resptest.NewMockHost(gomock.NewController(t))
	rw := resp.Install(h,
		resp.WithLogger(quietLogger()),
		resp.OverrideRedirect("Found", func(hx resp.Host, location string) error {
			require.Same(t, h, hx)
			calls = append(calls, "Found "+location)
			return nil
		}),
		resp.OverrideEmpty("Processing", func(resp.Host) error {
			calls = append(calls, "Processing")
			return nil
		}),
		resp.OverrideSwitchingProtocols(func(_ resp.Host, protocols []string) error {
			calls = append(calls, "SwitchingProtocols")
			return nil
		}),
		resp.OverrideUpgradeRequired(func(_ resp.Host, protocols []string, opts ...resp.ErrFn) *resp.Error {
			calls = append(calls, "UpgradeRequired")
			return resp.NewError("UpgradeRequired", http.StatusUpgradeRequired, opts...)
		}),
		resp.OverrideOk(func(_ resp.Host, view string, body any, apiMode bool) error {
			calls = append(calls, "Ok "+view)
			return nil
		}),
	)

	// Act
	require.Nil(t, rw.Found("/x"))
	require.Nil(t, rw.Processing())
	require.Nil(t, rw.SwitchingProtocols([]string{"websocket"}))
	require.Equal(t, 426, rw.UpgradeRequired([]string{"HTTP/2.0"}).Status)
	require.Nil(t, rw.Ok("profile", 1, false))

	// Assert
	require.Equal(t, []string{"Found /x", "Processing", "SwitchingProtocols", "UpgradeRequired", "Ok profile"}, calls)
	require.Same(t, h, rw.Host())
}

func TestRedirects(t *testing.T) {
	rw, h := newResponse(t)

	for _, tc := range []struct {
		name   string
		fn     func(string) error
		status int
	}{
		{"MovedPermanently", rw.MovedPermanently, http.StatusMovedPermanently},
		{"Found", rw.Found, http.StatusFound},
		{"TemporaryRedirect", rw.TemporaryRedirect, http.StatusTemporaryRedirect},
		{"PermanentRedirect", rw.PermanentRedirect, http.StatusPermanentRedirect},
	} {
		t.Run(tc.name, func(t *testing.T) {
			// Arrange
			h.EXPECT().Redirect(tc.status, "https://example.com/next").Return(nil)

			// Act + Assert
			require.Nil(t, tc.fn("https://example.com/next"))
		})
	}
}

func TestEmptyResponses(t *testing.T) {
	rw, h := newResponse(t)

	for _, tc := range []struct {
		name   string
		fn     func() error
		status int
	}{
		{"NotModified", rw.NotModified, http.StatusNotModified},
		{"NoContent", rw.NoContent, http.StatusNoContent},
		{"Continue", rw.Continue, http.StatusContinue},
		{"Processing", rw.Processing, http.StatusProcessing},
	} {
		t.Run(tc.name, func(t *testing.T) {
			// Arrange
			gomock.InOrder(
				h.EXPECT().SetStatus(tc.status),
				h.EXPECT().Send(nil).Return(nil),
			)

			// Act + Assert
			require.Nil(t, tc.fn())
		})
	}
}

func TestSwitchingProtocols(t *testing.T) {
	// Arrange
	rw, h := newResponse(t)
	gomock.InOrder(
		h.EXPECT().SetHeader("Upgrade", "h2c", "websocket"),
		h.EXPECT().SetStatus(http.StatusSwitchingProtocols),
		h.EXPECT().Send(nil).Return(nil),
	)

	// Act + Assert
	require.Nil(t, rw.SwitchingProtocols([]string{"h2c", "websocket"}))
}

func TestBehaviorErrorsPropagate(t *testing.T) {
	// Arrange
	expected := errors.New("broken pipe")
	rw, h := newResponse(t)
	h.EXPECT().SetStatus(http.StatusNoContent)
	h.EXPECT().Send(nil).Return(expected)

	// Act + Assert
	require.Same(t, expected, rw.NoContent())
}

func TestResponseDelegatesHost(t *testing.T) {
	// Arrange
	rw, h := newResponse(t)
	gomock.InOrder(
		h.EXPECT().SetStatus(http.StatusAccepted),
		h.EXPECT().SetHeader("X-Queue", "1"),
		h.EXPECT().JSON("queued").Return(nil),
	)

	// Act + Assert
	rw.SetStatus(http.StatusAccepted)
	rw.SetHeader("X-Queue", "1")
	require.Nil(t, rw.JSON("queued"))
}

package resp_test

import (
	"io"
	"log"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/xy-planning-network/respond/http/resp"
	"github.com/xy-planning-network/respond/http/resp/resptest"
	"github.com/xy-planning-network/respond/logger"
)

// newResponse installs helpers onto a fresh MockHost with a silent logger.
func newResponse(t *testing.T, opts ...resp.InstallOptFn) (*resp.Response, *resptest.MockHost) {
	t.Helper()

	h := resptest.NewMockHost(gomock.NewController(t))
	opts = append([]resp.InstallOptFn{resp.WithLogger(quietLogger())}, opts...)
	return resp.Install(h, opts...), h
}

func quietLogger() logger.Logger {
	return logger.New(logger.WithLogger(log.New(io.Discard, "", 0)), logger.WithLevel(logger.LogLevelDebug))
}

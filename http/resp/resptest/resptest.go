package resptest

import (
	"fmt"

	"github.com/xy-planning-network/respond/http/resp"
)

//go:generate mockgen -destination=mock_host.go -package=resptest github.com/xy-planning-network/respond/http/resp Host

// Pick returns a function suitable for gomock's DoAndReturn on MockHost.Format
// that calls the strategy answering mediaType, as if the client asked for it.
func Pick(mediaType string) func(resp.Strategies) error {
	return func(s resp.Strategies) error {
		fn, ok := s.For(mediaType)
		if !ok {
			return fmt.Errorf("no strategy for %q", mediaType)
		}

		return fn()
	}
}

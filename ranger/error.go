package ranger

import "github.com/xy-planning-network/respond"

var (
	ErrBadConfig = respond.ErrBadConfig
)

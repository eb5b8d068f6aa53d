package cli

import "github.com/viant/sts"

type Options struct {
	sts.Options
	ConfigURL string `short:"c" long:"config" description:"options file (yaml or json)"`
	Force     bool   `short:"f" long:"force" description:"force token refresh"`
	SignOut   bool   `long:"signout" description:"destroy persisted session"`
	JSON      bool   `short:"j" long:"json" description:"print the session record instead of the token"`
}

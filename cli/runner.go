package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/jessevdk/go-flags"
	"github.com/viant/sts"
)

func Run(args []string) error {
	return RunWithWriter(context.Background(), args, os.Stdout)
}

// RunWithWriter runs the command writing its output to w
func RunWithWriter(ctx context.Context, args []string, w io.Writer) error {
	options := &Options{}
	if _, err := flags.ParseArgs(options, args); err != nil {
		return err
	}
	if options.ConfigURL != "" {
		loaded, err := sts.LoadOptions(ctx, options.ConfigURL)
		if err != nil {
			return err
		}
		// flags take precedence over the config file
		loaded.Merge(&options.Options)
		options.Options = *loaded
	}
	aSession, closer, err := sts.NewSession(ctx, &options.Options)
	if err != nil {
		return err
	}
	defer closer.Close()
	if options.SignOut {
		return aSession.Destroy(ctx)
	}
	accessToken, err := aSession.GetToken(ctx, options.Force)
	if err != nil {
		return err
	}
	if options.JSON {
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(aSession.ToJSON())
	}
	_, err = fmt.Fprintln(w, accessToken)
	return err
}

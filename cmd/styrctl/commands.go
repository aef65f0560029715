package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"styr/internal/bootstrap"
	"styr/internal/config"
	"styr/internal/gateway"
	"styr/internal/logging"
)

var errFailedResults = errors.New("one or more operations failed")

type cli struct {
	configPath string
	out        io.Writer
	errOut     io.Writer
}

func newRootCommand(out, errOut io.Writer) *cobra.Command {
	c := &cli{out: out, errOut: errOut}
	root := &cobra.Command{
		Use:           "styrctl",
		Short:         "Manage styr base directories",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOut(out)
	root.SetErr(errOut)
	root.PersistentFlags().StringVar(&c.configPath, "config", config.DefaultPath(), "path to config.yaml")

	root.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "Print base directories in order",
			Args:  cobra.NoArgs,
			RunE:  c.withGateway(c.list),
		},
		&cobra.Command{
			Use:   "add <path>...",
			Short: "Add base directories",
			Args:  cobra.MinimumNArgs(1),
			RunE:  c.withGateway(c.add),
		},
		&cobra.Command{
			Use:   "remove <path>...",
			Short: "Remove base directories",
			Args:  cobra.MinimumNArgs(1),
			RunE:  c.withGateway(c.remove),
		},
	)
	return root
}

type gatewayRunE func(api *gateway.API, args []string) error

func (c *cli) withGateway(fn gatewayRunE) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(c.configPath)
		if err != nil {
			return c.fail(err)
		}
		logger, err := logging.New(c.errOut, logging.Config{Level: "warn", Format: cfg.Log.Format})
		if err != nil {
			return c.fail(err)
		}
		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}
		store, err := bootstrap.OpenStore(ctx, cfg, logger)
		if err != nil {
			return c.fail(err)
		}
		defer store.Close()

		if err := fn(gateway.NewAPI(store, nil, logger), args); err != nil {
			return c.fail(err)
		}
		return nil
	}
}

func (c *cli) fail(err error) error {
	fmt.Fprintf(c.errOut, "styrctl: %v\n", err)
	return err
}

func (c *cli) list(api *gateway.API, _ []string) error {
	for _, dir := range api.GetBaseDirs() {
		fmt.Fprintln(c.out, dir)
	}
	return nil
}

func (c *cli) add(api *gateway.API, args []string) error {
	failed := false
	for _, dir := range args {
		res := api.AddBaseDir(dir)
		switch {
		case !res.Success:
			failed = true
			fmt.Fprintf(c.out, "failed   %s: %s\n", dir, res.Error)
		case res.AlreadyExists:
			fmt.Fprintf(c.out, "exists   %s\n", dir)
		default:
			fmt.Fprintf(c.out, "added    %s\n", dir)
		}
	}
	if failed {
		return errFailedResults
	}
	return nil
}

func (c *cli) remove(api *gateway.API, args []string) error {
	failed := false
	for _, dir := range args {
		res := api.RemoveBaseDir(dir)
		switch {
		case !res.Success:
			failed = true
			fmt.Fprintf(c.out, "failed   %s: %s\n", dir, res.Error)
		case res.Removed:
			fmt.Fprintf(c.out, "removed  %s\n", dir)
		default:
			fmt.Fprintf(c.out, "absent   %s\n", dir)
		}
	}
	if failed {
		return errFailedResults
	}
	return nil
}

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aviary-ai/aviary/config"
	"github.com/aviary-ai/aviary/schema"
)

func runAsk(cmd *cobra.Command, args []string) error {
	setLogLevel(logLevelFlag)
	cfg, err := config.Load(configFlag)
	if err != nil {
		return err
	}
	orch, err := buildOrchestrator(cfg)
	if err != nil {
		return err
	}
	query := strings.Join(args, " ")
	resp, err := orch.Handle(cmd.Context(), schema.NewRequest(query))
	if err != nil {
		return err
	}
	printResponse(cmd, resp)
	return nil
}

func printResponse(cmd *cobra.Command, resp *schema.Response) {
	fmt.Fprintln(cmd.OutOrStdout(), resp.Content)
	if citations := resp.Citations(); len(citations) > 0 {
		fmt.Fprintln(cmd.OutOrStdout())
		fmt.Fprintln(cmd.OutOrStdout(), "Sources:")
		for _, c := range citations {
			if c.Title != "" {
				fmt.Fprintf(cmd.OutOrStdout(), "- %s (%s)\n", c.Title, c.Source)
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "- %s\n", c.Source)
			}
		}
	}
	if resp.Status != schema.StatusOK {
		logger.Warnw("request not fully answered", "status", resp.Status)
	}
}

package main

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aviary-ai/aviary/config"
	"github.com/aviary-ai/aviary/schema"
)

func runChat(cmd *cobra.Command, args []string) error {
	setLogLevel(logLevelFlag)
	cfg, err := config.Load(configFlag)
	if err != nil {
		return err
	}
	orch, err := buildOrchestrator(cfg)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), "aviary chat. Type 'exit' to quit.")
	scanner := bufio.NewScanner(cmd.InOrStdin())
	var history []schema.Turn
	for {
		fmt.Fprint(cmd.OutOrStdout(), "> ")
		if !scanner.Scan() {
			break
		}
		query := strings.TrimSpace(scanner.Text())
		if query == "" {
			continue
		}
		if query == "exit" || query == "quit" {
			break
		}
		req := schema.NewRequest(query).WithContext(history)
		resp, err := orch.Handle(cmd.Context(), req)
		if err != nil {
			return err
		}
		printResponse(cmd, resp)
		history = append(history,
			schema.Turn{Role: "user", Content: query},
			schema.Turn{Role: "assistant", Content: resp.Content},
		)
	}
	return scanner.Err()
}

package main

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "aviary",
	Short: "aviary - multi agent assistant for airline operations",
}

var askCmd = &cobra.Command{
	Use:   "ask [question]",
	Short: "Answer a single question and exit",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runAsk,
}

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Interactive chat keeping the conversation context",
	RunE:  runChat,
}

var ingestCmd = &cobra.Command{
	Use:   "ingest [file...]",
	Short: "Ingest documents into the vector store",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runIngest,
}

var (
	configFlag   string
	logLevelFlag string
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "aviary.yaml", "Config file path or URL")
	rootCmd.PersistentFlags().StringVar(&logLevelFlag, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.AddCommand(askCmd, chatCmd, ingestCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

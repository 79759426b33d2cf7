package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aviary-ai/aviary/components"
	"github.com/aviary-ai/aviary/components/document"
	"github.com/aviary-ai/aviary/config"
	"github.com/aviary-ai/aviary/ingest"
)

var collectionFlag string

func init() {
	ingestCmd.Flags().StringVar(&collectionFlag, "collection", "documents", "Vector store collection to ingest into")
}

func runIngest(cmd *cobra.Command, args []string) error {
	setLogLevel(logLevelFlag)
	cfg, err := config.Load(configFlag)
	if err != nil {
		return err
	}
	emb, err := buildEmbedder(cfg)
	if err != nil {
		return err
	}
	engine, err := buildEngine()
	if err != nil {
		return err
	}
	pipeline, err := ingest.New(
		ingest.WithEmbedder(emb),
		ingest.WithEngine(engine),
		ingest.WithCollection(collectionFlag),
	)
	if err != nil {
		return err
	}

	var usage components.ApiUsage
	total := 0
	for _, arg := range args {
		src, err := openSource(arg)
		if err != nil {
			return err
		}
		n, err := pipeline.Ingest(cmd.Context(), src, &usage)
		if err != nil {
			return fmt.Errorf("ingest %s: %w", arg, err)
		}
		logger.Infow("ingested", "source", arg, "chunks", n)
		total += n
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Ingested %d chunks into %q (tokens: %d).\n", total, collectionFlag, usage.InputTokens)
	return nil
}

func openSource(arg string) (document.ParserReader, error) {
	if strings.HasPrefix(arg, "http://") || strings.HasPrefix(arg, "https://") {
		return document.NewHttp(document.WithHttpURL(arg))
	}
	return document.NewFile(arg)
}

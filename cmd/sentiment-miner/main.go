package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/spacesedan/sentiment-miner/config"
	"github.com/spacesedan/sentiment-miner/internal/analyzer"
	"github.com/spacesedan/sentiment-miner/internal/chat"
	"github.com/spacesedan/sentiment-miner/internal/csvio"
	"github.com/spacesedan/sentiment-miner/internal/logging"
	"github.com/spacesedan/sentiment-miner/internal/output"
	"github.com/spacesedan/sentiment-miner/internal/pipeline"
)

var (
	version   = "dev"
	commit    = "none"
	buildDate = "unknown"
)

const interruptExitCode = 130

func main() {
	config.LoadEnv()
	logging.InitLogger()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rootCmd := &cobra.Command{
		Use:   "sentiment-miner",
		Short: "Multilingual sentiment analysis and topic extraction for CSV feedback",
		Long: `Sentiment-miner classifies the sentiment of customer feedback rows
and extracts English topics from them, whatever language the feedback
was written in, then aggregates the topics into a frequency table.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(newAnalyzeCmd())
	rootCmd.AddCommand(newChatCmd())
	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version info",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("sentiment-miner %s (%s, %s)\n", version, commit, buildDate)
		},
	})

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			fmt.Fprintln(os.Stderr, "\nInterrupted by user")
			os.Exit(interruptExitCode)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newAnalyzeCmd() *cobra.Command {
	var (
		inputPath  string
		columnName string
		outputPath string
		noSave     bool
		limit      int
	)

	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Analyze sentiment and topics in a CSV column",
		RunE: func(cmd *cobra.Command, args []string) error {
			backend := config.GetLLMBackend()
			slog.Info("[Main] Using LLM backend", slog.String("backend", backend))

			a, err := analyzer.ForBackend(backend)
			if err != nil {
				return err
			}

			texts, err := csvio.ReadColumn(inputPath, columnName)
			if err != nil {
				return err
			}

			if limit > 0 && limit < len(texts) {
				texts = texts[:limit]
				slog.Info("[Main] Limited input rows", slog.Int("limit", limit))
			}
			slog.Info("[Main] Loaded feedback rows",
				slog.Int("rows", len(texts)),
				slog.String("column", columnName))

			batchID := pipeline.NewBatchID()
			results, err := pipeline.AnalyzeBatch(cmd.Context(), a, texts, pipeline.LogProgress(batchID))
			if err != nil {
				return err
			}

			output.RenderResults(os.Stdout, results)
			output.RenderTopicCloud(os.Stdout, pipeline.AggregateTopics(results))

			if !noSave {
				path := outputPath
				if path == "" {
					path = csvio.OutputPath(inputPath)
				}
				if err := csvio.SaveResults(results, path); err != nil {
					return err
				}
				fmt.Printf("\nResults saved to: %s\n", path)
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&inputPath, "input", "i", "", "Path to input CSV file")
	cmd.Flags().StringVarP(&columnName, "column", "c", "", "Name of the column containing feedback text")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Path for output CSV file (default: <input>_analyzed.csv)")
	cmd.Flags().BoolVar(&noSave, "no-save", false, "Display results in console only, don't save to file")
	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "Limit number of rows to process (for testing)")
	cmd.MarkFlagRequired("input")
	cmd.MarkFlagRequired("column")

	return cmd
}

func newChatCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "chat",
		Short: "Start an interactive QA session",
		RunE: func(cmd *cobra.Command, args []string) error {
			return chat.Run(cmd.Context(), os.Stdin, os.Stdout)
		},
	}
}

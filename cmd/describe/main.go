package main

import (
	"encoding/json"
	"fmt"
	"log"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"climaseguro_backend/internal/app/di"
)

// result は--json出力の1行分です。
type result struct {
	Path        string `json:"path"`
	Description string `json:"description"`
}

func newRootCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "describe [paths...]",
		Short: "Describe residence photos with Gemini",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), nil))
			describer, live, err := di.NewDescriber(logger)
			if err != nil {
				return err
			}
			if !live {
				log.Println("[WARN] GEMINI_API_KEY is not set. Printing offline descriptions.")
			}

			descriptions := describer.DescribeImages(cmd.Context(), args)

			out := cmd.OutOrStdout()
			if asJSON {
				results := make([]result, 0, len(args))
				for i, p := range args {
					results = append(results, result{Path: p, Description: descriptions[i]})
				}
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(results)
			}
			for i, p := range args {
				if _, err := fmt.Fprintf(out, "%s: %s\n", filepath.Base(p), descriptions[i]); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print results as a JSON array")
	return cmd
}

func main() {
	// .envを読み込む
	if err := godotenv.Load(".env"); err != nil {
		log.Println("[INFO] .env not found; using system environment variables")
	}

	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/talentscout/internal/app"
	"github.com/abhisek/talentscout/internal/evaluator"
	"github.com/abhisek/talentscout/internal/interview"
	"github.com/abhisek/talentscout/internal/llm"
	"github.com/abhisek/talentscout/internal/questionbank"
	"github.com/abhisek/talentscout/internal/sentiment"
	"github.com/abhisek/talentscout/internal/store"
	"github.com/abhisek/talentscout/internal/transcript"
)

// runInterview opens the store, builds dependencies, and launches the
// TUI. A missing or broken provider is not fatal; question generation
// and answer evaluation fall back to their offline paths.
func runInterview(cmd *cobra.Command) error {
	ctx := cmd.Context()
	language, _ := cmd.Flags().GetString("lang")

	st, dataDir, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer st.Close()

	transcriptsDir, err := store.TranscriptsDir(dataDir)
	if err != nil {
		return fmt.Errorf("create transcripts dir: %w", err)
	}

	var provider llm.Provider
	p, err := llm.NewProviderFromEnv(ctx, st.EventRepo())
	if err != nil {
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "Running with template questions and heuristic evaluation.")
	} else {
		provider = p
	}

	var analyzer sentiment.Analyzer = sentiment.NewLexiconAnalyzer()
	if provider != nil {
		analyzer = sentiment.NewLLMAnalyzer(provider)
	}

	gen := questionbank.New(provider, questionbank.DefaultConfig())
	eval := evaluator.New(provider, evaluator.DefaultConfig())
	recorder := transcript.NewFileRecorder(transcriptsDir, st, analyzer)
	ctrl := interview.NewController(gen, eval, recorder)

	return app.Run(ctrl, language)
}

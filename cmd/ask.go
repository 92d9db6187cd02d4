package cmd

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/malagasr/supply-alert/internal/assistant"
	"github.com/malagasr/supply-alert/internal/rank"
)

var askCmd = &cobra.Command{
	Use:   "ask <question>",
	Short: "Ask the supply chain assistant",
	Long: `Ask a free-text question. The assistant ranks current news against the
question, embeds the most relevant items as context, and forwards both to
the configured model. Without an API key (or when the call fails) it
answers with rule-based text instead.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAsk,
}

func runAsk(cmd *cobra.Command, args []string) error {
	question := strings.Join(args, " ")

	builder, cfg, err := newBuilder()
	if err != nil {
		return err
	}

	// Rank all current news against the question and keep a bounded
	// top slice as prompt context.
	scored := rank.Score(question, builder.AllNews(cmd.Context()))
	top := rank.Top(scored, cfg.GetContextSize())

	var baseURL, model string
	if cfg.AI != nil {
		baseURL = cfg.AI.BaseURL
		model = cfg.AI.Model
	}
	logger := log.New(os.Stderr, "", log.LstdFlags)
	client := assistant.NewClient(cfg.AIKey(), model, baseURL, logger)

	answer := client.Ask(cmd.Context(), question, top)
	if answer.Fallback {
		fmt.Println(timeStyle.Render("(rule-based answer, assistant unavailable)"))
	}
	fmt.Println(answer.Text)
	return nil
}

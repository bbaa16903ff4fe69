package cli

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/sciencestack-ai/sciencestack-tokens/ast"
	"github.com/sciencestack-ai/sciencestack-tokens/match"
	"github.com/sciencestack-ai/sciencestack-tokens/normalize"
)

var (
	locateExcerpt   string
	locateFormat    string
	locateThreshold float64
	locateContext   int
)

var locateCmd = &cobra.Command{
	Use:   "locate <doc.json>",
	Short: "Locate an excerpt in a document's rendered output",
	Long: `Locate an excerpt in a document's rendered output.

The document is rendered with span tracking, then the excerpt is matched
through the full pipeline: exact match, normalized match, ellipsis-split
fragments, fuzzy matching. The matched nodes are reported with the offset
at which the excerpt enters and leaves them.

Examples:
  scitokens locate paper.json -e "the dominated convergence theorem"
  scitokens locate paper.json -e "We prove ... holds almost surely"
  scitokens locate paper.json -e "aproximation eror" --threshold 0.6`,
	Args: cobra.ExactArgs(1),
	RunE: runLocate,
}

func init() {
	locateCmd.Flags().StringVarP(&locateExcerpt, "excerpt", "e", "", "excerpt text to locate (required)")
	locateCmd.Flags().StringVarP(&locateFormat, "format", "f", "latex", "rendered format to search: latex, markdown")
	locateCmd.Flags().Float64Var(&locateThreshold, "threshold", 0, "fuzzy similarity threshold (0 = config default)")
	locateCmd.Flags().IntVar(&locateContext, "context", 40, "characters of context around each match")
	locateCmd.MarkFlagRequired("excerpt")

	rootCmd.AddCommand(locateCmd)
}

func runLocate(cmd *cobra.Command, args []string) error {
	log := newLogger(rootVerbose)
	defer log.Sync()

	nodes, err := loadDocument(args[0])
	if err != nil {
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	threshold := locateThreshold
	if threshold <= 0 {
		threshold = cfg.Match.FuzzyThreshold
	}

	var res *ast.RenderResult
	var normalizer normalize.Normalizer
	switch locateFormat {
	case "latex", "tex":
		res = ast.ToLaTeXWithSpans(nodes, nil)
		normalizer = normalize.NewLaTeX()
	case "markdown", "md":
		res = ast.ToMarkdownWithSpans(nodes, nil)
		normalizer = normalize.NewMarkdown()
	default:
		return fmt.Errorf("unsupported locate format: %s", locateFormat)
	}
	if !cfg.Match.Normalize {
		normalizer = nil
	}
	log.Debugw("document rendered", "format", locateFormat,
		"chars", len(res.Content), "spans", len(res.Spans))

	m := match.NewFromRender(res, normalizer)
	results := m.MatchExcerptWithFallback(locateExcerpt, threshold)
	if len(results) == 0 {
		return fmt.Errorf("excerpt not found")
	}

	out := cmd.OutOrStdout()
	for _, r := range results {
		fmt.Fprintf(out, "%s  %s  %s", r.NodeID, r.NodeKind, r.Type)
		if r.Offset >= 0 {
			fmt.Fprintf(out, "  offset=%d", r.Offset)
		}
		fmt.Fprintln(out)
		printContext(out, m, r)
	}
	return nil
}

// printContext shows the matched node's text with the excerpt's entry point
// highlighted.
func printContext(out io.Writer, m *match.Matcher, r match.Result) {
	text, ok := m.NodeText(r.NodeID)
	if !ok || text == "" {
		return
	}

	highlight := color.New(color.FgYellow, color.Bold)
	offset := r.Offset
	if offset < 0 || offset > len(text) {
		offset = 0
	}

	before := text[:offset]
	after := text[offset:]
	if len(before) > locateContext {
		before = "…" + before[len(before)-locateContext:]
	}
	if len(after) > locateContext {
		after = after[:locateContext] + "…"
	}

	fmt.Fprintf(out, "    %s%s\n", before, highlight.Sprint(after))
}

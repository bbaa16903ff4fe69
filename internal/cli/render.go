package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"path"

	"github.com/spf13/cobra"

	"github.com/sciencestack-ai/sciencestack-tokens/ast"
	"github.com/sciencestack-ai/sciencestack-tokens/internal/config"
)

var (
	renderOutput     string
	renderFormat     string
	renderSpansPath  string
	renderProfile    string
	renderAssetBase  string
	renderSkipStyles bool
	renderMathMode   bool
)

var renderCmd = &cobra.Command{
	Use:   "render <doc.json>",
	Short: "Render a document tree to LaTeX, Markdown, copy text or JSON",
	Long: `Render a document tree to LaTeX, Markdown, copy text or JSON.

The input file holds tagged node data: a JSON array of objects carrying
"kind", optional "id", kind-specific fields and nested "children".

Examples:
  scitokens render paper.json
  scitokens render paper.json -f markdown -o paper.md
  scitokens render paper.json -f latex --spans spans.json
  scitokens render paper.json --profile plain`,
	Args: cobra.ExactArgs(1),
	RunE: runRender,
}

func init() {
	renderCmd.Flags().StringVarP(&renderOutput, "output", "o", "", "output file path (default: stdout)")
	renderCmd.Flags().StringVarP(&renderFormat, "format", "f", "", "output format: latex, markdown, copytext, json")
	renderCmd.Flags().StringVar(&renderSpansPath, "spans", "", "write the node span map to this file (latex/markdown only)")
	renderCmd.Flags().StringVar(&renderProfile, "profile", "", "render profile from the config file")
	renderCmd.Flags().StringVar(&renderAssetBase, "asset-base", "", "prefix for figure and image paths")
	renderCmd.Flags().BoolVar(&renderSkipStyles, "skip-styles", false, "drop bold/italic styling")
	renderCmd.Flags().BoolVar(&renderMathMode, "math", false, "math-context Markdown output")

	rootCmd.AddCommand(renderCmd)
}

func runRender(cmd *cobra.Command, args []string) error {
	log := newLogger(rootVerbose)
	defer log.Sync()

	nodes, err := loadDocument(args[0])
	if err != nil {
		return err
	}
	log.Debugw("document loaded", "path", args[0], "roots", len(nodes))

	profile, err := resolveProfile()
	if err != nil {
		return err
	}

	formatName := profile.Format
	if renderFormat != "" {
		formatName = renderFormat
	}
	if formatName == "" {
		formatName = "latex"
	}
	format, err := ast.ParseFormat(formatName)
	if err != nil {
		return err
	}

	opts := renderOptions(profile)

	var content string
	if renderSpansPath != "" {
		var res *ast.RenderResult
		switch format {
		case ast.FormatLaTeX:
			res = ast.ToLaTeXWithSpans(nodes, opts)
		case ast.FormatMarkdown:
			res = ast.ToMarkdownWithSpans(nodes, opts)
		default:
			return fmt.Errorf("span tracking is only available for latex and markdown output")
		}
		content = res.Content
		if err := writeSpans(renderSpansPath, res.Spans); err != nil {
			return err
		}
		log.Debugw("span map written", "path", renderSpansPath, "spans", len(res.Spans))
	} else {
		content, err = ast.Export(nodes, format, opts)
		if err != nil {
			return err
		}
	}

	if renderOutput == "" {
		fmt.Fprintln(cmd.OutOrStdout(), content)
		return nil
	}
	if err := os.WriteFile(renderOutput, []byte(content), 0644); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

// loadDocument reads tagged node data and builds the node forest.
func loadDocument(inputPath string) ([]ast.Node, error) {
	data, err := os.ReadFile(inputPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read document: %w", err)
	}
	nodes, err := ast.FromJSON(data, ast.DefaultFactory{})
	if err != nil {
		return nil, fmt.Errorf("failed to build document tree: %w", err)
	}
	return nodes, nil
}

// resolveProfile picks the render profile: --profile, then the config
// default, then zero values.
func resolveProfile() (*config.Profile, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	if renderProfile != "" {
		p, ok := cfg.GetProfile(renderProfile)
		if !ok {
			return nil, fmt.Errorf("unknown profile: %s", renderProfile)
		}
		return p, nil
	}
	if p, ok := cfg.GetDefaultProfile(); ok {
		return p, nil
	}
	return &config.Profile{}, nil
}

// renderOptions merges profile settings with command flags, flags winning.
func renderOptions(profile *config.Profile) *ast.Options {
	opts := &ast.Options{
		SkipStyles: profile.SkipStyles || renderSkipStyles,
		Math:       profile.MathMode || renderMathMode,
	}
	assetBase := profile.AssetBase
	if renderAssetBase != "" {
		assetBase = renderAssetBase
	}
	if assetBase != "" {
		opts.AssetPath = func(p string) string {
			return path.Join(assetBase, p)
		}
	}
	return opts
}

func writeSpans(outPath string, spans map[string]ast.SpanInfo) error {
	data, err := json.MarshalIndent(spans, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal span map: %w", err)
	}
	if err := os.WriteFile(outPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write span map: %w", err)
	}
	return nil
}

package ast

// LabelRef describes one resolved cross-reference target.
type LabelRef interface {
	// ReferenceText returns the human-readable reference text, e.g. "Figure 1".
	ReferenceText() string

	// AnchorID returns the document anchor the reference points at.
	AnchorID() string
}

// LabelResolver resolves cross-reference labels to their targets.
// ResolveLabel returns nil for unknown labels.
type LabelResolver interface {
	ResolveLabel(label string) LabelRef
}

// Options carries the per-render formatting options shared by all formats.
// A nil *Options is valid and means defaults everywhere.
type Options struct {
	// AssetPath rewrites asset paths (figure/image sources) for the target
	// output. Nil leaves paths untouched.
	AssetPath func(path string) string

	// Labels resolves cross-reference labels. Nil renders references by
	// their raw target label.
	Labels LabelResolver

	// SkipStyles suppresses textual decorations (bold, italic, ...).
	SkipStyles bool

	// Math switches Markdown rendering to a math-safe inline form:
	// anchor ids are not emitted and references render as plain text.
	// Ignored by the other formats.
	Math bool
}

func (o *Options) assetPath(path string) string {
	if o == nil || o.AssetPath == nil {
		return path
	}
	return o.AssetPath(path)
}

func (o *Options) resolveLabel(label string) LabelRef {
	if o == nil || o.Labels == nil {
		return nil
	}
	return o.Labels.ResolveLabel(label)
}

func (o *Options) skipStyles() bool { return o != nil && o.SkipStyles }

func (o *Options) math() bool { return o != nil && o.Math }

package ast

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// NodeData is the tagged source form of a node: a discriminated union keyed
// by Kind, JSON-decodable, with kind-specific fields left zero when unused.
type NodeData struct {
	ID          string     `json:"id,omitempty"`
	Kind        string     `json:"kind"`
	Role        string     `json:"role,omitempty"`
	Text        string     `json:"text,omitempty"`
	Styles      []string   `json:"styles,omitempty"`
	Labels      []string   `json:"labels,omitempty"`
	Display     string     `json:"display,omitempty"`
	Level       int        `json:"level,omitempty"`
	Keys        []string   `json:"keys,omitempty"`
	Key         string     `json:"key,omitempty"`
	Target      string     `json:"target,omitempty"`
	Src         string     `json:"src,omitempty"`
	Alt         string     `json:"alt,omitempty"`
	Language    string     `json:"language,omitempty"`
	Ordered     bool       `json:"ordered,omitempty"`
	Environment string     `json:"environment,omitempty"`
	RowSpan     int        `json:"row_span,omitempty"`
	ColSpan     int        `json:"col_span,omitempty"`
	Children    []NodeData `json:"children,omitempty"`
}

// Factory constructs concrete nodes from tagged source data. CreateNode
// returns nil for data it does not recognize; BuildTree then skips the item
// rather than failing the whole tree.
type Factory interface {
	CreateNode(data NodeData) Node
}

// FactoryFunc adapts a function to the Factory interface.
type FactoryFunc func(data NodeData) Node

// CreateNode calls f.
func (f FactoryFunc) CreateNode(data NodeData) Node { return f(data) }

// ErrFactoryRequired is returned when tree building is attempted without a
// configured factory. This is a caller-configuration error, never retried.
var ErrFactoryRequired = errors.New("node factory required")

// BuildTree constructs a node forest from tagged source data. Items the
// factory does not recognize are skipped, so one malformed entry does not
// invalidate the whole document; children of a skipped item are dropped
// with it.
func BuildTree(items []NodeData, factory Factory) ([]Node, error) {
	if factory == nil {
		return nil, fmt.Errorf("cannot build tree: %w", ErrFactoryRequired)
	}
	return buildNodes(items, factory), nil
}

func buildNodes(items []NodeData, factory Factory) []Node {
	var nodes []Node
	for _, item := range items {
		n := factory.CreateNode(item)
		if n == nil {
			continue
		}
		if item.Role != "" {
			n.SetRole(Role(item.Role))
		}
		n.Append(buildNodes(item.Children, factory)...)
		nodes = append(nodes, n)
	}
	return nodes
}

// DefaultFactory is the exhaustive kind-to-constructor dispatch over the
// node catalog.
type DefaultFactory struct{}

// CreateNode builds the concrete node for the tagged datum, or nil for an
// unrecognized kind.
func (DefaultFactory) CreateNode(d NodeData) Node {
	var n Node
	switch Kind(d.Kind) {
	case KindDocument:
		n = NewDocument(d.ID)
	case KindSection:
		n = NewSection(d.ID, d.Level)
	case KindAppendix:
		n = NewAppendix(d.ID)
	case KindAcknowledgments:
		n = NewAcknowledgments(d.ID)
	case KindParagraph:
		n = NewParagraph(d.ID)
	case KindText:
		n = NewText(d.ID, d.Text)
	case KindTitle:
		n = NewTitle(d.ID)
	case KindSubtitle:
		n = NewSubtitle(d.ID)
	case KindAuthor:
		n = NewAuthor(d.ID)
	case KindAffiliation:
		n = NewAffiliation(d.ID)
	case KindAbstract:
		n = NewAbstract(d.ID)
	case KindKeywords:
		n = NewKeywords(d.ID)
	case KindEquation:
		n = NewEquation(d.ID, d.Text, ParseDisplayMode(d.Display))
	case KindEquationArray:
		n = NewEquationArray(d.ID, strings.Split(d.Text, "\n")...)
	case KindCitation:
		n = NewCitation(d.ID, d.Keys...)
	case KindReference:
		n = NewReference(d.ID, d.Keys...)
	case KindLink:
		n = NewLink(d.ID, d.Target)
	case KindURL:
		n = NewURL(d.ID, d.Target)
	case KindTable:
		n = NewTable(d.ID)
	case KindTableRow:
		n = NewTableRow(d.ID)
	case KindTableCell:
		c := NewTableCell(d.ID)
		if d.RowSpan > 1 {
			c.RowSpan = d.RowSpan
		}
		if d.ColSpan > 1 {
			c.ColSpan = d.ColSpan
		}
		n = c
	case KindFigure:
		f := NewFigure(d.ID, d.Src)
		f.Alt = d.Alt
		n = f
	case KindImage:
		img := NewImage(d.ID, d.Src)
		img.Alt = d.Alt
		n = img
	case KindCaption:
		n = NewCaption(d.ID)
	case KindList:
		n = NewList(d.ID, d.Ordered)
	case KindListItem:
		n = NewListItem(d.ID)
	case KindCode:
		n = NewCode(d.ID, d.Text, d.Language)
	case KindQuote:
		n = NewQuote(d.ID)
	case KindTheorem:
		n = NewTheorem(d.ID)
	case KindLemma:
		n = NewLemma(d.ID)
	case KindProof:
		n = NewProof(d.ID)
	case KindFootnote:
		n = NewFootnote(d.ID)
	case KindBibliography:
		n = NewBibliography(d.ID)
	case KindBibliographyItem:
		n = NewBibliographyItem(d.ID, d.Key)
	case KindBreak:
		n = NewBreak(d.ID)
	case KindRaw:
		n = NewRaw(d.ID, d.Text)
	default:
		return nil
	}
	applyCommon(n, d)
	return n
}

func applyCommon(n Node, d NodeData) {
	for _, l := range d.Labels {
		n.AddLabel(l)
	}
	if len(d.Styles) == 0 {
		return
	}
	if t, ok := n.(*Text); ok {
		styles := make([]Style, len(d.Styles))
		for i, s := range d.Styles {
			styles[i] = Style(s)
		}
		t.SetStyles(styles)
	}
}

// FromJSON decodes tagged node data and builds the tree with the given
// factory.
func FromJSON(data []byte, factory Factory) ([]Node, error) {
	var items []NodeData
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("failed to decode node data: %w", err)
	}
	return BuildTree(items, factory)
}

// ToJSON serializes the node forest back to its tagged source form.
func ToJSON(nodes []Node) (string, error) {
	items := make([]NodeData, 0, len(nodes))
	for _, n := range nodes {
		items = append(items, n.Data())
	}
	out, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal node data: %w", err)
	}
	return string(out), nil
}

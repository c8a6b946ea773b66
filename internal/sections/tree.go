package sections

import (
	"fmt"

	"redline/internal/pretty"
)

// Tree arranges the comparison for pretty.TreeHTML: one node per section,
// one child per item, with the original and revised text beneath it.
func (c Comparison) Tree() pretty.Node {
	root := pretty.Node{
		Text:     fmt.Sprintf("%d section(s), %d change(s)", c.TotalSections, c.ItemCount()),
		Children: make([]pretty.Node, 0, len(c.Sections)),
	}
	for _, s := range c.Sections {
		sec := pretty.Node{Heading: s.Name, Children: make([]pretty.Node, 0, len(s.Items))}
		for i, it := range s.Items {
			sec.Children = append(sec.Children, itemNode(i+1, it))
		}
		root.Children = append(root.Children, sec)
	}
	return root
}

func itemNode(n int, it Item) pretty.Node {
	label := it.Kind.String()
	if label == "" {
		label = "Item"
	}
	node := pretty.Node{Heading: fmt.Sprintf("%d. %s", n, label)}
	if it.Description != "" {
		node.Blocks = []pretty.Block{{Kind: pretty.BlockParagraph, Lines: []string{it.Description}}}
	}
	if it.Original != "" {
		node.Children = append(node.Children, pretty.Node{Heading: "Original", Text: it.Original})
	}
	if it.Revised != "" {
		node.Children = append(node.Children, pretty.Node{Heading: "Revised", Text: it.Revised})
	}
	return node
}

package main

import (
	"fmt"
	"io"

	"github.com/heathj/elemtree/parser"
	"github.com/heathj/elemtree/tree"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

type demoSearch struct {
	selector tree.Selector
	scope    tree.Scope
	orders   []tree.Order
}

type demo struct {
	name     string
	desc     parser.Description
	searches []demoSearch
}

var contentSelector = tree.Selector{Ancestor: "main-content", Target: "some-other-content"}

var demos = []demo{
	{
		name: "first matching child",
		desc: parser.Description{Tag: "html", Children: []parser.Description{
			{Tag: "body", Children: []parser.Description{
				{Tag: "div", Classes: []string{"main-content"}, Children: []parser.Description{
					{Tag: "span", Classes: []string{"some-other-content"}},
					{Tag: "p", Classes: []string{"some-other-content"}},
				}},
			}},
		}},
		searches: []demoSearch{
			{contentSelector, tree.ChildScope, []tree.Order{tree.BreadthFirst, tree.DepthFirstRightBiased}},
		},
	},
	{
		name: "ancestor scoped descendant",
		desc: parser.Description{Tag: "html", Children: []parser.Description{
			{Tag: "body", Classes: []string{"main-content"}, Children: []parser.Description{
				{Tag: "ul", Children: []parser.Description{{Tag: "li"}}},
				{Tag: "div", Children: []parser.Description{
					{Tag: "p", Classes: []string{"some-other-content"}},
				}},
			}},
		}},
		searches: []demoSearch{
			{contentSelector, tree.ChildScope, []tree.Order{tree.BreadthFirst}},
			{contentSelector, tree.DescendantScope, []tree.Order{tree.BreadthFirst, tree.DepthFirst}},
		},
	},
	{
		name: "breadth vs depth first",
		desc: parser.Description{Tag: "section", Classes: []string{"main-content"}, Children: []parser.Description{
			{Tag: "article", Children: []parser.Description{
				{Tag: "div", Children: []parser.Description{
					{Tag: "em", Classes: []string{"some-other-content"}},
				}},
			}},
			{Tag: "aside", Children: []parser.Description{
				{Tag: "b", Classes: []string{"some-other-content"}},
			}},
		}},
		searches: []demoSearch{
			{contentSelector, tree.DescendantScope, []tree.Order{tree.BreadthFirst, tree.DepthFirst, tree.DepthFirstRightBiased}},
		},
	},
}

func demoCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Render built-in trees and run searches against them",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, d := range demos {
				var err error
				switch format {
				case "text":
					err = runDemo(out, d)
				case "yaml":
					err = describeDemo(out, d)
				default:
					return errors.Errorf("unknown format %q", format)
				}
				if err != nil {
					return errors.Wrap(err, d.name)
				}
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&format, "format", "text", "output format: text or yaml")
	return cmd
}

func runDemo(w io.Writer, d demo) error {
	root, _, err := parser.Build(d.desc)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "== %s\n%s", d.name, root.PrintTree())
	for _, s := range d.searches {
		for _, o := range s.orders {
			match, ok := root.Find(s.selector, s.scope, o)
			result := "no match"
			if ok {
				result = fmt.Sprintf("<%s> at depth %d", match.TagName, match.Depth())
			}
			fmt.Fprintf(w, "%s %s %s: %s\n", s.scope, o, s.selector, result)
		}
	}
	fmt.Fprintln(w)
	return nil
}

func describeDemo(w io.Writer, d demo) error {
	fmt.Fprintf(w, "# %s\n", d.name)
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(d.desc); err != nil {
		return err
	}
	return enc.Close()
}

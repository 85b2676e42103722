package main

import (
	"fmt"

	"github.com/heathj/elemtree/tree"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var errNoMatch = errors.New("no match")

var orders = map[string]tree.Order{
	tree.BreadthFirst.String():          tree.BreadthFirst,
	tree.DepthFirst.String():            tree.DepthFirst,
	tree.DepthFirstRightBiased.String(): tree.DepthFirstRightBiased,
}

func findCmd() *cobra.Command {
	var file, selector, order string

	cmd := &cobra.Command{
		Use:   "find",
		Short: "Print the first element matching a two-class selector",
		Long: `find walks the tree and prints the first element matching the selector.

  "a b"    an element with class b below any element with class a
  "a > b"  an element with class b whose parent has class a

--order picks which match comes first: bfs, dfs (left to right) or
dfs-right (last subtree first).`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			o, ok := orders[order]
			if !ok {
				return errors.Errorf("unknown order %q", order)
			}
			sel, scope, err := tree.ParseSelector(selector)
			if err != nil {
				return err
			}
			root, err := loadTree(cmd, file)
			if err != nil {
				return err
			}

			match, ok := root.Find(sel, scope, o)
			if !ok {
				return errors.Wrapf(errNoMatch, "%s (%s, %s)", selector, scope, o)
			}
			logrus.WithFields(logrus.Fields{
				"tag":   match.TagName,
				"depth": match.Depth(),
			}).Debug("[FIND]: match")
			fmt.Fprint(cmd.OutOrStdout(), match.PrintTree())
			return nil
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "-", "tree description (- for stdin)")
	cmd.Flags().StringVarP(&selector, "selector", "s", "", `selector, "ancestor target" or "parent > child"`)
	cmd.Flags().StringVar(&order, "order", tree.BreadthFirst.String(), "traversal order: bfs, dfs or dfs-right")
	_ = cmd.MarkFlagRequired("selector")
	return cmd
}

package main

import (
	"fmt"

	"github.com/heathj/elemtree/parser"
	"github.com/heathj/elemtree/tree"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func renderCmd() *cobra.Command {
	var (
		file    string
		printer tree.Printer
	)

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a tree description as indented markup",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if printer.IndentWidth < 0 {
				return errors.Errorf("invalid indent %d", printer.IndentWidth)
			}
			root, err := loadTree(cmd, file)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), printer.Print(root))
			return nil
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "-", "tree description (- for stdin)")
	cmd.Flags().BoolVar(&printer.ExpandEmpty, "expand-empty", false, "put open and close tags of empty elements on separate lines")
	cmd.Flags().IntVar(&printer.IndentWidth, "indent", tree.DefaultIndentWidth, "spaces per level")
	return cmd
}

// loadTree reads a description from file, or from the command's input
// when file is "-".
func loadTree(cmd *cobra.Command, file string) (*tree.Element, error) {
	if file == "-" {
		return parser.NewParser(cmd.InOrStdin()).WithSource("stdin").Start()
	}
	return parser.ParseFile(file)
}

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/avendt/policygraph/pkg/graph/op"
)

// newOpsCmd creates the "ops" command, which prints the operator registry.
func newOpsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ops",
		Short: "Print the operator registry",
		Long: `Print the operator registry: index, name, minimum arity, and a short
description of each operator.

The index column is a compatibility contract. Search and mutation tooling
stores nodes by operator index, so entries are only ever appended; existing
indices never change meaning.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Println(styleTitle.Render("Operator registry"))
			fmt.Printf("%s %s %s %s\n",
				styleDim.Width(5).Render("IDX"),
				styleDim.Width(13).Render("NAME"),
				styleDim.Width(5).Render("ARITY"),
				styleDim.Render("RESULT"),
			)
			for _, k := range op.Kinds() {
				fmt.Printf("%s %s %s %s\n",
					styleNumber.Width(5).Render(fmt.Sprintf("%d", int(k))),
					styleValue.Width(13).Render(k.String()),
					styleDim.Width(5).Render(fmt.Sprintf("%d", k.MinArity())),
					styleDim.Render(k.Synopsis()),
				)
			}
			printDetail("%d operators, index 0 = constant (no operator)", op.Count())
			return nil
		},
	}
}

package cli

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/specialistvlad/sysmlgraph/internal/app"
	"github.com/specialistvlad/sysmlgraph/internal/kind"
	"github.com/spf13/cobra"
)

func newPropsCommand(getApp func() *app.App) *cobra.Command {
	return &cobra.Command{
		Use:   "props KIND",
		Short: "List the typed properties of a kind, including inherited ones",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			k, err := kind.Parse(args[0])
			if err != nil {
				return usageError(err)
			}

			properties := getApp().Schema().Properties(k)
			if len(properties) == 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "%s declares no properties.\n", k)
				return nil
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "NAME\tTYPE\tREQUIRED\tVALUES\tDECLARED ON")
			for _, p := range properties {
				values := "-"
				if p.Enum != "" {
					values = p.Enum + "(" + strings.Join(p.Values, "|") + ")"
				}
				fmt.Fprintf(tw, "%s\t%s\t%t\t%s\t%s\n", p.Name, p.TypeName(), p.Required, values, p.DeclaredOn)
			}
			return tw.Flush()
		},
	}
}

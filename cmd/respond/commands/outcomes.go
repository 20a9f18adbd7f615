package commands

import (
	"fmt"
	"io"
	"net/http"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/xy-planning-network/respond/http/resp"
)

// NewOutcomesCommand creates the command listing every outcome a *resp.Response offers
func NewOutcomesCommand() *cobra.Command {
	var kind string

	cmd := &cobra.Command{
		Use:     "outcomes",
		Aliases: []string{"ls"},
		Short:   "List the named outcomes and their statuses",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return printOutcomes(cmd.OutOrStdout(), kind)
		},
	}

	cmd.Flags().StringVarP(&kind, "kind", "k", "", "only list outcomes of this kind (status, parametric or behavior)")
	return cmd
}

func printOutcomes(out io.Writer, kind string) error {
	switch kind {
	case "", resp.KindStatus.String(), resp.KindParametric.String(), resp.KindBehavior.String():
	default:
		return fmt.Errorf("unknown kind %q", kind)
	}

	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tSTATUS\tKIND")
	for _, o := range resp.Outcomes() {
		if kind != "" && o.Kind.String() != kind {
			continue
		}

		fmt.Fprintf(tw, "%s\t%d %s\t%s\n", o.Name, o.Status, http.StatusText(o.Status), o.Kind)
	}

	return tw.Flush()
}

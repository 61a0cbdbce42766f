package main

import (
	"fmt"
	"sort"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func newGetCmd(a *app) *cobra.Command {
	var flags listFlags
	cmd := &cobra.Command{
		Use:   "get <resource> [id|key]",
		Short: "Fetch a resource list, or one record by id",
		Long: `Fetch a resource list, or one record by id or address.

Examples:
  estforctl get players --fetch 10 --param isActive=true
  estforctl get players 42
  estforctl get activities 0xabc... --param activityTypesToSkip=A,B
  estforctl get order-book-day-datas 11 --order-direction desc

Run 'estforctl resources' for the full list.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]
			r, ok := resources[name]
			if !ok {
				return fmt.Errorf("unknown resource %q (see 'estforctl resources')", name)
			}
			fa, err := flags.filterArgs(cmd)
			if err != nil {
				return err
			}

			var fetch fetchFn
			switch {
			case len(args) == 1 && r.list != nil:
				fetch = r.list(fa)
			case len(args) == 2 && r.byArg != nil:
				fetch = r.byArg(args[1], fa)
			case len(args) == 1:
				return fmt.Errorf("%s requires <%s>", name, r.argName)
			default:
				return fmt.Errorf("%s does not take an argument", name)
			}
			if err := fa.check(name); err != nil {
				return err
			}

			out, err := fetch(cmd.Context(), a.api)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), out)
		},
	}
	flags.register(cmd)
	return cmd
}

func newResourcesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "resources",
		Short: "List resources accepted by 'get'",
		Args:  cobra.NoArgs,
		// No client needed
		PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
		RunE: func(cmd *cobra.Command, _ []string) error {
			names := make([]string, 0, len(resources))
			for name := range resources {
				names = append(names, name)
			}
			sort.Strings(names)

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, name := range names {
				r := resources[name]
				usage := name
				switch {
				case r.list != nil && r.byArg != nil:
					usage += " [" + r.argName + "]"
				case r.byArg != nil:
					usage += " <" + r.argName + ">"
				}
				fmt.Fprintf(tw, "%s\t%s\n", usage, r.about)
			}
			return tw.Flush()
		},
	}
}

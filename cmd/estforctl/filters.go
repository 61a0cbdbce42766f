package main

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/0xJijimi/estfor-api/client"
)

// listFlags are the filter flags accepted by `get`.
type listFlags struct {
	skip           int
	fetch          int
	orderBy        string
	orderDirection string
	params         []string
}

func (f *listFlags) register(cmd *cobra.Command) {
	fl := cmd.Flags()
	fl.IntVar(&f.skip, "skip", 0, "numToSkip")
	fl.IntVar(&f.fetch, "fetch", 0, "numToFetch")
	fl.StringVar(&f.orderBy, "order-by", "", "orderBy field")
	fl.StringVar(&f.orderDirection, "order-direction", "", "orderDirection (asc or desc)")
	fl.StringArrayVar(&f.params, "param", nil, "resource filter as key=value; repeat a key, or separate values with ',', for list filters")
}

// filterArgs turns the parsed flags into the values a resource filter reads.
// Only flags the user actually set become filter fields.
func (f *listFlags) filterArgs(cmd *cobra.Command) (*filterArgs, error) {
	fa := &filterArgs{params: map[string]string{}, used: map[string]bool{}}
	fl := cmd.Flags()
	if fl.Changed("skip") {
		fa.page.NumToSkip = client.Int(f.skip)
	}
	if fl.Changed("fetch") {
		fa.page.NumToFetch = client.Int(f.fetch)
	}
	if fl.Changed("order-by") {
		fa.page.OrderBy = client.String(f.orderBy)
	}
	if fl.Changed("order-direction") {
		fa.page.OrderDirection = client.String(f.orderDirection)
	}
	for _, p := range f.params {
		k, v, ok := strings.Cut(p, "=")
		if !ok || k == "" {
			return nil, fmt.Errorf("--param %q: want key=value", p)
		}
		if prev, dup := fa.params[k]; dup {
			v = prev + "," + v
		}
		fa.params[k] = v
	}
	return fa, nil
}

// filterArgs hands out filter field values and remembers which were
// consumed, so unknown keys can be reported before any request is sent.
type filterArgs struct {
	page   client.Pagination
	paged  bool
	params map[string]string
	used   map[string]bool
	err    error
}

func (fa *filterArgs) pagination() client.Pagination {
	fa.paged = true
	return fa.page
}

func (fa *filterArgs) str(key string) *string {
	v, ok := fa.params[key]
	if !ok {
		return nil
	}
	fa.used[key] = true
	return &v
}

func (fa *filterArgs) boolean(key string) *bool {
	s := fa.str(key)
	if s == nil {
		return nil
	}
	b, err := strconv.ParseBool(*s)
	if err != nil {
		if fa.err == nil {
			fa.err = fmt.Errorf("--param %s: %w", key, err)
		}
		return nil
	}
	return &b
}

func (fa *filterArgs) list(key string) []string {
	s := fa.str(key)
	if s == nil {
		return nil
	}
	return strings.Split(*s, ",")
}

// check reports bad values and anything the resource did not consume.
func (fa *filterArgs) check(resource string) error {
	if fa.err != nil {
		return fa.err
	}
	if !fa.paged && fa.page != (client.Pagination{}) {
		return fmt.Errorf("%s does not accept pagination flags", resource)
	}
	var unknown []string
	for k := range fa.params {
		if !fa.used[k] {
			unknown = append(unknown, k)
		}
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return fmt.Errorf("%s does not accept --param %s", resource, strings.Join(unknown, ", "))
	}
	return nil
}

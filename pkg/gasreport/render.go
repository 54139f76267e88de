package gasreport

import (
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
)

// WriteTable renders one table per contract, in lexicographic contract
// order. Contracts without any recorded function calls are omitted, even
// when deployment info was observed. Rendering reads finalized state only
// and is idempotent.
func (r *GasReport) WriteTable(w io.Writer) {
	for _, name := range sortedKeys(r.Contracts) {
		contract := r.Contracts[name]
		if len(contract.Functions) == 0 {
			continue
		}

		table := tablewriter.NewWriter(w)
		table.SetAutoFormatHeaders(false)
		table.SetAutoWrapText(false)
		table.SetAlignment(tablewriter.ALIGN_LEFT)
		table.SetHeader([]string{name + " contract", "", "", "", "", ""})
		table.Append([]string{"Deployment Cost", "Deployment Size", "", "", "", ""})
		table.Append([]string{contract.Gas.Dec(), contract.Size.Dec(), "", "", "", ""})
		table.Append([]string{"Function Name", "min", "avg", "median", "max", "# calls"})

		for _, fname := range sortedKeys(contract.Functions) {
			sigs := contract.Functions[fname]
			for _, sig := range sortedKeys(sigs) {
				gi := sigs[sig]

				// Bare name unless the function is overloaded.
				display := fname
				if len(sigs) > 1 {
					display = strings.ReplaceAll(sig, ":", "")
				}

				table.Append([]string{
					display,
					gi.Min.Dec(),
					gi.Mean.Dec(),
					gi.Median.Dec(),
					gi.Max.Dec(),
					strconv.Itoa(len(gi.Calls)),
				})
			}
		}

		table.Render()
	}
}

// String renders the tabular report.
func (r *GasReport) String() string {
	var sb strings.Builder
	r.WriteTable(&sb)

	return sb.String()
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}

	sort.Strings(keys)

	return keys
}

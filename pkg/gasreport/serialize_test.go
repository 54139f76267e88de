package gasreport

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ethpandaops/gas-reporter/pkg/trace"
)

func TestReportJSONFieldNames(t *testing.T) {
	arena := &trace.Arena{Nodes: []trace.Node{
		creationNode(0, []int{1}, "A", 100000, 500),
		callNode(1, nil, "A", "transfer", "transfer(address,uint256)", 21000),
	}}

	report := New([]string{"A"}, nil)
	report.Analyze(arena)
	report = report.Finalize()

	data, err := json.Marshal(report)
	require.NoError(t, err)

	var decoded map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Contains(t, decoded, "report_for")
	assert.Contains(t, decoded, "contracts")

	var contracts map[string]map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(decoded["contracts"], &contracts))
	require.Contains(t, contracts, "A")

	for _, field := range []string{"gas", "size", "functions"} {
		assert.Contains(t, contracts["A"], field)
	}

	var functions map[string]map[string]map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(contracts["A"]["functions"], &functions))
	gi := functions["transfer"]["transfer(address,uint256)"]
	require.NotNil(t, gi)

	for _, field := range []string{"calls", "min", "mean", "median", "max"} {
		assert.Contains(t, gi, field)
	}
}

package gasreport

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ethpandaops/gas-reporter/pkg/trace"
)

func TestRenderSkipsContractsWithoutFunctions(t *testing.T) {
	arena := &trace.Arena{Nodes: []trace.Node{
		creationNode(0, nil, "A", 100000, 500),
	}}

	report := New(nil, nil)
	report.Analyze(arena)
	report = report.Finalize()

	// Deployment info alone produces no table.
	require.Contains(t, report.Contracts, "A")
	assert.Empty(t, report.String())
}

func TestRenderTable(t *testing.T) {
	arena := &trace.Arena{Nodes: []trace.Node{
		creationNode(0, []int{1, 2}, "A", 100000, 500),
		callNode(1, nil, "A", "transfer", "transfer(address,uint256)", 21000),
		callNode(2, nil, "A", "transfer", "transfer(address,uint256)", 23000),
	}}

	report := New(nil, nil)
	report.Analyze(arena)
	report = report.Finalize()

	out := report.String()
	assert.Contains(t, out, "A contract")
	assert.Contains(t, out, "Deployment Cost")
	assert.Contains(t, out, "Deployment Size")
	assert.Contains(t, out, "100000")
	assert.Contains(t, out, "500")
	assert.Contains(t, out, "Function Name")
	assert.Contains(t, out, "# calls")
	assert.Contains(t, out, "transfer")
	assert.Contains(t, out, "21000")
	assert.Contains(t, out, "22000")
	assert.Contains(t, out, "23000")
}

func TestRenderOverloadedFunctionShowsSignature(t *testing.T) {
	arena := &trace.Arena{Nodes: []trace.Node{
		callNode(0, []int{1}, "A", "transfer", "transfer(address,uint256)", 21000),
		callNode(1, nil, "A", "transfer", "transfer(address,uint256,bytes)", 25000),
	}}

	report := New(nil, nil)
	report.Analyze(arena)
	report = report.Finalize()

	out := report.String()
	assert.Contains(t, out, "transfer(address,uint256)")
	assert.Contains(t, out, "transfer(address,uint256,bytes)")
}

func TestRenderIdempotent(t *testing.T) {
	arena := &trace.Arena{Nodes: []trace.Node{
		callNode(0, []int{1}, "B", "mint", "mint(uint256)", 40000),
		callNode(1, nil, "A", "burn", "burn(uint256)", 30000),
	}}

	report := New(nil, nil)
	report.Analyze(arena)
	report = report.Finalize()

	first := report.String()
	second := report.String()
	assert.Equal(t, first, second)

	// Contracts render in lexicographic order, not traversal order.
	assert.Less(t, strings.Index(first, "A contract"), strings.Index(first, "B contract"))
}

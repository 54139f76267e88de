// Package gasreport aggregates per-contract, per-function gas usage from
// recorded call-trace trees and renders the result as a report.
package gasreport

import (
	"sort"
	"strings"

	"github.com/holiman/uint256"

	"github.com/ethpandaops/gas-reporter/pkg/trace"
)

// GasReport accumulates gas usage across analyzed call-trace trees.
// Analyze may be called any number of times before a single Finalize;
// rendering after Finalize is read-only. A GasReport is owned by one
// caller and is not safe for concurrent use.
type GasReport struct {
	ReportFor []string                 `json:"report_for"`
	Contracts map[string]*ContractInfo `json:"contracts"`

	classifier trace.Classifier
}

// ContractInfo holds the deployment info and per-function gas usage of a
// single contract. Functions is keyed by function name, then by call
// signature, so overloads stay distinct but the report can collapse to the
// bare name when no overload exists.
type ContractInfo struct {
	Gas       uint256.Int                    `json:"gas"`
	Size      uint256.Int                    `json:"size"`
	Functions map[string]map[string]*GasInfo `json:"functions"`
}

// GasInfo collects gas-cost samples for one function signature. Min, Mean,
// Median and Max hold their zero values until Finalize derives them.
type GasInfo struct {
	Calls  []uint256.Int `json:"calls"`
	Min    uint256.Int   `json:"min"`
	Mean   uint256.Int   `json:"mean"`
	Median uint256.Int   `json:"median"`
	Max    uint256.Int   `json:"max"`
}

// New creates a GasReport limited to the given contract names. An empty
// list, or a list containing "*", reports every contract. A nil
// classifier falls back to trace.DefaultClassifier.
func New(reportFor []string, classifier trace.Classifier) *GasReport {
	if classifier == nil {
		classifier = trace.DefaultClassifier{}
	}

	return &GasReport{
		ReportFor:  reportFor,
		Contracts:  make(map[string]*ContractInfo),
		classifier: classifier,
	}
}

// Analyze walks the given call-trace trees depth-first, pre-order, and
// accumulates gas usage for every in-scope contract. Results are
// cumulative across calls.
func (r *GasReport) Analyze(arenas ...*trace.Arena) {
	reportForAll := len(r.ReportFor) == 0
	for _, s := range r.ReportFor {
		if s == "*" {
			reportForAll = true
		}
	}

	for _, arena := range arenas {
		if len(arena.Nodes) > 0 {
			r.analyzeNode(arena, 0, reportForAll)
		}

		treesAnalyzed.Inc()
	}
}

func (r *GasReport) analyzeNode(arena *trace.Arena, idx int, reportForAll bool) {
	node := &arena.Nodes[idx]
	ct := &node.Trace

	nodesVisited.Inc()

	// Cheatcode and console calls are harness overhead, not contract gas.
	// Their subtrees are still walked: descendants are judged on their own.
	excluded := ct.Address == trace.CheatcodeAddress || ct.Address == trace.ConsoleAddress

	if !excluded && ct.Contract != nil {
		name := *ct.Contract
		if reportForAll || r.reportedFor(name) {
			info := r.contract(name)

			switch data := ct.Data.(type) {
			case trace.RawCall:
				if data.Created {
					// Last creation visited wins.
					info.Gas.SetUint64(ct.GasCost)
					info.Size.SetUint64(uint64(len(data.Input)))
				}
			case trace.DecodedCall:
				if !r.classifier.IsTest(data.Func) && !r.classifier.IsSetup(data.Func) {
					gi := info.function(data.Func, data.Sig)
					gi.Calls = append(gi.Calls, *uint256.NewInt(ct.GasCost))
				}
			}
		}
	}

	for _, child := range node.Children {
		r.analyzeNode(arena, child, reportForAll)
	}
}

// reportedFor checks the allow-list against the trailing component of the
// contract identifier, so "src/Token.sol:Token" matches "Token".
func (r *GasReport) reportedFor(name string) bool {
	short := name
	if i := strings.LastIndexByte(name, ':'); i >= 0 {
		short = name[i+1:]
	}

	for _, s := range r.ReportFor {
		if s == short {
			return true
		}
	}

	return false
}

func (r *GasReport) contract(name string) *ContractInfo {
	info, ok := r.Contracts[name]
	if !ok {
		info = &ContractInfo{Functions: make(map[string]map[string]*GasInfo)}
		r.Contracts[name] = info
	}

	return info
}

func (c *ContractInfo) function(name, sig string) *GasInfo {
	sigs, ok := c.Functions[name]
	if !ok {
		sigs = make(map[string]*GasInfo)
		c.Functions[name] = sigs
	}

	gi, ok := sigs[sig]
	if !ok {
		gi = &GasInfo{}
		sigs[sig] = gi
	}

	return gi
}

// Finalize sorts every sample sequence ascending and derives
// min/mean/median/max per function signature. Empty sample sets degrade
// to all-zero statistics. The report must not be analyzed further
// afterwards.
func (r *GasReport) Finalize() *GasReport {
	for _, contract := range r.Contracts {
		for _, sigs := range contract.Functions {
			for _, gi := range sigs {
				sort.Slice(gi.Calls, func(i, j int) bool {
					return gi.Calls[i].Lt(&gi.Calls[j])
				})

				if len(gi.Calls) > 0 {
					gi.Min = gi.Calls[0]
					gi.Max = gi.Calls[len(gi.Calls)-1]
				}

				gi.Mean = mean(gi.Calls)
				gi.Median = medianSorted(gi.Calls)
			}
		}
	}

	contractsReported.Set(float64(len(r.Contracts)))

	return r
}

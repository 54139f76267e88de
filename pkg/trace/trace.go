// Package trace models recorded call-trace trees produced by a contract
// execution engine. A tree is stored as an arena of nodes addressed by
// integer index, with the root at index 0; the tree is fully materialized
// before analysis ever touches it.
package trace

import (
	"encoding/json"
	"fmt"

	"github.com/0xsequence/ethkit/go-ethereum/common"
	"github.com/0xsequence/ethkit/go-ethereum/common/hexutil"
)

// Pseudo-contract sentinel addresses. Calls to these are test-harness
// overhead and are excluded from gas accounting.
var (
	// CheatcodeAddress is the address of the cheatcode pseudo-contract.
	CheatcodeAddress = common.HexToAddress("0x7109709ECfa91a80626fF3989D68f67F5b1DD12D")
	// ConsoleAddress is the address of the console.log pseudo-contract.
	ConsoleAddress = common.HexToAddress("0x000000000000000000636F6e736F6c652e6c6f67")
)

// Arena holds all nodes of one call-trace tree.
type Arena struct {
	Nodes []Node `json:"nodes"`
}

// Node is a single call frame within an arena. Children reference other
// nodes in the same arena by index, in call order.
type Node struct {
	Idx      int       `json:"idx"`
	Children []int     `json:"children"`
	Trace    CallTrace `json:"trace"`
}

// CallTrace is the recorded execution of one call or contract creation.
// Contract is nil when the execution engine could not identify the callee.
type CallTrace struct {
	Address  common.Address
	Contract *string
	GasCost  uint64
	Data     CallData
}

// CallData is the call payload: either the raw input bytes or the call
// decoded against the contract ABI. Exactly one of the two cases is
// present on any trace.
type CallData interface {
	isCallData()
}

// RawCall is an undecoded call payload. Created marks contract-creation
// calls, where Input is the creation bytecode.
type RawCall struct {
	Input   hexutil.Bytes `json:"input"`
	Created bool          `json:"created"`
}

// DecodedCall is a call resolved to a function name and signature.
type DecodedCall struct {
	Func string `json:"func"`
	Sig  string `json:"sig"`
}

func (RawCall) isCallData()     {}
func (DecodedCall) isCallData() {}

// Validate checks that every child reference points at a node inside the
// arena. Acyclicity and single-rootedness are the trace producer's
// invariants to uphold.
func (a *Arena) Validate() error {
	for i := range a.Nodes {
		for _, child := range a.Nodes[i].Children {
			if child < 0 || child >= len(a.Nodes) {
				return fmt.Errorf("node %d references out-of-range child %d", i, child)
			}
		}
	}

	return nil
}

type callDataEnvelope struct {
	Raw     *RawCall     `json:"raw,omitempty"`
	Decoded *DecodedCall `json:"decoded,omitempty"`
}

type callTraceJSON struct {
	Address  common.Address   `json:"address"`
	Contract *string          `json:"contract,omitempty"`
	GasCost  uint64           `json:"gas_cost"`
	Data     callDataEnvelope `json:"data"`
}

// MarshalJSON tags the payload with its case, "raw" or "decoded".
func (t CallTrace) MarshalJSON() ([]byte, error) {
	out := callTraceJSON{
		Address:  t.Address,
		Contract: t.Contract,
		GasCost:  t.GasCost,
	}

	switch data := t.Data.(type) {
	case RawCall:
		out.Data.Raw = &data
	case DecodedCall:
		out.Data.Decoded = &data
	default:
		return nil, fmt.Errorf("unsupported call data type %T", t.Data)
	}

	return json.Marshal(out)
}

// UnmarshalJSON decodes the tagged payload, rejecting traces that carry
// both cases or neither.
func (t *CallTrace) UnmarshalJSON(data []byte) error {
	var in callTraceJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}

	if in.Data.Raw != nil && in.Data.Decoded != nil {
		return fmt.Errorf("call data carries both raw and decoded payloads")
	}

	t.Address = in.Address
	t.Contract = in.Contract
	t.GasCost = in.GasCost

	switch {
	case in.Data.Raw != nil:
		t.Data = *in.Data.Raw
	case in.Data.Decoded != nil:
		t.Data = *in.Data.Decoded
	default:
		return fmt.Errorf("call data carries neither raw nor decoded payload")
	}

	return nil
}

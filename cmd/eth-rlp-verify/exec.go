package main

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/urfave/cli"

	"github.com/NethermindEth/eth-rlp-verify/codec"
	"github.com/NethermindEth/eth-rlp-verify/eras"
	"github.com/NethermindEth/eth-rlp-verify/types"
)

// Request is one exec operation read from stdin.
type Request struct {
	Op      string              `json:"op"`
	Chain   string              `json:"chain,omitempty"`
	Number  *uint64             `json:"number,omitempty"`
	Hash    string              `json:"hash,omitempty"`
	Header  *types.BlockHeader  `json:"header,omitempty"`
	Headers []types.BlockHeader `json:"headers,omitempty"`
	RLPHex  string              `json:"rlp,omitempty"`
	Linkage bool                `json:"linkage,omitempty"`
}

// Response is written to stdout as a single JSON object. Err carries the
// error code when there is one.
type Response struct {
	Ok      bool               `json:"ok"`
	Err     string             `json:"err,omitempty"`
	Index   *int               `json:"index,omitempty"`
	HashHex string             `json:"hash,omitempty"`
	RLPHex  string             `json:"rlp,omitempty"`
	Header  *types.BlockHeader `json:"header,omitempty"`
}

func execCommand() cli.Command {
	return cli.Command{
		Name:  "exec",
		Usage: "run one JSON request from stdin and write a JSON response",
		Description: `Request ops: verify (header, optional number and hash), encode
   (header, optional number), decode (rlp, number), validate (headers,
   linkage). A request may override the chain with "chain".`,
		Action: withEnv(func(ctx *cli.Context, e *env) error {
			var req Request
			if err := json.NewDecoder(e.in).Decode(&req); err != nil {
				_ = writeResponse(e, Response{Err: fmt.Sprintf("bad request: %v", err)})
				return fmt.Errorf("bad request: %w", err)
			}
			resp := e.exec(req)
			if err := writeResponse(e, resp); err != nil {
				return err
			}
			if !resp.Ok {
				return fmt.Errorf("%s: %s", req.Op, resp.Err)
			}
			return nil
		}),
	}
}

func writeResponse(e *env, resp Response) error {
	enc := json.NewEncoder(e.out)
	enc.SetEscapeHTML(false)
	return enc.Encode(resp)
}

func fail(err error) Response {
	return Response{Ok: false, Err: errorCode(err)}
}

func (e *env) exec(req Request) Response {
	chainID := e.chainID
	if req.Chain != "" {
		id, err := eras.ParseChain(req.Chain)
		if err != nil {
			return Response{Err: "bad chain"}
		}
		chainID = id
	}
	number := func(h *types.BlockHeader) uint64 {
		if req.Number != nil {
			return *req.Number
		}
		if h != nil {
			return h.Number
		}
		return 0
	}

	switch req.Op {
	case "verify":
		if req.Header == nil {
			return Response{Err: "missing header"}
		}
		n := number(req.Header)
		expected := req.Header.BlockHash
		if req.Hash != "" {
			expected = req.Hash
		}
		hash, err := e.verifier.CheckHash(n, req.Header, expected, chainID)
		if lerr := e.record(chainID, n, expected, err); lerr != nil {
			return fail(lerr)
		}
		if err != nil {
			return fail(err)
		}
		return Response{Ok: true, HashHex: hash.Hex()}

	case "encode":
		if req.Header == nil {
			return Response{Err: "missing header"}
		}
		b, err := e.verifier.Encode(number(req.Header), req.Header, chainID)
		if err != nil {
			return fail(err)
		}
		return Response{Ok: true, RLPHex: hexutil.Encode(b)}

	case "decode":
		if req.Number == nil {
			return Response{Err: "missing number"}
		}
		raw, err := codec.Bytes(req.RLPHex)
		if err != nil {
			return Response{Err: "bad rlp hex"}
		}
		h, err := e.verifier.Decode(*req.Number, raw, chainID)
		if err != nil {
			return fail(err)
		}
		return Response{Ok: true, HashHex: h.BlockHash, Header: &h}

	case "validate":
		err := e.verifier.CheckSequenceParallel(context.Background(), req.Headers, chainID, req.Linkage, e.cfg.Workers)
		if lerr := e.recordSequence(chainID, req.Headers, err); lerr != nil {
			return fail(lerr)
		}
		if err != nil {
			resp := fail(err)
			resp.Index = failingIndex(err)
			return resp
		}
		return Response{Ok: true}

	default:
		return Response{Err: "unknown op"}
	}
}

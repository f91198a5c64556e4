package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/urfave/cli"

	"github.com/NethermindEth/eth-rlp-verify/codec"
	"github.com/NethermindEth/eth-rlp-verify/eras"
	"github.com/NethermindEth/eth-rlp-verify/store"
	"github.com/NethermindEth/eth-rlp-verify/types"
	"github.com/NethermindEth/eth-rlp-verify/verifier"
)

var errNoInput = errors.New("no input given")

func verifyCommand() cli.Command {
	return cli.Command{
		Name:      "verify",
		Usage:     "verify one JSON header against its block hash",
		UsageText: "eth-rlp-verify [global options] verify --header FILE [--number N] [--hash HEX]",
		Flags: []cli.Flag{
			cli.StringFlag{Name: "header, H", Usage: "JSON header file, - for stdin"},
			cli.Uint64Flag{Name: "number, n", Usage: "block number used for era selection (default: header number)"},
			cli.StringFlag{Name: "hash", Usage: "expected block hash (default: header block_hash)"},
		},
		Action: withEnv(func(ctx *cli.Context, e *env) error {
			path := ctx.String("header")
			if path == "" {
				return errNoInput
			}
			h, err := readHeader(path, e.in)
			if err != nil {
				return err
			}
			number := h.Number
			if ctx.IsSet("number") {
				number = ctx.Uint64("number")
			}
			expected := h.BlockHash
			if ctx.IsSet("hash") {
				expected = ctx.String("hash")
			}

			err = e.verifier.Check(number, &h, expected, e.chainID)
			if lerr := e.record(e.chainID, number, expected, err); lerr != nil {
				return lerr
			}
			if err != nil {
				fmt.Fprintf(e.out, "block %d: invalid: %s\n", number, errorCode(err))
				return fmt.Errorf("block %d: %w", number, err)
			}
			fmt.Fprintf(e.out, "block %d: valid\n", number)
			return nil
		}),
	}
}

func validateCommand() cli.Command {
	return cli.Command{
		Name:      "validate",
		Usage:     "verify a JSON array of headers and their parent hash linkage",
		UsageText: "eth-rlp-verify [global options] validate --headers FILE [--no-linkage] [--workers N]",
		Flags: []cli.Flag{
			cli.StringFlag{Name: "headers, H", Usage: "JSON array file, - for stdin"},
			cli.BoolFlag{Name: "no-linkage", Usage: "only verify each header's own hash"},
			cli.IntFlag{Name: "workers, w", Usage: "concurrent hash checks (default: config workers)"},
		},
		Action: withEnv(func(ctx *cli.Context, e *env) error {
			path := ctx.String("headers")
			if path == "" {
				return errNoInput
			}
			hs, err := readHeaders(path, e.in)
			if err != nil {
				return err
			}
			workers := e.cfg.Workers
			if ctx.IsSet("workers") {
				workers = ctx.Int("workers")
			}
			linkage := !ctx.Bool("no-linkage")

			err = e.verifier.CheckSequenceParallel(context.Background(), hs, e.chainID, linkage, workers)
			if lerr := e.recordSequence(e.chainID, hs, err); lerr != nil {
				return lerr
			}
			if err != nil {
				fmt.Fprintf(e.out, "invalid: %s\n", errorCode(err))
				return err
			}
			fmt.Fprintf(e.out, "%d headers valid\n", len(hs))
			return nil
		}),
	}
}

func encodeCommand() cli.Command {
	return cli.Command{
		Name:  "encode",
		Usage: "print the RLP encoding of a JSON header",
		Flags: []cli.Flag{
			cli.StringFlag{Name: "header, H", Usage: "JSON header file, - for stdin"},
			cli.Uint64Flag{Name: "number, n", Usage: "block number used for era selection (default: header number)"},
		},
		Action: withEnv(func(ctx *cli.Context, e *env) error {
			path := ctx.String("header")
			if path == "" {
				return errNoInput
			}
			h, err := readHeader(path, e.in)
			if err != nil {
				return err
			}
			number := h.Number
			if ctx.IsSet("number") {
				number = ctx.Uint64("number")
			}
			b, err := e.verifier.Encode(number, &h, e.chainID)
			if err != nil {
				return err
			}
			fmt.Fprintln(e.out, hexutil.Encode(b))
			return nil
		}),
	}
}

func decodeCommand() cli.Command {
	return cli.Command{
		Name:  "decode",
		Usage: "print the JSON header of an RLP encoding",
		Flags: []cli.Flag{
			cli.StringFlag{Name: "rlp", Usage: "hex encoded header"},
			cli.Uint64Flag{Name: "number, n", Usage: "block number used for era selection"},
		},
		Action: withEnv(func(ctx *cli.Context, e *env) error {
			if !ctx.IsSet("rlp") || !ctx.IsSet("number") {
				return errors.New("--rlp and --number are required")
			}
			raw, err := codec.Bytes(ctx.String("rlp"))
			if err != nil {
				return fmt.Errorf("--rlp: %w", err)
			}
			h, err := e.verifier.Decode(ctx.Uint64("number"), raw, e.chainID)
			if err != nil {
				return err
			}
			return writeJSON(e.out, h)
		}),
	}
}

func erasCommand() cli.Command {
	return cli.Command{
		Name:  "eras",
		Usage: "print the header layouts of the selected chain",
		Action: withEnv(func(ctx *cli.Context, e *env) error {
			fmt.Fprintf(e.out, "chain %s (%d)\n", eras.ChainName(e.chainID), e.chainID)
			for _, entry := range eras.DefaultTable().Entries(e.chainID) {
				fmt.Fprintf(e.out, "%-9s %12d %20d %2d fields\n",
					entry.Era, entry.First, entry.Last, eras.SchemaFor(entry.Era).Len())
			}
			return nil
		}),
	}
}

func failingIndex(err error) *int {
	var seqErr *verifier.SequenceError
	if errors.As(err, &seqErr) {
		i := seqErr.Index
		return &i
	}
	return nil
}

// record stores the verdict for one header of chainID when a ledger is
// configured.
func (e *env) record(chainID uint64, number uint64, hash string, err error) error {
	l, lerr := e.ledgerFor(chainID)
	if lerr != nil || l == nil {
		return lerr
	}
	v := store.Verdict{
		BlockHash: hash,
		Valid:     err == nil,
		CheckedAt: uint64(time.Now().Unix()),
	}
	if d, rerr := e.verifier.Resolve(number, chainID); rerr == nil {
		v.Era = d.Era.String()
	}
	if err != nil {
		v.Code = errorCode(err)
	}
	if perr := l.Put(number, v); perr != nil {
		return fmt.Errorf("ledger: %w", perr)
	}
	return nil
}

// recordSequence stores verdicts for the headers a sequence check looked
// at: all of them on success, up to and including the failing one otherwise.
func (e *env) recordSequence(chainID uint64, hs []types.BlockHeader, err error) error {
	last := len(hs) - 1
	var seqErr *verifier.SequenceError
	if errors.As(err, &seqErr) {
		last = seqErr.Index
	}
	for i := 0; i <= last; i++ {
		var herr error
		if seqErr != nil && i == seqErr.Index {
			herr = seqErr.Err
		}
		if rerr := e.record(chainID, hs[i].Number, hs[i].BlockHash, herr); rerr != nil {
			return rerr
		}
	}
	return nil
}

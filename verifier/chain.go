package verifier

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/NethermindEth/eth-rlp-verify/eras"
	"github.com/NethermindEth/eth-rlp-verify/types"
)

// SequenceError reports the position of the first failing header.
type SequenceError struct {
	Index  int
	Number uint64
	Err    error
}

func (e *SequenceError) Error() string {
	return fmt.Sprintf("header %d (block %d): %v", e.Index, e.Number, e.Err)
}

func (e *SequenceError) Unwrap() error { return e.Err }

// CheckSequence verifies every header against its own number and block hash,
// in order, stopping at the first failure. With linkage set, each header
// after the first must also declare the previous header's block hash as its
// parent hash. The first header's parent is never checked.
func (v *Verifier) CheckSequence(headers []types.BlockHeader, chainID uint64, linkage bool) error {
	err := v.checkSequence(headers, chainID, linkage, nil)
	v.metrics.observeSequence(err)
	return err
}

// CheckSequenceParallel hash-verifies headers on up to workers goroutines and
// then runs the linkage pass in input order. The reported failure is the same
// one CheckSequence would report.
func (v *Verifier) CheckSequenceParallel(
	ctx context.Context,
	headers []types.BlockHeader,
	chainID uint64,
	linkage bool,
	workers int,
) error {
	if workers < 1 {
		workers = 1
	}
	checked := make([]error, len(headers))

	var g errgroup.Group
	g.SetLimit(workers)
	for i := range headers {
		if err := ctx.Err(); err != nil {
			_ = g.Wait()
			return err
		}
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			h := &headers[i]
			checked[i] = v.Check(h.Number, h, h.BlockHash, chainID)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	err := v.checkSequence(headers, chainID, linkage, checked)
	v.metrics.observeSequence(err)
	return err
}

// checkSequence walks headers in order. When checked is non-nil it holds
// the per-header results already computed.
func (v *Verifier) checkSequence(headers []types.BlockHeader, chainID uint64, linkage bool, checked []error) error {
	for i := range headers {
		h := &headers[i]

		var err error
		if checked != nil {
			err = checked[i]
		} else {
			err = v.Check(h.Number, h, h.BlockHash, chainID)
		}
		if err != nil {
			return &SequenceError{Index: i, Number: h.Number, Err: err}
		}

		if !linkage || i == 0 {
			continue
		}
		prev := headers[i-1].BlockHash
		parent := h.ParentHashOrEmpty()
		if parent != prev {
			v.log.Error("parent hash mismatch",
				zap.Uint64("number", h.Number),
				zap.String("expected", prev),
				zap.String("got", parent),
			)
			return &SequenceError{
				Index:  i,
				Number: h.Number,
				Err: eras.NewError(eras.CHAIN_ERR_LINKAGE,
					fmt.Sprintf("parent hash %q, previous block hash %q", parent, prev)),
			}
		}
	}
	return nil
}

package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/urfave/cli"
	"go.uber.org/zap"

	"github.com/NethermindEth/eth-rlp-verify/config"
	"github.com/NethermindEth/eth-rlp-verify/eras"
	"github.com/NethermindEth/eth-rlp-verify/logging"
	"github.com/NethermindEth/eth-rlp-verify/store"
	"github.com/NethermindEth/eth-rlp-verify/types"
	"github.com/NethermindEth/eth-rlp-verify/verifier"
)

var globalFlags = []cli.Flag{
	cli.StringFlag{Name: "config, c", Usage: "YAML configuration file"},
	cli.StringFlag{Name: "chain", Usage: "mainnet, sepolia or a decimal chain id"},
	cli.BoolFlag{Name: "debug, d", Usage: "log at debug level"},
	cli.StringFlag{Name: "ledger", Usage: "record verdicts in a bbolt ledger under this directory"},
	cli.StringFlag{Name: "metrics", Usage: "write counters to this file in text exposition format on exit"},
}

func newApp(stdin io.Reader, stdout io.Writer) *cli.App {
	app := cli.NewApp()
	app.Name = "eth-rlp-verify"
	app.Usage = "recompute Ethereum block header hashes and check parent linkage"
	app.Writer = stdout
	app.Metadata = map[string]interface{}{stdinKey: stdin}
	app.Flags = globalFlags
	app.Commands = []cli.Command{
		verifyCommand(),
		validateCommand(),
		encodeCommand(),
		decodeCommand(),
		erasCommand(),
		execCommand(),
	}
	return app
}

const stdinKey = "stdin"

func stdinOf(ctx *cli.Context) io.Reader {
	if r, ok := ctx.App.Metadata[stdinKey].(io.Reader); ok {
		return r
	}
	return os.Stdin
}

// env is the per-invocation state shared by all commands.
type env struct {
	cfg      config.Config
	chainID  uint64
	log      *zap.Logger
	verifier *verifier.Verifier
	ledgers  map[uint64]*store.Ledger // by chain id, opened on first use
	in       io.Reader
	out      io.Writer

	registry    *prometheus.Registry
	metricsPath string
	closeLog    func() error
}

func setup(ctx *cli.Context) (*env, error) {
	cfg := config.Default()
	if path := ctx.GlobalString("config"); path != "" {
		var err error
		cfg, err = config.Load(path)
		if err != nil {
			return nil, err
		}
	}
	if ctx.GlobalIsSet("chain") {
		cfg.Chain = ctx.GlobalString("chain")
	}
	if path := ctx.GlobalString("ledger"); path != "" {
		cfg.LedgerPath = path
	}
	if err := config.Validate(cfg); err != nil {
		return nil, err
	}
	chainID, err := config.ChainID(cfg)
	if err != nil {
		return nil, err
	}

	log, closeLog, err := logging.New(cfg.LogLevel, ctx.GlobalBool("debug"), cfg.LogPath)
	if err != nil {
		return nil, err
	}
	e := &env{
		cfg:         cfg,
		chainID:     chainID,
		log:         log,
		in:          stdinOf(ctx),
		out:         ctx.App.Writer,
		registry:    prometheus.NewRegistry(),
		metricsPath: ctx.GlobalString("metrics"),
		closeLog:    closeLog,
		ledgers:     make(map[uint64]*store.Ledger),
	}
	e.verifier, err = verifier.NewVerifier(
		verifier.WithLogger(log),
		verifier.WithRegisterer(e.registry),
	)
	if err != nil {
		_ = closeLog()
		return nil, err
	}
	if cfg.LedgerPath != "" {
		if _, err := e.ledgerFor(chainID); err != nil {
			_ = closeLog()
			return nil, err
		}
	}
	return e, nil
}

// ledgerFor returns the ledger of chainID, or nil when no ledger path is
// configured. Each chain has its own database so that verdicts of different
// chains at the same height never collide.
func (e *env) ledgerFor(chainID uint64) (*store.Ledger, error) {
	if e.cfg.LedgerPath == "" {
		return nil, nil
	}
	if l, ok := e.ledgers[chainID]; ok {
		return l, nil
	}
	l, err := store.Open(e.cfg.LedgerPath, eras.ChainName(chainID))
	if err != nil {
		return nil, fmt.Errorf("ledger: %w", err)
	}
	e.ledgers[chainID] = l
	return l, nil
}

func (e *env) Close() error {
	var errs []error
	if e.metricsPath != "" {
		if err := prometheus.WriteToTextfile(e.metricsPath, e.registry); err != nil {
			errs = append(errs, fmt.Errorf("metrics: %w", err))
		}
	}
	for id, l := range e.ledgers {
		if err := l.Close(); err != nil {
			errs = append(errs, fmt.Errorf("ledger %s: %w", eras.ChainName(id), err))
		}
	}
	errs = append(errs, e.closeLog())
	return errors.Join(errs...)
}

// withEnv wraps a command action with setup and teardown.
func withEnv(action func(*cli.Context, *env) error) func(*cli.Context) error {
	return func(ctx *cli.Context) error {
		e, err := setup(ctx)
		if err != nil {
			return err
		}
		err = action(ctx, e)
		if cerr := e.Close(); cerr != nil && err == nil {
			err = cerr
		}
		return err
	}
}

// readInput reads path, or r when path is "-".
func readInput(path string, r io.Reader) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(r)
	}
	return os.ReadFile(path)
}

func readHeader(path string, r io.Reader) (types.BlockHeader, error) {
	var h types.BlockHeader
	raw, err := readInput(path, r)
	if err != nil {
		return h, err
	}
	if err := json.Unmarshal(raw, &h); err != nil {
		return h, fmt.Errorf("parse header %s: %w", path, err)
	}
	return h, nil
}

func readHeaders(path string, r io.Reader) ([]types.BlockHeader, error) {
	raw, err := readInput(path, r)
	if err != nil {
		return nil, err
	}
	var hs []types.BlockHeader
	if err := json.Unmarshal(raw, &hs); err != nil {
		return nil, fmt.Errorf("parse headers %s: %w", path, err)
	}
	return hs, nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// errorCode is the taxonomy code of err, or its text when it has none.
func errorCode(err error) string {
	if code, ok := eras.CodeOf(err); ok {
		return string(code)
	}
	return strings.TrimSpace(err.Error())
}

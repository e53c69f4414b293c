package ledger

import (
	"context"
	"crypto/ecdsa"
	"log/slog"
	"math/big"
	"strings"
	"time"

	"auction-sync/internal/domain/auction"
	"auction-sync/internal/pkg/config"
	"auction-sync/internal/pkg/errs"
	"auction-sync/internal/usecase/shared"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethclient"
)

var (
	ErrInvalidContractAddress = errs.New("invalid contract address")
	ErrInvalidPrivateKey      = errs.New("invalid signing key")
	ErrNoContractCode         = errs.New("no contract deployed at address")
	ErrChainIDMismatch        = errs.New("chain id mismatch")
	ErrValueOutOfRange        = errs.New("ledger value out of range")
)

// Backend is the node connection; *ethclient.Client satisfies it.
type Backend interface {
	bind.ContractBackend
	bind.DeployBackend
}

type Options struct {
	Address common.Address
	// ChainID is required when PrivateKey is set.
	ChainID *big.Int
	// PrivateKey is hex encoded. Empty means a read-only session.
	PrivateKey string
}

// Gateway implements shared.LedgerGateway on top of the deployed auction contract.
type Gateway struct {
	contract *bind.BoundContract
	receipts bind.DeployBackend
	address  common.Address
	caller   auction.Identity
	signer   *bind.TransactOpts
	logger   *slog.Logger
}

var _ shared.LedgerGateway = (*Gateway)(nil)

func New(backend Backend, opts Options, logger *slog.Logger) (*Gateway, error) {
	if backend == nil {
		return nil, errs.ErrGatewayUnavailable
	}
	return newGateway(backend, backend, backend, opts, logger)
}

func newGateway(
	caller bind.ContractCaller,
	transactor bind.ContractTransactor,
	receipts bind.DeployBackend,
	opts Options,
	logger *slog.Logger,
) (*Gateway, error) {
	if opts.Address == (common.Address{}) {
		return nil, ErrInvalidContractAddress
	}
	parsed, err := abi.JSON(strings.NewReader(auctionABI))
	if err != nil {
		return nil, errs.Wrap(err, "parse auction abi")
	}

	g := &Gateway{
		contract: bind.NewBoundContract(opts.Address, parsed, caller, transactor, nil),
		receipts: receipts,
		address:  opts.Address,
		logger:   logger,
	}

	if opts.PrivateKey != "" {
		key, err := crypto.HexToECDSA(strings.TrimPrefix(strings.TrimSpace(opts.PrivateKey), "0x"))
		if err != nil {
			return nil, errs.Mark(errs.Wrap(err, "decode private key"), ErrInvalidPrivateKey)
		}
		if opts.ChainID == nil || opts.ChainID.Sign() <= 0 {
			return nil, errs.Wrap(ErrInvalidPrivateKey, "a chain id is required to sign")
		}
		signer, err := bind.NewKeyedTransactorWithChainID(key, opts.ChainID)
		if err != nil {
			return nil, errs.Wrap(err, "create transactor")
		}
		g.signer = signer
		g.caller = identityOf(publicAddress(key))
	}
	return g, nil
}

// Dial connects to the node in cfg, checks the chain and the contract, and returns the
// gateway with a close func for the connection. Failures are marked errs.ErrGatewayUnavailable
// except for a bad key or address.
func Dial(ctx context.Context, cfg config.LedgerConfig, logger *slog.Logger) (*Gateway, func(), error) {
	if !common.IsHexAddress(cfg.ContractAddress) {
		return nil, nil, errs.Wrapf(ErrInvalidContractAddress, "%q", cfg.ContractAddress)
	}
	dctx, cancel := context.WithTimeout(ctx, cfg.DialTimeout)
	defer cancel()

	client, err := ethclient.DialContext(dctx, cfg.RPCURL)
	if err != nil {
		return nil, nil, errs.Mark(errs.Wrap(err, "dial ledger rpc"), errs.ErrGatewayUnavailable)
	}

	chainID, err := client.ChainID(dctx)
	if err != nil {
		client.Close()
		return nil, nil, errs.Mark(errs.Wrap(err, "read chain id"), errs.ErrGatewayUnavailable)
	}
	if cfg.ChainID > 0 && chainID.Int64() != cfg.ChainID {
		client.Close()
		return nil, nil, errs.Wrapf(ErrChainIDMismatch, "node reports %s, configured %d", chainID, cfg.ChainID)
	}

	address := common.HexToAddress(cfg.ContractAddress)
	code, err := client.CodeAt(dctx, address, nil)
	if err != nil {
		client.Close()
		return nil, nil, errs.Mark(errs.Wrap(err, "read contract code"), errs.ErrGatewayUnavailable)
	}
	if len(code) == 0 {
		client.Close()
		return nil, nil, errs.Mark(errs.Wrapf(ErrNoContractCode, "%s", address.Hex()), errs.ErrGatewayUnavailable)
	}

	g, err := New(client, Options{Address: address, ChainID: chainID, PrivateKey: cfg.PrivateKey}, logger)
	if err != nil {
		client.Close()
		return nil, nil, err
	}
	logger.Info("connected to ledger",
		slog.String("contract", address.Hex()),
		slog.String("chain_id", chainID.String()),
		slog.String("caller", g.caller.String()),
		slog.Bool("read_only", g.signer == nil))
	return g, client.Close, nil
}

func (g *Gateway) Caller() auction.Identity {
	return g.caller
}

func (g *Gateway) call(ctx context.Context, method string, args ...any) ([]any, error) {
	var out []any
	opts := &bind.CallOpts{Context: ctx}
	if g.signer != nil {
		opts.From = g.signer.From
	}
	if err := g.contract.Call(opts, &out, method, args...); err != nil {
		return nil, errs.Wrapf(err, "call %s", method)
	}
	return out, nil
}

func (g *Gateway) AdminIdentity(ctx context.Context) (auction.Identity, error) {
	out, err := g.call(ctx, methodAdmin)
	if err != nil {
		return "", err
	}
	return identityOf(*abi.ConvertType(out[0], new(common.Address)).(*common.Address)), nil
}

func (g *Gateway) HistoricalAuctionCount(ctx context.Context) (uint64, error) {
	out, err := g.call(ctx, methodHistoricalCount)
	if err != nil {
		return 0, err
	}
	return toUint64(*abi.ConvertType(out[0], new(*big.Int)).(**big.Int))
}

func (g *Gateway) AuctionRecord(ctx context.Context, id uint64) (auction.Record, error) {
	out, err := g.call(ctx, methodGetAuction, new(big.Int).SetUint64(id))
	if err != nil {
		return auction.Record{}, err
	}
	product := *abi.ConvertType(out[0], new(string)).(*string)
	winner := *abi.ConvertType(out[1], new(common.Address)).(*common.Address)
	bid := *abi.ConvertType(out[2], new(*big.Int)).(**big.Int)
	end := *abi.ConvertType(out[3], new(*big.Int)).(**big.Int)

	endsAt, err := toTime(end)
	if err != nil {
		return auction.Record{}, errs.Wrapf(err, "auction %d end time", id)
	}
	return auction.Record{
		ID:            id,
		Product:       product,
		Winner:        identityOf(winner),
		WinningAmount: auction.AmountFromWei(bid),
		EndsAt:        endsAt,
	}, nil
}

func (g *Gateway) BidOf(ctx context.Context, id uint64, who auction.Identity) (auction.Amount, error) {
	out, err := g.call(ctx, methodBids, new(big.Int).SetUint64(id), who.Address())
	if err != nil {
		return auction.Amount{}, err
	}
	return auction.AmountFromWei(*abi.ConvertType(out[0], new(*big.Int)).(**big.Int)), nil
}

func (g *Gateway) CurrentAuctionSummary(ctx context.Context) (shared.AuctionSummary, error) {
	var s shared.AuctionSummary

	out, err := g.call(ctx, methodAuctionActive)
	if err != nil {
		return s, err
	}
	s.Active = *abi.ConvertType(out[0], new(bool)).(*bool)

	if out, err = g.call(ctx, methodCurrentProduct); err != nil {
		return s, err
	}
	s.Product = *abi.ConvertType(out[0], new(string)).(*string)

	if out, err = g.call(ctx, methodHighestBid); err != nil {
		return s, err
	}
	s.HighestBid = auction.AmountFromWei(*abi.ConvertType(out[0], new(*big.Int)).(**big.Int))

	if out, err = g.call(ctx, methodHighestBidder); err != nil {
		return s, err
	}
	s.HighestBidder = identityOf(*abi.ConvertType(out[0], new(common.Address)).(*common.Address))

	if out, err = g.call(ctx, methodAuctionEndTime); err != nil {
		return s, err
	}
	if s.EndsAt, err = toTime(*abi.ConvertType(out[0], new(*big.Int)).(**big.Int)); err != nil {
		return s, errs.Wrap(err, "auction end time")
	}
	return s, nil
}

func (g *Gateway) SubmitBid(ctx context.Context, amount auction.Amount) (shared.Receipt, error) {
	return g.transact(ctx, methodPlaceBid, amount.Wei())
}

func (g *Gateway) SubmitEndAuction(ctx context.Context) (shared.Receipt, error) {
	return g.transact(ctx, methodEndAuction, nil)
}

func (g *Gateway) SubmitWithdraw(ctx context.Context, auctionID uint64) (shared.Receipt, error) {
	return g.transact(ctx, methodWithdraw, nil, new(big.Int).SetUint64(auctionID))
}

func (g *Gateway) SubmitCreateAuction(ctx context.Context, product string, durationMinutes uint64) (shared.Receipt, error) {
	return g.transact(ctx, methodStartNewAuction, nil, product, new(big.Int).SetUint64(durationMinutes))
}

func (g *Gateway) SubmitChangeAdmin(ctx context.Context, newAdmin auction.Identity) (shared.Receipt, error) {
	return g.transact(ctx, methodChangeAdmin, nil, newAdmin.Address())
}

// transact sends one transaction and waits for its receipt. It never resends.
func (g *Gateway) transact(ctx context.Context, method string, value *big.Int, args ...any) (shared.Receipt, error) {
	if g.signer == nil {
		return shared.Receipt{}, errs.ErrNoSigner
	}
	opts := *g.signer
	opts.Context = ctx
	opts.Value = value

	tx, err := g.contract.Transact(&opts, method, args...)
	if err != nil {
		return shared.Receipt{}, classifySubmitError(method, err)
	}
	receipt := shared.Receipt{TxHash: tx.Hash().Hex()}
	g.logger.Info("submission broadcast",
		slog.String("method", method),
		slog.String("tx", receipt.TxHash))

	mined, err := bind.WaitMined(ctx, g.receipts, tx)
	if err != nil {
		return receipt, errs.Mark(errs.Wrapf(err, "await %s confirmation", method), errs.ErrLedgerIndeterminate)
	}
	if mined.Status != types.ReceiptStatusSuccessful {
		return receipt, errs.Mark(errs.Newf("%s reverted in block %s", method, mined.BlockNumber), errs.ErrLedgerRejected)
	}
	return receipt, nil
}

func publicAddress(key *ecdsa.PrivateKey) common.Address {
	return crypto.PubkeyToAddress(key.PublicKey)
}

func identityOf(addr common.Address) auction.Identity {
	if addr == (common.Address{}) {
		return ""
	}
	return auction.IdentityFromAddress(addr)
}

func toUint64(v *big.Int) (uint64, error) {
	if v == nil || v.Sign() < 0 || !v.IsUint64() {
		return 0, errs.Wrapf(ErrValueOutOfRange, "%v", v)
	}
	return v.Uint64(), nil
}

func toTime(v *big.Int) (time.Time, error) {
	secs, err := toUint64(v)
	if err != nil {
		return time.Time{}, err
	}
	if secs > 1<<62 {
		return time.Time{}, errs.Wrapf(ErrValueOutOfRange, "timestamp %d", secs)
	}
	return time.Unix(int64(secs), 0).UTC(), nil
}

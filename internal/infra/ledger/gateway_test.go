//go:build unit

package ledger

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"math/big"
	"strings"
	"sync"
	"testing"
	"time"

	"auction-sync/internal/domain/auction"
	"auction-sync/internal/pkg/errs"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testKey = "b71c71a67e1177ad4e901695e1b4b9ee17ae16c6668d313eac2f96dbcda3f291"

var (
	contractAddr = common.HexToAddress("0x4f96c16c3aa1e0ab476cf8cacbf5d639cb6aa4d3")
	bobAddr      = common.HexToAddress("0x0000000000000000000000000000000000000b0b")
)

// fakeNode answers contract calls from a table and records sent transactions.
type fakeNode struct {
	abi abi.ABI

	mu          sync.Mutex
	views       map[string]func(args []any) []any
	callErr     map[string]error
	estimateErr error
	sendErr     error
	receiptErr  error
	status      uint64
	sent        []*types.Transaction
	calls       []ethereum.CallMsg
}

func newFakeNode(t *testing.T) *fakeNode {
	t.Helper()
	parsed, err := abi.JSON(strings.NewReader(auctionABI))
	require.NoError(t, err)
	return &fakeNode{
		abi:     parsed,
		views:   map[string]func([]any) []any{},
		callErr: map[string]error{},
		status:  types.ReceiptStatusSuccessful,
	}
}

func (f *fakeNode) view(method string, fn func(args []any) []any) {
	f.views[method] = fn
}

func (f *fakeNode) CodeAt(ctx context.Context, account common.Address, blockNumber *big.Int) ([]byte, error) {
	return []byte{0x60}, nil
}

func (f *fakeNode) CallContract(ctx context.Context, call ethereum.CallMsg, blockNumber *big.Int) ([]byte, error) {
	f.mu.Lock()
	f.calls = append(f.calls, call)
	f.mu.Unlock()

	m, err := f.abi.MethodById(call.Data[:4])
	if err != nil {
		return nil, err
	}
	if err := f.callErr[m.Name]; err != nil {
		return nil, err
	}
	args, err := m.Inputs.Unpack(call.Data[4:])
	if err != nil {
		return nil, err
	}
	fn, ok := f.views[m.Name]
	if !ok {
		return nil, errors.New("unexpected call " + m.Name)
	}
	return m.Outputs.Pack(fn(args)...)
}

func (f *fakeNode) HeaderByNumber(ctx context.Context, number *big.Int) (*types.Header, error) {
	return &types.Header{Number: big.NewInt(1)}, nil
}

func (f *fakeNode) PendingCodeAt(ctx context.Context, account common.Address) ([]byte, error) {
	return []byte{0x60}, nil
}

func (f *fakeNode) PendingNonceAt(ctx context.Context, account common.Address) (uint64, error) {
	return 0, nil
}

func (f *fakeNode) SuggestGasPrice(ctx context.Context) (*big.Int, error) {
	return big.NewInt(1_000_000_000), nil
}

func (f *fakeNode) SuggestGasTipCap(ctx context.Context) (*big.Int, error) {
	return big.NewInt(1), nil
}

func (f *fakeNode) EstimateGas(ctx context.Context, call ethereum.CallMsg) (uint64, error) {
	if f.estimateErr != nil {
		return 0, f.estimateErr
	}
	return 100_000, nil
}

func (f *fakeNode) SendTransaction(ctx context.Context, tx *types.Transaction) error {
	if f.sendErr != nil {
		return f.sendErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, tx)
	return nil
}

func (f *fakeNode) TransactionReceipt(ctx context.Context, txHash common.Hash) (*types.Receipt, error) {
	if f.receiptErr != nil {
		return nil, f.receiptErr
	}
	return &types.Receipt{Status: f.status, TxHash: txHash, BlockNumber: big.NewInt(2)}, nil
}

type dataError struct {
	msg  string
	data any
}

func (e dataError) Error() string  { return e.msg }
func (e dataError) ErrorData() any { return e.data }

func newTestGateway(t *testing.T, node *fakeNode, key string) *Gateway {
	t.Helper()
	g, err := newGateway(node, node, node, Options{
		Address:    contractAddr,
		ChainID:    big.NewInt(1337),
		PrivateKey: key,
	}, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)
	return g
}

func wei(s string) *big.Int {
	v, _ := new(big.Int).SetString(s, 10)
	return v
}

func TestNewGateway(t *testing.T) {
	t.Run("signer identity comes from the key", func(t *testing.T) {
		g := newTestGateway(t, newFakeNode(t), "0x"+testKey)
		key, err := crypto.HexToECDSA(testKey)
		require.NoError(t, err)

		assert.Equal(t, auction.IdentityFromAddress(crypto.PubkeyToAddress(key.PublicKey)), g.Caller())
	})

	t.Run("read-only without a key", func(t *testing.T) {
		g := newTestGateway(t, newFakeNode(t), "")
		assert.True(t, g.Caller().IsZero())

		_, err := g.SubmitEndAuction(context.Background())
		assert.ErrorIs(t, err, errs.ErrNoSigner)
	})

	t.Run("bad key", func(t *testing.T) {
		node := newFakeNode(t)
		_, err := newGateway(node, node, node, Options{Address: contractAddr, ChainID: big.NewInt(1), PrivateKey: "zz"},
			slog.New(slog.NewTextHandler(io.Discard, nil)))
		assert.True(t, errs.Is(err, ErrInvalidPrivateKey))
	})

	t.Run("key without chain id", func(t *testing.T) {
		node := newFakeNode(t)
		_, err := newGateway(node, node, node, Options{Address: contractAddr, PrivateKey: testKey},
			slog.New(slog.NewTextHandler(io.Discard, nil)))
		assert.True(t, errs.Is(err, ErrInvalidPrivateKey))
	})

	t.Run("zero contract address", func(t *testing.T) {
		node := newFakeNode(t)
		_, err := newGateway(node, node, node, Options{}, slog.New(slog.NewTextHandler(io.Discard, nil)))
		assert.ErrorIs(t, err, ErrInvalidContractAddress)
	})

	t.Run("nil backend is unavailable", func(t *testing.T) {
		_, err := New(nil, Options{Address: contractAddr}, slog.New(slog.NewTextHandler(io.Discard, nil)))
		assert.ErrorIs(t, err, errs.ErrGatewayUnavailable)
	})
}

func TestGatewayReads(t *testing.T) {
	ctx := context.Background()
	end := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	node := newFakeNode(t)
	node.view(methodHistoricalCount, func([]any) []any { return []any{big.NewInt(2)} })
	node.view(methodGetAuction, func(args []any) []any {
		id := args[0].(*big.Int).Int64()
		return []any{"Lot " + string(rune('A'+id)), bobAddr, wei("1500000000000000000"), big.NewInt(end.Unix() + id)}
	})
	node.view(methodBids, func(args []any) []any {
		if args[0].(*big.Int).Int64() == 1 {
			return []any{wei("250000000000000000")}
		}
		return []any{big.NewInt(0)}
	})
	node.view(methodAuctionActive, func([]any) []any { return []any{true} })
	node.view(methodCurrentProduct, func([]any) []any { return []any{"Vase"} })
	node.view(methodHighestBid, func([]any) []any { return []any{wei("3000000000000000000")} })
	node.view(methodHighestBidder, func([]any) []any { return []any{common.Address{}} })
	node.view(methodAuctionEndTime, func([]any) []any { return []any{big.NewInt(end.Unix())} })
	node.view(methodAdmin, func([]any) []any { return []any{bobAddr} })

	g := newTestGateway(t, node, testKey)

	t.Run("count", func(t *testing.T) {
		n, err := g.HistoricalAuctionCount(ctx)
		require.NoError(t, err)
		assert.Equal(t, uint64(2), n)
	})

	t.Run("auction record", func(t *testing.T) {
		r, err := g.AuctionRecord(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, uint64(1), r.ID)
		assert.Equal(t, "Lot B", r.Product)
		assert.Equal(t, auction.IdentityFromAddress(bobAddr), r.Winner)
		assert.Equal(t, "1.5", r.WinningAmount.String())
		assert.Equal(t, end.Add(time.Second), r.EndsAt)
		assert.False(t, r.Active)
	})

	t.Run("bid of caller", func(t *testing.T) {
		a, err := g.BidOf(ctx, 1, g.Caller())
		require.NoError(t, err)
		assert.Equal(t, "0.25", a.String())
	})

	t.Run("current summary", func(t *testing.T) {
		s, err := g.CurrentAuctionSummary(ctx)
		require.NoError(t, err)
		assert.True(t, s.Active)
		assert.Equal(t, "Vase", s.Product)
		assert.Equal(t, "3", s.HighestBid.String())
		assert.True(t, s.HighestBidder.IsZero())
		assert.Equal(t, end, s.EndsAt)
	})

	t.Run("admin", func(t *testing.T) {
		a, err := g.AdminIdentity(ctx)
		require.NoError(t, err)
		assert.True(t, a.Equal(auction.IdentityFromAddress(bobAddr)))
	})

	t.Run("calls are made from the signer", func(t *testing.T) {
		node.mu.Lock()
		defer node.mu.Unlock()
		require.NotEmpty(t, node.calls)
		assert.Equal(t, g.Caller().Address(), node.calls[0].From)
	})

	t.Run("call failure is returned wrapped", func(t *testing.T) {
		node.callErr[methodAdmin] = errors.New("connection reset")
		defer delete(node.callErr, methodAdmin)

		_, err := g.AdminIdentity(ctx)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "connection reset")
	})

	t.Run("connection loss after dial is a read failure, not unavailability", func(t *testing.T) {
		node.callErr[methodHistoricalCount] = errors.New("dial tcp 127.0.0.1:8545: connect: connection refused")
		defer delete(node.callErr, methodHistoricalCount)

		_, err := g.HistoricalAuctionCount(ctx)
		require.Error(t, err)
		assert.False(t, errs.Is(err, errs.ErrGatewayUnavailable))
	})
}

func TestGatewaySubmissions(t *testing.T) {
	ctx := context.Background()

	t.Run("confirmed bid carries the value in wei", func(t *testing.T) {
		node := newFakeNode(t)
		g := newTestGateway(t, node, testKey)

		r, err := g.SubmitBid(ctx, auction.MustParseAmount("1.25"))
		require.NoError(t, err)

		require.Len(t, node.sent, 1)
		tx := node.sent[0]
		assert.Equal(t, tx.Hash().Hex(), r.TxHash)
		assert.Equal(t, "1250000000000000000", tx.Value().String())
		assert.Equal(t, contractAddr, *tx.To())
		assert.Equal(t, node.abi.Methods[methodPlaceBid].ID, tx.Data()[:4])
	})

	t.Run("arguments are encoded", func(t *testing.T) {
		node := newFakeNode(t)
		g := newTestGateway(t, node, testKey)

		_, err := g.SubmitCreateAuction(ctx, "Vase", 30)
		require.NoError(t, err)

		m := node.abi.Methods[methodStartNewAuction]
		args, err := m.Inputs.Unpack(node.sent[0].Data()[4:])
		require.NoError(t, err)
		assert.Equal(t, "Vase", args[0])
		assert.Equal(t, int64(30), args[1].(*big.Int).Int64())
	})

	t.Run("revert during estimation is a ledger rejection", func(t *testing.T) {
		node := newFakeNode(t)
		node.estimateErr = errors.New("execution reverted: Already bid")
		g := newTestGateway(t, node, testKey)

		_, err := g.SubmitBid(ctx, auction.MustParseAmount("1"))

		assert.True(t, errs.Is(err, errs.ErrLedgerRejected))
		assert.Equal(t, "Already bid", errs.Cause(err))
		assert.Empty(t, node.sent)
	})

	t.Run("revert data is decoded", func(t *testing.T) {
		strType, err := abi.NewType("string", "", nil)
		require.NoError(t, err)
		packed, err := abi.Arguments{{Type: strType}}.Pack("Auction closed")
		require.NoError(t, err)
		data := append([]byte{0x08, 0xc3, 0x79, 0xa0}, packed...)

		node := newFakeNode(t)
		node.estimateErr = dataError{msg: "execution reverted: Auction closed", data: hexutil.Encode(data)}
		g := newTestGateway(t, node, testKey)

		_, err = g.SubmitEndAuction(ctx)

		assert.True(t, errs.Is(err, errs.ErrLedgerRejected))
		assert.Equal(t, "Auction closed", errs.Cause(err))
	})

	t.Run("failed receipt is a ledger rejection with the tx hash", func(t *testing.T) {
		node := newFakeNode(t)
		node.status = types.ReceiptStatusFailed
		g := newTestGateway(t, node, testKey)

		r, err := g.SubmitWithdraw(ctx, 3)

		assert.True(t, errs.Is(err, errs.ErrLedgerRejected))
		assert.NotEmpty(t, r.TxHash)
	})

	t.Run("send failure is indeterminate", func(t *testing.T) {
		node := newFakeNode(t)
		node.sendErr = errors.New("i/o timeout")
		g := newTestGateway(t, node, testKey)

		_, err := g.SubmitChangeAdmin(ctx, auction.IdentityFromAddress(bobAddr))

		assert.True(t, errs.Is(err, errs.ErrLedgerIndeterminate))
		assert.False(t, errs.Is(err, errs.ErrLedgerRejected))
	})

	t.Run("unobserved confirmation is indeterminate", func(t *testing.T) {
		node := newFakeNode(t)
		node.receiptErr = ethereum.NotFound
		g := newTestGateway(t, node, testKey)
		short, cancel := context.WithTimeout(ctx, 50*time.Millisecond)
		defer cancel()

		r, err := g.SubmitEndAuction(short)

		assert.True(t, errs.Is(err, errs.ErrLedgerIndeterminate))
		assert.NotEmpty(t, r.TxHash)
		assert.Len(t, node.sent, 1)
	})
}

func TestRevertReason(t *testing.T) {
	tests := []struct {
		err    error
		reason string
		ok     bool
	}{
		{err: errors.New("execution reverted: Only admin"), reason: "Only admin", ok: true},
		{err: errors.New("execution reverted"), reason: "execution reverted", ok: true},
		{err: errors.New("insufficient funds for gas"), ok: false},
	}
	for _, tt := range tests {
		reason, ok := revertReason(tt.err)
		assert.Equal(t, tt.ok, ok, tt.err.Error())
		assert.Equal(t, tt.reason, reason)
	}
}

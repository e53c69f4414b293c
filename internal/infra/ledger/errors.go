package ledger

import (
	"strings"

	"auction-sync/internal/pkg/errs"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/rpc"
)

const revertMarker = "execution reverted"

// classifySubmitError marks a failed send. A revert seen while estimating gas means the ledger
// refused the call; anything else leaves the outcome unknown.
func classifySubmitError(method string, err error) error {
	if reason, ok := revertReason(err); ok {
		return errs.Mark(errs.New(reason), errs.ErrLedgerRejected)
	}
	return errs.Mark(errs.Wrapf(err, "submit %s", method), errs.ErrLedgerIndeterminate)
}

func revertReason(err error) (string, bool) {
	var dataErr rpc.DataError
	if errs.As(err, &dataErr) {
		if hexData, ok := dataErr.ErrorData().(string); ok {
			if data, derr := hexutil.Decode(hexData); derr == nil {
				if reason, uerr := abi.UnpackRevert(data); uerr == nil {
					return reason, true
				}
			}
		}
	}

	msg := err.Error()
	i := strings.Index(msg, revertMarker)
	if i < 0 {
		return "", false
	}
	reason := strings.TrimLeft(strings.TrimPrefix(msg[i:], revertMarker), ": ")
	if reason == "" {
		reason = revertMarker
	}
	return reason, true
}

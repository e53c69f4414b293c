package auction

import (
	"encoding/json"
	"math/big"
	"strings"

	"auction-sync/internal/pkg/errs"

	"github.com/ethereum/go-ethereum/common"
	"github.com/shopspring/decimal"
)

var (
	ErrInvalidIdentity = errs.New("invalid ledger identity")
	ErrInvalidAmount   = errs.New("invalid monetary amount")
	ErrNegativeAmount  = errs.New("amount cannot be negative")
	ErrAmountPrecision = errs.New("amount has more precision than the ledger unit")
)

// WeiDecimals is the number of fractional digits between the display unit and the ledger unit.
const WeiDecimals = 18

// Identity is an opaque ledger identity. Comparison ignores hex case.
type Identity string

func NewIdentity(s string) (Identity, error) {
	s = strings.TrimSpace(s)
	if !common.IsHexAddress(s) {
		return "", ErrInvalidIdentity
	}
	return Identity(common.HexToAddress(s).Hex()), nil
}

func IdentityFromAddress(addr common.Address) Identity {
	return Identity(addr.Hex())
}

func (i Identity) IsZero() bool {
	return i == ""
}

func (i Identity) Equal(other Identity) bool {
	if i.IsZero() || other.IsZero() {
		return false
	}
	return strings.EqualFold(string(i), string(other))
}

func (i Identity) Address() common.Address {
	return common.HexToAddress(string(i))
}

func (i Identity) String() string {
	return string(i)
}

// Amount is a non-negative value in display units (ether/BNB) that maps exactly onto wei.
type Amount struct {
	value decimal.Decimal
}

func ZeroAmount() Amount {
	return Amount{value: decimal.Zero}
}

func NewAmount(d decimal.Decimal) (Amount, error) {
	if d.IsNegative() {
		return Amount{}, ErrNegativeAmount
	}
	if !d.Equal(d.Truncate(WeiDecimals)) {
		return Amount{}, ErrAmountPrecision
	}
	return Amount{value: d}, nil
}

func ParseAmount(s string) (Amount, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return Amount{}, errs.Mark(err, ErrInvalidAmount)
	}
	return NewAmount(d)
}

func MustParseAmount(s string) Amount {
	a, err := ParseAmount(s)
	if err != nil {
		panic(err)
	}
	return a
}

func AmountFromWei(wei *big.Int) Amount {
	if wei == nil || wei.Sign() <= 0 {
		return ZeroAmount()
	}
	return Amount{value: decimal.NewFromBigInt(wei, -WeiDecimals)}
}

func (a Amount) Wei() *big.Int {
	return a.value.Shift(WeiDecimals).BigInt()
}

func (a Amount) IsPositive() bool {
	return a.value.IsPositive()
}

func (a Amount) IsZero() bool {
	return a.value.IsZero()
}

func (a Amount) Equal(other Amount) bool {
	return a.value.Equal(other.value)
}

func (a Amount) Decimal() decimal.Decimal {
	return a.value
}

func (a Amount) String() string {
	return a.value.String()
}

func (a Amount) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.value.String())
}

func (a *Amount) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return errs.Mark(err, ErrInvalidAmount)
	}
	parsed, err := ParseAmount(s)
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

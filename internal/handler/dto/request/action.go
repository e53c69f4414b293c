package request

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

// Action bodies are bound loosely; their content is checked by the guard so that
// rejections carry a guard reason instead of a binding error.

// LooseText accepts a JSON string or a JSON number and keeps its text.
type LooseText string

func (t *LooseText) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*t = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*t = LooseText(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*t = LooseText(n)
	return nil
}

type PlaceBidRequest struct {
	// Amount in ether, e.g. "0.25" or 0.25.
	Amount LooseText `json:"amount" swaggertype:"string"`
}

func (r PlaceBidRequest) GetAmount() string {
	return strings.TrimSpace(string(r.Amount))
}

type WithdrawRequest struct {
	AuctionID *uint64 `json:"auction_id"`
}

type CreateAuctionRequest struct {
	Product         string    `json:"product"`
	DurationMinutes LooseText `json:"duration_minutes" swaggertype:"integer"`
}

// GetDurationMinutes returns 0 when the value is not a whole number of minutes.
func (r CreateAuctionRequest) GetDurationMinutes() int64 {
	n, err := strconv.ParseInt(strings.TrimSpace(string(r.DurationMinutes)), 10, 64)
	if err != nil {
		return 0
	}
	return n
}

type ChangeAdminRequest struct {
	NewAdmin string `json:"new_admin"`
}

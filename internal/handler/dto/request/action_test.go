//go:build unit

package request_test

import (
	"encoding/json"
	"testing"

	reqdto "auction-sync/internal/handler/dto/request"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlaceBidRequestAmount(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{name: "string", body: `{"amount":"0.25"}`, want: "0.25"},
		{name: "number", body: `{"amount":0.25}`, want: "0.25"},
		{name: "padded string", body: `{"amount":"  1 "}`, want: "1"},
		{name: "words pass through", body: `{"amount":"lots"}`, want: "lots"},
		{name: "null", body: `{"amount":null}`, want: ""},
		{name: "missing", body: `{}`, want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req reqdto.PlaceBidRequest
			require.NoError(t, json.Unmarshal([]byte(tt.body), &req))
			assert.Equal(t, tt.want, req.GetAmount())
		})
	}

	t.Run("non-scalar is still a decode error", func(t *testing.T) {
		var req reqdto.PlaceBidRequest
		assert.Error(t, json.Unmarshal([]byte(`{"amount":{"v":1}}`), &req))
	})
}

func TestCreateAuctionRequestDuration(t *testing.T) {
	tests := []struct {
		name string
		body string
		want int64
	}{
		{name: "number", body: `{"duration_minutes":30}`, want: 30},
		{name: "numeric string", body: `{"duration_minutes":"30"}`, want: 30},
		{name: "negative", body: `{"duration_minutes":-5}`, want: -5},
		{name: "fraction", body: `{"duration_minutes":1.5}`, want: 0},
		{name: "exponent", body: `{"duration_minutes":1e3}`, want: 0},
		{name: "overflow", body: `{"duration_minutes":99999999999999999999}`, want: 0},
		{name: "words", body: `{"duration_minutes":"soon"}`, want: 0},
		{name: "missing", body: `{}`, want: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req reqdto.CreateAuctionRequest
			require.NoError(t, json.Unmarshal([]byte(tt.body), &req))
			assert.Equal(t, tt.want, req.GetDurationMinutes())
		})
	}
}

package model

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestEarningIntervalJSONKeepsPoolOrder(t *testing.T) {
	original := EarningInterval{
		AvgNodeCount:      98.5,
		BlockRewards:      1200000000,
		BondingEarnings:   900000000,
		Earnings:          2100000000,
		EndTime:           1726761600,
		LiquidityEarnings: 300000000,
		LiquidityFees:     900000000,
		RunePriceUSD:      4.21,
		StartTime:         1726758000,
		Pools: []Pool{
			{Pool: "BTC.BTC", AssetLiquidityFees: 10, Earnings: 30, Rewards: 20, RuneLiquidityFees: 5, TotalLiquidityFeesRune: 15},
			{Pool: "ETH.ETH", AssetLiquidityFees: 1, Earnings: 3, Rewards: 2, SaverEarning: 7},
		},
	}

	b, err := json.Marshal(original)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}

	var decoded EarningInterval
	if err := json.Unmarshal(b, &decoded); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}

	if !reflect.DeepEqual(original, decoded) {
		t.Fatalf("round-trip mismatch: %+v != %+v", original, decoded)
	}
}

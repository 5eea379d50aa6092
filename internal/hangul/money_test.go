package hangul

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMoneyPhrase(t *testing.T) {
	cases := []struct {
		amount int64
		want   string
	}{
		{0, "금영원정"},
		{1, "금일원정"},
		{10, "금십원정"},
		{105, "금백오원정"},
		{9900, "금구천구백원정"},
		{10000, "금일만원정"},
		{10001, "금일만일원정"},
		{1_000_000, "금백만원정"},
		{1_485_000, "금백사십팔만오천원정"},
		{1_336_500, "금백삼십삼만육천오백원정"},
		{100_000_000, "금일억원정"},
		{100_020_000, "금일억이만원정"},
		{1_234_567_890_123, "금일조이천삼백사십오억육천칠백팔십구만백이십삼원정"},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, MoneyPhrase(tc.amount), "amount %d", tc.amount)
	}
}

package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatchCardType(t *testing.T) {
	tests := []struct {
		number  string
		want    CardType
		matched bool
	}{
		{"5105105105105100", MasterCard, true},
		{"2221000000000009", MasterCard, true},
		{"2720990000000007", MasterCard, true},
		{"2220000000000000", 0, false},
		{"5018000000000000", MaestroCard, true},
		{"6304000000000000", MaestroCard, true},
		{"4111111111111111", VisaCard, true},
		{"3530111333300000", JcbCard, true},
		{"3528000000000000", JcbCard, true},
		{"371234567890123", AmexCard, true},
		{"340000000000009", AmexCard, true},
		{"30569309025904", DinersclubCard, true},
		{"36000000000008", DinersclubCard, true},
		{"6212345678901234", UnionpayCard, true},
		{"6011000990139424", DiscoverCard, true},
		{"6500000000000002", DiscoverCard, true},
		{"6060000000000000", 0, false},
		{"9999999999999999", 0, false},
		{"1234", 0, false},
		{"411", 0, false},
		{"", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.number, func(t *testing.T) {
			got, ok := MatchCardType(tt.number)
			assert.Equal(t, tt.matched, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMatchCardTypeUsesOnlyPrefix(t *testing.T) {
	got, ok := MatchCardType("4111abcd")
	assert.True(t, ok)
	assert.Equal(t, VisaCard, got)

	got, ok = MatchCardType("4111")
	assert.True(t, ok)
	assert.Equal(t, VisaCard, got)
}

func TestEveryPrefixMatchesAtMostOneIssuer(t *testing.T) {
	for n := 0; n < 10000; n++ {
		prefix := []byte{byte('0' + n/1000), byte('0' + n/100%10), byte('0' + n/10%10), byte('0' + n%10)}
		hits := 0
		for _, p := range cardPatterns {
			if p.re.Match(prefix) {
				hits++
			}
		}
		assert.LessOrEqual(t, hits, 1, "prefix %s", prefix)
	}
}

func TestCardDigitLength(t *testing.T) {
	assert.Equal(t, 15, CardDigitLength(AmexCard, true))
	assert.Equal(t, 14, CardDigitLength(DinersclubCard, true))
	for _, ct := range []CardType{MasterCard, MaestroCard, VisaCard, JcbCard, UnionpayCard, DiscoverCard} {
		assert.Equal(t, 16, CardDigitLength(ct, true), ct.String())
	}
	assert.Equal(t, 16, CardDigitLength(0, false))
}

func TestFormatCardNumber(t *testing.T) {
	tests := []struct {
		name     string
		number   string
		cardType CardType
		want     string
	}{
		{"visa twelve digits", "123456789012", VisaCard, "1234-5678-9012"},
		{"visa full", "4111111111111111", VisaCard, "4111-1111-1111-1111"},
		{"visa partial", "411111", VisaCard, "4111-11"},
		{"unmatched", "99999", 0, "9999-9"},
		{"empty", "", VisaCard, ""},
		{"amex full", "371234567890123", AmexCard, "3712-345678-90123"},
		{"amex first group", "3712", AmexCard, "3712"},
		{"amex second group", "3712345", AmexCard, "3712-345"},
		{"amex second group full", "3712345678", AmexCard, "3712-345678"},
		{"diners full", "30569309025904", DinersclubCard, "3056-930902-5904"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatCardNumber(tt.number, tt.cardType))
		})
	}
}

func TestDescribeCard(t *testing.T) {
	summary := DescribeCard("371234567890123")
	assert.True(t, summary.Matched)
	assert.Equal(t, AmexCard, summary.Type)
	assert.Equal(t, 15, summary.Digits)
	assert.Equal(t, "3712-345678-90123", summary.Formatted)
	assert.True(t, summary.Complete)

	partial := DescribeCard("41111")
	assert.Equal(t, VisaCard, partial.Type)
	assert.False(t, partial.Complete)

	unknown := DescribeCard("99")
	assert.False(t, unknown.Matched)
	assert.Equal(t, "unknown", unknown.Type.String())
	assert.Equal(t, 16, unknown.Digits)
}

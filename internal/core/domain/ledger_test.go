package domain_test

import (
	"testing"

	"github.com/SellSage/biz_management_app/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestEntry_SignedAmount(t *testing.T) {
	tests := []struct {
		name  string
		entry domain.Entry
		want  decimal.Decimal
	}{
		{
			name:  "credit is positive",
			entry: domain.Entry{Amount: decimal.NewFromInt(100), IsCredit: true},
			want:  decimal.NewFromInt(100),
		},
		{
			name:  "debit is negative",
			entry: domain.Entry{Amount: decimal.NewFromInt(100), IsCredit: false},
			want:  decimal.NewFromInt(-100),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.entry.SignedAmount()
			assert.True(t, tt.want.Equal(got), "want %s, got %s", tt.want, got)
		})
	}
}

func TestValidLedgerType(t *testing.T) {
	assert.True(t, domain.ValidLedgerType(domain.LedgerCashAndBank))
	assert.True(t, domain.ValidLedgerType(domain.LedgerCustomerAndVendor))
	assert.False(t, domain.ValidLedgerType(domain.LedgerType("PIGGY_BANK")))
	assert.False(t, domain.ValidLedgerType(domain.LedgerType("")))
}

func TestValidEntryType(t *testing.T) {
	assert.True(t, domain.ValidEntryType(domain.EntrySalesInvoice))
	assert.True(t, domain.ValidEntryType(domain.EntryJournalVoucher))
	assert.False(t, domain.ValidEntryType(domain.EntryType("CRYPTO_AIRDROP")))
}

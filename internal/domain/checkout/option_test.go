package checkout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyOption(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		opt     PaymentOption
		want    StrategyKind
		wantErr error
	}{
		{
			name: "bank card",
			opt:  PaymentOption{ID: "o1", MethodType: MethodBankCard},
			want: StrategyBankCard,
		},
		{
			name: "wallet with account",
			opt:  PaymentOption{ID: "o2", MethodType: MethodWallet, AccountID: "123456"},
			want: StrategyWallet,
		},
		{
			name:    "wallet without account",
			opt:     PaymentOption{ID: "o3", MethodType: MethodWallet},
			wantErr: ErrIncorrectPaymentOption,
		},
		{
			name: "linked card",
			opt:  PaymentOption{ID: "o4", MethodType: MethodLinkedCard, CardID: "c1", CardMask: "518901******0446"},
			want: StrategyLinkedCard,
		},
		{
			name:    "linked card without identifiers",
			opt:     PaymentOption{ID: "o5", MethodType: MethodLinkedCard},
			wantErr: ErrIncorrectPaymentOption,
		},
		{
			name: "sberbank",
			opt:  PaymentOption{ID: "o6", MethodType: MethodSberbank},
			want: StrategySberbank,
		},
		{
			name: "apple pay",
			opt:  PaymentOption{ID: "o7", MethodType: MethodApplePay},
			want: StrategyApplePay,
		},
		{
			name:    "unknown method type",
			opt:     PaymentOption{ID: "o8", MethodType: "cash"},
			wantErr: ErrIncorrectPaymentOption,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := ClassifyOption(tt.opt)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCardDataValidation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		card CardData
		ok   bool
	}{
		{
			name: "valid with spaces in pan",
			card: CardData{PAN: "5189 0100 0000 0446", ExpiryMonth: "12", ExpiryYear: "30", CSC: "123"},
			ok:   true,
		},
		{
			name: "single digit month is padded",
			card: CardData{PAN: "5189010000000446", ExpiryMonth: "3", ExpiryYear: "2030", CSC: "123"},
			ok:   true,
		},
		{
			name: "pan too short",
			card: CardData{PAN: "51890100", ExpiryMonth: "12", ExpiryYear: "30", CSC: "123"},
		},
		{
			name: "month out of range",
			card: CardData{PAN: "5189010000000446", ExpiryMonth: "13", ExpiryYear: "30", CSC: "123"},
		},
		{
			name: "csc not numeric",
			card: CardData{PAN: "5189010000000446", ExpiryMonth: "12", ExpiryYear: "30", CSC: "12a"},
		},
		{
			name: "missing year",
			card: CardData{PAN: "5189010000000446", ExpiryMonth: "12", CSC: "123"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.ok, tt.card.normalized().valid())
		})
	}
}

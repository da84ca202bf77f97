package transaction

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseKind(t *testing.T) {
	t.Parallel()

	t.Run("known kinds", func(t *testing.T) {
		t.Parallel()

		cases := map[string]Kind{
			"deposit":    KindDeposit,
			"withdrawal": KindWithdrawal,
			"dispute":    KindDispute,
			"resolve":    KindResolve,
			"chargeback": KindChargeback,
			"Deposit":    KindDeposit,
			" resolve ":  KindResolve,
		}

		for input, expected := range cases {
			kind, err := ParseKind(input)
			require.NoError(t, err, "input %q", input)
			assert.Equal(t, expected, kind)
		}
	})

	t.Run("unknown kind", func(t *testing.T) {
		t.Parallel()

		_, err := ParseKind("transfer")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "transfer")
	})

	t.Run("empty string", func(t *testing.T) {
		t.Parallel()

		_, err := ParseKind("")
		require.Error(t, err)
	})
}

func TestKind_HasAmount(t *testing.T) {
	t.Parallel()

	assert.True(t, KindDeposit.HasAmount())
	assert.True(t, KindWithdrawal.HasAmount())
	assert.False(t, KindDispute.HasAmount())
	assert.False(t, KindResolve.HasAmount())
	assert.False(t, KindChargeback.HasAmount())
}

func TestTransaction_ValidAmount(t *testing.T) {
	t.Parallel()

	t.Run("positive deposit and withdrawal", func(t *testing.T) {
		t.Parallel()

		amount := decimal.RequireFromString("0.0001")

		assert.True(t, Transaction{Kind: KindDeposit, Amount: amount}.ValidAmount())
		assert.True(t, Transaction{Kind: KindWithdrawal, Amount: amount}.ValidAmount())
	})

	t.Run("zero amount is invalid", func(t *testing.T) {
		t.Parallel()

		assert.False(t, Transaction{Kind: KindDeposit, Amount: decimal.Zero}.ValidAmount())
		assert.False(t, Transaction{Kind: KindWithdrawal, Amount: decimal.Zero}.ValidAmount())
	})

	t.Run("negative amount is invalid", func(t *testing.T) {
		t.Parallel()

		amount := decimal.RequireFromString("-5")

		assert.False(t, Transaction{Kind: KindDeposit, Amount: amount}.ValidAmount())
		assert.False(t, Transaction{Kind: KindWithdrawal, Amount: amount}.ValidAmount())
	})

	t.Run("amount-less kinds are always valid", func(t *testing.T) {
		t.Parallel()

		for _, kind := range []Kind{KindDispute, KindResolve, KindChargeback} {
			assert.True(t, Transaction{Kind: kind}.ValidAmount(), "kind %s", kind)
		}
	})
}

func TestTransaction_DepositAmount(t *testing.T) {
	t.Parallel()

	t.Run("deposit", func(t *testing.T) {
		t.Parallel()

		amount := decimal.RequireFromString("12.34")
		got, ok := Transaction{Kind: KindDeposit, Amount: amount}.DepositAmount()

		require.True(t, ok)
		assert.True(t, amount.Equal(got))
	})

	t.Run("non-deposit kinds report absent", func(t *testing.T) {
		t.Parallel()

		for _, kind := range []Kind{KindWithdrawal, KindDispute, KindResolve, KindChargeback} {
			_, ok := Transaction{Kind: kind, Amount: decimal.NewFromInt(1)}.DepositAmount()
			assert.False(t, ok, "kind %s", kind)
		}
	})
}

func TestTransaction_PartOfDispute(t *testing.T) {
	t.Parallel()

	assert.False(t, Transaction{Kind: KindDeposit}.PartOfDispute())
	assert.False(t, Transaction{Kind: KindWithdrawal}.PartOfDispute())
	assert.True(t, Transaction{Kind: KindDispute}.PartOfDispute())
	assert.True(t, Transaction{Kind: KindResolve}.PartOfDispute())
	assert.True(t, Transaction{Kind: KindChargeback}.PartOfDispute())
}

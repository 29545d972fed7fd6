package domain

import (
	"math"
	"strings"
)

const SmallestCoin uint32 = 5

// MaxStoredAmount is the largest cost, stock or deposit the INTEGER columns
// can hold.
const MaxStoredAmount uint32 = math.MaxInt32

// AcceptedCoins is ordered from the largest denomination to the smallest.
var AcceptedCoins = []uint32{100, 50, 20, 10, 5}

type PurchaseReceipt struct {
	ProductName     string
	AmountPurchased uint32
	TotalSpent      uint32
	Change          map[uint32]uint32
}

func IsAcceptedCoin(amount uint32) bool {
	for _, coin := range AcceptedCoins {
		if coin == amount {
			return true
		}
	}

	return false
}

func IsValidCost(cost uint32) bool {
	return cost > 0 && cost <= MaxStoredAmount && cost%SmallestCoin == 0
}

func IsStorableAmount(amount uint32) bool {
	return amount <= MaxStoredAmount
}

// BreakIntoCoins greedily expresses amount in accepted coins. Denominations
// with a zero count are left out, and a remainder below the smallest coin
// is dropped.
func BreakIntoCoins(amount uint32) map[uint32]uint32 {
	change := make(map[uint32]uint32)

	remaining := amount
	for _, coin := range AcceptedCoins {
		if remaining < coin {
			continue
		}

		change[coin] = remaining / coin
		remaining %= coin
	}

	return change
}

func NormalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

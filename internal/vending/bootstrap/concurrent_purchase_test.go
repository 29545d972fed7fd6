package bootstrap_test

import (
	"bytes"
	"fmt"
	"net/http"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

const concurrentBuyers = 5

func TestConcurrentPurchaseOfLastUnit(t *testing.T) {
	client := startVendingApp(t)

	_, sellerToken := client.registerAndLogin("seller2", "seller")

	var product productResponse
	status := client.do(http.MethodPost, "/api/products", sellerToken, map[string]any{
		"productName":     "last cookie",
		"cost":            5,
		"amountAvailable": 1,
	}, &product)
	require.Equal(t, http.StatusCreated, status)

	tokens := make([]string, 0, concurrentBuyers)
	for i := range concurrentBuyers {
		buyer, token := client.registerAndLogin(fmt.Sprintf("buyer-%d", i), "buyer")

		status = client.do(http.MethodPut, fmt.Sprintf("/api/users/%d/deposit", buyer.ID), token, map[string]any{"deposit": 5}, nil)
		require.Equal(t, http.StatusOK, status)

		tokens = append(tokens, token)
	}

	var (
		mu       sync.Mutex
		statuses = make(map[int]int)
	)

	group := errgroup.Group{}
	buyPath := fmt.Sprintf("%s/api/products/%d/buy", client.baseURL, product.ID)

	for _, token := range tokens {
		group.Go(func() error {
			req, err := http.NewRequest(http.MethodPost, buyPath, bytes.NewBufferString(`{"amount":1}`))
			if err != nil {
				return err
			}
			req.Header.Set("Content-Type", "application/json")
			req.Header.Set("Authorization", "Bearer "+token)

			resp, err := client.http.Do(req)
			if err != nil {
				return err
			}
			defer resp.Body.Close()

			mu.Lock()
			statuses[resp.StatusCode]++
			mu.Unlock()

			return nil
		})
	}

	require.NoError(t, group.Wait())

	assert.Equal(t, 1, statuses[http.StatusOK], "exactly one buyer gets the last unit")
	assert.Equal(t, concurrentBuyers-1, statuses[http.StatusBadRequest]+statuses[http.StatusConflict])

	status = client.do(http.MethodGet, fmt.Sprintf("/api/products/%d", product.ID), "", nil, &product)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, uint32(0), product.AmountAvailable)

	var totalDeposit uint32
	for _, token := range tokens {
		var me userResponse
		status = client.do(http.MethodGet, "/api/users/me", token, nil, &me)
		require.Equal(t, http.StatusOK, status)
		totalDeposit += me.Deposit
	}
	assert.Equal(t, uint32(5*(concurrentBuyers-1)), totalDeposit, "only the winner was charged")
}

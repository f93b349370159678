package integration

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func jsonBody(s string) io.Reader {
	return strings.NewReader(s)
}

// TestConcurrentCreateSameSurname races many creations of the same surname
// for one user. The uniqueness constraint in the store must let exactly one
// through; the service surfaces the losers as conflicts or storage errors,
// never as duplicate state.
func TestConcurrentCreateSameSurname(t *testing.T) {
	app := newTestApp(t)
	defer app.close()

	userID := app.provisionUser(t)

	const attempts = 25
	var created int64
	var wg sync.WaitGroup
	wg.Add(attempts)

	for i := 0; i < attempts; i++ {
		go func() {
			defer wg.Done()
			resp, err := http.Post(app.walletsURL(userID), "application/json",
				jsonBody(`{"surname":"savings"}`))
			if err != nil {
				return
			}
			defer resp.Body.Close()
			io.Copy(io.Discard, resp.Body)
			if resp.StatusCode == http.StatusCreated {
				atomic.AddInt64(&created, 1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int64(1), created, "exactly one creation must win")
	// The user holds the provisioned default plus one savings wallet.
	assert.Equal(t, 2, app.repo.liveCount(userID))
}

// TestConcurrentSetDefault races default reassignment across several
// wallets. Whatever interleaving occurs, the user must end with exactly
// one default wallet.
func TestConcurrentSetDefault(t *testing.T) {
	app := newTestApp(t)
	defer app.close()

	userID := app.provisionUser(t)

	walletIDs := make([]uuid.UUID, 0, 5)
	for _, surname := range []string{"alpha", "beta", "gamma", "delta", "epsilon"} {
		resp, err := http.Post(app.walletsURL(userID), "application/json",
			jsonBody(`{"surname":"`+surname+`"}`))
		require.NoError(t, err)

		var parsed apiResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&parsed))
		resp.Body.Close()
		require.Equal(t, http.StatusCreated, resp.StatusCode)

		id, err := uuid.Parse(parsed.Data["id"].(string))
		require.NoError(t, err)
		walletIDs = append(walletIDs, id)
	}

	var wg sync.WaitGroup
	for _, walletID := range walletIDs {
		for i := 0; i < 4; i++ {
			wg.Add(1)
			go func(id uuid.UUID) {
				defer wg.Done()
				req, err := http.NewRequest(http.MethodPatch,
					app.walletsURL(userID)+"/"+id.String()+"/default", nil)
				if err != nil {
					return
				}
				resp, err := http.DefaultClient.Do(req)
				if err != nil {
					return
				}
				io.Copy(io.Discard, resp.Body)
				resp.Body.Close()
			}(walletID)
		}
	}
	wg.Wait()

	assert.Equal(t, 1, app.repo.defaultCount(userID), "exactly one default wallet must remain")
	assert.Equal(t, 6, app.repo.liveCount(userID))
}

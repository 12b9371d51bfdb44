package funding_test

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/fundkit/modules/funding"
)

func TestDepositEndpoint(t *testing.T) {
	t.Parallel()

	log := slog.New(slog.DiscardHandler)

	newServer := func(storage funding.Storage) *httptest.Server {
		svc := funding.NewService(storage, &mockSender{}, log)
		srv := httptest.NewServer(funding.NewRouter(svc, log))
		t.Cleanup(srv.Close)
		return srv
	}

	accountID := uuid.New()

	t.Run("created", func(t *testing.T) {
		t.Parallel()

		srv := newServer(&mockStorage{balance: 1000})

		body := `{"account_id":"` + accountID.String() + `","source":"card","card_number":"4111111111111111","amount":"100.50"}`
		resp, err := http.Post(srv.URL+"/deposits", "application/json", strings.NewReader(body))
		require.NoError(t, err)
		defer resp.Body.Close()

		require.Equal(t, http.StatusCreated, resp.StatusCode)

		var got struct {
			Amount      string `json:"amount"`
			Description string `json:"description"`
			Balance     string `json:"balance"`
		}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
		assert.Equal(t, "100.50", got.Amount)
		assert.Equal(t, "Funding from card (visa)", got.Description)
		assert.Equal(t, "110.50", got.Balance)
	})

	t.Run("validation failure returns field messages", func(t *testing.T) {
		t.Parallel()

		storage := &mockStorage{}
		srv := newServer(storage)

		body := `{"account_id":"` + accountID.String() + `","source":"bank","amount":"50.00"}`
		resp, err := http.Post(srv.URL+"/deposits", "application/json", strings.NewReader(body))
		require.NoError(t, err)
		defer resp.Body.Close()

		require.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

		var got struct {
			Errors map[string]string `json:"errors"`
		}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
		assert.Contains(t, got.Errors, "routing_number")
		assert.Zero(t, storage.applyCalls)
	})

	t.Run("unknown account", func(t *testing.T) {
		t.Parallel()

		srv := newServer(&mockStorage{applyErr: funding.ErrAccountNotFound})

		body := `{"account_id":"` + accountID.String() + `","source":"card","card_number":"4111111111111111","amount":"50.00"}`
		resp, err := http.Post(srv.URL+"/deposits", "application/json", strings.NewReader(body))
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}

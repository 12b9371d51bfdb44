package funding

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/dmitrymomot/fundkit/pkg/validate"
)

// NewRouter mounts the deposit endpoint. Middlewares (rate limiting on
// the public surface) apply to every route in the module.
func NewRouter(svc *Service, log *slog.Logger, middlewares ...func(http.Handler) http.Handler) http.Handler {
	r := chi.NewRouter()
	r.Use(middlewares...)
	r.Post("/deposits", handleDeposit(svc, log))
	return r
}

type depositResponse struct {
	TransactionID uuid.UUID `json:"transaction_id"`
	AccountID     uuid.UUID `json:"account_id"`
	Amount        string    `json:"amount"`
	Description   string    `json:"description"`
	Balance       string    `json:"balance"`
}

func handleDeposit(svc *Service, log *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var params FundParams
		if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
			respondError(w, http.StatusBadRequest, "invalid JSON body")
			return
		}

		receipt, err := svc.Fund(r.Context(), params)
		if err != nil {
			var fieldErrs validate.FieldErrors
			switch {
			case errors.As(err, &fieldErrs):
				respondJSON(w, http.StatusUnprocessableEntity, map[string]any{
					"errors": fieldErrs.Messages(),
				})
			case errors.Is(err, ErrAccountNotFound):
				respondError(w, http.StatusNotFound, ErrAccountNotFound.Error())
			default:
				log.ErrorContext(r.Context(), "deposit failed", "error", err)
				respondError(w, http.StatusInternalServerError, "something went wrong, please retry")
			}
			return
		}

		respondJSON(w, http.StatusCreated, depositResponse{
			TransactionID: receipt.TransactionID,
			AccountID:     receipt.AccountID,
			Amount:        validate.FormatCents(receipt.AmountCents),
			Description:   receipt.Description,
			Balance:       validate.FormatCents(receipt.BalanceCents),
		})
	}
}

func respondJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

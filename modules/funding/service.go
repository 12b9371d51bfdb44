package funding

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/dmitrymomot/fundkit/pkg/mailer"
	"github.com/dmitrymomot/fundkit/pkg/validate"
)

// Service runs the funding flow: validate the amount and the payment
// instrument, then apply the deposit as a single storage mutation.
type Service struct {
	storage Storage
	mail    mailer.Sender
	log     *slog.Logger
}

func NewService(storage Storage, mail mailer.Sender, log *slog.Logger) *Service {
	return &Service{storage: storage, mail: mail, log: log}
}

// Fund validates params and applies the deposit. Any invalid verdict
// rejects the whole call with FieldErrors and no storage mutation. The
// credited cents come from the amount verdict; the raw string is never
// parsed a second time.
func (s *Service) Fund(ctx context.Context, params FundParams) (*Receipt, error) {
	amountV := validate.Amount(params.Amount)

	errs := validate.FieldErrors{}
	errs.Put("amount", amountV.Verdict)

	var description string
	switch params.Source {
	case SourceCard:
		cardV := validate.CardNumber(params.CardNumber)
		errs.Put("card_number", cardV.Verdict)
		description = fmt.Sprintf("Funding from card (%s)", cardV.Network)
	case SourceBank:
		// A bank deposit without a routing number is a missing field,
		// not an optional one.
		if strings.TrimSpace(params.RoutingNumber) == "" {
			errs.Put("routing_number", validate.Verdict{
				Code:    validate.CodeRequired,
				Message: "routing number is required for bank funding",
			})
		} else {
			errs.Put("routing_number", validate.RoutingNumber(params.RoutingNumber))
		}
		description = "Funding from bank account"
	case "":
		errs.Put("source", validate.Verdict{
			Code:    validate.CodeRequired,
			Message: "funding source is required",
		})
	default:
		errs.Put("source", validate.Verdict{
			Code:    validate.CodeUnsupported,
			Message: `funding source must be "card" or "bank"`,
		})
	}

	if !errs.IsEmpty() {
		return nil, errs
	}

	receipt, err := s.storage.ApplyDeposit(ctx, params.AccountID, amountV.Cents, description)
	if err != nil {
		return nil, err
	}

	s.sendReceipt(ctx, receipt)
	return receipt, nil
}

// sendReceipt is best effort: the deposit is committed either way.
func (s *Service) sendReceipt(ctx context.Context, receipt *Receipt) {
	err := s.mail.SendEmail(ctx, mailer.SendEmailParams{
		SendTo:  receipt.Email,
		Subject: "Deposit received",
		BodyHTML: fmt.Sprintf("<p>%s: $%s. Your new balance is $%s.</p>",
			receipt.Description,
			validate.FormatCents(receipt.AmountCents),
			validate.FormatCents(receipt.BalanceCents)),
		Tag: "deposit-receipt",
	})
	if err != nil {
		s.log.WarnContext(ctx, "failed to send deposit receipt",
			"transaction_id", receipt.TransactionID, "error", err)
	}
}

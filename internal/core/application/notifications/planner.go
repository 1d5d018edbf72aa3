// Package notifications maps shipment lifecycle transitions to outbound
// notification intents. The mapping is a total function over the closed
// status enumeration: every value has a defined (possibly empty) behavior,
// and no default case silently drops a status.
//
// The package only decides what to notify and with what payload; rendering
// templates and transmitting email/SMS belong to the external dispatcher
// behind the Notifier port, which is fire-and-forget from here.
package notifications

import (
	"context"
	"fmt"
	"math/rand/v2"
	"strconv"

	"shipping/internal/core/domain/model/shipment"
	"shipping/internal/core/ports"

	"shipping/internal/pkg/errs"
)

const (
	// verificationCodeMin and verificationCodeMax bound the 6-digit
	// delivery verification code.
	verificationCodeMin = 100_000
	verificationCodeMax = 999_999
)

// Planner computes the notification intent for a shipment entering a new
// status and hands it to the notifier. It also performs the side channel
// actions tied to specific transitions: issuing the delivery verification
// code and minting the signed review token.
//
// Planner never blocks on, observes, or fails a lifecycle transition:
// callers invoke it after their transaction commits and only log its errors.
type Planner struct {
	codes     ports.VerificationCodes
	tokens    ports.TokenCodec
	notifier  ports.Notifier
	appDomain string
}

// NewPlanner creates a Planner. appDomain is the public host used to build
// review-submission URLs.
func NewPlanner(
	codes ports.VerificationCodes,
	tokens ports.TokenCodec,
	notifier ports.Notifier,
	appDomain string,
) *Planner {
	return &Planner{
		codes:     codes,
		tokens:    tokens,
		notifier:  notifier,
		appDomain: appDomain,
	}
}

// NotifyStatusChange emits the notification intent for the shipment's new
// status. partnerName is the display name of the assigned partner; it is
// only referenced by the Placed intent and may be empty otherwise.
//
// Behavior per status:
//   - Placed: email carrying the seller and partner references
//   - InTransit: no notification
//   - OutForDelivery: generate a 6-digit verification code, store it keyed
//     by shipment id; SMS the code when a contact phone exists (and omit it
//     from the email payload), otherwise include it in the email payload
//   - Delivered: mint a signed review token embedding the shipment id and
//     email the review-submission URL
//   - Cancelled: plain email, no extra payload
func (p *Planner) NotifyStatusChange(
	ctx context.Context,
	s *shipment.Shipment,
	status shipment.Status,
	partnerName string,
) error {
	if status == shipment.InTransit {
		return nil
	}

	var (
		subject      string
		templateName string
		payload      = map[string]string{}
	)

	switch status {
	case shipment.Placed:
		subject = "Your Order is Placed 🚛"
		templateName = "mail_placed.html"
		payload["id"] = s.ID().String()
		payload["seller"] = s.SellerID().String()
		payload["partner"] = partnerName

	case shipment.OutForDelivery:
		subject = "Your Order is Arriving Soon 🛵"
		templateName = "mail_out_for_delivery.html"

		code := strconv.Itoa(verificationCodeMin + rand.IntN(verificationCodeMax-verificationCodeMin+1))
		if err := p.codes.Put(ctx, s.ID(), code); err != nil {
			return fmt.Errorf("failed to store verification code: %w", err)
		}

		if phone := s.ContactPhone(); phone != nil {
			p.notifier.SendSMS(ports.SMSIntent{
				To: *phone,
				Body: fmt.Sprintf("Your order is arriving soon! Share the %s code with your "+
					"delivery executive to receive your package.", code),
			})
		} else {
			payload["verification_code"] = code
		}

	case shipment.Delivered:
		subject = "Your Order is Delivered ✅"
		templateName = "mail_delivered.html"
		payload["seller"] = s.SellerID().String()

		token, err := p.tokens.Encode(map[string]string{"id": s.ID().String()}, "")
		if err != nil {
			return fmt.Errorf("failed to generate review token: %w", err)
		}
		payload["review_url"] = fmt.Sprintf("http://%s/shipment/review?token=%s", p.appDomain, token)

	case shipment.Cancelled:
		subject = "Your Order is Cancelled ❌"
		templateName = "mail_cancelled.html"

	default:
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("no notification behavior defined for %s", status))
	}

	p.notifier.SendEmail(ports.EmailIntent{
		Recipients:   []string{s.ContactEmail()},
		Subject:      subject,
		TemplateName: templateName,
		Context:      payload,
	})

	return nil
}

// internal/services/billing_service.go
package services

import (
	"errors"
	"fmt"

	"github.com/stripe/stripe-go/v74"
	"github.com/stripe/stripe-go/v74/checkout/session"

	"github.com/nightmare5831/sales-pipeline/internal/config"
	"github.com/nightmare5831/sales-pipeline/internal/models"
	"github.com/nightmare5831/sales-pipeline/internal/utils"
)

type BillingService struct {
	cfg   *config.Config
	plans []models.PricingPlan
}

// CheckoutSessionRequest uses the subscription page's wire format.
type CheckoutSessionRequest struct {
	PriceID  string              `json:"priceId" validate:"required"`
	PlanID   string              `json:"planId" validate:"required"`
	Interval models.PlanInterval `json:"interval" validate:"required,oneof=month year"`
}

type CheckoutSessionResponse struct {
	SessionURL string `json:"sessionUrl"`
}

func NewBillingService(cfg *config.Config) *BillingService {
	stripe.Key = cfg.Payment.StripeSecretKey

	return &BillingService{
		cfg:   cfg,
		plans: defaultPlans(),
	}
}

func (s *BillingService) Plans() []models.PricingPlan {
	return s.plans
}

// PlanPrice returns the amount charged for a plan at the given billing
// interval. Yearly billing applies the 20% discount the pricing page
// advertises (floored, matching its display math).
func (s *BillingService) PlanPrice(plan models.PricingPlan, interval models.PlanInterval) int {
	if interval == models.PlanIntervalYear {
		return plan.Price * 80 / 100
	}
	return plan.Price
}

// CreateCheckoutSession builds a Stripe Checkout Session for the selected
// plan and returns the redirect URL. Without a configured Stripe key it
// falls back to a stubbed session URL so the subscription flow can be
// exercised end to end in development. Payment confirmation and webhooks are
// out of scope.
func (s *BillingService) CreateCheckoutSession(req *CheckoutSessionRequest) (*CheckoutSessionResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	plan, found := s.findPlan(req.PlanID)
	if !found {
		return nil, errors.New("unknown plan")
	}

	if s.cfg.Payment.StripeSecretKey == "" {
		return s.stubSession(plan, req.Interval)
	}

	params := &stripe.CheckoutSessionParams{
		Mode: stripe.String(string(stripe.CheckoutSessionModeSubscription)),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				Price:    stripe.String(req.PriceID),
				Quantity: stripe.Int64(1),
			},
		},
		SuccessURL: stripe.String(s.cfg.Frontend.BaseURL + "/subscription?status=success"),
		CancelURL:  stripe.String(s.cfg.Frontend.BaseURL + "/subscription?status=cancelled"),
	}
	params.AddMetadata("plan_id", plan.ID)
	params.AddMetadata("interval", string(req.Interval))

	sess, err := session.New(params)
	if err != nil {
		return nil, fmt.Errorf("failed to create checkout session: %w", err)
	}

	return &CheckoutSessionResponse{SessionURL: sess.URL}, nil
}

func (s *BillingService) findPlan(planID string) (models.PricingPlan, bool) {
	for _, plan := range s.plans {
		if plan.ID == planID {
			return plan, true
		}
	}
	return models.PricingPlan{}, false
}

func (s *BillingService) stubSession(plan models.PricingPlan, interval models.PlanInterval) (*CheckoutSessionResponse, error) {
	sessionID, err := utils.GenerateRandomString(24)
	if err != nil {
		return nil, fmt.Errorf("failed to generate session id: %w", err)
	}

	url := fmt.Sprintf("%s/subscription/checkout/cs_test_%s?plan=%s&interval=%s",
		s.cfg.Frontend.BaseURL, sessionID, plan.ID, interval)
	return &CheckoutSessionResponse{SessionURL: url}, nil
}

func defaultPlans() []models.PricingPlan {
	return []models.PricingPlan{
		{
			ID:            "starter",
			Name:          "Starter",
			Price:         29,
			Interval:      "month",
			StripePriceID: "price_starter_monthly",
			Features: []string{
				"Up to 5 campaigns",
				"Basic analytics",
				"Email support",
				"1,000 ad impressions/month",
				"Standard templates",
			},
		},
		{
			ID:            "professional",
			Name:          "Professional",
			Price:         99,
			Interval:      "month",
			Recommended:   true,
			StripePriceID: "price_professional_monthly",
			Features: []string{
				"Unlimited campaigns",
				"Advanced analytics & reporting",
				"Priority email & chat support",
				"10,000 ad impressions/month",
				"Custom templates",
				"A/B testing",
				"API access",
			},
		},
		{
			ID:            "enterprise",
			Name:          "Enterprise",
			Price:         299,
			Interval:      "month",
			StripePriceID: "price_enterprise_monthly",
			Features: []string{
				"Everything in Professional",
				"Unlimited ad impressions",
				"Dedicated account manager",
				"24/7 phone support",
				"Custom integrations",
				"SLA guarantee",
				"Advanced security features",
				"Multi-team management",
			},
		},
	}
}

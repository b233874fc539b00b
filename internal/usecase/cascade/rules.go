package cascade

import (
	"errors"

	"github.com/arabyads/influencer-service/internal/domain"
	"github.com/arabyads/influencer-service/internal/usecase"
)

// Repositories carries everything the delete graph walks over.
type Repositories struct {
	Clients        domain.ClientRepository
	Offers         domain.OfferRepository
	Campaigns      domain.CampaignRepository
	Assignments    domain.AssignmentRepository
	Histories      domain.HistoryRepository
	Payments       domain.PaymentRepository
	Notifications  domain.NotificationRepository
	Influencers    domain.InfluencerRepository
	SocialAccounts domain.SocialAccountRepository
	Categories     domain.CategoryRepository
	Platforms      domain.SocialPlatformRepository
	Banks          domain.BankRepository
	Coupons        domain.CouponRepository
	Users          domain.UserRepository
}

// staffScope lets the dependency walk see every row regardless of who asked
// for the delete. Row visibility is enforced before the walk starts, by the
// handler that authorized the operation.
var staffScope = domain.ClientScope{Staff: true}

// NewDefaultEngine wires the production delete graph:
//
//	client -> offer -> campaign -> assigned_influencer -> history, payment
//	influencer -> social_account -> assigned_influencer
//
// Reference data (category, platform, bank, coupon) and the remaining leaf
// types delete without dependents.
func NewDefaultEngine(repos Repositories, audit *usecase.AuditEmitter) *Engine {
	e := NewEngine(audit)

	e.Register("client", Rule{
		Load:   func(id string) (any, error) { return repos.Clients.GetByID(id) },
		Delete: repos.Clients.SoftDelete,
		Children: func(id string) (map[string][]string, error) {
			offers, err := repos.Offers.ListByClientID(id, staffScope)
			if err != nil {
				return nil, err
			}
			return map[string][]string{"offer": idsOfOffers(offers)}, nil
		},
	})

	e.Register("offer", Rule{
		Load:   func(id string) (any, error) { return repos.Offers.GetByID(id) },
		Delete: repos.Offers.SoftDelete,
		Children: func(id string) (map[string][]string, error) {
			campaigns, err := repos.Campaigns.ListByOfferID(id)
			if err != nil {
				return nil, err
			}
			ids := make([]string, len(campaigns))
			for i, campaign := range campaigns {
				ids[i] = campaign.ID
			}
			return map[string][]string{"campaign": ids}, nil
		},
	})

	e.Register("campaign", Rule{
		Load:   func(id string) (any, error) { return repos.Campaigns.GetByID(id) },
		Delete: repos.Campaigns.SoftDelete,
		Children: func(id string) (map[string][]string, error) {
			assignments, err := repos.Assignments.ListByCampaignID(id)
			if err != nil {
				return nil, err
			}
			return map[string][]string{"assigned_influencer": idsOfAssignments(assignments)}, nil
		},
	})

	e.Register("assigned_influencer", Rule{
		Load:   func(id string) (any, error) { return repos.Assignments.GetByID(id) },
		Delete: repos.Assignments.SoftDelete,
		Children: func(id string) (map[string][]string, error) {
			histories, err := repos.Histories.ListByAssignmentID(id)
			if err != nil {
				return nil, err
			}
			historyIDs := make([]string, len(histories))
			for i, history := range histories {
				historyIDs[i] = history.ID
			}
			children := map[string][]string{"influencer_history": historyIDs}

			payment, err := repos.Payments.GetByAssignmentID(id)
			switch {
			case err == nil:
				children["influencer_payment"] = []string{payment.ID}
			case !errors.Is(err, domain.ErrNotFound):
				return nil, err
			}
			return children, nil
		},
	})

	e.Register("influencer", Rule{
		Load:   func(id string) (any, error) { return repos.Influencers.GetByID(id) },
		Delete: repos.Influencers.SoftDelete,
		Children: func(id string) (map[string][]string, error) {
			accounts, err := repos.SocialAccounts.ListByInfluencerID(id)
			if err != nil {
				return nil, err
			}
			accountIDs := make([]string, len(accounts))
			for i, account := range accounts {
				accountIDs[i] = account.ID
			}
			assignments, err := repos.Assignments.ListByInfluencerID(id)
			if err != nil {
				return nil, err
			}
			return map[string][]string{
				"social_account":      accountIDs,
				"assigned_influencer": idsOfAssignments(assignments),
			}, nil
		},
	})

	e.Register("social_account", Rule{
		Load:   func(id string) (any, error) { return repos.SocialAccounts.GetByID(id) },
		Delete: repos.SocialAccounts.SoftDelete,
		Children: func(id string) (map[string][]string, error) {
			assignments, err := repos.Assignments.ListBySocialAccountID(id)
			if err != nil {
				return nil, err
			}
			return map[string][]string{"assigned_influencer": idsOfAssignments(assignments)}, nil
		},
	})

	e.Register("influencer_history", Rule{
		Load:   func(id string) (any, error) { return repos.Histories.GetByID(id) },
		Delete: repos.Histories.SoftDelete,
	})
	e.Register("influencer_payment", Rule{
		Load:   func(id string) (any, error) { return repos.Payments.GetByID(id) },
		Delete: repos.Payments.SoftDelete,
	})
	e.Register("influencer_unpaid_notification", Rule{
		Load:   func(id string) (any, error) { return repos.Notifications.GetByID(id) },
		Delete: repos.Notifications.SoftDelete,
	})
	e.Register("category", Rule{
		Load:   func(id string) (any, error) { return repos.Categories.GetByID(id) },
		Delete: repos.Categories.SoftDelete,
	})
	e.Register("social_platform", Rule{
		Load:   func(id string) (any, error) { return repos.Platforms.GetByID(id) },
		Delete: repos.Platforms.SoftDelete,
	})
	e.Register("bank", Rule{
		Load:   func(id string) (any, error) { return repos.Banks.GetByID(id) },
		Delete: repos.Banks.SoftDelete,
	})
	e.Register("coupon", Rule{
		Load:   func(id string) (any, error) { return repos.Coupons.GetByID(id) },
		Delete: repos.Coupons.SoftDelete,
	})
	e.Register("user", Rule{
		Load:   func(id string) (any, error) { return repos.Users.GetByID(id) },
		Delete: repos.Users.SoftDelete,
	})

	return e
}

func idsOfOffers(offers []*domain.Offer) []string {
	ids := make([]string, len(offers))
	for i, offer := range offers {
		ids[i] = offer.ID
	}
	return ids
}

func idsOfAssignments(assignments []*domain.AssignedInfluencer) []string {
	ids := make([]string, len(assignments))
	for i, assignment := range assignments {
		ids[i] = assignment.ID
	}
	return ids
}

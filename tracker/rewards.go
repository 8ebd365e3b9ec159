package tracker

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"github.com/invitetrackhq/invite-tracker-api/databases"
	"github.com/invitetrackhq/invite-tracker-api/models"
)

// Evaluator checks a referrer's real invite count against the space's
// reward rules and actuates any newly crossed thresholds. Grants are
// at-least-once: the actuator call happens before the grant log insert,
// so a crash in between replays the grant on the next evaluation. The
// actuator's idempotency makes the replay harmless.
type Evaluator struct {
	rules    databases.RewardRuleDatabase
	grants   databases.RewardGrantDatabase
	stats    databases.ReferrerStatsDatabase
	actuator GrantActuator
}

// NewEvaluator returns an Evaluator over the given collections and actuator
func NewEvaluator(
	rules databases.RewardRuleDatabase,
	grants databases.RewardGrantDatabase,
	stats databases.ReferrerStatsDatabase,
	actuator GrantActuator,
) *Evaluator {
	return &Evaluator{
		rules:    rules,
		grants:   grants,
		stats:    stats,
		actuator: actuator,
	}
}

// Evaluate grants every reward whose threshold the referrer's real invite
// count meets and that has not been granted before. A failed actuation is
// logged and skipped without a grant record, leaving it for the next
// evaluation; failures never block other rules.
func (e *Evaluator) Evaluate(ctx context.Context, spaceID, referrerID string) error {
	stats, err := e.stats.FindOne(ctx, bson.M{"spaceId": spaceID, "referrerId": referrerID})
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to look up referrer stats: %w", err)
	}

	rules, err := e.rules.Find(ctx, bson.M{"spaceId": spaceID})
	if err != nil {
		return fmt.Errorf("failed to list reward rules: %w", err)
	}

	for _, rule := range rules {
		if stats.RealInvites < rule.InvitesRequired {
			continue
		}

		granted, err := e.alreadyGranted(ctx, spaceID, referrerID, rule.InvitesRequired)
		if err != nil {
			return err
		}
		if granted {
			continue
		}

		if err := e.actuator.GrantRole(ctx, spaceID, referrerID, rule.GrantID); err != nil {
			zap.S().Errorw("reward actuation failed",
				"spaceId", spaceID,
				"referrerId", referrerID,
				"grantId", rule.GrantID,
				"error", err,
			)
			continue
		}

		grant := models.RewardGrant{
			ID:              primitive.NewObjectID(),
			SpaceID:         spaceID,
			ReferrerID:      referrerID,
			InvitesRequired: rule.InvitesRequired,
			GrantID:         rule.GrantID,
			GrantedAt:       time.Now(),
		}
		if _, err := e.grants.InsertOne(ctx, grant); err != nil {
			// A concurrent evaluation already recorded this grant; the
			// unique (space, referrer, threshold) index caught the race.
			if mongo.IsDuplicateKeyError(err) {
				continue
			}
			return fmt.Errorf("failed to record reward grant: %w", err)
		}

		zap.S().Infow("reward granted",
			"spaceId", spaceID,
			"referrerId", referrerID,
			"grantId", rule.GrantID,
			"invitesRequired", rule.InvitesRequired,
		)
	}

	return nil
}

func (e *Evaluator) alreadyGranted(ctx context.Context, spaceID, referrerID string, invitesRequired int) (bool, error) {
	_, err := e.grants.FindOne(ctx, bson.M{
		"spaceId":         spaceID,
		"referrerId":      referrerID,
		"invitesRequired": invitesRequired,
	})
	if errors.Is(err, mongo.ErrNoDocuments) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to look up reward grant: %w", err)
	}
	return true, nil
}

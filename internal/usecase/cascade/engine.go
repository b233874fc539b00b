package cascade

import (
	"fmt"
	"log/slog"

	"github.com/arabyads/influencer-service/internal/domain"
	"github.com/arabyads/influencer-service/internal/usecase"
)

// Rule describes how one entity type participates in cascaded soft deletes.
// Children lists dependent rows keyed by their entity type; Load fetches the
// snapshot recorded in the audit trail before the row disappears.
type Rule struct {
	Load     func(id string) (any, error)
	Delete   func(id string) error
	Children func(id string) (map[string][]string, error)
}

// Engine soft-deletes an entity together with every row that depends on it,
// children first. Each row is deleted in its own statement; a failure stops
// the walk and leaves already-deleted children deleted, which is safe because
// every delete is a tombstone, not a destructive write, and a retry resumes
// where the walk stopped.
type Engine struct {
	rules map[string]Rule
	audit *usecase.AuditEmitter
}

func NewEngine(audit *usecase.AuditEmitter) *Engine {
	return &Engine{
		rules: make(map[string]Rule),
		audit: audit,
	}
}

func (e *Engine) Register(entityType string, rule Rule) {
	e.rules[entityType] = rule
}

// SoftDelete removes the entity and its dependents. domain.ErrNotFound is
// returned when the root row does not exist or is already deleted.
func (e *Engine) SoftDelete(entityType, id, actorID string) error {
	rule, ok := e.rules[entityType]
	if !ok {
		return fmt.Errorf("no cascade rule for entity type %q", entityType)
	}
	if _, err := rule.Load(id); err != nil {
		return err
	}
	return e.delete(entityType, id, actorID)
}

func (e *Engine) delete(entityType, id, actorID string) error {
	rule, ok := e.rules[entityType]
	if !ok {
		return fmt.Errorf("no cascade rule for entity type %q", entityType)
	}

	before, err := rule.Load(id)
	if err != nil {
		// A dependent listed a row that vanished mid-walk. Nothing left to
		// delete under it.
		if err == domain.ErrNotFound {
			return nil
		}
		return err
	}

	if rule.Children != nil {
		children, err := rule.Children(id)
		if err != nil {
			return err
		}
		for childType, childIDs := range children {
			for _, childID := range childIDs {
				if err := e.delete(childType, childID, actorID); err != nil {
					return err
				}
			}
		}
	}

	if err := rule.Delete(id); err != nil {
		if err == domain.ErrNotFound {
			return nil
		}
		return err
	}

	slog.Info("cascade delete", "entity_type", entityType, "entity_id", id)
	e.audit.Emit(entityType, id, domain.AuditSoftDelete, actorID, before, nil)
	return nil
}

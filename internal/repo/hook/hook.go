// Code generated by ent, DO NOT EDIT.

package hook

import (
	"context"
	"fmt"

	"github.com/resonara/resonara_backend/internal/repo"
)

// The OrgMemberFunc type is an adapter to allow the use of ordinary
// function as OrgMember mutator.
type OrgMemberFunc func(context.Context, *repo.OrgMemberMutation) (repo.Value, error)

// Mutate calls f(ctx, m).
func (f OrgMemberFunc) Mutate(ctx context.Context, m repo.Mutation) (repo.Value, error) {
	if mv, ok := m.(*repo.OrgMemberMutation); ok {
		return f(ctx, mv)
	}
	return nil, fmt.Errorf("unexpected mutation type %T. expect *repo.OrgMemberMutation", m)
}

// The OrganizationFunc type is an adapter to allow the use of ordinary
// function as Organization mutator.
type OrganizationFunc func(context.Context, *repo.OrganizationMutation) (repo.Value, error)

// Mutate calls f(ctx, m).
func (f OrganizationFunc) Mutate(ctx context.Context, m repo.Mutation) (repo.Value, error) {
	if mv, ok := m.(*repo.OrganizationMutation); ok {
		return f(ctx, mv)
	}
	return nil, fmt.Errorf("unexpected mutation type %T. expect *repo.OrganizationMutation", m)
}

// The QuestionFunc type is an adapter to allow the use of ordinary
// function as Question mutator.
type QuestionFunc func(context.Context, *repo.QuestionMutation) (repo.Value, error)

// Mutate calls f(ctx, m).
func (f QuestionFunc) Mutate(ctx context.Context, m repo.Mutation) (repo.Value, error) {
	if mv, ok := m.(*repo.QuestionMutation); ok {
		return f(ctx, mv)
	}
	return nil, fmt.Errorf("unexpected mutation type %T. expect *repo.QuestionMutation", m)
}

// The ReportDraftFunc type is an adapter to allow the use of ordinary
// function as ReportDraft mutator.
type ReportDraftFunc func(context.Context, *repo.ReportDraftMutation) (repo.Value, error)

// Mutate calls f(ctx, m).
func (f ReportDraftFunc) Mutate(ctx context.Context, m repo.Mutation) (repo.Value, error) {
	if mv, ok := m.(*repo.ReportDraftMutation); ok {
		return f(ctx, mv)
	}
	return nil, fmt.Errorf("unexpected mutation type %T. expect *repo.ReportDraftMutation", m)
}

// The SubmissionFunc type is an adapter to allow the use of ordinary
// function as Submission mutator.
type SubmissionFunc func(context.Context, *repo.SubmissionMutation) (repo.Value, error)

// Mutate calls f(ctx, m).
func (f SubmissionFunc) Mutate(ctx context.Context, m repo.Mutation) (repo.Value, error) {
	if mv, ok := m.(*repo.SubmissionMutation); ok {
		return f(ctx, mv)
	}
	return nil, fmt.Errorf("unexpected mutation type %T. expect *repo.SubmissionMutation", m)
}

// The TakerFunc type is an adapter to allow the use of ordinary
// function as Taker mutator.
type TakerFunc func(context.Context, *repo.TakerMutation) (repo.Value, error)

// Mutate calls f(ctx, m).
func (f TakerFunc) Mutate(ctx context.Context, m repo.Mutation) (repo.Value, error) {
	if mv, ok := m.(*repo.TakerMutation); ok {
		return f(ctx, mv)
	}
	return nil, fmt.Errorf("unexpected mutation type %T. expect *repo.TakerMutation", m)
}

// The TestFunc type is an adapter to allow the use of ordinary
// function as Test mutator.
type TestFunc func(context.Context, *repo.TestMutation) (repo.Value, error)

// Mutate calls f(ctx, m).
func (f TestFunc) Mutate(ctx context.Context, m repo.Mutation) (repo.Value, error) {
	if mv, ok := m.(*repo.TestMutation); ok {
		return f(ctx, mv)
	}
	return nil, fmt.Errorf("unexpected mutation type %T. expect *repo.TestMutation", m)
}

// The TestLinkFunc type is an adapter to allow the use of ordinary
// function as TestLink mutator.
type TestLinkFunc func(context.Context, *repo.TestLinkMutation) (repo.Value, error)

// Mutate calls f(ctx, m).
func (f TestLinkFunc) Mutate(ctx context.Context, m repo.Mutation) (repo.Value, error) {
	if mv, ok := m.(*repo.TestLinkMutation); ok {
		return f(ctx, mv)
	}
	return nil, fmt.Errorf("unexpected mutation type %T. expect *repo.TestLinkMutation", m)
}

// The TestResultFunc type is an adapter to allow the use of ordinary
// function as TestResult mutator.
type TestResultFunc func(context.Context, *repo.TestResultMutation) (repo.Value, error)

// Mutate calls f(ctx, m).
func (f TestResultFunc) Mutate(ctx context.Context, m repo.Mutation) (repo.Value, error) {
	if mv, ok := m.(*repo.TestResultMutation); ok {
		return f(ctx, mv)
	}
	return nil, fmt.Errorf("unexpected mutation type %T. expect *repo.TestResultMutation", m)
}

// The UserFunc type is an adapter to allow the use of ordinary
// function as User mutator.
type UserFunc func(context.Context, *repo.UserMutation) (repo.Value, error)

// Mutate calls f(ctx, m).
func (f UserFunc) Mutate(ctx context.Context, m repo.Mutation) (repo.Value, error) {
	if mv, ok := m.(*repo.UserMutation); ok {
		return f(ctx, mv)
	}
	return nil, fmt.Errorf("unexpected mutation type %T. expect *repo.UserMutation", m)
}

// Condition is a hook condition function.
type Condition func(context.Context, repo.Mutation) bool

// And groups conditions with the AND operator.
func And(first, second Condition, rest ...Condition) Condition {
	return func(ctx context.Context, m repo.Mutation) bool {
		if !first(ctx, m) || !second(ctx, m) {
			return false
		}
		for _, cond := range rest {
			if !cond(ctx, m) {
				return false
			}
		}
		return true
	}
}

// Or groups conditions with the OR operator.
func Or(first, second Condition, rest ...Condition) Condition {
	return func(ctx context.Context, m repo.Mutation) bool {
		if first(ctx, m) || second(ctx, m) {
			return true
		}
		for _, cond := range rest {
			if cond(ctx, m) {
				return true
			}
		}
		return false
	}
}

// Not negates a given condition.
func Not(cond Condition) Condition {
	return func(ctx context.Context, m repo.Mutation) bool {
		return !cond(ctx, m)
	}
}

// HasOp is a condition testing mutation operation.
func HasOp(op repo.Op) Condition {
	return func(_ context.Context, m repo.Mutation) bool {
		return m.Op().Is(op)
	}
}

// HasAddedFields is a condition validating `.AddedField` on fields.
func HasAddedFields(field string, fields ...string) Condition {
	return func(_ context.Context, m repo.Mutation) bool {
		if _, exists := m.AddedField(field); !exists {
			return false
		}
		for _, field := range fields {
			if _, exists := m.AddedField(field); !exists {
				return false
			}
		}
		return true
	}
}

// HasClearedFields is a condition validating `.FieldCleared` on fields.
func HasClearedFields(field string, fields ...string) Condition {
	return func(_ context.Context, m repo.Mutation) bool {
		if exists := m.FieldCleared(field); !exists {
			return false
		}
		for _, field := range fields {
			if exists := m.FieldCleared(field); !exists {
				return false
			}
		}
		return true
	}
}

// HasFields is a condition validating `.Field` on fields.
func HasFields(field string, fields ...string) Condition {
	return func(_ context.Context, m repo.Mutation) bool {
		if _, exists := m.Field(field); !exists {
			return false
		}
		for _, field := range fields {
			if _, exists := m.Field(field); !exists {
				return false
			}
		}
		return true
	}
}

// If executes the given hook under condition.
//
//	hook.If(ComputeAverage, And(HasFields(...), HasAddedFields(...)))
func If(hk repo.Hook, cond Condition) repo.Hook {
	return func(next repo.Mutator) repo.Mutator {
		return repo.MutateFunc(func(ctx context.Context, m repo.Mutation) (repo.Value, error) {
			if cond(ctx, m) {
				return hk(next).Mutate(ctx, m)
			}
			return next.Mutate(ctx, m)
		})
	}
}

// On executes the given hook only for the given operation.
//
//	hook.On(Log, repo.Delete|repo.Create)
func On(hk repo.Hook, op repo.Op) repo.Hook {
	return If(hk, HasOp(op))
}

// Unless skips the given hook only for the given operation.
//
//	hook.Unless(Log, repo.Update|repo.UpdateOne)
func Unless(hk repo.Hook, op repo.Op) repo.Hook {
	return If(hk, Not(HasOp(op)))
}

// FixedError is a hook returning a fixed error.
func FixedError(err error) repo.Hook {
	return func(repo.Mutator) repo.Mutator {
		return repo.MutateFunc(func(context.Context, repo.Mutation) (repo.Value, error) {
			return nil, err
		})
	}
}

// Reject returns a hook that rejects all operations that match op.
//
//	func (T) Hooks() []repo.Hook {
//		return []repo.Hook{
//			Reject(repo.Delete|repo.Update),
//		}
//	}
func Reject(op repo.Op) repo.Hook {
	hk := FixedError(fmt.Errorf("%s operation is not allowed", op))
	return On(hk, op)
}

// Chain acts as a list of hooks and is effectively immutable.
// Once created, it will always hold the same set of hooks in the same order.
type Chain struct {
	hooks []repo.Hook
}

// NewChain creates a new chain of hooks.
func NewChain(hooks ...repo.Hook) Chain {
	return Chain{append([]repo.Hook(nil), hooks...)}
}

// Hook chains the list of hooks and returns the final hook.
func (c Chain) Hook() repo.Hook {
	return func(mutator repo.Mutator) repo.Mutator {
		for i := len(c.hooks) - 1; i >= 0; i-- {
			mutator = c.hooks[i](mutator)
		}
		return mutator
	}
}

// Append extends a chain, adding the specified hook
// as the last ones in the mutation flow.
func (c Chain) Append(hooks ...repo.Hook) Chain {
	newHooks := make([]repo.Hook, 0, len(c.hooks)+len(hooks))
	newHooks = append(newHooks, c.hooks...)
	newHooks = append(newHooks, hooks...)
	return Chain{newHooks}
}

// Extend extends a chain, adding the specified chain
// as the last ones in the mutation flow.
func (c Chain) Extend(chain Chain) Chain {
	return c.Append(chain.hooks...)
}

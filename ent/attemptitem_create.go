// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/solvio/solvio/ent/attemptitem"
	"github.com/solvio/solvio/ent/schema"
)

// AttemptItemCreate is the builder for creating a AttemptItem entity.
type AttemptItemCreate struct {
	config
	mutation *AttemptItemMutation
	hooks    []Hook
}

// SetItemID sets the "item_id" field.
func (_c *AttemptItemCreate) SetItemID(v string) *AttemptItemCreate {
	_c.mutation.SetItemID(v)
	return _c
}

// SetAttemptID sets the "attempt_id" field.
func (_c *AttemptItemCreate) SetAttemptID(v string) *AttemptItemCreate {
	_c.mutation.SetAttemptID(v)
	return _c
}

// SetOrdinal sets the "ordinal" field.
func (_c *AttemptItemCreate) SetOrdinal(v int) *AttemptItemCreate {
	_c.mutation.SetOrdinal(v)
	return _c
}

// SetQuestionID sets the "question_id" field.
func (_c *AttemptItemCreate) SetQuestionID(v string) *AttemptItemCreate {
	_c.mutation.SetQuestionID(v)
	return _c
}

// SetQuestionVersion sets the "question_version" field.
func (_c *AttemptItemCreate) SetQuestionVersion(v int) *AttemptItemCreate {
	_c.mutation.SetQuestionVersion(v)
	return _c
}

// SetSkill sets the "skill" field.
func (_c *AttemptItemCreate) SetSkill(v string) *AttemptItemCreate {
	_c.mutation.SetSkill(v)
	return _c
}

// SetStem sets the "stem" field.
func (_c *AttemptItemCreate) SetStem(v string) *AttemptItemCreate {
	_c.mutation.SetStem(v)
	return _c
}

// SetOptions sets the "options" field.
func (_c *AttemptItemCreate) SetOptions(v []schema.AnswerOption) *AttemptItemCreate {
	_c.mutation.SetOptions(v)
	return _c
}

// SetCorrectOption sets the "correct_option" field.
func (_c *AttemptItemCreate) SetCorrectOption(v string) *AttemptItemCreate {
	_c.mutation.SetCorrectOption(v)
	return _c
}

// SetExplanation sets the "explanation" field.
func (_c *AttemptItemCreate) SetExplanation(v string) *AttemptItemCreate {
	_c.mutation.SetExplanation(v)
	return _c
}

// SetNillableExplanation sets the "explanation" field if the given value is not nil.
func (_c *AttemptItemCreate) SetNillableExplanation(v *string) *AttemptItemCreate {
	if v != nil {
		_c.SetExplanation(*v)
	}
	return _c
}

// SetHint sets the "hint" field.
func (_c *AttemptItemCreate) SetHint(v string) *AttemptItemCreate {
	_c.mutation.SetHint(v)
	return _c
}

// SetNillableHint sets the "hint" field if the given value is not nil.
func (_c *AttemptItemCreate) SetNillableHint(v *string) *AttemptItemCreate {
	if v != nil {
		_c.SetHint(*v)
	}
	return _c
}

// SetAnswerOption sets the "answer_option" field.
func (_c *AttemptItemCreate) SetAnswerOption(v string) *AttemptItemCreate {
	_c.mutation.SetAnswerOption(v)
	return _c
}

// SetNillableAnswerOption sets the "answer_option" field if the given value is not nil.
func (_c *AttemptItemCreate) SetNillableAnswerOption(v *string) *AttemptItemCreate {
	if v != nil {
		_c.SetAnswerOption(*v)
	}
	return _c
}

// SetIdempotencyKey sets the "idempotency_key" field.
func (_c *AttemptItemCreate) SetIdempotencyKey(v string) *AttemptItemCreate {
	_c.mutation.SetIdempotencyKey(v)
	return _c
}

// SetNillableIdempotencyKey sets the "idempotency_key" field if the given value is not nil.
func (_c *AttemptItemCreate) SetNillableIdempotencyKey(v *string) *AttemptItemCreate {
	if v != nil {
		_c.SetIdempotencyKey(*v)
	}
	return _c
}

// SetIsCorrect sets the "is_correct" field.
func (_c *AttemptItemCreate) SetIsCorrect(v bool) *AttemptItemCreate {
	_c.mutation.SetIsCorrect(v)
	return _c
}

// SetNillableIsCorrect sets the "is_correct" field if the given value is not nil.
func (_c *AttemptItemCreate) SetNillableIsCorrect(v *bool) *AttemptItemCreate {
	if v != nil {
		_c.SetIsCorrect(*v)
	}
	return _c
}

// SetScore sets the "score" field.
func (_c *AttemptItemCreate) SetScore(v float64) *AttemptItemCreate {
	_c.mutation.SetScore(v)
	return _c
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_c *AttemptItemCreate) SetNillableScore(v *float64) *AttemptItemCreate {
	if v != nil {
		_c.SetScore(*v)
	}
	return _c
}

// SetHintsUsed sets the "hints_used" field.
func (_c *AttemptItemCreate) SetHintsUsed(v int) *AttemptItemCreate {
	_c.mutation.SetHintsUsed(v)
	return _c
}

// SetNillableHintsUsed sets the "hints_used" field if the given value is not nil.
func (_c *AttemptItemCreate) SetNillableHintsUsed(v *int) *AttemptItemCreate {
	if v != nil {
		_c.SetHintsUsed(*v)
	}
	return _c
}

// SetAttemptCount sets the "attempt_count" field.
func (_c *AttemptItemCreate) SetAttemptCount(v int) *AttemptItemCreate {
	_c.mutation.SetAttemptCount(v)
	return _c
}

// SetNillableAttemptCount sets the "attempt_count" field if the given value is not nil.
func (_c *AttemptItemCreate) SetNillableAttemptCount(v *int) *AttemptItemCreate {
	if v != nil {
		_c.SetAttemptCount(*v)
	}
	return _c
}

// SetRespondedAt sets the "responded_at" field.
func (_c *AttemptItemCreate) SetRespondedAt(v time.Time) *AttemptItemCreate {
	_c.mutation.SetRespondedAt(v)
	return _c
}

// SetNillableRespondedAt sets the "responded_at" field if the given value is not nil.
func (_c *AttemptItemCreate) SetNillableRespondedAt(v *time.Time) *AttemptItemCreate {
	if v != nil {
		_c.SetRespondedAt(*v)
	}
	return _c
}

// Mutation returns the AttemptItemMutation object of the builder.
func (_c *AttemptItemCreate) Mutation() *AttemptItemMutation {
	return _c.mutation
}

// Save creates the AttemptItem in the database.
func (_c *AttemptItemCreate) Save(ctx context.Context) (*AttemptItem, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AttemptItemCreate) SaveX(ctx context.Context) *AttemptItem {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AttemptItemCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AttemptItemCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AttemptItemCreate) defaults() {
	if _, ok := _c.mutation.IdempotencyKey(); !ok {
		v := attemptitem.DefaultIdempotencyKey
		_c.mutation.SetIdempotencyKey(v)
	}
	if _, ok := _c.mutation.HintsUsed(); !ok {
		v := attemptitem.DefaultHintsUsed
		_c.mutation.SetHintsUsed(v)
	}
	if _, ok := _c.mutation.AttemptCount(); !ok {
		v := attemptitem.DefaultAttemptCount
		_c.mutation.SetAttemptCount(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AttemptItemCreate) check() error {
	if _, ok := _c.mutation.ItemID(); !ok {
		return &ValidationError{Name: "item_id", err: errors.New(`ent: missing required field "AttemptItem.item_id"`)}
	}
	if _, ok := _c.mutation.AttemptID(); !ok {
		return &ValidationError{Name: "attempt_id", err: errors.New(`ent: missing required field "AttemptItem.attempt_id"`)}
	}
	if v, ok := _c.mutation.AttemptID(); ok {
		if err := attemptitem.AttemptIDValidator(v); err != nil {
			return &ValidationError{Name: "attempt_id", err: fmt.Errorf(`ent: validator failed for field "AttemptItem.attempt_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Ordinal(); !ok {
		return &ValidationError{Name: "ordinal", err: errors.New(`ent: missing required field "AttemptItem.ordinal"`)}
	}
	if v, ok := _c.mutation.Ordinal(); ok {
		if err := attemptitem.OrdinalValidator(v); err != nil {
			return &ValidationError{Name: "ordinal", err: fmt.Errorf(`ent: validator failed for field "AttemptItem.ordinal": %w`, err)}
		}
	}
	if _, ok := _c.mutation.QuestionID(); !ok {
		return &ValidationError{Name: "question_id", err: errors.New(`ent: missing required field "AttemptItem.question_id"`)}
	}
	if v, ok := _c.mutation.QuestionID(); ok {
		if err := attemptitem.QuestionIDValidator(v); err != nil {
			return &ValidationError{Name: "question_id", err: fmt.Errorf(`ent: validator failed for field "AttemptItem.question_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.QuestionVersion(); !ok {
		return &ValidationError{Name: "question_version", err: errors.New(`ent: missing required field "AttemptItem.question_version"`)}
	}
	if v, ok := _c.mutation.QuestionVersion(); ok {
		if err := attemptitem.QuestionVersionValidator(v); err != nil {
			return &ValidationError{Name: "question_version", err: fmt.Errorf(`ent: validator failed for field "AttemptItem.question_version": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Skill(); !ok {
		return &ValidationError{Name: "skill", err: errors.New(`ent: missing required field "AttemptItem.skill"`)}
	}
	if v, ok := _c.mutation.Skill(); ok {
		if err := attemptitem.SkillValidator(v); err != nil {
			return &ValidationError{Name: "skill", err: fmt.Errorf(`ent: validator failed for field "AttemptItem.skill": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Stem(); !ok {
		return &ValidationError{Name: "stem", err: errors.New(`ent: missing required field "AttemptItem.stem"`)}
	}
	if v, ok := _c.mutation.Stem(); ok {
		if err := attemptitem.StemValidator(v); err != nil {
			return &ValidationError{Name: "stem", err: fmt.Errorf(`ent: validator failed for field "AttemptItem.stem": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Options(); !ok {
		return &ValidationError{Name: "options", err: errors.New(`ent: missing required field "AttemptItem.options"`)}
	}
	if _, ok := _c.mutation.CorrectOption(); !ok {
		return &ValidationError{Name: "correct_option", err: errors.New(`ent: missing required field "AttemptItem.correct_option"`)}
	}
	if v, ok := _c.mutation.CorrectOption(); ok {
		if err := attemptitem.CorrectOptionValidator(v); err != nil {
			return &ValidationError{Name: "correct_option", err: fmt.Errorf(`ent: validator failed for field "AttemptItem.correct_option": %w`, err)}
		}
	}
	if _, ok := _c.mutation.HintsUsed(); !ok {
		return &ValidationError{Name: "hints_used", err: errors.New(`ent: missing required field "AttemptItem.hints_used"`)}
	}
	if _, ok := _c.mutation.AttemptCount(); !ok {
		return &ValidationError{Name: "attempt_count", err: errors.New(`ent: missing required field "AttemptItem.attempt_count"`)}
	}
	return nil
}

func (_c *AttemptItemCreate) sqlSave(ctx context.Context) (*AttemptItem, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *AttemptItemCreate) createSpec() (*AttemptItem, *sqlgraph.CreateSpec) {
	var (
		_node = &AttemptItem{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(attemptitem.Table, sqlgraph.NewFieldSpec(attemptitem.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.ItemID(); ok {
		_spec.SetField(attemptitem.FieldItemID, field.TypeString, value)
		_node.ItemID = value
	}
	if value, ok := _c.mutation.AttemptID(); ok {
		_spec.SetField(attemptitem.FieldAttemptID, field.TypeString, value)
		_node.AttemptID = value
	}
	if value, ok := _c.mutation.Ordinal(); ok {
		_spec.SetField(attemptitem.FieldOrdinal, field.TypeInt, value)
		_node.Ordinal = value
	}
	if value, ok := _c.mutation.QuestionID(); ok {
		_spec.SetField(attemptitem.FieldQuestionID, field.TypeString, value)
		_node.QuestionID = value
	}
	if value, ok := _c.mutation.QuestionVersion(); ok {
		_spec.SetField(attemptitem.FieldQuestionVersion, field.TypeInt, value)
		_node.QuestionVersion = value
	}
	if value, ok := _c.mutation.Skill(); ok {
		_spec.SetField(attemptitem.FieldSkill, field.TypeString, value)
		_node.Skill = value
	}
	if value, ok := _c.mutation.Stem(); ok {
		_spec.SetField(attemptitem.FieldStem, field.TypeString, value)
		_node.Stem = value
	}
	if value, ok := _c.mutation.Options(); ok {
		_spec.SetField(attemptitem.FieldOptions, field.TypeJSON, value)
		_node.Options = value
	}
	if value, ok := _c.mutation.CorrectOption(); ok {
		_spec.SetField(attemptitem.FieldCorrectOption, field.TypeString, value)
		_node.CorrectOption = value
	}
	if value, ok := _c.mutation.Explanation(); ok {
		_spec.SetField(attemptitem.FieldExplanation, field.TypeString, value)
		_node.Explanation = value
	}
	if value, ok := _c.mutation.Hint(); ok {
		_spec.SetField(attemptitem.FieldHint, field.TypeString, value)
		_node.Hint = value
	}
	if value, ok := _c.mutation.AnswerOption(); ok {
		_spec.SetField(attemptitem.FieldAnswerOption, field.TypeString, value)
		_node.AnswerOption = &value
	}
	if value, ok := _c.mutation.IdempotencyKey(); ok {
		_spec.SetField(attemptitem.FieldIdempotencyKey, field.TypeString, value)
		_node.IdempotencyKey = value
	}
	if value, ok := _c.mutation.IsCorrect(); ok {
		_spec.SetField(attemptitem.FieldIsCorrect, field.TypeBool, value)
		_node.IsCorrect = &value
	}
	if value, ok := _c.mutation.Score(); ok {
		_spec.SetField(attemptitem.FieldScore, field.TypeFloat64, value)
		_node.Score = &value
	}
	if value, ok := _c.mutation.HintsUsed(); ok {
		_spec.SetField(attemptitem.FieldHintsUsed, field.TypeInt, value)
		_node.HintsUsed = value
	}
	if value, ok := _c.mutation.AttemptCount(); ok {
		_spec.SetField(attemptitem.FieldAttemptCount, field.TypeInt, value)
		_node.AttemptCount = value
	}
	if value, ok := _c.mutation.RespondedAt(); ok {
		_spec.SetField(attemptitem.FieldRespondedAt, field.TypeTime, value)
		_node.RespondedAt = &value
	}
	return _node, _spec
}

// AttemptItemCreateBulk is the builder for creating many AttemptItem entities in bulk.
type AttemptItemCreateBulk struct {
	config
	err      error
	builders []*AttemptItemCreate
}

// Save creates the AttemptItem entities in the database.
func (_c *AttemptItemCreateBulk) Save(ctx context.Context) ([]*AttemptItem, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*AttemptItem, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AttemptItemMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *AttemptItemCreateBulk) SaveX(ctx context.Context) []*AttemptItem {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AttemptItemCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AttemptItemCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/solvio/solvio/ent/attemptitem"
	"github.com/solvio/solvio/ent/predicate"
	"github.com/solvio/solvio/ent/schema"
)

// AttemptItemUpdate is the builder for updating AttemptItem entities.
type AttemptItemUpdate struct {
	config
	hooks    []Hook
	mutation *AttemptItemMutation
}

// Where appends a list predicates to the AttemptItemUpdate builder.
func (_u *AttemptItemUpdate) Where(ps ...predicate.AttemptItem) *AttemptItemUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetOptions sets the "options" field.
func (_u *AttemptItemUpdate) SetOptions(v []schema.AnswerOption) *AttemptItemUpdate {
	_u.mutation.SetOptions(v)
	return _u
}

// AppendOptions appends value to the "options" field.
func (_u *AttemptItemUpdate) AppendOptions(v []schema.AnswerOption) *AttemptItemUpdate {
	_u.mutation.AppendOptions(v)
	return _u
}

// SetExplanation sets the "explanation" field.
func (_u *AttemptItemUpdate) SetExplanation(v string) *AttemptItemUpdate {
	_u.mutation.SetExplanation(v)
	return _u
}

// SetNillableExplanation sets the "explanation" field if the given value is not nil.
func (_u *AttemptItemUpdate) SetNillableExplanation(v *string) *AttemptItemUpdate {
	if v != nil {
		_u.SetExplanation(*v)
	}
	return _u
}

// ClearExplanation clears the value of the "explanation" field.
func (_u *AttemptItemUpdate) ClearExplanation() *AttemptItemUpdate {
	_u.mutation.ClearExplanation()
	return _u
}

// SetHint sets the "hint" field.
func (_u *AttemptItemUpdate) SetHint(v string) *AttemptItemUpdate {
	_u.mutation.SetHint(v)
	return _u
}

// SetNillableHint sets the "hint" field if the given value is not nil.
func (_u *AttemptItemUpdate) SetNillableHint(v *string) *AttemptItemUpdate {
	if v != nil {
		_u.SetHint(*v)
	}
	return _u
}

// ClearHint clears the value of the "hint" field.
func (_u *AttemptItemUpdate) ClearHint() *AttemptItemUpdate {
	_u.mutation.ClearHint()
	return _u
}

// SetAnswerOption sets the "answer_option" field.
func (_u *AttemptItemUpdate) SetAnswerOption(v string) *AttemptItemUpdate {
	_u.mutation.SetAnswerOption(v)
	return _u
}

// SetNillableAnswerOption sets the "answer_option" field if the given value is not nil.
func (_u *AttemptItemUpdate) SetNillableAnswerOption(v *string) *AttemptItemUpdate {
	if v != nil {
		_u.SetAnswerOption(*v)
	}
	return _u
}

// ClearAnswerOption clears the value of the "answer_option" field.
func (_u *AttemptItemUpdate) ClearAnswerOption() *AttemptItemUpdate {
	_u.mutation.ClearAnswerOption()
	return _u
}

// SetIdempotencyKey sets the "idempotency_key" field.
func (_u *AttemptItemUpdate) SetIdempotencyKey(v string) *AttemptItemUpdate {
	_u.mutation.SetIdempotencyKey(v)
	return _u
}

// SetNillableIdempotencyKey sets the "idempotency_key" field if the given value is not nil.
func (_u *AttemptItemUpdate) SetNillableIdempotencyKey(v *string) *AttemptItemUpdate {
	if v != nil {
		_u.SetIdempotencyKey(*v)
	}
	return _u
}

// ClearIdempotencyKey clears the value of the "idempotency_key" field.
func (_u *AttemptItemUpdate) ClearIdempotencyKey() *AttemptItemUpdate {
	_u.mutation.ClearIdempotencyKey()
	return _u
}

// SetIsCorrect sets the "is_correct" field.
func (_u *AttemptItemUpdate) SetIsCorrect(v bool) *AttemptItemUpdate {
	_u.mutation.SetIsCorrect(v)
	return _u
}

// SetNillableIsCorrect sets the "is_correct" field if the given value is not nil.
func (_u *AttemptItemUpdate) SetNillableIsCorrect(v *bool) *AttemptItemUpdate {
	if v != nil {
		_u.SetIsCorrect(*v)
	}
	return _u
}

// ClearIsCorrect clears the value of the "is_correct" field.
func (_u *AttemptItemUpdate) ClearIsCorrect() *AttemptItemUpdate {
	_u.mutation.ClearIsCorrect()
	return _u
}

// SetScore sets the "score" field.
func (_u *AttemptItemUpdate) SetScore(v float64) *AttemptItemUpdate {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *AttemptItemUpdate) SetNillableScore(v *float64) *AttemptItemUpdate {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *AttemptItemUpdate) AddScore(v float64) *AttemptItemUpdate {
	_u.mutation.AddScore(v)
	return _u
}

// ClearScore clears the value of the "score" field.
func (_u *AttemptItemUpdate) ClearScore() *AttemptItemUpdate {
	_u.mutation.ClearScore()
	return _u
}

// SetHintsUsed sets the "hints_used" field.
func (_u *AttemptItemUpdate) SetHintsUsed(v int) *AttemptItemUpdate {
	_u.mutation.ResetHintsUsed()
	_u.mutation.SetHintsUsed(v)
	return _u
}

// SetNillableHintsUsed sets the "hints_used" field if the given value is not nil.
func (_u *AttemptItemUpdate) SetNillableHintsUsed(v *int) *AttemptItemUpdate {
	if v != nil {
		_u.SetHintsUsed(*v)
	}
	return _u
}

// AddHintsUsed adds value to the "hints_used" field.
func (_u *AttemptItemUpdate) AddHintsUsed(v int) *AttemptItemUpdate {
	_u.mutation.AddHintsUsed(v)
	return _u
}

// SetAttemptCount sets the "attempt_count" field.
func (_u *AttemptItemUpdate) SetAttemptCount(v int) *AttemptItemUpdate {
	_u.mutation.ResetAttemptCount()
	_u.mutation.SetAttemptCount(v)
	return _u
}

// SetNillableAttemptCount sets the "attempt_count" field if the given value is not nil.
func (_u *AttemptItemUpdate) SetNillableAttemptCount(v *int) *AttemptItemUpdate {
	if v != nil {
		_u.SetAttemptCount(*v)
	}
	return _u
}

// AddAttemptCount adds value to the "attempt_count" field.
func (_u *AttemptItemUpdate) AddAttemptCount(v int) *AttemptItemUpdate {
	_u.mutation.AddAttemptCount(v)
	return _u
}

// SetRespondedAt sets the "responded_at" field.
func (_u *AttemptItemUpdate) SetRespondedAt(v time.Time) *AttemptItemUpdate {
	_u.mutation.SetRespondedAt(v)
	return _u
}

// SetNillableRespondedAt sets the "responded_at" field if the given value is not nil.
func (_u *AttemptItemUpdate) SetNillableRespondedAt(v *time.Time) *AttemptItemUpdate {
	if v != nil {
		_u.SetRespondedAt(*v)
	}
	return _u
}

// ClearRespondedAt clears the value of the "responded_at" field.
func (_u *AttemptItemUpdate) ClearRespondedAt() *AttemptItemUpdate {
	_u.mutation.ClearRespondedAt()
	return _u
}

// Mutation returns the AttemptItemMutation object of the builder.
func (_u *AttemptItemUpdate) Mutation() *AttemptItemMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AttemptItemUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AttemptItemUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AttemptItemUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AttemptItemUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *AttemptItemUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(attemptitem.Table, attemptitem.Columns, sqlgraph.NewFieldSpec(attemptitem.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Options(); ok {
		_spec.SetField(attemptitem.FieldOptions, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedOptions(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, attemptitem.FieldOptions, value)
		})
	}
	if value, ok := _u.mutation.Explanation(); ok {
		_spec.SetField(attemptitem.FieldExplanation, field.TypeString, value)
	}
	if _u.mutation.ExplanationCleared() {
		_spec.ClearField(attemptitem.FieldExplanation, field.TypeString)
	}
	if value, ok := _u.mutation.Hint(); ok {
		_spec.SetField(attemptitem.FieldHint, field.TypeString, value)
	}
	if _u.mutation.HintCleared() {
		_spec.ClearField(attemptitem.FieldHint, field.TypeString)
	}
	if value, ok := _u.mutation.AnswerOption(); ok {
		_spec.SetField(attemptitem.FieldAnswerOption, field.TypeString, value)
	}
	if _u.mutation.AnswerOptionCleared() {
		_spec.ClearField(attemptitem.FieldAnswerOption, field.TypeString)
	}
	if value, ok := _u.mutation.IdempotencyKey(); ok {
		_spec.SetField(attemptitem.FieldIdempotencyKey, field.TypeString, value)
	}
	if _u.mutation.IdempotencyKeyCleared() {
		_spec.ClearField(attemptitem.FieldIdempotencyKey, field.TypeString)
	}
	if value, ok := _u.mutation.IsCorrect(); ok {
		_spec.SetField(attemptitem.FieldIsCorrect, field.TypeBool, value)
	}
	if _u.mutation.IsCorrectCleared() {
		_spec.ClearField(attemptitem.FieldIsCorrect, field.TypeBool)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(attemptitem.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(attemptitem.FieldScore, field.TypeFloat64, value)
	}
	if _u.mutation.ScoreCleared() {
		_spec.ClearField(attemptitem.FieldScore, field.TypeFloat64)
	}
	if value, ok := _u.mutation.HintsUsed(); ok {
		_spec.SetField(attemptitem.FieldHintsUsed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedHintsUsed(); ok {
		_spec.AddField(attemptitem.FieldHintsUsed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AttemptCount(); ok {
		_spec.SetField(attemptitem.FieldAttemptCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttemptCount(); ok {
		_spec.AddField(attemptitem.FieldAttemptCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.RespondedAt(); ok {
		_spec.SetField(attemptitem.FieldRespondedAt, field.TypeTime, value)
	}
	if _u.mutation.RespondedAtCleared() {
		_spec.ClearField(attemptitem.FieldRespondedAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{attemptitem.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AttemptItemUpdateOne is the builder for updating a single AttemptItem entity.
type AttemptItemUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AttemptItemMutation
}

// SetOptions sets the "options" field.
func (_u *AttemptItemUpdateOne) SetOptions(v []schema.AnswerOption) *AttemptItemUpdateOne {
	_u.mutation.SetOptions(v)
	return _u
}

// AppendOptions appends value to the "options" field.
func (_u *AttemptItemUpdateOne) AppendOptions(v []schema.AnswerOption) *AttemptItemUpdateOne {
	_u.mutation.AppendOptions(v)
	return _u
}

// SetExplanation sets the "explanation" field.
func (_u *AttemptItemUpdateOne) SetExplanation(v string) *AttemptItemUpdateOne {
	_u.mutation.SetExplanation(v)
	return _u
}

// SetNillableExplanation sets the "explanation" field if the given value is not nil.
func (_u *AttemptItemUpdateOne) SetNillableExplanation(v *string) *AttemptItemUpdateOne {
	if v != nil {
		_u.SetExplanation(*v)
	}
	return _u
}

// ClearExplanation clears the value of the "explanation" field.
func (_u *AttemptItemUpdateOne) ClearExplanation() *AttemptItemUpdateOne {
	_u.mutation.ClearExplanation()
	return _u
}

// SetHint sets the "hint" field.
func (_u *AttemptItemUpdateOne) SetHint(v string) *AttemptItemUpdateOne {
	_u.mutation.SetHint(v)
	return _u
}

// SetNillableHint sets the "hint" field if the given value is not nil.
func (_u *AttemptItemUpdateOne) SetNillableHint(v *string) *AttemptItemUpdateOne {
	if v != nil {
		_u.SetHint(*v)
	}
	return _u
}

// ClearHint clears the value of the "hint" field.
func (_u *AttemptItemUpdateOne) ClearHint() *AttemptItemUpdateOne {
	_u.mutation.ClearHint()
	return _u
}

// SetAnswerOption sets the "answer_option" field.
func (_u *AttemptItemUpdateOne) SetAnswerOption(v string) *AttemptItemUpdateOne {
	_u.mutation.SetAnswerOption(v)
	return _u
}

// SetNillableAnswerOption sets the "answer_option" field if the given value is not nil.
func (_u *AttemptItemUpdateOne) SetNillableAnswerOption(v *string) *AttemptItemUpdateOne {
	if v != nil {
		_u.SetAnswerOption(*v)
	}
	return _u
}

// ClearAnswerOption clears the value of the "answer_option" field.
func (_u *AttemptItemUpdateOne) ClearAnswerOption() *AttemptItemUpdateOne {
	_u.mutation.ClearAnswerOption()
	return _u
}

// SetIdempotencyKey sets the "idempotency_key" field.
func (_u *AttemptItemUpdateOne) SetIdempotencyKey(v string) *AttemptItemUpdateOne {
	_u.mutation.SetIdempotencyKey(v)
	return _u
}

// SetNillableIdempotencyKey sets the "idempotency_key" field if the given value is not nil.
func (_u *AttemptItemUpdateOne) SetNillableIdempotencyKey(v *string) *AttemptItemUpdateOne {
	if v != nil {
		_u.SetIdempotencyKey(*v)
	}
	return _u
}

// ClearIdempotencyKey clears the value of the "idempotency_key" field.
func (_u *AttemptItemUpdateOne) ClearIdempotencyKey() *AttemptItemUpdateOne {
	_u.mutation.ClearIdempotencyKey()
	return _u
}

// SetIsCorrect sets the "is_correct" field.
func (_u *AttemptItemUpdateOne) SetIsCorrect(v bool) *AttemptItemUpdateOne {
	_u.mutation.SetIsCorrect(v)
	return _u
}

// SetNillableIsCorrect sets the "is_correct" field if the given value is not nil.
func (_u *AttemptItemUpdateOne) SetNillableIsCorrect(v *bool) *AttemptItemUpdateOne {
	if v != nil {
		_u.SetIsCorrect(*v)
	}
	return _u
}

// ClearIsCorrect clears the value of the "is_correct" field.
func (_u *AttemptItemUpdateOne) ClearIsCorrect() *AttemptItemUpdateOne {
	_u.mutation.ClearIsCorrect()
	return _u
}

// SetScore sets the "score" field.
func (_u *AttemptItemUpdateOne) SetScore(v float64) *AttemptItemUpdateOne {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *AttemptItemUpdateOne) SetNillableScore(v *float64) *AttemptItemUpdateOne {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *AttemptItemUpdateOne) AddScore(v float64) *AttemptItemUpdateOne {
	_u.mutation.AddScore(v)
	return _u
}

// ClearScore clears the value of the "score" field.
func (_u *AttemptItemUpdateOne) ClearScore() *AttemptItemUpdateOne {
	_u.mutation.ClearScore()
	return _u
}

// SetHintsUsed sets the "hints_used" field.
func (_u *AttemptItemUpdateOne) SetHintsUsed(v int) *AttemptItemUpdateOne {
	_u.mutation.ResetHintsUsed()
	_u.mutation.SetHintsUsed(v)
	return _u
}

// SetNillableHintsUsed sets the "hints_used" field if the given value is not nil.
func (_u *AttemptItemUpdateOne) SetNillableHintsUsed(v *int) *AttemptItemUpdateOne {
	if v != nil {
		_u.SetHintsUsed(*v)
	}
	return _u
}

// AddHintsUsed adds value to the "hints_used" field.
func (_u *AttemptItemUpdateOne) AddHintsUsed(v int) *AttemptItemUpdateOne {
	_u.mutation.AddHintsUsed(v)
	return _u
}

// SetAttemptCount sets the "attempt_count" field.
func (_u *AttemptItemUpdateOne) SetAttemptCount(v int) *AttemptItemUpdateOne {
	_u.mutation.ResetAttemptCount()
	_u.mutation.SetAttemptCount(v)
	return _u
}

// SetNillableAttemptCount sets the "attempt_count" field if the given value is not nil.
func (_u *AttemptItemUpdateOne) SetNillableAttemptCount(v *int) *AttemptItemUpdateOne {
	if v != nil {
		_u.SetAttemptCount(*v)
	}
	return _u
}

// AddAttemptCount adds value to the "attempt_count" field.
func (_u *AttemptItemUpdateOne) AddAttemptCount(v int) *AttemptItemUpdateOne {
	_u.mutation.AddAttemptCount(v)
	return _u
}

// SetRespondedAt sets the "responded_at" field.
func (_u *AttemptItemUpdateOne) SetRespondedAt(v time.Time) *AttemptItemUpdateOne {
	_u.mutation.SetRespondedAt(v)
	return _u
}

// SetNillableRespondedAt sets the "responded_at" field if the given value is not nil.
func (_u *AttemptItemUpdateOne) SetNillableRespondedAt(v *time.Time) *AttemptItemUpdateOne {
	if v != nil {
		_u.SetRespondedAt(*v)
	}
	return _u
}

// ClearRespondedAt clears the value of the "responded_at" field.
func (_u *AttemptItemUpdateOne) ClearRespondedAt() *AttemptItemUpdateOne {
	_u.mutation.ClearRespondedAt()
	return _u
}

// Mutation returns the AttemptItemMutation object of the builder.
func (_u *AttemptItemUpdateOne) Mutation() *AttemptItemMutation {
	return _u.mutation
}

// Where appends a list predicates to the AttemptItemUpdate builder.
func (_u *AttemptItemUpdateOne) Where(ps ...predicate.AttemptItem) *AttemptItemUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AttemptItemUpdateOne) Select(field string, fields ...string) *AttemptItemUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AttemptItem entity.
func (_u *AttemptItemUpdateOne) Save(ctx context.Context) (*AttemptItem, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AttemptItemUpdateOne) SaveX(ctx context.Context) *AttemptItem {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AttemptItemUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AttemptItemUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *AttemptItemUpdateOne) sqlSave(ctx context.Context) (_node *AttemptItem, err error) {
	_spec := sqlgraph.NewUpdateSpec(attemptitem.Table, attemptitem.Columns, sqlgraph.NewFieldSpec(attemptitem.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AttemptItem.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, attemptitem.FieldID)
		for _, f := range fields {
			if !attemptitem.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != attemptitem.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Options(); ok {
		_spec.SetField(attemptitem.FieldOptions, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedOptions(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, attemptitem.FieldOptions, value)
		})
	}
	if value, ok := _u.mutation.Explanation(); ok {
		_spec.SetField(attemptitem.FieldExplanation, field.TypeString, value)
	}
	if _u.mutation.ExplanationCleared() {
		_spec.ClearField(attemptitem.FieldExplanation, field.TypeString)
	}
	if value, ok := _u.mutation.Hint(); ok {
		_spec.SetField(attemptitem.FieldHint, field.TypeString, value)
	}
	if _u.mutation.HintCleared() {
		_spec.ClearField(attemptitem.FieldHint, field.TypeString)
	}
	if value, ok := _u.mutation.AnswerOption(); ok {
		_spec.SetField(attemptitem.FieldAnswerOption, field.TypeString, value)
	}
	if _u.mutation.AnswerOptionCleared() {
		_spec.ClearField(attemptitem.FieldAnswerOption, field.TypeString)
	}
	if value, ok := _u.mutation.IdempotencyKey(); ok {
		_spec.SetField(attemptitem.FieldIdempotencyKey, field.TypeString, value)
	}
	if _u.mutation.IdempotencyKeyCleared() {
		_spec.ClearField(attemptitem.FieldIdempotencyKey, field.TypeString)
	}
	if value, ok := _u.mutation.IsCorrect(); ok {
		_spec.SetField(attemptitem.FieldIsCorrect, field.TypeBool, value)
	}
	if _u.mutation.IsCorrectCleared() {
		_spec.ClearField(attemptitem.FieldIsCorrect, field.TypeBool)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(attemptitem.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(attemptitem.FieldScore, field.TypeFloat64, value)
	}
	if _u.mutation.ScoreCleared() {
		_spec.ClearField(attemptitem.FieldScore, field.TypeFloat64)
	}
	if value, ok := _u.mutation.HintsUsed(); ok {
		_spec.SetField(attemptitem.FieldHintsUsed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedHintsUsed(); ok {
		_spec.AddField(attemptitem.FieldHintsUsed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AttemptCount(); ok {
		_spec.SetField(attemptitem.FieldAttemptCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttemptCount(); ok {
		_spec.AddField(attemptitem.FieldAttemptCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.RespondedAt(); ok {
		_spec.SetField(attemptitem.FieldRespondedAt, field.TypeTime, value)
	}
	if _u.mutation.RespondedAtCleared() {
		_spec.ClearField(attemptitem.FieldRespondedAt, field.TypeTime)
	}
	_node = &AttemptItem{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{attemptitem.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}

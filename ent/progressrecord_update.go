// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/solvio/solvio/ent/predicate"
	"github.com/solvio/solvio/ent/progressrecord"
)

// ProgressRecordUpdate is the builder for updating ProgressRecord entities.
type ProgressRecordUpdate struct {
	config
	hooks    []Hook
	mutation *ProgressRecordMutation
}

// Where appends a list predicates to the ProgressRecordUpdate builder.
func (_u *ProgressRecordUpdate) Where(ps ...predicate.ProgressRecord) *ProgressRecordUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *ProgressRecordUpdate) SetUserID(v string) *ProgressRecordUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *ProgressRecordUpdate) SetNillableUserID(v *string) *ProgressRecordUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetSubject sets the "subject" field.
func (_u *ProgressRecordUpdate) SetSubject(v string) *ProgressRecordUpdate {
	_u.mutation.SetSubject(v)
	return _u
}

// SetNillableSubject sets the "subject" field if the given value is not nil.
func (_u *ProgressRecordUpdate) SetNillableSubject(v *string) *ProgressRecordUpdate {
	if v != nil {
		_u.SetSubject(*v)
	}
	return _u
}

// SetTopic sets the "topic" field.
func (_u *ProgressRecordUpdate) SetTopic(v string) *ProgressRecordUpdate {
	_u.mutation.SetTopic(v)
	return _u
}

// SetNillableTopic sets the "topic" field if the given value is not nil.
func (_u *ProgressRecordUpdate) SetNillableTopic(v *string) *ProgressRecordUpdate {
	if v != nil {
		_u.SetTopic(*v)
	}
	return _u
}

// SetSkill sets the "skill" field.
func (_u *ProgressRecordUpdate) SetSkill(v string) *ProgressRecordUpdate {
	_u.mutation.SetSkill(v)
	return _u
}

// SetNillableSkill sets the "skill" field if the given value is not nil.
func (_u *ProgressRecordUpdate) SetNillableSkill(v *string) *ProgressRecordUpdate {
	if v != nil {
		_u.SetSkill(*v)
	}
	return _u
}

// SetTotalAnswered sets the "total_answered" field.
func (_u *ProgressRecordUpdate) SetTotalAnswered(v int) *ProgressRecordUpdate {
	_u.mutation.ResetTotalAnswered()
	_u.mutation.SetTotalAnswered(v)
	return _u
}

// SetNillableTotalAnswered sets the "total_answered" field if the given value is not nil.
func (_u *ProgressRecordUpdate) SetNillableTotalAnswered(v *int) *ProgressRecordUpdate {
	if v != nil {
		_u.SetTotalAnswered(*v)
	}
	return _u
}

// AddTotalAnswered adds value to the "total_answered" field.
func (_u *ProgressRecordUpdate) AddTotalAnswered(v int) *ProgressRecordUpdate {
	_u.mutation.AddTotalAnswered(v)
	return _u
}

// SetCorrectAnswers sets the "correct_answers" field.
func (_u *ProgressRecordUpdate) SetCorrectAnswers(v int) *ProgressRecordUpdate {
	_u.mutation.ResetCorrectAnswers()
	_u.mutation.SetCorrectAnswers(v)
	return _u
}

// SetNillableCorrectAnswers sets the "correct_answers" field if the given value is not nil.
func (_u *ProgressRecordUpdate) SetNillableCorrectAnswers(v *int) *ProgressRecordUpdate {
	if v != nil {
		_u.SetCorrectAnswers(*v)
	}
	return _u
}

// AddCorrectAnswers adds value to the "correct_answers" field.
func (_u *ProgressRecordUpdate) AddCorrectAnswers(v int) *ProgressRecordUpdate {
	_u.mutation.AddCorrectAnswers(v)
	return _u
}

// SetMasteryLevel sets the "mastery_level" field.
func (_u *ProgressRecordUpdate) SetMasteryLevel(v float64) *ProgressRecordUpdate {
	_u.mutation.ResetMasteryLevel()
	_u.mutation.SetMasteryLevel(v)
	return _u
}

// SetNillableMasteryLevel sets the "mastery_level" field if the given value is not nil.
func (_u *ProgressRecordUpdate) SetNillableMasteryLevel(v *float64) *ProgressRecordUpdate {
	if v != nil {
		_u.SetMasteryLevel(*v)
	}
	return _u
}

// AddMasteryLevel adds value to the "mastery_level" field.
func (_u *ProgressRecordUpdate) AddMasteryLevel(v float64) *ProgressRecordUpdate {
	_u.mutation.AddMasteryLevel(v)
	return _u
}

// SetCurrentStreak sets the "current_streak" field.
func (_u *ProgressRecordUpdate) SetCurrentStreak(v int) *ProgressRecordUpdate {
	_u.mutation.ResetCurrentStreak()
	_u.mutation.SetCurrentStreak(v)
	return _u
}

// SetNillableCurrentStreak sets the "current_streak" field if the given value is not nil.
func (_u *ProgressRecordUpdate) SetNillableCurrentStreak(v *int) *ProgressRecordUpdate {
	if v != nil {
		_u.SetCurrentStreak(*v)
	}
	return _u
}

// AddCurrentStreak adds value to the "current_streak" field.
func (_u *ProgressRecordUpdate) AddCurrentStreak(v int) *ProgressRecordUpdate {
	_u.mutation.AddCurrentStreak(v)
	return _u
}

// SetBestStreak sets the "best_streak" field.
func (_u *ProgressRecordUpdate) SetBestStreak(v int) *ProgressRecordUpdate {
	_u.mutation.ResetBestStreak()
	_u.mutation.SetBestStreak(v)
	return _u
}

// SetNillableBestStreak sets the "best_streak" field if the given value is not nil.
func (_u *ProgressRecordUpdate) SetNillableBestStreak(v *int) *ProgressRecordUpdate {
	if v != nil {
		_u.SetBestStreak(*v)
	}
	return _u
}

// AddBestStreak adds value to the "best_streak" field.
func (_u *ProgressRecordUpdate) AddBestStreak(v int) *ProgressRecordUpdate {
	_u.mutation.AddBestStreak(v)
	return _u
}

// SetLastPracticed sets the "last_practiced" field.
func (_u *ProgressRecordUpdate) SetLastPracticed(v time.Time) *ProgressRecordUpdate {
	_u.mutation.SetLastPracticed(v)
	return _u
}

// SetNillableLastPracticed sets the "last_practiced" field if the given value is not nil.
func (_u *ProgressRecordUpdate) SetNillableLastPracticed(v *time.Time) *ProgressRecordUpdate {
	if v != nil {
		_u.SetLastPracticed(*v)
	}
	return _u
}

// Mutation returns the ProgressRecordMutation object of the builder.
func (_u *ProgressRecordUpdate) Mutation() *ProgressRecordMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ProgressRecordUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProgressRecordUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ProgressRecordUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProgressRecordUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ProgressRecordUpdate) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := progressrecord.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "ProgressRecord.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Subject(); ok {
		if err := progressrecord.SubjectValidator(v); err != nil {
			return &ValidationError{Name: "subject", err: fmt.Errorf(`ent: validator failed for field "ProgressRecord.subject": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Topic(); ok {
		if err := progressrecord.TopicValidator(v); err != nil {
			return &ValidationError{Name: "topic", err: fmt.Errorf(`ent: validator failed for field "ProgressRecord.topic": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Skill(); ok {
		if err := progressrecord.SkillValidator(v); err != nil {
			return &ValidationError{Name: "skill", err: fmt.Errorf(`ent: validator failed for field "ProgressRecord.skill": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TotalAnswered(); ok {
		if err := progressrecord.TotalAnsweredValidator(v); err != nil {
			return &ValidationError{Name: "total_answered", err: fmt.Errorf(`ent: validator failed for field "ProgressRecord.total_answered": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CorrectAnswers(); ok {
		if err := progressrecord.CorrectAnswersValidator(v); err != nil {
			return &ValidationError{Name: "correct_answers", err: fmt.Errorf(`ent: validator failed for field "ProgressRecord.correct_answers": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CurrentStreak(); ok {
		if err := progressrecord.CurrentStreakValidator(v); err != nil {
			return &ValidationError{Name: "current_streak", err: fmt.Errorf(`ent: validator failed for field "ProgressRecord.current_streak": %w`, err)}
		}
	}
	if v, ok := _u.mutation.BestStreak(); ok {
		if err := progressrecord.BestStreakValidator(v); err != nil {
			return &ValidationError{Name: "best_streak", err: fmt.Errorf(`ent: validator failed for field "ProgressRecord.best_streak": %w`, err)}
		}
	}
	return nil
}

func (_u *ProgressRecordUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(progressrecord.Table, progressrecord.Columns, sqlgraph.NewFieldSpec(progressrecord.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(progressrecord.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Subject(); ok {
		_spec.SetField(progressrecord.FieldSubject, field.TypeString, value)
	}
	if value, ok := _u.mutation.Topic(); ok {
		_spec.SetField(progressrecord.FieldTopic, field.TypeString, value)
	}
	if value, ok := _u.mutation.Skill(); ok {
		_spec.SetField(progressrecord.FieldSkill, field.TypeString, value)
	}
	if value, ok := _u.mutation.TotalAnswered(); ok {
		_spec.SetField(progressrecord.FieldTotalAnswered, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalAnswered(); ok {
		_spec.AddField(progressrecord.FieldTotalAnswered, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CorrectAnswers(); ok {
		_spec.SetField(progressrecord.FieldCorrectAnswers, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCorrectAnswers(); ok {
		_spec.AddField(progressrecord.FieldCorrectAnswers, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MasteryLevel(); ok {
		_spec.SetField(progressrecord.FieldMasteryLevel, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedMasteryLevel(); ok {
		_spec.AddField(progressrecord.FieldMasteryLevel, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.CurrentStreak(); ok {
		_spec.SetField(progressrecord.FieldCurrentStreak, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCurrentStreak(); ok {
		_spec.AddField(progressrecord.FieldCurrentStreak, field.TypeInt, value)
	}
	if value, ok := _u.mutation.BestStreak(); ok {
		_spec.SetField(progressrecord.FieldBestStreak, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedBestStreak(); ok {
		_spec.AddField(progressrecord.FieldBestStreak, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastPracticed(); ok {
		_spec.SetField(progressrecord.FieldLastPracticed, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{progressrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ProgressRecordUpdateOne is the builder for updating a single ProgressRecord entity.
type ProgressRecordUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ProgressRecordMutation
}

// SetUserID sets the "user_id" field.
func (_u *ProgressRecordUpdateOne) SetUserID(v string) *ProgressRecordUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *ProgressRecordUpdateOne) SetNillableUserID(v *string) *ProgressRecordUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetSubject sets the "subject" field.
func (_u *ProgressRecordUpdateOne) SetSubject(v string) *ProgressRecordUpdateOne {
	_u.mutation.SetSubject(v)
	return _u
}

// SetNillableSubject sets the "subject" field if the given value is not nil.
func (_u *ProgressRecordUpdateOne) SetNillableSubject(v *string) *ProgressRecordUpdateOne {
	if v != nil {
		_u.SetSubject(*v)
	}
	return _u
}

// SetTopic sets the "topic" field.
func (_u *ProgressRecordUpdateOne) SetTopic(v string) *ProgressRecordUpdateOne {
	_u.mutation.SetTopic(v)
	return _u
}

// SetNillableTopic sets the "topic" field if the given value is not nil.
func (_u *ProgressRecordUpdateOne) SetNillableTopic(v *string) *ProgressRecordUpdateOne {
	if v != nil {
		_u.SetTopic(*v)
	}
	return _u
}

// SetSkill sets the "skill" field.
func (_u *ProgressRecordUpdateOne) SetSkill(v string) *ProgressRecordUpdateOne {
	_u.mutation.SetSkill(v)
	return _u
}

// SetNillableSkill sets the "skill" field if the given value is not nil.
func (_u *ProgressRecordUpdateOne) SetNillableSkill(v *string) *ProgressRecordUpdateOne {
	if v != nil {
		_u.SetSkill(*v)
	}
	return _u
}

// SetTotalAnswered sets the "total_answered" field.
func (_u *ProgressRecordUpdateOne) SetTotalAnswered(v int) *ProgressRecordUpdateOne {
	_u.mutation.ResetTotalAnswered()
	_u.mutation.SetTotalAnswered(v)
	return _u
}

// SetNillableTotalAnswered sets the "total_answered" field if the given value is not nil.
func (_u *ProgressRecordUpdateOne) SetNillableTotalAnswered(v *int) *ProgressRecordUpdateOne {
	if v != nil {
		_u.SetTotalAnswered(*v)
	}
	return _u
}

// AddTotalAnswered adds value to the "total_answered" field.
func (_u *ProgressRecordUpdateOne) AddTotalAnswered(v int) *ProgressRecordUpdateOne {
	_u.mutation.AddTotalAnswered(v)
	return _u
}

// SetCorrectAnswers sets the "correct_answers" field.
func (_u *ProgressRecordUpdateOne) SetCorrectAnswers(v int) *ProgressRecordUpdateOne {
	_u.mutation.ResetCorrectAnswers()
	_u.mutation.SetCorrectAnswers(v)
	return _u
}

// SetNillableCorrectAnswers sets the "correct_answers" field if the given value is not nil.
func (_u *ProgressRecordUpdateOne) SetNillableCorrectAnswers(v *int) *ProgressRecordUpdateOne {
	if v != nil {
		_u.SetCorrectAnswers(*v)
	}
	return _u
}

// AddCorrectAnswers adds value to the "correct_answers" field.
func (_u *ProgressRecordUpdateOne) AddCorrectAnswers(v int) *ProgressRecordUpdateOne {
	_u.mutation.AddCorrectAnswers(v)
	return _u
}

// SetMasteryLevel sets the "mastery_level" field.
func (_u *ProgressRecordUpdateOne) SetMasteryLevel(v float64) *ProgressRecordUpdateOne {
	_u.mutation.ResetMasteryLevel()
	_u.mutation.SetMasteryLevel(v)
	return _u
}

// SetNillableMasteryLevel sets the "mastery_level" field if the given value is not nil.
func (_u *ProgressRecordUpdateOne) SetNillableMasteryLevel(v *float64) *ProgressRecordUpdateOne {
	if v != nil {
		_u.SetMasteryLevel(*v)
	}
	return _u
}

// AddMasteryLevel adds value to the "mastery_level" field.
func (_u *ProgressRecordUpdateOne) AddMasteryLevel(v float64) *ProgressRecordUpdateOne {
	_u.mutation.AddMasteryLevel(v)
	return _u
}

// SetCurrentStreak sets the "current_streak" field.
func (_u *ProgressRecordUpdateOne) SetCurrentStreak(v int) *ProgressRecordUpdateOne {
	_u.mutation.ResetCurrentStreak()
	_u.mutation.SetCurrentStreak(v)
	return _u
}

// SetNillableCurrentStreak sets the "current_streak" field if the given value is not nil.
func (_u *ProgressRecordUpdateOne) SetNillableCurrentStreak(v *int) *ProgressRecordUpdateOne {
	if v != nil {
		_u.SetCurrentStreak(*v)
	}
	return _u
}

// AddCurrentStreak adds value to the "current_streak" field.
func (_u *ProgressRecordUpdateOne) AddCurrentStreak(v int) *ProgressRecordUpdateOne {
	_u.mutation.AddCurrentStreak(v)
	return _u
}

// SetBestStreak sets the "best_streak" field.
func (_u *ProgressRecordUpdateOne) SetBestStreak(v int) *ProgressRecordUpdateOne {
	_u.mutation.ResetBestStreak()
	_u.mutation.SetBestStreak(v)
	return _u
}

// SetNillableBestStreak sets the "best_streak" field if the given value is not nil.
func (_u *ProgressRecordUpdateOne) SetNillableBestStreak(v *int) *ProgressRecordUpdateOne {
	if v != nil {
		_u.SetBestStreak(*v)
	}
	return _u
}

// AddBestStreak adds value to the "best_streak" field.
func (_u *ProgressRecordUpdateOne) AddBestStreak(v int) *ProgressRecordUpdateOne {
	_u.mutation.AddBestStreak(v)
	return _u
}

// SetLastPracticed sets the "last_practiced" field.
func (_u *ProgressRecordUpdateOne) SetLastPracticed(v time.Time) *ProgressRecordUpdateOne {
	_u.mutation.SetLastPracticed(v)
	return _u
}

// SetNillableLastPracticed sets the "last_practiced" field if the given value is not nil.
func (_u *ProgressRecordUpdateOne) SetNillableLastPracticed(v *time.Time) *ProgressRecordUpdateOne {
	if v != nil {
		_u.SetLastPracticed(*v)
	}
	return _u
}

// Mutation returns the ProgressRecordMutation object of the builder.
func (_u *ProgressRecordUpdateOne) Mutation() *ProgressRecordMutation {
	return _u.mutation
}

// Where appends a list predicates to the ProgressRecordUpdate builder.
func (_u *ProgressRecordUpdateOne) Where(ps ...predicate.ProgressRecord) *ProgressRecordUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ProgressRecordUpdateOne) Select(field string, fields ...string) *ProgressRecordUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ProgressRecord entity.
func (_u *ProgressRecordUpdateOne) Save(ctx context.Context) (*ProgressRecord, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProgressRecordUpdateOne) SaveX(ctx context.Context) *ProgressRecord {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ProgressRecordUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProgressRecordUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ProgressRecordUpdateOne) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := progressrecord.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "ProgressRecord.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Subject(); ok {
		if err := progressrecord.SubjectValidator(v); err != nil {
			return &ValidationError{Name: "subject", err: fmt.Errorf(`ent: validator failed for field "ProgressRecord.subject": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Topic(); ok {
		if err := progressrecord.TopicValidator(v); err != nil {
			return &ValidationError{Name: "topic", err: fmt.Errorf(`ent: validator failed for field "ProgressRecord.topic": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Skill(); ok {
		if err := progressrecord.SkillValidator(v); err != nil {
			return &ValidationError{Name: "skill", err: fmt.Errorf(`ent: validator failed for field "ProgressRecord.skill": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TotalAnswered(); ok {
		if err := progressrecord.TotalAnsweredValidator(v); err != nil {
			return &ValidationError{Name: "total_answered", err: fmt.Errorf(`ent: validator failed for field "ProgressRecord.total_answered": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CorrectAnswers(); ok {
		if err := progressrecord.CorrectAnswersValidator(v); err != nil {
			return &ValidationError{Name: "correct_answers", err: fmt.Errorf(`ent: validator failed for field "ProgressRecord.correct_answers": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CurrentStreak(); ok {
		if err := progressrecord.CurrentStreakValidator(v); err != nil {
			return &ValidationError{Name: "current_streak", err: fmt.Errorf(`ent: validator failed for field "ProgressRecord.current_streak": %w`, err)}
		}
	}
	if v, ok := _u.mutation.BestStreak(); ok {
		if err := progressrecord.BestStreakValidator(v); err != nil {
			return &ValidationError{Name: "best_streak", err: fmt.Errorf(`ent: validator failed for field "ProgressRecord.best_streak": %w`, err)}
		}
	}
	return nil
}

func (_u *ProgressRecordUpdateOne) sqlSave(ctx context.Context) (_node *ProgressRecord, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(progressrecord.Table, progressrecord.Columns, sqlgraph.NewFieldSpec(progressrecord.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ProgressRecord.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, progressrecord.FieldID)
		for _, f := range fields {
			if !progressrecord.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != progressrecord.FieldID {
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
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(progressrecord.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Subject(); ok {
		_spec.SetField(progressrecord.FieldSubject, field.TypeString, value)
	}
	if value, ok := _u.mutation.Topic(); ok {
		_spec.SetField(progressrecord.FieldTopic, field.TypeString, value)
	}
	if value, ok := _u.mutation.Skill(); ok {
		_spec.SetField(progressrecord.FieldSkill, field.TypeString, value)
	}
	if value, ok := _u.mutation.TotalAnswered(); ok {
		_spec.SetField(progressrecord.FieldTotalAnswered, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalAnswered(); ok {
		_spec.AddField(progressrecord.FieldTotalAnswered, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CorrectAnswers(); ok {
		_spec.SetField(progressrecord.FieldCorrectAnswers, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCorrectAnswers(); ok {
		_spec.AddField(progressrecord.FieldCorrectAnswers, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MasteryLevel(); ok {
		_spec.SetField(progressrecord.FieldMasteryLevel, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedMasteryLevel(); ok {
		_spec.AddField(progressrecord.FieldMasteryLevel, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.CurrentStreak(); ok {
		_spec.SetField(progressrecord.FieldCurrentStreak, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCurrentStreak(); ok {
		_spec.AddField(progressrecord.FieldCurrentStreak, field.TypeInt, value)
	}
	if value, ok := _u.mutation.BestStreak(); ok {
		_spec.SetField(progressrecord.FieldBestStreak, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedBestStreak(); ok {
		_spec.AddField(progressrecord.FieldBestStreak, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastPracticed(); ok {
		_spec.SetField(progressrecord.FieldLastPracticed, field.TypeTime, value)
	}
	_node = &ProgressRecord{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{progressrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}

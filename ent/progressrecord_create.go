// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/solvio/solvio/ent/progressrecord"
)

// ProgressRecordCreate is the builder for creating a ProgressRecord entity.
type ProgressRecordCreate struct {
	config
	mutation *ProgressRecordMutation
	hooks    []Hook
}

// SetUserID sets the "user_id" field.
func (_c *ProgressRecordCreate) SetUserID(v string) *ProgressRecordCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetSubject sets the "subject" field.
func (_c *ProgressRecordCreate) SetSubject(v string) *ProgressRecordCreate {
	_c.mutation.SetSubject(v)
	return _c
}

// SetTopic sets the "topic" field.
func (_c *ProgressRecordCreate) SetTopic(v string) *ProgressRecordCreate {
	_c.mutation.SetTopic(v)
	return _c
}

// SetSkill sets the "skill" field.
func (_c *ProgressRecordCreate) SetSkill(v string) *ProgressRecordCreate {
	_c.mutation.SetSkill(v)
	return _c
}

// SetTotalAnswered sets the "total_answered" field.
func (_c *ProgressRecordCreate) SetTotalAnswered(v int) *ProgressRecordCreate {
	_c.mutation.SetTotalAnswered(v)
	return _c
}

// SetNillableTotalAnswered sets the "total_answered" field if the given value is not nil.
func (_c *ProgressRecordCreate) SetNillableTotalAnswered(v *int) *ProgressRecordCreate {
	if v != nil {
		_c.SetTotalAnswered(*v)
	}
	return _c
}

// SetCorrectAnswers sets the "correct_answers" field.
func (_c *ProgressRecordCreate) SetCorrectAnswers(v int) *ProgressRecordCreate {
	_c.mutation.SetCorrectAnswers(v)
	return _c
}

// SetNillableCorrectAnswers sets the "correct_answers" field if the given value is not nil.
func (_c *ProgressRecordCreate) SetNillableCorrectAnswers(v *int) *ProgressRecordCreate {
	if v != nil {
		_c.SetCorrectAnswers(*v)
	}
	return _c
}

// SetMasteryLevel sets the "mastery_level" field.
func (_c *ProgressRecordCreate) SetMasteryLevel(v float64) *ProgressRecordCreate {
	_c.mutation.SetMasteryLevel(v)
	return _c
}

// SetNillableMasteryLevel sets the "mastery_level" field if the given value is not nil.
func (_c *ProgressRecordCreate) SetNillableMasteryLevel(v *float64) *ProgressRecordCreate {
	if v != nil {
		_c.SetMasteryLevel(*v)
	}
	return _c
}

// SetCurrentStreak sets the "current_streak" field.
func (_c *ProgressRecordCreate) SetCurrentStreak(v int) *ProgressRecordCreate {
	_c.mutation.SetCurrentStreak(v)
	return _c
}

// SetNillableCurrentStreak sets the "current_streak" field if the given value is not nil.
func (_c *ProgressRecordCreate) SetNillableCurrentStreak(v *int) *ProgressRecordCreate {
	if v != nil {
		_c.SetCurrentStreak(*v)
	}
	return _c
}

// SetBestStreak sets the "best_streak" field.
func (_c *ProgressRecordCreate) SetBestStreak(v int) *ProgressRecordCreate {
	_c.mutation.SetBestStreak(v)
	return _c
}

// SetNillableBestStreak sets the "best_streak" field if the given value is not nil.
func (_c *ProgressRecordCreate) SetNillableBestStreak(v *int) *ProgressRecordCreate {
	if v != nil {
		_c.SetBestStreak(*v)
	}
	return _c
}

// SetLastPracticed sets the "last_practiced" field.
func (_c *ProgressRecordCreate) SetLastPracticed(v time.Time) *ProgressRecordCreate {
	_c.mutation.SetLastPracticed(v)
	return _c
}

// SetNillableLastPracticed sets the "last_practiced" field if the given value is not nil.
func (_c *ProgressRecordCreate) SetNillableLastPracticed(v *time.Time) *ProgressRecordCreate {
	if v != nil {
		_c.SetLastPracticed(*v)
	}
	return _c
}

// Mutation returns the ProgressRecordMutation object of the builder.
func (_c *ProgressRecordCreate) Mutation() *ProgressRecordMutation {
	return _c.mutation
}

// Save creates the ProgressRecord in the database.
func (_c *ProgressRecordCreate) Save(ctx context.Context) (*ProgressRecord, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ProgressRecordCreate) SaveX(ctx context.Context) *ProgressRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ProgressRecordCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ProgressRecordCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ProgressRecordCreate) defaults() {
	if _, ok := _c.mutation.TotalAnswered(); !ok {
		v := progressrecord.DefaultTotalAnswered
		_c.mutation.SetTotalAnswered(v)
	}
	if _, ok := _c.mutation.CorrectAnswers(); !ok {
		v := progressrecord.DefaultCorrectAnswers
		_c.mutation.SetCorrectAnswers(v)
	}
	if _, ok := _c.mutation.MasteryLevel(); !ok {
		v := progressrecord.DefaultMasteryLevel
		_c.mutation.SetMasteryLevel(v)
	}
	if _, ok := _c.mutation.CurrentStreak(); !ok {
		v := progressrecord.DefaultCurrentStreak
		_c.mutation.SetCurrentStreak(v)
	}
	if _, ok := _c.mutation.BestStreak(); !ok {
		v := progressrecord.DefaultBestStreak
		_c.mutation.SetBestStreak(v)
	}
	if _, ok := _c.mutation.LastPracticed(); !ok {
		v := progressrecord.DefaultLastPracticed()
		_c.mutation.SetLastPracticed(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ProgressRecordCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "ProgressRecord.user_id"`)}
	}
	if v, ok := _c.mutation.UserID(); ok {
		if err := progressrecord.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "ProgressRecord.user_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Subject(); !ok {
		return &ValidationError{Name: "subject", err: errors.New(`ent: missing required field "ProgressRecord.subject"`)}
	}
	if v, ok := _c.mutation.Subject(); ok {
		if err := progressrecord.SubjectValidator(v); err != nil {
			return &ValidationError{Name: "subject", err: fmt.Errorf(`ent: validator failed for field "ProgressRecord.subject": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Topic(); !ok {
		return &ValidationError{Name: "topic", err: errors.New(`ent: missing required field "ProgressRecord.topic"`)}
	}
	if v, ok := _c.mutation.Topic(); ok {
		if err := progressrecord.TopicValidator(v); err != nil {
			return &ValidationError{Name: "topic", err: fmt.Errorf(`ent: validator failed for field "ProgressRecord.topic": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Skill(); !ok {
		return &ValidationError{Name: "skill", err: errors.New(`ent: missing required field "ProgressRecord.skill"`)}
	}
	if v, ok := _c.mutation.Skill(); ok {
		if err := progressrecord.SkillValidator(v); err != nil {
			return &ValidationError{Name: "skill", err: fmt.Errorf(`ent: validator failed for field "ProgressRecord.skill": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TotalAnswered(); !ok {
		return &ValidationError{Name: "total_answered", err: errors.New(`ent: missing required field "ProgressRecord.total_answered"`)}
	}
	if v, ok := _c.mutation.TotalAnswered(); ok {
		if err := progressrecord.TotalAnsweredValidator(v); err != nil {
			return &ValidationError{Name: "total_answered", err: fmt.Errorf(`ent: validator failed for field "ProgressRecord.total_answered": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CorrectAnswers(); !ok {
		return &ValidationError{Name: "correct_answers", err: errors.New(`ent: missing required field "ProgressRecord.correct_answers"`)}
	}
	if v, ok := _c.mutation.CorrectAnswers(); ok {
		if err := progressrecord.CorrectAnswersValidator(v); err != nil {
			return &ValidationError{Name: "correct_answers", err: fmt.Errorf(`ent: validator failed for field "ProgressRecord.correct_answers": %w`, err)}
		}
	}
	if _, ok := _c.mutation.MasteryLevel(); !ok {
		return &ValidationError{Name: "mastery_level", err: errors.New(`ent: missing required field "ProgressRecord.mastery_level"`)}
	}
	if _, ok := _c.mutation.CurrentStreak(); !ok {
		return &ValidationError{Name: "current_streak", err: errors.New(`ent: missing required field "ProgressRecord.current_streak"`)}
	}
	if v, ok := _c.mutation.CurrentStreak(); ok {
		if err := progressrecord.CurrentStreakValidator(v); err != nil {
			return &ValidationError{Name: "current_streak", err: fmt.Errorf(`ent: validator failed for field "ProgressRecord.current_streak": %w`, err)}
		}
	}
	if _, ok := _c.mutation.BestStreak(); !ok {
		return &ValidationError{Name: "best_streak", err: errors.New(`ent: missing required field "ProgressRecord.best_streak"`)}
	}
	if v, ok := _c.mutation.BestStreak(); ok {
		if err := progressrecord.BestStreakValidator(v); err != nil {
			return &ValidationError{Name: "best_streak", err: fmt.Errorf(`ent: validator failed for field "ProgressRecord.best_streak": %w`, err)}
		}
	}
	if _, ok := _c.mutation.LastPracticed(); !ok {
		return &ValidationError{Name: "last_practiced", err: errors.New(`ent: missing required field "ProgressRecord.last_practiced"`)}
	}
	return nil
}

func (_c *ProgressRecordCreate) sqlSave(ctx context.Context) (*ProgressRecord, error) {
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

func (_c *ProgressRecordCreate) createSpec() (*ProgressRecord, *sqlgraph.CreateSpec) {
	var (
		_node = &ProgressRecord{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(progressrecord.Table, sqlgraph.NewFieldSpec(progressrecord.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(progressrecord.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.Subject(); ok {
		_spec.SetField(progressrecord.FieldSubject, field.TypeString, value)
		_node.Subject = value
	}
	if value, ok := _c.mutation.Topic(); ok {
		_spec.SetField(progressrecord.FieldTopic, field.TypeString, value)
		_node.Topic = value
	}
	if value, ok := _c.mutation.Skill(); ok {
		_spec.SetField(progressrecord.FieldSkill, field.TypeString, value)
		_node.Skill = value
	}
	if value, ok := _c.mutation.TotalAnswered(); ok {
		_spec.SetField(progressrecord.FieldTotalAnswered, field.TypeInt, value)
		_node.TotalAnswered = value
	}
	if value, ok := _c.mutation.CorrectAnswers(); ok {
		_spec.SetField(progressrecord.FieldCorrectAnswers, field.TypeInt, value)
		_node.CorrectAnswers = value
	}
	if value, ok := _c.mutation.MasteryLevel(); ok {
		_spec.SetField(progressrecord.FieldMasteryLevel, field.TypeFloat64, value)
		_node.MasteryLevel = value
	}
	if value, ok := _c.mutation.CurrentStreak(); ok {
		_spec.SetField(progressrecord.FieldCurrentStreak, field.TypeInt, value)
		_node.CurrentStreak = value
	}
	if value, ok := _c.mutation.BestStreak(); ok {
		_spec.SetField(progressrecord.FieldBestStreak, field.TypeInt, value)
		_node.BestStreak = value
	}
	if value, ok := _c.mutation.LastPracticed(); ok {
		_spec.SetField(progressrecord.FieldLastPracticed, field.TypeTime, value)
		_node.LastPracticed = value
	}
	return _node, _spec
}

// ProgressRecordCreateBulk is the builder for creating many ProgressRecord entities in bulk.
type ProgressRecordCreateBulk struct {
	config
	err      error
	builders []*ProgressRecordCreate
}

// Save creates the ProgressRecord entities in the database.
func (_c *ProgressRecordCreateBulk) Save(ctx context.Context) ([]*ProgressRecord, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ProgressRecord, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ProgressRecordMutation)
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
func (_c *ProgressRecordCreateBulk) SaveX(ctx context.Context) []*ProgressRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ProgressRecordCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ProgressRecordCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

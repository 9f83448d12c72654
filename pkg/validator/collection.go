package validator

import "time"

// Collection is the ordered set of rules for one entity type.
// Insertion order is evaluation order, across rules and within each rule.
type Collection[T any] struct {
	rules []*Rule[T]
	clock func() time.Time
}

// NewCollection creates an empty rule collection.
func NewCollection[T any](opts ...Option) *Collection[T] {
	o := applyOptions(opts)
	return &Collection[T]{clock: o.clock}
}

// RuleFor creates a rule for the field returned by selector and appends it to the collection.
func (c *Collection[T]) RuleFor(selector func(T) any) *Rule[T] {
	rule := NewRule(selector)
	c.Add(rule)
	return rule
}

// Add appends prebuilt rules. Nil rules are skipped.
func (c *Collection[T]) Add(rules ...*Rule[T]) {
	for _, rule := range rules {
		if rule == nil {
			continue
		}
		if rule.clock == nil {
			rule.clock = c.clock
		}
		c.rules = append(c.rules, rule)
	}
}

// Rules returns the configured rules in evaluation order.
func (c *Collection[T]) Rules() []*Rule[T] {
	return append([]*Rule[T](nil), c.rules...)
}

func (c *Collection[T]) Len() int {
	return len(c.rules)
}

// Execute runs every validator of every rule against entity in insertion order.
// The first failing validator stops the whole run and its outcome is returned;
// later validators, in the same rule or in later rules, are never invoked.
// When nothing fails a single generic success outcome is returned.
func (c *Collection[T]) Execute(entity T) Outcome {
	for _, rule := range c.rules {
		value := rule.FieldValue(entity)
		for _, s := range rule.steps {
			if out := s.validate(value); !out.Passed {
				return out
			}
		}
	}
	return succeeded
}

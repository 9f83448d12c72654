package validator_test

import (
	"github.com/dmitrymomot/entityvalidator/pkg/validator"
)

// field wraps a single untyped value so catalog entries can be exercised in isolation.
type field struct {
	value any
}

func selectValue(f field) any { return f.value }

func check(value any, build func(r *validator.Rule[field])) validator.Outcome {
	return checkWith(nil, value, build)
}

func checkWith(opts []validator.Option, value any, build func(r *validator.Rule[field])) validator.Outcome {
	rules := validator.NewCollection[field](opts...)
	build(rules.RuleFor(selectValue))
	return rules.Execute(field{value: value})
}

func ptr[T any](v T) *T { return &v }

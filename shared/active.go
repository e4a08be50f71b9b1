package shared

import (
	"hotel/shared/constant"
	"hotel/shared/dto"
)

// ActivePolicy decides how the "active" query flag of a list endpoint maps to
// an is_active filter. Endpoints keep distinct policies on purpose.
type ActivePolicy int

const (
	// ActiveWhenTrue filters to active rows only when the flag is the literal "true".
	ActiveWhenTrue ActivePolicy = iota
	// ActiveUnlessFalse filters to active rows unless the flag is the literal "false".
	ActiveUnlessFalse
	// ActiveAlways filters to active rows whatever the flag says.
	ActiveAlways
)

// OnlyActive reports whether the listing must be restricted to active rows.
func (p ActivePolicy) OnlyActive(flag string) bool {
	switch p {
	case ActiveWhenTrue:
		return flag == constant.ValueTrue
	case ActiveUnlessFalse:
		return flag != constant.ValueFalse
	default:
		return true
	}
}

// Apply adds the is_active filter to group when the policy demands it.
func (p ActivePolicy) Apply(group *dto.FilterGroup, flag, table string) {
	if !p.OnlyActive(flag) {
		return
	}

	group.Add(dto.Filter{
		Field:    constant.FieldIsActive,
		Value:    true,
		Operator: dto.FilterOperatorEq,
		Table:    table,
	})
}

package calculator

import (
	"regexp"
	"strings"

	"rigvalue/internal/domain"

	"github.com/shopspring/decimal"
)

// well-known computed fields a condition may reference in addition to the
// listing's attribute map
const (
	fieldRawPrice       = "raw_price"
	fieldMarkSingle     = "cpu.mark_single"
	fieldMarkMulti      = "cpu.mark_multi"
	fieldMark3DGraphics = "gpu.mark_3d"
	fieldMarkMemory     = "ram.mark_memory"
	fieldMarkDisk       = "storage.mark_disk"
)

var markFields = map[string]domain.BenchmarkDimension{
	fieldMarkSingle:     domain.DimensionSingleThread,
	fieldMarkMulti:      domain.DimensionMultiThread,
	fieldMark3DGraphics: domain.Dimension3DGraphics,
	fieldMarkMemory:     domain.DimensionMemory,
	fieldMarkDisk:       domain.DimensionDisk,
}

// MatchesCondition reports whether the rule condition holds for the listing
// snapshot. It is total: an unknown field, a type mismatch, or a malformed
// pattern is a no-match, never an error. Misconfigured rules fail open.
func MatchesCondition(cond domain.RuleCondition, snapshot domain.ListingSnapshot) bool {
	value, ok := resolveField(cond.Field, snapshot)
	if !ok {
		return false
	}

	switch cond.Operator {
	case domain.OperatorEq:
		return attributeEqual(value, cond.Value)
	case domain.OperatorNeq:
		// neq still requires the field to exist; absence was already a
		// no-match above
		return !attributeEqual(value, cond.Value)
	case domain.OperatorLt, domain.OperatorLte, domain.OperatorGt, domain.OperatorGte:
		return orderedCompare(cond.Operator, value, cond.Value)
	case domain.OperatorIn:
		for _, candidate := range cond.Values {
			if attributeEqual(value, candidate) {
				return true
			}
		}
		return false
	case domain.OperatorMatches:
		return patternMatch(value, cond.Pattern, cond.MatchMode)
	}

	return false
}

func resolveField(field string, snapshot domain.ListingSnapshot) (domain.AttributeValue, bool) {
	if v, ok := snapshot.Attributes.Get(field); ok {
		return v, true
	}
	if field == fieldRawPrice {
		return domain.NumberAttribute(snapshot.RawPrice.InexactFloat64()), true
	}
	if dim, ok := markFields[field]; ok {
		if mark, ok := snapshot.Mark(dim); ok {
			return domain.NumberAttribute(mark), true
		}
	}
	return domain.AttributeValue{}, false
}

func attributeEqual(a, b domain.AttributeValue) bool {
	if a.Kind != b.Kind {
		return false
	}
	switch a.Kind {
	case domain.AttributeString:
		return a.String == b.String
	case domain.AttributeNumber:
		// compare through decimal to avoid float artifacts from jsonb
		// round-trips
		return decimal.NewFromFloat(a.Number).Equal(decimal.NewFromFloat(b.Number))
	case domain.AttributeBool:
		return a.Bool == b.Bool
	case domain.AttributeDate:
		return a.Date.Equal(b.Date)
	}
	return false
}

func orderedCompare(op domain.ConditionOperator, a, b domain.AttributeValue) bool {
	if a.Kind != b.Kind {
		return false
	}

	var cmp int
	switch a.Kind {
	case domain.AttributeNumber:
		cmp = decimal.NewFromFloat(a.Number).Cmp(decimal.NewFromFloat(b.Number))
	case domain.AttributeDate:
		switch {
		case a.Date.Before(b.Date):
			cmp = -1
		case a.Date.After(b.Date):
			cmp = 1
		}
	default:
		// ordered comparison is only defined for numbers and dates
		return false
	}

	switch op {
	case domain.OperatorLt:
		return cmp < 0
	case domain.OperatorLte:
		return cmp <= 0
	case domain.OperatorGt:
		return cmp > 0
	case domain.OperatorGte:
		return cmp >= 0
	}
	return false
}

func patternMatch(value domain.AttributeValue, pattern string, mode domain.MatchMode) bool {
	if value.Kind != domain.AttributeString {
		return false
	}
	if mode == domain.MatchRegex {
		re, err := regexp.Compile("(?i)" + pattern)
		if err != nil {
			return false
		}
		return re.MatchString(value.String)
	}
	return strings.Contains(strings.ToLower(value.String), strings.ToLower(pattern))
}

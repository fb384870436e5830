package service

import (
	"regexp"
	"strconv"
	"strings"

	"scheme-navigator/internal/models"
)

// fundingFields are the benefit keys consulted for a funding figure, most
// specific first.
var fundingFields = []string{
	"loan_amount",
	"financial_support",
	"subsidy",
	"disbursement",
	"scholarship_amount",
	"fellowship",
	"incentive_amount",
	"maintenance_allowance",
	"general_degree",
	"professional_engineering",
	"medical_bds",
	"contingency",
}

// rupeeAmount captures a rupee figure and an optional "to ₹..." upper bound.
var rupeeAmount = regexp.MustCompile(`₹([\d,]+)(?:\s*to\s*₹([\d,]+))?`)

// ExtractFundingAmount returns the representative funding figure of a
// benefits tree: the first non-zero amount found under the priority fields.
// Ranges yield their lower bound. A tree without any figure yields 0.
func ExtractFundingAmount(benefits *models.Value) int64 {
	if !benefits.Truthy() {
		return 0
	}

	for _, field := range fundingFields {
		v := benefits.Get(field)
		if !v.Truthy() {
			continue
		}
		if amount := extractAmount(v); amount != 0 {
			return amount
		}
	}
	return 0
}

// extractAmount walks v in document order and returns the first non-zero
// rupee figure.
func extractAmount(v *models.Value) int64 {
	if v == nil {
		return 0
	}

	switch v.Kind {
	case models.KindString:
		return parseRupeeAmount(v.Str)
	case models.KindObject:
		for _, f := range v.Fields {
			if amount := extractAmount(f.Value); amount != 0 {
				return amount
			}
		}
	case models.KindArray:
		for _, item := range v.Items {
			if amount := extractAmount(item); amount != 0 {
				return amount
			}
		}
	}
	return 0
}

// parseRupeeAmount returns the first non-zero figure in text. Figures that
// do not fit an int64 are skipped.
func parseRupeeAmount(text string) int64 {
	for _, m := range rupeeAmount.FindAllStringSubmatch(text, -1) {
		amount, err := strconv.ParseInt(strings.ReplaceAll(m[1], ",", ""), 10, 64)
		if err != nil || amount == 0 {
			continue
		}
		return amount
	}
	return 0
}

package models

import (
	"errors"
)

var (
	ErrGeneral          = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound = errors.New("there is no")
)

// Bill errors
var (
	ErrBillNameRequired    = errors.New("bills must have a name")
	ErrBillAmountNegative  = errors.New("bill amounts must not be negative")
	ErrBillDueDateRequired = errors.New("bills must have a due date")
	ErrOccurrenceExists    = errors.New("an occurrence of this recurring bill already exists for this month")
)

// Recurring rule errors
var (
	ErrRuleNameRequired       = errors.New("recurring bills must have a name")
	ErrRuleAmountNotPositive  = errors.New("recurring bill amounts must be larger than zero")
	ErrRuleDayOutOfRange      = errors.New("the due day of a recurring bill must be between 1 and 31")
	ErrRuleRepeatTypeInvalid  = errors.New("the repeat type must be either 'forever' or 'limited'")
	ErrRuleRepeatCountInvalid = errors.New("limited recurring bills must repeat at least once")
	ErrRuleCountersMismatch   = errors.New("remaining occurrences can never exceed the repeat count")
)

// Budget errors
var (
	ErrBudgetAmountNegative = errors.New("budgets must not be negative")
	ErrBudgetMonthNotUnique = errors.New("there can only be one budget per month")
)

// User errors
var (
	ErrEmailNotUnique      = errors.New("this email address is already registered")
	ErrCredentialsInvalid  = errors.New("the email address or password is incorrect")
	ErrSessionTokenInvalid = errors.New("the session token is invalid or has expired")
)

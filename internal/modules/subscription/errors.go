package subscription

import "errors"

var (
	ErrPlanNotFound     = errors.New("plan not found")
	ErrSamePlan         = errors.New("already on this plan")
	ErrPaymentNotFound  = errors.New("payment not found")
	ErrBadSignature     = errors.New("payment signature mismatch")
	ErrAlreadyProcessed = errors.New("payment already processed")
)

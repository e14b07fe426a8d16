// Package promotion provides the promotion-request aggregate for the courier
// hierarchy. A promotion request captures a courier's application for a
// higher level and wider managed scope together with free-form evidence; it
// is reviewed by an ancestor courier and either approved (which updates the
// courier) or rejected and archived with a reason.
//
// The request itself never mutates the courier; applying an approved
// promotion is the review use case's responsibility so that the courier
// update, the request state change, and the audit entry commit atomically.
package promotion

// Package schedule contains the DeliverySchedule aggregate and its value
// objects (Priority, Status). The package owns coordinator authorization:
// only the identity that created a schedule may change its priority or have
// an optimization applied, and the route plan fields change only through the
// aggregate's own ApplyOptimization method.
package schedule

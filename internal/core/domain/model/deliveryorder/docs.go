// Package deliveryorder contains the DeliveryOrder aggregate and its workflow
// state machine.
//
// A delivery order moves through a fixed department pipeline:
//
//	paper_creator ──> project_office ──> area_office ──> road_sale
//
// The Stage enum models the order's position in that pipeline. Each stage has
// a derived department location, so an inconsistent (stage, location) pair is
// unrepresentable; the one exception is the Rejected stage, whose location is
// frozen at the department that rejected the order.
//
// All mutations go through transition methods on the aggregate
// (SubmitToProjectOffice, Receive, Dispatch, Approve, Reject). Each transition
// validates the acting department against the order's current location and the
// stage preconditions before applying the change. Completed and Rejected are
// terminal: every further transition fails.
package deliveryorder

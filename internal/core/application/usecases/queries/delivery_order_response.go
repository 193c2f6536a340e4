// Package queries contains read-only operations over the storage model.
// Implements the Query side of the CQRS architecture: handlers read
// denormalized rows directly via SQL and never touch the aggregates.
package queries

import (
	"database/sql"
	"time"

	"dotrack/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// DeliveryOrderResponse is the read model row shared by the listing queries.
// It carries the order together with its party and creator, matching the
// board views the departments work from.
type DeliveryOrderResponse struct {
	ID               kernel.UUID
	Number           string
	PartyID          kernel.UUID
	PartyNumber      string
	PartyName        string
	AuthorizedPerson string
	ValidFrom        time.Time
	ValidUntil       time.Time
	Stage            string
	Location         string
	Notes            string
	CreatedBy        kernel.UUID
	CreatedByName    string
	CreatedAt        time.Time
}

// deliveryOrderColumns is the select list every listing query shares. The
// order must match scanDeliveryOrderRow.
const deliveryOrderColumns = `
	o.id,
	o.do_number,
	o.party_id,
	p.party_number,
	p.party_name,
	o.authorized_person,
	o.valid_from,
	o.valid_until,
	o.current_stage,
	o.current_location,
	o.notes,
	o.created_by,
	u.username,
	o.created_at`

// deliveryOrderJoins joins the party and creator every listing query needs.
const deliveryOrderJoins = `
	FROM delivery_orders o
	JOIN parties p ON p.id = o.party_id
	JOIN users u ON u.id = o.created_by`

func scanDeliveryOrderRow(rows *sql.Rows) (DeliveryOrderResponse, error) {
	var resp DeliveryOrderResponse
	var id, partyID, createdBy uuid.UUID
	var notes sql.NullString

	if err := rows.Scan(
		&id,
		&resp.Number,
		&partyID,
		&resp.PartyNumber,
		&resp.PartyName,
		&resp.AuthorizedPerson,
		&resp.ValidFrom,
		&resp.ValidUntil,
		&resp.Stage,
		&resp.Location,
		&notes,
		&createdBy,
		&resp.CreatedByName,
		&resp.CreatedAt,
	); err != nil {
		return DeliveryOrderResponse{}, err
	}

	var err error
	if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return DeliveryOrderResponse{}, err
	}
	if resp.PartyID, err = kernel.UUIDFromBytes(partyID[:]); err != nil {
		return DeliveryOrderResponse{}, err
	}
	if resp.CreatedBy, err = kernel.UUIDFromBytes(createdBy[:]); err != nil {
		return DeliveryOrderResponse{}, err
	}
	resp.Notes = notes.String

	return resp, nil
}

func collectDeliveryOrderRows(rows *sql.Rows) ([]DeliveryOrderResponse, error) {
	defer rows.Close()

	orders := make([]DeliveryOrderResponse, 0)
	for rows.Next() {
		resp, err := scanDeliveryOrderRow(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, resp)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}

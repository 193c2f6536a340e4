// Package http is the inbound HTTP adapter. It translates the REST API into
// commands and queries, carrying the caller identity from the gateway headers
// into the application layer. All authorization beyond coarse role checks
// lives in the domain.
package http

import (
	"net/http"

	"dotrack/internal/core/application/usecases/commands"
	"dotrack/internal/core/application/usecases/queries"
	"dotrack/internal/core/domain/model/kernel"
	"dotrack/internal/generated/servers"
	"dotrack/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
	"golang.org/x/crypto/bcrypt"
)

// CommandHandlers bundles the write-side handlers the server dispatches to.
type CommandHandlers struct {
	CreateDeliveryOrder   commands.CreateDeliveryOrderCommandHandler
	ReceiveDeliveryOrder  commands.ReceiveDeliveryOrderCommandHandler
	DispatchDeliveryOrder commands.DispatchDeliveryOrderCommandHandler
	ApproveDeliveryOrder  commands.ApproveDeliveryOrderCommandHandler
	RejectDeliveryOrder   commands.RejectDeliveryOrderCommandHandler
	CreateParty           commands.CreatePartyCommandHandler
	RegisterUser          commands.RegisterUserCommandHandler
	SetUserStatus         commands.SetUserStatusCommandHandler
}

// QueryHandlers bundles the read-side handlers the server dispatches to.
type QueryHandlers struct {
	DepartmentQueue    queries.GetDepartmentQueueQueryHandler
	ProcessedOrders    queries.GetProcessedOrdersQueryHandler
	ProjectOfficeBoard queries.GetProjectOfficeBoardQueryHandler
	Search             queries.SearchDeliveryOrdersQueryHandler
	Details            queries.GetDeliveryOrderDetailsQueryHandler
	DashboardStats     queries.GetDashboardStatsQueryHandler
	AllDeliveryOrders  queries.GetAllDeliveryOrdersQueryHandler
	Parties            queries.GetPartiesQueryHandler
	Users              queries.GetUsersQueryHandler
}

// Server implements the generated ServerInterface.
type Server struct {
	commands CommandHandlers
	queries  QueryHandlers
}

// NewServer creates the HTTP server over the given handlers.
func NewServer(commandHandlers CommandHandlers, queryHandlers QueryHandlers) *Server {
	return &Server{
		commands: commandHandlers,
		queries:  queryHandlers,
	}
}

// GetDashboardStats handles GET /api/v1/dashboard/stats.
func (s *Server) GetDashboardStats(ctx echo.Context) error {
	caller, err := IdentityFromContext(ctx)
	if err != nil {
		return errorResponse(ctx, err)
	}

	query, err := queries.NewGetDashboardStatsQuery(caller.Department, caller.UserID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	stats, err := s.queries.DashboardStats.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, servers.DashboardStats{
		Total:      stats.Total,
		InProgress: stats.InProgress,
		Completed:  stats.Completed,
		Pending:    stats.Pending,
	})
}

// GetDeliveryOrders handles GET /api/v1/delivery-orders. The global listing
// is reserved for the administrative department.
func (s *Server) GetDeliveryOrders(ctx echo.Context) error {
	caller, err := IdentityFromContext(ctx)
	if err != nil {
		return errorResponse(ctx, err)
	}
	if caller.Department != kernel.RoleCreator {
		return errorResponse(ctx, errs.NewForbiddenDepartmentError(caller.Department.String()))
	}

	orders, err := s.queries.AllDeliveryOrders.Handle(ctx.Request().Context(), queries.NewGetAllDeliveryOrdersQuery())
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toAPIOrders(orders))
}

// CreateDeliveryOrder handles POST /api/v1/delivery-orders. The created order
// is returned as the read model row, including the allocated number.
func (s *Server) CreateDeliveryOrder(ctx echo.Context) error {
	caller, err := IdentityFromContext(ctx)
	if err != nil {
		return errorResponse(ctx, err)
	}

	var body servers.NewDeliveryOrder
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	var number string
	if body.DoNumber != nil {
		number = *body.DoNumber
	}
	var notes string
	if body.Notes != nil {
		notes = *body.Notes
	}

	partyID, err := kernel.UUIDFromBytes(body.PartyId[:])
	if err != nil {
		return badRequest(ctx, "Invalid party reference: "+err.Error())
	}

	command, err := commands.NewCreateDeliveryOrderCommand(
		kernel.NewUUID(),
		number,
		partyID,
		body.AuthorizedPerson,
		body.ValidFrom.Time,
		body.ValidUntil.Time,
		notes,
		caller.UserID,
		caller.Department,
	)
	if err != nil {
		return badRequest(ctx, "Invalid delivery order data: "+err.Error())
	}

	created, err := s.commands.CreateDeliveryOrder.Handle(ctx.Request().Context(), command)
	if err != nil {
		return errorResponse(ctx, err)
	}

	query, err := queries.NewGetDeliveryOrderDetailsQuery(created.Number().String())
	if err != nil {
		return errorResponse(ctx, err)
	}
	details, err := s.queries.Details.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, toAPIOrder(details.Order))
}

// SearchDeliveryOrders handles GET /api/v1/delivery-orders/search. The
// tracking search is public.
func (s *Server) SearchDeliveryOrders(ctx echo.Context, params servers.SearchDeliveryOrdersParams) error {
	query, err := queries.NewSearchDeliveryOrdersQuery(params.Q)
	if err != nil {
		return errorResponse(ctx, err)
	}

	orders, err := s.queries.Search.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toAPIOrders(orders))
}

// GetDeliveryOrderByNumber handles GET /api/v1/delivery-orders/{doNumber}.
// The detail view with its ledger is public for tracking.
func (s *Server) GetDeliveryOrderByNumber(ctx echo.Context, doNumber string) error {
	query, err := queries.NewGetDeliveryOrderDetailsQuery(doNumber)
	if err != nil {
		return errorResponse(ctx, err)
	}

	details, err := s.queries.Details.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	response := servers.DeliveryOrderDetails{
		Order:   toAPIOrder(details.Order),
		History: make([]servers.HistoryEntry, 0, len(details.History)),
	}
	for _, entry := range details.History {
		response.History = append(response.History, toAPIHistoryEntry(entry))
	}

	return ctx.JSON(http.StatusOK, response)
}

// ReceiveDeliveryOrder handles POST /api/v1/delivery-orders/{id}/receive.
func (s *Server) ReceiveDeliveryOrder(ctx echo.Context, id openapi_types.UUID) error {
	caller, orderID, remarks, err := s.transitionInputs(ctx, id)
	if err != nil {
		return err
	}

	command, err := commands.NewReceiveDeliveryOrderCommand(orderID, caller.UserID, caller.Department, remarks)
	if err != nil {
		return badRequest(ctx, "Invalid transition data: "+err.Error())
	}

	if err = s.commands.ReceiveDeliveryOrder.Handle(ctx.Request().Context(), command); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DispatchDeliveryOrder handles POST /api/v1/delivery-orders/{id}/dispatch.
func (s *Server) DispatchDeliveryOrder(ctx echo.Context, id openapi_types.UUID) error {
	caller, orderID, remarks, err := s.transitionInputs(ctx, id)
	if err != nil {
		return err
	}

	command, err := commands.NewDispatchDeliveryOrderCommand(orderID, caller.UserID, caller.Department, remarks)
	if err != nil {
		return badRequest(ctx, "Invalid transition data: "+err.Error())
	}

	if err = s.commands.DispatchDeliveryOrder.Handle(ctx.Request().Context(), command); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ApproveDeliveryOrder handles POST /api/v1/delivery-orders/{id}/approve.
func (s *Server) ApproveDeliveryOrder(ctx echo.Context, id openapi_types.UUID) error {
	caller, orderID, remarks, err := s.transitionInputs(ctx, id)
	if err != nil {
		return err
	}

	command, err := commands.NewApproveDeliveryOrderCommand(orderID, caller.UserID, caller.Department, remarks)
	if err != nil {
		return badRequest(ctx, "Invalid transition data: "+err.Error())
	}

	if err = s.commands.ApproveDeliveryOrder.Handle(ctx.Request().Context(), command); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RejectDeliveryOrder handles POST /api/v1/delivery-orders/{id}/reject.
func (s *Server) RejectDeliveryOrder(ctx echo.Context, id openapi_types.UUID) error {
	caller, err := IdentityFromContext(ctx)
	if err != nil {
		return errorResponse(ctx, err)
	}

	orderID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return badRequest(ctx, "Invalid order reference: "+err.Error())
	}

	var body servers.RejectRequest
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}
	var remarks string
	if body.Remarks != nil {
		remarks = *body.Remarks
	}

	command, err := commands.NewRejectDeliveryOrderCommand(orderID, caller.UserID, caller.Department, remarks)
	if err != nil {
		return badRequest(ctx, "Invalid rejection data: "+err.Error())
	}

	if err = s.commands.RejectDeliveryOrder.Handle(ctx.Request().Context(), command); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetParties handles GET /api/v1/parties.
func (s *Server) GetParties(ctx echo.Context) error {
	if _, err := IdentityFromContext(ctx); err != nil {
		return errorResponse(ctx, err)
	}

	parties, err := s.queries.Parties.Handle(ctx.Request().Context(), queries.NewGetPartiesQuery())
	if err != nil {
		return errorResponse(ctx, err)
	}

	response := make([]servers.Party, 0, len(parties))
	for _, p := range parties {
		response = append(response, servers.Party{
			Id:          p.ID.Bytes(),
			PartyNumber: p.Number,
			PartyName:   p.Name,
			CreatedAt:   p.CreatedAt,
		})
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateParty handles POST /api/v1/parties. Party management belongs to the
// administrative department.
func (s *Server) CreateParty(ctx echo.Context) error {
	caller, err := IdentityFromContext(ctx)
	if err != nil {
		return errorResponse(ctx, err)
	}
	if caller.Department != kernel.RoleCreator {
		return errorResponse(ctx, errs.NewForbiddenDepartmentError(caller.Department.String()))
	}

	var body servers.NewParty
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	command, err := commands.NewCreatePartyCommand(kernel.NewUUID(), body.PartyNumber, body.PartyName)
	if err != nil {
		return badRequest(ctx, "Invalid party data: "+err.Error())
	}

	if err = s.commands.CreateParty.Handle(ctx.Request().Context(), command); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusCreated)
}

// GetProcessedOrders handles GET /api/v1/processed.
func (s *Server) GetProcessedOrders(ctx echo.Context) error {
	caller, err := IdentityFromContext(ctx)
	if err != nil {
		return errorResponse(ctx, err)
	}

	query, err := queries.NewGetProcessedOrdersQuery(caller.Department)
	if err != nil {
		return errorResponse(ctx, err)
	}

	orders, err := s.queries.ProcessedOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toAPIOrders(orders))
}

// GetProjectOfficeBoard handles GET /api/v1/project-office/board.
func (s *Server) GetProjectOfficeBoard(ctx echo.Context, params servers.GetProjectOfficeBoardParams) error {
	if _, err := IdentityFromContext(ctx); err != nil {
		return errorResponse(ctx, err)
	}

	query, err := queries.NewGetProjectOfficeBoardQuery(queries.BoardView(params.View))
	if err != nil {
		return errorResponse(ctx, err)
	}

	orders, err := s.queries.ProjectOfficeBoard.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toAPIOrders(orders))
}

// GetDepartmentQueue handles GET /api/v1/queue.
func (s *Server) GetDepartmentQueue(ctx echo.Context, params servers.GetDepartmentQueueParams) error {
	caller, err := IdentityFromContext(ctx)
	if err != nil {
		return errorResponse(ctx, err)
	}

	pendingOnly := params.Pending != nil && *params.Pending
	query, err := queries.NewGetDepartmentQueueQuery(caller.Department, caller.UserID, pendingOnly)
	if err != nil {
		return errorResponse(ctx, err)
	}

	orders, err := s.queries.DepartmentQueue.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toAPIOrders(orders))
}

// GetUsers handles GET /api/v1/users. Account listing belongs to the
// administrative department.
func (s *Server) GetUsers(ctx echo.Context) error {
	caller, err := IdentityFromContext(ctx)
	if err != nil {
		return errorResponse(ctx, err)
	}
	if caller.Department != kernel.RoleCreator {
		return errorResponse(ctx, errs.NewForbiddenDepartmentError(caller.Department.String()))
	}

	users, err := s.queries.Users.Handle(ctx.Request().Context(), queries.NewGetUsersQuery())
	if err != nil {
		return errorResponse(ctx, err)
	}

	response := make([]servers.User, 0, len(users))
	for _, u := range users {
		response = append(response, servers.User{
			Id:         u.ID.Bytes(),
			Username:   u.Username,
			Email:      u.Email,
			Department: u.Department,
			IsActive:   u.IsActive,
			CreatedAt:  u.CreatedAt,
		})
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateUser handles POST /api/v1/users. The plaintext password is hashed
// here; the domain stores hashes only.
func (s *Server) CreateUser(ctx echo.Context) error {
	caller, err := IdentityFromContext(ctx)
	if err != nil {
		return errorResponse(ctx, err)
	}
	if caller.Department != kernel.RoleCreator {
		return errorResponse(ctx, errs.NewForbiddenDepartmentError(caller.Department.String()))
	}

	var body servers.NewUser
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	department, err := kernel.DepartmentFromString(body.Department)
	if err != nil {
		return badRequest(ctx, "Invalid department: "+err.Error())
	}

	if body.Password == "" {
		return badRequest(ctx, "Password is required")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(body.Password), bcrypt.DefaultCost)
	if err != nil {
		return errorResponse(ctx, err)
	}

	command, err := commands.NewRegisterUserCommand(
		kernel.NewUUID(), body.Username, body.Email, string(hash), department)
	if err != nil {
		return badRequest(ctx, "Invalid user data: "+err.Error())
	}

	if err = s.commands.RegisterUser.Handle(ctx.Request().Context(), command); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusCreated)
}

// UpdateUserStatus handles PATCH /api/v1/users/{id}/status.
func (s *Server) UpdateUserStatus(ctx echo.Context, id openapi_types.UUID) error {
	caller, err := IdentityFromContext(ctx)
	if err != nil {
		return errorResponse(ctx, err)
	}
	if caller.Department != kernel.RoleCreator {
		return errorResponse(ctx, errs.NewForbiddenDepartmentError(caller.Department.String()))
	}

	userID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return badRequest(ctx, "Invalid user reference: "+err.Error())
	}

	var body servers.UserStatusUpdate
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	command, err := commands.NewSetUserStatusCommand(userID, body.IsActive)
	if err != nil {
		return badRequest(ctx, "Invalid status data: "+err.Error())
	}

	if err = s.commands.SetUserStatus.Handle(ctx.Request().Context(), command); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// transitionInputs runs the shared preamble of the receive, dispatch, and
// approve endpoints: caller identity, order reference, optional remarks.
func (s *Server) transitionInputs(
	ctx echo.Context,
	id openapi_types.UUID,
) (Identity, kernel.UUID, string, error) {
	caller, err := IdentityFromContext(ctx)
	if err != nil {
		return Identity{}, kernel.UUID{}, "", errorResponse(ctx, err)
	}

	orderID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return Identity{}, kernel.UUID{}, "", badRequest(ctx, "Invalid order reference: "+err.Error())
	}

	var body servers.TransitionRequest
	if err = ctx.Bind(&body); err != nil {
		return Identity{}, kernel.UUID{}, "", badRequest(ctx, "Invalid request body")
	}

	var remarks string
	if body.Remarks != nil {
		remarks = *body.Remarks
	}

	return caller, orderID, remarks, nil
}

func toAPIOrder(order queries.DeliveryOrderResponse) servers.DeliveryOrder {
	var notes *string
	if order.Notes != "" {
		n := order.Notes
		notes = &n
	}

	return servers.DeliveryOrder{
		Id:               order.ID.Bytes(),
		DoNumber:         order.Number,
		PartyId:          order.PartyID.Bytes(),
		PartyNumber:      order.PartyNumber,
		PartyName:        order.PartyName,
		AuthorizedPerson: order.AuthorizedPerson,
		ValidFrom:        openapi_types.Date{Time: order.ValidFrom},
		ValidUntil:       openapi_types.Date{Time: order.ValidUntil},
		CurrentStage:     order.Stage,
		CurrentLocation:  order.Location,
		Notes:            notes,
		CreatedBy:        order.CreatedBy.Bytes(),
		CreatedByName:    order.CreatedByName,
		CreatedAt:        order.CreatedAt,
	}
}

func toAPIOrders(orders []queries.DeliveryOrderResponse) []servers.DeliveryOrder {
	response := make([]servers.DeliveryOrder, 0, len(orders))
	for _, order := range orders {
		response = append(response, toAPIOrder(order))
	}
	return response
}

func toAPIHistoryEntry(entry queries.HistoryEntryResponse) servers.HistoryEntry {
	var from *string
	if entry.FromDepartment != "" {
		f := entry.FromDepartment
		from = &f
	}
	var remarks *string
	if entry.Remarks != "" {
		r := entry.Remarks
		remarks = &r
	}

	return servers.HistoryEntry{
		Id:              entry.ID.Bytes(),
		FromDepartment:  from,
		ToDepartment:    entry.ToDepartment,
		Action:          entry.Action,
		PerformedBy:     entry.PerformedBy.Bytes(),
		PerformedByName: entry.PerformedByName,
		Remarks:         remarks,
		PerformedAt:     entry.PerformedAt,
	}
}

package controllers

import (
	"net/http"
	"testing"

	"gearguard/internal/dto"
	"gearguard/pkg/constants"
	apperrors "gearguard/pkg/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newRequestController() (*MaintenanceRequestController, *MockRequestService, *MockEquipmentService) {
	reqs := new(MockRequestService)
	eq := new(MockEquipmentService)
	return NewMaintenanceRequestController(reqs, eq, zap.NewNop()), reqs, eq
}

func TestGetRequests_BindsQuery(t *testing.T) {
	ctrl, reqs, _ := newRequestController()
	reqs.On("ListRequests", mock.Anything, dto.RequestFilterDTO{
		Type:          constants.RequestTypePreventive,
		EquipmentID:   4,
		ScheduledFrom: "2025-03-01",
		ScheduledTo:   "2025-03-31",
	}).Return([]dto.RequestDTO{{ID: 2, Subject: "Belt check"}}, nil)

	c, rec := newJSONContext(newTestEcho(), http.MethodGet,
		"/api/maintenance/requests?type=Preventive&equipmentId=4&scheduledFrom=2025-03-01&scheduledTo=2025-03-31", "")
	require.NoError(t, ctrl.GetRequests(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"subject":"Belt check"`)
	reqs.AssertExpectations(t)
}

func TestGetRequests_RejectsUnknownStatus(t *testing.T) {
	ctrl, reqs, _ := newRequestController()

	c, rec := newJSONContext(newTestEcho(), http.MethodGet, "/api/maintenance/requests?status=Closed", "")
	require.NoError(t, ctrl.GetRequests(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	reqs.AssertNotCalled(t, "ListRequests", mock.Anything, mock.Anything)
}

func TestCreateRequest_Controller(t *testing.T) {
	ctrl, reqs, _ := newRequestController()
	team := uint64(2)
	reqs.On("CreateRequest", mock.Anything, dto.CreateRequestDTO{EquipmentID: 5, Subject: "Bearing noise", Type: "Corrective"}).
		Return(&dto.RequestDTO{ID: 1, Subject: "Bearing noise", Type: "Corrective", Status: "New", EquipmentID: 5, TeamID: &team}, nil)
	e := newTestEcho()

	c, rec := newJSONContext(e, http.MethodPost, "/api/maintenance/requests",
		`{"equipmentId":5,"subject":"Bearing noise","type":"Corrective"}`)
	require.NoError(t, ctrl.CreateRequest(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"New"`)
	assert.Contains(t, rec.Body.String(), `"teamId":2`)

	c, rec = newJSONContext(e, http.MethodPost, "/api/maintenance/requests", `{"subject":"no equipment"}`)
	require.NoError(t, ctrl.CreateRequest(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	c, rec = newJSONContext(e, http.MethodPost, "/api/maintenance/requests", `{"equipmentId":5,"subject":"x","type":"Emergency"}`)
	require.NoError(t, ctrl.CreateRequest(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	reqs.AssertNumberOfCalls(t, "CreateRequest", 1)
}

func TestCreateRequest_EquipmentNotFound(t *testing.T) {
	ctrl, reqs, _ := newRequestController()
	reqs.On("CreateRequest", mock.Anything, mock.Anything).Return(nil, apperrors.NewNotFoundError("Equipment not found"))

	c, rec := newJSONContext(newTestEcho(), http.MethodPost, "/api/requests", `{"equipmentId":77,"subject":"x"}`)
	require.NoError(t, ctrl.CreateRequest(c))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUpdateRequestStatus_Controller(t *testing.T) {
	ctrl, reqs, _ := newRequestController()
	eqID := uint64(5)
	reqs.On("UpdateRequestStatus", mock.Anything, uint64(10), dto.UpdateRequestStatusDTO{Status: "Scrap", EquipmentID: &eqID}).
		Return(&dto.RequestDTO{ID: 10, Status: "Scrap"}, nil)
	e := newTestEcho()

	c, rec := newJSONContext(e, http.MethodPatch, "/api/maintenance/requests/10", `{"status":"Scrap","equipmentId":5}`)
	c.SetParamNames("id")
	c.SetParamValues("10")
	require.NoError(t, ctrl.UpdateRequestStatus(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	c, rec = newJSONContext(e, http.MethodPatch, "/api/maintenance/requests/10", `{"status":"Done"}`)
	c.SetParamNames("id")
	c.SetParamValues("10")
	require.NoError(t, ctrl.UpdateRequestStatus(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	c, rec = newJSONContext(e, http.MethodPatch, "/api/maintenance/requests/10", `{"status":"Repaired","duration":-2}`)
	c.SetParamNames("id")
	c.SetParamValues("10")
	require.NoError(t, ctrl.UpdateRequestStatus(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	reqs.AssertNumberOfCalls(t, "UpdateRequestStatus", 1)
}

func TestUpdateRequestStatus_InvalidTransition(t *testing.T) {
	ctrl, reqs, _ := newRequestController()
	reqs.On("UpdateRequestStatus", mock.Anything, uint64(10), mock.Anything).
		Return(nil, apperrors.NewInvalidInputError("cannot change status from %s to %s", "Repaired", "New"))

	c, rec := newJSONContext(newTestEcho(), http.MethodPatch, "/api/maintenance/requests/10", `{"status":"New"}`)
	c.SetParamNames("id")
	c.SetParamValues("10")
	require.NoError(t, ctrl.UpdateRequestStatus(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"cannot change status from Repaired to New"}`, rec.Body.String())
}

func TestGetEquipmentDropdown(t *testing.T) {
	ctrl, _, eq := newRequestController()
	eq.On("GetEquipmentOptions", mock.Anything).Return([]dto.EquipmentOptionDTO{{ID: 1, Name: "Lathe", SerialNumber: "L-1"}}, nil)

	c, rec := newJSONContext(newTestEcho(), http.MethodGet, "/api/maintenance/dropdown/equipment", "")
	require.NoError(t, ctrl.GetEquipmentDropdown(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[{"id":1,"name":"Lathe","serialNumber":"L-1"}]`, rec.Body.String())
}

package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/go-fleet-logbook/internal/config"
	"github.com/MKhiriev/go-fleet-logbook/internal/form"
	"github.com/MKhiriev/go-fleet-logbook/internal/logger"
	"github.com/MKhiriev/go-fleet-logbook/internal/service"
	"github.com/MKhiriev/go-fleet-logbook/models"
)

// ─── auth ───

type fakeAuthService struct {
	loginFn        func(ctx context.Context, c models.Credentials) (models.LoginResponse, error)
	authenticateFn func(ctx context.Context, token string) (models.User, string, error)
	logoutFn       func(ctx context.Context) error
}

func (f *fakeAuthService) Login(ctx context.Context, c models.Credentials) (models.LoginResponse, error) {
	return f.loginFn(ctx, c)
}

func (f *fakeAuthService) Authenticate(ctx context.Context, token string) (models.User, string, error) {
	if f.authenticateFn == nil {
		return models.User{}, "", service.ErrTokenIsExpiredOrInvalid
	}
	return f.authenticateFn(ctx, token)
}

func (f *fakeAuthService) Logout(ctx context.Context) error {
	return f.logoutFn(ctx)
}

// ─── users ───

type fakeUserService struct {
	listFn   func(ctx context.Context) ([]models.User, error)
	createFn func(ctx context.Context, u models.User) (models.User, error)
	updateFn func(ctx context.Context, id string, u models.UserUpdate) (models.User, error)
}

func (f *fakeUserService) ListUsers(ctx context.Context) ([]models.User, error) {
	return f.listFn(ctx)
}

func (f *fakeUserService) CreateUser(ctx context.Context, u models.User) (models.User, error) {
	return f.createFn(ctx, u)
}

func (f *fakeUserService) UpdateUser(ctx context.Context, id string, u models.UserUpdate) (models.User, error) {
	return f.updateFn(ctx, id, u)
}

// ─── sectors ───

type fakeSectorService struct {
	listFn    func(ctx context.Context) ([]models.Sector, error)
	getFn     func(ctx context.Context, id string) (models.Sector, error)
	createFn  func(ctx context.Context, name string, fields []models.FieldDefinition) (models.Sector, error)
	updateFn  func(ctx context.Context, id string, u models.SectorUpdate) (models.Sector, error)
	deleteFn  func(ctx context.Context, id string) error
	resolveFn func(ctx context.Context, id string, answers map[string]any) ([]form.Control, error)
}

func (f *fakeSectorService) ListSectors(ctx context.Context) ([]models.Sector, error) {
	return f.listFn(ctx)
}

func (f *fakeSectorService) GetSector(ctx context.Context, id string) (models.Sector, error) {
	return f.getFn(ctx, id)
}

func (f *fakeSectorService) CreateSector(ctx context.Context, name string, fields []models.FieldDefinition) (models.Sector, error) {
	return f.createFn(ctx, name, fields)
}

func (f *fakeSectorService) UpdateSector(ctx context.Context, id string, u models.SectorUpdate) (models.Sector, error) {
	return f.updateFn(ctx, id, u)
}

func (f *fakeSectorService) DeleteSector(ctx context.Context, id string) error {
	return f.deleteFn(ctx, id)
}

func (f *fakeSectorService) ResolveForm(ctx context.Context, id string, answers map[string]any) ([]form.Control, error) {
	return f.resolveFn(ctx, id, answers)
}

// ─── logs ───

type fakeLogService struct {
	appendFn func(ctx context.Context, r models.LogRecord) (models.LogRecord, error)
	tripFn   func(ctx context.Context, s models.TripSubmission) (models.LogRecord, error)
	getFn    func(ctx context.Context, id string) (models.LogRecord, error)
	updateFn func(ctx context.Context, id string, u models.LogUpdate) (models.LogRecord, error)
	removeFn func(ctx context.Context, id string) error
	queryFn  func(ctx context.Context, q models.LogQuery) ([]models.LogRecord, error)
}

func (f *fakeLogService) AppendLog(ctx context.Context, r models.LogRecord) (models.LogRecord, error) {
	return f.appendFn(ctx, r)
}

func (f *fakeLogService) SubmitTrip(ctx context.Context, s models.TripSubmission) (models.LogRecord, error) {
	return f.tripFn(ctx, s)
}

func (f *fakeLogService) GetLog(ctx context.Context, id string) (models.LogRecord, error) {
	return f.getFn(ctx, id)
}

func (f *fakeLogService) UpdateLog(ctx context.Context, id string, u models.LogUpdate) (models.LogRecord, error) {
	return f.updateFn(ctx, id, u)
}

func (f *fakeLogService) RemoveLog(ctx context.Context, id string) error {
	return f.removeFn(ctx, id)
}

func (f *fakeLogService) QueryLogs(ctx context.Context, q models.LogQuery) ([]models.LogRecord, error) {
	return f.queryFn(ctx, q)
}

// ─── stats ───

type fakeStatsService struct {
	upsertFn   func(ctx context.Context, u models.BoundUpdate) (models.MonthlyStats, error)
	autofillFn func(ctx context.Context, userID, vehicleID string, month models.MonthKey) (models.InitialSuggestion, error)
	totalFn    func(ctx context.Context, userID string, month models.MonthKey, active []string) (models.MonthlyTotal, error)
	reportFn   func(ctx context.Context, month models.MonthKey) ([]models.MonthlyTotal, error)
}

func (f *fakeStatsService) UpsertBound(ctx context.Context, u models.BoundUpdate) (models.MonthlyStats, error) {
	return f.upsertFn(ctx, u)
}

func (f *fakeStatsService) AutofillInitial(ctx context.Context, userID, vehicleID string, month models.MonthKey) (models.InitialSuggestion, error) {
	return f.autofillFn(ctx, userID, vehicleID, month)
}

func (f *fakeStatsService) MonthlyTotal(ctx context.Context, userID string, month models.MonthKey, active []string) (models.MonthlyTotal, error) {
	return f.totalFn(ctx, userID, month, active)
}

func (f *fakeStatsService) MonthReport(ctx context.Context, month models.MonthKey) ([]models.MonthlyTotal, error) {
	return f.reportFn(ctx, month)
}

// ─── vehicles ───

type fakeVehicleService struct {
	listFn   func(ctx context.Context) ([]models.Vehicle, error)
	getFn    func(ctx context.Context, id string) (models.Vehicle, error)
	createFn func(ctx context.Context, v models.Vehicle) (models.Vehicle, error)
	updateFn func(ctx context.Context, id string, v models.Vehicle) (models.Vehicle, error)
	deleteFn func(ctx context.Context, id string) error
	importFn func(ctx context.Context, document []byte, dryRun bool) (models.ImportReport, error)
}

func (f *fakeVehicleService) ListVehicles(ctx context.Context) ([]models.Vehicle, error) {
	return f.listFn(ctx)
}

func (f *fakeVehicleService) GetVehicle(ctx context.Context, id string) (models.Vehicle, error) {
	return f.getFn(ctx, id)
}

func (f *fakeVehicleService) CreateVehicle(ctx context.Context, v models.Vehicle) (models.Vehicle, error) {
	return f.createFn(ctx, v)
}

func (f *fakeVehicleService) UpdateVehicle(ctx context.Context, id string, v models.Vehicle) (models.Vehicle, error) {
	return f.updateFn(ctx, id, v)
}

func (f *fakeVehicleService) DeleteVehicle(ctx context.Context, id string) error {
	return f.deleteFn(ctx, id)
}

func (f *fakeVehicleService) ImportVehicles(ctx context.Context, document []byte, dryRun bool) (models.ImportReport, error) {
	return f.importFn(ctx, document, dryRun)
}

// ─── reference data ───

type fakeReferenceService struct {
	listWorkshopsFn  func(ctx context.Context) ([]models.Workshop, error)
	createWorkshopFn func(ctx context.Context, w models.Workshop) (models.Workshop, error)
	listStationsFn   func(ctx context.Context) ([]models.FuelStation, error)
	deleteStationFn  func(ctx context.Context, id string) error
}

func (f *fakeReferenceService) ListWorkshops(ctx context.Context) ([]models.Workshop, error) {
	return f.listWorkshopsFn(ctx)
}

func (f *fakeReferenceService) CreateWorkshop(ctx context.Context, w models.Workshop) (models.Workshop, error) {
	return f.createWorkshopFn(ctx, w)
}

func (f *fakeReferenceService) UpdateWorkshop(_ context.Context, id string, w models.Workshop) (models.Workshop, error) {
	w.ID = id
	return w, nil
}

func (f *fakeReferenceService) DeleteWorkshop(_ context.Context, _ string) error {
	return nil
}

func (f *fakeReferenceService) ListFuelStations(ctx context.Context) ([]models.FuelStation, error) {
	return f.listStationsFn(ctx)
}

func (f *fakeReferenceService) CreateFuelStation(_ context.Context, s models.FuelStation) (models.FuelStation, error) {
	return s, nil
}

func (f *fakeReferenceService) UpdateFuelStation(_ context.Context, id string, s models.FuelStation) (models.FuelStation, error) {
	s.ID = id
	return s, nil
}

func (f *fakeReferenceService) DeleteFuelStation(ctx context.Context, id string) error {
	return f.deleteStationFn(ctx, id)
}

// ─── app info ───

type fakeAppInfoService struct {
	info models.VersionInfo
}

func (f *fakeAppInfoService) GetAppVersion(_ context.Context) string {
	return f.info.Version
}

func (f *fakeAppInfoService) GetBuildInfo(_ context.Context) models.VersionInfo {
	return f.info
}

// ─── helpers ───

var (
	testDriver = models.User{ID: "drv-1", Role: models.RoleDriver, Status: models.StatusActive, AssignedVehicleID: "veh-9"}
	testMaster = models.User{ID: "mst-1", Role: models.RoleMaster, Status: models.StatusActive}
)

// authenticatedAs makes every token resolve to user.
func authenticatedAs(user models.User) *fakeAuthService {
	return &fakeAuthService{
		authenticateFn: func(_ context.Context, token string) (models.User, string, error) {
			return user, "sess-" + user.ID, nil
		},
	}
}

func newTestHandler(services *service.Services) *Handler {
	return NewHandler(services, config.Server{}, logger.Nop())
}

// serve runs req through the full router with a bearer token attached.
func serve(t *testing.T, services *service.Services, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Authorization", "Bearer test-token")

	rr := httptest.NewRecorder()
	newTestHandler(services).Init().ServeHTTP(rr, req)
	return rr
}

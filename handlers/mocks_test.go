package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/clinicadmn/clinica-backend/handlers"
	"github.com/clinicadmn/clinica-backend/middleware"
	"github.com/clinicadmn/clinica-backend/models"
	"github.com/clinicadmn/clinica-backend/routes"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
)

// Verificación en compilación de que el mock implementa el contrato
var _ handlers.Store = (*mockStore)(nil)

// mockStore implementa handlers.Store con funciones configurables por prueba
type mockStore struct {
	CrearMedicoFunc           func(ctx context.Context, nombre, email, passwordHash, especialidad string) (*models.Medico, error)
	ObtenerMedicoPorEmailFunc func(ctx context.Context, email string) (*models.Medico, error)
	ObtenerMedicoPorIDFunc    func(ctx context.Context, id int) (*models.Medico, error)
	ObtenerMedicosFunc        func(ctx context.Context) ([]models.Medico, error)
	ActualizarMedicoFunc      func(ctx context.Context, id int, nombre, especialidad string) error
	EliminarMedicoFunc        func(ctx context.Context, id int) error

	CrearPacienteFunc             func(ctx context.Context, paciente *models.Paciente) error
	ObtenerPacientePorIDFunc      func(ctx context.Context, id int) (*models.Paciente, error)
	ObtenerPacientesPorMedicoFunc func(ctx context.Context, medicoID int) ([]models.Paciente, error)
	EliminarPacienteFunc          func(ctx context.Context, id int) error

	CrearCitaFunc               func(ctx context.Context, req *models.CitaRequest) (*models.Cita, error)
	ObtenerCitaPorIDFunc        func(ctx context.Context, id int) (*models.Cita, error)
	CancelarCitaFunc            func(ctx context.Context, id int) error
	ObtenerCitasPorPacienteFunc func(ctx context.Context, pacienteID int, incluirCanceladas bool) ([]models.Cita, error)
	ObtenerCitasPorMedicoFunc   func(ctx context.Context, medicoID int, incluirCanceladas bool) ([]models.Cita, error)
}

var errMockNoConfigurado = errors.New("mock no configurado")

func (m *mockStore) CrearMedico(ctx context.Context, nombre, email, passwordHash, especialidad string) (*models.Medico, error) {
	if m.CrearMedicoFunc != nil {
		return m.CrearMedicoFunc(ctx, nombre, email, passwordHash, especialidad)
	}
	return nil, errMockNoConfigurado
}

func (m *mockStore) ObtenerMedicoPorEmail(ctx context.Context, email string) (*models.Medico, error) {
	if m.ObtenerMedicoPorEmailFunc != nil {
		return m.ObtenerMedicoPorEmailFunc(ctx, email)
	}
	return nil, errMockNoConfigurado
}

func (m *mockStore) ObtenerMedicoPorID(ctx context.Context, id int) (*models.Medico, error) {
	if m.ObtenerMedicoPorIDFunc != nil {
		return m.ObtenerMedicoPorIDFunc(ctx, id)
	}
	return nil, errMockNoConfigurado
}

func (m *mockStore) ObtenerMedicos(ctx context.Context) ([]models.Medico, error) {
	if m.ObtenerMedicosFunc != nil {
		return m.ObtenerMedicosFunc(ctx)
	}
	return nil, errMockNoConfigurado
}

func (m *mockStore) ActualizarMedico(ctx context.Context, id int, nombre, especialidad string) error {
	if m.ActualizarMedicoFunc != nil {
		return m.ActualizarMedicoFunc(ctx, id, nombre, especialidad)
	}
	return errMockNoConfigurado
}

func (m *mockStore) EliminarMedico(ctx context.Context, id int) error {
	if m.EliminarMedicoFunc != nil {
		return m.EliminarMedicoFunc(ctx, id)
	}
	return errMockNoConfigurado
}

func (m *mockStore) CrearPaciente(ctx context.Context, paciente *models.Paciente) error {
	if m.CrearPacienteFunc != nil {
		return m.CrearPacienteFunc(ctx, paciente)
	}
	return errMockNoConfigurado
}

func (m *mockStore) ObtenerPacientePorID(ctx context.Context, id int) (*models.Paciente, error) {
	if m.ObtenerPacientePorIDFunc != nil {
		return m.ObtenerPacientePorIDFunc(ctx, id)
	}
	return nil, errMockNoConfigurado
}

func (m *mockStore) ObtenerPacientesPorMedico(ctx context.Context, medicoID int) ([]models.Paciente, error) {
	if m.ObtenerPacientesPorMedicoFunc != nil {
		return m.ObtenerPacientesPorMedicoFunc(ctx, medicoID)
	}
	return nil, errMockNoConfigurado
}

func (m *mockStore) EliminarPaciente(ctx context.Context, id int) error {
	if m.EliminarPacienteFunc != nil {
		return m.EliminarPacienteFunc(ctx, id)
	}
	return errMockNoConfigurado
}

func (m *mockStore) CrearCita(ctx context.Context, req *models.CitaRequest) (*models.Cita, error) {
	if m.CrearCitaFunc != nil {
		return m.CrearCitaFunc(ctx, req)
	}
	return nil, errMockNoConfigurado
}

func (m *mockStore) ObtenerCitaPorID(ctx context.Context, id int) (*models.Cita, error) {
	if m.ObtenerCitaPorIDFunc != nil {
		return m.ObtenerCitaPorIDFunc(ctx, id)
	}
	return nil, errMockNoConfigurado
}

func (m *mockStore) CancelarCita(ctx context.Context, id int) error {
	if m.CancelarCitaFunc != nil {
		return m.CancelarCitaFunc(ctx, id)
	}
	return errMockNoConfigurado
}

func (m *mockStore) ObtenerCitasPorPaciente(ctx context.Context, pacienteID int, incluirCanceladas bool) ([]models.Cita, error) {
	if m.ObtenerCitasPorPacienteFunc != nil {
		return m.ObtenerCitasPorPacienteFunc(ctx, pacienteID, incluirCanceladas)
	}
	return nil, errMockNoConfigurado
}

func (m *mockStore) ObtenerCitasPorMedico(ctx context.Context, medicoID int, incluirCanceladas bool) ([]models.Cita, error) {
	if m.ObtenerCitasPorMedicoFunc != nil {
		return m.ObtenerCitasPorMedicoFunc(ctx, medicoID, incluirCanceladas)
	}
	return nil, errMockNoConfigurado
}

// newTestApp levanta la aplicación completa con las rutas reales sobre el store dado
func newTestApp(store handlers.Store) *fiber.App {
	app := fiber.New()
	routes.SetupRoutes(app, handlers.New(store))
	return app
}

// tokenPrueba genera un JWT válido para las rutas protegidas
func tokenPrueba(t *testing.T) string {
	t.Helper()
	token, err := middleware.GenerateJWT(1, "Dr. Prueba")
	require.NoError(t, err)
	return token
}

func doRequest(t *testing.T, app *fiber.App, method, target string, body interface{}, token string) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response) map[string]interface{} {
	t.Helper()
	defer resp.Body.Close()

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body
}

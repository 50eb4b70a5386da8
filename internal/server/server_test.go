package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piwi3910/FrameWizard/internal/model"
	"github.com/piwi3910/FrameWizard/internal/project"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func newTestServer(t *testing.T) *Server {
	t.Helper()

	ws, err := project.LoadWorkspace(t.TempDir())
	require.NoError(t, err)

	hingeType := model.NewComponentType("Pocket 89", model.KindHinge,
		"G0 Z{$machine_z_offset}\nG0 X{$hinge1_position} Y{$hinge_y_offset}\nG81 Z-{L1:12} R2 F{L2:300}\nG80\n")
	lockType := model.NewComponentType("Mortise 72", model.KindLock,
		"G0 Z{$machine_z_offset}\nG0 X{$lock_position} Y{$lock_y_offset}\nG1 Z-{depth:14} F250\nG0 Z{$machine_z_offset}\n")
	require.NoError(t, ws.Types.Add(hingeType))
	require.NoError(t, ws.Types.Add(lockType))

	require.NoError(t, ws.Profiles.Add(model.NewComponentProfile("Standard 89", model.KindHinge, "Pocket 89")))
	require.NoError(t, ws.Profiles.Add(model.NewComponentProfile("Euro 72", model.KindLock, "Mortise 72")))

	return New(ws)
}

func postJSON(t *testing.T, r *gin.Engine, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	data, err := json.Marshal(body)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

// solveBody mirrors the Entry Door layout: three hinges plus a lock
// case, all with the default keep-clear half-width.
func solveBody() map[string]interface{} {
	return map[string]interface{}{
		"frame_height": 2100,
		"obstacles": []model.Obstacle{
			{Label: "Lock", Center: 1050, Safety: 170},
			{Label: "Hinge 1", Center: 150, Safety: 170},
			{Label: "Hinge 2", Center: 810, Safety: 170},
			{Label: "Hinge 3", Center: 1800, Safety: 170},
		},
	}
}

func generateProject(ws *project.Workspace) model.Project {
	p := ws.NewProject("Entry Door")
	p.SetHingeCount(3)
	p.Hinges[0].Position = 150
	p.Hinges[1].Position = 810
	p.Hinges[2].Position = 1800
	p.SelectedHinge = "Standard 89"
	p.SelectedLock = "Euro 72"
	return p
}

func TestSolveEndpoint(t *testing.T) {
	r := newTestServer(t).Router()

	w := postJSON(t, r, "/api/solve", solveBody())
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		FrameHeight float64                `json:"frame_height"`
		Placement   model.Placement        `json:"placement"`
		Solved      bool                   `json:"solved"`
		Validation  model.ValidationResult `json:"validation"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	assert.True(t, resp.Solved)
	assert.False(t, resp.Placement.Fallback)
	assert.Equal(t, 2100.0, resp.FrameHeight)
	assert.Equal(t, [4]float64{-25, 320, 1422.5, 1630}, resp.Placement.PM)
	assert.True(t, resp.Validation.OK())
}

func TestSolveEndpoint_PM1Override(t *testing.T) {
	r := newTestServer(t).Router()

	body := solveBody()
	body["pm1_position"] = 40
	w := postJSON(t, r, "/api/solve", body)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Placement model.Placement `json:"placement"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 40.0, resp.Placement.PM[0])
}

func TestSolveEndpoint_ClampsHeight(t *testing.T) {
	r := newTestServer(t).Router()

	w := postJSON(t, r, "/api/solve", map[string]interface{}{"frame_height": 100})
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		FrameHeight float64 `json:"frame_height"`
		Solved      bool    `json:"solved"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 840.0, resp.FrameHeight)
	assert.True(t, resp.Solved)
}

func TestSolveEndpoint_BadJSON(t *testing.T) {
	r := newTestServer(t).Router()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/solve", strings.NewReader("{not json"))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp struct {
		Error string `json:"error"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Error)
}

func TestValidateEndpoint(t *testing.T) {
	r := newTestServer(t).Router()

	body := map[string]interface{}{
		"frame_height": 2100,
		"placement":    model.Placement{PM: [4]float64{-25, 320, 1422.5, 1630}},
		"obstacles":    solveBody()["obstacles"],
	}
	w := postJSON(t, r, "/api/validate", body)
	require.Equal(t, http.StatusOK, w.Code)

	var result model.ValidationResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.True(t, result.OK())
}

func TestValidateEndpoint_FlagsViolations(t *testing.T) {
	r := newTestServer(t).Router()

	// PM2 and PM3 sit 60 mm apart, far under the slot clearance.
	body := map[string]interface{}{
		"frame_height": 2100,
		"placement":    model.Placement{PM: [4]float64{-25, 320, 380, 1630}},
	}
	w := postJSON(t, r, "/api/validate", body)
	require.Equal(t, http.StatusOK, w.Code)

	var result model.ValidationResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.False(t, result.OK())
	assert.True(t, result.PMErrors[1])
	assert.True(t, result.PMErrors[2])
}

func TestHingesEndpoint(t *testing.T) {
	r := newTestServer(t).Router()

	w := postJSON(t, r, "/api/hinges", map[string]interface{}{"frame_height": 2100, "count": 3})
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		FrameHeight float64   `json:"frame_height"`
		Positions   []float64 `json:"positions"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, []float64{150, 810, 1800}, resp.Positions)
}

func TestHingesEndpoint_ZeroCount(t *testing.T) {
	r := newTestServer(t).Router()

	w := postJSON(t, r, "/api/hinges", map[string]interface{}{"frame_height": 2100, "count": 0})
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Positions []float64 `json:"positions"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotNil(t, resp.Positions)
	assert.Empty(t, resp.Positions)
}

func TestHingesEndpoint_CountOutOfRange(t *testing.T) {
	r := newTestServer(t).Router()

	w := postJSON(t, r, "/api/hinges", map[string]interface{}{"frame_height": 2100, "count": 5})
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGenerateEndpoint(t *testing.T) {
	s := newTestServer(t)
	r := s.Router()

	w := postJSON(t, r, "/api/generate", generateProject(s.ws))
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Placement model.Placement          `json:"placement"`
		Programs  []model.GeneratedProgram `json:"programs"`
		Warnings  []string                 `json:"warnings"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	require.Len(t, resp.Programs, 6)
	kinds := map[model.ProgramKind]int{}
	for _, prog := range resp.Programs {
		kinds[prog.Kind]++
		assert.NotEmpty(t, prog.Code)
		assert.NotEmpty(t, prog.Fingerprint)
	}
	assert.Equal(t, 2, kinds[model.ProgramFrame])
	assert.Equal(t, 2, kinds[model.ProgramLock])
	assert.Equal(t, 2, kinds[model.ProgramHinge])
	assert.Equal(t, [4]float64{-25, 320, 1422.5, 1630}, resp.Placement.PM)
	assert.Empty(t, resp.Warnings)
}

func TestGenerateEndpoint_SingleSide(t *testing.T) {
	s := newTestServer(t)
	r := s.Router()

	w := postJSON(t, r, "/api/generate?side=left", generateProject(s.ws))
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Programs []model.GeneratedProgram `json:"programs"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	require.Len(t, resp.Programs, 3)
	for _, prog := range resp.Programs {
		assert.Equal(t, model.SideLeft, prog.Side)
	}
}

func TestGenerateEndpoint_UnknownSide(t *testing.T) {
	s := newTestServer(t)
	r := s.Router()

	w := postJSON(t, r, "/api/generate?side=top", generateProject(s.ws))
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGenerateEndpoint_NoName(t *testing.T) {
	r := newTestServer(t).Router()

	w := postJSON(t, r, "/api/generate", model.Project{})
	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp struct {
		Error string `json:"error"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Contains(t, resp.Error, "no name")
}

func TestGenerateEndpoint_MissingProfile(t *testing.T) {
	s := newTestServer(t)
	r := s.Router()

	p := generateProject(s.ws)
	p.SelectedHinge = ""
	w := postJSON(t, r, "/api/generate", p)
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)

	var resp struct {
		Error string `json:"error"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Contains(t, resp.Error, "no hinge profile selected")
}

func TestGenerateEndpoint_RejectsViolatedLayout(t *testing.T) {
	s := newTestServer(t)
	r := s.Router()

	// A hinge at 100 puts its keep-clear zone over the fixed PM1 anchor.
	p := generateProject(s.ws)
	p.Hinges[0].Position = 100
	w := postJSON(t, r, "/api/generate", p)
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)

	var resp struct {
		Error      string                 `json:"error"`
		Validation model.ValidationResult `json:"validation"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Validation.Violations)
	assert.True(t, resp.Validation.PMErrors[0])
}

func TestMachineEndpoint(t *testing.T) {
	r := newTestServer(t).Router()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/machine", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var setup model.MachineSetup
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &setup))
	assert.Equal(t, "Generic", setup.Controller)
	assert.Equal(t, 50.0, setup.Offsets.Z)
}

package routes

import (
	"net/http"
	"testing"

	"fiber-lims/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDashboardCounts(t *testing.T) {
	app, db := setupTestApp(t)
	SetupDashboardRoutes(app)
	_, token := seedAdmin(t, db)

	require.NoError(t, db.Create(&models.Client{ClientCode: "CL-001", ClientName: "Client One"}).Error)
	require.NoError(t, db.Create(&models.Order{OrderNo: "ORD-1", ClientID: "1", Status: models.OrderStatusDraft}).Error)

	resp, body := doJSON(t, app, http.MethodGet, "/api/v1/dashboard/", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	data := body["data"].(map[string]interface{})
	counts := data["counts"].(map[string]interface{})
	assert.Equal(t, float64(1), counts["orders"])
	assert.Equal(t, float64(1), counts["clients"])
	assert.Equal(t, float64(0), counts["samples"])
}

// A failing count must surface as an error, not render as zero.
func TestDashboardCountFailure(t *testing.T) {
	app, db := setupTestApp(t)
	SetupDashboardRoutes(app)
	_, token := seedAdmin(t, db)

	require.NoError(t, db.Migrator().DropTable(&models.Sample{}))

	resp, _ := doJSON(t, app, http.MethodGet, "/api/v1/dashboard/", token, nil)
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
}

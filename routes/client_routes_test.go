package routes

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"fiber-lims/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Concurrent creates must not bleed payload fields into each other's
// rows: each stored client keeps the code/name pair it was posted with.
func TestCreateClientConcurrent(t *testing.T) {
	app, db := setupTestApp(t)
	SetupClientRoutes(app)
	_, token := seedAdmin(t, db)

	const workers = 8
	var wg sync.WaitGroup
	statuses := make([]int, workers)
	errs := make([]error, workers)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()

			payload, err := json.Marshal(map[string]interface{}{
				"client_code":    fmt.Sprintf("CL-%03d", i),
				"client_name":    fmt.Sprintf("Client %03d", i),
				"contact_person": fmt.Sprintf("Person %03d", i),
			})
			if err != nil {
				errs[i] = err
				return
			}

			req := httptest.NewRequest(http.MethodPost, "/api/v1/clients/", bytes.NewReader(payload))
			req.Header.Set("Content-Type", "application/json")
			req.Header.Set("Authorization", "Bearer "+token)

			resp, err := app.Test(req, -1)
			if err != nil {
				errs[i] = err
				return
			}
			statuses[i] = resp.StatusCode
		}(i)
	}
	wg.Wait()

	for i := 0; i < workers; i++ {
		require.NoError(t, errs[i], "request %d", i)
		assert.Equal(t, http.StatusCreated, statuses[i], "request %d", i)
	}

	var clients []models.Client
	require.NoError(t, db.Find(&clients).Error)
	require.Len(t, clients, workers)
	for _, client := range clients {
		var n int
		_, err := fmt.Sscanf(client.ClientCode, "CL-%03d", &n)
		require.NoError(t, err)
		assert.Equal(t, fmt.Sprintf("Client %03d", n), client.ClientName)
		assert.Equal(t, fmt.Sprintf("Person %03d", n), client.ContactPerson)
	}
}

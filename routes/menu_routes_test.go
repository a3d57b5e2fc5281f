package routes

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"fiber-lims/config"
	"fiber-lims/database"
	"fiber-lims/models"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func setupTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()

	config.LoadConfig()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.Migrate(db))
	database.SetDBConnection(config.DBName, db)

	app := fiber.New()
	SetupMenuRoutes(app)
	SetupPermissionRoutes(app)
	return app, db
}

func seedAdmin(t *testing.T, db *gorm.DB) (models.User, string) {
	t.Helper()

	role := models.Role{
		Name:        "administrator",
		Permissions: []models.Permission{{Name: "menu.manage"}},
	}
	require.NoError(t, db.Create(&role).Error)

	user := models.User{Username: "admin", Name: "Admin", Email: "admin@local", Password: "secret", RoleID: &role.ID}
	require.NoError(t, db.Create(&user).Error)

	return user, openSession(t, db, user)
}

func openSession(t *testing.T, db *gorm.DB, user models.User) string {
	t.Helper()

	sessionID := uuid.New().String()
	session := models.UserSession{
		UserID:         uint64(user.ID),
		SessionID:      sessionID,
		IsActive:       true,
		LastActivityAt: time.Now(),
		ExpiresAt:      time.Now().Add(time.Hour),
	}
	require.NoError(t, db.Create(&session).Error)

	claims := jwt.MapClaims{
		"user_id":    user.ID,
		"email":      user.Email,
		"session_id": sessionID,
		"exp":        time.Now().Add(time.Hour).Unix(),
		"jti":        uuid.New().String(),
	}
	if user.RoleID != nil {
		claims["role_id"] = *user.RoleID
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(config.JWTSecret))
	require.NoError(t, err)
	return token
}

func doJSON(t *testing.T, app *fiber.App, method, path, token string, body interface{}) (*http.Response, map[string]interface{}) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	var decoded map[string]interface{}
	json.NewDecoder(resp.Body).Decode(&decoded)
	return resp, decoded
}

func TestMenuRoutesRequireAuth(t *testing.T) {
	app, _ := setupTestApp(t)

	resp, _ := doJSON(t, app, http.MethodGet, "/api/v1/menus/", "", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestCreateMenuValidation(t *testing.T) {
	app, db := setupTestApp(t)
	_, token := seedAdmin(t, db)

	resp, body := doJSON(t, app, http.MethodPost, "/api/v1/menus/", token, map[string]interface{}{
		"menu_name": "",
		"path":      "/orders",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "menu_name is required", body["error"])
}

func TestCreateMenuForbiddenWithoutPermission(t *testing.T) {
	app, db := setupTestApp(t)

	user := models.User{Username: "staff", Name: "Staff", Email: "staff@local", Password: "secret"}
	require.NoError(t, db.Create(&user).Error)
	token := openSession(t, db, user)

	resp, _ := doJSON(t, app, http.MethodPost, "/api/v1/menus/", token, map[string]interface{}{
		"menu_name": "Orders",
	})
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestCreateAndFetchMenu(t *testing.T) {
	app, db := setupTestApp(t)
	_, token := seedAdmin(t, db)

	resp, body := doJSON(t, app, http.MethodPost, "/api/v1/menus/", token, map[string]interface{}{
		"menu_name":  "Orders",
		"path":       "/orders",
		"icon":       "package",
		"menu_order": 1,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	data := body["data"].(map[string]interface{})
	id := int(data["ID"].(float64))

	resp, body = doJSON(t, app, http.MethodGet, fmt.Sprintf("/api/v1/menus/%d", id), token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	fetched := body["data"].(map[string]interface{})
	assert.Equal(t, "Orders", fetched["menu_name"])
}

func TestForceDeleteMenuRoute(t *testing.T) {
	app, db := setupTestApp(t)
	admin, token := seedAdmin(t, db)

	root := models.Menu{MenuName: "Settings", MenuOrder: 1}
	require.NoError(t, db.Create(&root).Error)
	child := models.Menu{MenuName: "Users", MenuOrder: 1, ParentID: &root.ID}
	require.NoError(t, db.Create(&child).Error)
	require.NoError(t, db.Create(&models.RoleMenu{RoleID: *admin.RoleID, MenuID: child.ID}).Error)

	resp, body := doJSON(t, app, http.MethodDelete, fmt.Sprintf("/api/v1/menus/%d/force", root.ID), token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, float64(2), body["deleted"])

	var grants int64
	require.NoError(t, db.Model(&models.RoleMenu{}).Where("menu_id = ?", child.ID).Count(&grants).Error)
	assert.Equal(t, int64(0), grants)
}

func TestForceDeleteMenuNotFound(t *testing.T) {
	app, db := setupTestApp(t)
	_, token := seedAdmin(t, db)

	resp, _ := doJSON(t, app, http.MethodDelete, "/api/v1/menus/999/force", token, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestCheckMenuRolesRoute(t *testing.T) {
	app, db := setupTestApp(t)
	admin, token := seedAdmin(t, db)

	menu := models.Menu{MenuName: "Orders", MenuOrder: 1}
	require.NoError(t, db.Create(&menu).Error)

	resp, body := doJSON(t, app, http.MethodGet, fmt.Sprintf("/api/v1/menus/%d/check-roles", menu.ID), token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, false, body["hasRoles"])

	require.NoError(t, db.Create(&models.RoleMenu{RoleID: *admin.RoleID, MenuID: menu.ID}).Error)

	resp, body = doJSON(t, app, http.MethodGet, fmt.Sprintf("/api/v1/menus/%d/check-roles", menu.ID), token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, true, body["hasRoles"])
}

func TestGetMenusForUserByEmail(t *testing.T) {
	app, db := setupTestApp(t)
	admin, token := seedAdmin(t, db)

	dashboard := models.Menu{MenuName: "Dashboard", MenuOrder: 1}
	orders := models.Menu{MenuName: "Orders", MenuOrder: 2}
	require.NoError(t, db.Create(&dashboard).Error)
	require.NoError(t, db.Create(&orders).Error)
	require.NoError(t, db.Create(&models.RoleMenu{RoleID: *admin.RoleID, MenuID: orders.ID}).Error)
	require.NoError(t, db.Create(&models.UserMenu{UserID: admin.ID, MenuID: dashboard.ID}).Error)

	resp, body := doJSON(t, app, http.MethodGet, "/api/v1/menus/?email=admin@local", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	data := body["data"].([]interface{})
	require.Len(t, data, 2)
	first := data[0].(map[string]interface{})
	assert.Equal(t, "Dashboard", first["menu_name"])
}

func TestPermissionCheckRoute(t *testing.T) {
	app, db := setupTestApp(t)
	_, token := seedAdmin(t, db)

	resp, body := doJSON(t, app, http.MethodGet, "/api/v1/permissions/check?permission=menu.manage", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, true, body["hasPermission"])

	resp, body = doJSON(t, app, http.MethodGet, "/api/v1/permissions/check?permission=user.manage", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, false, body["hasPermission"])

	resp, _ = doJSON(t, app, http.MethodGet, "/api/v1/permissions/check", token, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

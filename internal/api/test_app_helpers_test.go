package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/morsel/internal/db"
	"github.com/terraincognita07/morsel/internal/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func newTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()
	return newTestAppWithLimit(t, 5)
}

func newTestAppWithLimit(t *testing.T, analysisDailyLimit int) (*fiber.App, *gorm.DB) {
	t.Helper()

	databasePath := filepath.Join(t.TempDir(), "morsel-test.db")
	database, err := db.OpenSQLite(databasePath)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := database.DB()
	if err != nil {
		t.Fatalf("open sql db: %v", err)
	}
	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	handler := NewHandler(database, "test-secret-key", time.UTC, false, analysisDailyLimit)

	app := fiber.New()
	RegisterRoutes(app, handler)
	return app, database
}

func createTestUser(t *testing.T, database *gorm.DB, email string, password string) models.User {
	t.Helper()

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}

	user := models.User{
		Email:            strings.ToLower(strings.TrimSpace(email)),
		PasswordHash:     string(passwordHash),
		DailyCalorieGoal: models.DefaultDailyCalorieGoal,
		CreatedAt:        time.Now().UTC(),
	}
	if err := database.Create(&user).Error; err != nil {
		t.Fatalf("create user: %v", err)
	}
	return user
}

func loginAndExtractAuthCookie(t *testing.T, app *fiber.App, email string, password string) string {
	t.Helper()

	response := performJSONRequest(t, app, http.MethodPost, "/api/auth/login", map[string]any{
		"email":    email,
		"password": password,
	}, "")
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		t.Fatalf("expected login status 200, got %d", response.StatusCode)
	}

	for _, cookie := range response.Cookies() {
		if cookie.Name == authCookieName && cookie.Value != "" {
			return cookie.Name + "=" + cookie.Value
		}
	}

	t.Fatal("auth cookie is missing in login response")
	return ""
}

func performJSONRequest(t *testing.T, app *fiber.App, method string, target string, payload any, authCookie string) *http.Response {
	t.Helper()

	var body *bytes.Buffer
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("marshal request payload: %v", err)
		}
		body = bytes.NewBuffer(encoded)
	} else {
		body = bytes.NewBuffer(nil)
	}

	request := httptest.NewRequest(method, target, body)
	if payload != nil {
		request.Header.Set("Content-Type", fiber.MIMEApplicationJSON)
	}
	if authCookie != "" {
		request.Header.Set("Cookie", authCookie)
	}

	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("%s %s request failed: %v", method, target, err)
	}
	return response
}

func decodeJSONBody(t *testing.T, response *http.Response, target any) {
	t.Helper()

	if err := json.NewDecoder(response.Body).Decode(target); err != nil {
		t.Fatalf("decode response body: %v", err)
	}
}

func seedTestMeal(t *testing.T, database *gorm.DB, userID uint, uploadTime time.Time, mutate func(*models.MealRecord)) models.MealRecord {
	t.Helper()

	meal := models.MealRecord{
		UserID:          userID,
		Name:            "Test meal",
		FoodCategory:    "mixed",
		ProcessingLevel: models.ProcessingMinimallyProcessed,
		UploadTime:      uploadTime,
		Calories:        600,
		ProteinGrams:    30,
		CarbsGrams:      60,
		FatGrams:        20,
		FiberGrams:      8,
		Allergens:       []string{},
		Additives:       []string{},
	}
	if mutate != nil {
		mutate(&meal)
	}
	if err := database.Create(&meal).Error; err != nil {
		t.Fatalf("seed meal: %v", err)
	}
	return meal
}

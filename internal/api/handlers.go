package api

import (
	"regexp"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/terraincognita07/morsel/internal/db"
	"github.com/terraincognita07/morsel/internal/services"
	"gorm.io/gorm"
)

var passwordLengthRegex = regexp.MustCompile(`^.{8,}$`)
var passwordUpperRegex = regexp.MustCompile(`\p{Lu}`)
var passwordLowerRegex = regexp.MustCompile(`\p{Ll}`)
var passwordDigitRegex = regexp.MustCompile(`\d`)

type Handler struct {
	db                 *gorm.DB
	secretKey          []byte
	location           *time.Location
	cookieSecure       bool
	analysisDailyLimit int

	repositories  *db.Repositories
	authService   *services.AuthService
	mealService   *services.MealService
	statsService  *services.StatsService
	exportService *services.ExportService
	quotaService  *services.QuotaService
}

type credentialsInput struct {
	Email      string `json:"email" form:"email"`
	Password   string `json:"password" form:"password"`
	RememberMe bool   `json:"remember_me" form:"remember_me"`
}

type mealPayload struct {
	Name            string   `json:"name"`
	FoodCategory    string   `json:"foodCategory"`
	ProcessingLevel string   `json:"processingLevel"`
	UploadTime      string   `json:"uploadTime"`
	Calories        float64  `json:"calories"`
	ProteinGrams    float64  `json:"proteinGrams"`
	CarbsGrams      float64  `json:"carbsGrams"`
	FatGrams        float64  `json:"fatGrams"`
	FiberGrams      float64  `json:"fiberGrams"`
	SugarGrams      float64  `json:"sugarGrams"`
	SodiumMg        float64  `json:"sodiumMg"`
	FluidsMl        float64  `json:"fluidsMl"`
	AlcoholGrams    float64  `json:"alcoholGrams"`
	CaffeineMg      float64  `json:"caffeineMg"`
	Allergens       []string `json:"allergens"`
	Additives       []string `json:"additives"`
	HealthRiskNotes string   `json:"healthRiskNotes"`
}

type feedbackPayload struct {
	Rating   int    `json:"rating"`
	Comment  string `json:"comment"`
	Favorite bool   `json:"favorite"`
}

type calorieGoalPayload struct {
	DailyCalorieGoal int `json:"daily_calorie_goal" form:"daily_calorie_goal"`
}

const (
	defaultAuthTokenTTL  = 7 * 24 * time.Hour
	rememberAuthTokenTTL = 30 * 24 * time.Hour
)

type authClaims struct {
	UserID uint `json:"uid"`
	jwt.RegisteredClaims
}

func NewHandler(database *gorm.DB, secretKey string, location *time.Location, cookieSecure bool, analysisDailyLimit int) *Handler {
	if location == nil {
		location = time.UTC
	}
	handler := &Handler{
		db:                 database,
		secretKey:          []byte(secretKey),
		location:           location,
		cookieSecure:       cookieSecure,
		analysisDailyLimit: analysisDailyLimit,
	}
	handler.ensureDependencies()
	return handler
}

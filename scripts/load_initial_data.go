package main

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/Top-Technologies/downtime/internal/config"
	"github.com/Top-Technologies/downtime/internal/database"
	"github.com/Top-Technologies/downtime/internal/database/models"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Simple structures that directly match DB schema
type DepartmentData struct {
	Name string `yaml:"name"`
	Code string `yaml:"code"`
}

type UserData struct {
	Login          string `yaml:"login"`
	Name           string `yaml:"name"`
	Email          string `yaml:"email"`
	DepartmentName string `yaml:"department_name,omitempty"`
}

type ReasonData struct {
	Name             string   `yaml:"name"`
	Category         string   `yaml:"category"`
	DepartmentName   string   `yaml:"department_name"`
	ResponsibleUsers []string `yaml:"responsible_users"`
	NotificationType string   `yaml:"notification_type,omitempty"`
	Active           *bool    `yaml:"active,omitempty"`
}

type ProductionOrderData struct {
	Reference string `yaml:"reference"`
	Product   string `yaml:"product"`
	State     string `yaml:"state,omitempty"`
}

// File structures
type DepartmentsFile struct {
	Departments []DepartmentData `yaml:"departments"`
}

type UsersFile struct {
	Users []UserData `yaml:"users"`
}

type ReasonsFile struct {
	Reasons []ReasonData `yaml:"downtime_reasons"`
}

type ProductionOrdersFile struct {
	ProductionOrders []ProductionOrderData `yaml:"production_orders"`
}

func main() {
	log.Println("Loading initial data from YAML files...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Connect to database with retry (for dockerized Postgres startup)
	db, err := connectWithRetry(cfg, 60, time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := loadDataFromYAMLFiles(db, "scripts/data"); err != nil {
		log.Fatalf("Failed to load data from YAML files: %v", err)
	}

	log.Println("Initial data loaded successfully")
}

// connectWithRetry attempts to initialize the DB with retries to wait for Postgres readiness.
func connectWithRetry(cfg *config.Config, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	opts := &database.Options{
		LogLevel:        logger.Silent,
		SequencePrefix:  cfg.DowntimeSequencePrefix,
		SequencePadding: cfg.DowntimeSequencePadding,
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(cfg.DatabaseURL, opts)
		if err == nil {
			return db, nil
		}
		if attempt%10 == 0 || attempt == maxAttempts {
			log.Printf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}

func loadDataFromYAMLFiles(db *gorm.DB, dataDir string) error {
	departments, err := loadFiles(dataDir, "departments", func(f DepartmentsFile) []DepartmentData { return f.Departments })
	if err != nil {
		return fmt.Errorf("failed to load departments: %w", err)
	}
	users, err := loadFiles(dataDir, "users", func(f UsersFile) []UserData { return f.Users })
	if err != nil {
		return fmt.Errorf("failed to load users: %w", err)
	}
	reasons, err := loadFiles(dataDir, "reasons", func(f ReasonsFile) []ReasonData { return f.Reasons })
	if err != nil {
		return fmt.Errorf("failed to load downtime reasons: %w", err)
	}
	orders, err := loadFiles(dataDir, "production_orders", func(f ProductionOrdersFile) []ProductionOrderData { return f.ProductionOrders })
	if err != nil {
		return fmt.Errorf("failed to load production orders: %w", err)
	}

	deptMap := make(map[string]*models.Department)
	created := 0
	for _, d := range departments {
		dept, isNew, err := createDepartment(db, d)
		if err != nil {
			return fmt.Errorf("failed to create department %s: %w", d.Name, err)
		}
		deptMap[d.Name] = dept
		if isNew {
			created++
		}
	}
	log.Printf("Departments: %d created, %d total", created, len(departments))

	userMap := make(map[string]*models.User)
	created = 0
	for _, u := range users {
		user, isNew, err := createUser(db, u, deptMap)
		if err != nil {
			return fmt.Errorf("failed to create user %s: %w", u.Login, err)
		}
		userMap[u.Login] = user
		if isNew {
			created++
		}
	}
	log.Printf("Users: %d created, %d total", created, len(users))

	created = 0
	for _, r := range reasons {
		isNew, err := createReason(db, r, deptMap, userMap)
		if err != nil {
			log.Printf("Warning: failed to create downtime reason %s: %v", r.Name, err)
			continue
		}
		if isNew {
			created++
		}
	}
	log.Printf("Downtime reasons: %d created, %d total", created, len(reasons))

	created = 0
	for _, o := range orders {
		isNew, err := createProductionOrder(db, o)
		if err != nil {
			log.Printf("Warning: failed to create production order %s: %v", o.Reference, err)
			continue
		}
		if isNew {
			created++
		}
	}
	log.Printf("Production orders: %d created, %d total", created, len(orders))

	return nil
}

// loadFiles decodes every YAML file under dataDir whose path contains marker
func loadFiles[F any, T any](dataDir, marker string, items func(F) []T) ([]T, error) {
	var all []T

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(path, ".yaml") || !strings.Contains(filepath.Base(path), marker) {
			return nil
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		var file F
		if err := yaml.Unmarshal(data, &file); err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		all = append(all, items(file)...)
		return nil
	})

	return all, err
}

func createDepartment(db *gorm.DB, data DepartmentData) (*models.Department, bool, error) {
	var dept models.Department
	err := db.Where("name = ?", data.Name).First(&dept).Error
	if err == nil {
		return &dept, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, fmt.Errorf("failed to query department: %w", err)
	}

	dept = models.Department{Name: data.Name, Code: data.Code, Active: true}
	if err := db.Create(&dept).Error; err != nil {
		return nil, false, fmt.Errorf("failed to create department: %w", err)
	}
	return &dept, true, nil
}

func createUser(db *gorm.DB, data UserData, deptMap map[string]*models.Department) (*models.User, bool, error) {
	var user models.User
	err := db.Where("login = ?", data.Login).First(&user).Error
	if err == nil {
		return &user, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, fmt.Errorf("failed to query user: %w", err)
	}

	user = models.User{Login: data.Login, Name: data.Name, Email: data.Email, Active: true}
	if data.DepartmentName != "" {
		dept := deptMap[data.DepartmentName]
		if dept == nil {
			return nil, false, fmt.Errorf("department %s not found for user %s", data.DepartmentName, data.Login)
		}
		user.DepartmentID = &dept.ID
	}
	if err := db.Create(&user).Error; err != nil {
		return nil, false, fmt.Errorf("failed to create user: %w", err)
	}
	return &user, true, nil
}

func createReason(db *gorm.DB, data ReasonData, deptMap map[string]*models.Department, userMap map[string]*models.User) (bool, error) {
	dept := deptMap[data.DepartmentName]
	if dept == nil {
		return false, fmt.Errorf("department %s not found", data.DepartmentName)
	}

	var existing models.DowntimeReason
	err := db.Where("name = ? AND department_id = ?", data.Name, dept.ID).First(&existing).Error
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, fmt.Errorf("failed to query downtime reason: %w", err)
	}

	if len(data.ResponsibleUsers) == 0 {
		return false, fmt.Errorf("at least one responsible user is required")
	}
	responsible := make([]models.User, 0, len(data.ResponsibleUsers))
	for _, login := range data.ResponsibleUsers {
		user := userMap[login]
		if user == nil {
			return false, fmt.Errorf("responsible user %s not found", login)
		}
		responsible = append(responsible, *user)
	}

	category := models.DowntimeCategory(data.Category)
	if category == "" {
		category = models.DowntimeCategoryOther
	}
	if !category.IsValid() {
		return false, fmt.Errorf("unknown category %q", data.Category)
	}
	notification := models.NotificationType(data.NotificationType)
	if notification == "" {
		notification = models.NotificationTypeActivity
	}
	if !notification.IsValid() {
		return false, fmt.Errorf("unknown notification type %q", data.NotificationType)
	}

	reason := models.DowntimeReason{
		BaseModel:        models.BaseModel{ID: uuid.New()},
		Name:             data.Name,
		Category:         category,
		DepartmentID:     dept.ID,
		NotificationType: notification,
		Active:           data.Active == nil || *data.Active,
		ResponsibleUsers: responsible,
	}
	if err := db.Create(&reason).Error; err != nil {
		return false, fmt.Errorf("failed to create downtime reason: %w", err)
	}
	return true, nil
}

func createProductionOrder(db *gorm.DB, data ProductionOrderData) (bool, error) {
	var order models.ProductionOrder
	err := db.Where("reference = ?", data.Reference).First(&order).Error
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, fmt.Errorf("failed to query production order: %w", err)
	}

	state := data.State
	if state == "" {
		state = "confirmed"
	}
	order = models.ProductionOrder{Reference: data.Reference, Product: data.Product, State: state}
	if err := db.Create(&order).Error; err != nil {
		return false, fmt.Errorf("failed to create production order: %w", err)
	}
	return true, nil
}
